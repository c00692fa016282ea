package ingest

import (
	"bufio"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"recipe-graph/core/records"

	"go.uber.org/zap"
)

// Block headers written by the crafttweaker /ct commands.
const (
	headerMods      = "Mods list"
	headerRecipes   = "Recipes"
	headerFurnace   = "Furnace Recipes"
	headerOre       = "Ore entries"
	maxLineBytes    = 4 << 20
	shapelessPrefix = "recipes.addShapeless"
	shapedPrefix    = "recipes.addShaped"
)

// ignoredHeaders are dumped by crafttweaker but carry nothing the record store needs.
var ignoredHeaders = []string{"Blocks", "Entities", "Foods", "Liquids", "List of all registered Items"}

var (
	logPrefixRe   = regexp.MustCompile(`^(?:\[[^\]]*\])+\s*`)
	callArgsRe    = regexp.MustCompile(`\((.*)\);`)
	furnaceArgsRe = regexp.MustCompile(`\((.*)\)`)
	bracketRe     = regexp.MustCompile(`<(.*)>`)
	oreHeaderRe   = regexp.MustCompile(`Ore entries for (.*):`)
)

// Result is everything extracted from one log.
type Result struct {
	// Records are de-duplicated by id, first occurrence wins.
	Records []records.Record `json:"-"`
	// Mods is the mod list block.
	Mods []records.Mod `json:"-"`
	// Blocks counts the block headers seen.
	Blocks int `json:"blocks"`
	// Duplicates counts records dropped because their id was already seen.
	Duplicates int `json:"duplicates"`
	// Skipped counts malformed lines inside known blocks.
	Skipped int `json:"skipped"`
	// UnknownHeaders lists headers that are neither parsed nor ignored.
	UnknownHeaders []string `json:"unknown_headers"`
}

// Counts summarizes a result for logging and API responses.
func (r *Result) Counts() map[string]int {
	byType := map[string]int{"mods": len(r.Mods), "records": len(r.Records)}
	for _, rec := range r.Records {
		byType[rec.CraftType]++
	}
	return byType
}

// Parser turns a crafttweaker log into records.
type Parser struct {
	logger *zap.Logger
}

// NewParser creates a parser logging skipped lines to logger.
func NewParser(logger *zap.Logger) *Parser {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Parser{logger: logger}
}

type block struct {
	header string
	line   int
}

// Parse reads the log and extracts mods and records. Malformed lines and unknown
// blocks are logged and skipped; only read errors fail the parse.
func (p *Parser) Parse(r io.Reader) (*Result, error) {
	res := &Result{}
	seen := make(map[string]struct{})
	var cur *block

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 64*1024), maxLineBytes)

	for n := 1; scanner.Scan(); n++ {
		line := logPrefixRe.ReplaceAllString(strings.TrimRight(scanner.Text(), "\r"), "")
		if strings.HasSuffix(line, ":") {
			cur = &block{header: line, line: n}
			res.Blocks++
			if !p.knownHeader(line) {
				p.logger.Warn("Unknown block header", zap.String("header", line), zap.Int("line", n))
				res.UnknownHeaders = append(res.UnknownHeaders, line)
			}
			continue
		}
		if cur == nil || strings.TrimSpace(line) == "" {
			continue
		}

		err := p.parseLine(res, seen, cur.header, line)
		if err != nil {
			res.Skipped++
			p.logger.Warn("Skipping malformed line",
				zap.String("block", cur.header),
				zap.Int("line", n),
				zap.Error(err))
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read log: %w", err)
	}
	return res, nil
}

func (p *Parser) knownHeader(header string) bool {
	for _, h := range []string{headerMods, headerFurnace, headerRecipes, headerOre} {
		if strings.HasPrefix(header, h) {
			return true
		}
	}
	for _, h := range ignoredHeaders {
		if strings.HasPrefix(header, h) {
			return true
		}
	}
	return false
}

func (p *Parser) parseLine(res *Result, seen map[string]struct{}, header, line string) error {
	var (
		rec records.Record
		err error
	)
	switch {
	case strings.HasPrefix(header, headerMods):
		mod, err := parseMod(line)
		if err != nil {
			return err
		}
		res.Mods = append(res.Mods, mod)
		return nil
	case strings.HasPrefix(header, headerFurnace):
		rec, err = parseFurnace(line)
	case strings.HasPrefix(header, headerRecipes):
		var ok bool
		rec, ok, err = parseCrafting(line)
		if err == nil && !ok {
			return nil
		}
	case strings.HasPrefix(header, headerOre):
		rec, err = parseOreEntry(header, line)
	default:
		return nil
	}
	if err != nil {
		return err
	}

	if _, dup := seen[rec.ID]; dup {
		res.Duplicates++
		return nil
	}
	seen[rec.ID] = struct{}{}
	rec.Seq = len(res.Records)
	res.Records = append(res.Records, rec)
	return nil
}

// parseMod reads "id - name - version". Versions may contain dashes, names may not.
func parseMod(line string) (records.Mod, error) {
	parts := strings.SplitN(line, "-", 3)
	if len(parts) != 3 {
		return records.Mod{}, fmt.Errorf("expected id - name - version, got %q", line)
	}
	return records.Mod{
		ID:      strings.TrimSpace(parts[0]),
		Name:    strings.TrimSpace(parts[1]),
		Version: strings.TrimSpace(parts[2]),
	}, nil
}

// parseCrafting reads a recipes.addShaped or recipes.addShapeless call. Lines that are
// neither report ok=false.
func parseCrafting(line string) (records.Record, bool, error) {
	line = strings.TrimSpace(line)
	var craftType string
	switch {
	case strings.HasPrefix(line, shapelessPrefix):
		craftType = records.CraftShapeless
	case strings.HasPrefix(line, shapedPrefix):
		craftType = records.CraftShaped
	default:
		return records.Record{}, false, nil
	}

	m := callArgsRe.FindStringSubmatch(line)
	if m == nil {
		return records.Record{}, true, fmt.Errorf("no argument list in %q", line)
	}
	parts := strings.SplitN(m[1], ",", 3)
	if len(parts) != 3 {
		return records.Record{}, true, fmt.Errorf("expected id, result and ingredients in %q", line)
	}

	id := strings.Trim(strings.TrimSpace(parts[0]), `"`)
	resItem, amount, err := splitAmount(parts[1])
	if err != nil {
		return records.Record{}, true, err
	}
	return records.Record{
		ID:        id,
		CraftType: craftType,
		ResItem:   resItem,
		Amount:    amount,
		CraftRaw:  strings.TrimSpace(parts[2]),
	}, true, nil
}

// parseFurnace reads furnace.addRecipe(<out>, <in>, xp). The recipe id is derived from
// the input since furnace recipes have none.
func parseFurnace(line string) (records.Record, error) {
	m := furnaceArgsRe.FindStringSubmatch(line)
	if m == nil {
		return records.Record{}, fmt.Errorf("no argument list in %q", line)
	}
	parts := strings.SplitN(m[1], ",", 3)
	if len(parts) < 2 {
		return records.Record{}, fmt.Errorf("expected output and input in %q", line)
	}
	in := bracketRe.FindStringSubmatch(parts[1])
	if in == nil {
		return records.Record{}, fmt.Errorf("no input item in %q", line)
	}
	return records.Record{
		ID:        "furnace:" + in[1],
		CraftType: records.CraftFurnace,
		ResItem:   strings.TrimSpace(parts[0]),
		Amount:    1,
		CraftRaw:  strings.TrimSpace(parts[1]),
	}, nil
}

// parseOreEntry reads a "-<item>" line of an "Ore entries for <ore:x> :" block.
func parseOreEntry(header, line string) (records.Record, error) {
	hm := oreHeaderRe.FindStringSubmatch(header)
	if hm == nil {
		return records.Record{}, fmt.Errorf("malformed ore header %q", header)
	}
	ore := strings.TrimSpace(hm[1])
	oreName := bracketRe.FindStringSubmatch(ore)
	if oreName == nil {
		return records.Record{}, fmt.Errorf("malformed ore name %q", ore)
	}

	item := strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(line), "-"))
	itemName := bracketRe.FindStringSubmatch(item)
	if itemName == nil {
		return records.Record{}, fmt.Errorf("malformed ore entry %q", line)
	}
	return records.Record{
		ID:        "oredict:" + oreName[1] + ":" + itemName[1],
		CraftType: records.CraftOredict,
		ResItem:   ore,
		Amount:    1,
		CraftRaw:  item,
	}, nil
}

// splitAmount splits "<item> * n" into the item and n. A missing amount is 1.
func splitAmount(raw string) (string, int, error) {
	raw = strings.TrimSpace(raw)
	item, count, found := strings.Cut(raw, "*")
	if !found {
		return raw, 1, nil
	}
	amount, err := strconv.Atoi(strings.TrimSpace(count))
	if err != nil || amount < 1 {
		return "", 0, fmt.Errorf("invalid result amount in %q", raw)
	}
	return strings.TrimSpace(item), amount, nil
}
