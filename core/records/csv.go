package records

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// CSVHeader is the column order of the recipes CSV.
var CSVHeader = []string{"id", "crafttype", "resitem", "amount", "craftraw"}

// ModsCSVHeader is the column order of the mods CSV.
var ModsCSVHeader = []string{"id", "name", "version"}

// ReadCSV parses a recipes CSV. Columns are matched by header name, so extra columns
// (e.g. a pandas index) are ignored. Seq is assigned from the row order.
func ReadCSV(r io.Reader) ([]Record, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	header, err := reader.Read()
	if err != nil {
		if errors.Is(err, io.EOF) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read csv header: %w", err)
	}

	cols := make(map[string]int, len(header))
	for i, name := range header {
		cols[strings.TrimSpace(strings.ToLower(name))] = i
	}
	for _, required := range []string{"id", "crafttype", "resitem"} {
		if _, ok := cols[required]; !ok {
			return nil, fmt.Errorf("csv is missing required column %q", required)
		}
	}

	get := func(row []string, name string) string {
		idx, ok := cols[name]
		if !ok || idx >= len(row) {
			return ""
		}
		return row[idx]
	}

	var recs []Record
	for line := 2; ; line++ {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("failed to read csv line %d: %w", line, err)
		}

		amount := 1
		if raw := strings.TrimSpace(get(row, "amount")); raw != "" {
			amount, err = strconv.Atoi(raw)
			if err != nil {
				return nil, fmt.Errorf("invalid amount %q on line %d: %w", raw, line, err)
			}
		}

		recs = append(recs, Record{
			ID:        get(row, "id"),
			CraftType: get(row, "crafttype"),
			ResItem:   get(row, "resitem"),
			Amount:    amount,
			CraftRaw:  get(row, "craftraw"),
			Seq:       len(recs),
		})
	}
	return recs, nil
}

// WriteCSV writes recs in CSVHeader order.
func WriteCSV(w io.Writer, recs []Record) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(CSVHeader); err != nil {
		return err
	}
	for _, r := range recs {
		row := []string{r.ID, r.CraftType, r.ResItem, strconv.Itoa(r.ResultAmount()), r.CraftRaw}
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}

// WriteModsCSV writes mods in ModsCSVHeader order.
func WriteModsCSV(w io.Writer, mods []Mod) error {
	writer := csv.NewWriter(w)
	if err := writer.Write(ModsCSVHeader); err != nil {
		return err
	}
	for _, m := range mods {
		if err := writer.Write([]string{m.ID, m.Name, m.Version}); err != nil {
			return err
		}
	}
	writer.Flush()
	return writer.Error()
}
