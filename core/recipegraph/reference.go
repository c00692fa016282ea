package recipegraph

import (
	"regexp"
	"strconv"
	"strings"
)

const (
	wildcardSuffix = ":*"
	atomicPrefix   = "atomic:"
	oredictPrefix  = "<ore:"
)

var (
	nameRe  = regexp.MustCompile(`<[^<>\s:]+(?::[^<>\s:]+)+>`)
	tokenRe = regexp.MustCompile(`<.+?>(?:\s*\*\s*(\d+))?`)
)

// CanonicalName extracts the first bracketed <namespace:id[:meta]> token from a raw
// reference, dropping any wildcard metadata suffix. "<minecraft:wool:*>" becomes
// "<minecraft:wool>".
func CanonicalName(raw string) (string, error) {
	name := nameRe.FindString(strings.ReplaceAll(raw, wildcardSuffix, ""))
	if name == "" {
		return "", &MalformedReferenceError{Ref: raw}
	}
	return name, nil
}

// ParseIngredients turns a raw ingredient expression into stacks, one per distinct
// item in order of first mention. Repeated mentions are summed; an explicit "* n"
// after a token counts as n mentions. An empty expression yields no stacks.
func ParseIngredients(raw string) ([]Stack, error) {
	var (
		stacks []Stack
		index  = make(map[string]int)
	)
	for _, m := range tokenRe.FindAllStringSubmatch(raw, -1) {
		name, err := CanonicalName(m[0][:strings.LastIndex(m[0], ">")+1])
		if err != nil {
			return nil, err
		}
		n := 1
		if m[1] != "" {
			n, err = strconv.Atoi(m[1])
			if err != nil || n < 1 {
				return nil, &MalformedReferenceError{Ref: m[0]}
			}
		}
		if i, ok := index[name]; ok {
			stacks[i].Amount += n
			continue
		}
		index[name] = len(stacks)
		stacks = append(stacks, Stack{Item: name, Amount: n})
	}
	return stacks, nil
}

// IsOredict reports whether name denotes an ore-dictionary alias.
func IsOredict(name string) bool {
	return strings.HasPrefix(name, oredictPrefix)
}

// AtomicRecipeID returns the id of the atomic recipe owned by the named item.
func AtomicRecipeID(name string) string {
	return atomicPrefix + strings.TrimSuffix(strings.TrimPrefix(name, "<"), ">")
}
