package records

import (
	"sort"
	"strings"
)

// MemoryStore is an immutable, indexed view over a list of records.
// It is safe for concurrent reads.
type MemoryStore struct {
	records  []Record
	byID     map[string]int
	byResult map[string][]int
}

// NewMemoryStore indexes recs, keeping their order. When two records share an id the
// first one wins, matching the de-duplication done at ingestion.
func NewMemoryStore(recs []Record) *MemoryStore {
	s := &MemoryStore{
		records:  make([]Record, 0, len(recs)),
		byID:     make(map[string]int, len(recs)),
		byResult: make(map[string][]int),
	}
	for _, r := range recs {
		if _, dup := s.byID[r.ID]; dup {
			continue
		}
		idx := len(s.records)
		s.records = append(s.records, r)
		s.byID[r.ID] = idx
		s.byResult[r.ResItem] = append(s.byResult[r.ResItem], idx)
	}
	return s
}

// Record returns the record with the given id.
func (s *MemoryStore) Record(id string) (Record, bool) {
	idx, ok := s.byID[id]
	if !ok {
		return Record{}, false
	}
	return s.records[idx], true
}

// ByResult returns every record producing item, in stored order.
func (s *MemoryStore) ByResult(item string) []Record {
	idxs := s.byResult[item]
	out := make([]Record, len(idxs))
	for i, idx := range idxs {
		out[i] = s.records[idx]
	}
	return out
}

// All returns a copy of every record in stored order.
func (s *MemoryStore) All() []Record {
	out := make([]Record, len(s.records))
	copy(out, s.records)
	return out
}

// Len returns the number of records.
func (s *MemoryStore) Len() int {
	return len(s.records)
}

// ResultItems returns the distinct result item names, sorted.
func (s *MemoryStore) ResultItems() []string {
	names := make([]string, 0, len(s.byResult))
	for name := range s.byResult {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// FilterPrefixes keeps the records whose id starts with one of prefixes.
// An empty prefix list keeps everything.
func FilterPrefixes(recs []Record, prefixes []string) []Record {
	if len(prefixes) == 0 {
		return recs
	}
	out := make([]Record, 0, len(recs))
	for _, r := range recs {
		for _, p := range prefixes {
			if p != "" && strings.HasPrefix(r.ID, p) {
				out = append(out, r)
				break
			}
		}
	}
	return out
}
