// Package facts holds the immutable country fact table and the sources it
// can be loaded from.
package facts

import (
	"errors"
	"sort"
)

var (
	// ErrEmptyDataset is returned when a source yields no entries.
	ErrEmptyDataset = errors.New("fact dataset is empty")
	// ErrMalformedDataset is returned when a dataset document cannot be decoded.
	ErrMalformedDataset = errors.New("fact dataset is malformed")
)

// Store maps a country label to its record. It is built once and never
// mutated, so concurrent readers need no locking.
type Store struct {
	records    map[string]CountryRecord
	duplicates []string
}

// New builds a store from entries in source order. When a country repeats,
// the later entry replaces the earlier one and the country is reported by
// Duplicates.
func New(entries []Entry) *Store {
	s := &Store{records: make(map[string]CountryRecord, len(entries))}
	seen := make(map[string]struct{})
	for _, e := range entries {
		if _, ok := s.records[e.Country]; ok {
			if _, reported := seen[e.Country]; !reported {
				seen[e.Country] = struct{}{}
				s.duplicates = append(s.duplicates, e.Country)
			}
		}
		s.records[e.Country] = e.CountryRecord
	}
	return s
}

// Get returns the record for country. Keys match exactly, including case.
func (s *Store) Get(country string) (CountryRecord, bool) {
	r, ok := s.records[country]
	return r, ok
}

// Countries returns the keys in lexical order.
func (s *Store) Countries() []string {
	out := make([]string, 0, len(s.records))
	for name := range s.records {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

// Len returns the number of distinct countries.
func (s *Store) Len() int {
	return len(s.records)
}

// Duplicates lists countries that appeared more than once in the source, in
// order of their first repetition.
func (s *Store) Duplicates() []string {
	return append([]string(nil), s.duplicates...)
}
