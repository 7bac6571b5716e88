// Package store owns the two in-memory record collections.
//
// The store is the single owner of both sequences; consumers get copies
// and route every mutation through the operations below. Data lives for
// the process lifetime only.
package store

import (
	"errors"
	"sync"

	"ore/internal/core"
)

// ErrRecordNotFound is returned when an update targets an id that is not
// in the collection. The update is discarded without touching anything.
var ErrRecordNotFound = errors.New("record not found")

// Store holds the wage and manual record sequences in insertion order.
type Store struct {
	mu     sync.Mutex
	wage   []core.WageRecord
	manual []core.ManualTimeRecord
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// AddWage appends a wage record. The caller supplies a fresh unique id;
// no duplicate check is performed here.
func (s *Store) AddWage(r core.WageRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.wage = append(s.wage, r)
}

// UpdateWage merges the patch into the record with the given id, leaving
// unspecified fields untouched. Returns ErrRecordNotFound for unknown ids.
func (s *Store) UpdateWage(id string, p core.WagePatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.wage {
		if s.wage[i].ID == id {
			p.Apply(&s.wage[i])
			return nil
		}
	}
	return ErrRecordNotFound
}

// AddManual appends a manual time record.
func (s *Store) AddManual(r core.ManualTimeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manual = append(s.manual, r)
}

// UpdateManual merges the patch into the manual record with the given id.
func (s *Store) UpdateManual(id string, p core.ManualPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for i := range s.manual {
		if s.manual[i].ID == id {
			p.Apply(&s.manual[i])
			return nil
		}
	}
	return ErrRecordNotFound
}

// ReplaceManual swaps in a whole new manual collection. Used by callers
// that build the next collection from a snapshot instead of appending.
func (s *Store) ReplaceManual(records []core.ManualTimeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.manual = append([]core.ManualTimeRecord(nil), records...)
}

// WageByID returns a copy of the wage record with the given id.
func (s *Store) WageByID(id string) (core.WageRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.wage {
		if r.ID == id {
			return r, true
		}
	}
	return core.WageRecord{}, false
}

// ManualByID returns a copy of the manual record with the given id.
func (s *Store) ManualByID(id string) (core.ManualTimeRecord, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, r := range s.manual {
		if r.ID == id {
			return r, true
		}
	}
	return core.ManualTimeRecord{}, false
}

// Snapshot returns copies of both collections in insertion order.
func (s *Store) Snapshot() ([]core.WageRecord, []core.ManualTimeRecord) {
	s.mu.Lock()
	defer s.mu.Unlock()
	wage := append([]core.WageRecord(nil), s.wage...)
	manual := append([]core.ManualTimeRecord(nil), s.manual...)
	return wage, manual
}

// Counts returns the number of wage and manual records.
func (s *Store) Counts() (wage, manual int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.wage), len(s.manual)
}
