// Package entry contains the staged-entry state machine for monthly report
// entry. A Store accumulates partial reports across the three entry steps,
// keyed by (court, month, year), and rejects out-of-order steps. Partial
// reports live in memory only: a process restart discards all in-flight
// entries (documented limitation).
package entry

import (
	"sync"
	"time"

	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/models"
)

// Key identifies a partial report.
type Key struct {
	CourtID int64
	Month   int
	Year    int
}

// Partial is a report under construction. Fields accumulate as steps
// complete; Step1Done and Step2Done gate step ordering.
type Partial struct {
	CourtID   int64
	CourtName string
	Month     int
	Year      int

	Basic models.BasicMetrics
	Ages  models.AgeBreakdown
	Extra models.AdditionalMetrics

	Step1Done bool
	Step2Done bool
	CreatedAt time.Time
}

// Report assembles the committed-record shape from the accumulated fields.
func (p *Partial) Report() models.MonthlyReport {
	return models.MonthlyReport{
		CourtID: p.CourtID,
		Month:   p.Month,
		Year:    p.Year,
		Basic:   p.Basic,
		Ages:    p.Ages,
		Extra:   p.Extra,
	}
}

// keyLock is a reference-counted per-key mutex.
type keyLock struct {
	mu   sync.Mutex
	refs int
}

// Store holds partial reports. Map access is guarded by mu; whole entry steps
// are serialized per key through Acquire, so two callers working on the same
// (court, month, year) cannot interleave validation and mutation.
type Store struct {
	mu      sync.Mutex
	entries map[Key]*Partial
	locks   map[Key]*keyLock
	now     func() time.Time
}

// NewStore creates an empty Store.
func NewStore() *Store {
	return &Store{
		entries: make(map[Key]*Partial),
		locks:   make(map[Key]*keyLock),
		now:     time.Now,
	}
}

// Acquire takes the per-key lock, blocking until any other holder of the same
// key releases it. The returned function releases the lock.
func (s *Store) Acquire(key Key) func() {
	s.mu.Lock()
	l, ok := s.locks[key]
	if !ok {
		l = &keyLock{}
		s.locks[key] = l
	}
	l.refs++
	s.mu.Unlock()

	l.mu.Lock()

	return func() {
		l.mu.Unlock()
		s.mu.Lock()
		l.refs--
		if l.refs == 0 {
			delete(s.locks, key)
		}
		s.mu.Unlock()
	}
}

// Begin inserts (or overwrites) the partial report for key with the step-1
// results and marks step 1 complete. Overwriting restarts the entry sequence.
func (s *Store) Begin(key Key, courtName string, basic models.BasicMetrics) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.entries[key] = &Partial{
		CourtID:   key.CourtID,
		CourtName: courtName,
		Month:     key.Month,
		Year:      key.Year,
		Basic:     basic,
		Step1Done: true,
		CreatedAt: s.now(),
	}
}

// Advance merges the step-2 results into the partial report and marks step 2
// complete. It fails with kind StepOrderViolation when step 1 has not
// completed for key.
func (s *Store) Advance(key Key, ages models.AgeBreakdown) (*Partial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.entries[key]
	if !ok || !p.Step1Done {
		return nil, workflow.Errorf(workflow.KindStepOrder,
			"step 1 (basic metrics) must be completed first for %d/%d", key.Month, key.Year)
	}

	p.Ages = ages
	p.Step2Done = true

	cp := *p
	return &cp, nil
}

// Finalize merges the step-3 results and returns the complete merged report.
// The partial report stays in the store: removal is the caller's
// responsibility after a successful durable commit, so a failed commit can be
// retried without repeating steps 1-2. Fails with kind StepOrderViolation
// when step 2 has not completed for key.
func (s *Store) Finalize(key Key, extra models.AdditionalMetrics) (*Partial, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.entries[key]
	if !ok {
		return nil, workflow.Errorf(workflow.KindStepOrder,
			"step 1 (basic metrics) must be completed first for %d/%d", key.Month, key.Year)
	}
	if !p.Step2Done {
		return nil, workflow.Errorf(workflow.KindStepOrder,
			"step 2 (age breakdowns) must be completed first for %d/%d", key.Month, key.Year)
	}

	p.Extra = extra

	cp := *p
	return &cp, nil
}

// Discard removes the partial report for key; no-op when absent.
func (s *Store) Discard(key Key) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.entries, key)
}

// Lookup returns a copy of the partial report for key, if present.
func (s *Store) Lookup(key Key) (*Partial, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.entries[key]
	if !ok {
		return nil, false
	}
	cp := *p
	return &cp, true
}

// List returns copies of all partial reports, in no particular order.
func (s *Store) List() []*Partial {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]*Partial, 0, len(s.entries))
	for _, p := range s.entries {
		cp := *p
		out = append(out, &cp)
	}
	return out
}

// PruneOlderThan removes partial reports created more than age ago and
// returns how many were removed. Entries have no automatic expiry; this is
// the explicit cleanup path for abandoned entry sequences.
func (s *Store) PruneOlderThan(age time.Duration) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	cutoff := s.now().Add(-age)
	removed := 0
	for key, p := range s.entries {
		if p.CreatedAt.Before(cutoff) {
			delete(s.entries, key)
			removed++
		}
	}
	return removed
}
