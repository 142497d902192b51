package entry

import (
	"sync"
	"testing"
	"time"

	"github.com/example/courtstat/internal/core/workflow"
	"github.com/example/courtstat/internal/models"
)

var testKey = Key{CourtID: 1, Month: 1, Year: 2025}

func testBasic() models.BasicMetrics {
	return models.BasicMetrics{
		Balance:  models.Pair{A: 50, B: 30},
		New:      models.Pair{A: 5, B: 3},
		Disposed: models.Pair{A: 4, B: 2},
		Pending:  models.Pair{A: 51, B: 31},
	}
}

func TestAdvanceWithoutBegin(t *testing.T) {
	s := NewStore()

	_, err := s.Advance(testKey, models.AgeBreakdown{})
	if err == nil {
		t.Fatal("Advance() without Begin expected error, got nil")
	}
	if kind := workflow.KindOf(err); kind != workflow.KindStepOrder {
		t.Errorf("error kind = %q, want %q", kind, workflow.KindStepOrder)
	}
}

func TestFinalizeWithoutAdvance(t *testing.T) {
	s := NewStore()
	s.Begin(testKey, "Court-X", testBasic())

	_, err := s.Finalize(testKey, models.AdditionalMetrics{})
	if err == nil {
		t.Fatal("Finalize() without Advance expected error, got nil")
	}
	if kind := workflow.KindOf(err); kind != workflow.KindStepOrder {
		t.Errorf("error kind = %q, want %q", kind, workflow.KindStepOrder)
	}
}

func TestFullSequence(t *testing.T) {
	s := NewStore()
	s.Begin(testKey, "Court-X", testBasic())

	ages := models.AgeBreakdown{TotalPendency: models.Pair{A: 51, B: 31}, TotalDisposal: models.Pair{A: 4, B: 2}}
	p, err := s.Advance(testKey, ages)
	if err != nil {
		t.Fatalf("Advance() error = %v", err)
	}
	if !p.Step2Done {
		t.Error("Step2Done not set after Advance")
	}

	extra := models.AdditionalMetrics{Contested: models.Pair{A: 3, B: 2}}
	merged, err := s.Finalize(testKey, extra)
	if err != nil {
		t.Fatalf("Finalize() error = %v", err)
	}
	if merged.Basic != testBasic() || merged.Ages != ages || merged.Extra != extra {
		t.Errorf("merged record missing accumulated fields: %+v", merged)
	}

	// Finalize must not remove the entry; removal happens after the commit.
	if _, ok := s.Lookup(testKey); !ok {
		t.Error("Finalize removed the partial entry")
	}

	report := merged.Report()
	if report.CourtID != testKey.CourtID || report.Month != testKey.Month || report.Year != testKey.Year {
		t.Errorf("Report() key fields = %+v", report)
	}

	s.Discard(testKey)
	if _, ok := s.Lookup(testKey); ok {
		t.Error("Lookup returned entry after Discard")
	}
}

func TestBeginOverwritesAndResetsSteps(t *testing.T) {
	s := NewStore()
	s.Begin(testKey, "Court-X", testBasic())
	if _, err := s.Advance(testKey, models.AgeBreakdown{}); err != nil {
		t.Fatalf("Advance() error = %v", err)
	}

	// Restarting the sequence drops step-2 completion.
	s.Begin(testKey, "Court-X", testBasic())
	_, err := s.Finalize(testKey, models.AdditionalMetrics{})
	if workflow.KindOf(err) != workflow.KindStepOrder {
		t.Errorf("Finalize after re-Begin: error = %v, want step order violation", err)
	}
}

func TestDiscardAbsentIsNoop(t *testing.T) {
	s := NewStore()
	s.Discard(testKey)

	if _, ok := s.Lookup(testKey); ok {
		t.Error("Lookup returned entry for never-created key")
	}
}

func TestLookupReturnsCopy(t *testing.T) {
	s := NewStore()
	s.Begin(testKey, "Court-X", testBasic())

	p, _ := s.Lookup(testKey)
	p.Step2Done = true

	fresh, _ := s.Lookup(testKey)
	if fresh.Step2Done {
		t.Error("mutating a Lookup result leaked into the store")
	}
}

func TestPruneOlderThan(t *testing.T) {
	s := NewStore()
	base := time.Date(2025, 1, 10, 12, 0, 0, 0, time.UTC)

	s.now = func() time.Time { return base.Add(-2 * time.Hour) }
	s.Begin(Key{CourtID: 1, Month: 1, Year: 2025}, "Old Court", testBasic())

	s.now = func() time.Time { return base }
	s.Begin(Key{CourtID: 2, Month: 1, Year: 2025}, "Fresh Court", testBasic())

	removed := s.PruneOlderThan(time.Hour)
	if removed != 1 {
		t.Fatalf("PruneOlderThan() removed = %d, want 1", removed)
	}
	if _, ok := s.Lookup(Key{CourtID: 1, Month: 1, Year: 2025}); ok {
		t.Error("stale entry survived prune")
	}
	if _, ok := s.Lookup(Key{CourtID: 2, Month: 1, Year: 2025}); !ok {
		t.Error("fresh entry was pruned")
	}
}

func TestAcquireSerializesPerKey(t *testing.T) {
	s := NewStore()

	const workers = 8
	var inSection, maxInSection int
	var sectionMu sync.Mutex
	var wg sync.WaitGroup

	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			release := s.Acquire(testKey)
			defer release()

			sectionMu.Lock()
			inSection++
			if inSection > maxInSection {
				maxInSection = inSection
			}
			sectionMu.Unlock()

			s.Begin(testKey, "Court-X", testBasic())

			sectionMu.Lock()
			inSection--
			sectionMu.Unlock()
		}()
	}
	wg.Wait()

	if maxInSection != 1 {
		t.Errorf("critical section concurrency = %d, want 1", maxInSection)
	}

	// Lock table must not leak entries once all holders release.
	s.mu.Lock()
	leaked := len(s.locks)
	s.mu.Unlock()
	if leaked != 0 {
		t.Errorf("leaked %d key locks", leaked)
	}
}

func TestAcquireDifferentKeysDoNotBlock(t *testing.T) {
	s := NewStore()

	release1 := s.Acquire(Key{CourtID: 1, Month: 1, Year: 2025})
	defer release1()

	done := make(chan struct{})
	go func() {
		release2 := s.Acquire(Key{CourtID: 2, Month: 1, Year: 2025})
		release2()
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(2 * time.Second):
		t.Fatal("Acquire on a different key blocked")
	}
}
