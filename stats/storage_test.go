package stats

import (
	"testing"
	"time"
)

func newTestStorage(t *testing.T) *Storage {
	t.Helper()
	s, err := NewStorage(t.TempDir())
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	t.Cleanup(func() { s.Shutdown() })
	return s
}

func TestRecordAnalysis(t *testing.T) {
	s := newTestStorage(t)

	s.RecordAnalysis(false, 0)
	s.RecordAnalysis(true, 0)
	s.RecordAnalysis(false, 1)

	got := s.GetCurrentStats()
	if got.Analyses != 3 {
		t.Errorf("Analyses = %d, want 3", got.Analyses)
	}
	if got.CacheHits != 1 {
		t.Errorf("CacheHits = %d, want 1", got.CacheHits)
	}
	if got.CacheMisses != 2 {
		t.Errorf("CacheMisses = %d, want 2", got.CacheMisses)
	}
	if got.CategoryFailures != 1 {
		t.Errorf("CategoryFailures = %d, want 1", got.CategoryFailures)
	}
	if got.LastUpdated.IsZero() {
		t.Error("LastUpdated not set")
	}
}

func TestRecordFetchFailure(t *testing.T) {
	s := newTestStorage(t)

	s.RecordFetchFailure()
	s.RecordFetchFailure()

	if got := s.GetCurrentStats().FetchFailures; got != 2 {
		t.Errorf("FetchFailures = %d, want 2", got)
	}
}

func TestPersistenceAcrossRestarts(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage: %v", err)
	}
	first.RecordAnalysis(false, 0)
	if err := first.save(); err != nil {
		t.Fatalf("save: %v", err)
	}
	first.Shutdown()

	second, err := NewStorage(dir)
	if err != nil {
		t.Fatalf("NewStorage after restart: %v", err)
	}
	defer second.Shutdown()

	if got := second.GetCurrentStats().Analyses; got != 1 {
		t.Errorf("Analyses after reload = %d, want 1", got)
	}
}

func TestCleanupKeepsRecentMonths(t *testing.T) {
	s := newTestStorage(t)

	current := time.Now().Format("2006-01")
	previous := time.Now().AddDate(0, -1, 0).Format("2006-01")
	stale := time.Now().AddDate(0, -6, 0).Format("2006-01")

	s.mutex.Lock()
	s.stats[current] = &MonthlyStats{Analyses: 1}
	s.stats[previous] = &MonthlyStats{Analyses: 2}
	s.stats[stale] = &MonthlyStats{Analyses: 3}
	s.mutex.Unlock()

	s.Cleanup()

	months := s.GetAllMonths()
	if len(months) != 2 {
		t.Fatalf("months after cleanup = %v, want current and previous only", months)
	}
	if months[0] != current || months[1] != previous {
		t.Errorf("months = %v, want [%s %s]", months, current, previous)
	}
}
