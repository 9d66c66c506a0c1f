// Package analyzer implements the multi-dimensional scoring engine: four
// independent analyzers over an immutable page snapshot, a table-driven
// score normalizer, and a weighted aggregator producing one report.
package analyzer

import (
	"sync"

	"github.com/geosearch/backend/snapshot"
)

// categoryAnalyzer is the common shape of the four top-level analyzers.
type categoryAnalyzer interface {
	Analyze(snap *snapshot.PageSnapshot) (Result, error)
}

// Pipeline fans the snapshot out to the analyzers in parallel, joins their
// outputs, and hands the merged set to the aggregator. It holds no state
// across runs; analyzing the same snapshot twice yields identical reports.
type Pipeline struct {
	aggregator *Aggregator
	analyzers  map[string]categoryAnalyzer
}

// NewPipeline validates the scoring configuration and wires the analyzers.
// Configuration problems surface here, before any analysis runs.
func NewPipeline(cfg ScoringConfig) (*Pipeline, error) {
	aggregator, err := NewAggregator(cfg)
	if err != nil {
		return nil, err
	}
	return &Pipeline{
		aggregator: aggregator,
		analyzers: map[string]categoryAnalyzer{
			CategorySEO:             &StructuralSEOAnalyzer{},
			CategoryHeuristics:      &StructuralHeuristicAnalyzer{},
			CategoryCrawlability:    &CrawlabilityAnalyzer{},
			CategoryTextReadability: &TextReadabilityAnalyzer{},
		},
	}, nil
}

// Run executes all analyzers concurrently over the read-only snapshot and
// aggregates their results. One analyzer failing marks its category
// unavailable; the siblings still complete and score.
func (p *Pipeline) Run(snap *snapshot.PageSnapshot) (*Report, error) {
	var (
		wg     sync.WaitGroup
		mu     sync.Mutex
		inputs = make(map[string]categoryInput, len(p.analyzers))
	)

	for name, a := range p.analyzers {
		wg.Add(1)
		go func(name string, a categoryAnalyzer) {
			defer wg.Done()
			result, err := a.Analyze(snap)
			mu.Lock()
			inputs[name] = categoryInput{name: name, result: result, failure: err}
			mu.Unlock()
		}(name, a)
	}
	wg.Wait()

	return p.aggregator.Aggregate(snap.URL, snap.FetchedAt, inputs)
}
