package analyzer

import (
	"fmt"
	"math"
)

// CurveKind selects how a raw value maps onto [0,100].
type CurveKind string

const (
	// CurveBoolean maps true to 100 and false to 0.
	CurveBoolean CurveKind = "boolean"
	// CurveRange maps values inside [OptimalMin, OptimalMax] to 100,
	// degrading linearly to 0 at ZeroMin / ZeroMax outside the band.
	CurveRange CurveKind = "range"
	// CurvePenalty maps counts to 100 - min(100, count*PerOccurrence).
	CurvePenalty CurveKind = "penalty"
	// CurveDuration maps durations to 100 at or below FastMs, 0 at or
	// above SlowMs, linear in between.
	CurveDuration CurveKind = "duration"
	// CurveClamp clamps the raw value itself into [0,100].
	CurveClamp CurveKind = "clamp"
)

// Curve is one entry of the normalization table.
type Curve struct {
	Kind          CurveKind `json:"kind"`
	OptimalMin    float64   `json:"optimalMin,omitempty"`
	OptimalMax    float64   `json:"optimalMax,omitempty"`
	ZeroMin       float64   `json:"zeroMin,omitempty"`
	ZeroMax       float64   `json:"zeroMax,omitempty"`
	PerOccurrence float64   `json:"perOccurrence,omitempty"`
	FastMs        float64   `json:"fastMs,omitempty"`
	SlowMs        float64   `json:"slowMs,omitempty"`
}

// Normalizer maps raw metrics onto [0,100] sub-scores. It is a pure,
// table-driven function: no analyzer-specific logic beyond the lookup.
type Normalizer struct {
	table map[string]Curve
}

// NewNormalizer validates the table up front; an unknown curve kind or an
// incoherent range is a ConfigurationError before any analysis runs.
func NewNormalizer(table map[string]Curve) (*Normalizer, error) {
	for name, curve := range table {
		switch curve.Kind {
		case CurveBoolean, CurveClamp:
		case CurveRange:
			if curve.OptimalMin > curve.OptimalMax {
				return nil, ConfigurationError{Reason: fmt.Sprintf("curve for %q has optimalMin > optimalMax", name)}
			}
			if curve.ZeroMin > curve.OptimalMin || curve.ZeroMax < curve.OptimalMax {
				return nil, ConfigurationError{Reason: fmt.Sprintf("curve for %q has zero bounds inside the optimal band", name)}
			}
		case CurvePenalty:
			if curve.PerOccurrence <= 0 {
				return nil, ConfigurationError{Reason: fmt.Sprintf("curve for %q needs a positive perOccurrence", name)}
			}
		case CurveDuration:
			if curve.SlowMs <= curve.FastMs {
				return nil, ConfigurationError{Reason: fmt.Sprintf("curve for %q needs slowMs > fastMs", name)}
			}
		default:
			return nil, ConfigurationError{Reason: fmt.Sprintf("unknown curve kind %q for %q", curve.Kind, name)}
		}
	}
	return &Normalizer{table: table}, nil
}

// Normalize maps one raw metric to its normalized score. Metrics without a
// table entry are a ConfigurationError; construction validates the table,
// so hitting this at runtime means an analyzer emitted an unknown name.
func (n *Normalizer) Normalize(m RawMetric) (NormalizedScore, error) {
	curve, ok := n.table[m.Name]
	if !ok {
		return NormalizedScore{}, ConfigurationError{Reason: fmt.Sprintf("no normalization curve for metric %q", m.Name)}
	}

	var score float64
	switch curve.Kind {
	case CurveBoolean:
		if m.Value >= 1 {
			score = 100
		}
	case CurveRange:
		score = rangeScore(m.Value, curve)
	case CurvePenalty:
		score = 100 - math.Min(100, m.Value*curve.PerOccurrence)
	case CurveDuration:
		switch {
		case m.Value <= curve.FastMs:
			score = 100
		case m.Value >= curve.SlowMs:
			score = 0
		default:
			score = 100 * (curve.SlowMs - m.Value) / (curve.SlowMs - curve.FastMs)
		}
	case CurveClamp:
		score = m.Value
	}

	return NormalizedScore{
		Metric: m.Name,
		Score:  clamp(score),
		Rule:   string(curve.Kind),
	}, nil
}

func rangeScore(v float64, c Curve) float64 {
	switch {
	case v >= c.OptimalMin && v <= c.OptimalMax:
		return 100
	case v < c.OptimalMin:
		if c.OptimalMin == c.ZeroMin {
			return 0
		}
		return 100 * (v - c.ZeroMin) / (c.OptimalMin - c.ZeroMin)
	default:
		if c.ZeroMax == c.OptimalMax {
			return 0
		}
		return 100 * (c.ZeroMax - v) / (c.ZeroMax - c.OptimalMax)
	}
}

func clamp(score float64) float64 {
	if score < 0 {
		return 0
	}
	if score > 100 {
		return 100
	}
	return score
}
