// Package scholar provides the publication metrics snapshot and the
// same-day cache that serves it.
package scholar

import (
	"fmt"
	"time"
)

// Fallback counts shown when neither the cache nor a source can answer.
const (
	FallbackCitations    = 255
	FallbackHIndex       = 8
	FallbackPublications = 18
)

// Metrics is one snapshot of a researcher's publication metrics. The JSON
// shape is the persisted layout.
type Metrics struct {
	TotalCitations   int       `json:"totalCitations"`
	HIndex           int       `json:"hIndex"`
	PublicationCount int       `json:"publicationCount"`
	LastUpdated      time.Time `json:"lastUpdated"`
}

// Validate rejects negative counts.
func (m Metrics) Validate() error {
	switch {
	case m.TotalCitations < 0:
		return fmt.Errorf("%w: totalCitations %d", ErrInvalidMetrics, m.TotalCitations)
	case m.HIndex < 0:
		return fmt.Errorf("%w: hIndex %d", ErrInvalidMetrics, m.HIndex)
	case m.PublicationCount < 0:
		return fmt.Errorf("%w: publicationCount %d", ErrInvalidMetrics, m.PublicationCount)
	}
	return nil
}

// SameCounts reports whether m and o carry the same counts, ignoring the
// timestamp.
func (m Metrics) SameCounts(o Metrics) bool {
	return m.TotalCitations == o.TotalCitations &&
		m.HIndex == o.HIndex &&
		m.PublicationCount == o.PublicationCount
}

// DefaultFallback returns the fallback counts stamped with at.
func DefaultFallback(at time.Time) Metrics {
	return Metrics{
		TotalCitations:   FallbackCitations,
		HIndex:           FallbackHIndex,
		PublicationCount: FallbackPublications,
		LastUpdated:      at.UTC(),
	}
}

// Partial is a subset of Metrics used for manual corrections. Nil fields keep
// the base value. LastUpdated is not settable.
type Partial struct {
	TotalCitations   *int `json:"totalCitations,omitempty"`
	HIndex           *int `json:"hIndex,omitempty"`
	PublicationCount *int `json:"publicationCount,omitempty"`
}

// Apply overlays the set fields of p on base.
func (p Partial) Apply(base Metrics) Metrics {
	out := base
	if p.TotalCitations != nil {
		out.TotalCitations = *p.TotalCitations
	}
	if p.HIndex != nil {
		out.HIndex = *p.HIndex
	}
	if p.PublicationCount != nil {
		out.PublicationCount = *p.PublicationCount
	}
	return out
}

// Validate rejects negative values among the set fields.
func (p Partial) Validate() error {
	return p.Apply(Metrics{}).Validate()
}
