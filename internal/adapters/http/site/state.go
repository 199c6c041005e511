package site

import (
	"net/url"
	"strconv"

	"github.com/okian/scholarfolio/internal/domain/content"
)

// Work samples code tabs.
const (
	SamplesRepositories = "repositories"
	SamplesMDAnalysis   = "md-analysis"
)

// viewState is the per-render UI state carried in the query string. Invalid
// values fall back to the defaults.
type viewState struct {
	Card    int
	Samples string
	Codes   string
}

func defaultState() viewState {
	return viewState{Card: -1, Samples: SamplesRepositories, Codes: content.DefaultCategory}
}

func parseState(q url.Values, highlights int) viewState {
	s := defaultState()
	if n, err := strconv.Atoi(q.Get("card")); err == nil && n >= 0 && n < highlights {
		s.Card = n
	}
	if v := q.Get("samples"); v == SamplesMDAnalysis {
		s.Samples = v
	}
	if _, ok := content.Category(q.Get("codes")); ok {
		s.Codes = q.Get("codes")
	}
	return s
}

// CardOpen reports whether highlight i is expanded.
func (s viewState) CardOpen(i int) bool { return s.Card == i }

// CardHref toggles highlight i.
func (s viewState) CardHref(i int) string {
	if s.Card == i {
		s.Card = -1
	} else {
		s.Card = i
	}
	return s.href("about")
}

// SamplesHref selects a work samples tab.
func (s viewState) SamplesHref(tab string) string {
	s.Samples = tab
	return s.href("work-samples")
}

// CodesHref selects a code category.
func (s viewState) CodesHref(id string) string {
	s.Codes = id
	return s.href("codes")
}

// href encodes the non-default fields only.
func (s viewState) href(anchor string) string {
	q := url.Values{}
	if s.Card >= 0 {
		q.Set("card", strconv.Itoa(s.Card))
	}
	if s.Samples != SamplesRepositories {
		q.Set("samples", s.Samples)
	}
	if s.Codes != content.DefaultCategory {
		q.Set("codes", s.Codes)
	}
	if len(q) == 0 {
		return "/#" + anchor
	}
	return "/?" + q.Encode() + "#" + anchor
}
