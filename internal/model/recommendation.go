package model

import (
	"sort"
	"strings"
)

// Preferences is the input to a recommendation request.
type Preferences struct {
	Occasion string   `json:"occasion"`
	Mood     string   `json:"mood"`
	Scents   []string `json:"scents"`
}

// Normalize returns a copy with trimmed labels and a sorted, de-duplicated scent set.
func (p Preferences) Normalize() Preferences {
	seen := make(map[string]struct{}, len(p.Scents))
	scents := make([]string, 0, len(p.Scents))
	for _, s := range p.Scents {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		key := strings.ToLower(s)
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		scents = append(scents, s)
	}
	sort.Slice(scents, func(i, j int) bool {
		return strings.ToLower(scents[i]) < strings.ToLower(scents[j])
	})

	return Preferences{
		Occasion: strings.TrimSpace(p.Occasion),
		Mood:     strings.TrimSpace(p.Mood),
		Scents:   scents,
	}
}

// Key identifies a normalized preference set, ignoring scent order and case.
func (p Preferences) Key() string {
	n := p.Normalize()
	lower := make([]string, len(n.Scents))
	for i, s := range n.Scents {
		lower[i] = strings.ToLower(s)
	}
	return strings.ToLower(n.Occasion) + "|" + strings.ToLower(n.Mood) + "|" + strings.Join(lower, ",")
}

// Recommendation is a suggested product and the reasons for it.
type Recommendation struct {
	ProductID          string `json:"productId"`
	Reasoning          string `json:"reasoning"`
	OccasionSuggestion string `json:"occasionSuggestion"`
}
