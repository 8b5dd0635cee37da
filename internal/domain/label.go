package domain

import (
	"slices"
	"strings"
)

// Vocabulary is a set of lower-case substrings marking a label as food
// related. Matching is by substring, not whole word.
type Vocabulary []string

// DefaultVocabulary is used when no vocabulary is configured.
var DefaultVocabulary = Vocabulary{
	"food",
	"cuisine",
	"dish",
	"meal",
	"ingredient",
	"dessert",
	"breakfast",
	"lunch",
	"dinner",
	"fruit",
	"vegetable",
	"meat",
	"baked goods",
	"beverage",
	"drink",
	"pizza",
	"tomato",
	"bread",
	"cheese",
	"pasta",
	"salad",
	"soup",
	"sandwich",
	"cake",
	"produce",
	"snack",
	"recipe",
}

// RawLabel is a single label as returned by the vision service.
type RawLabel struct {
	Description string
	Score       float64
}

type Label struct {
	Label  string  `json:"label"   bson:"label"`
	Score  float64 `json:"score"   bson:"score"`
	IsFood bool    `json:"is_food" bson:"is_food"`
}

// NewVocabulary lower-cases and trims words, dropping empty ones. An empty
// result falls back to DefaultVocabulary.
func NewVocabulary(words []string) Vocabulary {
	v := make(Vocabulary, 0, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			v = append(v, w)
		}
	}

	if len(v) == 0 {
		return DefaultVocabulary
	}

	return v
}

// IsFood reports whether the lower-cased description contains any
// vocabulary entry.
func (v Vocabulary) IsFood(description string) bool {
	lower := strings.ToLower(description)
	for _, word := range v {
		if strings.Contains(lower, word) {
			return true
		}
	}
	return false
}

// Rank tags every label and orders them by score, highest first. Labels with
// equal scores keep their input order. Nothing is dropped or merged.
func (v Vocabulary) Rank(raw []RawLabel) []Label {
	labels := make([]Label, 0, len(raw))
	for _, r := range raw {
		labels = append(labels, Label{
			Label:  r.Description,
			Score:  r.Score,
			IsFood: v.IsFood(r.Description),
		})
	}

	slices.SortStableFunc(labels, func(a, b Label) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		default:
			return 0
		}
	})

	return labels
}
