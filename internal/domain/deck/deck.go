package deck

import (
	"errors"
	"sort"
	"strings"
	"time"
)

// SampleName is the deck loaded by /load_sample.
const SampleName = "Sample_Facts"

// Fact is a single flashcard-style study item. Scheduling state lives in the
// store and is never part of the Fact value itself.
type Fact struct {
	ID       string   `json:"id"`
	DeckName string   `json:"-"`
	Content  string   `json:"content"`
	Back     string   `json:"back,omitempty"`
	Image    string   `json:"image,omitempty"`
	Tags     []string `json:"tags"`
	Position int      `json:"-"`
}

// Deck is a named, ordered collection of facts.
type Deck struct {
	Name  string `json:"deckName"`
	Facts []Fact `json:"facts"`

	CreatedAt time.Time `json:"-"`
	UpdatedAt time.Time `json:"-"`
}

// New creates an empty deck.
func New(name string) *Deck {
	return &Deck{
		Name:  strings.TrimSpace(name),
		Facts: []Fact{},
	}
}

// AddFact appends a fact, deriving its stable ID. A fact whose ID is already
// present is ignored and reported as not added.
func (d *Deck) AddFact(content, back, image string, tags []string) (bool, error) {
	content = strings.TrimSpace(content)
	if content == "" {
		return false, errors.New("fact content cannot be empty")
	}

	factID := FactID(d.Name, content, back)
	for _, f := range d.Facts {
		if f.ID == factID {
			return false, nil
		}
	}

	d.Facts = append(d.Facts, Fact{
		ID:       factID,
		DeckName: d.Name,
		Content:  content,
		Back:     strings.TrimSpace(back),
		Image:    strings.TrimSpace(image),
		Tags:     NormalizeTags(tags),
		Position: len(d.Facts),
	})
	return true, nil
}

// Count returns the number of facts in the deck.
func (d *Deck) Count() int {
	return len(d.Facts)
}

// Fact looks up a fact by ID.
func (d *Deck) Fact(factID string) (Fact, bool) {
	for _, f := range d.Facts {
		if f.ID == factID {
			return f, true
		}
	}
	return Fact{}, false
}

// HasAnyTag reports whether the fact carries at least one of tags.
// An empty filter matches every fact.
func (f Fact) HasAnyTag(tags []string) bool {
	if len(tags) == 0 {
		return true
	}
	for _, want := range NormalizeTags(tags) {
		for _, have := range f.Tags {
			if have == want {
				return true
			}
		}
	}
	return false
}

// NormalizeTags trims, lower-cases, de-duplicates and sorts tags.
func NormalizeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	out := make([]string, 0, len(tags))
	for _, t := range tags {
		t = strings.ToLower(strings.TrimSpace(t))
		if t == "" || seen[t] {
			continue
		}
		seen[t] = true
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

// FileName converts a deck name into the name used for deck files.
func FileName(deckName string) string {
	return strings.ReplaceAll(strings.TrimSpace(deckName), " ", "_")
}
