package deck_test

import (
	"errors"
	"strings"
	"testing"

	"github.com/factflip/backend/internal/domain/deck"
)

func TestNewDeck(t *testing.T) {
	d := deck.New("  Space Facts ")

	if d.Name != "Space Facts" {
		t.Errorf("expected name %q, got %q", "Space Facts", d.Name)
	}
	if d.Count() != 0 {
		t.Errorf("expected empty deck, got %d facts", d.Count())
	}
}

func TestAddFact(t *testing.T) {
	d := deck.New("Space")

	added, err := d.AddFact("The Sun is a star.", "", "", []string{" Astronomy", "astronomy", "Sun"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !added {
		t.Fatal("expected fact to be added")
	}

	f := d.Facts[0]
	if f.ID == "" {
		t.Error("expected fact ID to be set")
	}
	if f.DeckName != "Space" {
		t.Errorf("expected deck name %q, got %q", "Space", f.DeckName)
	}
	if strings.Join(f.Tags, ",") != "astronomy,sun" {
		t.Errorf("expected normalized tags, got %v", f.Tags)
	}
}

func TestAddFact_EmptyContent(t *testing.T) {
	d := deck.New("Space")

	if _, err := d.AddFact("   ", "", "", nil); err == nil {
		t.Error("expected error for empty content, got nil")
	}
	if d.Count() != 0 {
		t.Error("expected no facts after failed add")
	}
}

func TestAddFact_DuplicateCollapsed(t *testing.T) {
	d := deck.New("Space")
	d.AddFact("Mars is red.", "", "", nil)

	added, err := d.AddFact("  mars is RED. ", "", "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if added {
		t.Error("expected duplicate fact to be ignored")
	}
	if d.Count() != 1 {
		t.Errorf("expected 1 fact, got %d", d.Count())
	}
}

func TestFactID_StableAcrossDecks(t *testing.T) {
	a := deck.FactID("Space", "Mars is red.", "")
	b := deck.FactID("Space", "Mars is red.", "")
	c := deck.FactID("Planets", "Mars is red.", "")

	if a != b {
		t.Error("expected identical facts to share an ID")
	}
	if a == c {
		t.Error("expected facts from different decks to have different IDs")
	}
	if len(a) != 16 {
		t.Errorf("expected 16-character ID, got %d", len(a))
	}
}

func TestHasAnyTag(t *testing.T) {
	d := deck.New("Space")
	d.AddFact("Jupiter is big.", "", "", []string{"planets", "gas"})
	f := d.Facts[0]

	if !f.HasAnyTag(nil) {
		t.Error("expected empty filter to match")
	}
	if !f.HasAnyTag([]string{"Moons", "GAS"}) {
		t.Error("expected case-insensitive tag match")
	}
	if f.HasAnyTag([]string{"stars"}) {
		t.Error("expected no match for unrelated tag")
	}
}

func TestFileName(t *testing.T) {
	if got := deck.FileName("Sample Facts"); got != deck.SampleName {
		t.Errorf("expected %q, got %q", deck.SampleName, got)
	}
}

func TestParseJSON(t *testing.T) {
	testCases := []struct {
		name          string
		input         string
		expectedName  string
		expectedFacts int
		expectedErr   string
	}{
		{
			name:          "string facts",
			input:         `{"deckName": "Animals", "facts": ["Cats purr.", "Dogs bark."]}`,
			expectedName:  "Animals",
			expectedFacts: 2,
		},
		{
			name: "object facts",
			input: `{"deckName": "Capitals", "facts": [
				{"front": "Capital of France?", "back": "Paris", "tags": ["europe"]},
				{"content": "Capital of Japan?", "back": "Tokyo", "image": "tokyo.png"}
			]}`,
			expectedName:  "Capitals",
			expectedFacts: 2,
		},
		{
			name:        "missing deck name",
			input:       `{"facts": ["A fact."]}`,
			expectedErr: "Invalid JSON format: must have deckName and facts array",
		},
		{
			name:        "empty facts",
			input:       `{"deckName": "Empty", "facts": []}`,
			expectedErr: "Invalid JSON format: must have deckName and facts array",
		},
		{
			name:        "blank fact",
			input:       `{"deckName": "Blank", "facts": ["  "]}`,
			expectedErr: "Invalid JSON format: must have deckName and facts array",
		},
		{
			name:        "not json",
			input:       `deckName: nope`,
			expectedErr: "Invalid JSON file",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			d, err := deck.ParseJSON(strings.NewReader(tc.input))
			if tc.expectedErr != "" {
				if err == nil {
					t.Fatal("expected an error, got nil")
				}
				if !errors.Is(err, deck.ErrInvalidDeck) {
					t.Errorf("expected ErrInvalidDeck, got %v", err)
				}
				var perr *deck.ParseError
				if !errors.As(err, &perr) || perr.Reason != tc.expectedErr {
					t.Errorf("expected reason %q, got %v", tc.expectedErr, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseJSON() returned an unexpected error: %v", err)
			}
			if d.Name != tc.expectedName {
				t.Errorf("expected deck name %q, got %q", tc.expectedName, d.Name)
			}
			if d.Count() != tc.expectedFacts {
				t.Errorf("expected %d facts, got %d", tc.expectedFacts, d.Count())
			}
		})
	}
}

func TestParseJSON_ObjectFields(t *testing.T) {
	d, err := deck.ParseJSON(strings.NewReader(`{"deckName": "Capitals", "facts": [{"front": "Capital of France?", "back": "Paris", "image": "paris.png", "tags": ["Europe"]}]}`))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f := d.Facts[0]
	if f.Content != "Capital of France?" || f.Back != "Paris" || f.Image != "paris.png" {
		t.Errorf("unexpected fact fields: %+v", f)
	}
	if len(f.Tags) != 1 || f.Tags[0] != "europe" {
		t.Errorf("expected tags [europe], got %v", f.Tags)
	}
}

func TestParse_Dispatch(t *testing.T) {
	d, err := deck.Parse("decks/Go_Basics.md", strings.NewReader("Q: What is a goroutine?\nA: A lightweight thread"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if d.Name != "Go_Basics" {
		t.Errorf("expected deck name from file name, got %q", d.Name)
	}

	if _, err := deck.Parse("deck.csv", strings.NewReader("a,b")); !errors.Is(err, deck.ErrInvalidDeck) {
		t.Errorf("expected ErrInvalidDeck for unsupported type, got %v", err)
	}
}
