package deck

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
)

// ErrInvalidDeck is matched by every ParseError.
var ErrInvalidDeck = errors.New("invalid deck")

// ParseError describes why an uploaded deck was rejected. Reason is safe to
// show to users.
type ParseError struct {
	Reason  string
	Wrapped error
}

func (e *ParseError) Error() string {
	if e.Wrapped != nil {
		return fmt.Sprintf("%s: %v", e.Reason, e.Wrapped)
	}
	return e.Reason
}

func (e *ParseError) Unwrap() error {
	return e.Wrapped
}

func (e *ParseError) Is(target error) bool {
	return target == ErrInvalidDeck
}

const (
	reasonInvalidJSON   = "Invalid JSON file"
	reasonInvalidFormat = "Invalid JSON format: must have deckName and facts array"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

// rawDeck mirrors the upload format {"deckName": ..., "facts": [...]}.
type rawDeck struct {
	DeckName string    `json:"deckName" validate:"required"`
	Facts    []rawFact `json:"facts" validate:"required,min=1,dive"`
}

// rawFact accepts either a bare string or an object.
type rawFact struct {
	Content string   `json:"content" validate:"required"`
	Back    string   `json:"back"`
	Image   string   `json:"image"`
	Tags    []string `json:"tags"`
}

func (f *rawFact) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		return json.Unmarshal(data, &f.Content)
	}

	var obj struct {
		Content string   `json:"content"`
		Front   string   `json:"front"`
		Fact    string   `json:"fact"`
		Back    string   `json:"back"`
		Image   string   `json:"image"`
		Tags    []string `json:"tags"`
	}
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}

	f.Content = firstNonEmpty(obj.Content, obj.Front, obj.Fact)
	f.Back = obj.Back
	f.Image = obj.Image
	f.Tags = obj.Tags
	return nil
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if strings.TrimSpace(v) != "" {
			return v
		}
	}
	return ""
}

// ParseJSON reads a deck in the JSON upload format.
func ParseJSON(r io.Reader) (*Deck, error) {
	var raw rawDeck
	if err := json.NewDecoder(r).Decode(&raw); err != nil {
		return nil, &ParseError{Reason: reasonInvalidJSON, Wrapped: err}
	}

	raw.DeckName = strings.TrimSpace(raw.DeckName)
	for i := range raw.Facts {
		raw.Facts[i].Content = strings.TrimSpace(raw.Facts[i].Content)
	}
	if err := validate.Struct(raw); err != nil {
		return nil, &ParseError{Reason: reasonInvalidFormat, Wrapped: err}
	}

	d := New(raw.DeckName)
	for _, f := range raw.Facts {
		if _, err := d.AddFact(f.Content, f.Back, f.Image, f.Tags); err != nil {
			return nil, &ParseError{Reason: reasonInvalidFormat, Wrapped: err}
		}
	}
	return d, nil
}

// Parse picks a parser from the file extension. Markdown decks take their
// name from the file name.
func Parse(filename string, r io.Reader) (*Deck, error) {
	ext := strings.ToLower(filepath.Ext(filename))
	switch ext {
	case ".json":
		return ParseJSON(r)
	case ".md", ".markdown":
		name := strings.TrimSuffix(filepath.Base(filename), filepath.Ext(filename))
		return ParseMarkdown(name, r)
	default:
		return nil, &ParseError{Reason: fmt.Sprintf("Unsupported deck file type %q", ext)}
	}
}

// SupportedFile reports whether Parse understands the file.
func SupportedFile(filename string) bool {
	switch strings.ToLower(filepath.Ext(filename)) {
	case ".json", ".md", ".markdown":
		return true
	}
	return false
}
