package service

import (
	"context"

	"github.com/pkg/errors"

	"github.com/factflip/backend/internal/store"
)

// Tags lists the tags of the current deck, or of every deck when none is
// loaded.
func (s *StudyService) Tags(ctx context.Context) ([]string, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	return s.store.ListTags(ctx, current)
}

// UpdateFactTags replaces a fact's tags and returns the normalized set.
func (s *StudyService) UpdateFactTags(ctx context.Context, factID string, tags []string) ([]string, error) {
	updated, err := s.store.UpdateFactTags(ctx, factID, tags)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrFactNotFound
	}
	return updated, err
}

// FactDetails is a fact with its scheduling state and rendered HTML.
type FactDetails struct {
	store.FactState
	ContentHTML string
	BackHTML    string
}

func (s *StudyService) FactDetails(ctx context.Context, factID string) (*FactDetails, error) {
	fs, err := s.store.GetFact(ctx, factID)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrFactNotFound
	}
	if err != nil {
		return nil, err
	}

	contentHTML, err := s.markdown.HTML(fs.Fact.Content)
	if err != nil {
		return nil, err
	}
	backHTML, err := s.markdown.HTML(fs.Fact.Back)
	if err != nil {
		return nil, err
	}

	return &FactDetails{
		FactState:   *fs,
		ContentHTML: contentHTML,
		BackHTML:    backHTML,
	}, nil
}
