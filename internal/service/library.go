package service

import (
	"context"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"sort"

	"github.com/pkg/errors"

	"github.com/factflip/backend/internal/domain/achievement"
	"github.com/factflip/backend/internal/domain/deck"
	"github.com/factflip/backend/internal/gitsource"
	"github.com/factflip/backend/internal/store"
	"github.com/factflip/backend/internal/worker"
)

// UploadDeck parses an uploaded deck file, stores it and makes it current.
// A malformed file returns an error matching deck.ErrInvalidDeck and changes
// nothing.
func (s *StudyService) UploadDeck(ctx context.Context, filename string, r io.Reader) (*deck.Deck, error) {
	d, err := deck.Parse(filename, r)
	if err != nil {
		return nil, err
	}

	if err := s.store.SaveDeck(ctx, d, s.now()); err != nil {
		return nil, err
	}
	if err := s.setCurrent(ctx, d.Name); err != nil {
		return nil, err
	}

	if _, err := s.recordProgress(ctx, func(p *achievement.Progress) {
		p.DecksUploaded++
	}); err != nil {
		return nil, err
	}

	s.logger.Info("deck uploaded", "deck", d.Name, "facts", d.Count())
	return d, nil
}

// LoadDeck makes a stored deck current.
func (s *StudyService) LoadDeck(ctx context.Context, name string) (*deck.Deck, error) {
	d, err := s.store.GetDeck(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrDeckNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := s.setCurrent(ctx, d.Name); err != nil {
		return nil, err
	}
	return d, nil
}

// LoadSample makes the sample deck current, importing it from the configured
// sample file the first time. The deck is named by the file's deckName, and
// falls back to deck.SampleName when no sample file is available.
func (s *StudyService) LoadSample(ctx context.Context) (*deck.Deck, error) {
	if s.samplePath == "" {
		return s.LoadDeck(ctx, deck.SampleName)
	}

	d, err := readDeckFile(s.samplePath)
	if errors.Is(err, fs.ErrNotExist) {
		return s.LoadDeck(ctx, deck.SampleName)
	}
	if err != nil {
		return nil, err
	}
	exists, err := s.store.DeckExists(ctx, d.Name)
	if err != nil {
		return nil, err
	}
	if !exists {
		if err := s.store.SaveDeck(ctx, d, s.now()); err != nil {
			return nil, err
		}
		s.logger.Info("sample deck imported", "deck", d.Name, "facts", d.Count())
	}
	return s.LoadDeck(ctx, d.Name)
}

// ImportFile stores the deck in a single file without changing the current
// deck.
func (s *StudyService) ImportFile(ctx context.Context, path string) (*deck.Deck, error) {
	d, err := s.importFile(ctx, path)
	if err != nil {
		return nil, err
	}
	s.logger.Info("deck imported", "deck", d.Name, "facts", d.Count(), "file", path)
	return d, nil
}

func (s *StudyService) importFile(ctx context.Context, path string) (*deck.Deck, error) {
	d, err := readDeckFile(path)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveDeck(ctx, d, s.now()); err != nil {
		return nil, err
	}
	return d, nil
}

func readDeckFile(path string) (*deck.Deck, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to open deck file %s", path)
	}
	defer f.Close()

	return deck.Parse(path, f)
}

// setCurrent switches the current deck and starts a fresh pass over it.
func (s *StudyService) setCurrent(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.store.SetSetting(ctx, store.SettingCurrentDeck, name); err != nil {
		return err
	}
	s.current = name
	s.resetCursor()
	return nil
}

// ListDecks returns the names of every stored deck.
func (s *StudyService) ListDecks(ctx context.Context) ([]string, error) {
	return s.store.ListDeckNames(ctx)
}

// GetDeck returns a stored deck.
func (s *StudyService) GetDeck(ctx context.Context, name string) (*deck.Deck, error) {
	d, err := s.store.GetDeck(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrDeckNotFound
	}
	return d, err
}

// DeleteDeck removes a deck. Deleting the current deck unloads it.
func (s *StudyService) DeleteDeck(ctx context.Context, name string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	err := s.store.DeleteDeck(ctx, name)
	if errors.Is(err, store.ErrNotFound) {
		return ErrDeckNotFound
	}
	if err != nil {
		return err
	}

	if s.current == name {
		s.current = ""
		s.resetCursor()
		if err := s.store.SetSetting(ctx, store.SettingCurrentDeck, ""); err != nil {
			return err
		}
	}

	s.logger.Info("deck deleted", "deck", name)
	return nil
}

// Status describes the current deck.
type Status struct {
	Loaded   bool
	DeckName string
	Count    int
}

func (s *StudyService) Status(ctx context.Context) (*Status, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == "" {
		return &Status{}, nil
	}

	facts, err := s.store.ListFactStates(ctx, current)
	if errors.Is(err, store.ErrNotFound) {
		return &Status{}, nil
	}
	if err != nil {
		return nil, err
	}
	return &Status{Loaded: true, DeckName: current, Count: len(facts)}, nil
}

// ExportCurrent returns the current deck in its upload format.
func (s *StudyService) ExportCurrent(ctx context.Context) (*deck.Deck, error) {
	s.mu.Lock()
	current := s.current
	s.mu.Unlock()

	if current == "" {
		return nil, ErrNoDeck
	}
	d, err := s.store.GetDeck(ctx, current)
	if errors.Is(err, store.ErrNotFound) {
		return nil, ErrNoDeck
	}
	return d, err
}

// ImportReport lists what ImportDirectory stored and what it rejected.
type ImportReport struct {
	Imported []string          // deck names
	Failed   map[string]string // file name -> reason
}

type parsed struct {
	deck *deck.Deck
	err  error
}

// ImportDirectory parses every deck file in dir in parallel and stores the
// decks that parse. Files that fail are reported, not fatal.
func (s *StudyService) ImportDirectory(ctx context.Context, dir string) (*ImportReport, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read deck directory %s", dir)
	}

	var files []string
	for _, e := range entries {
		if !e.IsDir() && deck.SupportedFile(e.Name()) {
			files = append(files, filepath.Join(dir, e.Name()))
		}
	}

	pool := worker.NewPool[parsed](s.workers, len(files))
	for _, path := range files {
		pool.Submit(path, func() parsed {
			f, err := os.Open(path)
			if err != nil {
				return parsed{err: err}
			}
			defer f.Close()
			d, err := deck.Parse(path, f)
			return parsed{deck: d, err: err}
		})
	}
	pool.Close()

	report := &ImportReport{Imported: []string{}, Failed: map[string]string{}}
	for res := range pool.Results() {
		name := filepath.Base(res.JobID)
		if res.Output.err != nil {
			report.Failed[name] = res.Output.err.Error()
			s.logger.Warn("skipping deck file", "file", name, "error", res.Output.err)
			continue
		}
		if err := s.store.SaveDeck(ctx, res.Output.deck, s.now()); err != nil {
			return nil, err
		}
		report.Imported = append(report.Imported, res.Output.deck.Name)
	}
	sort.Strings(report.Imported)

	s.logger.Info("deck directory imported", "dir", dir, "imported", len(report.Imported), "failed", len(report.Failed))
	return report, nil
}

// SyncGitSource clones or pulls a deck repository into dir and imports it.
func (s *StudyService) SyncGitSource(ctx context.Context, url, dir string) (*ImportReport, error) {
	if err := gitsource.Sync(ctx, url, dir, s.logger); err != nil {
		return nil, err
	}
	return s.ImportDirectory(ctx, dir)
}
