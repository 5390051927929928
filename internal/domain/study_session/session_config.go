package studysession

import (
	"fmt"
	"time"
)

// Mode selects how the next fact is picked.
type Mode string

const (
	ModeSpaced     Mode = "spaced"     // due facts first, then new ones
	ModeRandom     Mode = "random"     // random cycle through the deck
	ModeSequential Mode = "sequential" // deck order, wrapping
)

// ParseMode validates a mode name. An empty name yields ModeSpaced.
func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case "":
		return ModeSpaced, nil
	case ModeSpaced, ModeRandom, ModeSequential:
		return m, nil
	default:
		return "", fmt.Errorf("unknown study mode %q", s)
	}
}

// Config holds optional constraints for a study session.
type Config struct {
	Mode      Mode
	FactLimit *int           // nil = no cap on facts studied
	TimeLimit *time.Duration // nil = no time limit
	Tags      []string       // empty = every fact
}

// DefaultConfig returns a config with no constraints.
func DefaultConfig() Config {
	return Config{
		Mode:      ModeSpaced,
		FactLimit: nil,
		TimeLimit: nil,
	}
}
