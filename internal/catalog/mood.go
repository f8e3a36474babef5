package catalog

import (
	"fmt"

	"github.com/xy-planning-network/enumlist"
)

// A Mood is how a song feels.
type Mood string

const (
	Calm   Mood = "calm"
	Upbeat Mood = "upbeat"
	Moody  Mood = "moody"
)

// Moods is every Mood.
var Moods = enumlist.MustEnum(Calm, Upbeat, Moody)

func (m Mood) String() string { return string(m) }

func (m Mood) Valid() error {
	switch m {
	case Calm, Upbeat, Moody:
		return nil
	default:
		return fmt.Errorf("%w: mood %q", enumlist.ErrNotValid, string(m))
	}
}
