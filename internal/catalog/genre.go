package catalog

import (
	"fmt"

	"github.com/xy-planning-network/enumlist"
)

// A Genre is a style of music, stored by its number.
type Genre int

const (
	Pop  Genre = 1
	Soul Genre = 2
	Jazz Genre = 3
)

// Genres is every Genre.
var Genres = enumlist.MustEnum(Pop, Soul, Jazz)

func (g Genre) String() string {
	switch g {
	case Pop:
		return "pop"
	case Soul:
		return "soul"
	case Jazz:
		return "jazz"
	default:
		return fmt.Sprintf("Genre(%d)", int(g))
	}
}

func (g Genre) Valid() error {
	switch g {
	case Pop, Soul, Jazz:
		return nil
	default:
		return fmt.Errorf("%w: %s", enumlist.ErrNotValid, g)
	}
}
