package enumlist_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enumlist"
)

type Int8Enum int8

func (e Int8Enum) String() string { return "" }
func (e Int8Enum) Valid() error   { return nil }

func TestInt(t *testing.T) {
	for _, tc := range []struct {
		name  string
		token string
		want  IntEnum
		err   bool
	}{
		{"zero", "0", 0, false},
		{"one", "1", IntA, false},
		{"padded", " 2 ", IntB, false},
		{"negative", "-4", IntEnum(-4), false},
		{"empty", "", 0, true},
		{"letters", "a", 0, true},
		{"float", "1.0", 0, true},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := enumlist.Int[IntEnum](tc.token)
			if tc.err {
				require.ErrorIs(t, err, enumlist.ErrNotValid)
				return
			}

			require.Nil(t, err)
			require.Equal(t, tc.want, got)
		})
	}
}

func TestInt_Overflow(t *testing.T) {
	got, err := enumlist.Int[Int8Enum]("127")
	require.Nil(t, err)
	require.Equal(t, Int8Enum(127), got)

	_, err = enumlist.Int[Int8Enum]("128")
	require.ErrorIs(t, err, enumlist.ErrNotValid)
}

func TestInt_WrongKind(t *testing.T) {
	_, err := enumlist.Int[StrEnum]("1")
	require.ErrorIs(t, err, enumlist.ErrNotValid)

	_, err = enumlist.Int[UintEnum]("1")
	require.ErrorIs(t, err, enumlist.ErrNotValid)
}

func TestUint(t *testing.T) {
	got, err := enumlist.Uint[UintEnum]("200")
	require.Nil(t, err)
	require.Equal(t, UintHigh, got)

	_, err = enumlist.Uint[UintEnum]("256")
	require.ErrorIs(t, err, enumlist.ErrNotValid)

	_, err = enumlist.Uint[UintEnum]("-1")
	require.ErrorIs(t, err, enumlist.ErrNotValid)

	_, err = enumlist.Uint[IntEnum]("1")
	require.ErrorIs(t, err, enumlist.ErrNotValid)
}

func TestString(t *testing.T) {
	got, err := enumlist.String[StrEnum]("b")
	require.Nil(t, err)
	require.Equal(t, StrB, got)

	got, err = enumlist.String[StrEnum](" b")
	require.Nil(t, err)
	require.Equal(t, StrEnum(" b"), got)

	_, err = enumlist.String[IntEnum]("1")
	require.ErrorIs(t, err, enumlist.ErrNotValid)
}
