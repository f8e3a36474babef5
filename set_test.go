package enumlist_test

import (
	"errors"
	"testing"

	"github.com/samber/mo"
	"github.com/stretchr/testify/require"
	"github.com/xy-planning-network/enumlist"
)

func TestSet(t *testing.T) {
	s := enumlist.NewSet(IntA, IntA)
	require.Equal(t, 1, s.Len())
	require.True(t, s.Has(IntA))
	require.False(t, s.Has(IntB))

	s.Add(IntB)
	require.Equal(t, 2, s.Len())
	require.True(t, s.Has(IntB))

	require.NotNil(t, enumlist.NewSet[IntEnum]())
}

func TestNewSetCodec_ConfigErrors(t *testing.T) {
	_, err := enumlist.NewSetCodec[StrEnum](nil, enumlist.String[StrEnum])
	require.ErrorIs(t, err, enumlist.ErrBadConfig)

	_, err = enumlist.NewSetCodec(strEnum, enumlist.String[StrEnum], enumlist.WithSeparator("b"))
	require.ErrorIs(t, err, enumlist.ErrBadConfig)

	_, err = enumlist.NewSetCodec(strEnum, enumlist.Int[StrEnum])
	require.ErrorIs(t, err, enumlist.ErrBadConfig)
}

func TestSetCodec_Example(t *testing.T) {
	c, err := enumlist.NewSetCodec(intEnum, enumlist.Int[IntEnum])
	require.Nil(t, err)

	text, err := c.Encode(enumlist.NewSet(IntB, IntA))
	require.Nil(t, err)
	require.Equal(t, mo.Some("1,2"), text)

	set, err := c.Decode(mo.Some("2,1"))
	require.Nil(t, err)
	require.Equal(t, enumlist.NewSet(IntA, IntB), set)

	text, err = c.Encode(enumlist.Set[IntEnum]{})
	require.Nil(t, err)
	require.Equal(t, mo.Some(""), text)

	set, err = c.Decode(mo.Some(""))
	require.Nil(t, err)
	require.NotNil(t, set)
	require.Equal(t, 0, set.Len())
}

func TestSetCodec_Null(t *testing.T) {
	c, err := enumlist.NewSetCodec(intEnum, enumlist.Int[IntEnum])
	require.Nil(t, err)

	text, err := c.Encode(nil)
	require.Nil(t, err)
	require.True(t, text.IsAbsent())

	set, err := c.Decode(mo.None[string]())
	require.Nil(t, err)
	require.Nil(t, set)
}

func TestSetCodec_RoundTrip(t *testing.T) {
	c, err := enumlist.NewSetCodec(planets, enumlist.Int[Planet], enumlist.WithSeparator(" "))
	require.Nil(t, err)

	for _, seq := range subsequences(planets.Members()) {
		set := enumlist.NewSet(seq...)
		text, err := c.Encode(set)
		require.Nil(t, err)

		got, err := c.Decode(text)
		require.Nil(t, err)
		require.Equal(t, set, got)
	}
}

func TestSetCodec_DeclarationOrder(t *testing.T) {
	c, err := enumlist.NewSetCodec(planets, enumlist.Int[Planet])
	require.Nil(t, err)

	text, err := c.Encode(enumlist.NewSet(Saturn, Mercury, Mars))
	require.Nil(t, err)
	require.Equal(t, mo.Some("1,4,6"), text)
}

func TestSetCodec_DecodeCollapses(t *testing.T) {
	c, err := enumlist.NewSetCodec(strEnum, enumlist.String[StrEnum])
	require.Nil(t, err)

	set, err := c.Decode(mo.Some("a,b,a,a"))
	require.Nil(t, err)
	require.Equal(t, enumlist.NewSet(StrA, StrB), set)
}

func TestSetCodec_EncodeForeignMember(t *testing.T) {
	c, err := enumlist.NewSetCodec(strEnum, enumlist.String[StrEnum])
	require.Nil(t, err)

	_, err = c.Encode(enumlist.NewSet(StrA, StrEnum("c")))
	require.ErrorIs(t, err, enumlist.ErrNotValid)

	var valErr *enumlist.ValidationError
	require.True(t, errors.As(err, &valErr))
	require.Equal(t, "enumlist_test.StrEnum", valErr.Enum)
}

func TestSetCodec_DecodeUnknown(t *testing.T) {
	c, err := enumlist.NewSetCodec(strEnum, enumlist.String[StrEnum])
	require.Nil(t, err)

	set, err := c.Decode(mo.Some("a,z"))
	require.Nil(t, set)
	require.ErrorIs(t, err, enumlist.ErrNotExist)
}

func TestSetCodec_Bind(t *testing.T) {
	c, err := enumlist.NewSetCodec(intEnum, enumlist.Int[IntEnum])
	require.Nil(t, err)

	set := enumlist.NewSet(IntB, IntA)
	var nilSet *enumlist.Set[IntEnum]

	for _, tc := range []struct {
		name  string
		value any
		want  any
	}{
		{"nil", nil, nil},
		{"nil-set", enumlist.Set[IntEnum](nil), nil},
		{"nil-pointer", nilSet, nil},
		{"nil-slice", []IntEnum(nil), nil},
		{"set", set, "1,2"},
		{"pointer", &set, "1,2"},
		{"slice", []IntEnum{IntB, IntA, IntB}, "1,2"},
		{"empty", enumlist.Set[IntEnum]{}, ""},
		{"none", mo.None[enumlist.Set[IntEnum]](), nil},
		{"some", mo.Some(set), "1,2"},
	} {
		t.Run(tc.name, func(t *testing.T) {
			got, err := c.Bind(tc.value)
			require.Nil(t, err)
			require.Equal(t, tc.want, got)
		})
	}

	_, err = c.Bind(map[IntEnum]bool{IntA: true})
	require.ErrorIs(t, err, enumlist.ErrNotValid)
}

func TestSetCodec_Result(t *testing.T) {
	c, err := enumlist.NewSetCodec(intEnum, enumlist.Int[IntEnum])
	require.Nil(t, err)

	got, err := c.Result(nil)
	require.Nil(t, err)
	require.Equal(t, enumlist.Set[IntEnum](nil), got)

	got, err = c.Result([]byte("2,2"))
	require.Nil(t, err)
	require.Equal(t, enumlist.NewSet(IntB), got)

	_, err = c.Result(3.14)
	require.ErrorIs(t, err, enumlist.ErrNotValid)
}
