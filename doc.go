/*
Package enumlist stores collections of enumerated values in a single text column.

An [Enum] declares the closed set of members of a Go type whose underlying type is a string or an integer.
A [ListCodec] writes a []E as the values of its members joined by a separator and reads it back in order;
a [SetCodec] does the same for a [Set], writing members in declaration order.

	type Genre int

	const (
		Pop  Genre = 1
		Soul Genre = 2
		Jazz Genre = 3
	)

	var Genres = enumlist.MustEnum(Pop, Soul, Jazz)

	codec, err := enumlist.NewListCodec(Genres, enumlist.Int[Genre])
	text, err := codec.Encode([]Genre{Soul, Jazz}) // "2,3"

Stored text carries no escaping, so constructing a codec checks the separator against every member's value.
NULL is represented with mo.None from github.com/samber/mo and is distinct from an empty collection,
which is stored as the empty string.

Codecs implement [Column], the pair of hooks a persistence layer calls when binding parameters and reading results.
Package postgres adapts a Column into a GORM serializer.
*/
package enumlist
