package postgres

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestPending(t *testing.T) {
	all := []Migration{{Key: "one"}, {Key: "two"}, {Key: "three"}}

	for _, tc := range []struct {
		name string
		ran  []string
		want []string
	}{
		{"none-ran", nil, []string{"one", "two", "three"}},
		{"some-ran", []string{"two"}, []string{"one", "three"}},
		{"all-ran", []string{"three", "one", "two"}, nil},
		{"unknown-ran", []string{"zero"}, []string{"one", "two", "three"}},
	} {
		t.Run(tc.name, func(t *testing.T) {
			var got []string
			for _, m := range pending(tc.ran, all) {
				got = append(got, m.Key)
			}

			require.Equal(t, tc.want, got)
		})
	}
}
