// Package catalog is a small song catalog storing genres as an ordered list column
// and moods as a set column through enumlist codecs.
package catalog
