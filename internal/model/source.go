// Package model defines the data structures shared by the extraction core and its adapters.
package model

// Path represents a file system path.
type Path string

// SourceFile is one JavaScript text of the corpus, addressed by URL or local path.
// It is never mutated once built.
type SourceFile struct {
	Identifier string
	Content    string
}

// Corpus is the ordered set of source files analyzed in one run. The order is
// significant: aggregation keeps the first operation seen in corpus order.
type Corpus []SourceFile

// Identifiers returns the identifiers of the corpus in order.
func (c Corpus) Identifiers() []string {
	ids := make([]string, 0, len(c))
	for _, f := range c {
		ids = append(ids, f.Identifier)
	}

	return ids
}

// RawSource is an undecoded corpus file as delivered by a fetcher or the
// local file system.
type RawSource struct {
	Identifier string
	Data       []byte
}
