// Package source defines source file identities and byte-offset spans.
//
// The IR attaches spans to nodes purely for source-map annotation of the
// generated output; the translator never reads file contents.
package source

import "fmt"

// File identifies an originating source file by URL.
type File struct {
	URL     string
	Content string // optional; empty when the file was never loaded
}

// Span is a half-open byte range [Start, End) within a file.
type Span struct {
	File  *File
	Start int
	End   int
}

// Valid reports whether the span carries a usable file identity.
func (s *Span) Valid() bool {
	return s != nil && s.File != nil && s.File.URL != ""
}

// String implements fmt.Stringer for diagnostics.
func (s *Span) String() string {
	if !s.Valid() {
		return "<no span>"
	}
	return fmt.Sprintf("%s@%d:%d", s.File.URL, s.Start, s.End)
}

// NewSpan builds a span over a file URL.
func NewSpan(url string, start, end int) *Span {
	return &Span{File: &File{URL: url}, Start: start, End: end}
}
