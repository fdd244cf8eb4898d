package churchdir

// Extractor turns a directory page into an ordered sequence of entries.
type Extractor interface {
	// Extract parses html and returns one entry per qualifying blurb, in
	// document order. When category is non-empty a category marker is the
	// first entry, even if no contacts are found.
	// Missing sub-elements degrade fields to empty strings; only an
	// unparseable document returns an error.
	Extract(html string, category string) ([]*Entry, error)
}
