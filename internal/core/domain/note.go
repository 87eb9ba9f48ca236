package domain

import "time"

// Note represents a single note in the searchable corpus.
// Notes are owned by the note store; the search engine holds
// read-only snapshots and never mutates them.
type Note struct {
	// ID is the unique identifier for the note.
	ID string

	// Title is the human-readable title.
	Title string

	// Body is the full note text.
	Body string

	// Tags is the set of tags attached to the note.
	Tags []string

	// CreatedAt is when the note was created.
	CreatedAt time.Time

	// UpdatedAt is when the note was last modified.
	UpdatedAt time.Time
}

// HasTag reports whether the note carries the exact tag.
func (n Note) HasTag(tag string) bool {
	for _, t := range n.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
