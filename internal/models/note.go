package models

// PreviewLimit is the number of characters of content shown on a card.
const PreviewLimit = 300

const ellipsis = "..."

// Note is a persisted title+content record. ID is assigned by the store
// and never changes.
type Note struct {
	ID      int64
	Title   string
	Content string
}

// Preview returns the card text for the note's content.
func (n Note) Preview() string {
	return Preview(n.Content)
}

// Preview truncates content to PreviewLimit characters and appends an
// ellipsis when anything was cut. Storage is never affected.
func Preview(content string) string {
	count := 0
	for i := range content {
		if count == PreviewLimit {
			return content[:i] + ellipsis
		}
		count++
	}
	return content
}
