// Package layout computes the card grid of the list view. Everything here is
// pure arithmetic over note order and scroll offset; rendering lives in views.
package layout

import (
	"notepad-sqlite/internal/models"
)

const (
	Margin     = 10
	CardWidth  = 180
	CardHeight = 110
	Columns    = 2
	// TopOffset leaves room for the search box above the first row.
	TopOffset = 50
)

// Rect is an integer rectangle. Right and Bottom are part of the rectangle.
type Rect struct {
	Left, Top, Right, Bottom int
}

func NewRect(x, y, w, h int) Rect {
	return Rect{Left: x, Top: y, Right: x + w, Bottom: y + h}
}

func (r Rect) Contains(p Point) bool {
	return p.X >= r.Left && p.X <= r.Right && p.Y >= r.Top && p.Y <= r.Bottom
}

func (r Rect) Width() int  { return r.Right - r.Left }
func (r Rect) Height() int { return r.Bottom - r.Top }

func (r Rect) Overlaps(o Rect) bool {
	return r.Left < o.Right && o.Left < r.Right && r.Top < o.Bottom && o.Top < r.Bottom
}

type Point struct {
	X, Y int
}

// CardInfo pairs a card rectangle with the note it shows.
type CardInfo struct {
	Rect   Rect
	NoteID int64
}

type Grid struct {
	Cards []CardInfo
	// ContentHeight is the scrollable extent; it does not depend on the offset.
	ContentHeight int
}

// Compute lays notes out row-major in Columns columns, shifted up by scrollOffset.
func Compute(notes []models.Note, scrollOffset int) Grid {
	cards := make([]CardInfo, 0, len(notes))

	x := Margin
	y := TopOffset - scrollOffset
	col := 0

	for _, n := range notes {
		cards = append(cards, CardInfo{
			Rect:   NewRect(x, y, CardWidth, CardHeight),
			NoteID: n.ID,
		})

		col++
		if col == Columns {
			col = 0
			x = Margin
			y += CardHeight + Margin
		} else {
			x += CardWidth + Margin
		}
	}

	return Grid{
		Cards:         cards,
		ContentHeight: ContentHeight(len(notes)),
	}
}

// ContentHeight is finalY + CardHeight + Margin for count cards laid out at offset 0.
func ContentHeight(count int) int {
	finalY := TopOffset + (count/Columns)*(CardHeight+Margin)
	return finalY + CardHeight + Margin
}

// FindCardAt returns the note of the first card containing p, in list order.
func FindCardAt(p Point, cards []CardInfo) (int64, bool) {
	for _, c := range cards {
		if c.Rect.Contains(p) {
			return c.NoteID, true
		}
	}
	return 0, false
}
