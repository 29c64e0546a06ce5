package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"notepad-sqlite/internal/layout"
)

// CardData is everything the grid needs to draw one card.
type CardData struct {
	Rect    layout.Rect
	NoteID  int64
	Title   string
	Preview string
}

// CardGrid fills the window client area and draws note cards at absolute
// rectangles. Taps and wheel events are reported in client coordinates.
type CardGrid struct {
	widget.BaseWidget

	cardLayout *CardLayout
	content    *fyne.Container
	cards      []CardData

	tapHandler    func(layout.Point)
	scrollHandler func(layout.ScrollAction)
}

func NewCardGrid() *CardGrid {
	cl := NewCardLayout()
	grid := &CardGrid{
		cardLayout: cl,
		content:    container.New(cl),
	}
	grid.ExtendBaseWidget(grid)
	return grid
}

// SetCards replaces every drawn card.
func (g *CardGrid) SetCards(cards []CardData) {
	g.cards = append([]CardData(nil), cards...)

	rects := make([]layout.Rect, len(cards))
	objects := make([]fyne.CanvasObject, len(cards))
	for i, card := range cards {
		rects[i] = card.Rect
		objects[i] = NewNoteCard(card.Title, card.Preview)
	}

	g.cardLayout.SetRects(rects)
	g.content.Objects = objects
	g.content.Refresh()
}

func (g *CardGrid) Cards() []CardData {
	return append([]CardData(nil), g.cards...)
}

func (g *CardGrid) SetTapHandler(handler func(layout.Point)) {
	g.tapHandler = handler
}

func (g *CardGrid) SetScrollHandler(handler func(layout.ScrollAction)) {
	g.scrollHandler = handler
}

func (g *CardGrid) Tapped(ev *fyne.PointEvent) {
	if g.tapHandler == nil {
		return
	}
	g.tapHandler(layout.Point{X: int(ev.Position.X), Y: int(ev.Position.Y)})
}

// Scrolled maps one wheel notch to one line step. Positive DY is wheel up.
func (g *CardGrid) Scrolled(ev *fyne.ScrollEvent) {
	if g.scrollHandler == nil {
		return
	}

	switch {
	case ev.Scrolled.DY > 0:
		g.scrollHandler(layout.ScrollLineUp)
	case ev.Scrolled.DY < 0:
		g.scrollHandler(layout.ScrollLineDown)
	}
}

func (g *CardGrid) MinSize() fyne.Size {
	return fyne.NewSize(0, 0)
}

func (g *CardGrid) CreateRenderer() fyne.WidgetRenderer {
	return widget.NewSimpleRenderer(g.content)
}
