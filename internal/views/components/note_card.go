package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"

	"notepad-sqlite/internal/layout"
)

const (
	cardPadding   = 8
	titleHeight   = 22
	previewTop    = 34
	previewBottom = 8
)

// NoteCard draws one note: bold title and a wrapped, clipped preview. It
// does not handle input; taps fall through to the CardGrid.
type NoteCard struct {
	widget.BaseWidget

	Title   string
	Preview string
}

func NewNoteCard(title, preview string) *NoteCard {
	card := &NoteCard{Title: title, Preview: preview}
	card.ExtendBaseWidget(card)
	return card
}

func (c *NoteCard) MinSize() fyne.Size {
	return fyne.NewSize(layout.CardWidth, layout.CardHeight)
}

func (c *NoteCard) CreateRenderer() fyne.WidgetRenderer {
	c.ExtendBaseWidget(c)

	background := canvas.NewRectangle(theme.Color(theme.ColorNameInputBackground))
	background.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	background.StrokeWidth = 1

	title := canvas.NewText("", theme.Color(theme.ColorNameForeground))
	title.TextStyle = fyne.TextStyle{Bold: true}
	title.TextSize = theme.TextSize()

	previewSize := theme.CaptionTextSize()
	lineHeight := fyne.MeasureText("Mg", previewSize, fyne.TextStyle{}).Height
	lineCount := 1
	if lineHeight > 0 {
		lineCount = int((layout.CardHeight - previewTop - previewBottom) / lineHeight)
	}
	if lineCount < 1 {
		lineCount = 1
	}

	lines := make([]*canvas.Text, lineCount)
	for i := range lines {
		lines[i] = canvas.NewText("", theme.Color(theme.ColorNameForeground))
		lines[i].TextSize = previewSize
	}

	r := &noteCardRenderer{
		card:       c,
		background: background,
		title:      title,
		lines:      lines,
		lineHeight: lineHeight,
	}
	r.updateText(fyne.NewSize(layout.CardWidth, layout.CardHeight))
	return r
}

type noteCardRenderer struct {
	card       *NoteCard
	background *canvas.Rectangle
	title      *canvas.Text
	lines      []*canvas.Text
	lineHeight float32
}

func (r *noteCardRenderer) Layout(size fyne.Size) {
	r.background.Resize(size)
	r.background.Move(fyne.NewPos(0, 0))

	r.updateText(size)

	r.title.Move(fyne.NewPos(cardPadding, cardPadding))
	r.title.Resize(fyne.NewSize(size.Width-2*cardPadding, titleHeight))

	for i, line := range r.lines {
		line.Move(fyne.NewPos(cardPadding, previewTop+float32(i)*r.lineHeight))
		line.Resize(fyne.NewSize(size.Width-2*cardPadding, r.lineHeight))
	}
}

func (r *noteCardRenderer) updateText(size fyne.Size) {
	width := size.Width - 2*cardPadding

	r.title.Text = fitLine(r.card.Title, width, func(s string) float32 {
		return fyne.MeasureText(s, r.title.TextSize, r.title.TextStyle).Width
	})

	wrapped := wrapText(r.card.Preview, width, len(r.lines), func(s string) float32 {
		return fyne.MeasureText(s, theme.CaptionTextSize(), fyne.TextStyle{}).Width
	})
	for i, line := range r.lines {
		line.Text = ""
		if i < len(wrapped) {
			line.Text = wrapped[i]
		}
	}
}

func (r *noteCardRenderer) MinSize() fyne.Size {
	return r.card.MinSize()
}

func (r *noteCardRenderer) Refresh() {
	r.background.FillColor = theme.Color(theme.ColorNameInputBackground)
	r.background.StrokeColor = theme.Color(theme.ColorNameInputBorder)
	r.title.Color = theme.Color(theme.ColorNameForeground)
	for _, line := range r.lines {
		line.Color = theme.Color(theme.ColorNameForeground)
	}

	r.updateText(r.card.Size())
	canvas.Refresh(r.card)
}

func (r *noteCardRenderer) Objects() []fyne.CanvasObject {
	objects := []fyne.CanvasObject{r.background, r.title}
	for _, line := range r.lines {
		objects = append(objects, line)
	}
	return objects
}

func (r *noteCardRenderer) Destroy() {}

// Lines exposes the rendered preview text.
func (r *noteCardRenderer) Lines() []string {
	texts := make([]string, 0, len(r.lines))
	for _, line := range r.lines {
		if line.Text != "" {
			texts = append(texts, line.Text)
		}
	}
	return texts
}
