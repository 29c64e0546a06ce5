package components

import (
	"fyne.io/fyne/v2"

	"notepad-sqlite/internal/layout"
)

// CardLayout places each object at the rectangle with the same index.
// Objects without a rectangle are hidden.
type CardLayout struct {
	rects []layout.Rect
}

func NewCardLayout() *CardLayout {
	return &CardLayout{}
}

func (cl *CardLayout) SetRects(rects []layout.Rect) {
	cl.rects = rects
}

func (cl *CardLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	for i, obj := range objects {
		if i >= len(cl.rects) {
			obj.Hide()
			continue
		}

		r := cl.rects[i]
		obj.Move(fyne.NewPos(float32(r.Left), float32(r.Top)))
		obj.Resize(fyne.NewSize(float32(r.Width()), float32(r.Height())))
		obj.Show()
	}
}

// MinSize is zero: the grid scrolls its content, it never grows the window.
func (cl *CardLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	return fyne.NewSize(0, 0)
}

// ChromeLayout positions the fixed controls over the card grid: search
// entry, add button and scrollbar, in that object order.
type ChromeLayout struct {
	searchWidth    float32
	buttonSize     float32
	scrollbarWidth float32
}

func NewChromeLayout() *ChromeLayout {
	return &ChromeLayout{
		searchWidth:    360,
		buttonSize:     60,
		scrollbarWidth: 20,
	}
}

func (cl *ChromeLayout) Layout(objects []fyne.CanvasObject, containerSize fyne.Size) {
	margin := float32(layout.Margin)

	if len(objects) > 0 {
		search := objects[0]
		width := cl.searchWidth
		if width > containerSize.Width-2*margin {
			width = containerSize.Width - 2*margin
		}
		search.Resize(fyne.NewSize(width, search.MinSize().Height))
		search.Move(fyne.NewPos(margin, margin))
	}

	if len(objects) > 1 {
		button := objects[1]
		button.Resize(fyne.NewSize(cl.buttonSize, cl.buttonSize))
		button.Move(fyne.NewPos(
			containerSize.Width-cl.buttonSize-margin,
			containerSize.Height-cl.buttonSize-margin,
		))
	}

	if len(objects) > 2 {
		scrollbar := objects[2]
		top := float32(layout.TopOffset)
		height := containerSize.Height - top - cl.buttonSize - 2*margin
		if height < 0 {
			height = 0
		}
		scrollbar.Resize(fyne.NewSize(cl.scrollbarWidth, height))
		scrollbar.Move(fyne.NewPos(containerSize.Width-cl.scrollbarWidth-margin, top))
	}
}

func (cl *ChromeLayout) MinSize(objects []fyne.CanvasObject) fyne.Size {
	margin := float32(layout.Margin)
	return fyne.NewSize(cl.searchWidth+2*margin, float32(layout.TopOffset)+cl.buttonSize+2*margin)
}
