package views

import (
	"notepad-sqlite/internal/controllers"
	"notepad-sqlite/internal/layout"
	"notepad-sqlite/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const SearchPlaceholder = "Search notes..."

// MainView is the list window: search entry, card grid, scrollbar and the
// add button. It renders what the ListController hands it and forwards
// user input back through handler funcs.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	grid          *components.CardGrid
	search        *widget.Entry
	addButton     *widget.Button
	scrollbar     *widget.Slider

	scrollMax int

	searchChangedHandler func(string)
	scrollHandler        func(layout.ScrollAction, int)
	cardTapHandler       func(layout.Point)
	newNoteHandler       func()
}

func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()
	view.setupEventHandlers()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.grid = components.NewCardGrid()

	mv.search = widget.NewEntry()
	mv.search.SetPlaceHolder(SearchPlaceholder)

	mv.addButton = widget.NewButtonWithIcon("", theme.ContentAddIcon(), nil)
	mv.addButton.Importance = widget.HighImportance

	mv.scrollbar = widget.NewSlider(0, 1)
	mv.scrollbar.Orientation = widget.Vertical
	mv.scrollbar.Step = layout.LineStep
	mv.scrollbar.Value = 1
}

func (mv *MainView) buildLayout() {
	chrome := container.New(components.NewChromeLayout(), mv.search, mv.addButton, mv.scrollbar)
	mv.mainContainer = container.NewStack(mv.grid, chrome)
	mv.window.SetContent(mv.mainContainer)
}

func (mv *MainView) setupEventHandlers() {
	mv.search.OnChanged = func(text string) {
		if mv.searchChangedHandler != nil {
			mv.searchChangedHandler(text)
		}
	}

	mv.addButton.OnTapped = func() {
		if mv.newNoteHandler != nil {
			mv.newNoteHandler()
		}
	}

	// The slider runs bottom to top; offset 0 is its maximum.
	mv.scrollbar.OnChanged = func(value float64) {
		if mv.scrollHandler != nil {
			mv.scrollHandler(layout.ScrollTrack, mv.scrollMax-int(value))
		}
	}

	mv.grid.SetTapHandler(func(p layout.Point) {
		if mv.cardTapHandler != nil {
			mv.cardTapHandler(p)
		}
	})

	mv.grid.SetScrollHandler(func(action layout.ScrollAction) {
		mv.emitScroll(action)
	})

	mv.window.Canvas().SetOnTypedKey(mv.TypedKey)
}

// TypedKey handles paging keys while no widget has focus.
func (mv *MainView) TypedKey(ev *fyne.KeyEvent) {
	switch ev.Name {
	case fyne.KeyPageUp:
		mv.emitScroll(layout.ScrollPageUp)
	case fyne.KeyPageDown:
		mv.emitScroll(layout.ScrollPageDown)
	case fyne.KeyUp:
		mv.emitScroll(layout.ScrollLineUp)
	case fyne.KeyDown:
		mv.emitScroll(layout.ScrollLineDown)
	}
}

func (mv *MainView) emitScroll(action layout.ScrollAction) {
	if mv.scrollHandler != nil {
		mv.scrollHandler(action, 0)
	}
}

func (mv *MainView) SetSearchChangedHandler(handler func(string)) {
	mv.searchChangedHandler = handler
}

// SetScrollHandler receives the gesture and, for ScrollTrack, the absolute offset.
func (mv *MainView) SetScrollHandler(handler func(layout.ScrollAction, int)) {
	mv.scrollHandler = handler
}

func (mv *MainView) SetCardTapHandler(handler func(layout.Point)) {
	mv.cardTapHandler = handler
}

func (mv *MainView) SetNewNoteHandler(handler func()) {
	mv.newNoteHandler = handler
}

// Text returns the current search entry text.
func (mv *MainView) Text() string {
	return mv.search.Text
}

func (mv *MainView) RenderCards(cards []controllers.Card) {
	data := make([]components.CardData, len(cards))
	for i, card := range cards {
		data[i] = components.CardData{
			Rect:    card.Info.Rect,
			NoteID:  card.Info.NoteID,
			Title:   card.Title,
			Preview: card.Preview,
		}
	}
	mv.grid.SetCards(data)
}

// SetScrollRange moves the scrollbar without reporting the change back.
func (mv *MainView) SetScrollRange(offset, max, page int) {
	mv.scrollMax = max
	mv.scrollbar.Min = 0
	mv.scrollbar.Max = float64(max)
	mv.scrollbar.Value = float64(max - offset)
	mv.scrollbar.Refresh()
}

func (mv *MainView) ShowError(err error) {
	dialog.ShowError(err, mv.window)
}

func (mv *MainView) Window() fyne.Window {
	return mv.window
}

func (mv *MainView) Grid() *components.CardGrid {
	return mv.grid
}

func (mv *MainView) SearchEntry() *widget.Entry {
	return mv.search
}

func (mv *MainView) Scrollbar() *widget.Slider {
	return mv.scrollbar
}

func (mv *MainView) AddButton() *widget.Button {
	return mv.addButton
}
