package app

import (
	"notepad-sqlite/internal/config"
	"notepad-sqlite/internal/controllers"
	"notepad-sqlite/internal/debug/timing"
	"notepad-sqlite/internal/logger"
	"notepad-sqlite/internal/shutdown"
	"notepad-sqlite/internal/store"
	"notepad-sqlite/internal/views"

	"fyne.io/fyne/v2"
)

const (
	AppName    = "Notepad SQLite"
	AppID      = "com.example.notepadsqlite"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp  fyne.App
	window   fyne.Window
	config   *config.Config
	logger   logger.Logger
	timings  *timing.Tracker
	store    *store.NoteStore
	list     *controllers.ListController
	mainView *views.MainView
	handlers *Handlers
	shutdown *shutdown.Manager
}

// NewApplication opens the note store and builds the main window. A store
// error is returned untouched so the caller can report it with ShowFatal.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if cfg == nil {
		cfg = config.Default()
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":  AppVersion,
		"database": cfg.DatabasePath,
	})

	timings := timing.NewTracker()

	noteStore, err := store.Open(cfg.DatabasePath, store.WithLogger(log), store.WithTimings(timings))
	if err != nil {
		log.Error("Application", err, map[string]interface{}{
			"database": cfg.DatabasePath,
		})
		return nil, err
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(float32(cfg.WindowWidth), float32(cfg.WindowHeight)))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	mainView := views.NewMainView(window)
	list := controllers.NewListController(noteStore, mainView, mainView, log, timings)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register("store", noteStore)
	shutdownManager.Register("list", list)

	application := &Application{
		fyneApp:  fyneApp,
		window:   window,
		config:   cfg,
		logger:   log,
		timings:  timings,
		store:    noteStore,
		list:     list,
		mainView: mainView,
		shutdown: shutdownManager,
	}

	application.setupHandlers()
	application.setupMenus()
	application.setupWindowEvents()

	if err := list.Refresh(); err != nil {
		log.Warning("Application", "initial refresh failed", map[string]interface{}{
			"error": err.Error(),
		})
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	a.handlers = NewHandlers(a.fyneApp, a.window, a.store, a.list, a.timings, a.logger)
	a.handlers.SetQuitHandler(a.Quit)

	a.list.SetEditorOpener(a.handlers.HandleOpenEditor)

	a.mainView.SetSearchChangedHandler(a.handlers.HandleSearchChanged)
	a.mainView.SetScrollHandler(a.handlers.HandleScroll)
	a.mainView.SetCardTapHandler(a.handlers.HandleCardTap)
	a.mainView.SetNewNoteHandler(a.handlers.HandleNewNote)
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) List() *controllers.ListController {
	return a.list
}

func (a *Application) MainView() *views.MainView {
	return a.mainView
}

func (a *Application) Handlers() *Handlers {
	return a.handlers
}

func (a *Application) Timings() *timing.Tracker {
	return a.timings
}
