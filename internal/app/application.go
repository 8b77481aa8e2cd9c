package app

import (
	"runtime"

	"chefs-menu/internal/config"
	"chefs-menu/internal/controllers"
	"chefs-menu/internal/events"
	"chefs-menu/internal/logger"
	"chefs-menu/internal/models"
	"chefs-menu/internal/shutdown"
	"chefs-menu/internal/views"
	"chefs-menu/internal/views/assets"
	"chefs-menu/internal/views/components"

	"fyne.io/fyne/v2"
)

const (
	AppID      = "com.chefsmenu.editor"
	AppVersion = "1.0.0"

	// demoSeed keeps seeded demo menus identical between runs.
	demoSeed = 2024
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	logger     logger.Logger
	bus        *events.Bus
	store      *models.MenuStore
	controller *controllers.MenuController
	view       *views.MainView
	lifecycle  *Lifecycle
}

// NewApplication wires the store, controller and view into a Fyne window.
// fyneApp is created by the caller so tests can pass a headless app.
func NewApplication(fyneApp fyne.App, cfg *config.Config, log logger.Logger) (*Application, error) {
	if log == nil {
		log = logger.Nop()
	}

	log.Info("Application", "starting application", map[string]interface{}{
		"version":    AppVersion,
		"go_version": runtime.Version(),
		"seed_demo":  cfg.SeedDemo,
		"window":     []float32{cfg.Window.Width, cfg.Window.Height},
	})

	brand := views.NewBrandTheme(cfg.Colors)
	fyneApp.Settings().SetTheme(brand)

	window := fyneApp.NewWindow(cfg.Title)
	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.CenterOnScreen()
	window.SetMaster()

	bus := events.NewBus(log)
	store := models.NewMenuStore(bus, log)
	controller := controllers.NewMenuController(store, bus, log)

	if cfg.SeedDemo > 0 {
		SeedDemo(store, cfg.SeedDemo, demoSeed)
		log.Info("Application", "demo menu seeded", map[string]interface{}{
			"entries": store.Len(),
		})
	}

	view := views.NewMainView(cfg.Title, resolveLogo(cfg.LogoPath, log), brand, controller, bus, log)
	window.SetContent(view.GetMainContainer())

	shutdownMgr := shutdown.NewManager(log)
	shutdownMgr.Register(bus)
	shutdownMgr.Register(view)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		logger:     log,
		bus:        bus,
		store:      store,
		controller: controller,
		view:       view,
		lifecycle:  NewLifecycle(fyneApp, window, shutdownMgr, log),
	}

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

// Run shows the window and blocks until the UI loop ends.
func (a *Application) Run() error {
	a.lifecycle.Start()

	a.window.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.lifecycle.Shutdown()
	return nil
}

// Window returns the main window
func (a *Application) Window() fyne.Window { return a.window }

// Store returns the session menu store
func (a *Application) Store() *models.MenuStore { return a.store }

// View returns the main view
func (a *Application) View() *views.MainView { return a.view }

// Lifecycle returns the shutdown lifecycle
func (a *Application) Lifecycle() *Lifecycle { return a.lifecycle }

func resolveLogo(path string, log logger.Logger) fyne.Resource {
	if path == "" {
		return assets.Logo
	}

	res, err := components.LoadLogo(path)
	if err != nil {
		log.Warning("Application", "falling back to built-in logo", map[string]interface{}{
			"path":  path,
			"error": err.Error(),
		})
		return assets.Logo
	}
	return res
}
