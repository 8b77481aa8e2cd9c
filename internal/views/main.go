package views

import (
	"fmt"

	"chefs-menu/internal/controllers"
	"chefs-menu/internal/events"
	"chefs-menu/internal/logger"
	"chefs-menu/internal/models"
	"chefs-menu/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

// Subscriber is the side of the event bus the view listens on.
type Subscriber interface {
	Subscribe(eventType string, handler events.EventHandler)
	Unsubscribe(eventType string, handler events.EventHandler)
}

// MainView is the single application screen: title, navigation, and either
// the menu listing or the creation form.
type MainView struct {
	controller *controllers.MenuController
	logger     logger.Logger

	mainContainer *fyne.Container
	content       *fyne.Container
	navBar        *components.NavBar
	listing       *components.ListingView
	form          *components.CreateForm
	statusBar     *components.StatusBar

	refreshHandler events.HandlerFunc
	subscriber     Subscriber
}

// NewMainView builds the screen and wires user input to controller.
// The view re-renders on every store change published through bus.
func NewMainView(title string, logo fyne.Resource, brand *BrandTheme, controller *controllers.MenuController, bus Subscriber, log logger.Logger) *MainView {
	if log == nil {
		log = logger.Nop()
	}

	mv := &MainView{
		controller: controller,
		logger:     log,
		navBar:     components.NewNavBar(),
		listing:    components.NewListingView(logo),
		form:       components.NewCreateForm(),
		statusBar:  components.NewStatusBar(),
		subscriber: bus,
	}

	mv.buildLayout(title, brand)
	mv.setupEventHandlers()
	mv.subscribe()
	mv.Refresh()

	return mv
}

func (mv *MainView) buildLayout(title string, brand *BrandTheme) {
	heading := widget.NewLabelWithStyle(title, fyne.TextAlignLeading, fyne.TextStyle{Bold: true})
	heading.SizeName = theme.SizeNameHeadingText

	mv.content = container.NewStack()

	top := container.NewVBox(heading, mv.navBar.GetContainer())
	body := container.NewBorder(
		top,
		mv.statusBar.GetContainer(),
		nil, nil,
		container.NewVScroll(mv.content),
	)

	if brand != nil {
		mv.mainContainer = container.NewStack(canvas.NewRectangle(brand.Background()), container.NewPadded(body))
	} else {
		mv.mainContainer = container.NewPadded(body)
	}
}

func (mv *MainView) setupEventHandlers() {
	mv.navBar.SetHomeHandler(func() {
		mv.logger.Debug("MainView", "navigate", map[string]interface{}{"to": "listing"})
		mv.controller.ShowListing()
	})
	mv.navBar.SetAddHandler(func() {
		mv.logger.Debug("MainView", "navigate", map[string]interface{}{"to": "creating"})
		mv.controller.ShowCreating()
	})

	mv.form.SetNameHandler(mv.controller.SetDraftName)
	mv.form.SetDescriptionHandler(mv.controller.SetDraftDescription)
	mv.form.SetCourseHandler(mv.controller.SetDraftCourse)
	mv.form.SetPriceHandler(mv.controller.SetDraftPrice)
	mv.form.SetSubmitHandler(func() {
		entry := mv.controller.Submit()
		mv.statusBar.SetStatus(fmt.Sprintf("Added %q", entry.Name))
	})
}

func (mv *MainView) subscribe() {
	if mv.subscriber == nil {
		return
	}
	mv.refreshHandler = events.HandlerFunc{ID: "main-view", Fn: func(events.Event) { mv.Refresh() }}
	for _, t := range []string{events.TypeViewChanged, events.TypeEntryAdded, events.TypeDraftReset} {
		mv.subscriber.Subscribe(t, mv.refreshHandler)
	}
}

// Refresh pulls a fresh snapshot from the controller and redraws.
func (mv *MainView) Refresh() {
	view := mv.controller.View()
	mv.form.Load(mv.controller.Draft())

	switch view {
	case models.ViewCreating:
		mv.showContent(mv.form.GetContainer())
	default:
		mv.listing.Render(mv.controller.Entries())
		mv.showContent(mv.listing.GetContainer())
	}
	mv.navBar.SetActive(view == models.ViewCreating)
}

func (mv *MainView) showContent(obj fyne.CanvasObject) {
	if len(mv.content.Objects) == 1 && mv.content.Objects[0] == obj {
		return
	}
	mv.content.Objects = []fyne.CanvasObject{obj}
	mv.content.Refresh()
}

// GetMainContainer returns the root container for the window
func (mv *MainView) GetMainContainer() *fyne.Container {
	return mv.mainContainer
}

// NavBar returns the navigation bar component
func (mv *MainView) NavBar() *components.NavBar { return mv.navBar }

// Listing returns the menu listing component
func (mv *MainView) Listing() *components.ListingView { return mv.listing }

// Form returns the menu item form component
func (mv *MainView) Form() *components.CreateForm { return mv.form }

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar { return mv.statusBar }

// Showing reports which screen is currently on display.
func (mv *MainView) Showing() models.ViewState {
	if len(mv.content.Objects) == 1 && mv.content.Objects[0] == mv.form.GetContainer() {
		return models.ViewCreating
	}
	return models.ViewListing
}

// Shutdown stops listening for store changes
func (mv *MainView) Shutdown() {
	if mv.subscriber == nil {
		return
	}
	for _, t := range []string{events.TypeViewChanged, events.TypeEntryAdded, events.TypeDraftReset} {
		mv.subscriber.Unsubscribe(t, mv.refreshHandler)
	}
}
