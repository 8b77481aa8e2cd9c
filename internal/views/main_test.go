package views

import (
	"math"
	"testing"

	"chefs-menu/internal/config"
	"chefs-menu/internal/controllers"
	"chefs-menu/internal/events"
	"chefs-menu/internal/models"
	"chefs-menu/internal/views/assets"

	"fyne.io/fyne/v2/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	store *models.MenuStore
	view  *MainView
}

func newFixture(t *testing.T) fixture {
	t.Helper()
	test.NewTempApp(t)

	bus := events.NewBus(nil)
	store := models.NewMenuStore(bus, nil)
	controller := controllers.NewMenuController(store, bus, nil)
	colors, err := config.ParseHexColor("#0b8e70")
	require.NoError(t, err)

	view := NewMainView("Chef's Menu", assets.Logo, NewBrandTheme(config.Colors{Background: colors}), controller, bus, nil)
	t.Cleanup(view.Shutdown)

	return fixture{store: store, view: view}
}

func (f fixture) addItem(name, description, course, price string) {
	_, add := f.view.NavBar().Buttons()
	test.Tap(add)

	nameEntry, descEntry, courseSelect, priceEntry, submit := f.view.Form().Controls()
	test.Type(nameEntry, name)
	test.Type(descEntry, description)
	if course != "" {
		courseSelect.SetSelected(course)
	}
	test.Type(priceEntry, price)
	test.Tap(submit)
}

func TestMainView_StartsOnEmptyListing(t *testing.T) {
	f := newFixture(t)

	assert.Equal(t, models.ViewListing, f.view.Showing())
	assert.True(t, f.view.Listing().PlaceholderVisible())
	assert.Equal(t, "Total Items: 0", f.view.Listing().TotalText())
}

func TestMainView_AddItemThroughForm(t *testing.T) {
	f := newFixture(t)

	f.addItem("Carpaccio", "Thin beef", "Starter", "12.5")

	require.Equal(t, 1, f.store.Len())
	assert.Equal(t, models.MenuEntry{
		Name:        "Carpaccio",
		Description: "Thin beef",
		Course:      models.CourseStarter,
		Price:       12.5,
	}, f.store.Entries()[0])

	assert.Equal(t, models.ViewListing, f.view.Showing())
	assert.Equal(t, 1, f.view.Listing().ItemCount())
	assert.Equal(t, "$12.50", f.view.Listing().Blocks()[0].Price)
	assert.Equal(t, `Added "Carpaccio"`, f.view.StatusBar().Status())
}

func TestMainView_NonNumericPriceIsStored(t *testing.T) {
	f := newFixture(t)

	f.addItem("Special", "Ask staff", "Main", "abc")

	require.Equal(t, 1, f.store.Len())
	assert.True(t, math.IsNaN(f.store.Entries()[0].Price))
	assert.Equal(t, "$NaN", f.view.Listing().Blocks()[0].Price)
}

func TestMainView_FormIsEmptyAfterSubmit(t *testing.T) {
	f := newFixture(t)

	f.addItem("Tiramisu", "Coffee", "Dessert", "7")

	assert.True(t, f.view.Form().Values().IsEmpty())

	_, add := f.view.NavBar().Buttons()
	test.Tap(add)
	assert.Equal(t, models.ViewCreating, f.view.Showing())
	assert.True(t, f.view.Form().Values().IsEmpty())
}

func TestMainView_ThreeItemsListed(t *testing.T) {
	f := newFixture(t)

	f.addItem("Soup", "Leek", "Starter", "5")
	f.addItem("Fish", "Cod", "Main", "16")
	f.addItem("Cake", "Lemon", "Dessert", "6.5")

	assert.Equal(t, 3, f.view.Listing().ItemCount())
	assert.Equal(t, "Total Items: 3", f.view.Listing().TotalText())
	assert.False(t, f.view.Listing().PlaceholderVisible())
}

func TestMainView_LeavingFormDiscardsDraft(t *testing.T) {
	f := newFixture(t)
	f.addItem("Soup", "Leek", "Starter", "5")

	home, add := f.view.NavBar().Buttons()
	test.Tap(add)
	nameEntry, _, _, priceEntry, _ := f.view.Form().Controls()
	test.Type(nameEntry, "Unsaved")
	test.Type(priceEntry, "9")
	test.Tap(home)

	assert.Equal(t, models.ViewListing, f.view.Showing())
	assert.Equal(t, 1, f.store.Len())
	assert.Equal(t, "Total Items: 1", f.view.Listing().TotalText())

	test.Tap(add)
	assert.True(t, f.view.Form().Values().IsEmpty())
}

func TestMainView_ReopeningFormKeepsTypedValues(t *testing.T) {
	f := newFixture(t)

	_, add := f.view.NavBar().Buttons()
	test.Tap(add)
	nameEntry, descEntry, courseSelect, priceEntry, _ := f.view.Form().Controls()
	test.Type(nameEntry, "Half typed")
	test.Type(descEntry, "Kept")
	courseSelect.SetSelected("Dessert")
	test.Type(priceEntry, "4.2")

	test.Tap(add)

	assert.Equal(t, models.ViewCreating, f.view.Showing())
	assert.Equal(t, models.DraftEntry{
		Name:        "Half typed",
		Description: "Kept",
		Course:      "Dessert",
		PriceText:   "4.2",
	}, f.view.Form().Values())
	assert.Zero(t, f.store.Len())
}
