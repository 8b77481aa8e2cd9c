package app

import (
	"fmt"
	"math/rand"

	"chefs-menu/internal/models"

	"github.com/jaswdr/faker"
)

var demoDishes = map[models.Course][]string{
	models.CourseStarter: {"Bruschetta", "Minestrone", "Calamari", "Caprese Salad", "Garlic Bread", "Prawn Cocktail"},
	models.CourseMain:    {"Lasagne", "Risotto", "Grilled Salmon", "Beef Bourguignon", "Mushroom Stroganoff", "Roast Chicken"},
	models.CourseDessert: {"Tiramisu", "Panna Cotta", "Crème Brûlée", "Apple Pie", "Chocolate Fondant", "Lemon Tart"},
}

// DemoEntries builds count sample dishes. The same seed gives the same menu.
func DemoEntries(count int, seed int64) []models.MenuEntry {
	fake := faker.NewWithSeed(rand.NewSource(seed))
	courses := models.Courses()

	entries := make([]models.MenuEntry, 0, count)
	for i := 0; i < count; i++ {
		course := courses[i%len(courses)]
		dishes := demoDishes[course]

		entries = append(entries, models.MenuEntry{
			Name:        dishes[fake.IntBetween(0, len(dishes)-1)],
			Description: fmt.Sprintf("With %s. %s", fake.Food().Vegetable(), fake.Lorem().Sentence(6)),
			Course:      course,
			Price:       fake.Float64(2, 4, 40),
		})
	}
	return entries
}

// SeedDemo adds count sample dishes through the normal store path.
func SeedDemo(store *models.MenuStore, count int, seed int64) {
	for _, entry := range DemoEntries(count, seed) {
		store.AddEntry(entry)
	}
}
