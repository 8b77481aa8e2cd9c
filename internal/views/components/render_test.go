package components

import (
	"math"
	"testing"

	"chefs-menu/internal/models"

	"github.com/stretchr/testify/assert"
)

var sampleMenu = []models.MenuEntry{
	{Name: "Bruschetta", Description: "Tomato and basil", Course: models.CourseStarter, Price: 6},
	{Name: "Lasagne", Description: "Beef ragu", Course: models.CourseMain, Price: 14.5},
	{Name: "Panna Cotta", Description: "Vanilla", Course: models.CourseDessert, Price: math.NaN()},
}

func TestTotalLine(t *testing.T) {
	assert.Equal(t, "Total Items: 0", TotalLine(0))
	assert.Equal(t, "Total Items: 3", TotalLine(3))
}

func TestItemBlock_Lines(t *testing.T) {
	block := NewItemBlock(sampleMenu[1])
	assert.Equal(t, []string{"Lasagne", "Beef ragu", "Main", "$14.50"}, block.Lines())
}

func TestItemBlocks_Empty(t *testing.T) {
	for range ItemBlocks(nil) {
		t.Fatal("no blocks expected")
	}
}

func TestItemBlocks_OneBlockPerEntry(t *testing.T) {
	var blocks []ItemBlock
	for b := range ItemBlocks(sampleMenu) {
		blocks = append(blocks, b)
	}

	assert.Len(t, blocks, 3)
	assert.Equal(t, "$6.00", blocks[0].Price)
	assert.Equal(t, "$NaN", blocks[2].Price)
}

func TestItemBlocks_Restartable(t *testing.T) {
	seq := ItemBlocks(sampleMenu)

	count := func() int {
		n := 0
		for range seq {
			n++
		}
		return n
	}

	assert.Equal(t, 3, count())
	assert.Equal(t, 3, count())
}

func TestItemBlocks_StopsEarly(t *testing.T) {
	var names []string
	for b := range ItemBlocks(sampleMenu) {
		names = append(names, b.Name)
		if len(names) == 1 {
			break
		}
	}
	assert.Equal(t, []string{"Bruschetta"}, names)
}
