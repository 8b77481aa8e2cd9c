package models

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		text string
		want float64
	}{
		{"12.5", 12.5},
		{"  7 ", 7},
		{"", 0},
		{"   ", 0},
		{"1e2", 100},
		{"-3.25", -3.25},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, ParsePrice(tt.text), "text %q", tt.text)
	}
}

func TestParsePrice_NotANumber(t *testing.T) {
	for _, text := range []string{"abc", "12,50", "$5", "1.2.3"} {
		assert.True(t, math.IsNaN(ParsePrice(text)), "text %q", text)
	}
}

func TestParsePrice_OverflowKeepsInfinity(t *testing.T) {
	assert.True(t, math.IsInf(ParsePrice("1e400"), 1))
}

func TestFormatPrice(t *testing.T) {
	assert.Equal(t, "$12.50", FormatPrice(12.5))
	assert.Equal(t, "$0.00", FormatPrice(0))
	assert.Equal(t, "$3.46", FormatPrice(3.456))
	assert.Equal(t, "$NaN", FormatPrice(math.NaN()))
}

func TestCourses(t *testing.T) {
	assert.Equal(t, []string{"Starter", "Main", "Dessert"}, CourseNames())
	for _, c := range Courses() {
		assert.True(t, c.Valid())
	}
	assert.False(t, Course("").Valid())
	assert.False(t, Course("Brunch").Valid())
}

func TestDraftEntry_Entry(t *testing.T) {
	draft := DraftEntry{Name: "Soup", Description: "Hot", Course: "Starter", PriceText: "4.5"}
	assert.Equal(t, MenuEntry{Name: "Soup", Description: "Hot", Course: CourseStarter, Price: 4.5}, draft.Entry())
	assert.False(t, draft.IsEmpty())
	assert.True(t, DraftEntry{}.IsEmpty())
}

func TestParsePrice_InfinitySpelling(t *testing.T) {
	assert.True(t, math.IsInf(ParsePrice("Infinity"), 1))
	assert.True(t, math.IsInf(ParsePrice("+Infinity"), 1))
	assert.True(t, math.IsInf(ParsePrice("-Infinity"), -1))

	for _, text := range []string{"inf", "Inf", "-inf", "infinity", "INFINITY", "NaN", "nan"} {
		assert.True(t, math.IsNaN(ParsePrice(text)), "text %q", text)
	}
}

func TestParsePrice_RadixLiterals(t *testing.T) {
	assert.Equal(t, 31.0, ParsePrice("0x1F"))
	assert.Equal(t, 15.0, ParsePrice("0o17"))
	assert.Equal(t, 5.0, ParsePrice("0B101"))

	for _, text := range []string{"-0x1F", "+0x10", "0x", "0x1p4", "0x-5", "0x1_0", "0b102"} {
		assert.True(t, math.IsNaN(ParsePrice(text)), "text %q", text)
	}
}

func TestFormatPrice_Edges(t *testing.T) {
	assert.Equal(t, "$Infinity", FormatPrice(math.Inf(1)))
	assert.Equal(t, "$-Infinity", FormatPrice(math.Inf(-1)))
	assert.Equal(t, "$0.00", FormatPrice(math.Copysign(0, -1)))
	assert.Equal(t, "$1e+21", FormatPrice(1e21))
	assert.Equal(t, "$-2.5e+22", FormatPrice(-2.5e22))
}
