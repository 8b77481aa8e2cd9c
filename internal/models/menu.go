package models

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

// Course is the categorical tag of a dish. Only the form widget restricts
// it to the known values; the store keeps whatever string it is given.
type Course string

const (
	CourseStarter Course = "Starter"
	CourseMain    Course = "Main"
	CourseDessert Course = "Dessert"
)

// Courses lists the selectable courses in menu order.
func Courses() []Course {
	return []Course{CourseStarter, CourseMain, CourseDessert}
}

// CourseNames returns Courses as plain strings for select widgets.
func CourseNames() []string {
	courses := Courses()
	names := make([]string, len(courses))
	for i, c := range courses {
		names[i] = string(c)
	}
	return names
}

// Valid reports whether c is one of the selectable courses.
func (c Course) Valid() bool {
	switch c {
	case CourseStarter, CourseMain, CourseDessert:
		return true
	}
	return false
}

// MenuEntry is one dish on the menu. Entries are values and are never
// changed once stored.
type MenuEntry struct {
	Name        string
	Description string
	Course      Course
	Price       float64
}

// ParsePrice coerces free text into a price the way a browser's Number()
// does. Blank text is zero and text that is not a number yields NaN;
// neither is an error. Unsigned 0x, 0o and 0b integer literals are
// accepted, and "Infinity" is the only spelling of infinity.
func ParsePrice(text string) float64 {
	text = strings.TrimSpace(text)
	if text == "" {
		return 0
	}

	sign, body := "", text
	if body[0] == '+' || body[0] == '-' {
		sign, body = body[:1], body[1:]
	}

	if base := radixOf(body); base != 0 {
		if sign != "" {
			return math.NaN()
		}
		return parseRadixInteger(body[2:], base)
	}

	if body == "Infinity" {
		if sign == "-" {
			return math.Inf(-1)
		}
		return math.Inf(1)
	}
	lower := strings.ToLower(body)
	if strings.HasPrefix(lower, "inf") || strings.HasPrefix(lower, "nan") {
		return math.NaN()
	}

	value, err := strconv.ParseFloat(text, 64)
	if err != nil {
		// Out of range input still carries a usable ±Inf.
		if numErr, ok := err.(*strconv.NumError); ok && numErr.Err == strconv.ErrRange {
			return value
		}
		return math.NaN()
	}
	return value
}

func radixOf(body string) int {
	if len(body) < 2 || body[0] != '0' {
		return 0
	}
	switch body[1] {
	case 'x', 'X':
		return 16
	case 'o', 'O':
		return 8
	case 'b', 'B':
		return 2
	}
	return 0
}

func parseRadixInteger(digits string, base int) float64 {
	if digits == "" || digits[0] == '+' || digits[0] == '-' {
		return math.NaN()
	}
	n, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return math.NaN()
	}
	value, _ := new(big.Float).SetInt(n).Float64()
	return value
}

// FormatPrice renders a price with a currency sign and two decimals, as
// "$" + price.toFixed(2) would: NaN prints "$NaN", infinities print
// "$Infinity" and "$-Infinity", and magnitudes from 1e21 up use exponent
// form.
func FormatPrice(price float64) string {
	switch {
	case math.IsInf(price, 1):
		return "$Infinity"
	case math.IsInf(price, -1):
		return "$-Infinity"
	case math.Abs(price) >= 1e21:
		return "$" + strconv.FormatFloat(price, 'g', -1, 64)
	case price == 0:
		// Drops the sign of negative zero.
		price = 0
	}
	return fmt.Sprintf("$%.2f", price)
}
