package format

import (
	"fmt"
	"time"
)

// Price formats a peso amount the way the storefront displays it.
// Example: Price(3499.99) => "$3,499.99"
func Price(amount float64) string {
	neg := amount < 0
	if neg {
		amount = -amount
	}
	cents := int64(amount*100 + 0.5)
	major := cents / 100
	minor := cents % 100
	out := "$" + thousandSep(major) + "." + fmt.Sprintf("%02d", minor)
	if neg {
		return "-" + out
	}
	return out
}

func thousandSep(n int64) string {
	s := fmt.Sprintf("%d", n)
	out := ""
	for i, c := range s {
		if i != 0 && (len(s)-i)%3 == 0 {
			out += ","
		}
		out += string(c)
	}
	return out
}

var months = []string{
	"enero", "febrero", "marzo", "abril", "mayo", "junio",
	"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
}

// Date formats a date in long Spanish form.
func Date(t time.Time) string {
	return fmt.Sprintf("%d de %s de %d", t.Day(), months[t.Month()-1], t.Year())
}

// ShortDate formats a date as dd/mm/yyyy, matching the order message.
func ShortDate(t time.Time) string {
	return t.Format("02/01/2006")
}
