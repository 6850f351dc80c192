package types

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var krwPrinter = message.NewPrinter(language.Korean)

// FormatKRW renders a whole-won amount with thousands separators and the 원 suffix.
func FormatKRW(amount int64) string {
	return krwPrinter.Sprintf("%d원", amount)
}
