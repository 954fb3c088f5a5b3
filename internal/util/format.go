package util

import (
	"github.com/shopspring/decimal"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"
)

// One-way presentation formatting for KRW amounts. Amounts are rounded to the
// nearest whole won and digit-grouped with the ko-KR convention.

var korean = message.NewPrinter(language.Korean)

// FormatKRW renders an amount with the currency symbol, e.g. "₩45,500".
func FormatKRW(amount decimal.Decimal) string {
	return "₩" + groupDigits(amount)
}

// FormatKRWWithSuffix renders an amount with the textual unit, e.g. "45,500원".
func FormatKRWWithSuffix(amount decimal.Decimal) string {
	return groupDigits(amount) + "원"
}

func groupDigits(amount decimal.Decimal) string {
	return korean.Sprintf("%v", number.Decimal(amount.Round(0).IntPart()))
}
