package lifecycle

import (
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency codes accepted on request creation. Display formatting is
// intentionally more permissive and renders any code it is given.
type Currency string

const (
	CurrencyKRW Currency = "KRW"
	CurrencyGBP Currency = "GBP"
	CurrencyUSD Currency = "USD"
	CurrencyEUR Currency = "EUR"
)

var allowedCurrencies = map[Currency]struct{}{
	CurrencyKRW: {},
	CurrencyGBP: {},
	CurrencyUSD: {},
	CurrencyEUR: {},
}

func ParseCurrency(code string) (Currency, error) {
	c := Currency(code)
	if _, ok := allowedCurrencies[c]; !ok {
		return "", validationErr("unsupported currency code %q", code)
	}
	return c, nil
}

var koPrinter = message.NewPrinter(language.Korean)

// FormatAmount renders an amount with grouped digits followed by the
// currency code, e.g. "5,000 KRW".
func FormatAmount(amount int64, code Currency) string {
	return koPrinter.Sprintf("%d", amount) + " " + string(code)
}

// FormatWon renders an item price the way listings show it, e.g. "20,000원".
func FormatWon(amount int64) string {
	return koPrinter.Sprintf("%d", amount) + "원"
}
