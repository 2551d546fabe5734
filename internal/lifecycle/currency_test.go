package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/carrylink/carrylink/internal/lifecycle"
)

func TestParseCurrency(t *testing.T) {
	for _, code := range []string{"KRW", "GBP", "USD", "EUR"} {
		currency, err := lifecycle.ParseCurrency(code)
		assert.NoError(t, err)
		assert.Equal(t, code, string(currency))
	}

	for _, code := range []string{"JPY", "krw", "", "WON"} {
		_, err := lifecycle.ParseCurrency(code)
		assert.ErrorIs(t, err, lifecycle.ErrValidationRejected, code)
	}
}

func TestFormatAmount(t *testing.T) {
	assert.Equal(t, "5,000 KRW", lifecycle.FormatAmount(5000, lifecycle.CurrencyKRW))
	assert.Equal(t, "1,234,567 USD", lifecycle.FormatAmount(1234567, lifecycle.CurrencyUSD))
	assert.Equal(t, "0 EUR", lifecycle.FormatAmount(0, lifecycle.CurrencyEUR))
}

func TestFormatWon(t *testing.T) {
	assert.Equal(t, "20,000원", lifecycle.FormatWon(20000))
	assert.Equal(t, "999원", lifecycle.FormatWon(999))
}

func TestItemTotal(t *testing.T) {
	req := lifecycle.Request{
		Items: []lifecycle.Item{
			{Name: "Book", Price: 20000},
			{Name: "Pen", Price: 1500},
		},
	}
	assert.Equal(t, int64(21500), req.ItemTotal())

	assert.Equal(t, int64(0), lifecycle.Request{}.ItemTotal())
}
