package pricing

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func TestCalculate(t *testing.T) {
	testCases := []struct {
		name     string
		base     decimal.Decimal
		extras   []decimal.Decimal
		quantity int
		expected decimal.Decimal
	}{
		{
			name:     "pizza only",
			base:     d("12.99"),
			quantity: 1,
			expected: d("12.99"),
		},
		{
			name:     "pizza with two extras",
			base:     d("10.00"),
			extras:   []decimal.Decimal{d("2.00"), d("1.50")},
			quantity: 2,
			expected: d("27.00"),
		},
		{
			name:     "no binary rounding drift",
			base:     d("0.10"),
			extras:   []decimal.Decimal{d("0.20")},
			quantity: 3,
			expected: d("0.90"),
		},
		{
			name:     "large quantity",
			base:     d("18.99"),
			extras:   []decimal.Decimal{d("3.50"), d("2.50"), d("1.50")},
			quantity: 100,
			expected: d("2649.00"),
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			total, err := Calculate(tt.base, tt.extras, tt.quantity)
			require.NoError(t, err)
			assert.True(t, tt.expected.Equal(total), "expected %s, got %s", tt.expected, total)
		})
	}
}

func TestCalculateRejectsNonPositiveQuantity(t *testing.T) {
	for _, q := range []int{0, -1} {
		_, err := Calculate(d("10.00"), nil, q)
		assert.ErrorIs(t, err, ErrInvalidQuantity)
	}
}

func TestCalculateIsDeterministic(t *testing.T) {
	extras := []decimal.Decimal{d("2.00"), d("1.50")}
	first, err := Calculate(d("10.00"), extras, 2)
	require.NoError(t, err)
	second, err := Calculate(d("10.00"), extras, 2)
	require.NoError(t, err)

	assert.True(t, first.Equal(second))
	assert.True(t, d("2.00").Equal(extras[0]), "inputs must not be mutated")
}

func TestNewQuoteCopiesExtras(t *testing.T) {
	extras := []decimal.Decimal{d("2.00")}
	q, err := NewQuote(d("10.00"), extras, 1)
	require.NoError(t, err)

	extras[0] = d("99.00")
	assert.True(t, d("2.00").Equal(q.ExtraPrices[0]))
	assert.True(t, d("12.00").Equal(q.Total))
}
