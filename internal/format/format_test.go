package format

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "$0"},
		{1234.5, "$1,235"},
		{1234.49, "$1,234"},
		{70000000, "$70,000,000"},
		{-2500.5, "-$2,501"},
		{-0.4, "$0"},
	}
	for _, c := range cases {
		assert.Equal(t, c.want, Currency(c.in), "Currency(%v)", c.in)
	}
}

func TestUnitCurrency(t *testing.T) {
	assert.Equal(t, "$20.00", UnitCurrency(2000.0/100.0))
	assert.Equal(t, "$12.50", UnitCurrency(5000.0/400.0))
	assert.Equal(t, "$1.01", UnitCurrency(1.005))
	assert.Equal(t, "$1,234.57", UnitCurrency(1234.567))
}

func TestNumber(t *testing.T) {
	assert.Equal(t, "0.1235", Number(0.123456, LCOEDecimals))
	assert.Equal(t, "2.35", Number(2.345, DefaultDecimals))
	assert.Equal(t, "1,000.00", Number(1000, DefaultDecimals))
	assert.Equal(t, "-3.50", Number(-3.4951, DefaultDecimals))
	assert.Equal(t, "12", Number(12.4, 0))
	assert.Equal(t, "100,000,000,000,000,000,000.00", Number(1e20, 2))
	assert.Equal(t, "$1,000,000,000,000,000,000,000", Currency(1e21))
}

func TestNonFinite(t *testing.T) {
	assert.Equal(t, "$NaN", UnitCurrency(math.NaN()))
	assert.Equal(t, "$∞", UnitCurrency(math.Inf(1)))
	assert.Equal(t, "-$∞", Currency(math.Inf(-1)))
	assert.Equal(t, "NaN", Number(math.NaN(), 2))
	assert.True(t, math.IsNaN(Round(math.NaN(), 2)))
}

func TestRound(t *testing.T) {
	assert.Equal(t, 0.1235, Round(0.123456, 4))
	assert.Equal(t, 2.35, Round(2.345, 2))
	assert.Equal(t, -2.35, Round(-2.345, 2))
}
