package product

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTotalAmountDerivation(t *testing.T) {
	p, err := NewProduct(1, "Carvão 3kg", 100.00, 15.00, 10)
	require.NoError(t, err)

	assert.Equal(t, 85.00, p.TotalAmount)
}

func TestTotalAmountFlooredAtZero(t *testing.T) {
	// Desconto maior que o valor bruto leva o total a zero, nunca negativo
	p, err := NewProduct(1, "Carvão 3kg", 100.00, 150.00, 10)
	require.NoError(t, err)

	assert.Equal(t, 0.00, p.TotalAmount)
}

func TestSetPricingRecalculates(t *testing.T) {
	p, err := NewProduct(1, "Carvão 3kg", 100.00, 0, 10)
	require.NoError(t, err)
	assert.Equal(t, 100.00, p.TotalAmount)

	require.NoError(t, p.SetPricing(100.00, 15.00))
	assert.Equal(t, 85.00, p.TotalAmount)

	require.NoError(t, p.SetPricing(80.00, 0))
	assert.Equal(t, 80.00, p.TotalAmount)
}

func TestSetPricingRejectsNegatives(t *testing.T) {
	p, err := NewProduct(1, "Carvão 3kg", 100.00, 0, 10)
	require.NoError(t, err)

	assert.ErrorIs(t, p.SetPricing(-1, 0), ErrNegativeAmount)
	assert.ErrorIs(t, p.SetPricing(10, -1), ErrNegativeAmount)
	assert.Equal(t, 100.00, p.TotalAmount)
}

func TestFavoredPricing(t *testing.T) {
	p, err := NewProduct(1, "Carvão 3kg", 100.00, 0, 10)
	require.NoError(t, err)
	assert.False(t, p.IsForFavored)

	price := 95.00
	p.SetFavoredPricing(&price)
	assert.True(t, p.IsForFavored)
	require.NotNil(t, p.FavoredPrice)
	assert.Equal(t, 95.00, *p.FavoredPrice)

	p.SetFavoredPricing(nil)
	assert.False(t, p.IsForFavored)
	assert.Nil(t, p.FavoredPrice)
}
