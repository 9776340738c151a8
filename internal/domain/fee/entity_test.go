package fee

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestApplyPercentage(t *testing.T) {
	f, err := NewFee(1, "Taxa de serviço", 10, TypePercentage)
	require.NoError(t, err)

	assert.Equal(t, 5.00, f.Apply(50.00))
	assert.Equal(t, 0.00, f.Apply(0))
}

func TestApplyFixed(t *testing.T) {
	f, err := NewFee(1, "Taxa de entrega", 7.50, TypeFixed)
	require.NoError(t, err)

	assert.Equal(t, 7.50, f.Apply(50.00))
	assert.Equal(t, 7.50, f.Apply(0))
}

func TestNewFeeValidation(t *testing.T) {
	_, err := NewFee(1, "", 10, TypeFixed)
	assert.ErrorIs(t, err, ErrEmptyDescription)

	_, err = NewFee(1, "Taxa", -1, TypeFixed)
	assert.ErrorIs(t, err, ErrNegativeAmount)

	_, err = NewFee(1, "Taxa", 10, Type("unknown"))
	assert.ErrorIs(t, err, ErrInvalidType)
}
