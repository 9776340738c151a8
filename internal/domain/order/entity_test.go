package order

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestOrderLifecycle(t *testing.T) {
	o := NewOrder(1, 10, "")
	assert.Equal(t, StatusPending, o.Status)

	require.NoError(t, o.Approve())
	assert.Equal(t, StatusProcessing, o.Status)
	assert.NotNil(t, o.ConfirmedAt)

	require.NoError(t, o.Ship())
	assert.Equal(t, StatusShipped, o.Status)
	assert.NotNil(t, o.ShippedAt)

	require.NoError(t, o.Deliver())
	assert.Equal(t, StatusDelivered, o.Status)
	assert.NotNil(t, o.DeliveredAt)
}

func TestInvalidTransitionLeavesStatusUnchanged(t *testing.T) {
	o := NewOrder(1, 10, "")

	// Enviar um pedido ainda pendente é transição inválida
	err := o.Ship()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, o.Status)
	assert.Nil(t, o.ShippedAt)

	err = o.Deliver()
	assert.ErrorIs(t, err, ErrInvalidTransition)
	assert.Equal(t, StatusPending, o.Status)
}

func TestCancelFromNonTerminalStates(t *testing.T) {
	o := NewOrder(1, 10, "")
	require.NoError(t, o.Approve())

	require.NoError(t, o.Cancel())
	assert.Equal(t, StatusCancelled, o.Status)
	assert.NotNil(t, o.CancelledAt)

	// Cancelado é terminal
	assert.ErrorIs(t, o.Approve(), ErrInvalidTransition)
	assert.ErrorIs(t, o.Cancel(), ErrInvalidTransition)
}

func TestCancelDeliveredIsRejected(t *testing.T) {
	o := NewOrder(1, 10, "")
	require.NoError(t, o.Approve())
	require.NoError(t, o.Ship())
	require.NoError(t, o.Deliver())

	assert.ErrorIs(t, o.Cancel(), ErrInvalidTransition)
	assert.Equal(t, StatusDelivered, o.Status)
}

func TestItemTotals(t *testing.T) {
	item, err := NewItem(1, "Arroz 5kg", 3, 25.00, 10)
	require.NoError(t, err)

	// 3 * 25.00 = 75.00; desconto 10% = 7.50; total = 67.50
	assert.Equal(t, 7.50, item.DiscountAmount)
	assert.Equal(t, 67.50, item.TotalAmount)
}

func TestItemWithoutDiscount(t *testing.T) {
	item, err := NewItem(1, "Feijão 1kg", 2, 8.50, 0)
	require.NoError(t, err)

	assert.Equal(t, 0.00, item.DiscountAmount)
	assert.Equal(t, 17.00, item.TotalAmount)
}

func TestItemValidation(t *testing.T) {
	_, err := NewItem(1, "Arroz", 0, 10, 0)
	assert.ErrorIs(t, err, ErrInvalidQuantity)

	_, err = NewItem(1, "Arroz", 1, 10, 101)
	assert.ErrorIs(t, err, ErrInvalidDiscount)

	_, err = NewItem(1, "Arroz", 1, 10, -1)
	assert.ErrorIs(t, err, ErrInvalidDiscount)
}

func TestRecalculateTotal(t *testing.T) {
	o := NewOrder(1, 10, "")
	o.DiscountAmount = 5.00
	o.FeeAmount = 2.50

	first, err := NewItem(1, "Arroz 5kg", 2, 25.00, 0)
	require.NoError(t, err)
	second, err := NewItem(2, "Feijão 1kg", 1, 8.50, 10)
	require.NoError(t, err)

	o.AddItem(first)
	o.AddItem(second)
	o.RecalculateTotal()

	// subtotal = 50.00 + 7.65 = 57.65; total = 57.65 - 5.00 + 2.50
	assert.InDelta(t, 57.65, o.Subtotal, 0.001)
	assert.InDelta(t, 55.15, o.TotalAmount, 0.001)
}

func TestRecalculateTotalEmptyOrder(t *testing.T) {
	o := NewOrder(1, 10, "")
	o.FeeAmount = 3.00

	o.RecalculateTotal()

	assert.Equal(t, 0.00, o.Subtotal)
	assert.Equal(t, 3.00, o.TotalAmount)
}
