package favored

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newEntry(t *testing.T, total, paid float64) *Transaction {
	t.Helper()
	entry, err := NewTransaction(1, 10, "Compra fiado", total, 0, total, paid, 1, Snapshot{})
	require.NoError(t, err)
	return entry
}

func TestRemainingBalance(t *testing.T) {
	entry := newEntry(t, 100.00, 20.00)

	assert.Equal(t, 80.00, entry.RemainingBalance())
	assert.False(t, entry.IsFullyPaid())
}

func TestRegisterPaymentScenario(t *testing.T) {
	// Cenário: total 100.00, pago 20.00; paga 30.00 e depois 50.00
	entry := newEntry(t, 100.00, 20.00)

	require.NoError(t, entry.RegisterPayment(30.00))
	assert.Equal(t, 50.00, entry.RemainingBalance())
	assert.False(t, entry.IsFullyPaid())

	require.NoError(t, entry.RegisterPayment(50.00))
	assert.Equal(t, 0.00, entry.RemainingBalance())
	assert.True(t, entry.IsFullyPaid())
}

func TestRegisterPaymentRejectsInvalidAmounts(t *testing.T) {
	tests := []struct {
		name    string
		amount  float64
		wantErr error
	}{
		{name: "zero", amount: 0, wantErr: ErrInvalidPayment},
		{name: "negativo", amount: -10, wantErr: ErrInvalidPayment},
		{name: "acima do saldo", amount: 80.01, wantErr: ErrPaymentExceedsDebt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry := newEntry(t, 100.00, 20.00)

			err := entry.RegisterPayment(tt.amount)
			assert.ErrorIs(t, err, tt.wantErr)

			// Rejeição não pode mutar o lançamento
			assert.Equal(t, 20.00, entry.FavoredPaidAmount)
			assert.Equal(t, 80.00, entry.RemainingBalance())
		})
	}
}

func TestOverpaymentYieldsNegativeBalance(t *testing.T) {
	// Sobre-pagamento registrado diretamente (ex.: importação de dados):
	// o saldo fica negativo e o lançamento segue quitado
	entry := newEntry(t, 100.00, 120.00)

	assert.Equal(t, -20.00, entry.RemainingBalance())
	assert.True(t, entry.IsFullyPaid())
}

func TestIsFullyPaidBoundary(t *testing.T) {
	tests := []struct {
		total float64
		paid  float64
		want  bool
	}{
		{100.00, 99.99, false},
		{100.00, 100.00, true},
		{100.00, 100.01, true},
		{0, 0, true},
	}

	for _, tt := range tests {
		entry := newEntry(t, tt.total, tt.paid)
		assert.Equal(t, tt.want, entry.IsFullyPaid(), "total=%.2f paid=%.2f", tt.total, tt.paid)
	}
}

func TestNewTransactionFieldDefaulting(t *testing.T) {
	// favored_total omitido assume total_amount, que assume amount
	entry, err := NewTransaction(1, 10, "Fiado", 50.00, 0, 0, 0, 1, Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, 50.00, entry.TotalAmount)
	assert.Equal(t, 50.00, entry.FavoredTotal)
	assert.Equal(t, 0.00, entry.FavoredPaidAmount)

	entry, err = NewTransaction(1, 10, "Fiado", 0, 70.00, 0, 0, 1, Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, 70.00, entry.FavoredTotal)

	entry, err = NewTransaction(1, 10, "Fiado", 0, 0, 0, 0, 1, Snapshot{})
	require.NoError(t, err)
	assert.Equal(t, 0.00, entry.FavoredTotal)
}

func TestNewTransactionValidation(t *testing.T) {
	_, err := NewTransaction(1, 10, "", 10, 0, 0, 0, 1, Snapshot{})
	assert.ErrorIs(t, err, ErrEmptyName)

	_, err = NewTransaction(1, 10, "Fiado", 10, 0, 0, 0, 0, Snapshot{})
	assert.ErrorIs(t, err, ErrInvalidQuantity)
}

func TestSnapshotIsPreserved(t *testing.T) {
	snap := Snapshot{CategoryName: "Bebidas", ClientName: "João da Silva"}
	entry, err := NewTransaction(1, 10, "Fiado", 25.00, 0, 0, 0, 2, snap)
	require.NoError(t, err)

	assert.Equal(t, "Bebidas", entry.Snapshot.CategoryName)
	assert.Equal(t, "João da Silva", entry.Snapshot.ClientName)
}
