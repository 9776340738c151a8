package notification

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewNotificationDefaults(t *testing.T) {
	n, err := NewNotification(1, 2, "", "Pedido confirmado", "Seu pedido foi confirmado", "")
	require.NoError(t, err)

	assert.Equal(t, TypeGeneral, n.Type)
	assert.NotEmpty(t, n.UUID)
	assert.False(t, n.IsRead())
}

func TestNewNotificationRequiresTitle(t *testing.T) {
	_, err := NewNotification(1, 2, TypeOrderStatus, "", "mensagem", "")
	assert.ErrorIs(t, err, ErrEmptyTitle)
}

func TestMarkAsReadIsIdempotent(t *testing.T) {
	n, err := NewNotification(1, 2, TypePaymentReceived, "Pagamento registrado", "Recebemos seu pagamento", "")
	require.NoError(t, err)

	n.MarkAsRead()
	require.True(t, n.IsRead())
	first := *n.ReadAt

	// Marcar de novo não move o instante da leitura
	n.MarkAsRead()
	assert.Equal(t, first, *n.ReadAt)

	n.MarkAsUnread()
	assert.False(t, n.IsRead())
}
