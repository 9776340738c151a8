package clientuser

import (
	"context"
)

// Repository define a interface para operações de repositório de usuários do portal
type Repository interface {
	// Create cria uma nova identidade de acesso
	Create(ctx context.Context, u *ClientUser) error

	// FindByID busca um usuário pelo ID
	FindByID(ctx context.Context, id int64) (*ClientUser, error)

	// FindByUUID busca um usuário pelo UUID
	FindByUUID(ctx context.Context, uuid string) (*ClientUser, error)

	// FindByEmail busca um usuário pelo email
	FindByEmail(ctx context.Context, email string) (*ClientUser, error)

	// ListByClient lista as identidades de acesso de um cliente
	ListByClient(ctx context.Context, clientID int64) ([]*ClientUser, error)

	// Update atualiza os dados de um usuário existente
	Update(ctx context.Context, u *ClientUser) error

	// UpdateLoginState persiste contador de tentativas, bloqueio e último acesso
	UpdateLoginState(ctx context.Context, u *ClientUser) error
}
