package clientuser

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

var (
	ErrEmptyEmail    = errors.New("email não pode ser vazio")
	ErrEmptyPassword = errors.New("senha não pode ser vazia")
	ErrAccountLocked = errors.New("conta bloqueada por excesso de tentativas de login")
)

// Limites de bloqueio de login
const (
	MaxLoginAttempts = 5
	LockoutDuration  = 30 * time.Minute
)

// ClientUser representa a identidade de acesso ao portal do cliente.
// É distinta do Client: o cliente é o titular do fiado, o ClientUser é
// o login que o acessa.
type ClientUser struct {
	ID             int64      `json:"id"`
	UUID           string     `json:"uuid"`
	ClientID       int64      `json:"client_id"`
	Email          string     `json:"email"`
	Password       string     `json:"-"` // hash bcrypt, nunca exposto em JSON
	DocumentType   string     `json:"document_type"`
	DocumentNumber string     `json:"document_number"`
	LastLoginAt    *time.Time `json:"last_login_at,omitempty"`
	LoginAttempts  int        `json:"login_attempts"`
	LockedUntil    *time.Time `json:"locked_until,omitempty"`
	Preferences    []byte     `json:"-"` // JSON livre de preferências do portal
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

// NewClientUser cria uma nova identidade de acesso para um cliente
func NewClientUser(clientID int64, email, password string) (*ClientUser, error) {
	if email == "" {
		return nil, ErrEmptyEmail
	}

	if password == "" {
		return nil, ErrEmptyPassword
	}

	now := time.Now()
	u := &ClientUser{
		UUID:      uuid.New().String(),
		ClientID:  clientID,
		Email:     email,
		CreatedAt: now,
		UpdatedAt: now,
	}

	if err := u.SetPassword(password); err != nil {
		return nil, err
	}

	return u, nil
}

// SetPassword configura a senha do usuário com hash bcrypt
func (u *ClientUser) SetPassword(password string) error {
	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	u.Password = string(hashedPassword)
	u.UpdatedAt = time.Now()
	return nil
}

// CheckPassword verifica se a senha fornecida é válida
func (u *ClientUser) CheckPassword(password string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password))
	return err == nil
}

// IsLocked verifica se a conta está bloqueada no momento
func (u *ClientUser) IsLocked() bool {
	return u.LockedUntil != nil && time.Now().Before(*u.LockedUntil)
}

// RegisterFailedLogin incrementa as tentativas de login falhadas.
// Ao atingir MaxLoginAttempts a conta é bloqueada por LockoutDuration
// e o contador volta a zero.
func (u *ClientUser) RegisterFailedLogin() {
	attempts := u.LoginAttempts + 1

	if attempts >= MaxLoginAttempts {
		lockedUntil := time.Now().Add(LockoutDuration)
		u.LockedUntil = &lockedUntil
		u.LoginAttempts = 0
	} else {
		u.LoginAttempts = attempts
	}

	u.UpdatedAt = time.Now()
}

// RegisterSuccessfulLogin zera o contador de tentativas e registra o acesso
func (u *ClientUser) RegisterSuccessfulLogin() {
	now := time.Now()
	u.LoginAttempts = 0
	u.LockedUntil = nil
	u.LastLoginAt = &now
	u.UpdatedAt = now
}
