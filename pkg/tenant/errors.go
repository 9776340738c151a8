package tenant

import "errors"

// Erros comuns relacionados à resolução de tenant
var (
	// ErrCompanyNotSpecified ocorre quando a rota não carrega a empresa
	ErrCompanyNotSpecified = errors.New("empresa não especificada")

	// ErrCompanyNotFound ocorre quando a empresa não é encontrada
	ErrCompanyNotFound = errors.New("empresa não encontrada")

	// ErrCompanyNotActive ocorre quando a empresa não está ativa
	ErrCompanyNotActive = errors.New("empresa não está ativa")

	// ErrAccessDenied ocorre quando o cliente não tem vínculo ativo com a empresa
	ErrAccessDenied = errors.New("acesso negado a esta empresa")
)
