package tenant

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/carvasys/carvasys-api/internal/adapter/api/dto"
	"github.com/carvasys/carvasys-api/internal/domain/company"
)

// Resolver resolve uma empresa a partir do identificador de rota e
// verifica o vínculo do cliente autenticado com ela
type Resolver interface {
	// Resolve busca a empresa aceitando UUID ou ID numérico
	Resolve(ctx context.Context, key string) (*company.Company, error)

	// CanAccess verifica se o cliente tem vínculo ativo com a empresa
	CanAccess(ctx context.Context, companyID, clientID int64) (bool, error)
}

// Middleware cria o middleware de resolução de tenant. Rotas sem o
// parâmetro de empresa passam sem escopo (login, listagem de empresas);
// falhas de resolução abortam a requisição — são erros de autorização
// visíveis ao chamador, nunca transientes.
//
// A empresa resolvida é vinculada ao context.Context da requisição, e o
// escopo por empresa é estrutural: cada método de repositório escopado
// recebe o companyID explicitamente. Não há escopo global a ser
// registrado ou removido ao fim da requisição.
func Middleware(resolver Resolver) gin.HandlerFunc {
	return func(c *gin.Context) {
		key := c.Param("company")
		if key == "" {
			key = c.Param("tenant")
		}
		if key == "" {
			c.Next()
			return
		}

		resolved, err := resolver.Resolve(c.Request.Context(), key)
		if err != nil {
			if errors.Is(err, ErrCompanyNotFound) {
				c.AbortWithStatusJSON(http.StatusNotFound, dto.NewErrorResponse(
					http.StatusNotFound,
					"empresa não encontrada",
					err.Error(),
				))
				return
			}
			c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
				http.StatusInternalServerError,
				"erro ao resolver empresa",
				err.Error(),
			))
			return
		}

		if !resolved.IsActive() {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
				http.StatusForbidden,
				"empresa não está ativa",
				ErrCompanyNotActive.Error(),
			))
			return
		}

		clientID := c.GetInt64("client_id")
		if clientID != 0 {
			allowed, err := resolver.CanAccess(c.Request.Context(), resolved.ID, clientID)
			if err != nil {
				c.AbortWithStatusJSON(http.StatusInternalServerError, dto.NewErrorResponse(
					http.StatusInternalServerError,
					"erro ao verificar vínculo com a empresa",
					err.Error(),
				))
				return
			}
			if !allowed {
				c.AbortWithStatusJSON(http.StatusForbidden, dto.NewErrorResponse(
					http.StatusForbidden,
					"acesso negado a esta empresa",
					ErrAccessDenied.Error(),
				))
				return
			}
		}

		c.Set("company_id", resolved.ID)
		c.Request = c.Request.WithContext(SetCompanyContext(c.Request.Context(), resolved))

		c.Next()
	}
}
