package tenant

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/carvasys/carvasys-api/internal/domain/company"
)

type fakeResolver struct {
	companies map[string]*company.Company
	links     map[int64]map[int64]bool
}

func (r *fakeResolver) Resolve(_ context.Context, key string) (*company.Company, error) {
	c, ok := r.companies[key]
	if !ok {
		return nil, ErrCompanyNotFound
	}
	return c, nil
}

func (r *fakeResolver) CanAccess(_ context.Context, companyID, clientID int64) (bool, error) {
	return r.links[companyID][clientID], nil
}

func activeCompany(t *testing.T, id int64) *company.Company {
	t.Helper()
	c, err := company.NewCompany("Mercearia do Zé", company.TypeGrocery)
	require.NoError(t, err)
	c.ID = id
	return c
}

func TestMiddlewareResolvesCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := activeCompany(t, 42)
	resolver := &fakeResolver{
		companies: map[string]*company.Company{c.UUID: c},
	}

	var gotID int64
	router := gin.New()
	router.GET("/companies/:company/ping", Middleware(resolver), func(ctx *gin.Context) {
		gotID = CompanyID(ctx.Request.Context())
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies/"+c.UUID+"/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, int64(42), gotID)
}

func TestMiddlewareUnknownCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := &fakeResolver{companies: map[string]*company.Company{}}

	router := gin.New()
	router.GET("/companies/:company/ping", Middleware(resolver), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies/nao-existe/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestMiddlewareInactiveCompany(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := activeCompany(t, 7)
	c.Deactivate()
	resolver := &fakeResolver{
		companies: map[string]*company.Company{c.UUID: c},
	}

	router := gin.New()
	router.GET("/companies/:company/ping", Middleware(resolver), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies/"+c.UUID+"/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMiddlewareDeniesClientWithoutLink(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := activeCompany(t, 7)
	resolver := &fakeResolver{
		companies: map[string]*company.Company{c.UUID: c},
		links:     map[int64]map[int64]bool{7: {99: true}},
	}

	router := gin.New()
	router.GET("/companies/:company/ping", func(ctx *gin.Context) {
		ctx.Set("client_id", int64(100))
	}, Middleware(resolver), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies/"+c.UUID+"/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code)
}

func TestMiddlewareAllowsLinkedClient(t *testing.T) {
	gin.SetMode(gin.TestMode)

	c := activeCompany(t, 7)
	resolver := &fakeResolver{
		companies: map[string]*company.Company{c.UUID: c},
		links:     map[int64]map[int64]bool{7: {99: true}},
	}

	router := gin.New()
	router.GET("/companies/:company/ping", func(ctx *gin.Context) {
		ctx.Set("client_id", int64(99))
	}, Middleware(resolver), func(ctx *gin.Context) {
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/companies/"+c.UUID+"/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestMiddlewarePassesThroughUnscopedRoutes(t *testing.T) {
	gin.SetMode(gin.TestMode)

	resolver := &fakeResolver{companies: map[string]*company.Company{}}

	router := gin.New()
	router.GET("/ping", Middleware(resolver), func(ctx *gin.Context) {
		assert.Equal(t, int64(0), CompanyID(ctx.Request.Context()))
		ctx.Status(http.StatusOK)
	})

	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/ping", nil)
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
}

func TestCompanyContextIsolation(t *testing.T) {
	a := &company.Company{ID: 1, Name: "A"}
	b := &company.Company{ID: 2, Name: "B"}

	ctxA := SetCompanyContext(context.Background(), a)
	ctxB := SetCompanyContext(context.Background(), b)

	assert.Equal(t, int64(1), CompanyID(ctxA))
	assert.Equal(t, int64(2), CompanyID(ctxB))

	_, ok := CompanyFromContext(context.Background())
	assert.False(t, ok)
}
