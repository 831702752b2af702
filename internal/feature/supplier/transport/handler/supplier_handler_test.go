package handler

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/supplier/domain/entity"
	"shop_backend/internal/feature/supplier/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	api.RegisterValidators()
	os.Exit(m.Run())
}

type mockSupplierUsecase struct {
	GetFunc    func(userID, id uint) (*entity.Supplier, error)
	VerifyFunc func(id uint, verified bool) (*entity.Supplier, error)
	createdBy  uint
}

func (m *mockSupplierUsecase) List(context.Context) ([]entity.Supplier, error) {
	return []entity.Supplier{{ID: 1, Name: "Acme"}}, nil
}

func (m *mockSupplierUsecase) Create(_ context.Context, userID uint, name, location string) (*entity.Supplier, error) {
	m.createdBy = userID
	return &entity.Supplier{ID: 2, UserID: &userID, Name: name, Location: location}, nil
}

func (m *mockSupplierUsecase) Get(_ context.Context, userID, id uint) (*entity.Supplier, error) {
	return m.GetFunc(userID, id)
}

func (m *mockSupplierUsecase) Delete(_ context.Context, userID, id uint) error {
	_, err := m.GetFunc(userID, id)
	return err
}

func (m *mockSupplierUsecase) Verify(_ context.Context, id uint, verified bool) (*entity.Supplier, error) {
	return m.VerifyFunc(id, verified)
}

func newRouter(h *SupplierHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(7))
		c.Next()
	})
	r.GET("/suppliers", h.List)
	r.POST("/suppliers", h.Create)
	r.GET("/suppliers/:id", h.Get)
	r.DELETE("/suppliers/:id", h.Delete)
	r.PATCH("/suppliers/:id/verify", h.Verify)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func ownedBy7(userID, id uint) (*entity.Supplier, error) {
	if userID != 7 || id != 1 {
		return nil, usecase.ErrSupplierNotFound
	}
	owner := uint(7)
	return &entity.Supplier{ID: 1, UserID: &owner, Name: "Acme"}, nil
}

func TestSupplierHandler_CRUD(t *testing.T) {
	uc := &mockSupplierUsecase{GetFunc: ownedBy7}
	r := newRouter(NewSupplierHandler(uc))

	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/suppliers", "").Code)

	w := do(r, http.MethodPost, "/suppliers", `{"name":"Globex","location":"Nukus"}`)
	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), uc.createdBy)
	assert.Contains(t, w.Body.String(), `"verified":false`)

	assert.Equal(t, http.StatusBadRequest, do(r, http.MethodPost, "/suppliers", `{"name":"Globex"}`).Code)
	assert.Equal(t, http.StatusOK, do(r, http.MethodGet, "/suppliers/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodGet, "/suppliers/2", "").Code)
	assert.Equal(t, http.StatusNoContent, do(r, http.MethodDelete, "/suppliers/1", "").Code)
	assert.Equal(t, http.StatusNotFound, do(r, http.MethodDelete, "/suppliers/3", "").Code)
}

func TestSupplierHandler_Verify(t *testing.T) {
	tests := []struct {
		name         string
		path         string
		body         string
		wantStatus   int
		wantVerified bool
	}{
		{"empty body verifies", "/suppliers/1/verify", "", http.StatusOK, true},
		{"explicit false", "/suppliers/1/verify", `{"verified":false}`, http.StatusOK, false},
		{"malformed", "/suppliers/1/verify", `{"verified":`, http.StatusBadRequest, false},
		{"missing", "/suppliers/9/verify", "", http.StatusNotFound, true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var got bool
			uc := &mockSupplierUsecase{VerifyFunc: func(id uint, verified bool) (*entity.Supplier, error) {
				got = verified
				if id != 1 {
					return nil, usecase.ErrSupplierNotFound
				}
				return &entity.Supplier{ID: id, Verified: verified}, nil
			}}

			w := do(newRouter(NewSupplierHandler(uc)), http.MethodPatch, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
			if tt.wantStatus != http.StatusBadRequest {
				assert.Equal(t, tt.wantVerified, got)
			}
		})
	}
}
