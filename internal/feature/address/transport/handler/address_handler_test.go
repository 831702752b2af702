package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shop_backend/internal/api"
	"shop_backend/internal/feature/address/domain/entity"
	"shop_backend/internal/feature/address/usecase"
	jwtmw "shop_backend/internal/platform/jwt"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	api.RegisterValidators()
	os.Exit(m.Run())
}

// mockAddressUsecase owns address 1 for user 7 only.
type mockAddressUsecase struct {
	gotUserID uint
	gotInput  usecase.AddressInput
	err       error
}

func (m *mockAddressUsecase) find(userID, id uint) (*entity.Address, error) {
	m.gotUserID = userID
	if m.err != nil {
		return nil, m.err
	}
	if userID != 7 || id != 1 {
		return nil, usecase.ErrAddressNotFound
	}
	return &entity.Address{ID: 1, UserID: 7, AddressLine1: "1 Main St", City: "Tashkent"}, nil
}

func (m *mockAddressUsecase) List(_ context.Context, userID uint) ([]entity.Address, error) {
	a, err := m.find(userID, 1)
	if err != nil {
		return nil, err
	}
	return []entity.Address{*a}, nil
}

func (m *mockAddressUsecase) Get(_ context.Context, userID, id uint) (*entity.Address, error) {
	return m.find(userID, id)
}

func (m *mockAddressUsecase) Create(_ context.Context, userID uint, in usecase.AddressInput) (*entity.Address, error) {
	m.gotUserID, m.gotInput = userID, in
	return &entity.Address{ID: 2, UserID: userID, AddressLine1: in.AddressLine1}, m.err
}

func (m *mockAddressUsecase) Update(_ context.Context, userID, id uint, in usecase.AddressInput) (*entity.Address, error) {
	m.gotInput = in
	return m.find(userID, id)
}

func (m *mockAddressUsecase) Delete(_ context.Context, userID, id uint) error {
	_, err := m.find(userID, id)
	return err
}

func newRouter(h *AddressHandler) *gin.Engine {
	r := gin.New()
	r.Use(func(c *gin.Context) {
		c.Set(jwtmw.ContextUserID, uint(7))
		c.Next()
	})
	r.GET("/addresses", h.List)
	r.POST("/addresses", h.Create)
	r.GET("/addresses/:id", h.Get)
	r.PUT("/addresses/:id", h.Update)
	r.DELETE("/addresses/:id", h.Delete)
	return r
}

func do(r http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		_ = json.NewEncoder(&buf).Encode(body)
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

var validAddress = gin.H{
	"address_line1": "1 Main St",
	"city":          "Tashkent",
	"state":         "Tashkent",
	"zip_code":      "100000",
	"country":       "UZ",
}

func TestAddressHandler(t *testing.T) {
	tests := []struct {
		name       string
		method     string
		path       string
		body       any
		ucErr      error
		wantStatus int
	}{
		{"list", http.MethodGet, "/addresses", nil, nil, http.StatusOK},
		{"get own", http.MethodGet, "/addresses/1", nil, nil, http.StatusOK},
		{"get other", http.MethodGet, "/addresses/2", nil, nil, http.StatusNotFound},
		{"create", http.MethodPost, "/addresses", validAddress, nil, http.StatusCreated},
		{"create missing city", http.MethodPost, "/addresses", gin.H{"address_line1": "x"}, nil, http.StatusBadRequest},
		{"update own", http.MethodPut, "/addresses/1", validAddress, nil, http.StatusOK},
		{"update other", http.MethodPut, "/addresses/5", validAddress, nil, http.StatusNotFound},
		{"delete own", http.MethodDelete, "/addresses/1", nil, nil, http.StatusNoContent},
		{"delete other", http.MethodDelete, "/addresses/5", nil, nil, http.StatusNotFound},
		{"store failure", http.MethodGet, "/addresses", nil, errors.New("db down"), http.StatusInternalServerError},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			uc := &mockAddressUsecase{err: tt.ucErr}

			w := do(newRouter(NewAddressHandler(uc)), tt.method, tt.path, tt.body)

			assert.Equal(t, tt.wantStatus, w.Code, w.Body.String())
		})
	}
}

func TestAddressHandler_CreatePassesCaller(t *testing.T) {
	uc := &mockAddressUsecase{}

	w := do(newRouter(NewAddressHandler(uc)), http.MethodPost, "/addresses", validAddress)

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, uint(7), uc.gotUserID)
	assert.Equal(t, "100000", uc.gotInput.ZipCode)
	assert.Nil(t, uc.gotInput.AddressLine2)
}
