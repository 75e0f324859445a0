package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestCustomerCreateEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/customers", &domain.CreateCustomerRequest{
		Name:          "Anand",
		ContactNumber: "9888877665",
		Address:       "12 MG Road",
	})
	w := httptest.NewRecorder()
	env.customerHandler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[domain.CustomerDTO](t, w)
	assert.Equal(t, "Anand", created.Name)
	assert.Contains(t, w.Header().Get("Location"), created.ID.String())
}

func TestCustomerCreateEndpointValidation(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/customers", &domain.CreateCustomerRequest{
		Name: "Anand",
	})
	w := httptest.NewRecorder()
	env.customerHandler.Create(w, req)

	require.Equal(t, http.StatusBadRequest, w.Code)
	apiErr := decodeJSON[domain.APIError](t, w)
	assert.Contains(t, apiErr.Errors, "contactNumber")
	assert.Contains(t, apiErr.Errors, "address")
}

func TestCustomerGetEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	created, err := env.customers.Create(env.ctx, &domain.CreateCustomerRequest{
		Name:          "Anand",
		ContactNumber: "9888877665",
		Address:       "12 MG Road",
	})
	require.NoError(t, err)

	req := env.newRequest(t, http.MethodGet, "/api/v1/customers/"+created.ID.String(), nil,
		"id", created.ID.String())
	w := httptest.NewRecorder()
	env.customerHandler.GetByID(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	got := decodeJSON[domain.CustomerDTO](t, w)
	assert.Equal(t, created.ID, got.ID)
}

func TestCustomerGetEndpointBadID(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodGet, "/api/v1/customers/not-a-uuid", nil,
		"id", "not-a-uuid")
	w := httptest.NewRecorder()
	env.customerHandler.GetByID(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCustomerListEndpointSearch(t *testing.T) {
	env := newHandlerEnv(t)

	for _, c := range []*domain.CreateCustomerRequest{
		{Name: "Anand", ContactNumber: "9888877665", Address: "12 MG Road"},
		{Name: "Bhavna", ContactNumber: "9777766554", Address: "4 Park Street"},
	} {
		_, err := env.customers.Create(env.ctx, c)
		require.NoError(t, err)
	}

	req := env.newRequest(t, http.MethodGet, "/api/v1/customers?search=bhav", nil)
	w := httptest.NewRecorder()
	env.customerHandler.List(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	page := decodeJSON[domain.PaginatedResponse](t, w)
	assert.EqualValues(t, 1, page.Total)
	assert.Equal(t, 1, page.Page)
}

func TestCustomerDeleteEndpointInUse(t *testing.T) {
	env := newHandlerEnv(t)

	project := env.createProject(t)

	req := env.newRequest(t, http.MethodDelete, "/api/v1/customers/"+project.CustomerID.String(), nil,
		"id", project.CustomerID.String())
	w := httptest.NewRecorder()
	env.customerHandler.Delete(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestCustomerDeleteEndpoint(t *testing.T) {
	env := newHandlerEnv(t)

	created, err := env.customers.Create(env.ctx, &domain.CreateCustomerRequest{
		Name:          "Anand",
		ContactNumber: "9888877665",
		Address:       "12 MG Road",
	})
	require.NoError(t, err)

	req := env.newRequest(t, http.MethodDelete, "/api/v1/customers/"+created.ID.String(), nil,
		"id", created.ID.String())
	w := httptest.NewRecorder()
	env.customerHandler.Delete(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	req = env.newRequest(t, http.MethodGet, "/api/v1/customers/"+created.ID.String(), nil,
		"id", created.ID.String())
	w = httptest.NewRecorder()
	env.customerHandler.GetByID(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
