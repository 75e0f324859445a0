package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestProjectCreateEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	sp := env.createSalesPerson(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/projects", &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Anand",
			ContactNumber: "9888877665",
			Address:       "12 MG Road",
		},
		ProjectType:   domain.ProjectType2BHK,
		SalesPersonID: sp.ID,
	})
	w := httptest.NewRecorder()
	env.projectHandler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	created := decodeJSON[domain.ProjectDTO](t, w)
	assert.Equal(t, domain.ProjectStatusDraft, created.Status)
	assert.True(t, strings.HasPrefix(created.QuotationNumber, "Q"))
	assert.Contains(t, w.Header().Get("Location"), created.ID.String())
}

func TestProjectCreateEndpointInactiveSalesPerson(t *testing.T) {
	env := newHandlerEnv(t)
	sp := env.createSalesPerson(t)

	inactive := false
	_, err := env.salesPersons.Update(env.ctx, sp.ID, &domain.UpdateSalesPersonRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	req := env.newRequest(t, http.MethodPost, "/api/v1/projects", &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Anand",
			ContactNumber: "9888877665",
			Address:       "12 MG Road",
		},
		ProjectType:   domain.ProjectType2BHK,
		SalesPersonID: sp.ID,
	})
	w := httptest.NewRecorder()
	env.projectHandler.Create(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProjectUpdateEndpointInvalidTransition(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)

	// Draft cannot jump straight to confirmed.
	confirmed := domain.ProjectStatusConfirmed
	req := env.newRequest(t, http.MethodPut, "/api/v1/projects/"+project.ID.String(),
		&domain.UpdateProjectRequest{Status: &confirmed},
		"id", project.ID.String())
	w := httptest.NewRecorder()
	env.projectHandler.Update(w, req)

	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestProjectQuotationEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID)

	req := env.newRequest(t, http.MethodGet, "/api/v1/projects/"+project.ID.String()+"/quotation", nil,
		"id", project.ID.String())
	w := httptest.NewRecorder()
	env.projectHandler.Quotation(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	quotation := decodeJSON[domain.QuotationDTO](t, w)
	assert.Equal(t, 1, quotation.RoomCount)
	assert.Equal(t, 1, quotation.WindowCount)
	assert.InDelta(t, 12935, quotation.GrandTotal, 0.01)
}

func TestProjectWhatsAppEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID)

	req := env.newRequest(t, http.MethodGet, "/api/v1/projects/"+project.ID.String()+"/whatsapp", nil,
		"id", project.ID.String())
	w := httptest.NewRecorder()
	env.projectHandler.WhatsApp(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "text/plain; charset=utf-8", w.Header().Get("Content-Type"))
	body := w.Body.String()
	assert.Contains(t, body, project.QuotationNumber)
	assert.Contains(t, body, "Anand")
}

func TestProjectPDFEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID)

	req := env.newRequest(t, http.MethodGet, "/api/v1/projects/"+project.ID.String()+"/pdf", nil,
		"id", project.ID.String())
	w := httptest.NewRecorder()
	env.projectHandler.PDF(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "application/pdf", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), project.QuotationNumber)
	assert.True(t, strings.HasPrefix(w.Body.String(), "%PDF"))
}

func TestProjectGetEndpointUnknownID(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodGet, "/api/v1/projects/3f1f9a90-16a1-4a3e-8f5e-000000000000", nil,
		"id", "3f1f9a90-16a1-4a3e-8f5e-000000000000")
	w := httptest.NewRecorder()
	env.projectHandler.GetByID(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProjectDeleteEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)

	req := env.newRequest(t, http.MethodDelete, "/api/v1/projects/"+project.ID.String(), nil,
		"id", project.ID.String())
	w := httptest.NewRecorder()
	env.projectHandler.Delete(w, req)
	require.Equal(t, http.StatusNoContent, w.Code)

	req = env.newRequest(t, http.MethodGet, "/api/v1/projects/"+project.ID.String(), nil,
		"id", project.ID.String())
	w = httptest.NewRecorder()
	env.projectHandler.GetByID(w, req)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
