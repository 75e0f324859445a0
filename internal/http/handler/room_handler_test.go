package handler_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestRoomCreateEndpoint(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/rooms", &domain.CreateRoomRequest{
		ProjectID: project.ID,
		RoomType:  domain.RoomTypeBedroom,
	})
	w := httptest.NewRecorder()
	env.roomHandler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	room := decodeJSON[domain.RoomDTO](t, w)
	assert.Equal(t, project.ID, room.ProjectID)
	assert.Equal(t, domain.RoomTypeBedroom, room.RoomType)
}

func TestRoomListEndpointIncludesWindows(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)
	room, window := env.addRoomWithWindow(t, project.ID)

	req := env.newRequest(t, http.MethodGet, "/api/v1/projects/"+project.ID.String()+"/rooms", nil,
		"id", project.ID.String())
	w := httptest.NewRecorder()
	env.roomHandler.ListByProject(w, req)

	require.Equal(t, http.StatusOK, w.Code)
	rooms := decodeJSON[[]domain.RoomDTO](t, w)
	require.Len(t, rooms, 1)
	assert.Equal(t, room.ID, rooms[0].ID)
	require.Len(t, rooms[0].Windows, 1)
	assert.Equal(t, window.ID, rooms[0].Windows[0].ID)
}

func TestWindowCreateEndpointDerivesCost(t *testing.T) {
	env := newHandlerEnv(t)
	project := env.createProject(t)
	room, _ := env.addRoomWithWindow(t, project.ID)

	req := env.newRequest(t, http.MethodPost, "/api/v1/windows", &domain.CreateWindowRequest{
		RoomID:             room.ID,
		Style:              "Pleated",
		Width:              146,
		Height:             90,
		FabricCostPerMeter: 500,
		HookCount:          20,
	})
	w := httptest.NewRecorder()
	env.windowHandler.Create(w, req)

	require.Equal(t, http.StatusCreated, w.Code)
	window := decodeJSON[domain.WindowDTO](t, w)
	assert.Equal(t, 8, window.PannaCount)
	assert.InDelta(t, 9.83, window.Meters, 0.001)
	assert.InDelta(t, 12935, window.Cost.Total, 0.01)
}

func TestWindowCreateEndpointUnknownRoom(t *testing.T) {
	env := newHandlerEnv(t)

	req := env.newRequest(t, http.MethodPost, "/api/v1/windows", &domain.CreateWindowRequest{
		RoomID:             uuid.New(),
		Style:              "Pleated",
		Width:              100,
		Height:             80,
		FabricCostPerMeter: 400,
	})
	w := httptest.NewRecorder()
	env.windowHandler.Create(w, req)

	assert.Equal(t, http.StatusNotFound, w.Code)
}
