package service

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestWindowDerivedMeasurements(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	_, window := env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	// pannaCount = ceil(146/20), meters = round2((146+90)/24)
	assert.Equal(t, 8, window.PannaCount)
	assert.InDelta(t, 9.83, window.Meters, 1e-9)
	assert.Equal(t, 1, window.TrackCount) // defaults to one track
	assert.InDelta(t, 12935.0, window.Cost.Total, 1e-9)
}

func TestWindowNumberingIsSequentialPerRoom(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	room, first := env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	second, err := env.windows.Create(env.ctx, &domain.CreateWindowRequest{
		RoomID:             room.ID,
		Style:              "Eyelet",
		Width:              60,
		Height:             48,
		FabricCostPerMeter: 400,
	})
	require.NoError(t, err)

	otherRoom, err := env.rooms.Create(env.ctx, &domain.CreateRoomRequest{
		ProjectID: project.ID,
		RoomType:  domain.RoomTypeBedroom,
	})
	require.NoError(t, err)
	third, err := env.windows.Create(env.ctx, &domain.CreateWindowRequest{
		RoomID:             otherRoom.ID,
		Style:              "Roman",
		Width:              40,
		Height:             60,
		FabricCostPerMeter: 350,
	})
	require.NoError(t, err)

	assert.Equal(t, 1, first.WindowNumber)
	assert.Equal(t, 2, second.WindowNumber)
	// numbering restarts in each room
	assert.Equal(t, 1, third.WindowNumber)
}

func TestWindowTrackCountOverride(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	room, err := env.rooms.Create(env.ctx, &domain.CreateRoomRequest{
		ProjectID: project.ID,
		RoomType:  domain.RoomTypeLivingRoom,
	})
	require.NoError(t, err)

	tracks := 2
	window, err := env.windows.Create(env.ctx, &domain.CreateWindowRequest{
		RoomID:             room.ID,
		Style:              "Pleated",
		Width:              100,
		Height:             80,
		FabricCostPerMeter: 450,
		TrackCount:         &tracks,
	})
	require.NoError(t, err)

	assert.Equal(t, 2, window.TrackCount)
	assert.InDelta(t, 2*180.0, window.Cost.TrackCost, 1e-9)
}

func TestWindowInheritsProjectFromRoom(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	_, window := env.addRoomWithWindow(t, project.ID, domain.RoomTypeKitchen)
	assert.Equal(t, project.ID, window.ProjectID)
}

func TestWindowCreateInForeignRoomFails(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	room, _ := env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)
	otherCtx := env.secondUserCtx(t)

	_, err := env.windows.Create(otherCtx, &domain.CreateWindowRequest{
		RoomID:             room.ID,
		Style:              "Pleated",
		Width:              50,
		Height:             50,
		FabricCostPerMeter: 300,
	})
	assert.ErrorIs(t, err, ErrRoomNotInProject)
}

func TestWindowGetByIDUnknown(t *testing.T) {
	env := newTestEnv(t)
	_, err := env.windows.GetByID(env.ctx, uuid.New())
	assert.ErrorIs(t, err, ErrNotFound)
}
