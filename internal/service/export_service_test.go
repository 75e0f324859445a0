package service

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
)

func TestWhatsAppTextContents(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	text, err := env.export.WhatsAppText(env.ctx, project.ID)
	require.NoError(t, err)

	assert.Contains(t, text, project.QuotationNumber)
	assert.Contains(t, text, "Anand")
	assert.Contains(t, text, "Living Room")
	assert.Contains(t, text, "₹12,935.00")
	assert.Contains(t, text, "146\" x 90\"")
}

func TestWhatsAppTextSkipsEmptyRooms(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)
	_, err := env.rooms.Create(env.ctx, &domain.CreateRoomRequest{
		ProjectID: project.ID,
		RoomType:  domain.RoomTypeBalcony,
	})
	require.NoError(t, err)

	text, err := env.export.WhatsAppText(env.ctx, project.ID)
	require.NoError(t, err)
	assert.NotContains(t, text, "Balcony")
}

func TestWhatsAppTextShowsDiscountAndBalance(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	discount := 935.0
	kind := domain.DiscountTypeFixed
	advance := 2000.0
	_, err := env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{
		Discount:      &discount,
		DiscountType:  &kind,
		AdvanceAmount: &advance,
	})
	require.NoError(t, err)

	text, err := env.export.WhatsAppText(env.ctx, project.ID)
	require.NoError(t, err)
	assert.Contains(t, text, "₹12,000.00")
	assert.Contains(t, text, "₹10,000.00")
}

func TestPDFExport(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	data, filename, err := env.export.PDF(env.ctx, project.ID)
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(filename, project.QuotationNumber))
	assert.True(t, strings.HasSuffix(filename, ".pdf"))
	require.NotEmpty(t, data)
	assert.Equal(t, "%PDF", string(data[:4]))
}

func TestPDFExportForeignProject(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	otherCtx := env.secondUserCtx(t)

	_, _, err := env.export.PDF(otherCtx, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)
}
