package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/repository"
)

func TestCreateProjectWithInlineCustomer(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)

	assert.True(t, ValidQuotationNumber(project.QuotationNumber))
	assert.Equal(t, domain.ProjectStatusDraft, project.Status)
	assert.NotNil(t, project.Customer)
	assert.Equal(t, "Anand", project.Customer.Name)

	// Rate card frozen from configuration defaults
	assert.Equal(t, 180.0, project.RateCard.MakingRate)
	assert.Equal(t, 300.0, project.RateCard.FittingRate)
	assert.Equal(t, domain.DefaultTermsAndConditions, project.TermsAndConditions)
}

func TestCreateProjectDedupsCustomerByContactNumber(t *testing.T) {
	env := newTestEnv(t)
	sp := env.createSalesPerson(t)

	first, err := env.projects.Create(env.ctx, &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Anand",
			ContactNumber: "9888877665",
			Address:       "12 MG Road",
		},
		ProjectType:   domain.ProjectType2BHK,
		SalesPersonID: sp.ID,
	})
	require.NoError(t, err)

	second, err := env.projects.Create(env.ctx, &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Anand K", // different spelling, same phone
			ContactNumber: "9888877665",
			Address:       "elsewhere",
		},
		ProjectType:   domain.ProjectType3BHK,
		SalesPersonID: sp.ID,
	})
	require.NoError(t, err)

	assert.Equal(t, first.CustomerID, second.CustomerID)
	assert.NotEqual(t, first.QuotationNumber, second.QuotationNumber)
}

func TestCreateProjectFreezesRateCard(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	before, err := env.projects.GetByID(env.ctx, project.ID)
	require.NoError(t, err)

	// Raising the configured making rate must not reprice the project
	making := 500.0
	_, err = env.configuration.Update(env.ctx, &domain.UpdateConfigurationRequest{
		DefaultMakingRate: &making,
	})
	require.NoError(t, err)

	after, err := env.projects.GetByID(env.ctx, project.ID)
	require.NoError(t, err)
	assert.Equal(t, before.TotalAmount, after.TotalAmount)
	assert.Equal(t, 180.0, after.RateCard.MakingRate)
}

func TestCreateProjectWithRateOverrides(t *testing.T) {
	env := newTestEnv(t)
	sp := env.createSalesPerson(t)

	making := 250.0
	project, err := env.projects.Create(env.ctx, &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Divya",
			ContactNumber: "9777766554",
			Address:       "4 Park Street",
		},
		ProjectType:       domain.ProjectTypeVilla,
		SalesPersonID:     sp.ID,
		DefaultMakingRate: &making,
	})
	require.NoError(t, err)

	assert.Equal(t, 250.0, project.RateCard.MakingRate)
	// Unoverridden rates come from configuration
	assert.Equal(t, 300.0, project.RateCard.FittingRate)
}

func TestCreateProjectRejectsInactiveSalesPerson(t *testing.T) {
	env := newTestEnv(t)
	sp := env.createSalesPerson(t)

	inactive := false
	_, err := env.salesPersons.Update(env.ctx, sp.ID, &domain.UpdateSalesPersonRequest{
		IsActive: &inactive,
	})
	require.NoError(t, err)

	_, err = env.projects.Create(env.ctx, &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Anand",
			ContactNumber: "9888877665",
			Address:       "12 MG Road",
		},
		ProjectType:   domain.ProjectType2BHK,
		SalesPersonID: sp.ID,
	})
	assert.ErrorIs(t, err, ErrInactiveStaff)
}

func TestProjectStatusTransitions(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)

	// draft -> confirmed skips quotation_sent and must fail
	confirmed := domain.ProjectStatusConfirmed
	_, err := env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{Status: &confirmed})
	assert.ErrorIs(t, err, ErrInvalidTransition)

	sent := domain.ProjectStatusQuotationSent
	updated, err := env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{Status: &sent})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusQuotationSent, updated.Status)

	updated, err = env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{Status: &confirmed})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusConfirmed, updated.Status)

	// cancelled is reachable from any non-terminal state
	cancelled := domain.ProjectStatusCancelled
	updated, err = env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{Status: &cancelled})
	require.NoError(t, err)
	assert.Equal(t, domain.ProjectStatusCancelled, updated.Status)

	// terminal states accept no further transitions
	_, err = env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{Status: &sent})
	assert.ErrorIs(t, err, ErrInvalidTransition)
}

func TestProjectAdvanceAndBalance(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	env.addRoomWithWindow(t, project.ID, domain.RoomTypeLivingRoom)

	advance := 5000.0
	updated, err := env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{
		AdvanceAmount: &advance,
	})
	require.NoError(t, err)

	// Standard window: 4915 + 180 + 1440 + 2400 + 4000 = 12935
	assert.InDelta(t, 12935.0, updated.TotalAmount, 1e-9)
	assert.InDelta(t, 7935.0, updated.BalanceAmount, 1e-9)
}

func TestProjectDeleteCascades(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)
	room, _ := env.addRoomWithWindow(t, project.ID, domain.RoomTypeBedroom)

	require.NoError(t, env.projects.Delete(env.ctx, project.ID))

	_, err := env.projects.GetByID(env.ctx, project.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	var roomCount, windowCount int64
	env.db.Model(&domain.Room{}).Where("id = ?", room.ID).Count(&roomCount)
	env.db.Model(&domain.Window{}).Where("project_id = ?", project.ID).Count(&windowCount)
	assert.Zero(t, roomCount)
	assert.Zero(t, windowCount)
}

func TestProjectListIsUserScoped(t *testing.T) {
	env := newTestEnv(t)
	env.createProject(t)
	otherCtx := env.secondUserCtx(t)

	mine, err := env.projects.List(env.ctx, 1, 20, repository.ProjectListFilter{}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), mine.Total)

	theirs, err := env.projects.List(otherCtx, 1, 20, repository.ProjectListFilter{}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(0), theirs.Total)
}

func TestProjectListFilterByStatus(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)

	sent := domain.ProjectStatusQuotationSent
	_, err := env.projects.Update(env.ctx, project.ID, &domain.UpdateProjectRequest{Status: &sent})
	require.NoError(t, err)

	drafts, err := env.projects.List(env.ctx, 1, 20, repository.ProjectListFilter{
		Status: domain.ProjectStatusDraft,
	}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(0), drafts.Total)

	sentList, err := env.projects.List(env.ctx, 1, 20, repository.ProjectListFilter{
		Status: domain.ProjectStatusQuotationSent,
	}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), sentList.Total)
}

// Searching joins the customers table, so the user scope has to be
// column-qualified for the query to run at all.
func TestProjectListSearchMatchesCustomerAndQuotationNumber(t *testing.T) {
	env := newTestEnv(t)
	project := env.createProject(t)

	byCustomer, err := env.projects.List(env.ctx, 1, 20, repository.ProjectListFilter{
		Search: "anand",
	}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), byCustomer.Total)

	byNumber, err := env.projects.List(env.ctx, 1, 20, repository.ProjectListFilter{
		Search: project.QuotationNumber,
	}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(1), byNumber.Total)

	miss, err := env.projects.List(env.ctx, 1, 20, repository.ProjectListFilter{
		Search: "nobody",
	}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(0), miss.Total)

	theirs, err := env.projects.List(env.secondUserCtx(t), 1, 20, repository.ProjectListFilter{
		Search: "anand",
	}, repository.DefaultSortConfig())
	require.NoError(t, err)
	assert.Equal(t, int64(0), theirs.Total)
}
