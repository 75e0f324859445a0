package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/database"
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/repository"
	"github.com/furnishhq/quotation-api/internal/storage"
)

// testEnv wires the full service stack against an in-memory sqlite database
type testEnv struct {
	db            *gorm.DB
	user          *domain.User
	ctx           context.Context
	customers     *CustomerService
	salesPersons  *SalesPersonService
	tailors       *TailorService
	configuration *ConfigurationService
	numbers       *QuotationNumberService
	projects      *ProjectService
	rooms         *RoomService
	windows       *WindowService
	quotations    *QuotationService
	export        *ExportService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open("file:"+t.Name()+"?mode=memory&cache=shared"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, database.AutoMigrate(db))

	logger := zap.NewNop()

	user := &domain.User{
		Name:         "Meena Textiles",
		Email:        "meena@example.com",
		PasswordHash: "x",
		Role:         domain.RoleOwner,
	}
	require.NoError(t, db.Create(user).Error)

	ctx := auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID: user.ID,
		Name:   user.Name,
		Email:  user.Email,
		Role:   user.Role,
	})

	store, err := storage.NewLocalStorage(t.TempDir())
	require.NoError(t, err)

	customerRepo := repository.NewCustomerRepository(db)
	salesPersonRepo := repository.NewSalesPersonRepository(db)
	tailorRepo := repository.NewTailorRepository(db)
	configRepo := repository.NewConfigurationRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	windowRepo := repository.NewWindowRepository(db)
	seqRepo := repository.NewQuotationSequenceRepository(db)

	configService := NewConfigurationService(configRepo, store, logger)
	numberService := NewQuotationNumberService(seqRepo, logger)
	quotationService := NewQuotationService(projectRepo, logger)

	return &testEnv{
		db:            db,
		user:          user,
		ctx:           ctx,
		customers:     NewCustomerService(customerRepo, logger),
		salesPersons:  NewSalesPersonService(salesPersonRepo, logger),
		tailors:       NewTailorService(tailorRepo, logger),
		configuration: configService,
		numbers:       numberService,
		quotations:    quotationService,
		projects: NewProjectService(
			projectRepo, customerRepo, salesPersonRepo, tailorRepo,
			configService, numberService, quotationService, logger,
		),
		rooms:   NewRoomService(roomRepo, projectRepo, logger),
		windows: NewWindowService(windowRepo, roomRepo, projectRepo, logger),
		export:  NewExportService(quotationService, configService, store, logger),
	}
}

// secondUserCtx creates another account to verify cross-user isolation
func (e *testEnv) secondUserCtx(t *testing.T) context.Context {
	t.Helper()
	other := &domain.User{
		Name:         "Other Shop",
		Email:        "other@example.com",
		PasswordHash: "x",
		Role:         domain.RoleOwner,
	}
	require.NoError(t, e.db.Create(other).Error)
	return auth.WithUserContext(context.Background(), &auth.UserContext{
		UserID: other.ID,
		Name:   other.Name,
		Email:  other.Email,
		Role:   other.Role,
	})
}

func (e *testEnv) createSalesPerson(t *testing.T) *domain.SalesPersonDTO {
	t.Helper()
	sp, err := e.salesPersons.Create(e.ctx, &domain.CreateSalesPersonRequest{
		Name:          "Ravi",
		ContactNumber: "9000000001",
	})
	require.NoError(t, err)
	return sp
}

func (e *testEnv) createProject(t *testing.T) *domain.ProjectDTO {
	t.Helper()
	sp := e.createSalesPerson(t)
	project, err := e.projects.Create(e.ctx, &domain.CreateProjectRequest{
		Customer: domain.ProjectCustomerRef{
			Name:          "Anand",
			ContactNumber: "9888877665",
			Address:       "12 MG Road",
		},
		ProjectType:   domain.ProjectType2BHK,
		SalesPersonID: sp.ID,
	})
	require.NoError(t, err)
	return project
}

func (e *testEnv) addRoomWithWindow(t *testing.T, projectID uuid.UUID, roomType domain.RoomType) (*domain.RoomDTO, *domain.WindowDTO) {
	t.Helper()
	room, err := e.rooms.Create(e.ctx, &domain.CreateRoomRequest{
		ProjectID: projectID,
		RoomType:  roomType,
	})
	require.NoError(t, err)

	window, err := e.windows.Create(e.ctx, &domain.CreateWindowRequest{
		RoomID:             room.ID,
		Style:              "Pleated",
		Width:              146,
		Height:             90,
		FabricCostPerMeter: 500,
		HookCount:          20,
	})
	require.NoError(t, err)
	return room, window
}

func mustUserID(t *testing.T, _ *testEnv, ctx context.Context) uuid.UUID {
	t.Helper()
	userCtx, ok := auth.FromContext(ctx)
	require.True(t, ok)
	return userCtx.UserID
}
