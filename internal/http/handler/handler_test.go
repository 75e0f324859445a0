package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/furnishhq/quotation-api/internal/auth"
	"github.com/furnishhq/quotation-api/internal/config"
	"github.com/furnishhq/quotation-api/internal/database"
	"github.com/furnishhq/quotation-api/internal/domain"
	"github.com/furnishhq/quotation-api/internal/http/handler"
	"github.com/furnishhq/quotation-api/internal/repository"
	"github.com/furnishhq/quotation-api/internal/service"
	"github.com/furnishhq/quotation-api/internal/storage"
)

// handlerEnv wires every handler against an in-memory sqlite database so
// endpoints can be exercised with httptest without a running server.
type handlerEnv struct {
	db   *gorm.DB
	ctx  context.Context
	user *domain.User

	authHandler     *handler.AuthHandler
	customerHandler *handler.CustomerHandler
	projectHandler  *handler.ProjectHandler
	roomHandler     *handler.RoomHandler
	windowHandler   *handler.WindowHandler

	customers    *service.CustomerService
	salesPersons *service.SalesPersonService
	projects     *service.ProjectService
	rooms        *service.RoomService
	windows      *service.WindowService
}

func newHandlerEnv(t *testing.T) *handlerEnv {
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
	projectRepo := repository.NewProjectRepository(db)
	roomRepo := repository.NewRoomRepository(db)
	windowRepo := repository.NewWindowRepository(db)

	configService := service.NewConfigurationService(repository.NewConfigurationRepository(db), store, logger)
	numberService := service.NewQuotationNumberService(repository.NewQuotationSequenceRepository(db), logger)
	quotationService := service.NewQuotationService(projectRepo, logger)

	customerService := service.NewCustomerService(customerRepo, logger)
	salesPersonService := service.NewSalesPersonService(salesPersonRepo, logger)
	projectService := service.NewProjectService(
		projectRepo, customerRepo, salesPersonRepo, tailorRepo,
		configService, numberService, quotationService, logger,
	)
	roomService := service.NewRoomService(roomRepo, projectRepo, logger)
	windowService := service.NewWindowService(windowRepo, roomRepo, projectRepo, logger)
	exportService := service.NewExportService(quotationService, configService, store, logger)

	tokens, err := auth.NewTokenManager(&config.AuthConfig{
		JWTSecret:     "test-secret",
		TokenTTLHours: 1,
		Issuer:        "quotation-api-test",
	})
	require.NoError(t, err)
	authService := service.NewAuthService(repository.NewUserRepository(db), tokens, logger)

	return &handlerEnv{
		db:   db,
		ctx:  ctx,
		user: user,

		authHandler:     handler.NewAuthHandler(authService, logger),
		customerHandler: handler.NewCustomerHandler(customerService, logger),
		projectHandler:  handler.NewProjectHandler(projectService, quotationService, exportService, logger),
		roomHandler:     handler.NewRoomHandler(roomService, logger),
		windowHandler:   handler.NewWindowHandler(windowService, logger),

		customers:    customerService,
		salesPersons: salesPersonService,
		projects:     projectService,
		rooms:        roomService,
		windows:      windowService,
	}
}

// newRequest builds an authenticated JSON request with optional chi URL params.
func (e *handlerEnv) newRequest(t *testing.T, method, target string, body interface{}, params ...string) *http.Request {
	t.Helper()

	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(data)
	}

	req := httptest.NewRequest(method, target, reader)
	req.Header.Set("Content-Type", "application/json")
	req = req.WithContext(e.ctx)

	if len(params) > 0 {
		require.Zero(t, len(params)%2, "params must be key/value pairs")
		rctx := chi.NewRouteContext()
		for i := 0; i < len(params); i += 2 {
			rctx.URLParams.Add(params[i], params[i+1])
		}
		req = req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
	}
	return req
}

func decodeJSON[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.NewDecoder(w.Body).Decode(&out))
	return out
}

func (e *handlerEnv) createSalesPerson(t *testing.T) *domain.SalesPersonDTO {
	t.Helper()
	sp, err := e.salesPersons.Create(e.ctx, &domain.CreateSalesPersonRequest{
		Name:          "Ravi",
		ContactNumber: "9000000001",
	})
	require.NoError(t, err)
	return sp
}

func (e *handlerEnv) createProject(t *testing.T) *domain.ProjectDTO {
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

func (e *handlerEnv) addRoomWithWindow(t *testing.T, projectID uuid.UUID) (*domain.RoomDTO, *domain.WindowDTO) {
	t.Helper()
	room, err := e.rooms.Create(e.ctx, &domain.CreateRoomRequest{
		ProjectID: projectID,
		RoomType:  domain.RoomTypeLivingRoom,
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
