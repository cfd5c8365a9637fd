package http

import (
	"context"
	"encoding/json"
	"io"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"library-service/internal/application/command"
	"library-service/internal/application/interfaces"
	"library-service/internal/application/services"
	"library-service/internal/domain/entities"
	"library-service/internal/infrastructure"
	"library-service/internal/infrastructure/db/postgres"
)

type testServer struct {
	echo       *echo.Echo
	auth       interfaces.AuthService
	jwtService *infrastructure.JWTService
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()
	return newTestServerWithLimit(t, 1000, 1000)
}

func newTestServerWithLimit(t *testing.T, requestsPerSecond float64, burst int) *testServer {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	jwtService := infrastructure.NewJWTService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	revocations := infrastructure.NewMemoryRevocationStore()

	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	listRepo := postgres.NewBorrowingListRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	authService := services.NewAuthService(userRepo, jwtService, revocations)
	bookService := services.NewBookService(bookRepo, reviewRepo)
	listService := services.NewBorrowingListService(listRepo, bookRepo)
	transactionService := services.NewTransactionService(transactionRepo, userRepo, bookRepo, nil)

	handlers := Handlers{
		Auth:          NewAuthHandler(authService),
		Books:         NewBookHandler(bookService),
		BorrowingList: NewBorrowingListHandler(listService),
		Transactions:  NewTransactionHandler(transactionService),
	}

	router := NewRouter(handlers, jwtService, infrastructure.NewRateLimiter(requestsPerSecond, burst))
	// Request logging is noise in tests.
	router.Logger.SetOutput(io.Discard)

	return &testServer{
		echo:       router,
		auth:       authService,
		jwtService: jwtService,
	}
}

// userToken registers a fresh account and returns its id and a valid
// access token.
func (ts *testServer) userToken(t *testing.T, email string) (string, string) {
	t.Helper()

	registered, err := ts.auth.Register(context.Background(), &command.RegisterUserCommand{
		Name:     "Test User",
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)

	token, err := ts.jwtService.GenerateAccessToken(registered.Result.Id, entities.RoleUser)
	require.NoError(t, err)
	return registered.Result.Id.String(), token
}

func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	registered, err := ts.auth.Register(context.Background(), &command.RegisterUserCommand{
		Name:     "Admin",
		Email:    "admin@x.com",
		Password: "hunter22",
	})
	require.NoError(t, err)

	_, err = ts.auth.UpdateUser(context.Background(), registered.Result.Id,
		&command.UpdateUserCommand{Role: entities.RoleAdmin}, entities.RoleAdmin)
	require.NoError(t, err)

	token, err := ts.jwtService.GenerateAccessToken(registered.Result.Id, entities.RoleAdmin)
	require.NoError(t, err)
	return token
}

func (ts *testServer) do(t *testing.T, method, path, token, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	}
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}

	rec := httptest.NewRecorder()
	ts.echo.ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.NewDecoder(rec.Body).Decode(out))
}

func jsonOf(t *testing.T, v any) string {
	t.Helper()
	raw, err := json.Marshal(v)
	require.NoError(t, err)
	return string(raw)
}
