package services

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"library-service/internal/application/command"
	"library-service/internal/application/common"
	"library-service/internal/application/events"
	"library-service/internal/application/interfaces"
	"library-service/internal/infrastructure"
	"library-service/internal/infrastructure/db/postgres"
)

type sentMail struct {
	To      string
	Subject string
	Body    string
}

// fakeMailer records what the dispatcher delivers so tests can assert
// on notifications without a provider.
type fakeMailer struct {
	mu   sync.Mutex
	sent []sentMail
}

func (m *fakeMailer) Send(_ context.Context, to, subject, body string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, sentMail{To: to, Subject: subject, Body: body})
	return nil
}

func (m *fakeMailer) snapshot() []sentMail {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]sentMail(nil), m.sent...)
}

// waitForCount polls until the mailer has delivered n messages; the
// dispatcher hands them off asynchronously.
func (m *fakeMailer) waitForCount(t *testing.T, n int) []sentMail {
	t.Helper()

	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if sent := m.snapshot(); len(sent) >= n {
			return sent
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("expected %d mails, got %d", n, len(m.snapshot()))
	return nil
}

type testEnv struct {
	db           *gorm.DB
	mailer       *fakeMailer
	jwtService   *infrastructure.JWTService
	revocations  *infrastructure.MemoryRevocationStore
	auth         interfaces.AuthService
	books        interfaces.BookService
	lists        interfaces.BorrowingListService
	transactions interfaces.TransactionService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	dsn := filepath.Join(t.TempDir(), "test.db")
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, postgres.Migrate(db))

	mailer := &fakeMailer{}
	dispatcher := events.NewDispatcher(mailer, nil)
	t.Cleanup(dispatcher.Close)

	jwtService := infrastructure.NewJWTService("access-secret", "refresh-secret", time.Hour, 7*24*time.Hour)
	revocations := infrastructure.NewMemoryRevocationStore()

	userRepo := postgres.NewUserRepository(db)
	bookRepo := postgres.NewBookRepository(db)
	listRepo := postgres.NewBorrowingListRepository(db)
	transactionRepo := postgres.NewTransactionRepository(db)
	reviewRepo := postgres.NewReviewRepository(db)

	return &testEnv{
		db:           db,
		mailer:       mailer,
		jwtService:   jwtService,
		revocations:  revocations,
		auth:         NewAuthService(userRepo, jwtService, revocations),
		books:        NewBookService(bookRepo, reviewRepo),
		lists:        NewBorrowingListService(listRepo, bookRepo),
		transactions: NewTransactionService(transactionRepo, userRepo, bookRepo, dispatcher),
	}
}

func (env *testEnv) registerUser(t *testing.T, name, email string) *common.UserResult {
	t.Helper()

	registered, err := env.auth.Register(context.Background(), &command.RegisterUserCommand{
		Name:     name,
		Email:    email,
		Password: "hunter22",
	})
	require.NoError(t, err)
	return registered.Result
}

func (env *testEnv) saveBook(t *testing.T, isbn, title string) *common.BookResult {
	t.Helper()

	saved, err := env.books.SaveBook(context.Background(), &command.SaveBookCommand{
		ISBN:            isbn,
		Title:           title,
		Author:          "Homer",
		Genre:           "Epic",
		PublicationYear: 1998,
	})
	require.NoError(t, err)
	return saved.Result
}
