package auth

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prospectcrm/internal/pkg/jwt"
)

func setupTestRepo(t *testing.T) *Repository {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("sqlite tests require CGO")
	}

	dsn := fmt.Sprintf("file:auth_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&User{}))
	return NewRepository(db)
}

type mockRefresher struct {
	calls []string
	err   error
}

func (m *mockRefresher) RefreshAssigneeName(ctx context.Context, userID, name string) (int64, error) {
	m.calls = append(m.calls, userID+":"+name)
	if m.err != nil {
		return 0, m.err
	}
	return 3, nil
}

func newTestService(t *testing.T, refresher AssigneeRefresher) (*Service, *Repository) {
	t.Helper()
	repo := setupTestRepo(t)
	return NewService(repo, jwt.New("test-secret", time.Hour), refresher, zap.NewNop()), repo
}

func TestService_CreateUserAndLogin(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	u, err := svc.CreateUser(ctx, &CreateUserRequest{
		Email:    "  Jane@CRM.example ",
		Password: "correct-horse",
		Name:     "Jane Sales",
	})
	require.NoError(t, err)
	assert.Equal(t, "jane@crm.example", u.Email)
	assert.Equal(t, RoleSales, u.Role)
	assert.NotEqual(t, "correct-horse", u.PasswordHash)

	res, err := svc.Login(ctx, "JANE@crm.example", "correct-horse")
	require.NoError(t, err)
	assert.NotEmpty(t, res.Token)
	assert.Equal(t, u.ID, res.User.ID)

	_, err = svc.Login(ctx, "jane@crm.example", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	_, err = svc.Login(ctx, "nobody@crm.example", "x")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestService_CreateUser_DuplicateEmail(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	req := &CreateUserRequest{Email: "a@crm.example", Password: "password1", Name: "A"}
	_, err := svc.CreateUser(ctx, req)
	require.NoError(t, err)

	_, err = svc.CreateUser(ctx, req)
	assert.ErrorIs(t, err, ErrEmailAlreadyExists)
}

func TestService_RenameRefreshesAssignees(t *testing.T) {
	refresher := &mockRefresher{}
	svc, repo := newTestService(t, refresher)
	ctx := context.Background()

	u := &User{Email: "a@crm.example", PasswordHash: "x", Name: "Old"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := svc.Rename(ctx, u.ID, "  New Name ")
	require.NoError(t, err)
	assert.Equal(t, "New Name", got.Name)
	assert.Equal(t, []string{u.ID + ":New Name"}, refresher.calls)

	name, err := repo.DisplayName(ctx, u.ID)
	require.NoError(t, err)
	assert.Equal(t, "New Name", name)
}

func TestService_RenameSurvivesRefreshFailure(t *testing.T) {
	refresher := &mockRefresher{err: errors.New("prospects table locked")}
	svc, repo := newTestService(t, refresher)
	ctx := context.Background()

	u := &User{Email: "a@crm.example", PasswordHash: "x", Name: "Old"}
	require.NoError(t, repo.Create(ctx, u))

	got, err := svc.Rename(ctx, u.ID, "New")
	require.NoError(t, err)
	assert.Equal(t, "New", got.Name)
}

func TestService_RenameErrors(t *testing.T) {
	svc, _ := newTestService(t, nil)
	ctx := context.Background()

	_, err := svc.Rename(ctx, "missing", "Name")
	assert.ErrorIs(t, err, ErrUserNotFound)

	_, err = svc.Rename(ctx, "missing", "   ")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("secret123")
	require.NoError(t, err)
	assert.NoError(t, CheckPassword("secret123", hash))
	assert.Error(t, CheckPassword("secret124", hash))
}
