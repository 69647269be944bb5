package conversion

import (
	"context"
	"fmt"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"prospectcrm/internal/domain/auth"
	"prospectcrm/internal/domain/contact"
	"prospectcrm/internal/domain/notification"
	"prospectcrm/internal/domain/organization"
	"prospectcrm/internal/domain/prospect"
)

type stack struct {
	db            *gorm.DB
	prospects     *prospect.Repository
	orgs          *organization.Repository
	contacts      *contact.Repository
	users         *auth.Repository
	notifications *notification.Service
	wf            *Workflow
}

func setupStack(t *testing.T) *stack {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("sqlite tests require CGO")
	}

	dsn := fmt.Sprintf("file:conversion_test_%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&auth.User{},
		&prospect.Prospect{},
		&organization.Organization{},
		&contact.Contact{},
		&notification.Notification{},
	))

	s := &stack{
		db:        db,
		prospects: prospect.NewRepository(db),
		orgs:      organization.NewRepository(db),
		contacts:  contact.NewRepository(db),
		users:     auth.NewRepository(db),
	}
	s.notifications = notification.NewService(notification.NewRepository(db), nil, zap.NewNop())
	s.wf = NewWorkflow(s.prospects, s.orgs, s.contacts, s.users, s.notifications, zap.NewNop())
	return s
}

func (s *stack) count(t *testing.T, model any) int64 {
	t.Helper()
	var n int64
	require.NoError(t, s.db.Model(model).Count(&n).Error)
	return n
}

func (s *stack) notices(t *testing.T, userID string) []notification.Notification {
	t.Helper()
	list, _, _, err := s.notifications.List(context.Background(), userID, 100, 0)
	require.NoError(t, err)
	return list
}

func TestIntegration_ApproveHappyPath(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()

	p := &prospect.Prospect{
		CompanyName:  "Acme Co",
		ContactName:  str("Jane Doe"),
		ContactEmail: str("jane@acme.com"),
	}
	require.NoError(t, s.prospects.Create(ctx, p))

	res := s.wf.Approve(ctx, p.ID, actor)
	require.Equal(t, OutcomeSuccess, res.Outcome)

	org, err := s.orgs.GetByProspectID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme Co", org.Name)
	assert.Equal(t, "lead", org.Status)
	assert.Equal(t, res.OrganizationID, org.ID)

	contacts, err := s.contacts.ListByOrganization(ctx, org.ID)
	require.NoError(t, err)
	require.Len(t, contacts, 1)
	assert.Equal(t, "Jane", *contacts[0].FirstName)
	assert.Equal(t, "Doe", *contacts[0].LastName)
	assert.True(t, contacts[0].IsPrimary)

	got, err := s.prospects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusApproved, got.Status)

	notices := s.notices(t, actor.UserID)
	require.Len(t, notices, 1)
	assert.Equal(t, "/organizations/"+org.ID, notices[0].GetData().RedirectTo)
}

func TestIntegration_RejectCreatesNothing(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()

	p := &prospect.Prospect{CompanyName: "Globex", ContactName: str("Hank Scorpio"), ContactPhone: str("555")}
	require.NoError(t, s.prospects.Create(ctx, p))

	res := s.wf.Reject(ctx, p.ID, actor)
	require.Equal(t, OutcomeSuccess, res.Outcome)

	got, err := s.prospects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusRejected, got.Status)
	assert.Zero(t, s.count(t, &organization.Organization{}))
	assert.Zero(t, s.count(t, &contact.Contact{}))
	assert.Len(t, s.notices(t, actor.UserID), 1)
}

func TestIntegration_RejectUnknownProspect(t *testing.T) {
	s := setupStack(t)

	res := s.wf.Reject(context.Background(), "missing", actor)
	require.Equal(t, OutcomeFatal, res.Outcome)
	assert.ErrorIs(t, res.Err, prospect.ErrProspectNotFound)
}

// racingOrgStore lets a competing approval insert its organization between
// the existence check and this run's insert.
type racingOrgStore struct {
	*organization.Repository
	competitor func()
}

func (r *racingOrgStore) Create(ctx context.Context, o *organization.Organization) error {
	if r.competitor != nil {
		r.competitor()
		r.competitor = nil
	}
	return r.Repository.Create(ctx, o)
}

func TestIntegration_UniqueIndexFencesConcurrentApproval(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()

	p := &prospect.Prospect{CompanyName: "Initech"}
	require.NoError(t, s.prospects.Create(ctx, p))

	var winner organization.Organization
	orgs := &racingOrgStore{Repository: s.orgs}
	orgs.competitor = func() {
		winner = organization.Organization{ProspectID: &p.ID, Name: "Initech"}
		require.NoError(t, s.orgs.Create(ctx, &winner))
	}
	wf := NewWorkflow(s.prospects, orgs, s.contacts, s.users, s.notifications, zap.NewNop())

	res := wf.Approve(ctx, p.ID, actor)

	require.Equal(t, OutcomeAlreadyConverted, res.Outcome)
	assert.Equal(t, winner.ID, res.OrganizationID)
	assert.Equal(t, int64(1), s.count(t, &organization.Organization{}))
	assert.Len(t, s.notices(t, actor.UserID), 1)
}

// cancelingOrgStore cancels the caller's context as soon as the
// organization insert commits.
type cancelingOrgStore struct {
	*organization.Repository
	cancel context.CancelFunc
}

func (r *cancelingOrgStore) Create(ctx context.Context, o *organization.Organization) error {
	err := r.Repository.Create(ctx, o)
	r.cancel()
	return err
}

func TestIntegration_ApproveSurvivesCallerCancellation(t *testing.T) {
	s := setupStack(t)

	p := &prospect.Prospect{
		CompanyName:  "Hooli",
		ContactName:  str("Gavin Belson"),
		ContactEmail: str("gavin@hooli.example"),
	}
	require.NoError(t, s.prospects.Create(context.Background(), p))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()
	orgs := &cancelingOrgStore{Repository: s.orgs, cancel: cancel}
	wf := NewWorkflow(s.prospects, orgs, s.contacts, s.users, s.notifications, zap.NewNop())

	res := wf.Approve(ctx, p.ID, actor)

	require.Equal(t, OutcomeSuccess, res.Outcome, "warnings: %v", res.Warnings)
	require.Error(t, ctx.Err())
	assert.Equal(t, int64(1), s.count(t, &organization.Organization{}))
	assert.Equal(t, int64(1), s.count(t, &contact.Contact{}))

	got, err := s.prospects.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusApproved, got.Status)
	assert.Len(t, s.notices(t, actor.UserID), 1)
}

func TestIntegration_RejectIgnoresCanceledCaller(t *testing.T) {
	s := setupStack(t)

	p := &prospect.Prospect{CompanyName: "Pied Piper"}
	require.NoError(t, s.prospects.Create(context.Background(), p))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	res := s.wf.Reject(ctx, p.ID, actor)

	require.Equal(t, OutcomeSuccess, res.Outcome)
	got, err := s.prospects.GetByID(context.Background(), p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusRejected, got.Status)
	assert.Len(t, s.notices(t, actor.UserID), 1)
}

func TestIntegration_AssignCachesName(t *testing.T) {
	s := setupStack(t)
	ctx := context.Background()

	u := &auth.User{Email: "jane@crm.example", PasswordHash: "x", Name: "Jane Sales"}
	require.NoError(t, s.users.Create(ctx, u))

	p := &prospect.Prospect{CompanyName: "Acme"}
	require.NoError(t, s.prospects.Create(ctx, p))

	res := s.wf.Assign(ctx, p.ID, u.ID, actor)
	require.Equal(t, OutcomeSuccess, res.Outcome)

	got, err := s.prospects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, prospect.StatusInProgress, got.Status)
	assert.Equal(t, u.ID, *got.AssignedTo)
	assert.Equal(t, "Jane Sales", *got.AssignedToName)

	// a rename propagates to the cached name
	authSvc := auth.NewService(s.users, nil, s.prospects, zap.NewNop())
	_, err = authSvc.Rename(ctx, u.ID, "Jane Smith")
	require.NoError(t, err)

	got, err = s.prospects.GetByID(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Jane Smith", *got.AssignedToName)
}
