package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// failingSessionRepo returns the configured error from every operation.
type failingSessionRepo struct {
	err error
}

func (r failingSessionRepo) CreateSession(context.Context, int64, time.Time) (*domain.AttendanceSession, error) {
	return nil, r.err
}

func (r failingSessionRepo) CloseOpenSession(context.Context, int64, time.Time) (*domain.AttendanceSession, error) {
	return nil, r.err
}

func (r failingSessionRepo) GetOpenSession(context.Context, int64) (*domain.AttendanceSession, error) {
	return nil, r.err
}

func (r failingSessionRepo) GetLastSession(context.Context, int64) (*domain.AttendanceSession, error) {
	return nil, r.err
}

// failingStaffRepo returns the configured error from every operation.
type failingStaffRepo struct {
	err error
}

func (r failingStaffRepo) Create(context.Context, *domain.StaffMember) error { return r.err }
func (r failingStaffRepo) Update(context.Context, *domain.StaffMember) error { return r.err }

func (r failingStaffRepo) GetByID(context.Context, int64) (*domain.StaffMember, error) {
	return nil, r.err
}

func (r failingStaffRepo) GetByAlias(context.Context, string) (*domain.StaffMember, error) {
	return nil, r.err
}

func (r failingStaffRepo) GetByEmail(context.Context, string) (*domain.StaffMember, error) {
	return nil, r.err
}

func (r failingStaffRepo) List(context.Context, repository.StaffFilter) ([]domain.StaffMember, error) {
	return nil, r.err
}

// stalledSessionRepo blocks until the store context is cancelled, the way a
// hung connection does once the per-call deadline fires.
type stalledSessionRepo struct {
	failingSessionRepo
}

func (r stalledSessionRepo) CloseOpenSession(ctx context.Context, _ int64, _ time.Time) (*domain.AttendanceSession, error) {
	<-ctx.Done()
	return nil, ctx.Err()
}

func TestFailStoreClassification(t *testing.T) {
	timedOut := failStore[bool]("session", context.DeadlineExceeded)
	require.False(t, timedOut.IsSuccess())
	assert.Equal(t, result.KindStoreUnavailable, timedOut.Failure().Kind)
	assert.Equal(t, "session store timed out", timedOut.Failure().Message)

	cancelled := failStore[bool]("session", context.Canceled)
	assert.Equal(t, result.KindStoreUnavailable, cancelled.Failure().Kind)
	assert.Equal(t, "session store timed out", cancelled.Failure().Message)

	down := failStore[bool]("credential", errors.New("dial tcp 10.0.0.5:5432: connection refused"))
	assert.Equal(t, result.KindStoreUnavailable, down.Failure().Kind)
	assert.Equal(t, "credential store unavailable", down.Failure().Message)
}

func TestToggleStoreFailure(t *testing.T) {
	for name, repoErr := range map[string]error{
		"timeout":    context.DeadlineExceeded,
		"connection": errors.New("dial tcp: connection refused"),
	} {
		t.Run(name, func(t *testing.T) {
			svc := NewAttendanceService(time.Second, AttendanceDependencies{
				SessionRepo: failingSessionRepo{err: repoErr},
				StaffRepo:   repository.NewMemoryStaffRepository(),
			})

			res := svc.ToggleCheckIn(context.Background(), 1)
			require.False(t, res.IsSuccess())
			assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
		})
	}
}

func TestToggleStalledStoreReturnsWithinDeadline(t *testing.T) {
	svc := NewAttendanceService(25*time.Millisecond, AttendanceDependencies{
		SessionRepo: stalledSessionRepo{},
		StaffRepo:   repository.NewMemoryStaffRepository(),
	})

	start := time.Now()
	res := svc.ToggleCheckIn(context.Background(), 1)
	elapsed := time.Since(start)

	require.False(t, res.IsSuccess())
	assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
	assert.Equal(t, "session store timed out", res.Failure().Message)
	assert.Less(t, elapsed, time.Second, "toggle must return once the store deadline fires")
}

func TestGetLastSessionStoreFailure(t *testing.T) {
	repoErr := errors.New("connection reset by peer")

	t.Run("credential store down", func(t *testing.T) {
		svc := NewAttendanceService(time.Second, AttendanceDependencies{
			SessionRepo: repository.NewMemoryAttendanceRepository(),
			StaffRepo:   failingStaffRepo{err: repoErr},
		})

		res := svc.GetLastSession(context.Background(), 1)
		require.False(t, res.IsSuccess())
		assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
	})

	t.Run("session store down", func(t *testing.T) {
		staffRepo := repository.NewMemoryStaffRepository()
		staff := &domain.StaffMember{Name: "Jane", Email: "jane@example.com", Active: true}
		require.NoError(t, staffRepo.Create(context.Background(), staff))

		svc := NewAttendanceService(time.Second, AttendanceDependencies{
			SessionRepo: failingSessionRepo{err: repoErr},
			StaffRepo:   staffRepo,
		})

		res := svc.GetLastSession(context.Background(), staff.ID)
		require.False(t, res.IsSuccess())
		assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
	})
}

func TestLoginStoreFailure(t *testing.T) {
	repoErr := errors.New("dial tcp: connection refused")
	svc, err := NewAuthService(testConfig(), AuthDependencies{
		StaffRepo: failingStaffRepo{err: repoErr},
	})
	require.NoError(t, err)
	ctx := context.Background()

	t.Run("kiosk login", func(t *testing.T) {
		res := svc.LoginKiosk(ctx, "jdoe", "4321")
		require.False(t, res.IsSuccess())
		assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
		assert.Equal(t, "credential store unavailable", res.Failure().Message)
	})

	t.Run("admin login", func(t *testing.T) {
		res := svc.LoginAdmin(ctx, "admin@example.com", "s3cretpass")
		require.False(t, res.IsSuccess())
		assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
	})

	t.Run("change password", func(t *testing.T) {
		res := svc.ChangePassword(ctx, 1, "s3cretpass", "news3cret1")
		require.False(t, res.IsSuccess())
		assert.Equal(t, result.KindStoreUnavailable, res.Failure().Kind)
	})
}
