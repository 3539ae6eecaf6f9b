package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// AttendanceService enforces the check-in/check-out state machine. Toggles
// for the same staff member serialize on a per-staff lock held across the
// read-then-write; toggles for different staff proceed independently.
type AttendanceService struct {
	sessions     repository.AttendanceRepository
	staff        repository.StaffRepository
	locks        *keyedLock
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	storeTimeout time.Duration
	now          func() time.Time
}

// AttendanceDependencies encapsulates collaborators for the service.
type AttendanceDependencies struct {
	SessionRepo repository.AttendanceRepository
	StaffRepo   repository.StaffRepository
	Dispatcher  events.Dispatcher
	Logger      *zap.Logger
}

// NewAttendanceService builds the service.
func NewAttendanceService(storeTimeout time.Duration, deps AttendanceDependencies) *AttendanceService {
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	if storeTimeout <= 0 {
		storeTimeout = 5 * time.Second
	}
	return &AttendanceService{
		sessions:     deps.SessionRepo,
		staff:        deps.StaffRepo,
		locks:        newKeyedLock(),
		dispatcher:   deps.Dispatcher,
		logger:       logger,
		storeTimeout: storeTimeout,
		now:          time.Now,
	}
}

// ToggleCheckIn flips the staff member's attendance state. With no open
// session it checks in and returns true; with an open session it closes it
// and returns false. The caller never chooses a direction: the engine
// infers it from current state. Two clients toggling concurrently cannot
// express distinct check-in vs check-out intent; that ambiguity comes with
// the toggle contract and is deliberate.
func (s *AttendanceService) ToggleCheckIn(ctx context.Context, staffID int64) result.Result[bool] {
	unlock := s.locks.Lock(staffID)
	defer unlock()

	now := s.now()

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	closed, err := s.sessions.CloseOpenSession(sctx, staffID, now)
	if err == nil {
		s.publish(ctx, events.EventStaffCheckedOut, staffID, events.CheckedOutPayload{
			SessionID:  closed.ID,
			CheckInAt:  closed.CheckInAt,
			CheckOutAt: now,
		})
		return result.OK(false)
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return failStore[bool]("session", err)
	}

	created, err := s.sessions.CreateSession(sctx, staffID, now)
	if err != nil {
		return failStore[bool]("session", err)
	}

	s.publish(ctx, events.EventStaffCheckedIn, staffID, events.CheckedInPayload{
		SessionID: created.ID,
		CheckInAt: created.CheckInAt,
	})
	return result.OK(true)
}

// GetLastSession returns the most recent session by check-in time, open or
// closed. A staff member who has never checked in yields a successful nil
// value; an unknown staff member yields NotFound. Read-only.
func (s *AttendanceService) GetLastSession(ctx context.Context, staffID int64) result.Result[*domain.AttendanceSession] {
	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.staff.GetByID(sctx, staffID); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[*domain.AttendanceSession](result.KindNotFound, "staff member not found")
		}
		return failStore[*domain.AttendanceSession]("credential", err)
	}

	session, err := s.sessions.GetLastSession(sctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.OK[*domain.AttendanceSession](nil)
		}
		return failStore[*domain.AttendanceSession]("session", err)
	}
	return result.OK(session)
}

func (s *AttendanceService) publish(ctx context.Context, eventType events.EventType, staffID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		StaffID:   staffID,
		Timestamp: s.now(),
		Payload:   payload,
	})
	if err != nil {
		s.logger.Warn("publish attendance event",
			zap.String("event", string(eventType)),
			zap.Int64("staff_id", staffID),
			zap.Error(err))
	}
}
