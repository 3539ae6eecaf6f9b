package repository

import (
	"context"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// MemoryAttendanceRepository is an in-memory AttendanceRepository. Its
// mutations are atomic under an internal mutex, mirroring the conditional
// writes of the Postgres implementation.
type MemoryAttendanceRepository struct {
	mu       sync.RWMutex
	nextID   int64
	sessions []*domain.AttendanceSession
}

// NewMemoryAttendanceRepository creates an empty repository.
func NewMemoryAttendanceRepository() *MemoryAttendanceRepository {
	return &MemoryAttendanceRepository{}
}

func (r *MemoryAttendanceRepository) CreateSession(_ context.Context, staffID int64, at time.Time) (*domain.AttendanceSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	session := &domain.AttendanceSession{
		ID:        r.nextID,
		StaffID:   staffID,
		CheckInAt: at,
	}
	r.sessions = append(r.sessions, session)

	copied := *session
	return &copied, nil
}

func (r *MemoryAttendanceRepository) CloseOpenSession(_ context.Context, staffID int64, at time.Time) (*domain.AttendanceSession, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, session := range r.sessions {
		if session.StaffID == staffID && session.CheckOutAt == nil {
			closedAt := at
			session.CheckOutAt = &closedAt
			copied := *session
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryAttendanceRepository) GetOpenSession(_ context.Context, staffID int64) (*domain.AttendanceSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if session.StaffID == staffID && session.CheckOutAt == nil {
			copied := *session
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryAttendanceRepository) GetLastSession(_ context.Context, staffID int64) (*domain.AttendanceSession, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var last *domain.AttendanceSession
	for _, session := range r.sessions {
		if session.StaffID != staffID {
			continue
		}
		if last == nil || session.CheckInAt.After(last.CheckInAt) ||
			(session.CheckInAt.Equal(last.CheckInAt) && session.ID > last.ID) {
			last = session
		}
	}
	if last == nil {
		return nil, pgx.ErrNoRows
	}
	copied := *last
	return &copied, nil
}

// CountSessions reports total and open session counts for a staff member.
func (r *MemoryAttendanceRepository) CountSessions(staffID int64) (total, open int) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, session := range r.sessions {
		if session.StaffID != staffID {
			continue
		}
		total++
		if session.CheckOutAt == nil {
			open++
		}
	}
	return total, open
}
