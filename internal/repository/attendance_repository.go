package repository

import (
	"context"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// AttendanceRepository persists attendance sessions. Sessions are append
// only: a session is created open and later closed, never deleted.
type AttendanceRepository interface {
	// CreateSession opens a new session for the staff member.
	CreateSession(ctx context.Context, staffID int64, at time.Time) (*domain.AttendanceSession, error)
	// CloseOpenSession closes the staff member's open session if one
	// exists. Returns pgx.ErrNoRows when there is nothing to close, so
	// callers can distinguish "nothing open" from a store failure.
	CloseOpenSession(ctx context.Context, staffID int64, at time.Time) (*domain.AttendanceSession, error)
	// GetOpenSession returns the currently open session, or pgx.ErrNoRows.
	GetOpenSession(ctx context.Context, staffID int64) (*domain.AttendanceSession, error)
	// GetLastSession returns the most recent session by check-in time,
	// open or closed, or pgx.ErrNoRows when the staff member has never
	// checked in.
	GetLastSession(ctx context.Context, staffID int64) (*domain.AttendanceSession, error)
}

type attendanceRepository struct {
	pool *pgxpool.Pool
}

// NewAttendanceRepository instantiates the Postgres-backed repository.
func NewAttendanceRepository(pool *pgxpool.Pool) AttendanceRepository {
	return &attendanceRepository{pool: pool}
}

func (r *attendanceRepository) CreateSession(ctx context.Context, staffID int64, at time.Time) (*domain.AttendanceSession, error) {
	const query = `
        INSERT INTO attendance_sessions (staff_id, check_in_at)
        VALUES ($1, $2)
        RETURNING id, staff_id, check_in_at, check_out_at`

	var session domain.AttendanceSession
	if err := r.pool.QueryRow(ctx, query, staffID, at).Scan(
		&session.ID,
		&session.StaffID,
		&session.CheckInAt,
		&session.CheckOutAt,
	); err != nil {
		return nil, err
	}
	return &session, nil
}

// The WHERE check_out_at IS NULL predicate makes the close a single atomic
// conditional write, so the one-open-session invariant holds even without
// the caller's per-staff lock.
func (r *attendanceRepository) CloseOpenSession(ctx context.Context, staffID int64, at time.Time) (*domain.AttendanceSession, error) {
	const query = `
        UPDATE attendance_sessions
        SET check_out_at=$2
        WHERE staff_id=$1 AND check_out_at IS NULL
        RETURNING id, staff_id, check_in_at, check_out_at`

	var session domain.AttendanceSession
	if err := r.pool.QueryRow(ctx, query, staffID, at).Scan(
		&session.ID,
		&session.StaffID,
		&session.CheckInAt,
		&session.CheckOutAt,
	); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *attendanceRepository) GetOpenSession(ctx context.Context, staffID int64) (*domain.AttendanceSession, error) {
	const query = `
        SELECT id, staff_id, check_in_at, check_out_at
        FROM attendance_sessions
        WHERE staff_id=$1 AND check_out_at IS NULL`

	var session domain.AttendanceSession
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(
		&session.ID,
		&session.StaffID,
		&session.CheckInAt,
		&session.CheckOutAt,
	); err != nil {
		return nil, err
	}
	return &session, nil
}

func (r *attendanceRepository) GetLastSession(ctx context.Context, staffID int64) (*domain.AttendanceSession, error) {
	const query = `
        SELECT id, staff_id, check_in_at, check_out_at
        FROM attendance_sessions
        WHERE staff_id=$1
        ORDER BY check_in_at DESC, id DESC
        LIMIT 1`

	var session domain.AttendanceSession
	if err := r.pool.QueryRow(ctx, query, staffID).Scan(
		&session.ID,
		&session.StaffID,
		&session.CheckInAt,
		&session.CheckOutAt,
	); err != nil {
		return nil, err
	}
	return &session, nil
}
