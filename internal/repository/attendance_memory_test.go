package repository

import (
	"context"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCloseOpenSessionIsConditional(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	ctx := context.Background()

	_, err := repo.CloseOpenSession(ctx, 1, time.Now())
	assert.ErrorIs(t, err, pgx.ErrNoRows, "nothing to close")

	created, err := repo.CreateSession(ctx, 1, time.Now())
	require.NoError(t, err)

	closed, err := repo.CloseOpenSession(ctx, 1, time.Now())
	require.NoError(t, err)
	assert.Equal(t, created.ID, closed.ID)
	assert.NotNil(t, closed.CheckOutAt)

	_, err = repo.CloseOpenSession(ctx, 1, time.Now())
	assert.ErrorIs(t, err, pgx.ErrNoRows, "already closed")
}

func TestGetOpenSessionScopedToStaff(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	ctx := context.Background()

	_, err := repo.CreateSession(ctx, 1, time.Now())
	require.NoError(t, err)

	_, err = repo.GetOpenSession(ctx, 2)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	open, err := repo.GetOpenSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), open.StaffID)
}

func TestGetLastSessionOrdersByCheckIn(t *testing.T) {
	repo := NewMemoryAttendanceRepository()
	ctx := context.Background()

	_, err := repo.GetLastSession(ctx, 1)
	assert.ErrorIs(t, err, pgx.ErrNoRows)

	t1 := time.Date(2024, 3, 1, 9, 0, 0, 0, time.UTC)
	t2 := t1.Add(24 * time.Hour)

	_, err = repo.CreateSession(ctx, 1, t1)
	require.NoError(t, err)
	_, err = repo.CloseOpenSession(ctx, 1, t1.Add(time.Hour))
	require.NoError(t, err)

	second, err := repo.CreateSession(ctx, 1, t2)
	require.NoError(t, err)

	last, err := repo.GetLastSession(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, second.ID, last.ID)
	assert.True(t, last.Open())
}
