package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/domain"
)

func seedStaffList(t *testing.T, repo *MemoryStaffRepository, count int) []int64 {
	t.Helper()
	ids := make([]int64, 0, count)
	for i := 0; i < count; i++ {
		staff := &domain.StaffMember{
			Name:   "Staff Member",
			Email:  "staff@example.com",
			Roles:  []domain.StaffRole{domain.StaffRoleEmployee},
			Active: true,
		}
		require.NoError(t, repo.Create(context.Background(), staff))
		ids = append(ids, staff.ID)
	}
	return ids
}

func TestMemoryListNewestFirst(t *testing.T) {
	repo := NewMemoryStaffRepository()
	ids := seedStaffList(t, repo, 3)

	listed, err := repo.List(context.Background(), StaffFilter{})
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, ids[2], listed[0].ID)
	assert.Equal(t, ids[1], listed[1].ID)
	assert.Equal(t, ids[0], listed[2].ID)
}

func TestMemoryListPaging(t *testing.T) {
	repo := NewMemoryStaffRepository()
	ids := seedStaffList(t, repo, 5)
	ctx := context.Background()

	page, err := repo.List(ctx, StaffFilter{Limit: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[4], page[0].ID)
	assert.Equal(t, ids[3], page[1].ID)

	page, err = repo.List(ctx, StaffFilter{Limit: 2, Offset: 2})
	require.NoError(t, err)
	require.Len(t, page, 2)
	assert.Equal(t, ids[2], page[0].ID)
	assert.Equal(t, ids[1], page[1].ID)

	page, err = repo.List(ctx, StaffFilter{Limit: 2, Offset: 10})
	require.NoError(t, err)
	assert.Empty(t, page, "offset past the end yields an empty page")
}

func TestMemoryListFilters(t *testing.T) {
	repo := NewMemoryStaffRepository()
	ctx := context.Background()

	admin := &domain.StaffMember{
		Name:   "Admin",
		Email:  "admin@example.com",
		Roles:  []domain.StaffRole{domain.StaffRoleAdmin},
		Active: true,
	}
	require.NoError(t, repo.Create(ctx, admin))
	inactive := &domain.StaffMember{
		Name:  "Former",
		Email: "former@example.com",
		Roles: []domain.StaffRole{domain.StaffRoleEmployee},
	}
	require.NoError(t, repo.Create(ctx, inactive))

	adminRole := domain.StaffRoleAdmin
	listed, err := repo.List(ctx, StaffFilter{Role: &adminRole})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, admin.ID, listed[0].ID)

	active := true
	listed, err = repo.List(ctx, StaffFilter{Active: &active})
	require.NoError(t, err)
	require.Len(t, listed, 1)
	assert.Equal(t, admin.ID, listed[0].ID)
}
