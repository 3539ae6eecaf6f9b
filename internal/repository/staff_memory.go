package repository

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/jackc/pgx/v5"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// MemoryStaffRepository is an in-memory StaffRepository used by unit tests
// and local runs without Postgres. It returns pgx.ErrNoRows for absent rows
// so callers behave identically against either implementation.
type MemoryStaffRepository struct {
	mu     sync.RWMutex
	nextID int64
	staff  map[int64]*domain.StaffMember
}

// NewMemoryStaffRepository creates an empty repository.
func NewMemoryStaffRepository() *MemoryStaffRepository {
	return &MemoryStaffRepository{staff: make(map[int64]*domain.StaffMember)}
}

func (r *MemoryStaffRepository) Create(_ context.Context, staff *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	now := time.Now()
	staff.ID = r.nextID
	staff.CreatedAt = now
	staff.UpdatedAt = now

	copied := *staff
	r.staff[staff.ID] = &copied
	return nil
}

func (r *MemoryStaffRepository) Update(_ context.Context, staff *domain.StaffMember) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.staff[staff.ID]; !ok {
		return pgx.ErrNoRows
	}
	staff.UpdatedAt = time.Now()
	copied := *staff
	r.staff[staff.ID] = &copied
	return nil
}

func (r *MemoryStaffRepository) GetByID(_ context.Context, id int64) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	staff, ok := r.staff[id]
	if !ok {
		return nil, pgx.ErrNoRows
	}
	copied := *staff
	return &copied, nil
}

func (r *MemoryStaffRepository) GetByAlias(_ context.Context, alias string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, staff := range r.staff {
		if staff.Alias != nil && *staff.Alias == alias {
			copied := *staff
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryStaffRepository) GetByEmail(_ context.Context, email string) (*domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, staff := range r.staff {
		if staff.Email == email {
			copied := *staff
			return &copied, nil
		}
	}
	return nil, pgx.ErrNoRows
}

func (r *MemoryStaffRepository) List(_ context.Context, filter StaffFilter) ([]domain.StaffMember, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	var result []domain.StaffMember
	for _, staff := range r.staff {
		if filter.Role != nil && !staff.HasRole(*filter.Role) {
			continue
		}
		if filter.Active != nil && staff.Active != *filter.Active {
			continue
		}
		result = append(result, *staff)
	}

	// Same ordering and paging as the Postgres implementation.
	sort.Slice(result, func(i, j int) bool {
		if !result[i].CreatedAt.Equal(result[j].CreatedAt) {
			return result[i].CreatedAt.After(result[j].CreatedAt)
		}
		return result[i].ID > result[j].ID
	})

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if len(result) > limit {
		result = result[:limit]
	}
	return result, nil
}
