package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/pkg/result"
)

func strptr(s string) *string { return &s }

func newStaffFixture(t *testing.T) (*StaffService, *repository.MemoryStaffRepository) {
	t.Helper()
	repo := repository.NewMemoryStaffRepository()
	return NewStaffService(testConfig(), repo, nil), repo
}

func TestCreateStaffKiosk(t *testing.T) {
	svc, repo := newStaffFixture(t)
	ctx := context.Background()

	res := svc.CreateStaff(ctx, CreateStaffInput{
		Name:  "Jane Doe",
		Email: "jane@example.com",
		Alias: strptr("jdoe"),
		PIN:   strptr("4321"),
	})
	require.True(t, res.IsSuccess())

	created := res.Value()
	assert.NotZero(t, created.ID)
	assert.True(t, created.Active)
	assert.Equal(t, []domain.StaffRole{domain.StaffRoleEmployee}, created.Roles)

	stored, err := repo.GetByAlias(ctx, "jdoe")
	require.NoError(t, err)
	require.NotNil(t, stored.PinHash)
	assert.NoError(t, auth.ComparePassword(*stored.PinHash, "4321"))
	assert.Nil(t, stored.PasswordHash)
}

func TestCreateStaffAdmin(t *testing.T) {
	svc, repo := newStaffFixture(t)
	ctx := context.Background()

	res := svc.CreateStaff(ctx, CreateStaffInput{
		Name:     "Admin",
		Email:    "admin@example.com",
		Password: strptr("adminpw1"),
		Roles:    []domain.StaffRole{domain.StaffRoleAdmin},
	})
	require.True(t, res.IsSuccess())

	stored, err := repo.GetByEmail(ctx, "admin@example.com")
	require.NoError(t, err)
	require.NotNil(t, stored.PasswordHash)
	assert.NoError(t, auth.ComparePassword(*stored.PasswordHash, "adminpw1"))
	assert.True(t, stored.HasRole(domain.StaffRoleAdmin))
}

func TestCreateStaffValidation(t *testing.T) {
	svc, _ := newStaffFixture(t)
	ctx := context.Background()

	cases := []struct {
		name  string
		input CreateStaffInput
	}{
		{"missing name and email", CreateStaffInput{}},
		{"no credential at all", CreateStaffInput{Name: "X", Email: "x@example.com"}},
		{"alias without pin", CreateStaffInput{Name: "X", Email: "x@example.com", Alias: strptr("x")}},
		{"bad pin", CreateStaffInput{Name: "X", Email: "x@example.com", Alias: strptr("x"), PIN: strptr("12")}},
		{"weak password", CreateStaffInput{Name: "X", Email: "x@example.com", Password: strptr("short")}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res := svc.CreateStaff(ctx, tc.input)
			require.False(t, res.IsSuccess())
			assert.Equal(t, result.KindValidation, res.Failure().Kind)
		})
	}
}

func TestCreateStaffRejectsDuplicates(t *testing.T) {
	svc, _ := newStaffFixture(t)
	ctx := context.Background()

	first := svc.CreateStaff(ctx, CreateStaffInput{
		Name:  "Jane",
		Email: "jane@example.com",
		Alias: strptr("jdoe"),
		PIN:   strptr("4321"),
	})
	require.True(t, first.IsSuccess())

	dupeEmail := svc.CreateStaff(ctx, CreateStaffInput{
		Name:  "Other",
		Email: "jane@example.com",
		Alias: strptr("other"),
		PIN:   strptr("4321"),
	})
	require.False(t, dupeEmail.IsSuccess())
	assert.Equal(t, result.KindValidation, dupeEmail.Failure().Kind)

	dupeAlias := svc.CreateStaff(ctx, CreateStaffInput{
		Name:  "Other",
		Email: "other@example.com",
		Alias: strptr("jdoe"),
		PIN:   strptr("4321"),
	})
	require.False(t, dupeAlias.IsSuccess())
	assert.Equal(t, result.KindValidation, dupeAlias.Failure().Kind)
}

func TestSetActive(t *testing.T) {
	svc, repo := newStaffFixture(t)
	ctx := context.Background()

	created := svc.CreateStaff(ctx, CreateStaffInput{
		Name:  "Jane",
		Email: "jane@example.com",
		Alias: strptr("jdoe"),
		PIN:   strptr("4321"),
	})
	require.True(t, created.IsSuccess())
	id := created.Value().ID

	res := svc.SetActive(ctx, id, false)
	require.True(t, res.IsSuccess())

	stored, err := repo.GetByID(ctx, id)
	require.NoError(t, err)
	assert.False(t, stored.Active)

	missing := svc.SetActive(ctx, 999, false)
	require.False(t, missing.IsSuccess())
	assert.Equal(t, result.KindNotFound, missing.Failure().Kind)
}
