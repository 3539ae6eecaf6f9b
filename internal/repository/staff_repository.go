package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/spec-kit/attendance-service/internal/domain"
)

// StaffRepository handles persistence for staff members and their
// credential material.
type StaffRepository interface {
	Create(ctx context.Context, staff *domain.StaffMember) error
	Update(ctx context.Context, staff *domain.StaffMember) error
	GetByID(ctx context.Context, id int64) (*domain.StaffMember, error)
	GetByAlias(ctx context.Context, alias string) (*domain.StaffMember, error)
	GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error)
	List(ctx context.Context, filter StaffFilter) ([]domain.StaffMember, error)
}

// StaffFilter defines query params for staff listing.
type StaffFilter struct {
	Role   *domain.StaffRole
	Active *bool
	Limit  int
	Offset int
}

type staffRepository struct {
	pool *pgxpool.Pool
}

// NewStaffRepository instantiates the Postgres-backed repository.
func NewStaffRepository(pool *pgxpool.Pool) StaffRepository {
	return &staffRepository{pool: pool}
}

const staffColumns = "id, name, email, alias, pin_hash, password_hash, roles, active_flag, created_at, updated_at"

func scanStaff(row pgx.Row) (*domain.StaffMember, error) {
	var staff domain.StaffMember
	var roles []string
	if err := row.Scan(
		&staff.ID,
		&staff.Name,
		&staff.Email,
		&staff.Alias,
		&staff.PinHash,
		&staff.PasswordHash,
		&roles,
		&staff.Active,
		&staff.CreatedAt,
		&staff.UpdatedAt,
	); err != nil {
		return nil, err
	}
	staff.Roles = toRoles(roles)
	return &staff, nil
}

func toRoles(values []string) []domain.StaffRole {
	out := make([]domain.StaffRole, 0, len(values))
	for _, v := range values {
		out = append(out, domain.StaffRole(v))
	}
	return out
}

func fromRoles(roles []domain.StaffRole) []string {
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		out = append(out, string(r))
	}
	return out
}

func (r *staffRepository) Create(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        INSERT INTO staff_members (name, email, alias, pin_hash, password_hash, roles, active_flag)
        VALUES ($1,$2,$3,$4,$5,$6,$7)
        RETURNING id, created_at, updated_at`

	return r.pool.QueryRow(ctx, query,
		staff.Name,
		staff.Email,
		staff.Alias,
		staff.PinHash,
		staff.PasswordHash,
		fromRoles(staff.Roles),
		staff.Active,
	).Scan(&staff.ID, &staff.CreatedAt, &staff.UpdatedAt)
}

func (r *staffRepository) Update(ctx context.Context, staff *domain.StaffMember) error {
	const query = `
        UPDATE staff_members
        SET name=$1, email=$2, alias=$3, pin_hash=$4, password_hash=$5, roles=$6, active_flag=$7, updated_at=NOW()
        WHERE id=$8`

	cmd, err := r.pool.Exec(ctx, query,
		staff.Name,
		staff.Email,
		staff.Alias,
		staff.PinHash,
		staff.PasswordHash,
		fromRoles(staff.Roles),
		staff.Active,
		staff.ID,
	)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return pgx.ErrNoRows
	}
	return nil
}

func (r *staffRepository) GetByID(ctx context.Context, id int64) (*domain.StaffMember, error) {
	query := fmt.Sprintf("SELECT %s FROM staff_members WHERE id=$1", staffColumns)
	return scanStaff(r.pool.QueryRow(ctx, query, id))
}

func (r *staffRepository) GetByAlias(ctx context.Context, alias string) (*domain.StaffMember, error) {
	query := fmt.Sprintf("SELECT %s FROM staff_members WHERE alias=$1", staffColumns)
	return scanStaff(r.pool.QueryRow(ctx, query, alias))
}

func (r *staffRepository) GetByEmail(ctx context.Context, email string) (*domain.StaffMember, error) {
	query := fmt.Sprintf("SELECT %s FROM staff_members WHERE email=$1", staffColumns)
	return scanStaff(r.pool.QueryRow(ctx, query, email))
}

func (r *staffRepository) List(ctx context.Context, filter StaffFilter) ([]domain.StaffMember, error) {
	query := fmt.Sprintf("SELECT %s FROM staff_members", staffColumns)
	args := []any{}
	clauses := []string{}

	if filter.Role != nil {
		args = append(args, string(*filter.Role))
		clauses = append(clauses, fmt.Sprintf("$%d = ANY(roles)", len(args)))
	}
	if filter.Active != nil {
		args = append(args, *filter.Active)
		clauses = append(clauses, fmt.Sprintf("active_flag=$%d", len(args)))
	}
	if len(clauses) > 0 {
		query += " WHERE " + strings.Join(clauses, " AND ")
	}

	query += " ORDER BY created_at DESC"
	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	offset := filter.Offset
	if offset < 0 {
		offset = 0
	}
	query += fmt.Sprintf(" LIMIT %d OFFSET %d", limit, offset)

	rows, err := r.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.StaffMember
	for rows.Next() {
		staff, err := scanStaff(rows)
		if err != nil {
			return nil, err
		}
		result = append(result, *staff)
	}
	return result, rows.Err()
}
