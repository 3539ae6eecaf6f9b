package service

import (
	"context"
	"errors"
	"time"

	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// StaffService handles administrative staff management: creating kiosk and
// console accounts and toggling their active flag.
type StaffService struct {
	staff        repository.StaffRepository
	logger       *zap.Logger
	bcryptCost   int
	minPassword  int
	storeTimeout time.Duration
}

// NewStaffService builds the service.
func NewStaffService(cfg config.Config, staffRepo repository.StaffRepository, logger *zap.Logger) *StaffService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &StaffService{
		staff:        staffRepo,
		logger:       logger,
		bcryptCost:   cfg.Auth.BcryptCost,
		minPassword:  cfg.Auth.MinPasswordLength,
		storeTimeout: cfg.App.StoreTimeout(),
	}
}

// CreateStaffInput carries the fields for a new staff account. Kiosk
// accounts set Alias and PIN; console accounts set Password. An account may
// carry both credential kinds.
type CreateStaffInput struct {
	Name     string
	Email    string
	Alias    *string
	PIN      *string
	Password *string
	Roles    []domain.StaffRole
}

// CreateStaff registers a new staff member, hashing the initial credential.
func (s *StaffService) CreateStaff(ctx context.Context, input CreateStaffInput) result.Result[*domain.StaffMember] {
	if input.Name == "" || input.Email == "" {
		return result.Fail[*domain.StaffMember](result.KindValidation, "name and email are required")
	}
	if input.Alias == nil && input.Password == nil {
		return result.Fail[*domain.StaffMember](result.KindValidation, "either a kiosk alias+pin or a password is required")
	}
	if (input.Alias == nil) != (input.PIN == nil) {
		return result.Fail[*domain.StaffMember](result.KindValidation, "alias and pin must be set together")
	}
	if input.PIN != nil {
		if err := auth.ValidatePIN(*input.PIN); err != nil {
			return result.Fail[*domain.StaffMember](result.KindValidation, err.Error())
		}
	}
	if input.Password != nil {
		if err := auth.ValidatePassword(*input.Password, s.minPassword); err != nil {
			return result.Fail[*domain.StaffMember](result.KindValidation, err.Error())
		}
	}

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	if _, err := s.staff.GetByEmail(sctx, input.Email); err == nil {
		return result.Fail[*domain.StaffMember](result.KindValidation, "email already registered")
	} else if !errors.Is(err, pgx.ErrNoRows) {
		return failStore[*domain.StaffMember]("credential", err)
	}
	if input.Alias != nil {
		if _, err := s.staff.GetByAlias(sctx, *input.Alias); err == nil {
			return result.Fail[*domain.StaffMember](result.KindValidation, "alias already registered")
		} else if !errors.Is(err, pgx.ErrNoRows) {
			return failStore[*domain.StaffMember]("credential", err)
		}
	}

	roles := input.Roles
	if len(roles) == 0 {
		roles = []domain.StaffRole{domain.StaffRoleEmployee}
	}

	staff := &domain.StaffMember{
		Name:   input.Name,
		Email:  input.Email,
		Alias:  input.Alias,
		Roles:  roles,
		Active: true,
	}

	if input.PIN != nil {
		hash, err := auth.HashPassword(*input.PIN, s.bcryptCost)
		if err != nil {
			s.logger.Error("hash pin", zap.Error(err))
			return result.Fail[*domain.StaffMember](result.KindUnexpected, "could not create staff member")
		}
		staff.PinHash = &hash
	}
	if input.Password != nil {
		hash, err := auth.HashPassword(*input.Password, s.bcryptCost)
		if err != nil {
			s.logger.Error("hash password", zap.Error(err))
			return result.Fail[*domain.StaffMember](result.KindUnexpected, "could not create staff member")
		}
		staff.PasswordHash = &hash
	}

	if err := s.staff.Create(sctx, staff); err != nil {
		return failStore[*domain.StaffMember]("credential", err)
	}
	return result.OK(staff)
}

// GetStaff looks up one staff member.
func (s *StaffService) GetStaff(ctx context.Context, id int64) result.Result[*domain.StaffMember] {
	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	staff, err := s.staff.GetByID(sctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[*domain.StaffMember](result.KindNotFound, "staff member not found")
		}
		return failStore[*domain.StaffMember]("credential", err)
	}
	return result.OK(staff)
}

// ListStaff returns staff members matching the filter.
func (s *StaffService) ListStaff(ctx context.Context, filter repository.StaffFilter) result.Result[[]domain.StaffMember] {
	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	staff, err := s.staff.List(sctx, filter)
	if err != nil {
		return failStore[[]domain.StaffMember]("credential", err)
	}
	return result.OK(staff)
}

// SetActive enables or disables a staff account. Disabled accounts can no
// longer authenticate; existing tokens expire on their own.
func (s *StaffService) SetActive(ctx context.Context, id int64, active bool) result.Result[result.Unit] {
	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	staff, err := s.staff.GetByID(sctx, id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[result.Unit](result.KindNotFound, "staff member not found")
		}
		return failStore[result.Unit]("credential", err)
	}

	staff.Active = active
	if err := s.staff.Update(sctx, staff); err != nil {
		return failStore[result.Unit]("credential", err)
	}
	return result.OK(result.Unit{})
}
