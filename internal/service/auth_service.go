package service

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"

	"github.com/spec-kit/attendance-service/internal/auth"
	"github.com/spec-kit/attendance-service/internal/config"
	"github.com/spec-kit/attendance-service/internal/domain"
	"github.com/spec-kit/attendance-service/internal/events"
	"github.com/spec-kit/attendance-service/internal/repository"
	"github.com/spec-kit/attendance-service/pkg/result"
)

// invalidCredentialsMsg is shared by every rejection path so a caller
// cannot tell an unknown alias from a wrong PIN or password.
const invalidCredentialsMsg = "invalid credentials"

// LoginOutcome is the success payload of both login paths.
type LoginOutcome struct {
	Token     string
	ExpiresAt time.Time
	SubjectID int64
}

// AuthService verifies kiosk and console credentials and issues tokens.
// Verification failure never has side effects beyond the throttle counter.
type AuthService struct {
	staff        repository.StaffRepository
	tokens       *auth.TokenManager
	throttle     *LoginThrottle
	dispatcher   events.Dispatcher
	logger       *zap.Logger
	bcryptCost   int
	minPassword  int
	storeTimeout time.Duration
}

// AuthDependencies encapsulates collaborators for the auth service.
type AuthDependencies struct {
	StaffRepo  repository.StaffRepository
	Throttle   *LoginThrottle
	Dispatcher events.Dispatcher
	Logger     *zap.Logger
}

// NewAuthService builds the service. Errors when token configuration is
// incomplete, which aborts startup.
func NewAuthService(cfg config.Config, deps AuthDependencies) (*AuthService, error) {
	tokens, err := auth.NewTokenManager(cfg.Auth)
	if err != nil {
		return nil, err
	}
	logger := deps.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &AuthService{
		staff:        deps.StaffRepo,
		tokens:       tokens,
		throttle:     deps.Throttle,
		dispatcher:   deps.Dispatcher,
		logger:       logger,
		bcryptCost:   cfg.Auth.BcryptCost,
		minPassword:  cfg.Auth.MinPasswordLength,
		storeTimeout: cfg.App.StoreTimeout(),
	}, nil
}

// LoginKiosk authenticates a kiosk client by alias and PIN.
func (s *AuthService) LoginKiosk(ctx context.Context, alias, pin string) result.Result[LoginOutcome] {
	if alias == "" || pin == "" {
		return result.Fail[LoginOutcome](result.KindValidation, "alias and pin are required")
	}

	throttleKey := "kiosk:" + alias
	if s.throttle.Blocked(ctx, throttleKey) {
		return result.Fail[LoginOutcome](result.KindInvalidCredentials, invalidCredentialsMsg)
	}

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	staff, err := s.staff.GetByAlias(sctx, alias)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.throttle.RecordFailure(ctx, throttleKey)
			return result.Fail[LoginOutcome](result.KindInvalidCredentials, invalidCredentialsMsg)
		}
		return failStore[LoginOutcome]("credential", err)
	}

	if !staff.Active || staff.PinHash == nil || auth.ComparePassword(*staff.PinHash, pin) != nil {
		s.throttle.RecordFailure(ctx, throttleKey)
		return result.Fail[LoginOutcome](result.KindInvalidCredentials, invalidCredentialsMsg)
	}

	outcome, failed := s.issueToken(staff)
	if failed != nil {
		return result.Refail[LoginOutcome](failed)
	}
	s.throttle.Reset(ctx, throttleKey)
	return result.OK(outcome)
}

// LoginAdmin authenticates a console administrator by email and password.
func (s *AuthService) LoginAdmin(ctx context.Context, email, password string) result.Result[LoginOutcome] {
	if email == "" || password == "" {
		return result.Fail[LoginOutcome](result.KindValidation, "email and password are required")
	}

	throttleKey := "admin:" + email
	if s.throttle.Blocked(ctx, throttleKey) {
		return result.Fail[LoginOutcome](result.KindInvalidCredentials, invalidCredentialsMsg)
	}

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	staff, err := s.staff.GetByEmail(sctx, email)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			s.throttle.RecordFailure(ctx, throttleKey)
			return result.Fail[LoginOutcome](result.KindInvalidCredentials, invalidCredentialsMsg)
		}
		return failStore[LoginOutcome]("credential", err)
	}

	if !staff.Active || !staff.HasRole(domain.StaffRoleAdmin) ||
		staff.PasswordHash == nil || auth.ComparePassword(*staff.PasswordHash, password) != nil {
		s.throttle.RecordFailure(ctx, throttleKey)
		return result.Fail[LoginOutcome](result.KindInvalidCredentials, invalidCredentialsMsg)
	}

	outcome, failed := s.issueToken(staff)
	if failed != nil {
		return result.Refail[LoginOutcome](failed)
	}
	s.throttle.Reset(ctx, throttleKey)
	return result.OK(outcome)
}

// ChangePassword verifies the current password before storing a new hash.
func (s *AuthService) ChangePassword(ctx context.Context, staffID int64, currentPassword, newPassword string) result.Result[result.Unit] {
	if err := auth.ValidatePassword(newPassword, s.minPassword); err != nil {
		return result.Fail[result.Unit](result.KindValidation, err.Error())
	}

	sctx, cancel := context.WithTimeout(ctx, s.storeTimeout)
	defer cancel()

	staff, err := s.staff.GetByID(sctx, staffID)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return result.Fail[result.Unit](result.KindNotFound, "staff member not found")
		}
		return failStore[result.Unit]("credential", err)
	}

	if staff.PasswordHash == nil || auth.ComparePassword(*staff.PasswordHash, currentPassword) != nil {
		return result.Fail[result.Unit](result.KindInvalidCredentials, invalidCredentialsMsg)
	}

	hash, err := auth.HashPassword(newPassword, s.bcryptCost)
	if err != nil {
		s.logger.Error("hash new password", zap.Error(err))
		return result.Fail[result.Unit](result.KindUnexpected, "could not update password")
	}

	staff.PasswordHash = &hash
	if err := s.staff.Update(sctx, staff); err != nil {
		return failStore[result.Unit]("credential", err)
	}

	s.publish(ctx, events.EventPasswordChanged, staff.ID, nil)
	return result.OK(result.Unit{})
}

// TokenManager exposes the underlying token manager for middleware usage.
func (s *AuthService) TokenManager() *auth.TokenManager {
	return s.tokens
}

func (s *AuthService) issueToken(staff *domain.StaffMember) (LoginOutcome, *result.Failure) {
	token, expiresAt, err := s.tokens.Issue(staff.ID, staff.Email, staff.RoleStrings())
	if err != nil {
		s.logger.Error("issue token", zap.Error(err))
		return LoginOutcome{}, &result.Failure{Kind: result.KindUnexpected, Message: "could not issue token"}
	}
	return LoginOutcome{Token: token, ExpiresAt: expiresAt, SubjectID: staff.ID}, nil
}

func (s *AuthService) publish(ctx context.Context, eventType events.EventType, staffID int64, payload interface{}) {
	if s.dispatcher == nil {
		return
	}
	err := s.dispatcher.Publish(ctx, events.Event{
		ID:        uuid.NewString(),
		Type:      eventType,
		StaffID:   staffID,
		Timestamp: time.Now(),
		Payload:   payload,
	})
	if err != nil {
		s.logger.Warn("publish auth event",
			zap.String("event", string(eventType)),
			zap.Int64("staff_id", staffID),
			zap.Error(err))
	}
}
