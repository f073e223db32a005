package app

import (
	"context"
	"errors"
	"time"

	"github.com/ameerhamza-malik/ItemManagement/internal/domain/shared"
	"github.com/ameerhamza-malik/ItemManagement/internal/platform/metrics"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/inbound"
	"github.com/ameerhamza-malik/ItemManagement/internal/ports/outbound"
	"github.com/ameerhamza-malik/ItemManagement/internal/validation"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"
)

// AuthService implements registration, credential verification and session
// identity binding. Passwords only ever exist in memory long enough to be
// hashed or compared; the raw value is never persisted or logged.
type AuthService struct {
	userRepo   outbound.UserRepository
	sessions   outbound.SessionStore
	metrics    *metrics.Metrics
	bcryptCost int
	sessionTTL time.Duration
	logger     zerolog.Logger
}

type AuthServiceParams struct {
	UserRepo   outbound.UserRepository
	Sessions   outbound.SessionStore
	Metrics    *metrics.Metrics
	BcryptCost int
	SessionTTL time.Duration
	Logger     zerolog.Logger
}

// NewAuthService creates a new auth service
func NewAuthService(params AuthServiceParams) *AuthService {
	cost := params.BcryptCost
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}

	return &AuthService{
		userRepo:   params.UserRepo,
		sessions:   params.Sessions,
		metrics:    params.Metrics,
		bcryptCost: cost,
		sessionTTL: params.SessionTTL,
		logger:     params.Logger.With().Str("component", "auth_service").Logger(),
	}
}

// Register validates the registration form and creates a new user with a
// hashed password. The existence pre-check and the schema's uniqueness
// constraints both map to ErrDuplicateIdentity, so a concurrent
// double-registration cannot slip through the gap between check and insert.
func (service *AuthService) Register(ctx context.Context, req inbound.RegisterRequest) (*shared.User, error) {
	form := validation.RegistrationForm{
		Username:        req.Username,
		Email:           req.Email,
		Password:        req.Password,
		ConfirmPassword: req.ConfirmPassword,
	}
	if errs := form.Validate(); len(errs) > 0 {
		service.logger.Warn().Int("violations", len(errs)).Msg("Registration rejected by validation")
		return nil, errs
	}

	exists, err := service.userRepo.ExistsByUsernameOrEmail(ctx, form.Username, form.Email)
	if err != nil {
		service.logger.Error().Err(err).Msg("Failed to check identity uniqueness")
		return nil, err
	}
	if exists {
		service.logger.Warn().Str("username", form.Username).Msg("Registration rejected, identity taken")
		return nil, shared.ErrDuplicateIdentity
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(form.Password), service.bcryptCost)
	if err != nil {
		service.logger.Error().Err(err).Msg("Failed to hash password")
		return nil, err
	}

	user := &shared.User{
		Username:     form.Username,
		Email:        form.Email,
		PasswordHash: string(hash),
	}

	if err := service.userRepo.Create(ctx, user); err != nil {
		if errors.Is(err, shared.ErrDuplicateIdentity) {
			return nil, shared.ErrDuplicateIdentity
		}
		service.logger.Error().Err(err).Msg("Failed to create user")
		return nil, err
	}

	service.logger.Info().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Msg("User registered")

	if service.metrics != nil {
		service.metrics.UsersRegistered.Inc()
	}

	return user, nil
}

// Login verifies the supplied credentials and establishes a session with an
// absolute expiry. An unknown username and a wrong password both return
// ErrInvalidCredentials; callers cannot tell which check failed.
func (service *AuthService) Login(ctx context.Context, req inbound.LoginRequest) (*shared.Session, error) {
	form := validation.LoginForm{Username: req.Username, Password: req.Password}
	if errs := form.Validate(); len(errs) > 0 {
		return nil, errs
	}

	user, err := service.userRepo.GetByUsername(ctx, form.Username)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			service.recordFailedLogin(form.Username)
			return nil, shared.ErrInvalidCredentials
		}
		service.logger.Error().Err(err).Msg("Failed to fetch user for login")
		return nil, err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(form.Password)); err != nil {
		service.recordFailedLogin(form.Username)
		return nil, shared.ErrInvalidCredentials
	}

	session := &shared.Session{
		ID:        uuid.NewString(),
		UserID:    user.ID,
		ExpiresAt: time.Now().Add(service.sessionTTL),
	}

	if err := service.sessions.Save(ctx, session); err != nil {
		service.logger.Error().Err(err).Int64("user_id", user.ID).Msg("Failed to save session")
		return nil, err
	}

	service.logger.Info().
		Int64("user_id", user.ID).
		Str("username", user.Username).
		Time("expires_at", session.ExpiresAt).
		Msg("User logged in")

	if service.metrics != nil {
		service.metrics.LoginsSucceeded.Inc()
	}

	return session, nil
}

// Logout invalidates a session immediately; logging out twice is a no-op
func (service *AuthService) Logout(ctx context.Context, sessionID string) error {
	if sessionID == "" {
		return nil
	}

	if err := service.sessions.Delete(ctx, sessionID); err != nil {
		service.logger.Error().Err(err).Msg("Failed to delete session")
		return err
	}

	return nil
}

// CurrentUser resolves a session ID to its authenticated user. Expired or
// unknown sessions yield ErrSessionNotFound.
func (service *AuthService) CurrentUser(ctx context.Context, sessionID string) (*shared.User, error) {
	if sessionID == "" {
		return nil, shared.ErrSessionNotFound
	}

	session, err := service.sessions.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}

	if session.Expired(time.Now()) {
		_ = service.sessions.Delete(ctx, sessionID)
		return nil, shared.ErrSessionNotFound
	}

	user, err := service.userRepo.GetByID(ctx, session.UserID)
	if err != nil {
		if errors.Is(err, shared.ErrUserNotFound) {
			return nil, shared.ErrSessionNotFound
		}
		return nil, err
	}

	return user, nil
}

func (service *AuthService) recordFailedLogin(username string) {
	service.logger.Warn().Str("username", username).Msg("Login failed")
	if service.metrics != nil {
		service.metrics.LoginsFailed.Inc()
	}
}
