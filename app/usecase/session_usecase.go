package usecase

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"freshmart-client/app/domain"
	"freshmart-client/app/port"
	"freshmart-client/app/utils/validator"
)

// SessionUseCase owns the credential lifecycle: hydrate on startup, login,
// register, logout, and the anonymous/authenticating/authenticated state
// machine. Credentials are only ever written through the vault.
type SessionUseCase struct {
	mu      sync.RWMutex
	session domain.Session

	// hydrateMu serializes Hydrate; a second call while one is in flight
	// waits for the first instead of racing it.
	hydrateMu sync.Mutex

	vault     port.CredentialVault
	authGW    port.AuthGateway
	validator *validator.Validator
	skew      time.Duration
	logger    *slog.Logger

	listenerMu sync.Mutex
	listeners  []func()
}

// NewSessionUseCase creates a session use case starting anonymous.
func NewSessionUseCase(vault port.CredentialVault, authGW port.AuthGateway, skew time.Duration, logger *slog.Logger) *SessionUseCase {
	return &SessionUseCase{
		session:   domain.Session{Status: domain.StatusAnonymous},
		vault:     vault,
		authGW:    authGW,
		validator: validator.New(),
		skew:      skew,
		logger:    logger,
	}
}

// Hydrate restores the session from the credential store at startup. The
// stored access token's expiry is checked offline; only a token still inside
// its validity window triggers the profile fetch. Hydrate never fails
// outward: every failure path degrades to an anonymous session.
func (uc *SessionUseCase) Hydrate(ctx context.Context) {
	uc.hydrateMu.Lock()
	defer uc.hydrateMu.Unlock()

	if uc.Status() == domain.StatusAuthenticated {
		return
	}

	if err := uc.vault.Hydrate(ctx); err != nil {
		uc.logger.Warn("credential hydration failed", "error", err)
		uc.setAnonymous()
		return
	}

	creds := uc.vault.Current()
	if creds.AccessToken == "" {
		uc.setAnonymous()
		return
	}

	if creds.AccessExpiresAt.IsZero() {
		exp, err := domain.DecodeExpiry(creds.AccessToken)
		if err != nil {
			uc.logger.Warn("stored access token is unreadable, clearing credentials", "error", err)
			uc.clearAndReset(ctx)
			return
		}
		creds.AccessExpiresAt = exp
	}

	if creds.Expired(uc.skew) {
		uc.logger.Info("stored access token expired, clearing credentials")
		uc.clearAndReset(ctx)
		return
	}

	uc.setSession(creds, nil, domain.StatusAuthenticating)

	profile, err := uc.authGW.FetchProfile(ctx)
	if err != nil {
		uc.logger.Warn("profile fetch during hydration failed", "error", err)
		uc.clearAndReset(ctx)
		return
	}

	uc.setSession(creds, profile, domain.StatusAuthenticated)
	uc.logger.Info("session restored", "username", profile.Username)
}

// Login authenticates against the accounts endpoint. On failure nothing is
// mutated; on success the tokens are stored and the profile fetched.
func (uc *SessionUseCase) Login(ctx context.Context, req domain.LoginRequest) error {
	if err := uc.validator.Validate(req); err != nil {
		return domain.NewAPIError(domain.KindValidation, err.Error())
	}

	result, err := uc.authGW.Login(ctx, req)
	if err != nil {
		return err
	}

	if err := uc.vault.Set(ctx, result.Credentials); err != nil {
		return domain.NewAPIError(domain.KindInternal, "failed to persist credentials").WithCause(err)
	}
	uc.setSession(result.Credentials, nil, domain.StatusAuthenticating)

	profile, err := uc.authGW.FetchProfile(ctx)
	if err != nil {
		// The login itself succeeded; a failed profile fetch leaves the
		// session authenticated with no profile, matching the server's view.
		uc.logger.Warn("profile fetch after login failed", "error", err)
	}

	uc.setSession(result.Credentials, profile, domain.StatusAuthenticated)
	return nil
}

// Register creates an account. The response carries the profile directly, so
// no extra profile fetch happens.
func (uc *SessionUseCase) Register(ctx context.Context, req domain.RegisterRequest) error {
	if err := uc.validator.Validate(req); err != nil {
		return domain.NewAPIError(domain.KindValidation, err.Error())
	}

	result, err := uc.authGW.Register(ctx, req)
	if err != nil {
		return err
	}

	if err := uc.vault.Set(ctx, result.Credentials); err != nil {
		return domain.NewAPIError(domain.KindInternal, "failed to persist credentials").WithCause(err)
	}

	uc.setSession(result.Credentials, result.Profile, domain.StatusAuthenticated)
	return nil
}

// Logout invalidates the refresh token server-side on a best-effort basis,
// then unconditionally clears credentials, resets to anonymous and tells
// dependent surfaces to drop authenticated-only state.
func (uc *SessionUseCase) Logout(ctx context.Context) {
	creds := uc.vault.Current()
	if creds.RefreshToken != "" {
		if err := uc.authGW.Logout(ctx, creds.RefreshToken); err != nil {
			uc.logger.Warn("server-side logout failed", "error", err)
		}
	}

	uc.clearAndReset(ctx)
	uc.logger.Info("logged out")
}

// UpdateProfile updates editable profile fields on the server and in the
// session.
func (uc *SessionUseCase) UpdateProfile(ctx context.Context, update domain.ProfileUpdate) error {
	if uc.Status() != domain.StatusAuthenticated {
		return domain.ErrLoginRequired
	}
	if err := uc.validator.Validate(update); err != nil {
		return domain.NewAPIError(domain.KindValidation, err.Error())
	}

	profile, err := uc.authGW.UpdateProfile(ctx, update)
	if err != nil {
		return err
	}

	uc.mu.Lock()
	uc.session.Profile = profile
	uc.mu.Unlock()
	return nil
}

// Status returns the current session status.
func (uc *SessionUseCase) Status() domain.SessionStatus {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session.Status
}

// Profile returns the current profile, or nil when anonymous.
func (uc *SessionUseCase) Profile() *domain.UserProfile {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session.Profile
}

// Snapshot returns a copy of the current session.
func (uc *SessionUseCase) Snapshot() domain.Session {
	uc.mu.RLock()
	defer uc.mu.RUnlock()
	return uc.session
}

// OnReset registers a callback invoked whenever the session drops to
// anonymous.
func (uc *SessionUseCase) OnReset(fn func()) {
	uc.listenerMu.Lock()
	uc.listeners = append(uc.listeners, fn)
	uc.listenerMu.Unlock()
}

// HandleReauth is wired as the authorized transport's re-authentication
// hook. The transport has already cleared the vault; here the session drops
// to anonymous and dependent surfaces are reset.
func (uc *SessionUseCase) HandleReauth() {
	uc.logger.Info("re-authentication required, resetting session")
	uc.setAnonymous()
}

func (uc *SessionUseCase) clearAndReset(ctx context.Context) {
	if err := uc.vault.Clear(ctx); err != nil {
		uc.logger.Warn("failed to clear credentials", "error", err)
	}
	uc.setAnonymous()
}

func (uc *SessionUseCase) setAnonymous() {
	uc.setSession(domain.Credentials{}, nil, domain.StatusAnonymous)
	uc.notifyReset()
}

func (uc *SessionUseCase) setSession(creds domain.Credentials, profile *domain.UserProfile, status domain.SessionStatus) {
	uc.mu.Lock()
	uc.session = domain.Session{Credentials: creds, Profile: profile, Status: status}
	uc.mu.Unlock()
}

func (uc *SessionUseCase) notifyReset() {
	uc.listenerMu.Lock()
	listeners := make([]func(), len(uc.listeners))
	copy(listeners, uc.listeners)
	uc.listenerMu.Unlock()

	for _, fn := range listeners {
		fn()
	}
}
