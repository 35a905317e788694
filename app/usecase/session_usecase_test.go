package usecase

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"freshmart-client/app/domain"
	mock_port "freshmart-client/app/mocks"
	"freshmart-client/app/utils/logger"
)

const testSkew = 30 * time.Second

func newSessionUseCase(t *testing.T, vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) *SessionUseCase {
	t.Helper()
	log, err := logger.NewWithWriter("error", io.Discard)
	require.NoError(t, err)
	return NewSessionUseCase(vault, authGW, testSkew, log)
}

func validCredentials() domain.Credentials {
	return domain.Credentials{
		AccessToken:     "access-token",
		RefreshToken:    "refresh-token",
		AccessExpiresAt: time.Now().Add(time.Hour),
	}
}

func TestSessionUseCase_Hydrate(t *testing.T) {
	profile := &domain.UserProfile{ID: 1, Username: "alice"}

	tests := []struct {
		name        string
		setupMocks  func(*mock_port.MockCredentialVault, *mock_port.MockAuthGateway)
		wantStatus  domain.SessionStatus
		wantProfile bool
	}{
		{
			name: "valid stored credentials restore the session",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Hydrate(gomock.Any()).Return(nil)
				vault.EXPECT().Current().Return(validCredentials())
				authGW.EXPECT().FetchProfile(gomock.Any()).Return(profile, nil)
			},
			wantStatus:  domain.StatusAuthenticated,
			wantProfile: true,
		},
		{
			name: "no stored credentials stays anonymous",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Hydrate(gomock.Any()).Return(nil)
				vault.EXPECT().Current().Return(domain.Credentials{})
			},
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "expired token is cleared without a server call",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Hydrate(gomock.Any()).Return(nil)
				vault.EXPECT().Current().Return(domain.Credentials{
					AccessToken:     "access-token",
					RefreshToken:    "refresh-token",
					AccessExpiresAt: time.Now().Add(-time.Minute),
				})
				vault.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "undecodable token with no stored expiry is cleared",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Hydrate(gomock.Any()).Return(nil)
				vault.EXPECT().Current().Return(domain.Credentials{
					AccessToken:  "not-a-jwt",
					RefreshToken: "refresh-token",
				})
				vault.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "profile fetch failure degrades to anonymous",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Hydrate(gomock.Any()).Return(nil)
				vault.EXPECT().Current().Return(validCredentials())
				authGW.EXPECT().FetchProfile(gomock.Any()).
					Return(nil, domain.NewAPIError(domain.KindNetwork, "connection refused"))
				vault.EXPECT().Clear(gomock.Any()).Return(nil)
			},
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "store failure degrades to anonymous",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Hydrate(gomock.Any()).Return(assert.AnError)
			},
			wantStatus: domain.StatusAnonymous,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			vault := mock_port.NewMockCredentialVault(ctrl)
			authGW := mock_port.NewMockAuthGateway(ctrl)
			tt.setupMocks(vault, authGW)

			uc := newSessionUseCase(t, vault, authGW)
			uc.Hydrate(context.Background())

			assert.Equal(t, tt.wantStatus, uc.Status())
			if tt.wantProfile {
				require.NotNil(t, uc.Profile())
				assert.Equal(t, "alice", uc.Profile().Username)
			} else {
				assert.Nil(t, uc.Profile())
			}
		})
	}
}

func TestSessionUseCase_Hydrate_SkipsWhenAuthenticated(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock_port.NewMockCredentialVault(ctrl)
	authGW := mock_port.NewMockAuthGateway(ctrl)

	uc := newSessionUseCase(t, vault, authGW)
	uc.setSession(validCredentials(), &domain.UserProfile{Username: "alice"}, domain.StatusAuthenticated)

	// No mock expectations: hydrating an authenticated session is a no-op.
	uc.Hydrate(context.Background())
	assert.Equal(t, domain.StatusAuthenticated, uc.Status())
}

func TestSessionUseCase_Login(t *testing.T) {
	creds := validCredentials()
	profile := &domain.UserProfile{ID: 1, Username: "alice"}

	tests := []struct {
		name        string
		req         domain.LoginRequest
		setupMocks  func(*mock_port.MockCredentialVault, *mock_port.MockAuthGateway)
		wantErr     bool
		wantKind    domain.Kind
		wantStatus  domain.SessionStatus
		wantProfile *domain.UserProfile
	}{
		{
			name: "successful login stores credentials and profile",
			req:  domain.LoginRequest{Username: "alice", Password: "pw"},
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				authGW.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(&domain.AuthResult{Credentials: creds}, nil)
				vault.EXPECT().Set(gomock.Any(), creds).Return(nil)
				authGW.EXPECT().FetchProfile(gomock.Any()).Return(profile, nil)
			},
			wantStatus:  domain.StatusAuthenticated,
			wantProfile: profile,
		},
		{
			name:       "missing password is rejected before any server call",
			req:        domain.LoginRequest{Username: "alice"},
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {},
			wantErr:    true,
			wantKind:   domain.KindValidation,
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "rejected login mutates nothing",
			req:  domain.LoginRequest{Username: "alice", Password: "wrong"},
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				authGW.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(nil, domain.NewAPIError(domain.KindUnauthorized, "invalid credentials"))
			},
			wantErr:    true,
			wantKind:   domain.KindUnauthorized,
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "failed credential persistence is surfaced",
			req:  domain.LoginRequest{Username: "alice", Password: "pw"},
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				authGW.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(&domain.AuthResult{Credentials: creds}, nil)
				vault.EXPECT().Set(gomock.Any(), creds).Return(assert.AnError)
			},
			wantErr:    true,
			wantKind:   domain.KindInternal,
			wantStatus: domain.StatusAnonymous,
		},
		{
			name: "profile fetch failure still authenticates",
			req:  domain.LoginRequest{Username: "alice", Password: "pw"},
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				authGW.EXPECT().Login(gomock.Any(), gomock.Any()).
					Return(&domain.AuthResult{Credentials: creds}, nil)
				vault.EXPECT().Set(gomock.Any(), creds).Return(nil)
				authGW.EXPECT().FetchProfile(gomock.Any()).
					Return(nil, domain.NewAPIError(domain.KindNetwork, "timeout"))
			},
			wantStatus:  domain.StatusAuthenticated,
			wantProfile: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			vault := mock_port.NewMockCredentialVault(ctrl)
			authGW := mock_port.NewMockAuthGateway(ctrl)
			tt.setupMocks(vault, authGW)

			uc := newSessionUseCase(t, vault, authGW)
			err := uc.Login(context.Background(), tt.req)

			if tt.wantErr {
				require.Error(t, err)
				assert.Equal(t, tt.wantKind, domain.KindOf(err))
			} else {
				require.NoError(t, err)
			}
			assert.Equal(t, tt.wantStatus, uc.Status())
			assert.Equal(t, tt.wantProfile, uc.Profile())
		})
	}
}

func TestSessionUseCase_Register(t *testing.T) {
	creds := validCredentials()
	profile := &domain.UserProfile{ID: 2, Username: "bob"}

	ctrl := gomock.NewController(t)
	vault := mock_port.NewMockCredentialVault(ctrl)
	authGW := mock_port.NewMockAuthGateway(ctrl)

	// Registration carries the profile in the response, so no profile fetch.
	authGW.EXPECT().Register(gomock.Any(), gomock.Any()).
		Return(&domain.AuthResult{Credentials: creds, Profile: profile}, nil)
	vault.EXPECT().Set(gomock.Any(), creds).Return(nil)

	uc := newSessionUseCase(t, vault, authGW)
	err := uc.Register(context.Background(), domain.RegisterRequest{
		Username: "bob",
		Email:    "bob@example.com",
		Password: "Str0ngPass!",
	})
	require.NoError(t, err)

	assert.Equal(t, domain.StatusAuthenticated, uc.Status())
	assert.Equal(t, profile, uc.Profile())
}

func TestSessionUseCase_Register_InvalidEmail(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock_port.NewMockCredentialVault(ctrl)
	authGW := mock_port.NewMockAuthGateway(ctrl)

	uc := newSessionUseCase(t, vault, authGW)
	err := uc.Register(context.Background(), domain.RegisterRequest{
		Username: "bob",
		Email:    "not-an-email",
		Password: "Str0ngPass!",
	})
	require.Error(t, err)
	assert.Equal(t, domain.KindValidation, domain.KindOf(err))
	assert.Equal(t, domain.StatusAnonymous, uc.Status())
}

func TestSessionUseCase_Logout(t *testing.T) {
	tests := []struct {
		name       string
		setupMocks func(*mock_port.MockCredentialVault, *mock_port.MockAuthGateway)
	}{
		{
			name: "invalidates the refresh token then clears",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Current().Return(validCredentials())
				authGW.EXPECT().Logout(gomock.Any(), "refresh-token").Return(nil)
				vault.EXPECT().Clear(gomock.Any()).Return(nil)
			},
		},
		{
			name: "server-side failure still clears locally",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Current().Return(validCredentials())
				authGW.EXPECT().Logout(gomock.Any(), "refresh-token").
					Return(domain.NewAPIError(domain.KindNetwork, "timeout"))
				vault.EXPECT().Clear(gomock.Any()).Return(nil)
			},
		},
		{
			name: "no refresh token skips the server call",
			setupMocks: func(vault *mock_port.MockCredentialVault, authGW *mock_port.MockAuthGateway) {
				vault.EXPECT().Current().Return(domain.Credentials{})
				vault.EXPECT().Clear(gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ctrl := gomock.NewController(t)
			vault := mock_port.NewMockCredentialVault(ctrl)
			authGW := mock_port.NewMockAuthGateway(ctrl)
			tt.setupMocks(vault, authGW)

			uc := newSessionUseCase(t, vault, authGW)
			uc.setSession(validCredentials(), &domain.UserProfile{Username: "alice"}, domain.StatusAuthenticated)

			var resetCalled bool
			uc.OnReset(func() { resetCalled = true })

			uc.Logout(context.Background())

			assert.Equal(t, domain.StatusAnonymous, uc.Status())
			assert.Nil(t, uc.Profile())
			assert.True(t, resetCalled, "dependent surfaces are told to reset")
		})
	}
}

func TestSessionUseCase_UpdateProfile(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock_port.NewMockCredentialVault(ctrl)
	authGW := mock_port.NewMockAuthGateway(ctrl)

	updated := &domain.UserProfile{ID: 1, Username: "alice", FirstName: "Alice"}
	authGW.EXPECT().UpdateProfile(gomock.Any(), gomock.Any()).Return(updated, nil)

	uc := newSessionUseCase(t, vault, authGW)
	uc.setSession(validCredentials(), &domain.UserProfile{ID: 1, Username: "alice"}, domain.StatusAuthenticated)

	err := uc.UpdateProfile(context.Background(), domain.ProfileUpdate{FirstName: "Alice"})
	require.NoError(t, err)
	assert.Equal(t, "Alice", uc.Profile().FirstName)
}

func TestSessionUseCase_UpdateProfile_RequiresLogin(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock_port.NewMockCredentialVault(ctrl)
	authGW := mock_port.NewMockAuthGateway(ctrl)

	uc := newSessionUseCase(t, vault, authGW)
	err := uc.UpdateProfile(context.Background(), domain.ProfileUpdate{FirstName: "Alice"})
	assert.ErrorIs(t, err, domain.ErrLoginRequired)
}

func TestSessionUseCase_HandleReauth(t *testing.T) {
	ctrl := gomock.NewController(t)
	vault := mock_port.NewMockCredentialVault(ctrl)
	authGW := mock_port.NewMockAuthGateway(ctrl)

	uc := newSessionUseCase(t, vault, authGW)
	uc.setSession(validCredentials(), &domain.UserProfile{Username: "alice"}, domain.StatusAuthenticated)

	var resets int
	uc.OnReset(func() { resets++ })

	// The transport has already cleared the vault when this hook fires.
	uc.HandleReauth()

	assert.Equal(t, domain.StatusAnonymous, uc.Status())
	assert.Nil(t, uc.Profile())
	assert.Equal(t, 1, resets)
}
