package httpx

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"golang.org/x/sync/singleflight"

	"freshmart-client/app/domain"
)

// HeaderKioskSession routes a request to the kiosk-session identity instead
// of the bearer identity.
const HeaderKioskSession = "X-Kiosk-Session"

const refreshTimeout = 15 * time.Second

// AuthTransport is the authorized request pipeline. Outbound, it attaches
// the bearer credential when a non-expired access token exists. Inbound, a
// 401 triggers the shared refresh procedure and exactly one retry of the
// original request; a second 401 is surfaced unchanged.
//
// The refresh procedure is de-duplicated: concurrent 401s share a single
// refresh call and all retry with the one resulting token. This is a hard
// contract; independent refresh calls race against server-side refresh token
// rotation.
type AuthTransport struct {
	base          http.RoundTripper
	vault         *Vault
	refreshURL    string
	refreshClient *http.Client
	skew          time.Duration
	group         singleflight.Group
	logger        *slog.Logger
	onReauth      func()
}

// NewAuthTransport creates the authorized transport. The refresh endpoint is
// called with a plain client so refresh traffic never re-enters the
// interception pipeline.
func NewAuthTransport(vault *Vault, refreshURL string, skew time.Duration, logger *slog.Logger) *AuthTransport {
	return &AuthTransport{
		base:          otelhttp.NewTransport(http.DefaultTransport),
		vault:         vault,
		refreshURL:    refreshURL,
		refreshClient: &http.Client{Timeout: refreshTimeout},
		skew:          skew,
		logger:        logger,
	}
}

// SetReauthHook registers the callback invoked after a terminal refresh
// failure. Collaborators must treat it as redirect-to-login.
func (t *AuthTransport) SetReauthHook(fn func()) {
	t.onReauth = fn
}

// RoundTrip implements http.RoundTripper.
func (t *AuthTransport) RoundTrip(req *http.Request) (*http.Response, error) {
	creds := t.vault.Current()

	out := req.Clone(req.Context())
	if creds.AccessToken != "" && !creds.Expired(t.skew) {
		out.Header.Set("Authorization", "Bearer "+creds.AccessToken)
	}

	resp, err := t.base.RoundTrip(out)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode != http.StatusUnauthorized {
		return resp, nil
	}

	// Kiosk-session requests are not bearer-authenticated; their 401s mean
	// the kiosk session itself is invalid and are the caller's problem.
	if req.Header.Get(HeaderKioskSession) != "" {
		return resp, nil
	}

	// A 401 with no credentials at all is a plain rejection (e.g. a failed
	// login), not an expired session.
	if creds.IsZero() {
		return resp, nil
	}

	token, err := t.refresh(req.Context())
	if err != nil {
		drain(resp)
		return nil, domain.NewAPIError(domain.KindReauthRequired, "re-authentication required").WithCause(err)
	}
	drain(resp)

	retry := req.Clone(req.Context())
	if req.GetBody != nil {
		body, err := req.GetBody()
		if err != nil {
			return nil, fmt.Errorf("rewind request body for retry: %w", err)
		}
		retry.Body = body
	}
	retry.Header.Set("Authorization", "Bearer "+token)

	return t.base.RoundTrip(retry)
}

// refresh obtains a fresh access token. All concurrent callers share one
// in-flight refresh; late joiners attach to it instead of issuing their own.
func (t *AuthTransport) refresh(ctx context.Context) (string, error) {
	token, err, _ := t.group.Do("refresh", func() (interface{}, error) {
		access, err := t.doRefresh()
		if err != nil {
			// Terminal for the session: wipe credentials once, on behalf of
			// every caller sharing this flight.
			if clearErr := t.vault.Clear(context.WithoutCancel(ctx)); clearErr != nil {
				t.logger.Warn("failed to clear credentials after refresh failure", "error", clearErr)
			}
			if t.onReauth != nil {
				t.onReauth()
			}
			return nil, err
		}
		return access, nil
	})
	if err != nil {
		return "", err
	}
	return token.(string), nil
}

// doRefresh calls the token refresh endpoint and persists the rotated pair.
// It runs on a detached context: a caller abandoning its await must not
// cancel a refresh other requests are waiting on.
func (t *AuthTransport) doRefresh() (string, error) {
	creds := t.vault.Current()
	if creds.RefreshToken == "" {
		return "", domain.ErrNoRefreshToken
	}

	ctx, cancel := context.WithTimeout(context.Background(), refreshTimeout)
	defer cancel()

	payload, err := json.Marshal(map[string]string{"refresh": creds.RefreshToken})
	if err != nil {
		return "", fmt.Errorf("marshal refresh request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, t.refreshURL, bytes.NewReader(payload))
	if err != nil {
		return "", fmt.Errorf("build refresh request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := t.refreshClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("refresh call failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("refresh rejected with status %d", resp.StatusCode)
	}

	var body struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return "", fmt.Errorf("decode refresh response: %w", err)
	}
	if body.Access == "" {
		return "", fmt.Errorf("refresh response carried no access token")
	}

	next := domain.Credentials{
		AccessToken:  body.Access,
		RefreshToken: creds.RefreshToken,
	}
	// The server rotates the refresh token when configured to; keep the old
	// one otherwise.
	if body.Refresh != "" {
		next.RefreshToken = body.Refresh
	}
	if exp, err := domain.DecodeExpiry(body.Access); err == nil {
		next.AccessExpiresAt = exp
	} else {
		t.logger.Warn("refreshed access token has no readable expiry", "error", err)
	}

	if err := t.vault.Set(ctx, next); err != nil {
		return "", err
	}

	t.logger.Debug("access token refreshed")
	return body.Access, nil
}

// drain discards and closes a response body so the connection can be reused.
func drain(resp *http.Response) {
	_, _ = io.Copy(io.Discard, io.LimitReader(resp.Body, 4096))
	_ = resp.Body.Close()
}
