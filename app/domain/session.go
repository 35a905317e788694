package domain

// SessionStatus drives UI gating for the authenticated storefront surfaces.
type SessionStatus string

const (
	StatusAnonymous      SessionStatus = "anonymous"
	StatusAuthenticating SessionStatus = "authenticating"
	StatusAuthenticated  SessionStatus = "authenticated"
)

// Session is the client-side view of the current web identity. The profile is
// only populated once the credentials are known valid.
type Session struct {
	Credentials Credentials   `json:"credentials"`
	Profile     *UserProfile  `json:"profile,omitempty"`
	Status      SessionStatus `json:"status"`
}

// IsAuthenticated returns true when the session may issue cart mutations.
func (s Session) IsAuthenticated() bool {
	return s.Status == StatusAuthenticated
}

// AuthResult is what a successful login or registration yields. Profile is
// nil for login; that flow fetches the profile endpoint separately.
type AuthResult struct {
	Credentials Credentials
	Profile     *UserProfile
}
