package auth

import "crypto/subtle"

// Gate is the admin capability check: a single shared secret compared
// against what the client presents. Whoever holds the secret is admin.
//
// This mirrors the dashboard's original contract, where the browser kept
// the secret in local storage and compared it on every render. It gates
// which controls exist, not who may be trusted; it is documented as a
// known weakness, not a security boundary.
type Gate struct {
	secret string
}

// NewGate creates an admin gate around the configured shared secret
func NewGate(secret string) *Gate {
	return &Gate{secret: secret}
}

// Verify checks an entered admin password against the shared secret.
// On success the caller hands the secret back to the client to store;
// on failure nothing changes.
func (g *Gate) Verify(password string) bool {
	if g.secret == "" {
		return false
	}
	return subtle.ConstantTimeCompare([]byte(password), []byte(g.secret)) == 1
}

// Authorize checks a stored admin token presented on a request.
// Same comparison as Verify; the "token" is just the secret echoed back.
func (g *Gate) Authorize(token string) bool {
	return g.Verify(token)
}

// Secret returns the shared secret for handing to a freshly verified client
func (g *Gate) Secret() string {
	return g.secret
}
