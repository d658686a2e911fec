package identity

import (
	"context"
	"net"
	"time"

	"github.com/collectionshq/collections-in-go/pkg/authz"
)

// ContextKey is a type for context keys to avoid collisions.
type ContextKey string

const (
	// Key is the context key for Principal.
	Key ContextKey = "principal"
)

// Principal represents the authenticated actor for a request: a subject with
// a coarse role tier and the resource-scoped access bindings granted to it.
// The auth middleware builds it from a verified token; everything downstream
// only reads it.
type Principal struct {
	// Token claims
	SubjectID string
	Role      authz.Role
	Bindings  []authz.AccessBinding
	IssuedAt  time.Time
	ExpiresAt time.Time

	// Request context
	RemoteIP net.IP
}

// WithRemoteIP sets the remote IP address.
func (p *Principal) WithRemoteIP(ip net.IP) *Principal {
	p.RemoteIP = ip
	return p
}

// CanPerform reports whether the principal may perform action on the
// resource, per the access resolver.
func (p *Principal) CanPerform(action authz.Action, resourceID string) bool {
	return authz.CanPerform(p.Role, p.Bindings, action, resourceID)
}

// ClientIP returns the remote IP as a string, or "-" when unknown.
func (p *Principal) ClientIP() string {
	if p.RemoteIP == nil {
		return "-"
	}
	return p.RemoteIP.String()
}

// Get retrieves the Principal from context.
func Get(ctx context.Context) (*Principal, bool) {
	p, ok := ctx.Value(Key).(*Principal)
	return p, ok
}

// Set stores the Principal in context.
func Set(ctx context.Context, p *Principal) context.Context {
	return context.WithValue(ctx, Key, p)
}
