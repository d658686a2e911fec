package token

import (
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/collectionshq/collections-in-go/pkg/authz"
	"github.com/collectionshq/collections-in-go/pkg/identity"
)

// ErrInvalidToken is returned when a token fails signature or claims
// validation.
var ErrInvalidToken = errors.New("invalid token")

// Claims are the JWT claims carried by a principal token. The role claim is
// omitted for unprivileged principals (the zero role is viewer), and bindings
// are omitted when the principal holds none.
type Claims struct {
	jwt.RegisteredClaims
	Role           authz.Role            `json:"role,omitempty"`
	AccessBindings []authz.AccessBinding `json:"accessBindings,omitempty"`
}

// Signer issues HS256-signed principal tokens.
type Signer struct {
	key []byte
	ttl time.Duration
}

// NewSigner creates a Signer with the given HMAC key and token lifetime.
func NewSigner(key []byte, ttl time.Duration) *Signer {
	return &Signer{key: key, ttl: ttl}
}

// Issue signs a token for the subject with the given role and bindings.
func (s *Signer) Issue(subject string, role authz.Role, bindings []authz.AccessBinding) (string, error) {
	now := time.Now()
	claims := Claims{
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:   subject,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
		Role:           role,
		AccessBindings: bindings,
	}

	tok := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := tok.SignedString(s.key)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return signed, nil
}

// Verifier validates principal tokens and turns their claims into a
// Principal.
type Verifier struct {
	key []byte
}

// NewVerifier creates a Verifier with the given HMAC key.
func NewVerifier(key []byte) *Verifier {
	return &Verifier{key: key}
}

// Verify parses and validates a signed token, returning the Principal it
// carries. Expired or tampered tokens return ErrInvalidToken.
func (v *Verifier) Verify(tokenStr string) (*identity.Principal, error) {
	var claims Claims
	tok, err := jwt.ParseWithClaims(tokenStr, &claims, func(t *jwt.Token) (interface{}, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return v.key, nil
	})
	if err != nil || !tok.Valid {
		return nil, ErrInvalidToken
	}
	if claims.Subject == "" {
		return nil, ErrInvalidToken
	}

	p := &identity.Principal{
		SubjectID: claims.Subject,
		Role:      claims.Role,
		Bindings:  claims.AccessBindings,
	}
	if claims.IssuedAt != nil {
		p.IssuedAt = claims.IssuedAt.Time
	}
	if claims.ExpiresAt != nil {
		p.ExpiresAt = claims.ExpiresAt.Time
	}
	return p, nil
}
