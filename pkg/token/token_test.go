package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/collectionshq/collections-in-go/pkg/authz"
)

var testKey = []byte("test-signing-key-32-bytes-long!!")

func TestIssueAndVerify(t *testing.T) {
	signer := NewSigner(testKey, time.Hour)
	verifier := NewVerifier(testKey)

	bindings := []authz.AccessBinding{
		{ResourceID: "col-1", Permission: authz.PermissionCreateCollection},
		{ResourceID: "col-2", Permission: authz.PermissionLimitedView},
	}

	signed, err := signer.Issue("alice", authz.RoleEditor, bindings)
	require.NoError(t, err)

	p, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, "alice", p.SubjectID)
	assert.Equal(t, authz.RoleEditor, p.Role)
	assert.Equal(t, bindings, p.Bindings)
	assert.WithinDuration(t, time.Now().Add(time.Hour), p.ExpiresAt, time.Minute)
}

func TestVerifyDefaultsToViewer(t *testing.T) {
	signer := NewSigner(testKey, time.Hour)
	verifier := NewVerifier(testKey)

	signed, err := signer.Issue("bob", authz.RoleViewer, nil)
	require.NoError(t, err)

	p, err := verifier.Verify(signed)
	require.NoError(t, err)
	assert.Equal(t, authz.RoleViewer, p.Role)
	assert.Empty(t, p.Bindings)
}

func TestVerifyRejectsWrongKey(t *testing.T) {
	signer := NewSigner(testKey, time.Hour)
	verifier := NewVerifier([]byte("a-completely-different-key-here!"))

	signed, err := signer.Issue("alice", authz.RoleEditor, nil)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsExpired(t *testing.T) {
	signer := NewSigner(testKey, -time.Minute)
	verifier := NewVerifier(testKey)

	signed, err := signer.Issue("alice", authz.RoleEditor, nil)
	require.NoError(t, err)

	_, err = verifier.Verify(signed)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestVerifyRejectsGarbage(t *testing.T) {
	verifier := NewVerifier(testKey)

	_, err := verifier.Verify("not-a-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}
