package endpoints

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/collectionshq/collections-in-go/pkg/authz"
	"github.com/collectionshq/collections-in-go/pkg/server"
	"github.com/collectionshq/collections-in-go/pkg/token"
)

var testSigningKey = []byte("test-signing-key-32-bytes-long!!")

// newMockTestServer creates a server backed by mock stores with all
// endpoints registered.
func newMockTestServer(t *testing.T) (*server.Server, *MockCollectionsStore, *MockHealthStore) {
	t.Helper()

	collections := NewMockCollectionsStore()
	health := NewMockHealthStore()

	srv := server.NewServer(collections, health, token.NewVerifier(testSigningKey), nil, "127.0.0.1", "0")
	RegisterAll(srv)

	return srv, collections, health
}

// bearerToken issues a signed token for tests.
func bearerToken(t *testing.T, subject string, role authz.Role, bindings []authz.AccessBinding) string {
	t.Helper()

	signer := token.NewSigner(testSigningKey, time.Hour)
	signed, err := signer.Issue(subject, role, bindings)
	require.NoError(t, err)
	return "Bearer " + signed
}
