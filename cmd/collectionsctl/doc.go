// Package main provides the collections server and its administration CLI.
//
// The collections service stores hierarchical collections and enforces
// per-resource access control on them.
//
// # Architecture
//
// The server is organized into several packages:
//
//   - pkg/server: HTTP server and routing
//   - pkg/server/endpoints: REST API endpoint handlers
//   - pkg/server/store: persistence interfaces and GORM implementations
//   - pkg/authz: roles, permissions, and the access resolver
//   - pkg/token: bearer token issuing and verification
//   - pkg/identity: the authenticated principal
//   - pkg/model: database models
//   - pkg/db: database connection utilities
//   - pkg/audit: audit logging
//   - pkg/config: configuration management
//
// # Quick Start
//
// The server is run via the collectionsctl CLI:
//
//	# Generate a token signing key
//	collectionsctl token generate-key > token_key
//	export COLLECTIONS_TOKEN_KEY=$(cat token_key)
//
//	# Run database migrations
//	collectionsctl db migrate
//
//	# Start the server
//	collectionsctl server
//
//	# Issue a token for local testing
//	collectionsctl token issue alice --role editor
//
// # Environment Variables
//
//   - DATABASE_URL: PostgreSQL connection string
//   - COLLECTIONS_TOKEN_KEY: Base64-encoded 256-bit HMAC key for bearer tokens
//   - COLLECTIONS_LOG_LEVEL: Log level (debug, info, warn, error)
//   - COLLECTIONS_AUDIT_ENABLED: Set to "false" to disable audit logging
//   - PORT: Server port (default: 8080)
package main
