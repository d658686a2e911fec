// Package identity carries the authenticated Principal through request
// context. The Principal combines token claims (subject, role, access
// bindings) with request-specific context such as the client IP.
package identity
