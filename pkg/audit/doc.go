// Package audit provides audit logging for collection operations.
//
// This package implements structured audit logging for security-relevant
// operations such as collection creation, reads, deletes, and denied
// authorization checks.
//
// # Event Types
//
// The package defines event types for various operations:
//
//   - Collection create events (success/failure)
//   - Collection show events
//   - Collection delete events
//   - Access denied events
//
// # Usage
//
//	audit.Log(audit.CreateEvent{UserID: user, Title: title, Success: true})
//
// Audit events are logged in RFC5424 syslog format suitable for security
// monitoring and compliance requirements.
package audit
