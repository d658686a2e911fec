// Package token issues and verifies the signed bearer tokens that carry a
// principal's identity: subject, role tier, and access bindings.
package token
