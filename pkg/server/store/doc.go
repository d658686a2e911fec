// Package store defines the persistence interfaces consumed by the HTTP
// endpoints, together with the sentinel errors they translate into status
// codes. Implementations live in subpackages.
package store
