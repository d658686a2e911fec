package authz

//go:generate go run github.com/dmarkham/enumer -type Role -trimprefix Role -transform lower -json -output role.gen.go

// Role is the coarse-grained capability tier of a principal, independent of
// any specific collection.
type Role int

const (
	// RoleViewer is the unprivileged tier: read-only, driven entirely by
	// limitedView bindings.
	RoleViewer Role = iota
	// RoleEditor may create collections where a binding (or the root-level
	// rule) permits it.
	RoleEditor
	// RoleAdmin passes every role gate and bypasses per-resource bindings.
	RoleAdmin
)

// CanCreateCollections reports whether the role tier may hold
// collection-creation grants at all. Viewer principals are read-only
// regardless of their bindings.
func (r Role) CanCreateCollections() bool {
	return r == RoleEditor || r == RoleAdmin
}
