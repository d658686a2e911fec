package authz

//go:generate go run github.com/dmarkham/enumer -type Permission -trimprefix Permission -transform lower-camel -json -output permission.gen.go

// Permission is a grant type that an access binding can carry.
type Permission int

const (
	// PermissionLimitedView allows reading the bound collection.
	PermissionLimitedView Permission = iota
	// PermissionCreateCollection allows creating child collections under the
	// bound collection.
	PermissionCreateCollection
)

// Covers reports whether the permission authorizes the given action.
func (p Permission) Covers(action Action) bool {
	switch p {
	case PermissionLimitedView:
		return action == ActionRead
	case PermissionCreateCollection:
		return action == ActionCreate
	}
	return false
}
