// Package authz implements the access resolver for collection operations.
//
// Authorization combines two inputs: a coarse-grained role tier (viewer,
// editor, admin) and a set of access bindings, each granting one permission
// on one collection. The resolver is a pure function over those inputs; it
// holds no state and performs no I/O, so it is safe to call concurrently.
//
// Role tiers gate capability classes (an editor may hold collection
// permissions at all), while bindings authorize specific resources. Creating
// at the root level is the one unbound case: there is no parent resource to
// bind against, so the role gate alone decides.
package authz
