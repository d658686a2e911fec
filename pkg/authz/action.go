package authz

//go:generate go run github.com/dmarkham/enumer -type Action -trimprefix Action -transform lower -output action.gen.go

// Action is an operation a principal can attempt on a collection.
type Action int

const (
	ActionRead Action = iota
	ActionCreate
	ActionDelete
)
