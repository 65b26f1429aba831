package models

import "github.com/google/uuid"

// Model is implemented by every resource the store persists.
type Model interface {
	Self() string          // Human readable name of the resource type
	TableName() string     // Table the resource is stored in
	PrimaryKey() uuid.UUID // ID of the resource
}

// The "Registry" is a slice of all models available
//
// It is ordered so that resources referencing other resources come first.
// Operations that affect all models, e.g. purging a user's data, iterate
// over it in this order to satisfy foreign keys.
var Registry = []Model{
	AccountAllocation{},
	Allocation{},
	Account{},
}
