package models

import "github.com/google/uuid"

// LifecycleScope selects which lifecycle states a query returns.
type LifecycleScope int

const (
	OnlyActive LifecycleScope = iota
	OnlyArchived
	AnyLifecycle
)

// InstanceFilter narrows a transaction instance query. OwnerID is mandatory.
type InstanceFilter struct {
	OwnerID       uuid.UUID
	ID            *uuid.UUID
	ParentID      *uuid.UUID
	Kind          InstanceKind
	Flow          Flow
	SubcategoryID *uuid.UUID
	Processed     *bool
	From          *Date
	To            *Date
	Lifecycle     LifecycleScope
	Limit         int
	Offset        int
}

// ChildSummary aggregates the active instances of one parent.
type ChildSummary struct {
	Count   int64
	MinDate *Date
	MaxDate *Date
}
