package models

import "github.com/google/uuid"

// InstanceKind tags where a transaction instance came from.
type InstanceKind string

const (
	KindSingle      InstanceKind = "single"
	KindRecurring   InstanceKind = "recurring_instance"
	KindInstallment InstanceKind = "installment_instance"
)

// Origin is Single, Recurring(definitionID) or Installment(planID). Build it
// through the constructors so that Kind and ParentID always agree.
type Origin struct {
	Kind     InstanceKind `gorm:"column:kind;type:varchar(32);not null;index" json:"kind"`
	ParentID *uuid.UUID   `gorm:"column:parent_id;type:uuid" json:"parent_id,omitempty"`
}

func SingleOrigin() Origin {
	return Origin{Kind: KindSingle}
}

func RecurringOrigin(definitionID uuid.UUID) Origin {
	id := definitionID
	return Origin{Kind: KindRecurring, ParentID: &id}
}

func InstallmentOrigin(planID uuid.UUID) Origin {
	id := planID
	return Origin{Kind: KindInstallment, ParentID: &id}
}

// Parent returns the definition or plan id, false for single transactions.
func (o Origin) Parent() (uuid.UUID, bool) {
	if o.Kind == KindSingle || o.ParentID == nil {
		return uuid.Nil, false
	}
	return *o.ParentID, true
}

func (o Origin) IsRecurring() bool   { return o.Kind == KindRecurring }
func (o Origin) IsInstallment() bool { return o.Kind == KindInstallment }
func (o Origin) IsSingle() bool      { return o.Kind == KindSingle }

func (o Origin) Validate() error {
	switch o.Kind {
	case KindSingle:
		if o.ParentID != nil {
			return ErrInvalidOrigin
		}
	case KindRecurring, KindInstallment:
		if o.ParentID == nil || *o.ParentID == uuid.Nil {
			return ErrInvalidOrigin
		}
	default:
		return ErrInvalidOrigin
	}
	return nil
}
