package models

import "time"

type LifecycleState string

const (
	LifecycleActive   LifecycleState = "active"
	LifecycleArchived LifecycleState = "archived"
)

// Lifecycle is the archive state of a record. Archived records are excluded
// from every read unless asked for explicitly.
type Lifecycle struct {
	State      LifecycleState `gorm:"column:lifecycle_state;type:varchar(16);not null;index" json:"lifecycle_state"`
	ArchivedAt *time.Time     `gorm:"column:archived_at" json:"archived_at,omitempty"`
}

func ActiveLifecycle() Lifecycle {
	return Lifecycle{State: LifecycleActive}
}

// ArchiveTimestamp normalizes t so that a cascade archived with it can be
// matched again by equality after a round trip through storage.
func ArchiveTimestamp(t time.Time) time.Time {
	return t.UTC().Truncate(time.Microsecond)
}

// Archive returns the archived form of l. An already archived value keeps its timestamp.
func (l Lifecycle) Archive(at time.Time) Lifecycle {
	if l.IsArchived() {
		return l
	}
	ts := ArchiveTimestamp(at)
	return Lifecycle{State: LifecycleArchived, ArchivedAt: &ts}
}

func (l Lifecycle) Restore() Lifecycle {
	return ActiveLifecycle()
}

func (l Lifecycle) IsArchived() bool {
	return l.State == LifecycleArchived
}

func (l Lifecycle) IsActive() bool {
	return l.State == LifecycleActive || l.State == ""
}
