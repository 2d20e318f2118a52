package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
)

// Availability is a per-teacher boolean grid over all (weekday, slot)
// pairs; true means the hour is free. Stored as a JSONB column by the
// Postgres backend and as a plain object by the flat-file backend.
type Availability map[string]map[string]bool

// IsFree reports whether the given cell exists and is still free.
func (a Availability) IsFree(day, slot string) bool {
	slots, ok := a[day]
	if !ok {
		return false
	}
	return slots[slot]
}

// Book flips a free cell to booked. Once false, a cell is never flipped
// back by this system.
func (a Availability) Book(day, slot string) error {
	slots, ok := a[day]
	if !ok {
		return fmt.Errorf("unknown weekday %q", day)
	}
	free, ok := slots[slot]
	if !ok {
		return fmt.Errorf("unknown time slot %q", slot)
	}
	if !free {
		return fmt.Errorf("slot %s %s is already booked", day, slot)
	}
	slots[slot] = false
	return nil
}

// Clone returns a deep copy so callers can mutate without aliasing.
func (a Availability) Clone() Availability {
	if a == nil {
		return nil
	}
	out := make(Availability, len(a))
	for day, slots := range a {
		cp := make(map[string]bool, len(slots))
		for slot, free := range slots {
			cp[slot] = free
		}
		out[day] = cp
	}
	return out
}

// Value implements driver.Valuer for JSONB storage.
func (a Availability) Value() (driver.Value, error) {
	if a == nil {
		return []byte("{}"), nil
	}
	return json.Marshal(a)
}

// Scan implements sql.Scanner for JSONB storage.
func (a *Availability) Scan(value interface{}) error {
	if value == nil {
		*a = Availability{}
		return nil
	}
	var raw []byte
	switch v := value.(type) {
	case []byte:
		raw = v
	case string:
		raw = []byte(v)
	default:
		return fmt.Errorf("unsupported availability column type %T", value)
	}
	return json.Unmarshal(raw, a)
}
