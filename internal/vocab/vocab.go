// Package vocab holds the fixed weekday/time-slot vocabulary and the
// goal display decorations. The vocabulary is configuration data loaded
// once at startup; the mutable domain never changes it.
package vocab

import (
	"encoding/json"
	"fmt"
	"os"
)

// Day pairs a stable weekday key with its display title.
type Day struct {
	Key   string `json:"key"`
	Title string `json:"title"`
}

// Vocabulary is the ordered weekday and time-slot universe plus the
// goal → emoji display mapping.
type Vocabulary struct {
	Days      []Day             `json:"days"`
	Slots     []string          `json:"slots"`
	GoalEmoji map[string]string `json:"goal_emoji"`
}

// Default returns the built-in vocabulary matching the seeded profiles:
// seven weekdays and lesson hours every two hours from 8:00 to 22:00.
func Default() *Vocabulary {
	return &Vocabulary{
		Days: []Day{
			{Key: "monday", Title: "Понедельник"},
			{Key: "tuesday", Title: "Вторник"},
			{Key: "wednesday", Title: "Среда"},
			{Key: "thursday", Title: "Четверг"},
			{Key: "friday", Title: "Пятница"},
			{Key: "saturday", Title: "Суббота"},
			{Key: "sunday", Title: "Воскресенье"},
		},
		Slots: []string{"8:00", "10:00", "12:00", "14:00", "16:00", "18:00", "20:00", "22:00"},
		GoalEmoji: map[string]string{
			"travel":   "⛱",
			"study":    "🏫",
			"work":     "🏢",
			"relocate": "🚜",
		},
	}
}

// Load reads the vocabulary from a JSON file. An empty path returns the
// built-in defaults.
func Load(path string) (*Vocabulary, error) {
	if path == "" {
		return Default(), nil
	}
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read vocabulary file: %w", err)
	}
	v := &Vocabulary{}
	if err := json.Unmarshal(raw, v); err != nil {
		return nil, fmt.Errorf("parse vocabulary file: %w", err)
	}
	if len(v.Days) == 0 || len(v.Slots) == 0 {
		return nil, fmt.Errorf("vocabulary file %s must define days and slots", path)
	}
	return v, nil
}

// Contains reports whether the (day, slot) pair is part of the universe.
func (v *Vocabulary) Contains(day, slot string) bool {
	return v.HasDay(day) && v.HasSlot(slot)
}

// HasDay reports whether the weekday key is known.
func (v *Vocabulary) HasDay(day string) bool {
	for _, d := range v.Days {
		if d.Key == day {
			return true
		}
	}
	return false
}

// HasSlot reports whether the time-slot label is known.
func (v *Vocabulary) HasSlot(slot string) bool {
	for _, s := range v.Slots {
		if s == slot {
			return true
		}
	}
	return false
}

// DayTitle returns the display title for a weekday key, falling back to
// the key itself.
func (v *Vocabulary) DayTitle(day string) string {
	for _, d := range v.Days {
		if d.Key == day {
			return d.Title
		}
	}
	return day
}

// Emoji returns the display emoji for a goal slug, if any.
func (v *Vocabulary) Emoji(goal string) string {
	return v.GoalEmoji[goal]
}
