package models

import (
	"fmt"
	"time"
)

type MoodType string

const (
	MoodHappy    MoodType = "happy"
	MoodNeutral  MoodType = "neutral"
	MoodSad      MoodType = "sad"
	MoodExcited  MoodType = "excited"
	MoodStressed MoodType = "stressed"
)

// MoodOrder fixes the deterministic ordering used when mood frequencies tie.
var MoodOrder = []MoodType{MoodHappy, MoodSad, MoodNeutral, MoodExcited, MoodStressed}

// MoodEntry records how the user felt on a calendar day. A day holds at most
// one entry; a later write for the same day replaces mood and note.
type MoodEntry struct {
	Date time.Time `json:"date"`
	Mood MoodType  `json:"mood"`
	Note string    `json:"note,omitempty"`
}

func (m *MoodEntry) Validate() error {
	switch m.Mood {
	case MoodHappy, MoodNeutral, MoodSad, MoodExcited, MoodStressed:
		return nil
	default:
		return fmt.Errorf("invalid mood %q", m.Mood)
	}
}

// ParseMood parses a mood string.
func ParseMood(s string) (MoodType, error) {
	m := MoodEntry{Mood: MoodType(s)}
	if err := m.Validate(); err != nil {
		return "", err
	}
	return MoodType(s), nil
}
