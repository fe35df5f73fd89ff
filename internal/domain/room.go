package domain

import (
	"slices"
	"time"
)

type Room struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

type Instructor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// ClassOffering is a recurring class definition. Weekdays use time.Weekday
// numbering (0=Sunday..6=Saturday).
type ClassOffering struct {
	ID           string         `json:"id"`
	Title        string         `json:"title"`
	Level        string         `json:"level"`
	Style        string         `json:"style"`
	InstructorID string         `json:"instructor_id"`
	DurationMin  int            `json:"duration_min"`
	Capacity     int            `json:"capacity"`
	Price        int64          `json:"price"`
	RoomID       string         `json:"room_id"`
	Slots        []string       `json:"slots"`
	Weekdays     []time.Weekday `json:"weekdays"`
}

func (o ClassOffering) RecursOn(w time.Weekday) bool {
	return slices.Contains(o.Weekdays, w)
}

func (o ClassOffering) HasSlot(slot string) bool {
	return slices.Contains(o.Slots, slot)
}
