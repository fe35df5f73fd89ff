package catalog

import (
	"slices"

	"hoodbook/internal/domain"
)

// Service is a read-only view over the static class catalog. Lookups return
// copies so callers cannot mutate the seed.
type Service struct {
	instructors []domain.Instructor
	rooms       []domain.Room
	offerings   []domain.ClassOffering
}

// NewService returns the academy's weekly template.
func NewService() *Service {
	return New(seedInstructors, seedRooms, seedOfferings)
}

func New(instructors []domain.Instructor, rooms []domain.Room, offerings []domain.ClassOffering) *Service {
	return &Service{
		instructors: slices.Clone(instructors),
		rooms:       slices.Clone(rooms),
		offerings:   slices.Clone(offerings),
	}
}

func (s *Service) Instructors() []domain.Instructor {
	return slices.Clone(s.instructors)
}

func (s *Service) Rooms() []domain.Room {
	return slices.Clone(s.rooms)
}

// Offerings returns all offerings in catalog order.
func (s *Service) Offerings() []domain.ClassOffering {
	return slices.Clone(s.offerings)
}

func (s *Service) Offering(id string) (domain.ClassOffering, bool) {
	for _, o := range s.offerings {
		if o.ID == id {
			return o, true
		}
	}
	return domain.ClassOffering{}, false
}

// RoomName returns "" for unknown rooms.
func (s *Service) RoomName(id string) string {
	for _, r := range s.rooms {
		if r.ID == id {
			return r.Name
		}
	}
	return ""
}

func (s *Service) InstructorName(id string) string {
	for _, i := range s.instructors {
		if i.ID == id {
			return i.Name
		}
	}
	return ""
}

// Styles lists distinct styles in first-seen catalog order.
func (s *Service) Styles() []string {
	out := make([]string, 0, len(s.offerings))
	for _, o := range s.offerings {
		if !slices.Contains(out, o.Style) {
			out = append(out, o.Style)
		}
	}
	return out
}
