package catalog

import "hoodbook/internal/domain"

type OfferingView struct {
	domain.ClassOffering
	InstructorName string `json:"instructor_name"`
	RoomName       string `json:"room_name"`
}

type CatalogResponse struct {
	Instructors []domain.Instructor `json:"instructors"`
	Rooms       []domain.Room       `json:"rooms"`
	Styles      []string            `json:"styles"`
	Offerings   []OfferingView      `json:"offerings"`
}

// View decorates an offering with its instructor and room names.
func (s *Service) View(o domain.ClassOffering) OfferingView {
	return OfferingView{
		ClassOffering:  o,
		InstructorName: s.InstructorName(o.InstructorID),
		RoomName:       s.RoomName(o.RoomID),
	}
}

func (s *Service) Views(list []domain.ClassOffering) []OfferingView {
	out := make([]OfferingView, 0, len(list))
	for _, o := range list {
		out = append(out, s.View(o))
	}
	return out
}
