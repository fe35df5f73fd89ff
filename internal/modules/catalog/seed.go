package catalog

import (
	"time"

	"hoodbook/internal/domain"
)

var seedInstructors = []domain.Instructor{
	{ID: "eric", Name: "ERIC"},
	{ID: "jiaxin", Name: "Jia Xin"},
	{ID: "darren", Name: "Darren"},
	{ID: "carmen", Name: "Carmen"},
	{ID: "karyn", Name: "Karyn"},
	{ID: "sam", Name: "Sam"},
	{ID: "leony", Name: "Leony"},
	{ID: "chenlynn", Name: "Chen Lynn"},
	{ID: "jay", Name: "Jay"},
	{ID: "nigel", Name: "Nigel"},
	{ID: "rueben", Name: "Rueben"},
	{ID: "lohjie", Name: "Loh Jie"},
	{ID: "poh", Name: "Poh"},
}

var seedRooms = []domain.Room{
	{ID: "A", Name: "Studio A"},
	{ID: "B", Name: "Studio B"},
}

func offering(id, title, level, style, instructorID string, durationMin, capacity int, price int64, roomID, slot string, day time.Weekday) domain.ClassOffering {
	return domain.ClassOffering{
		ID:           id,
		Title:        title,
		Level:        level,
		Style:        style,
		InstructorID: instructorID,
		DurationMin:  durationMin,
		Capacity:     capacity,
		Price:        price,
		RoomID:       roomID,
		Slots:        []string{slot},
		Weekdays:     []time.Weekday{day},
	}
}

var seedOfferings = []domain.ClassOffering{
	offering("sdfc_wed_eric", "Street Dance Foundation Course", "Foundation", "Street Foundation", "eric", 60, 25, 55, "A", "19:30–20:30", time.Wednesday),
	offering("hiphop_wed_eric", "Hip Hop (Drop-in)", "Open Level", "Hip Hop", "eric", 60, 25, 70, "A", "20:30–21:30", time.Wednesday),
	offering("choreo_mon_leony", "Choreography", "Intermediate", "Choreography", "leony", 60, 20, 70, "B", "20:30–21:30", time.Monday),
	offering("choreo_mon_jay", "Choreography", "Intermediate", "Choreography", "jay", 60, 20, 70, "B", "21:30–22:30", time.Monday),
	offering("thda_course_mon_jiaxin", "THDA Dance Course (8W)", "Course", "Course", "jiaxin", 120, 25, 600, "A", "21:30–23:30", time.Monday),
	offering("choreo_tue_darren", "Choreography", "Intermediate", "Choreography", "darren", 60, 20, 70, "A", "20:30–21:30", time.Tuesday),
	offering("kpop_tue_karyn", "K-pop Cover", "Beginners", "K-pop Cover", "karyn", 60, 20, 70, "A", "21:30–22:30", time.Tuesday),
	offering("waacking_tue_chenlynn", "Waacking", "Beginners", "Waacking", "chenlynn", 60, 20, 70, "B", "20:30–21:30", time.Tuesday),
	offering("choreo_tue_nigel", "Choreography", "Intermediate", "Choreography", "nigel", 60, 20, 70, "B", "21:30–22:30", time.Tuesday),
	offering("choreo_wed_jiaxin", "Choreography", "Beginners", "Choreography", "jiaxin", 60, 20, 70, "B", "20:30–21:30", time.Wednesday),
	offering("popping_thu_carmen", "Popping", "Open Level", "Popping", "carmen", 60, 20, 70, "A", "20:30–21:30", time.Thursday),
	offering("groove_thu_rueben", "Groove & Exploration", "Introduction", "Groove", "rueben", 60, 20, 70, "B", "20:30–21:30", time.Thursday),
	offering("krump_fri_sam", "Krump", "Beginners", "Krump", "sam", 60, 20, 70, "A", "21:30–22:30", time.Friday),
	offering("choreo_fri_rueben", "Choreography", "Intermediate", "Choreography", "rueben", 60, 20, 70, "B", "21:30–22:30", time.Friday),
	offering("breaking_sat_lohjie", "Breaking", "Beginners", "Breaking", "lohjie", 60, 20, 70, "A", "12:00–13:00", time.Saturday),
	offering("streetjazz_sat_poh", "Street Jazz", "Open Level", "Street Jazz", "poh", 60, 20, 70, "B", "15:00–16:00", time.Saturday),
}
