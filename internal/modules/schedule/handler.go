package schedule

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"hoodbook/internal/domain"
	"hoodbook/internal/modules/catalog"
	"hoodbook/internal/pkg/response"
)

type Handler struct {
	catalog *catalog.Service
	loc     *time.Location
	now     func() time.Time
}

func NewHandler(catalog *catalog.Service, loc *time.Location) *Handler {
	return &Handler{catalog: catalog, loc: loc, now: time.Now}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/schedule", h.GetWeek)
}

// GetWeek handles GET /schedule?week=YYYY-MM-DD&style=&instructor=&q=
func (h *Handler) GetWeek(c *gin.Context) {
	ref := h.now().In(h.loc)
	if raw := strings.TrimSpace(c.Query("week")); raw != "" {
		d, err := time.ParseInLocation(domain.DateLayout, raw, h.loc)
		if err != nil {
			response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "week must be YYYY-MM-DD")
			return
		}
		ref = d
	}

	filters := Filters{
		Style:      c.Query("style"),
		Instructor: c.Query("instructor"),
		Query:      c.Query("q"),
	}

	response.Success(c, http.StatusOK, h.buildWeek(ref, filters))
}

func (h *Handler) buildWeek(ref time.Time, filters Filters) WeekResponse {
	days := make([]DayColumn, 0, 7)
	for day, offerings := range Project(ref, filters, h.catalog.Offerings()) {
		days = append(days, DayColumn{
			Date:      day.Format(domain.DateLayout),
			Weekday:   day.Format("Mon"),
			DayOfWeek: int(day.Weekday()),
			Offerings: h.catalog.Views(offerings),
		})
	}

	start := StartOfWeek(ref)
	end := start.AddDate(0, 0, 6)
	return WeekResponse{
		Start:    start.Format(domain.DateLayout),
		End:      end.Format(domain.DateLayout),
		Label:    start.Format("Jan 2") + " – " + end.Format("Jan 2"),
		PrevWeek: start.AddDate(0, 0, -7).Format(domain.DateLayout),
		NextWeek: start.AddDate(0, 0, 7).Format(domain.DateLayout),
		Days:     days,
	}
}
