package schedule

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"go-tutorcenter/internal/shared/apperror"
)

// Slot is one weekly occurrence of a class. DayOfWeek 0 is Sunday.
type Slot struct {
	DayOfWeek int    `json:"day_of_week"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
}

// Conflict holds the indexes of two overlapping slots, A < B.
type Conflict struct {
	A int `json:"a"`
	B int `json:"b"`
}

var ErrInvalidSlot = apperror.NewField(
	apperror.CodeInvalidInput,
	"schedules",
	"schedule slot must have day 0-6 and HH:MM times with start before end",
	http.StatusBadRequest,
)

// ParseClock converts "HH:MM" into minutes after midnight.
func ParseClock(v string) (int, error) {
	parts := strings.Split(v, ":")
	if len(parts) != 2 || len(parts[0]) != 2 || len(parts[1]) != 2 {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	h, err := strconv.Atoi(parts[0])
	if err != nil || h < 0 || h > 23 {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	m, err := strconv.Atoi(parts[1])
	if err != nil || m < 0 || m > 59 {
		return 0, fmt.Errorf("invalid clock %q", v)
	}
	return h*60 + m, nil
}

func (s Slot) bounds() (int, int, error) {
	start, err := ParseClock(s.StartTime)
	if err != nil {
		return 0, 0, err
	}
	end, err := ParseClock(s.EndTime)
	if err != nil {
		return 0, 0, err
	}
	return start, end, nil
}

// Validate checks one slot in isolation.
func (s Slot) Validate() error {
	if s.DayOfWeek < 0 || s.DayOfWeek > 6 {
		return ErrInvalidSlot
	}
	start, end, err := s.bounds()
	if err != nil || start >= end {
		return ErrInvalidSlot
	}
	return nil
}

// FindConflicts returns every pair of slots on the same day whose time
// ranges overlap. Touching ranges (10:00-11:00, 11:00-12:00) do not
// conflict. Slots with unparsable times are ignored.
func FindConflicts(slots []Slot) []Conflict {
	type span struct {
		day, start, end int
		ok              bool
	}
	spans := make([]span, len(slots))
	for i, s := range slots {
		start, end, err := s.bounds()
		spans[i] = span{day: s.DayOfWeek, start: start, end: end, ok: err == nil}
	}

	conflicts := []Conflict{}
	for i := 0; i < len(spans); i++ {
		if !spans[i].ok {
			continue
		}
		for j := i + 1; j < len(spans); j++ {
			if !spans[j].ok || spans[i].day != spans[j].day {
				continue
			}
			if spans[i].start < spans[j].end && spans[j].start < spans[i].end {
				conflicts = append(conflicts, Conflict{A: i, B: j})
			}
		}
	}
	return conflicts
}

var dayNames = [...]string{"Sunday", "Monday", "Tuesday", "Wednesday", "Thursday", "Friday", "Saturday"}

// Describe renders a conflict as a human readable warning.
func Describe(slots []Slot, c Conflict) string {
	a, b := slots[c.A], slots[c.B]
	day := strconv.Itoa(a.DayOfWeek)
	if a.DayOfWeek >= 0 && a.DayOfWeek < len(dayNames) {
		day = dayNames[a.DayOfWeek]
	}
	return fmt.Sprintf("%s %s-%s overlaps %s-%s", day, a.StartTime, a.EndTime, b.StartTime, b.EndTime)
}
