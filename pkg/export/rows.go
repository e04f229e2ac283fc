package export

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

var Days = map[uint64]string{
	0: "Monday",
	1: "Tuesday",
	2: "Wednesday",
	3: "Thursday",
	4: "Friday",
	5: "Saturday",
	6: "Sunday",
}

func DayName(day uint64) string {
	if name, ok := Days[day]; ok {
		return name
	}
	return fmt.Sprintf("Day %v", day+1)
}

// Row is one session of a timetable with every id replaced by its name
type Row struct {
	Day      string `csv:"day"`
	Slot     uint64 `csv:"slot"`
	Room     string `csv:"room"`
	Section  string `csv:"section"`
	Subject  string `csv:"subject"`
	Teacher  string `csv:"teacher"`
	Instance uint64 `csv:"instance"`
}

// Rows flattens the timetable sorted by day, slot and room. The timetable is not modified.
func Rows(timetable model.Candidate, catalog *model.Catalog) []Row {
	return lo.Map(sorted(timetable), func(session model.Session, _ int) Row {
		return Row{
			Day:      DayName(session.Day),
			Slot:     session.Slot,
			Room:     catalog.Rooms[session.Room].Name,
			Section:  catalog.Sections[session.Section].Name,
			Subject:  catalog.Subjects[session.Subject].Name,
			Teacher:  catalog.Teachers[session.Teacher].Name,
			Instance: session.Instance,
		}
	})
}

func sorted(timetable model.Candidate) model.Candidate {
	sessions := timetable.Clone()
	slices.SortStableFunc(sessions, func(a, b model.Session) int {
		return cmp.Or(
			cmp.Compare(a.Day, b.Day),
			cmp.Compare(a.Slot, b.Slot),
			cmp.Compare(a.Room, b.Room),
		)
	})
	return sessions
}
