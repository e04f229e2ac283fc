package export

import (
	"fmt"
	"strings"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/samber/lo"
)

const emptyCell = "-"

// RenderGrid draws one table per day with slots as lines and rooms as columns. A cell holds "section/subject";
// sessions clashing on the same room and time are joined with "+".
func RenderGrid(timetable model.Candidate, catalog *model.Catalog) string {
	cells := make(map[[3]uint64][]string)
	for _, session := range sorted(timetable) {
		key := [3]uint64{session.Day, session.Slot, session.Room}
		cells[key] = append(cells[key], fmt.Sprintf("%v/%v",
			catalog.Sections[session.Section].Name,
			catalog.Subjects[session.Subject].Name,
		))
	}

	// Every column is as wide as its widest cell or room name
	widths := lo.Map(catalog.Rooms, func(room model.Room, _ int) int { return len(room.Name) })
	for key, names := range cells {
		widths[key[2]] = max(widths[key[2]], len(strings.Join(names, "+")))
	}

	var builder strings.Builder
	for day := range catalog.Days {
		name := DayName(day)
		fmt.Fprintf(&builder, "%s %s %s\n", strings.Repeat("-", 8), name, strings.Repeat("-", 8))

		fmt.Fprintf(&builder, "%-6s", "slot")
		for _, room := range catalog.Rooms {
			fmt.Fprintf(&builder, " %-*s", widths[room.Id], room.Name)
		}
		builder.WriteString("\n")

		for slot := range catalog.SlotsPerDay {
			fmt.Fprintf(&builder, "%-6d", slot)
			for _, room := range catalog.Rooms {
				cell := emptyCell
				if names, ok := cells[[3]uint64{day, slot, room.Id}]; ok {
					cell = strings.Join(names, "+")
				}
				fmt.Fprintf(&builder, " %-*s", widths[room.Id], cell)
			}
			builder.WriteString("\n")
		}
	}
	return builder.String()
}
