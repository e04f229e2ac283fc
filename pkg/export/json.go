package export

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

// SectionEntry is one session in the timetable of a section
type SectionEntry struct {
	Day     string `json:"day"`
	Slot    uint64 `json:"slot"`
	Subject string `json:"subject"`
	Teacher string `json:"teacher"`
	Room    string `json:"room"`
}

// PerSection groups the timetable by section name. Sections without sessions get an empty list.
func PerSection(timetable model.Candidate, catalog *model.Catalog) map[string][]SectionEntry {
	perSection := make(map[string][]SectionEntry, len(catalog.Sections))
	for _, section := range catalog.Sections {
		perSection[section.Name] = make([]SectionEntry, 0)
	}

	for _, row := range Rows(timetable, catalog) {
		perSection[row.Section] = append(perSection[row.Section], SectionEntry{
			Day:     row.Day,
			Slot:    row.Slot,
			Subject: row.Subject,
			Teacher: row.Teacher,
			Room:    row.Room,
		})
	}
	return perSection
}

func WriteJSON(out io.Writer, timetable model.Candidate, catalog *model.Catalog) error {
	encoder := json.NewEncoder(out)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(PerSection(timetable, catalog)); err != nil {
		return fmt.Errorf("cannot write json timetable: %w", err)
	}
	return nil
}
