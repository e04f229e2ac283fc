package export

import (
	"fmt"
	"io"

	"github.com/gocarina/gocsv"
	"github.com/limaJavier/genetic-timetabling/pkg/model"
)

// WriteCSV writes one line per session, with a header, in Rows order
func WriteCSV(out io.Writer, timetable model.Candidate, catalog *model.Catalog) error {
	rows := Rows(timetable, catalog)
	if err := gocsv.Marshal(&rows, out); err != nil {
		return fmt.Errorf("cannot write csv timetable: %w", err)
	}
	return nil
}
