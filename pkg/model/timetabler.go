package model

import "context"

type Timetabler interface {
	Build(
		ctx context.Context,
		catalog *Catalog,
	) (timetable Candidate, report Report, err error)

	Verify(
		timetable Candidate,
		catalog *Catalog,
	) bool
}
