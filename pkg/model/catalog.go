package model

import (
	"slices"

	"github.com/samber/lo"
)

const DefaultLessonsPerSubject uint64 = 2

type Room struct {
	Id       uint64
	Name     string
	Capacity uint64 // Zero means any section fits
}

type Subject struct {
	Id   uint64
	Name string
}

type Section struct {
	Id       uint64
	Name     string
	Size     uint64   // Zero means the section fits any room
	Subjects []uint64 // Required subjects in curriculum order
}

type Teacher struct {
	Id       uint64
	Name     string
	Subjects []uint64 // Subjects the teacher is qualified for
}

// Demand is one required session instance: the Instance-th lesson slot of the catalog, to be placed by a candidate.
type Demand struct {
	Instance uint64
	Section  uint64
	Subject  uint64
	Teacher  uint64
}

// Catalog is the static problem definition. It is built once through NewCatalog and only read afterwards; ids are
// dense indices into the corresponding slices.
type Catalog struct {
	Rooms    []Room
	Subjects []Subject
	Sections []Section
	Teachers []Teacher

	Days              uint64
	SlotsPerDay       uint64
	LessonsPerSubject uint64 // Session instances per required subject per week

	MaxClassesPerTeacherPerDay     uint64 // Zero means unbounded
	MaxActiveDaysPerTeacherPerWeek uint64 // Zero means unbounded

	subjectTeachers map[uint64]uint64 // Cached first-match teacher per required subject
	demands         []Demand
	validated       bool              // Set only by NewCatalog
}

// NewCatalog validates the catalog shape, resolves a teacher for every required subject and precomputes the demand
// list. Any failure is a *ConfigurationError.
func NewCatalog(catalog Catalog) (*Catalog, error) {
	if len(catalog.Rooms) == 0 {
		return nil, configurationErrorf("at least one room is required")
	} else if catalog.Days == 0 {
		return nil, configurationErrorf("at least one day is required")
	} else if catalog.SlotsPerDay == 0 {
		return nil, configurationErrorf("at least one slot per day is required")
	}
	if catalog.LessonsPerSubject == 0 {
		catalog.LessonsPerSubject = DefaultLessonsPerSubject
	}

	//** Detach from the caller's slices
	catalog.Rooms = slices.Clone(catalog.Rooms)
	catalog.Subjects = slices.Clone(catalog.Subjects)
	catalog.Sections = lo.Map(catalog.Sections, func(section Section, _ int) Section {
		section.Subjects = slices.Clone(section.Subjects)
		return section
	})
	catalog.Teachers = lo.Map(catalog.Teachers, func(teacher Teacher, _ int) Teacher {
		teacher.Subjects = slices.Clone(teacher.Subjects)
		return teacher
	})

	//** Verify ids are dense indices
	for i, room := range catalog.Rooms {
		if room.Id != uint64(i) {
			return nil, configurationErrorf("room \"%v\" has id %v at position %v", room.Name, room.Id, i)
		}
	}
	for i, subject := range catalog.Subjects {
		if subject.Id != uint64(i) {
			return nil, configurationErrorf("subject \"%v\" has id %v at position %v", subject.Name, subject.Id, i)
		}
	}
	for i, section := range catalog.Sections {
		if section.Id != uint64(i) {
			return nil, configurationErrorf("section \"%v\" has id %v at position %v", section.Name, section.Id, i)
		}
		if subject, ok := lo.Find(section.Subjects, catalog.unknownSubject); ok {
			return nil, configurationErrorf("section \"%v\" requires unknown subject %v", section.Name, subject)
		}
	}
	for i, teacher := range catalog.Teachers {
		if teacher.Id != uint64(i) {
			return nil, configurationErrorf("teacher \"%v\" has id %v at position %v", teacher.Name, teacher.Id, i)
		}
		if subject, ok := lo.Find(teacher.Subjects, catalog.unknownSubject); ok {
			return nil, configurationErrorf("teacher \"%v\" is qualified for unknown subject %v", teacher.Name, subject)
		}
	}

	//** Resolve teachers
	catalog.subjectTeachers = make(map[uint64]uint64)
	for _, section := range catalog.Sections {
		for _, subject := range section.Subjects {
			if _, ok := catalog.subjectTeachers[subject]; ok {
				continue
			}
			teacher, ok := lo.Find(catalog.Teachers, func(teacher Teacher) bool {
				return slices.Contains(teacher.Subjects, subject)
			})
			if !ok {
				return nil, configurationErrorf("no teacher is qualified for subject \"%v\" required by section \"%v\"", catalog.Subjects[subject].Name, section.Name)
			}
			catalog.subjectTeachers[subject] = teacher.Id
		}
	}

	//** Build demands
	catalog.demands = make([]Demand, 0)
	for _, section := range catalog.Sections {
		for _, subject := range section.Subjects {
			for range catalog.LessonsPerSubject {
				catalog.demands = append(catalog.demands, Demand{
					Instance: uint64(len(catalog.demands)),
					Section:  section.Id,
					Subject:  subject,
					Teacher:  catalog.subjectTeachers[subject],
				})
			}
		}
	}

	catalog.validated = true
	return &catalog, nil
}

// Validated reports whether the catalog was built through NewCatalog. A catalog assembled by hand has no resolved
// teachers nor demands and cannot be scheduled.
func (catalog *Catalog) Validated() bool {
	return catalog != nil && catalog.validated
}

// ResolveTeacher returns the first teacher, in catalog order, qualified for the subject. Only subjects required by
// some section are resolvable.
func (catalog *Catalog) ResolveTeacher(subject uint64) (uint64, bool) {
	teacher, ok := catalog.subjectTeachers[subject]
	return teacher, ok
}

// Demands returns the ordered required session instances. The returned slice must not be modified.
func (catalog *Catalog) Demands() []Demand {
	return catalog.demands
}

// TargetSessions is the length of a candidate in which every demand got placed.
func (catalog *Catalog) TargetSessions() int {
	return len(catalog.demands)
}

// Fits checks whether the section's size is smaller than or equal to the room's capacity
func (catalog *Catalog) Fits(section, room uint64) bool {
	size, capacity := catalog.Sections[section].Size, catalog.Rooms[room].Capacity
	return size == 0 || capacity == 0 || capacity >= size
}

func (catalog *Catalog) unknownSubject(subject uint64) bool {
	return subject >= uint64(len(catalog.Subjects))
}
