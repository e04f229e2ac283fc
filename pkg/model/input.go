package model

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/mitchellh/mapstructure"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

type RawRoom struct {
	Name     string `validate:"required"`
	Capacity uint64
}

type RawSection struct {
	Name     string   `validate:"required"`
	Size     uint64
	Subjects []string `validate:"dive,required"`
}

type RawTeacher struct {
	Name     string   `validate:"required"`
	Subjects []string `validate:"dive,required"`
}

// RawCatalog is the name-based catalog document, as read from JSON or YAML.
type RawCatalog struct {
	Rooms       []RawRoom    `validate:"required,min=1,dive"`
	Sections    []RawSection `validate:"dive"`
	Teachers    []RawTeacher `validate:"dive"`
	Days        uint64       `validate:"min=1"`
	SlotsPerDay uint64       `validate:"min=1"`

	LessonsPerSubject              uint64
	MaxClassesPerTeacherPerDay     uint64
	MaxActiveDaysPerTeacherPerWeek uint64
}

var validate = validator.New()

func CatalogFromJson(file string) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}
	var inputJson map[string]any
	if err := json.Unmarshal(bytes, &inputJson); err != nil {
		return nil, &ConfigurationError{Reason: "malformed json", Err: err}
	}
	return decodeCatalog(inputJson)
}

func CatalogFromYaml(file string) (*Catalog, error) {
	bytes, err := os.ReadFile(file)
	if err != nil {
		return nil, fmt.Errorf("cannot read catalog file: %w", err)
	}
	var inputYaml map[string]any
	if err := yaml.Unmarshal(bytes, &inputYaml); err != nil {
		return nil, &ConfigurationError{Reason: "malformed yaml", Err: err}
	}
	return decodeCatalog(inputYaml)
}

// CatalogFromFile picks the decoder from the file extension
func CatalogFromFile(file string) (*Catalog, error) {
	switch extension := strings.ToLower(filepath.Ext(file)); extension {
	case ".json":
		return CatalogFromJson(file)
	case ".yaml", ".yml":
		return CatalogFromYaml(file)
	default:
		return nil, configurationErrorf("unknown catalog format \"%v\"", extension)
	}
}

func decodeCatalog(document map[string]any) (*Catalog, error) {
	var rawCatalog RawCatalog
	if err := mapstructure.Decode(document, &rawCatalog); err != nil {
		return nil, &ConfigurationError{Reason: "unexpected document shape", Err: err}
	}
	return ProcessRawCatalog(rawCatalog)
}

// ProcessRawCatalog validates the document and translates names into dense ids. Subjects get ids in order of first
// appearance, sections' curricula first and then teachers' qualifications.
func ProcessRawCatalog(rawCatalog RawCatalog) (*Catalog, error) {
	if err := validate.Struct(rawCatalog); err != nil {
		return nil, &ConfigurationError{Reason: "catalog validation failed", Err: err}
	}

	//** Check names are unique per entity
	for entity, names := range map[string][]string{
		"room":    lo.Map(rawCatalog.Rooms, func(room RawRoom, _ int) string { return room.Name }),
		"section": lo.Map(rawCatalog.Sections, func(section RawSection, _ int) string { return section.Name }),
		"teacher": lo.Map(rawCatalog.Teachers, func(teacher RawTeacher, _ int) string { return teacher.Name }),
	} {
		if duplicates := lo.FindDuplicates(names); len(duplicates) > 0 {
			return nil, configurationErrorf("duplicate %v names: %v", entity, duplicates)
		}
	}

	//** Collect subjects
	subjectIds := make(map[string]uint64)
	subjects := make([]Subject, 0)
	subjectId := func(name string) uint64 {
		id, ok := subjectIds[name]
		if !ok {
			id = uint64(len(subjects))
			subjectIds[name] = id
			subjects = append(subjects, Subject{Id: id, Name: name})
		}
		return id
	}

	catalog := Catalog{
		Days:                           rawCatalog.Days,
		SlotsPerDay:                    rawCatalog.SlotsPerDay,
		LessonsPerSubject:              rawCatalog.LessonsPerSubject,
		MaxClassesPerTeacherPerDay:     rawCatalog.MaxClassesPerTeacherPerDay,
		MaxActiveDaysPerTeacherPerWeek: rawCatalog.MaxActiveDaysPerTeacherPerWeek,
	}

	catalog.Rooms = lo.Map(rawCatalog.Rooms, func(room RawRoom, i int) Room {
		return Room{Id: uint64(i), Name: room.Name, Capacity: room.Capacity}
	})
	catalog.Sections = lo.Map(rawCatalog.Sections, func(section RawSection, i int) Section {
		return Section{
			Id:       uint64(i),
			Name:     section.Name,
			Size:     section.Size,
			Subjects: lo.Map(section.Subjects, func(name string, _ int) uint64 { return subjectId(name) }),
		}
	})
	catalog.Teachers = lo.Map(rawCatalog.Teachers, func(teacher RawTeacher, i int) Teacher {
		return Teacher{
			Id:       uint64(i),
			Name:     teacher.Name,
			Subjects: lo.Map(teacher.Subjects, func(name string, _ int) uint64 { return subjectId(name) }),
		}
	})
	catalog.Subjects = subjects

	return NewCatalog(catalog)
}
