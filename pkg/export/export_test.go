package export

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"

	"github.com/limaJavier/genetic-timetabling/pkg/model"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testCatalog(t *testing.T) *model.Catalog {
	t.Helper()
	catalog, err := model.ProcessRawCatalog(model.RawCatalog{
		Rooms:       []model.RawRoom{{Name: "A"}, {Name: "B"}},
		Days:        2,
		SlotsPerDay: 2,
		Sections: []model.RawSection{
			{Name: "64_A", Subjects: []string{"ENG101"}},
			{Name: "64_B", Subjects: []string{"CSE112"}},
		},
		Teachers: []model.RawTeacher{
			{Name: "SAH", Subjects: []string{"ENG101"}},
			{Name: "SIK", Subjects: []string{"CSE112"}},
		},
	})
	require.NoError(t, err)
	return catalog
}

func testTimetable() model.Candidate {
	return model.Candidate{
		{Instance: 2, Section: 1, Subject: 1, Teacher: 1, Room: 0, Day: 1, Slot: 0},
		{Instance: 0, Section: 0, Subject: 0, Teacher: 0, Room: 1, Day: 0, Slot: 1},
		{Instance: 1, Section: 0, Subject: 0, Teacher: 0, Room: 1, Day: 1, Slot: 0},
		{Instance: 3, Section: 1, Subject: 1, Teacher: 1, Room: 0, Day: 0, Slot: 1},
	}
}

func TestRows(t *testing.T) {
	//** Arrange
	catalog := testCatalog(t)
	timetable := testTimetable()
	original := timetable.Clone()

	//** Act
	rows := Rows(timetable, catalog)

	//** Assert
	assert.Equal(t, []Row{
		{Day: "Monday", Slot: 1, Room: "A", Section: "64_B", Subject: "CSE112", Teacher: "SIK", Instance: 3},
		{Day: "Monday", Slot: 1, Room: "B", Section: "64_A", Subject: "ENG101", Teacher: "SAH", Instance: 0},
		{Day: "Tuesday", Slot: 0, Room: "A", Section: "64_B", Subject: "CSE112", Teacher: "SIK", Instance: 2},
		{Day: "Tuesday", Slot: 0, Room: "B", Section: "64_A", Subject: "ENG101", Teacher: "SAH", Instance: 1},
	}, rows)
	assert.Equal(t, original, timetable)
}

func TestDayName(t *testing.T) {
	assert.Equal(t, "Monday", DayName(0))
	assert.Equal(t, "Sunday", DayName(6))
	assert.Equal(t, "Day 8", DayName(7))
}

func TestWriteCSV(t *testing.T) {
	//** Arrange
	var out bytes.Buffer

	//** Act
	err := WriteCSV(&out, testTimetable(), testCatalog(t))

	//** Assert
	require.NoError(t, err)
	assert.Equal(t, strings.Join([]string{
		"day,slot,room,section,subject,teacher,instance",
		"Monday,1,A,64_B,CSE112,SIK,3",
		"Monday,1,B,64_A,ENG101,SAH,0",
		"Tuesday,0,A,64_B,CSE112,SIK,2",
		"Tuesday,0,B,64_A,ENG101,SAH,1",
	}, "\n")+"\n", out.String())
}

func TestWriteJSON(t *testing.T) {
	//** Arrange
	var out bytes.Buffer
	catalog := testCatalog(t)

	//** Act
	err := WriteJSON(&out, testTimetable()[:2], catalog)

	//** Assert
	require.NoError(t, err)
	perSection := map[string][]SectionEntry{}
	require.NoError(t, json.Unmarshal(out.Bytes(), &perSection))
	assert.Equal(t, map[string][]SectionEntry{
		"64_A": {{Day: "Monday", Slot: 1, Subject: "ENG101", Teacher: "SAH", Room: "B"}},
		"64_B": {{Day: "Tuesday", Slot: 0, Subject: "CSE112", Teacher: "SIK", Room: "A"}},
	}, perSection)
}

func TestWriteJSONEmptySections(t *testing.T) {
	var out bytes.Buffer

	err := WriteJSON(&out, model.Candidate{}, testCatalog(t))

	require.NoError(t, err)
	assert.JSONEq(t, `{"64_A": [], "64_B": []}`, out.String())
}

func TestRenderGrid(t *testing.T) {
	//** Arrange
	catalog := testCatalog(t)

	//** Act
	grid := RenderGrid(testTimetable(), catalog)

	//** Assert
	lines := strings.Split(strings.TrimSuffix(grid, "\n"), "\n")
	// Header, room line and one line per slot for each day
	assert.Len(t, lines, 2*(2+2))
	assert.Contains(t, lines[0], "Monday")
	assert.Equal(t, "slot   A           B", strings.TrimRight(lines[1], " "))
	assert.Equal(t, "0      -           -", strings.TrimRight(lines[2], " "))
	assert.Equal(t, "1      64_B/CSE112 64_A/ENG101", strings.TrimRight(lines[3], " "))
	assert.Contains(t, lines[4], "Tuesday")
	assert.Equal(t, "0      64_B/CSE112 64_A/ENG101", strings.TrimRight(lines[6], " "))
}

func TestRenderGridClash(t *testing.T) {
	catalog := testCatalog(t)
	timetable := model.Candidate{
		{Instance: 0, Section: 0, Subject: 0, Teacher: 0, Room: 0, Day: 0, Slot: 0},
		{Instance: 2, Section: 1, Subject: 1, Teacher: 1, Room: 0, Day: 0, Slot: 0},
	}

	grid := RenderGrid(timetable, catalog)

	assert.Contains(t, grid, "64_A/ENG101+64_B/CSE112")
}
