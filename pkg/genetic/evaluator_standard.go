package genetic

import "github.com/limaJavier/genetic-timetabling/pkg/model"

type fitnessEvaluatorStandard struct {
	catalog *model.Catalog
	indexer indexer
	weights Weights
}

func (evaluator *fitnessEvaluatorStandard) Evaluate(candidate model.Candidate) model.Evaluation {
	var evaluation model.Evaluation

	rooms := make(map[uint64]bool, len(candidate))
	teachers := make(map[uint64]bool, len(candidate))
	sections := make(map[uint64]bool, len(candidate))
	teacherDaily := make(map[[2]uint64]uint64)
	teacherDays := make(map[uint64]map[uint64]bool)

	previousBySection := make(map[uint64]model.Session)
	previousByTeacher := make(map[uint64]model.Session)

	for _, session := range candidate {
		//** Hard constraints
		roomKey := evaluator.indexer.Index(session.Room, session.Day, session.Slot)
		teacherKey := evaluator.indexer.Index(session.Teacher, session.Day, session.Slot)
		sectionKey := evaluator.indexer.Index(session.Section, session.Day, session.Slot)

		if rooms[roomKey] {
			evaluation.RoomClashes++
		}
		if teachers[teacherKey] {
			evaluation.TeacherClashes++
		}
		if sections[sectionKey] {
			evaluation.SectionClashes++
		}
		if !evaluator.catalog.Fits(session.Section, session.Room) {
			evaluation.CapacityOverflow++
		}
		rooms[roomKey], teachers[teacherKey], sections[sectionKey] = true, true, true

		teacherDaily[[2]uint64{session.Teacher, session.Day}]++
		if _, ok := teacherDays[session.Teacher]; !ok {
			teacherDays[session.Teacher] = make(map[uint64]bool)
		}
		teacherDays[session.Teacher][session.Day] = true

		//** Soft constraints (consecutive by placement index)
		if previous, ok := previousBySection[session.Section]; ok {
			if previous.Day != session.Day {
				evaluation.Scatter++
			} else if distance(previous.Slot, session.Slot) == 1 {
				evaluation.BackToBack++
			}
		}
		if previous, ok := previousByTeacher[session.Teacher]; ok {
			if previous.Day == session.Day && distance(previous.Slot, session.Slot) > 1 {
				evaluation.TeacherGaps++
			}
		}
		previousBySection[session.Section] = session
		previousByTeacher[session.Teacher] = session
	}

	//** Workload caps
	if maxDaily := evaluator.catalog.MaxClassesPerTeacherPerDay; maxDaily > 0 {
		for _, sessions := range teacherDaily {
			if sessions > maxDaily {
				evaluation.DailyOverload += sessions - maxDaily
			}
		}
	}
	if maxDays := evaluator.catalog.MaxActiveDaysPerTeacherPerWeek; maxDays > 0 {
		for _, days := range teacherDays {
			if activeDays := uint64(len(days)); activeDays > maxDays {
				evaluation.WeeklyOverextent += activeDays - maxDays
			}
		}
	}

	penalty := evaluation.Hard() +
		evaluator.weights.BackToBack*evaluation.BackToBack +
		evaluator.weights.Scatter*evaluation.Scatter +
		evaluator.weights.TeacherGap*evaluation.TeacherGaps
	evaluation.Score = -int64(penalty)

	return evaluation
}

func (evaluator *fitnessEvaluatorStandard) Score(candidate model.Candidate) int64 {
	return evaluator.Evaluate(candidate).Score
}

func distance(a, b uint64) uint64 {
	if a > b {
		return a - b
	}
	return b - a
}
