package salarycalc_test

import (
	"testing"
	"time"

	"go-tutorcenter/internal/salarycalc"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func day(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func intPtr(v int) *int {
	return &v
}

func rule(min int, rate string, from string) salarycalc.RateRule {
	return salarycalc.RateRule{
		ID:            uuid.New(),
		MinStudents:   min,
		RatePerLesson: decimal.RequireFromString(rate),
		EffectiveFrom: day(from),
	}
}

func lessons(count *int, dates ...string) []salarycalc.LessonFact {
	out := make([]salarycalc.LessonFact, len(dates))
	for i, d := range dates {
		out[i] = salarycalc.LessonFact{LessonDate: day(d), StudentCount: count}
	}
	return out
}

func assertAmount(t *testing.T, want string, got decimal.Decimal) {
	t.Helper()
	assert.Equal(t, want, got.StringFixed(2))
}

func TestComputeBreakdown_SingleTier(t *testing.T) {
	classID := uuid.New()
	classes := []salarycalc.ClassFacts{{
		ClassID:        classID,
		ClassName:      "Math A",
		ActiveStudents: 8,
		Lessons: lessons(intPtr(8),
			"2026-01-01", "2026-01-02", "2026-01-03", "2026-01-04", "2026-01-05",
			"2026-01-06", "2026-01-07", "2026-01-08", "2026-01-09", "2026-01-10"),
	}}
	rules := []salarycalc.RateRule{rule(1, "500", "2025-01-01")}

	b := salarycalc.ComputeBreakdown(classes, rules)

	assert.Empty(t, b.Warnings)
	if assert.Len(t, b.Items, 1) {
		item := b.Items[0]
		assert.Equal(t, classID, item.ClassID)
		assert.Equal(t, "Math A", item.ClassName)
		assert.Equal(t, 10, item.LessonsCount)
		assert.Equal(t, 8, item.ActiveStudents)
		assertAmount(t, "500.00", item.RateApplied)
		assertAmount(t, "5000.00", item.Amount)
		assert.Equal(t, 8, *item.StudentCountAtLesson)

		snapshot := item.RuleSnapshot.Data()
		assert.Equal(t, 1, snapshot.MinStudents)
		assert.Equal(t, "2025-01-01", snapshot.EffectiveFrom)
		assertAmount(t, "500.00", snapshot.RatePerLesson)
	}
	assertAmount(t, "5000.00", b.Total())
}

func TestComputeBreakdown_TieBreakLatestEffectiveDate(t *testing.T) {
	rules := []salarycalc.RateRule{
		rule(0, "100", "2025-01-01"),
		rule(5, "200", "2025-01-01"),
		rule(5, "250", "2025-06-01"),
		rule(5, "300", "2026-03-01"),
	}
	classes := []salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "Physics",
		ActiveStudents: 6,
		Lessons:        lessons(intPtr(6), "2026-01-10", "2026-01-17"),
	}}

	b := salarycalc.ComputeBreakdown(classes, rules)

	if assert.Len(t, b.Items, 1) {
		assertAmount(t, "250.00", b.Items[0].RateApplied)
		assertAmount(t, "500.00", b.Items[0].Amount)
		assert.Equal(t, "2025-06-01", b.Items[0].RuleSnapshot.Data().EffectiveFrom)
	}
}

func TestComputeBreakdown_RuleBecomesEffectiveMidPeriod(t *testing.T) {
	rules := []salarycalc.RateRule{
		rule(1, "100", "2025-01-01"),
		rule(1, "120", "2026-01-15"),
	}
	classes := []salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "Chemistry",
		ActiveStudents: 3,
		Lessons:        lessons(intPtr(3), "2026-01-08", "2026-01-15", "2026-01-22"),
	}}

	b := salarycalc.ComputeBreakdown(classes, rules)

	if assert.Len(t, b.Items, 2) {
		assert.Equal(t, 1, b.Items[0].LessonsCount)
		assertAmount(t, "100.00", b.Items[0].RateApplied)
		assert.Equal(t, 2, b.Items[1].LessonsCount)
		assertAmount(t, "240.00", b.Items[1].Amount)
	}
	assertAmount(t, "340.00", b.Total())
}

func TestComputeBreakdown_SkipsClassBelowEveryTier(t *testing.T) {
	rules := []salarycalc.RateRule{rule(5, "300", "2025-01-01")}
	classes := []salarycalc.ClassFacts{
		{
			ClassID:        uuid.New(),
			ClassName:      "Biology",
			ActiveStudents: 2,
			Lessons:        lessons(nil, "2026-01-05", "2026-01-12"),
		},
		{
			ClassID:        uuid.New(),
			ClassName:      "History",
			ActiveStudents: 7,
			Lessons:        lessons(nil, "2026-01-06"),
		},
	}

	b := salarycalc.ComputeBreakdown(classes, rules)

	assert.Equal(t, []string{"Biology skipped (2 students)"}, b.Warnings)
	if assert.Len(t, b.Items, 1) {
		assert.Equal(t, "History", b.Items[0].ClassName)
		assert.Nil(t, b.Items[0].StudentCountAtLesson)
	}
}

func TestComputeBreakdown_DropsUnqualifiedLessons(t *testing.T) {
	rules := []salarycalc.RateRule{rule(5, "300", "2025-01-01")}
	classes := []salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "English",
		ActiveStudents: 6,
		Lessons: []salarycalc.LessonFact{
			{LessonDate: day("2026-01-05"), StudentCount: intPtr(6)},
			{LessonDate: day("2026-01-06"), StudentCount: intPtr(2)},
			{LessonDate: day("2026-01-07"), StudentCount: intPtr(5)},
		},
	}}

	b := salarycalc.ComputeBreakdown(classes, rules)

	assert.Equal(t, []string{"English: 1 lesson(s) below minimum students"}, b.Warnings)
	if assert.Len(t, b.Items, 1) {
		assert.Equal(t, 2, b.Items[0].LessonsCount)
		assert.Equal(t, 5, *b.Items[0].StudentCountAtLesson)
	}
}

func TestComputeBreakdown_GroupsByTierAndLegacyFlag(t *testing.T) {
	rules := []salarycalc.RateRule{
		rule(1, "100", "2025-01-01"),
		rule(10, "150", "2025-01-01"),
	}
	first := uuid.New()
	second := uuid.New()
	classes := []salarycalc.ClassFacts{
		{
			ClassID:        first,
			ClassName:      "Zoology",
			ActiveStudents: 4,
			Lessons: []salarycalc.LessonFact{
				{LessonDate: day("2026-01-02"), StudentCount: intPtr(12)},
				{LessonDate: day("2026-01-03"), StudentCount: nil},
				{LessonDate: day("2026-01-04"), StudentCount: intPtr(3)},
				{LessonDate: day("2026-01-05"), StudentCount: intPtr(11)},
			},
		},
		{
			ClassID:        second,
			ClassName:      "Art",
			ActiveStudents: 2,
			Lessons:        lessons(intPtr(2), "2026-01-02"),
		},
	}

	b := salarycalc.ComputeBreakdown(classes, rules)

	if assert.Len(t, b.Items, 4) {
		// Classes keep input order, not name order. Tiers ascend within a class.
		assert.Equal(t, first, b.Items[0].ClassID)
		assertAmount(t, "100.00", b.Items[0].RateApplied)
		assert.Equal(t, 3, *b.Items[0].StudentCountAtLesson)

		assert.Equal(t, first, b.Items[1].ClassID)
		assertAmount(t, "100.00", b.Items[1].RateApplied)
		assert.Nil(t, b.Items[1].StudentCountAtLesson)

		assert.Equal(t, first, b.Items[2].ClassID)
		assertAmount(t, "150.00", b.Items[2].RateApplied)
		assert.Equal(t, 2, b.Items[2].LessonsCount)
		assert.Equal(t, 11, *b.Items[2].StudentCountAtLesson)

		assert.Equal(t, second, b.Items[3].ClassID)
	}
	assertAmount(t, "600.00", b.Total())
}

func TestComputeBreakdown_ExactMoney(t *testing.T) {
	rules := []salarycalc.RateRule{rule(0, "333.33", "2025-01-01")}
	classes := []salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "Music",
		ActiveStudents: 1,
		Lessons:        lessons(nil, "2026-01-01", "2026-01-02", "2026-01-03"),
	}}

	b := salarycalc.ComputeBreakdown(classes, rules)

	assertAmount(t, "999.99", b.Total())
}

func TestComputeBreakdown_Deterministic(t *testing.T) {
	rules := []salarycalc.RateRule{
		rule(1, "100", "2025-01-01"),
		rule(5, "140", "2025-01-01"),
	}
	classes := []salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "Geo",
		ActiveStudents: 5,
		Lessons: []salarycalc.LessonFact{
			{LessonDate: day("2026-01-02"), StudentCount: intPtr(6)},
			{LessonDate: day("2026-01-03"), StudentCount: intPtr(2)},
			{LessonDate: day("2026-01-04"), StudentCount: nil},
		},
	}}

	first := salarycalc.ComputeBreakdown(classes, rules)
	second := salarycalc.ComputeBreakdown(classes, rules)

	assert.Equal(t, first, second)
}

func TestComputeBreakdown_NoLessonsNoWarning(t *testing.T) {
	b := salarycalc.ComputeBreakdown([]salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "Empty",
		ActiveStudents: 3,
	}}, []salarycalc.RateRule{rule(1, "100", "2025-01-01")})

	assert.Empty(t, b.Items)
	assert.Empty(t, b.Warnings)
	assertAmount(t, "0.00", b.Total())
}

func TestComputeBreakdown_TwoLessonsSameDay(t *testing.T) {
	classes := []salarycalc.ClassFacts{{
		ClassID:        uuid.New(),
		ClassName:      "Physics B",
		ActiveStudents: 5,
		Lessons:        lessons(intPtr(5), "2026-01-05", "2026-01-05", "2026-01-06"),
	}}
	rules := []salarycalc.RateRule{rule(1, "400", "2025-01-01")}

	b := salarycalc.ComputeBreakdown(classes, rules)

	if assert.Len(t, b.Items, 1) {
		assert.Equal(t, 3, b.Items[0].LessonsCount)
		assertAmount(t, "1200.00", b.Items[0].Amount)
	}
}
