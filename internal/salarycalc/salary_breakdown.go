package salarycalc

import (
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/datatypes"
)

const dateLayout = "2006-01-02"

// RateRule is one tier of a teacher's per-lesson rate table.
type RateRule struct {
	ID            uuid.UUID
	MinStudents   int
	RatePerLesson decimal.Decimal
	EffectiveFrom time.Time
}

type LessonFact struct {
	LessonDate time.Time
	// nil for lessons recorded before per-lesson counts existed.
	StudentCount *int
}

type ClassFacts struct {
	ClassID        uuid.UUID
	ClassName      string
	ActiveStudents int
	Lessons        []LessonFact
}

// Breakdown is the result of one engine run. Items carry no IDs yet.
type Breakdown struct {
	Items    []SalaryCalculationItem
	Warnings []string
}

func (b Breakdown) Total() decimal.Decimal {
	return sumItems(b.Items)
}

type tierGroup struct {
	rule        int
	legacy      bool
	lessons     int
	latestDate  time.Time
	latestCount int
}

// ComputeBreakdown prices every lesson with the tier in force on its date
// and groups lessons per class, tier and legacy flag.
func ComputeBreakdown(classes []ClassFacts, rules []RateRule) Breakdown {
	out := Breakdown{
		Items:    []SalaryCalculationItem{},
		Warnings: []string{},
	}

	for _, class := range classes {
		if len(class.Lessons) == 0 {
			continue
		}

		groups := map[[2]int]*tierGroup{}
		order := make([]*tierGroup, 0)
		unqualified := 0

		for _, lesson := range class.Lessons {
			count := class.ActiveStudents
			legacy := lesson.StudentCount == nil
			if !legacy {
				count = *lesson.StudentCount
			}

			idx, ok := selectTier(rules, count, lesson.LessonDate)
			if !ok {
				unqualified++
				continue
			}

			key := [2]int{idx, boolKey(legacy)}
			g, exists := groups[key]
			if !exists {
				g = &tierGroup{rule: idx, legacy: legacy}
				groups[key] = g
				order = append(order, g)
			}
			g.lessons++
			if g.lessons == 1 || !dateOnly(lesson.LessonDate).Before(g.latestDate) {
				g.latestDate = dateOnly(lesson.LessonDate)
				g.latestCount = count
			}
		}

		if len(order) == 0 {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("%s skipped (%d students)", class.ClassName, class.ActiveStudents))
			continue
		}
		if unqualified > 0 {
			out.Warnings = append(out.Warnings,
				fmt.Sprintf("%s: %d lesson(s) below minimum students", class.ClassName, unqualified))
		}

		sort.SliceStable(order, func(i, j int) bool {
			a, b := rules[order[i].rule], rules[order[j].rule]
			if a.MinStudents != b.MinStudents {
				return a.MinStudents < b.MinStudents
			}
			if !a.EffectiveFrom.Equal(b.EffectiveFrom) {
				return a.EffectiveFrom.Before(b.EffectiveFrom)
			}
			return !order[i].legacy && order[j].legacy
		})

		for _, g := range order {
			out.Items = append(out.Items, buildItem(class, rules[g.rule], g))
		}
	}

	return out
}

// selectTier returns the index of the rule with the highest threshold not
// above students, among rules already effective on the lesson date. Ties
// on threshold go to the latest effective date.
func selectTier(rules []RateRule, students int, on time.Time) (int, bool) {
	day := dateOnly(on)
	best := -1
	for i, rule := range rules {
		if dateOnly(rule.EffectiveFrom).After(day) {
			continue
		}
		if rule.MinStudents > students {
			continue
		}
		if best < 0 {
			best = i
			continue
		}
		cur := rules[best]
		if rule.MinStudents > cur.MinStudents ||
			(rule.MinStudents == cur.MinStudents && rule.EffectiveFrom.After(cur.EffectiveFrom)) {
			best = i
		}
	}
	return best, best >= 0
}

func buildItem(class ClassFacts, rule RateRule, g *tierGroup) SalaryCalculationItem {
	snapshot := RuleSnapshot{
		MinStudents:   rule.MinStudents,
		RatePerLesson: rule.RatePerLesson,
		EffectiveFrom: rule.EffectiveFrom.Format(dateLayout),
	}
	if rule.ID != uuid.Nil {
		snapshot.RuleID = rule.ID.String()
	}

	item := SalaryCalculationItem{
		ClassID:        class.ClassID,
		ClassName:      class.ClassName,
		LessonsCount:   g.lessons,
		ActiveStudents: class.ActiveStudents,
		RateApplied:    rule.RatePerLesson,
		Amount:         rule.RatePerLesson.Mul(decimal.NewFromInt(int64(g.lessons))).Round(2),
		RuleSnapshot:   datatypes.NewJSONType(snapshot),
	}
	if !g.legacy {
		count := g.latestCount
		item.StudentCountAtLesson = &count
	}
	return item
}

func sumItems(items []SalaryCalculationItem) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Amount)
	}
	return total
}

func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func boolKey(v bool) int {
	if v {
		return 1
	}
	return 0
}
