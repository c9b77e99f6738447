package service

import "github.com/aussiebroadwan/gymtrack/internal/gym/domain"

// ExerciseSetInput is one item of a workout's nested exercisesets payload.
// An empty ID asks for a new exercise set.
type ExerciseSetInput struct {
	ID         string
	ExerciseID string
}

// ExerciseSetPlan is the set of writes that brings a workout's exercise sets
// in line with a submitted list.
type ExerciseSetPlan struct {
	Update []domain.ExerciseSet
	Create []ExerciseSetInput
	Delete []string
}

// Empty reports whether applying the plan would change nothing.
func (p ExerciseSetPlan) Empty() bool {
	return len(p.Update) == 0 && len(p.Create) == 0 && len(p.Delete) == 0
}

// PlanExerciseSets reconciles the existing children of a workout with the
// submitted list:
//
//   - an item whose id matches an existing child updates and keeps it
//   - an item whose id matches nothing is dropped
//   - an item without id is created
//
// Existing children not kept by any item are deleted. When an id is
// submitted more than once the last item wins.
func PlanExerciseSets(existing []domain.ExerciseSet, submitted []ExerciseSetInput) ExerciseSetPlan {
	byID := make(map[string]domain.ExerciseSet, len(existing))
	for _, es := range existing {
		byID[es.ID] = es
	}

	var plan ExerciseSetPlan
	kept := make(map[string]int, len(submitted))
	for _, item := range submitted {
		if item.ID == "" {
			plan.Create = append(plan.Create, item)
			continue
		}
		es, ok := byID[item.ID]
		if !ok {
			continue
		}
		es.ExerciseID = item.ExerciseID
		if i, seen := kept[item.ID]; seen {
			plan.Update[i] = es
			continue
		}
		kept[item.ID] = len(plan.Update)
		plan.Update = append(plan.Update, es)
	}

	for _, es := range existing {
		if _, ok := kept[es.ID]; !ok {
			plan.Delete = append(plan.Delete, es.ID)
		}
	}
	return plan
}
