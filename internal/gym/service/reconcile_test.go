package service

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
)

func TestPlanExerciseSets(t *testing.T) {
	existing := []domain.ExerciseSet{
		{ID: "a", ExerciseID: "squat"},
		{ID: "b", ExerciseID: "bench"},
		{ID: "c", ExerciseID: "row"},
	}

	t.Run("update, create, drop unknown and delete unkept", func(t *testing.T) {
		plan := PlanExerciseSets(existing, []ExerciseSetInput{
			{ID: "a", ExerciseID: "deadlift"},
			{ID: "zzz", ExerciseID: "curl"},
			{ExerciseID: "press"},
		})

		require.Equal(t, []domain.ExerciseSet{{ID: "a", ExerciseID: "deadlift"}}, plan.Update)
		require.Equal(t, []ExerciseSetInput{{ExerciseID: "press"}}, plan.Create)
		require.Equal(t, []string{"b", "c"}, plan.Delete)
	})

	t.Run("empty submission deletes everything", func(t *testing.T) {
		plan := PlanExerciseSets(existing, []ExerciseSetInput{})
		require.Empty(t, plan.Update)
		require.Empty(t, plan.Create)
		require.Equal(t, []string{"a", "b", "c"}, plan.Delete)
	})

	t.Run("duplicate ids collapse and the last wins", func(t *testing.T) {
		plan := PlanExerciseSets(existing, []ExerciseSetInput{
			{ID: "b", ExerciseID: "first"},
			{ID: "a", ExerciseID: "squat"},
			{ID: "b", ExerciseID: "last"},
		})
		require.Equal(t, []domain.ExerciseSet{
			{ID: "b", ExerciseID: "last"},
			{ID: "a", ExerciseID: "squat"},
		}, plan.Update)
		require.Equal(t, []string{"c"}, plan.Delete)
	})

	t.Run("delete is decided after the whole list", func(t *testing.T) {
		// "c" is mentioned last, it must not be deleted because of the
		// creates before it.
		plan := PlanExerciseSets(existing, []ExerciseSetInput{
			{ExerciseID: "x"},
			{ExerciseID: "y"},
			{ID: "c", ExerciseID: "row"},
		})
		require.Len(t, plan.Create, 2)
		require.Equal(t, []string{"a", "b"}, plan.Delete)
	})

	t.Run("no existing children", func(t *testing.T) {
		plan := PlanExerciseSets(nil, []ExerciseSetInput{{ID: "a", ExerciseID: "x"}})
		require.True(t, plan.Empty())
	})
}
