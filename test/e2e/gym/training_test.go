//go:build e2e

package gym_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/network"
	"github.com/testcontainers/testcontainers-go/wait"

	postgrescontainer "github.com/testcontainers/testcontainers-go/modules/postgres"

	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
)

func TestTrainingLifecycle(t *testing.T) {
	runTrainingLifecycle(t, setupGym(t))
}

// TestTrainingLifecyclePostgres runs the same flow against the postgres driver.
func TestTrainingLifecyclePostgres(t *testing.T) {
	ctx := context.Background()

	nw, err := network.New(ctx)
	require.NoError(t, err)
	t.Cleanup(func() { _ = nw.Remove(ctx) })

	pg, err := postgrescontainer.Run(ctx, "postgres:16-alpine",
		postgrescontainer.WithDatabase("gym"),
		postgrescontainer.WithUsername("gym"),
		postgrescontainer.WithPassword("gym"),
		network.WithNetwork([]string{"db"}, nw),
		testcontainers.WithWaitStrategy(wait.ForLog("database system is ready to accept connections").WithOccurrence(2)),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = pg.Terminate(ctx) })

	env := map[string]string{
		"GYM_DATABASE_DRIVER": "postgres",
		"GYM_DATABASE_URL":    "postgres://gym:gym@db:5432/gym?sslmode=disable",
	}
	for k, v := range relaxedLimits {
		env[k] = v
	}
	runTrainingLifecycle(t, startGym(t, env, network.WithNetwork([]string{"gym"}, nw)))
}

func runTrainingLifecycle(t *testing.T, g *gymContainer) {
	ctx := t.Context()
	admin := g.createSuperuser(t)
	user := g.verifiedUser(t, "eve@gym.test")

	_, err := user.CreateExercise(ctx, gymsdk.ExerciseRequest{Name: "Deadlift"})
	requireStatus(t, err, http.StatusForbidden)

	squat, err := admin.CreateExercise(ctx, gymsdk.ExerciseRequest{Name: "Squat"})
	require.NoError(t, err)

	workout, err := user.CreateWorkout(ctx, gymsdk.WorkoutRequest{
		Date:         gymsdk.Ptr("2026-04-01"),
		ExerciseSets: &[]gymsdk.ExerciseSetItem{{Exercise: squat.ID}},
	})
	require.NoError(t, err)
	require.Len(t, workout.ExerciseSets, 1)
	esID := workout.ExerciseSets[0].ID

	for _, w := range []string{"80", "100.5", "95"} {
		_, err := user.CreateSet(ctx, gymsdk.SetRequest{
			ExerciseSet: gymsdk.Ptr(esID),
			Weight:      gymsdk.Ptr(decimal.RequireFromString(w)),
			Rest:        gymsdk.Ptr(30),
			RestUnit:    gymsdk.Ptr("SEC"),
		})
		require.NoError(t, err)
	}

	rest, err := user.TotalRestTime(ctx, esID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("1.5").Equal(rest.TotalRestTime), rest.TotalRestTime.String())

	heavy, err := user.HighestWeight(ctx, esID)
	require.NoError(t, err)
	require.True(t, decimal.RequireFromString("100.5").Equal(heavy.Weight), heavy.Weight.String())

	require.NoError(t, user.DeleteWorkout(ctx, workout.ID))
	_, err = user.GetExerciseSet(ctx, esID)
	requireStatus(t, err, http.StatusNotFound)
}
