package http_test

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"

	gymhttp "github.com/aussiebroadwan/gymtrack/internal/gym/http"
	"github.com/aussiebroadwan/gymtrack/internal/gym/metrics"
	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/aussiebroadwan/gymtrack/pkg/mailx"
)

func TestMain(m *testing.M) {
	cryptox.SetPepper("test-pepper")
	os.Exit(m.Run())
}

type inbox struct {
	mu   sync.Mutex
	sent []mailx.Message
}

func (b *inbox) Send(_ context.Context, msg mailx.Message) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.sent = append(b.sent, msg)
	return nil
}

// lastToken returns the token of the most recent link mailed to addr.
func (b *inbox) lastToken(t *testing.T, addr string) string {
	t.Helper()
	b.mu.Lock()
	defer b.mu.Unlock()
	for i := len(b.sent) - 1; i >= 0; i-- {
		msg := b.sent[i]
		if msg.To != addr {
			continue
		}
		for _, marker := range []string{"/email-verify?token=", "/password-reset-confirm/"} {
			if _, tok, ok := strings.Cut(msg.Body, marker); ok {
				return strings.TrimSpace(tok)
			}
		}
	}
	t.Fatalf("no link mailed to %s", addr)
	return ""
}

type testServer struct {
	*gymsdk.SDKClient
	inbox *inbox
	users *service.UserService
}

func newServer(t *testing.T) *testServer {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec([]byte("0123456789abcdef0123456789abcdef"), time.Hour)
	require.NoError(t, err)

	box := &inbox{}
	m := metrics.New()
	notifier := &service.Notifier{Mailer: box, Codec: codec, BaseURL: "http://gym.test", Metrics: m}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	auth := &service.AuthService{Store: st, Codec: codec, Notifier: notifier, Metrics: m}
	router := gymhttp.NewRouter("test", st, m, auth, []string{"*"}, logger)
	router.UserService = &service.UserService{Store: st, Notifier: notifier}
	router.PasswordResetService = &service.PasswordResetService{Store: st, Codec: codec, Notifier: notifier, Metrics: m}
	router.WorkoutService = &service.WorkoutService{Store: st}
	router.ExerciseSetService = &service.ExerciseSetService{Store: st}
	router.SetService = &service.SetService{Store: st}
	router.CatalogService = &service.CatalogService{Store: st}
	router.ApplyRoutes()

	srv := httptest.NewServer(router)
	t.Cleanup(srv.Close)

	return &testServer{SDKClient: gymsdk.NewSDKClient(srv.URL), inbox: box, users: router.UserService}
}

// verifiedSession registers, verifies and logs in a user.
func (s *testServer) verifiedSession(t *testing.T, email string) *gymsdk.Session {
	t.Helper()
	ctx := t.Context()
	_, err := s.Register(ctx, gymsdk.RegisterRequest{Email: email, Password: "secret123", Username: strings.Split(email, "@")[0]})
	require.NoError(t, err)
	_, err = s.VerifyEmail(ctx, s.inbox.lastToken(t, email))
	require.NoError(t, err)
	sess, err := s.Login(ctx, email, "secret123")
	require.NoError(t, err)
	return sess
}

func (s *testServer) staffSession(t *testing.T) *gymsdk.Session {
	t.Helper()
	_, err := s.users.CreateSuperuser(t.Context(), "admin@gym.test", "admin", "adminpass")
	require.NoError(t, err)
	sess, err := s.Login(t.Context(), "admin@gym.test", "adminpass")
	require.NoError(t, err)
	return sess
}

func requireAPIError(t *testing.T, err error, status int, code string) *gymsdk.APIError {
	t.Helper()
	var apiErr *gymsdk.APIError
	require.True(t, errors.As(err, &apiErr), "want APIError, got %v", err)
	require.Equal(t, status, apiErr.StatusCode)
	require.Equal(t, code, apiErr.Code)
	return apiErr
}

func TestHealth(t *testing.T) {
	s := newServer(t)

	live, err := s.GetLiveness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", live.Status)
	require.Equal(t, "test", live.Version)

	ready, err := s.GetReadiness(t.Context())
	require.NoError(t, err)
	require.Equal(t, "ok", ready.Checks.Database)
}

func TestMetricsEndpoint(t *testing.T) {
	s := newServer(t)
	_, err := s.GetLiveness(t.Context())
	require.NoError(t, err)

	resp, err := http.Get(s.BaseURL + "/metrics")
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	require.Equal(t, http.StatusOK, resp.StatusCode)
	require.Contains(t, string(body), `gymtrack_http_requests_total{code="200",method="GET",route="GET /livez"}`)
}

func TestAccountFlow(t *testing.T) {
	s := newServer(t)
	ctx := t.Context()

	reg, err := s.Register(ctx, gymsdk.RegisterRequest{Email: "ann@Gym.Test", Password: "secret123", Username: "ann"})
	require.NoError(t, err)
	require.Equal(t, "ann@gym.test", reg.User.Email)
	require.False(t, reg.User.IsVerified)
	require.Equal(t, "Link for email verification was sent to provided email address", reg.Message)

	t.Run("login before verification", func(t *testing.T) {
		_, err := s.Login(ctx, "ann@gym.test", "secret123")
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, gymsdk.CodeUnauthorized)
		require.Equal(t, "User account is not verified.", apiErr.Detail)
	})

	t.Run("verify", func(t *testing.T) {
		msg, err := s.VerifyEmail(ctx, s.inbox.lastToken(t, "ann@gym.test"))
		require.NoError(t, err)
		require.Equal(t, "Successfully activated!", msg.Message)

		_, err = s.VerifyEmail(ctx, "garbage")
		apiErr := requireAPIError(t, err, http.StatusBadRequest, gymsdk.CodeInvalidToken)
		require.Equal(t, "Invalid token", apiErr.Detail)
	})

	t.Run("wrong password", func(t *testing.T) {
		_, err := s.Login(ctx, "ann@gym.test", "nope")
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, gymsdk.CodeUnauthorized)
		require.Equal(t, "Unable to login with provided credentials.", apiErr.Detail)
	})

	sess, err := s.Login(ctx, "ann@gym.test", "secret123")
	require.NoError(t, err)
	require.NotEmpty(t, sess.Token())

	t.Run("login again without token returns the same token", func(t *testing.T) {
		again, err := s.Login(ctx, "ann@gym.test", "secret123")
		require.NoError(t, err)
		require.Equal(t, sess.Token(), again.Token())
	})

	t.Run("login presenting the token", func(t *testing.T) {
		err := sess.Login(ctx, "ann@gym.test", "secret123")
		apiErr := requireAPIError(t, err, http.StatusForbidden, gymsdk.CodeAlreadyLoggedIn)
		require.Equal(t, "You are already logged in.", apiErr.Detail)
	})

	t.Run("me", func(t *testing.T) {
		me, err := sess.Me(ctx)
		require.NoError(t, err)
		require.Equal(t, reg.User.ID, me.ID)
		require.True(t, me.IsVerified)
	})

	t.Run("logout", func(t *testing.T) {
		msg, err := sess.Logout(ctx)
		require.NoError(t, err)
		require.Equal(t, "User ann@gym.test has logged out successfully.", msg.Message)

		_, err = sess.Me(ctx)
		apiErr := requireAPIError(t, err, http.StatusUnauthorized, gymsdk.CodeNotAuthenticated)
		require.Equal(t, "Invalid token.", apiErr.Detail)
	})
}

func TestRegister_ReportsEveryField(t *testing.T) {
	s := newServer(t)

	_, err := s.Register(t.Context(), gymsdk.RegisterRequest{Email: "nope", Password: "abc"})
	apiErr := requireAPIError(t, err, http.StatusBadRequest, gymsdk.CodeValidation)
	require.Contains(t, apiErr.Fields, "email")
	require.Contains(t, apiErr.Fields, "password")
	require.Contains(t, apiErr.Fields, "username")

	s.inbox.mu.Lock()
	defer s.inbox.mu.Unlock()
	require.Empty(t, s.inbox.sent)
}

func TestAuthentication(t *testing.T) {
	s := newServer(t)

	t.Run("missing credentials", func(t *testing.T) {
		resp, err := http.Get(s.BaseURL + "/me")
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusUnauthorized, resp.StatusCode)
		require.NotEmpty(t, resp.Header.Get("WWW-Authenticate"))
	})

	t.Run("token keyword", func(t *testing.T) {
		sess := s.verifiedSession(t, "bob@gym.test")
		req, err := http.NewRequestWithContext(t.Context(), http.MethodGet, s.BaseURL+"/me", nil)
		require.NoError(t, err)
		req.Header.Set("Authorization", "Token "+sess.Token())
		resp, err := http.DefaultClient.Do(req)
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusOK, resp.StatusCode)
	})

	t.Run("malformed json", func(t *testing.T) {
		resp, err := http.Post(s.BaseURL+"/register", "application/json", strings.NewReader("{"))
		require.NoError(t, err)
		defer resp.Body.Close()
		require.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})
}

func TestProfileEmailChange(t *testing.T) {
	s := newServer(t)
	ctx := t.Context()
	sess := s.verifiedSession(t, "cat@gym.test")

	me, err := sess.UpdateMe(ctx, gymsdk.ProfileUpdateRequest{Email: gymsdk.Ptr("cat2@GYM.test")})
	require.NoError(t, err)
	require.Equal(t, "cat2@gym.test", me.Email)
	require.False(t, me.IsVerified)

	_, err = s.VerifyEmail(ctx, s.inbox.lastToken(t, "cat2@gym.test"))
	require.NoError(t, err)
	me, err = sess.Me(ctx)
	require.NoError(t, err)
	require.True(t, me.IsVerified)
}

func TestPasswordReset(t *testing.T) {
	s := newServer(t)
	ctx := t.Context()
	s.verifiedSession(t, "dan@gym.test")

	_, err := s.RequestPasswordReset(ctx, "ghost@gym.test")
	apiErr := requireAPIError(t, err, http.StatusNotFound, gymsdk.CodeNotFound)
	require.Equal(t, "User with this email does not exist.", apiErr.Detail)

	msg, err := s.RequestPasswordReset(ctx, "dan@gym.test")
	require.NoError(t, err)
	require.Equal(t, "The link to reset your password was sent to email.", msg.Message)
	token := s.inbox.lastToken(t, "dan@gym.test")

	msg, err = s.CheckPasswordReset(ctx, token)
	require.NoError(t, err)
	require.Equal(t, "Reset your password", msg.Message)

	_, err = s.ConfirmPasswordReset(ctx, token, gymsdk.PasswordResetConfirmRequest{Password: "newpass1", ConfirmPassword: "other"})
	apiErr = requireAPIError(t, err, http.StatusBadRequest, gymsdk.CodeValidation)
	require.Equal(t, []string{"Password and confirm_password does not match!"}, apiErr.NonFieldErrors)

	msg, err = s.ConfirmPasswordReset(ctx, token, gymsdk.PasswordResetConfirmRequest{Password: "newpass1", ConfirmPassword: "newpass1"})
	require.NoError(t, err)
	require.Equal(t, "Password reset successfully!", msg.Message)

	_, err = s.Login(ctx, "dan@gym.test", "newpass1")
	require.NoError(t, err)
}

func TestTrainingFlow(t *testing.T) {
	s := newServer(t)
	ctx := t.Context()
	admin := s.staffSession(t)
	owner := s.verifiedSession(t, "eve@gym.test")
	other := s.verifiedSession(t, "fay@gym.test")

	t.Run("catalog writes need staff", func(t *testing.T) {
		_, err := owner.CreateExercise(ctx, gymsdk.ExerciseRequest{Name: "Deadlift"})
		requireAPIError(t, err, http.StatusForbidden, gymsdk.CodePermissionDenied)
	})

	group, err := admin.CreateMuscleGroup(ctx, gymsdk.MuscleGroupRequest{Name: "Legs"})
	require.NoError(t, err)
	squat, err := admin.CreateExercise(ctx, gymsdk.ExerciseRequest{Name: "Squat", MuscleGroups: []string{group.ID}})
	require.NoError(t, err)
	bench, err := admin.CreateExercise(ctx, gymsdk.ExerciseRequest{Name: "Bench"})
	require.NoError(t, err)

	exercises, err := owner.ListExercises(ctx)
	require.NoError(t, err)
	require.Len(t, exercises, 2)

	workout, err := owner.CreateWorkout(ctx, gymsdk.WorkoutRequest{
		Date:         gymsdk.Ptr("2026-03-01"),
		ExerciseSets: &[]gymsdk.ExerciseSetItem{{Exercise: squat.ID}},
	})
	require.NoError(t, err)
	require.Equal(t, "2026-03-01", workout.Date)
	require.Len(t, workout.ExerciseSets, 1)
	es := workout.ExerciseSets[0]
	require.Equal(t, "Squat", es.ExerciseName)

	t.Run("unknown exercise", func(t *testing.T) {
		_, err := owner.CreateWorkout(ctx, gymsdk.WorkoutRequest{
			Date:         gymsdk.Ptr("2026-03-02"),
			ExerciseSets: &[]gymsdk.ExerciseSetItem{{Exercise: "missing"}},
		})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, gymsdk.CodeValidation)
		require.Contains(t, apiErr.Fields, "exercisesets")
	})

	t.Run("actions without sets", func(t *testing.T) {
		_, err := owner.TotalRestTime(ctx, es.ID)
		apiErr := requireAPIError(t, err, http.StatusNotFound, gymsdk.CodeNotFound)
		require.Equal(t, "This exercise has no sets.", apiErr.Detail)

		_, err = owner.HighestWeight(ctx, es.ID)
		apiErr = requireAPIError(t, err, http.StatusNotFound, gymsdk.CodeNotFound)
		require.Equal(t, "This exercise has no weight", apiErr.Detail)
	})

	for _, req := range []gymsdk.SetRequest{
		{ExerciseSet: gymsdk.Ptr(es.ID), Weight: gymsdk.Ptr(decimal.RequireFromString("100")), Rest: gymsdk.Ptr(90), RestUnit: gymsdk.Ptr("SEC")},
		{ExerciseSet: gymsdk.Ptr(es.ID), Weight: gymsdk.Ptr(decimal.RequireFromString("102.5")), Rest: gymsdk.Ptr(2)},
	} {
		_, err := owner.CreateSet(ctx, req)
		require.NoError(t, err)
	}

	t.Run("actions", func(t *testing.T) {
		rest, err := owner.TotalRestTime(ctx, es.ID)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("3.5").Equal(rest.TotalRestTime), rest.TotalRestTime.String())
		require.Equal(t, "MIN", rest.Unit)

		heavy, err := owner.HighestWeight(ctx, es.ID)
		require.NoError(t, err)
		require.True(t, decimal.RequireFromString("102.5").Equal(heavy.Weight))
		require.Equal(t, "KG", heavy.WeightUnit)
	})

	t.Run("set defaults and filter", func(t *testing.T) {
		sets, err := owner.ListSets(ctx, "KG")
		require.NoError(t, err)
		require.Len(t, sets, 2)
		require.Equal(t, 1, sets[0].Reps)
		require.Equal(t, "REPS", sets[0].RepsUnit)

		sets, err = owner.ListSets(ctx, "BW")
		require.NoError(t, err)
		require.Empty(t, sets)

		_, err = owner.ListSets(ctx, "LB")
		requireAPIError(t, err, http.StatusBadRequest, gymsdk.CodeValidation)
	})

	t.Run("other users see nothing", func(t *testing.T) {
		_, err := other.GetWorkout(ctx, workout.ID)
		requireAPIError(t, err, http.StatusNotFound, gymsdk.CodeNotFound)

		workouts, err := other.ListWorkouts(ctx)
		require.NoError(t, err)
		require.Empty(t, workouts)

		_, err = other.CreateExerciseSet(ctx, gymsdk.ExerciseSetRequest{Workout: gymsdk.Ptr(workout.ID), Exercise: gymsdk.Ptr(bench.ID)})
		apiErr := requireAPIError(t, err, http.StatusBadRequest, gymsdk.CodeValidation)
		require.Contains(t, apiErr.Fields, "workout")
	})

	t.Run("reconcile nested exercise sets", func(t *testing.T) {
		updated, err := owner.UpdateWorkout(ctx, workout.ID, gymsdk.WorkoutRequest{
			ExerciseSets: &[]gymsdk.ExerciseSetItem{
				{ID: es.ID, Exercise: bench.ID},
				{Exercise: squat.ID},
			},
		})
		require.NoError(t, err)
		require.Len(t, updated.ExerciseSets, 2)

		got, err := owner.GetExerciseSet(ctx, es.ID)
		require.NoError(t, err)
		require.Equal(t, bench.ID, got.Exercise)
		require.Len(t, got.Sets, 2)

		updated, err = owner.UpdateWorkout(ctx, workout.ID, gymsdk.WorkoutRequest{ExerciseSets: &[]gymsdk.ExerciseSetItem{}})
		require.NoError(t, err)
		require.Empty(t, updated.ExerciseSets)
	})

	t.Run("delete", func(t *testing.T) {
		require.NoError(t, owner.DeleteWorkout(ctx, workout.ID))
		_, err := owner.GetWorkout(ctx, workout.ID)
		requireAPIError(t, err, http.StatusNotFound, gymsdk.CodeNotFound)
	})
}
