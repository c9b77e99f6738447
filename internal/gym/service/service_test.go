package service

import (
	"context"
	"errors"
	"os"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store"
	"github.com/aussiebroadwan/gymtrack/internal/gym/store/drivers/sqlite"
	"github.com/aussiebroadwan/gymtrack/pkg/cryptox"
	"github.com/aussiebroadwan/gymtrack/pkg/idx"
	"github.com/aussiebroadwan/gymtrack/pkg/jwtx"
	"github.com/aussiebroadwan/gymtrack/pkg/mailx"
)

var testSecret = []byte("0123456789abcdef0123456789abcdef")

func TestMain(m *testing.M) {
	cryptox.SetPepper("test-pepper")
	os.Exit(m.Run())
}

// recordingMailer keeps every message it is asked to send.
type recordingMailer struct {
	mu   sync.Mutex
	sent []mailx.Message
	err  error
}

func (m *recordingMailer) Send(_ context.Context, msg mailx.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.err
}

func (m *recordingMailer) messages() []mailx.Message {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]mailx.Message(nil), m.sent...)
}

type env struct {
	store  store.Store
	codec  *jwtx.Codec
	mailer *recordingMailer

	auth     *AuthService
	users    *UserService
	reset    *PasswordResetService
	workouts *WorkoutService
	esets    *ExerciseSetService
	sets     *SetService
	catalog  *CatalogService
}

func newEnv(t *testing.T) *env {
	t.Helper()

	st, err := sqlite.NewStore(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { _ = st.Close() })
	require.NoError(t, st.ApplyMigrations())

	codec, err := jwtx.NewCodec(testSecret, time.Hour)
	require.NoError(t, err)

	mailer := &recordingMailer{}
	notifier := &Notifier{Mailer: mailer, Codec: codec, BaseURL: "http://gym.test"}

	return &env{
		store:    st,
		codec:    codec,
		mailer:   mailer,
		auth:     &AuthService{Store: st, Codec: codec, Notifier: notifier},
		users:    &UserService{Store: st, Notifier: notifier},
		reset:    &PasswordResetService{Store: st, Codec: codec, Notifier: notifier},
		workouts: &WorkoutService{Store: st},
		esets:    &ExerciseSetService{Store: st},
		sets:     &SetService{Store: st},
		catalog:  &CatalogService{Store: st},
	}
}

// linkToken pulls the token out of the link at the end of a mail body.
func linkToken(t *testing.T, msg mailx.Message) string {
	t.Helper()
	for _, marker := range []string{"/email-verify?token=", "/password-reset-confirm/"} {
		if _, tok, ok := strings.Cut(msg.Body, marker); ok {
			return strings.TrimSpace(tok)
		}
	}
	t.Fatalf("no link in %q", msg.Body)
	return ""
}

// mustUser inserts a user directly, bypassing registration.
func (e *env) mustUser(t *testing.T, email, password string, verified, active bool) domain.User {
	t.Helper()
	hash, err := cryptox.HashPassword(password)
	require.NoError(t, err)
	now := time.Now().UTC()
	u := domain.User{
		ID:           idx.New().String(),
		Email:        email,
		Username:     strings.Split(email, "@")[0],
		PasswordHash: hash,
		IsVerified:   verified,
		IsActive:     active,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	require.NoError(t, e.store.Users().CreateUser(context.Background(), u))
	return u
}

func (e *env) mustExercise(t *testing.T, name string) domain.Exercise {
	t.Helper()
	ex, err := e.catalog.CreateExercise(context.Background(), Actor{UserID: "admin", Staff: true}, CatalogInput{Name: name})
	require.NoError(t, err)
	return ex
}

func requireFieldError(t *testing.T, err error, field, msg string) {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	var ve *ValidationError
	require.True(t, errors.As(err, &ve))
	require.Contains(t, ve.Fields[field], msg, "fields: %v", ve.Fields)
}

func ptr[T any](v T) *T { return &v }
