package gymsdk

import (
	"context"
	"net/http"
	"net/url"
)

// Session performs requests with a bearer session token. Session tokens do
// not expire; Logout invalidates them.
type Session struct {
	client *SDKClient
	token  string
}

// Token returns the raw session token.
func (s *Session) Token() string { return s.token }

func (s *Session) send(ctx context.Context, method, path string, in, out any, expectedStatus int) error {
	return s.client.send(ctx, s.token, method, path, in, out, expectedStatus)
}

// Login logs in again while presenting this session's token, which the
// server rejects with already_logged_in.
func (s *Session) Login(ctx context.Context, email, password string) error {
	return s.send(ctx, http.MethodPost, "/login", LoginRequest{Email: email, Password: password}, nil, http.StatusOK)
}

func (s *Session) Logout(ctx context.Context) (*MessageResponse, error) {
	var out MessageResponse
	if err := s.send(ctx, http.MethodGet, "/logout", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) Me(ctx context.Context) (*UserResponse, error) {
	var out UserResponse
	if err := s.send(ctx, http.MethodGet, "/me", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateMe sends a partial profile update.
func (s *Session) UpdateMe(ctx context.Context, req ProfileUpdateRequest) (*UserResponse, error) {
	var out UserResponse
	if err := s.send(ctx, http.MethodPatch, "/me", req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

// ============================================================================
// Workouts
// ============================================================================

func (s *Session) ListWorkouts(ctx context.Context) ([]WorkoutResponse, error) {
	var out []WorkoutResponse
	if err := s.send(ctx, http.MethodGet, "/workouts", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

func (s *Session) GetWorkout(ctx context.Context, id string) (*WorkoutResponse, error) {
	var out WorkoutResponse
	if err := s.send(ctx, http.MethodGet, "/workouts/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateWorkout(ctx context.Context, req WorkoutRequest) (*WorkoutResponse, error) {
	var out WorkoutResponse
	if err := s.send(ctx, http.MethodPost, "/workouts", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// UpdateWorkout sends a partial update, reconciling exercise sets when
// req.ExerciseSets is set.
func (s *Session) UpdateWorkout(ctx context.Context, id string, req WorkoutRequest) (*WorkoutResponse, error) {
	var out WorkoutResponse
	if err := s.send(ctx, http.MethodPatch, "/workouts/"+url.PathEscape(id), req, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) DeleteWorkout(ctx context.Context, id string) error {
	return s.send(ctx, http.MethodDelete, "/workouts/"+url.PathEscape(id), nil, nil, http.StatusNoContent)
}

// ============================================================================
// Exercise sets and sets
// ============================================================================

func (s *Session) CreateExerciseSet(ctx context.Context, req ExerciseSetRequest) (*ExerciseSetResponse, error) {
	var out ExerciseSetResponse
	if err := s.send(ctx, http.MethodPost, "/exercisesets", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) GetExerciseSet(ctx context.Context, id string) (*ExerciseSetResponse, error) {
	var out ExerciseSetResponse
	if err := s.send(ctx, http.MethodGet, "/exercisesets/"+url.PathEscape(id), nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) TotalRestTime(ctx context.Context, exerciseSetID string) (*TotalRestTimeResponse, error) {
	var out TotalRestTimeResponse
	path := "/exercisesets/" + url.PathEscape(exerciseSetID) + "/total_rest_time"
	if err := s.send(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) HighestWeight(ctx context.Context, exerciseSetID string) (*HighestWeightResponse, error) {
	var out HighestWeightResponse
	path := "/exercisesets/" + url.PathEscape(exerciseSetID) + "/highest_weight"
	if err := s.send(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return &out, nil
}

func (s *Session) CreateSet(ctx context.Context, req SetRequest) (*SetResponse, error) {
	var out SetResponse
	if err := s.send(ctx, http.MethodPost, "/sets", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListSets lists the caller's sets, narrowed to weightUnit when it is set.
func (s *Session) ListSets(ctx context.Context, weightUnit string) ([]SetResponse, error) {
	path := "/sets"
	if weightUnit != "" {
		path += "?weight_unit=" + url.QueryEscape(weightUnit)
	}
	var out []SetResponse
	if err := s.send(ctx, http.MethodGet, path, nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// ============================================================================
// Catalog
// ============================================================================

func (s *Session) ListExercises(ctx context.Context) ([]ExerciseResponse, error) {
	var out []ExerciseResponse
	if err := s.send(ctx, http.MethodGet, "/exercises", nil, &out, http.StatusOK); err != nil {
		return nil, err
	}
	return out, nil
}

// CreateExercise requires a staff account.
func (s *Session) CreateExercise(ctx context.Context, req ExerciseRequest) (*ExerciseResponse, error) {
	var out ExerciseResponse
	if err := s.send(ctx, http.MethodPost, "/exercises", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}

// CreateMuscleGroup requires a staff account.
func (s *Session) CreateMuscleGroup(ctx context.Context, req MuscleGroupRequest) (*MuscleGroupResponse, error) {
	var out MuscleGroupResponse
	if err := s.send(ctx, http.MethodPost, "/musclegroups", req, &out, http.StatusCreated); err != nil {
		return nil, err
	}
	return &out, nil
}
