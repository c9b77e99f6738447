package gymsdk

import "github.com/shopspring/decimal"

// Ptr returns a pointer to v, for the optional fields of request types.
func Ptr[T any](v T) *T { return &v }

// ============================================================================
// Account
// ============================================================================

type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Username string `json:"username"`
}

type UserResponse struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Username   string `json:"username"`
	IsVerified bool   `json:"is_verified"`
}

type RegisterResponse struct {
	User    UserResponse `json:"user"`
	Message string       `json:"message"`
}

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type LoginResponse struct {
	Token string `json:"token"`
}

// MessageResponse is the body of operations that only report success.
type MessageResponse struct {
	Message string `json:"message"`
}

// ProfileUpdateRequest is sent to PUT and PATCH /me. PUT requires every field.
type ProfileUpdateRequest struct {
	Email    *string `json:"email,omitempty"`
	Username *string `json:"username,omitempty"`
	Password *string `json:"password,omitempty"`
}

type PasswordResetRequest struct {
	Email string `json:"email"`
}

type PasswordResetConfirmRequest struct {
	Password        string `json:"password"`
	ConfirmPassword string `json:"confirm_password"`
}

// ============================================================================
// Training
// ============================================================================

// ExerciseSetItem is one nested entry of a workout payload. Leave ID empty
// to create a new exercise set.
type ExerciseSetItem struct {
	ID       string `json:"id,omitempty"`
	Exercise string `json:"exercise"`
}

// WorkoutRequest creates or updates a workout. A nil ExerciseSets keeps the
// current exercise sets; a pointer to an empty slice removes them all.
type WorkoutRequest struct {
	Date         *string            `json:"date,omitempty"`
	ExerciseSets *[]ExerciseSetItem `json:"exercisesets,omitempty"`
}

type WorkoutResponse struct {
	ID           string                `json:"id"`
	UserID       string                `json:"user_id"`
	Date         string                `json:"date"`
	ExerciseSets []ExerciseSetResponse `json:"exercisesets"`
}

type ExerciseSetRequest struct {
	Workout  *string `json:"workout,omitempty"`
	Exercise *string `json:"exercise,omitempty"`
}

type ExerciseSetResponse struct {
	ID           string        `json:"id"`
	UserID       string        `json:"user_id"`
	Workout      string        `json:"workout"`
	Exercise     string        `json:"exercise"`
	ExerciseName string        `json:"exercise_name"`
	Sets         []SetResponse `json:"sets"`
}

type TotalRestTimeResponse struct {
	ExerciseSet   string          `json:"exercise_set"`
	Exercise      string          `json:"exercise"`
	TotalRestTime decimal.Decimal `json:"total_rest_time"`
	Unit          string          `json:"unit"`
	Summary       string          `json:"summary"`
}

type HighestWeightResponse struct {
	ExerciseSet string          `json:"exercise_set"`
	Exercise    string          `json:"exercise"`
	Weight      decimal.Decimal `json:"weight"`
	WeightUnit  string          `json:"weight_unit"`
	Summary     string          `json:"summary"`
}

// SetRequest creates or updates a set. Omitted fields take their defaults on
// create (1 REPS, 0 KG, 0 MIN rest).
type SetRequest struct {
	ExerciseSet *string          `json:"exercise_set,omitempty"`
	Reps        *int             `json:"reps,omitempty"`
	RepsUnit    *string          `json:"reps_unit,omitempty"`
	Weight      *decimal.Decimal `json:"weight,omitempty"`
	WeightUnit  *string          `json:"weight_unit,omitempty"`
	Rest        *int             `json:"rest,omitempty"`
	RestUnit    *string          `json:"rest_unit,omitempty"`
}

type SetResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"user_id"`
	ExerciseSet string          `json:"exercise_set"`
	Reps        int             `json:"reps"`
	RepsUnit    string          `json:"reps_unit"`
	Weight      decimal.Decimal `json:"weight"`
	WeightUnit  string          `json:"weight_unit"`
	Rest        int             `json:"rest"`
	RestUnit    string          `json:"rest_unit"`
}

// ============================================================================
// Catalog
// ============================================================================

type ExerciseRequest struct {
	Name         string   `json:"name"`
	Description  string   `json:"description,omitempty"`
	MuscleGroups []string `json:"muscle_groups,omitempty"`
}

type ExerciseResponse struct {
	ID           string   `json:"id"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	MuscleGroups []string `json:"muscle_groups"`
}

type MuscleGroupRequest struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

type MuscleGroupResponse struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
}

// ============================================================================
// Health
// ============================================================================

// HealthResponse is returned by /livez and /readyz; only readyz sets Checks.
type HealthResponse struct {
	Status  string        `json:"status"`
	Uptime  string        `json:"uptime,omitempty"`
	Version string        `json:"version,omitempty"`
	Checks  *HealthChecks `json:"checks,omitempty"`
}

type HealthChecks struct {
	Database string `json:"database"`
}
