package http

import (
	"errors"
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/domain"
	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

// decodeBody decodes an optional JSON body into v. A missing body leaves v
// untouched so that validation reports the absent fields.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := httpx.DecodeJSON(w, r, v); err != nil && !errors.Is(err, httpx.ErrEmptyBody) {
		writeDecodeError(w, err)
		return false
	}
	return true
}

func userResponse(u domain.User) gymsdk.UserResponse {
	return gymsdk.UserResponse{
		ID:         u.ID,
		Email:      u.Email,
		Username:   u.Username,
		IsVerified: u.IsVerified,
	}
}

func workoutResponse(w domain.Workout) gymsdk.WorkoutResponse {
	resp := gymsdk.WorkoutResponse{
		ID:           w.ID,
		UserID:       w.UserID,
		Date:         w.Date.Format(domain.DateLayout),
		ExerciseSets: make([]gymsdk.ExerciseSetResponse, len(w.ExerciseSets)),
	}
	for i, es := range w.ExerciseSets {
		resp.ExerciseSets[i] = exerciseSetResponse(es)
	}
	return resp
}

func exerciseSetResponse(es domain.ExerciseSet) gymsdk.ExerciseSetResponse {
	resp := gymsdk.ExerciseSetResponse{
		ID:           es.ID,
		UserID:       es.UserID,
		Workout:      es.WorkoutID,
		Exercise:     es.ExerciseID,
		ExerciseName: es.ExerciseName,
		Sets:         make([]gymsdk.SetResponse, len(es.Sets)),
	}
	for i, s := range es.Sets {
		resp.Sets[i] = setResponse(s)
	}
	return resp
}

func setResponse(s domain.Set) gymsdk.SetResponse {
	return gymsdk.SetResponse{
		ID:          s.ID,
		UserID:      s.UserID,
		ExerciseSet: s.ExerciseSetID,
		Reps:        s.Reps,
		RepsUnit:    string(s.RepsUnit),
		Weight:      s.Weight,
		WeightUnit:  string(s.WeightUnit),
		Rest:        s.Rest,
		RestUnit:    string(s.RestUnit),
	}
}

func exerciseResponse(e domain.Exercise) gymsdk.ExerciseResponse {
	groups := e.MuscleGroupIDs
	if groups == nil {
		groups = []string{}
	}
	return gymsdk.ExerciseResponse{
		ID:           e.ID,
		Name:         e.Name,
		Description:  e.Description,
		MuscleGroups: groups,
	}
}

func muscleGroupResponse(m domain.MuscleGroup) gymsdk.MuscleGroupResponse {
	return gymsdk.MuscleGroupResponse{ID: m.ID, Name: m.Name, Description: m.Description}
}

func workoutInput(req gymsdk.WorkoutRequest, partial bool) service.WorkoutInput {
	in := service.WorkoutInput{Date: req.Date, Partial: partial}
	if req.ExerciseSets != nil {
		in.ExerciseSets = make([]service.ExerciseSetInput, len(*req.ExerciseSets))
		for i, item := range *req.ExerciseSets {
			in.ExerciseSets[i] = service.ExerciseSetInput{ID: item.ID, ExerciseID: item.Exercise}
		}
	}
	return in
}

func setWrite(req gymsdk.SetRequest, partial bool) service.SetWrite {
	return service.SetWrite{
		ExerciseSetID: req.ExerciseSet,
		Reps:          req.Reps,
		RepsUnit:      req.RepsUnit,
		Weight:        req.Weight,
		WeightUnit:    req.WeightUnit,
		Rest:          req.Rest,
		RestUnit:      req.RestUnit,
		Partial:       partial,
	}
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, len(in))
	for i, v := range in {
		out[i] = f(v)
	}
	return out
}
