package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

type WorkoutsHandler struct {
	Workouts *service.WorkoutService
}

// HandleList lists the caller's workouts with their exercise sets and sets.
//
//	@Summary	List workouts
//	@Tags		Workouts
//	@Produce	json
//	@Success	200	{array}		gymsdk.WorkoutResponse
//	@Failure	401	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/workouts [get]
func (h *WorkoutsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	workouts, err := h.Workouts.List(r.Context(), actor(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(workouts, workoutResponse))
}

// HandleGet returns one workout.
//
//	@Summary	Get a workout
//	@Tags		Workouts
//	@Produce	json
//	@Param		id	path		string	true	"Workout ID"
//	@Success	200	{object}	gymsdk.WorkoutResponse
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/workouts/{id} [get]
func (h *WorkoutsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	workout, err := h.Workouts.Get(r.Context(), actor(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, workoutResponse(workout))
}

// HandleCreate creates a workout together with its nested exercise sets.
//
//	@Summary	Create a workout
//	@Tags		Workouts
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.WorkoutRequest	true	"Workout"
//	@Success	201		{object}	gymsdk.WorkoutResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Security	BearerAuth
//	@Router		/workouts [post]
func (h *WorkoutsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.WorkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	workout, err := h.Workouts.Create(r.Context(), actor(r.Context()), workoutInput(req, false))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, workoutResponse(workout))
}

// HandleUpdate changes the date and, when exercisesets is sent, reconciles
// the nested list: listed ids are updated, entries without id are created and
// the rest are deleted.
//
//	@Summary	Update a workout
//	@Tags		Workouts
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string					true	"Workout ID"
//	@Param		request	body		gymsdk.WorkoutRequest	true	"Workout"
//	@Success	200		{object}	gymsdk.WorkoutResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure	404		{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/workouts/{id} [put]
//	@Router		/workouts/{id} [patch]
func (h *WorkoutsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.WorkoutRequest
	if !decodeBody(w, r, &req) {
		return
	}
	workout, err := h.Workouts.Update(r.Context(), actor(r.Context()), r.PathValue("id"), workoutInput(req, r.Method == http.MethodPatch))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, workoutResponse(workout))
}

// HandleDelete removes a workout and everything under it.
//
//	@Summary	Delete a workout
//	@Tags		Workouts
//	@Param		id	path	string	true	"Workout ID"
//	@Success	204
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/workouts/{id} [delete]
func (h *WorkoutsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Workouts.Delete(r.Context(), actor(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
