package http

import (
	"fmt"
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

const restUnitMinutes = "MIN"

type ExerciseSetsHandler struct {
	ExerciseSets *service.ExerciseSetService
}

// HandleList
//
//	@Summary	List exercise sets
//	@Tags		Exercise Sets
//	@Produce	json
//	@Success	200	{array}	gymsdk.ExerciseSetResponse
//	@Security	BearerAuth
//	@Router		/exercisesets [get]
func (h *ExerciseSetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sets, err := h.ExerciseSets.List(r.Context(), actor(r.Context()))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(sets, exerciseSetResponse))
}

// HandleGet
//
//	@Summary	Get an exercise set
//	@Tags		Exercise Sets
//	@Produce	json
//	@Param		id	path		string	true	"Exercise set ID"
//	@Success	200	{object}	gymsdk.ExerciseSetResponse
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/exercisesets/{id} [get]
func (h *ExerciseSetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	es, err := h.ExerciseSets.Get(r.Context(), actor(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exerciseSetResponse(es))
}

// HandleCreate
//
//	@Summary	Create an exercise set
//	@Tags		Exercise Sets
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.ExerciseSetRequest	true	"Exercise set"
//	@Success	201		{object}	gymsdk.ExerciseSetResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Security	BearerAuth
//	@Router		/exercisesets [post]
func (h *ExerciseSetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.ExerciseSetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	es, err := h.ExerciseSets.Create(r.Context(), actor(r.Context()), service.ExerciseSetWrite{
		WorkoutID:  req.Workout,
		ExerciseID: req.Exercise,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, exerciseSetResponse(es))
}

// HandleUpdate
//
//	@Summary	Update an exercise set
//	@Tags		Exercise Sets
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string						true	"Exercise set ID"
//	@Param		request	body		gymsdk.ExerciseSetRequest	true	"Exercise set"
//	@Success	200		{object}	gymsdk.ExerciseSetResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure	404		{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/exercisesets/{id} [put]
//	@Router		/exercisesets/{id} [patch]
func (h *ExerciseSetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.ExerciseSetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	es, err := h.ExerciseSets.Update(r.Context(), actor(r.Context()), r.PathValue("id"), service.ExerciseSetWrite{
		WorkoutID:  req.Workout,
		ExerciseID: req.Exercise,
		Partial:    r.Method == http.MethodPatch,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exerciseSetResponse(es))
}

// HandleDelete
//
//	@Summary	Delete an exercise set
//	@Tags		Exercise Sets
//	@Param		id	path	string	true	"Exercise set ID"
//	@Success	204
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/exercisesets/{id} [delete]
func (h *ExerciseSetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.ExerciseSets.Delete(r.Context(), actor(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// HandleTotalRestTime sums the rest periods of an exercise set in minutes.
//
//	@Summary	Total rest time
//	@Tags		Exercise Sets
//	@Produce	json
//	@Param		id	path		string	true	"Exercise set ID"
//	@Success	200	{object}	gymsdk.TotalRestTimeResponse
//	@Failure	404	{object}	gymsdk.APIError	"Unknown exercise set or no sets"
//	@Security	BearerAuth
//	@Router		/exercisesets/{id}/total_rest_time [get]
func (h *ExerciseSetsHandler) HandleTotalRestTime(w http.ResponseWriter, r *http.Request) {
	es, total, err := h.ExerciseSets.TotalRestTime(r.Context(), actor(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.TotalRestTimeResponse{
		ExerciseSet:   es.ID,
		Exercise:      es.ExerciseName,
		TotalRestTime: total,
		Unit:          restUnitMinutes,
		Summary:       fmt.Sprintf("total time of rest in %s: %s minute(s).", es.ExerciseName, total.String()),
	})
}

// HandleHighestWeight reports the heaviest set of an exercise set.
//
//	@Summary	Highest weight
//	@Tags		Exercise Sets
//	@Produce	json
//	@Param		id	path		string	true	"Exercise set ID"
//	@Success	200	{object}	gymsdk.HighestWeightResponse
//	@Failure	404	{object}	gymsdk.APIError	"Unknown exercise set or no sets"
//	@Security	BearerAuth
//	@Router		/exercisesets/{id}/highest_weight [get]
func (h *ExerciseSetsHandler) HandleHighestWeight(w http.ResponseWriter, r *http.Request) {
	es, best, err := h.ExerciseSets.HighestWeight(r.Context(), actor(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, gymsdk.HighestWeightResponse{
		ExerciseSet: es.ID,
		Exercise:    es.ExerciseName,
		Weight:      best.Weight,
		WeightUnit:  string(best.WeightUnit),
		Summary:     fmt.Sprintf("the highest weight in %s: %s %s", es.ExerciseName, best.Weight.String(), best.WeightUnit),
	})
}
