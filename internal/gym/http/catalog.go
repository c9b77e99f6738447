package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

// CatalogHandler serves exercises and muscle groups. Reads are open to any
// authenticated user, writes need staff.
type CatalogHandler struct {
	Catalog *service.CatalogService
}

//	@Summary	List exercises
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	gymsdk.ExerciseResponse
//	@Security	BearerAuth
//	@Router		/exercises [get]
func (h *CatalogHandler) HandleListExercises(w http.ResponseWriter, r *http.Request) {
	exercises, err := h.Catalog.ListExercises(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(exercises, exerciseResponse))
}

//	@Summary	Get an exercise
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		string	true	"Exercise ID"
//	@Success	200	{object}	gymsdk.ExerciseResponse
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/exercises/{id} [get]
func (h *CatalogHandler) HandleGetExercise(w http.ResponseWriter, r *http.Request) {
	exercise, err := h.Catalog.GetExercise(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, exerciseResponse(exercise))
}

//	@Summary	Create an exercise
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.ExerciseRequest	true	"Exercise"
//	@Success	201		{object}	gymsdk.ExerciseResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure	403		{object}	gymsdk.APIError	"Staff only"
//	@Security	BearerAuth
//	@Router		/exercises [post]
func (h *CatalogHandler) HandleCreateExercise(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.ExerciseRequest
	if !decodeBody(w, r, &req) {
		return
	}
	exercise, err := h.Catalog.CreateExercise(r.Context(), actor(r.Context()), service.CatalogInput{
		Name:           req.Name,
		Description:    req.Description,
		MuscleGroupIDs: req.MuscleGroups,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, exerciseResponse(exercise))
}

//	@Summary	Delete an exercise
//	@Tags		Catalog
//	@Param		id	path	string	true	"Exercise ID"
//	@Success	204
//	@Failure	403	{object}	gymsdk.APIError	"Staff only"
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/exercises/{id} [delete]
func (h *CatalogHandler) HandleDeleteExercise(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteExercise(r.Context(), actor(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

//	@Summary	List muscle groups
//	@Tags		Catalog
//	@Produce	json
//	@Success	200	{array}	gymsdk.MuscleGroupResponse
//	@Security	BearerAuth
//	@Router		/musclegroups [get]
func (h *CatalogHandler) HandleListMuscleGroups(w http.ResponseWriter, r *http.Request) {
	groups, err := h.Catalog.ListMuscleGroups(r.Context())
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(groups, muscleGroupResponse))
}

//	@Summary	Get a muscle group
//	@Tags		Catalog
//	@Produce	json
//	@Param		id	path		string	true	"Muscle group ID"
//	@Success	200	{object}	gymsdk.MuscleGroupResponse
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/musclegroups/{id} [get]
func (h *CatalogHandler) HandleGetMuscleGroup(w http.ResponseWriter, r *http.Request) {
	group, err := h.Catalog.GetMuscleGroup(r.Context(), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, muscleGroupResponse(group))
}

//	@Summary	Create a muscle group
//	@Tags		Catalog
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.MuscleGroupRequest	true	"Muscle group"
//	@Success	201		{object}	gymsdk.MuscleGroupResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure	403		{object}	gymsdk.APIError	"Staff only"
//	@Security	BearerAuth
//	@Router		/musclegroups [post]
func (h *CatalogHandler) HandleCreateMuscleGroup(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.MuscleGroupRequest
	if !decodeBody(w, r, &req) {
		return
	}
	group, err := h.Catalog.CreateMuscleGroup(r.Context(), actor(r.Context()), service.CatalogInput{
		Name:        req.Name,
		Description: req.Description,
	})
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, muscleGroupResponse(group))
}

//	@Summary	Delete a muscle group
//	@Tags		Catalog
//	@Param		id	path	string	true	"Muscle group ID"
//	@Success	204
//	@Failure	403	{object}	gymsdk.APIError	"Staff only"
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/musclegroups/{id} [delete]
func (h *CatalogHandler) HandleDeleteMuscleGroup(w http.ResponseWriter, r *http.Request) {
	if err := h.Catalog.DeleteMuscleGroup(r.Context(), actor(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
