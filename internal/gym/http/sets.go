package http

import (
	"net/http"

	"github.com/aussiebroadwan/gymtrack/internal/gym/service"
	"github.com/aussiebroadwan/gymtrack/pkg/gymsdk"
	"github.com/aussiebroadwan/gymtrack/pkg/httpx"
)

type SetsHandler struct {
	Sets *service.SetService
}

// HandleList lists the caller's sets, optionally filtered by weight unit.
//
//	@Summary	List sets
//	@Tags		Sets
//	@Produce	json
//	@Param		weight_unit	query		string	false	"Weight unit filter"	Enums(KG, BW, KH)
//	@Success	200			{array}		gymsdk.SetResponse
//	@Failure	400			{object}	gymsdk.APIError	"Unknown weight unit"
//	@Security	BearerAuth
//	@Router		/sets [get]
func (h *SetsHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	sets, err := h.Sets.List(r.Context(), actor(r.Context()), r.URL.Query().Get("weight_unit"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, mapSlice(sets, setResponse))
}

//	@Summary	Get a set
//	@Tags		Sets
//	@Produce	json
//	@Param		id	path		string	true	"Set ID"
//	@Success	200	{object}	gymsdk.SetResponse
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/sets/{id} [get]
func (h *SetsHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	set, err := h.Sets.Get(r.Context(), actor(r.Context()), r.PathValue("id"))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, setResponse(set))
}

// HandleCreate adds a set to a visible exercise set. Omitted fields take
// their defaults.
//
//	@Summary	Create a set
//	@Tags		Sets
//	@Accept		json
//	@Produce	json
//	@Param		request	body		gymsdk.SetRequest	true	"Set"
//	@Success	201		{object}	gymsdk.SetResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Security	BearerAuth
//	@Router		/sets [post]
func (h *SetsHandler) HandleCreate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.SetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	set, err := h.Sets.Create(r.Context(), actor(r.Context()), setWrite(req, false))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusCreated, setResponse(set))
}

//	@Summary	Update a set
//	@Tags		Sets
//	@Accept		json
//	@Produce	json
//	@Param		id		path		string				true	"Set ID"
//	@Param		request	body		gymsdk.SetRequest	true	"Set"
//	@Success	200		{object}	gymsdk.SetResponse
//	@Failure	400		{object}	gymsdk.APIError	"Validation failed"
//	@Failure	404		{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/sets/{id} [put]
//	@Router		/sets/{id} [patch]
func (h *SetsHandler) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	var req gymsdk.SetRequest
	if !decodeBody(w, r, &req) {
		return
	}
	set, err := h.Sets.Update(r.Context(), actor(r.Context()), r.PathValue("id"), setWrite(req, r.Method == http.MethodPatch))
	if err != nil {
		writeServiceError(w, r, err)
		return
	}
	httpx.WriteJSON(w, http.StatusOK, setResponse(set))
}

//	@Summary	Delete a set
//	@Tags		Sets
//	@Param		id	path	string	true	"Set ID"
//	@Success	204
//	@Failure	404	{object}	gymsdk.APIError
//	@Security	BearerAuth
//	@Router		/sets/{id} [delete]
func (h *SetsHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	if err := h.Sets.Delete(r.Context(), actor(r.Context()), r.PathValue("id")); err != nil {
		writeServiceError(w, r, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
