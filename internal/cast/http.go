// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package cast

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinecast/internal/platform/request"
	"github.com/taibuivan/cinecast/internal/platform/respond"
)

// Handler implements the HTTP layer of the cast service.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Routes returns a [chi.Router] with the cast CRUD endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createCast)
	router.Get("/", handler.listCasts)
	router.Get("/{id}", handler.getCast)
	router.Put("/{id}", handler.updateCast)
	router.Delete("/{id}", handler.deleteCast)

	return router
}

func (handler *Handler) createCast(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.CreateCast(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, c)
}

func (handler *Handler) listCasts(writer http.ResponseWriter, request *http.Request) {
	casts, err := handler.service.ListCasts(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, casts)
}

func (handler *Handler) getCast(writer http.ResponseWriter, request *http.Request) {
	castID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.GetCast(request.Context(), castID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) updateCast(writer http.ResponseWriter, request *http.Request) {
	castID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.UpdateCast(request.Context(), castID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}

func (handler *Handler) deleteCast(writer http.ResponseWriter, request *http.Request) {
	castID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	c, err := handler.service.DeleteCast(request.Context(), castID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, c)
}
