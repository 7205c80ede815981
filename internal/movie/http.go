// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package movie

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	requestutil "github.com/taibuivan/cinecast/internal/platform/request"
	"github.com/taibuivan/cinecast/internal/platform/respond"
)

// Handler implements the HTTP layer of the movie service.
type Handler struct {
	service        *Service
	castServiceURL string
}

// NewHandler wires the handler. castServiceURL is reported by GET /casts_service_host.
func NewHandler(service *Service, castServiceURL string) *Handler {
	return &Handler{service: service, castServiceURL: castServiceURL}
}

// Routes returns a [chi.Router] with the movie CRUD endpoints.
func (handler *Handler) Routes() chi.Router {
	router := chi.NewRouter()

	router.Post("/", handler.createMovie)
	router.Get("/", handler.listMovies)
	router.Get("/casts_service_host", handler.castServiceHost)
	router.Get("/{id}", handler.getMovie)
	router.Put("/{id}", handler.updateMovie)
	router.Delete("/{id}", handler.deleteMovie)

	return router
}

func (handler *Handler) createMovie(writer http.ResponseWriter, request *http.Request) {
	var input CreateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.CreateMovie(request.Context(), input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.Created(writer, m)
}

func (handler *Handler) listMovies(writer http.ResponseWriter, request *http.Request) {
	movies, err := handler.service.ListMovies(request.Context())
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, movies)
}

func (handler *Handler) getMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.GetMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) updateMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	var input UpdateInput
	if err := requestutil.DecodeJSON(request, &input); err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.UpdateMovie(request.Context(), movieID, input)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

func (handler *Handler) deleteMovie(writer http.ResponseWriter, request *http.Request) {
	movieID, err := requestutil.ID(request, "id")
	if err != nil {
		respond.Error(writer, request, err)
		return
	}

	m, err := handler.service.DeleteMovie(request.Context(), movieID)
	if err != nil {
		respond.Error(writer, request, err)
		return
	}
	respond.OK(writer, m)
}

// castServiceHost handles GET /casts_service_host, an operational aid.
func (handler *Handler) castServiceHost(writer http.ResponseWriter, request *http.Request) {
	respond.OK(writer, map[string]string{"casts_service_url": handler.castServiceURL})
}
