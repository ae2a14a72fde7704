package handlers

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"net/http"
	"travel-planner-server/model"
)

// NewRouter builds the API router with every entity surface mounted.
func NewRouter() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})

	r.Route("/users", NewCRUDHandler[model.User]("user").Mount)
	r.Route("/cities", NewCRUDHandler[model.City]("city").Mount)
	r.Route("/travels", func(r chi.Router) {
		NewCRUDHandler[model.Travel]("travel", "Users").Mount(r)
		MountTravelRelations(r)
	})
	r.Route("/accommodations", NewCRUDHandler[model.Accommodation]("accommodation", "City", "Travel").Mount)
	r.Route("/transports", NewCRUDHandler[model.Transport]("transport", "StartCity", "EndCity").Mount)
	r.Route("/activities", NewCRUDHandler[model.Activity]("activity", "City", "Travel").Mount)
	r.Route("/expenses", NewCRUDHandler[model.Expense]("expense").Mount)

	r.Post("/resetTestDatabase", HandleResetTestDatabase)

	return r
}
