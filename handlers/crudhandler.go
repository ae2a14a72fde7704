package handlers

import (
	"encoding/json"
	"errors"
	"github.com/go-chi/chi/v5"
	"log"
	"net/http"
	"travel-planner-server/db"
	"travel-planner-server/dto"
	"travel-planner-server/model"
)

// CRUDHandler serves the standard create, read, partial-update and delete
// surface of one entity type. Build it with NewCRUDHandler; kind names the
// entity in error messages and selects its visibility policy.
type CRUDHandler[T model.Entity] struct {
	kind     string
	policy   dto.Policy
	preloads []string
}

func NewCRUDHandler[T model.Entity](kind string, preloads ...string) *CRUDHandler[T] {
	return &CRUDHandler[T]{kind: kind, policy: dto.PolicyFor(kind), preloads: preloads}
}

func (handler *CRUDHandler[T]) repository() *db.Repository[T] {
	return db.NewRepository[T](db.GetDB(), handler.preloads...)
}

// Mount registers the CRUD routes on the router.
func (handler *CRUDHandler[T]) Mount(r chi.Router) {
	r.Get("/", handler.List)
	r.Post("/", handler.Create)
	r.Get("/{id}", handler.GetByID)
	r.Patch("/{id}", handler.Update)
	r.Delete("/{id}", handler.Delete)
}

func (handler *CRUDHandler[T]) Create(w http.ResponseWriter, r *http.Request) {
	fields, err := handler.policy.DecodeBody(r.Body)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer closeBody(r)

	err = handler.policy.CheckRequired(fields)
	if err != nil {
		log.Println("Missing required fields: ", err)
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	entity, err := dto.Decode[T](fields)
	if err != nil {
		log.Println("Invalid data: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}

	stored, err := handler.repository().Add(entity)
	if err != nil {
		writeStorageError(w, err)
		return
	}

	shaped, err := handler.policy.Render(stored, false)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusCreated, shaped)
}

func (handler *CRUDHandler[T]) GetByID(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid " + handler.kind + " id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	entity, err := handler.repository().GetById(id)
	if err != nil {
		writeRepositoryError(w, err, handler.kind, id)
		return
	}

	shaped, err := handler.policy.Render(entity, true)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shaped)
}

func (handler *CRUDHandler[T]) List(w http.ResponseWriter, r *http.Request) {
	entities, err := handler.repository().List()
	if err != nil {
		writeStorageError(w, err)
		return
	}

	shaped, err := dto.RenderList(handler.policy, entities)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shaped)
}

func (handler *CRUDHandler[T]) Update(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid " + handler.kind + " id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	fields, err := handler.policy.DecodeBody(r.Body)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer closeBody(r)

	entity, err := handler.repository().GetAndUpdate(id, fields)
	if err != nil {
		var typeError *json.UnmarshalTypeError
		if errors.As(err, &typeError) {
			log.Println("Invalid data: ", err)
			http.Error(w, "Wrong data provided", http.StatusBadRequest)
			return
		}
		writeRepositoryError(w, err, handler.kind, id)
		return
	}

	shaped, err := handler.policy.Render(entity, false)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shaped)
}

func (handler *CRUDHandler[T]) Delete(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid " + handler.kind + " id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	err := handler.repository().Delete(id)
	if err != nil {
		writeRepositoryError(w, err, handler.kind, id)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}
