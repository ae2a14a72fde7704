package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
	"log"
	"net/http"
	"travel-planner-server/db"
	"travel-planner-server/dto"
	"travel-planner-server/model"
)

// MountTravelRelations registers the membership endpoints and the listings of
// the sub-entities belonging to a travel.
func MountTravelRelations(r chi.Router) {
	r.Get("/{id}/users", listTravelUsers)
	r.Post("/{id}/users", addTravelUsers)
	r.Delete("/{id}/users/{user_id}", removeTravelUser)

	r.Get("/{id}/accommodations", listTravelAccommodations)
	r.Get("/{id}/transports", listTravelTransports)
	r.Get("/{id}/activities", listTravelActivities)
	r.Get("/{id}/expenses", listTravelExpenses)
}

func listTravelUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid travel id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	membershipDAO := db.NewMembershipDAO(db.GetDB())
	users, err := membershipDAO.ListMembers(id)
	if err != nil {
		writeRepositoryError(w, err, "travel", id)
		return
	}

	shaped, err := dto.RenderList(dto.PolicyFor("user"), users)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shaped)
}

func addTravelUsers(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid travel id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	var userIDs []int
	err := json.NewDecoder(r.Body).Decode(&userIDs)
	if err != nil {
		log.Println("Error while decoding JSON: ", err)
		http.Error(w, "Wrong data provided", http.StatusBadRequest)
		return
	}
	defer closeBody(r)

	membershipDAO := db.NewMembershipDAO(db.GetDB())
	travel, err := membershipDAO.AddMembers(id, userIDs)
	if err != nil {
		writeRepositoryError(w, err, "travel", id)
		return
	}

	shaped, err := dto.PolicyFor("travel").Render(travel, false)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shaped)
}

func removeTravelUser(w http.ResponseWriter, r *http.Request) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid travel id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}
	userID, ok := pathID(r, "user_id")
	if !ok {
		log.Println("Invalid user id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	membershipDAO := db.NewMembershipDAO(db.GetDB())
	err := membershipDAO.RemoveMember(id, userID)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		log.Printf("Membership of user %d in travel %d not found: %v", userID, id, err)
		http.Error(w, fmt.Sprintf("travel %d or user %d not found", id, userID), http.StatusNotFound)
		return
	}
	if err != nil {
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// listTravelChildren lists the rows of one sub-entity type scoped to a travel.
// A travel without rows, existing or not, yields an empty list.
func listTravelChildren[T model.Entity](w http.ResponseWriter, r *http.Request, kind string, preloads ...string) {
	id, ok := pathID(r, "id")
	if !ok {
		log.Println("Invalid travel id")
		http.Error(w, "The provided id is not valid", http.StatusBadRequest)
		return
	}

	repository := db.NewRepository[T](db.GetDB(), preloads...)
	entities, err := repository.List(db.Filter{Field: "travel_id", Values: []any{id}})
	if err != nil {
		writeStorageError(w, err)
		return
	}

	shaped, err := dto.RenderList(dto.PolicyFor(kind), entities)
	if err != nil {
		log.Println("Error shaping response: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, shaped)
}

func listTravelAccommodations(w http.ResponseWriter, r *http.Request) {
	listTravelChildren[model.Accommodation](w, r, "accommodation", "City")
}

func listTravelTransports(w http.ResponseWriter, r *http.Request) {
	listTravelChildren[model.Transport](w, r, "transport", "StartCity", "EndCity")
}

func listTravelActivities(w http.ResponseWriter, r *http.Request) {
	listTravelChildren[model.Activity](w, r, "activity", "City")
}

func listTravelExpenses(w http.ResponseWriter, r *http.Request) {
	listTravelChildren[model.Expense](w, r, "expense")
}
