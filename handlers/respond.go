package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"github.com/go-chi/chi/v5"
	"gorm.io/gorm"
	"log"
	"net/http"
	"strconv"
	"strings"
)

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	err := json.NewEncoder(w).Encode(payload)
	if err != nil {
		log.Println("Error encoding JSON: ", err)
	}
}

// writeRepositoryError translates an error raised while operating on the
// record with the given kind and id. Not found becomes a 404 naming both,
// unique violations become a 409, everything else a 500.
func writeRepositoryError(w http.ResponseWriter, err error, kind string, id int) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		log.Printf("%s %d not found: %v", kind, id, err)
		http.Error(w, fmt.Sprintf("%s %d not found", kind, id), http.StatusNotFound)
	case isUniqueViolation(err):
		log.Println("Unique constraint violated: ", err)
		http.Error(w, "Conflict with an existing record", http.StatusConflict)
	default:
		log.Println("Error while interacting with the database: ", err)
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

// writeStorageError is the id-less variant used by create and list.
func writeStorageError(w http.ResponseWriter, err error) {
	if isUniqueViolation(err) {
		log.Println("Unique constraint violated: ", err)
		http.Error(w, "Conflict with an existing record", http.StatusConflict)
		return
	}
	log.Println("Error while interacting with the database: ", err)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}

func isUniqueViolation(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	// fallback for drivers without error translation
	message := err.Error()
	return strings.Contains(message, "duplicate key") || strings.Contains(message, "UNIQUE constraint")
}

// pathID parses a positive numeric path parameter.
func pathID(r *http.Request, name string) (int, bool) {
	id, err := strconv.Atoi(chi.URLParam(r, name))
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func closeBody(r *http.Request) {
	err := r.Body.Close()
	if err != nil {
		log.Println("Error closing request body: ", err)
	}
}
