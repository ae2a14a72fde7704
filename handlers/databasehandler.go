package handlers

import (
	"log"
	"net/http"
	"travel-planner-server/db"
)

func HandleResetTestDatabase(w http.ResponseWriter, r *http.Request) {
	err := db.ResetTestDatabase()
	if err != nil {
		log.Println("Error resetting test database: ", err)
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.WriteHeader(http.StatusOK)
}
