package main

import (
	"log"
	"net/http"
	"travel-planner-server/handlers"
)

func SetupServer(port string) *http.Server {
	server := &http.Server{
		Addr:    ":" + port,
		Handler: handlers.NewRouter(),
	}

	return server
}

func SetupRoutes(port string) {
	server := SetupServer(port)

	log.Println("Server listening on port " + port)
	err := server.ListenAndServe()
	if err != nil {
		log.Fatalf("Server stopped: %v", err)
	}
}
