package http

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"eventregistry/internal/delivery/http/controllers"
)

// NewRouter initializes the HTTP router with all application routes
func NewRouter(
	healthController *controllers.HealthController,
	eventController *controllers.EventController,
	participantController *controllers.ParticipantController,
	registrationController *controllers.RegistrationController,
) *http.ServeMux {
	mux := http.NewServeMux()

	// Events
	mux.HandleFunc("POST /events", eventController.CreateEvent)
	mux.HandleFunc("GET /events", eventController.ListEvents)
	mux.HandleFunc("GET /events/{eventID}", eventController.GetEvent)
	mux.HandleFunc("PATCH /events/{eventID}", eventController.UpdateEvent)
	mux.HandleFunc("DELETE /events/{eventID}", eventController.DeleteEvent)

	// Participants
	mux.HandleFunc("POST /participants", participantController.CreateParticipant)
	mux.HandleFunc("GET /participants", participantController.ListParticipants)
	mux.HandleFunc("GET /participants/{participantID}", participantController.GetParticipant)
	mux.HandleFunc("PATCH /participants/{participantID}", participantController.UpdateParticipant)
	mux.HandleFunc("DELETE /participants/{participantID}", participantController.DeleteParticipant)

	// Registrations
	mux.HandleFunc("POST /events/{eventID}/participants/{participantID}", registrationController.Register)
	mux.HandleFunc("DELETE /events/{eventID}/participants/{participantID}", registrationController.Remove)
	mux.HandleFunc("GET /events/{eventID}/participants", registrationController.ListEventParticipants)
	mux.HandleFunc("GET /participants/{participantID}/events", registrationController.ListParticipantEvents)

	// Health
	mux.HandleFunc("GET /health", healthController.Health)

	// Swagger
	mux.Handle("/swagger/", httpSwagger.WrapHandler)

	return mux
}
