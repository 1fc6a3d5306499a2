package controllers

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gorilla/mux"

	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/utils"
)

type ParticipantService interface {
	Participants(ctx context.Context, assemblyID, participantType string) ([]models.Participant, error)
	BulkInsertParticipants(ctx context.Context, assemblyID string, inputs []models.ParticipantInput) (int, error)
}

type ParticipantController struct {
	Service ParticipantService
	Logger  *slog.Logger
}

func (pc ParticipantController) GetParticipants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		participantType := strings.TrimSpace(r.URL.Query().Get("type"))
		participants, err := pc.Service.Participants(r.Context(), mux.Vars(r)["id"], participantType)
		if err != nil {
			respondWithServiceError(w, r, pc.Logger, err, "Failed to get participants")
			return
		}
		utils.ResponseJSON(w, participants)
	}
}

func (pc ParticipantController) ImportParticipants() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var inputs []models.ParticipantInput
		if err := utils.DecodeJSON(r, &inputs); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		count, err := pc.Service.BulkInsertParticipants(r.Context(), mux.Vars(r)["id"], inputs)
		if err != nil {
			respondWithServiceError(w, r, pc.Logger, err, "Failed to import participants")
			return
		}
		utils.ResponseJSONStatus(w, http.StatusCreated, map[string]int{"inserted": count})
	}
}
