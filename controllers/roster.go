package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/utils"
)

type RosterService interface {
	Comites(ctx context.Context, assemblyID string, withStatus bool) ([]models.Comite, error)
	EBs(ctx context.Context) ([]models.BoardMember, error)
	CRs(ctx context.Context) ([]models.BoardMember, error)
}

type RosterController struct {
	Service RosterService
	Logger  *slog.Logger
}

func (rc RosterController) GetComites() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		query := r.URL.Query()
		comites, err := rc.Service.Comites(r.Context(), query.Get("assemblyId"), query.Get("withStatus") == "true")
		if err != nil {
			respondWithServiceError(w, r, rc.Logger, err, "Failed to get committees")
			return
		}
		utils.ResponseJSON(w, comites)
	}
}

func (rc RosterController) GetEBs() http.HandlerFunc {
	return rc.boardMembers(RosterService.EBs, "Failed to get executive board")
}

func (rc RosterController) GetCRs() http.HandlerFunc {
	return rc.boardMembers(RosterService.CRs, "Failed to get regional coordinators")
}

func (rc RosterController) boardMembers(list func(RosterService, context.Context) ([]models.BoardMember, error), message string) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		members, err := list(rc.Service, r.Context())
		if err != nil {
			respondWithServiceError(w, r, rc.Logger, err, message)
			return
		}
		utils.ResponseJSON(w, members)
	}
}
