package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/utils"
)

type AnalyticsComputer interface {
	Compute(ctx context.Context, assemblyID string) (models.AnalyticsReport, error)
}

type AnalyticsController struct {
	Aggregator AnalyticsComputer
	Logger     *slog.Logger
}

func (ac AnalyticsController) GetAnalytics() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ac.Aggregator.Compute(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to compute registration analytics")
			return
		}
		utils.ResponseJSON(w, report)
	}
}
