package controllers

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"

	"github.com/ifmsabrazil/adminpanel/models"
	"github.com/ifmsabrazil/adminpanel/utils"
)

type AssemblyService interface {
	List(ctx context.Context) ([]models.Assembly, error)
	ListActive(ctx context.Context) ([]models.Assembly, error)
	NextUpcoming(ctx context.Context) (*models.Assembly, error)
	Get(ctx context.Context, id string) (models.Assembly, error)
	Create(ctx context.Context, actor string, in models.AssemblyInput) (models.Assembly, error)
	Update(ctx context.Context, actor, id string, patch models.AssemblyPatch) (models.Assembly, error)
	Archive(ctx context.Context, actor, id string) (models.Assembly, error)
	UpdatePaymentRequired(ctx context.Context, actor, id string) (models.Assembly, error)
	Delete(ctx context.Context, actor, id, confirmation string) (models.AssemblyDeletion, error)
	ReportData(ctx context.Context, id string) (models.AssemblyReport, error)
	Stats(ctx context.Context, id string) (models.RegistrationStats, error)
}

type AssemblyController struct {
	Service AssemblyService
	Logger  *slog.Logger
}

type deleteAssemblyRequest struct {
	ConfirmationText string `json:"confirmationText"`
}

func (ac AssemblyController) GetAssemblies() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list := ac.Service.List
		if r.URL.Query().Get("active") == "true" {
			list = ac.Service.ListActive
		}
		items, err := list(r.Context())
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to get assemblies")
			return
		}
		utils.ResponseJSON(w, items)
	}
}

func (ac AssemblyController) GetUpcomingAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		next, err := ac.Service.NextUpcoming(r.Context())
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to get upcoming assembly")
			return
		}
		utils.ResponseJSON(w, next)
	}
}

func (ac AssemblyController) GetAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assembly, err := ac.Service.Get(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to get assembly")
			return
		}
		utils.ResponseJSON(w, assembly)
	}
}

func (ac AssemblyController) CreateAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var input models.AssemblyInput
		if err := utils.DecodeJSON(r, &input); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		assembly, err := ac.Service.Create(r.Context(), Actor(r.Context()), input)
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to create assembly")
			return
		}
		utils.ResponseJSONStatus(w, http.StatusCreated, assembly)
	}
}

func (ac AssemblyController) UpdateAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch models.AssemblyPatch
		if err := utils.DecodeJSON(r, &patch); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		assembly, err := ac.Service.Update(r.Context(), Actor(r.Context()), mux.Vars(r)["id"], patch)
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to update assembly")
			return
		}
		utils.ResponseJSON(w, assembly)
	}
}

func (ac AssemblyController) ArchiveAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assembly, err := ac.Service.Archive(r.Context(), Actor(r.Context()), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to archive assembly")
			return
		}
		utils.ResponseJSON(w, assembly)
	}
}

func (ac AssemblyController) UpdatePaymentRequired() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		assembly, err := ac.Service.UpdatePaymentRequired(r.Context(), Actor(r.Context()), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to update payment requirement")
			return
		}
		utils.ResponseJSON(w, assembly)
	}
}

func (ac AssemblyController) DeleteAssembly() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req deleteAssemblyRequest
		if err := utils.DecodeJSON(r, &req); err != nil {
			utils.RespondWithError(w, http.StatusBadRequest, models.Error{Message: "Invalid request body"})
			return
		}
		result, err := ac.Service.Delete(r.Context(), Actor(r.Context()), mux.Vars(r)["id"], req.ConfirmationText)
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to delete assembly")
			return
		}
		utils.ResponseJSON(w, result)
	}
}

func (ac AssemblyController) GetReport() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		report, err := ac.Service.ReportData(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to get report data")
			return
		}
		utils.ResponseJSON(w, report)
	}
}

func (ac AssemblyController) GetStats() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		stats, err := ac.Service.Stats(r.Context(), mux.Vars(r)["id"])
		if err != nil {
			respondWithServiceError(w, r, ac.Logger, err, "Failed to get registration stats")
			return
		}
		utils.ResponseJSON(w, stats)
	}
}
