package controllers

import (
	"net/http"

	"github.com/gorilla/mux"
)

type Router struct {
	Controller   Controller
	Assemblies   AssemblyController
	Participants ParticipantController
	Analytics    AnalyticsController
	Rosters      RosterController
}

// Handler registers every route. Everything but the health check requires a
// bearer token.
func (rt Router) Handler() http.Handler {
	router := mux.NewRouter()
	router.Use(rt.Controller.TimeoutMiddleware)
	router.HandleFunc("/healthz", rt.Controller.Healthz()).Methods("GET")

	api := router.NewRoute().Subrouter()
	api.Use(rt.Controller.TokenVerifyMiddleware)

	api.HandleFunc("/assemblies", rt.Assemblies.GetAssemblies()).Methods("GET")
	api.HandleFunc("/assemblies", rt.Assemblies.CreateAssembly()).Methods("POST")
	api.HandleFunc("/assemblies/upcoming", rt.Assemblies.GetUpcomingAssembly()).Methods("GET")
	api.HandleFunc("/assemblies/{id}", rt.Assemblies.GetAssembly()).Methods("GET")
	api.HandleFunc("/assemblies/{id}", rt.Assemblies.UpdateAssembly()).Methods("PATCH")
	api.HandleFunc("/assemblies/{id}", rt.Assemblies.DeleteAssembly()).Methods("DELETE")
	api.HandleFunc("/assemblies/{id}/archive", rt.Assemblies.ArchiveAssembly()).Methods("POST")
	api.HandleFunc("/assemblies/{id}/payment-required", rt.Assemblies.UpdatePaymentRequired()).Methods("POST")
	api.HandleFunc("/assemblies/{id}/report", rt.Assemblies.GetReport()).Methods("GET")
	api.HandleFunc("/assemblies/{id}/stats", rt.Assemblies.GetStats()).Methods("GET")

	api.HandleFunc("/assemblies/{id}/participants", rt.Participants.GetParticipants()).Methods("GET")
	api.HandleFunc("/assemblies/{id}/participants", rt.Participants.ImportParticipants()).Methods("POST")

	api.HandleFunc("/assemblies/{id}/analytics", rt.Analytics.GetAnalytics()).Methods("GET")

	api.HandleFunc("/rosters/comites", rt.Rosters.GetComites()).Methods("GET")
	api.HandleFunc("/rosters/ebs", rt.Rosters.GetEBs()).Methods("GET")
	api.HandleFunc("/rosters/crs", rt.Rosters.GetCRs()).Methods("GET")

	return router
}
