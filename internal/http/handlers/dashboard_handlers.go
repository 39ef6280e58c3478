package handlers

import (
	"log"
	"net/http"
)

// GetDashboardHandler godoc
// @Summary Summary counters and low-stock list for the home view
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} repo.Dashboard
// @Failure 500 {string} string "Internal error"
// @Router /dashboard [get]
func GetDashboardHandler(w http.ResponseWriter, r *http.Request) {
	d, err := dashboardRepo.GetDashboard()
	if err != nil {
		http.Error(w, "failed to fetch dashboard", http.StatusInternalServerError)
		return
	}
	if err := writeJSON(w, http.StatusOK, d); err != nil {
		log.Printf("Failed to write JSON response: %v", err)
	}
}
