package handlers

import (
	"net/http"
)

// GetMetricsHandler godoc
// @Summary Shop dashboard metrics
// @Description Product, client and sale counts, total revenue and the best selling products
// @Tags metrics
// @Produce json
// @Success 200 {object} repo.Metrics
// @Failure 500 {string} string "Internal error"
// @Router /metrics [get]
func GetMetricsHandler(w http.ResponseWriter, r *http.Request) {
	metrics, err := metricsRepo.GetDashboardMetrics()
	if err != nil {
		http.Error(w, "could not compute metrics", http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, metrics)
}
