package handlers

import "net/http"

// Banner is the service identification payload served at the root path.
type Banner struct {
	Name    string `json:"name"`
	Version string `json:"version"`
}

// Index serves the service banner
// @Summary      Service banner
// @Description  Returns the service name and version. Used as a liveness probe.
// @Tags         service
// @Produce      json
// @Success      200  {object}  Banner
// @Router       / [get]
func Index(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, Banner{
		Name:    "Account REST API Service",
		Version: "1.0",
	})
}

// Health reports service health
// @Summary      Health check
// @Description  Returns OK while the service is able to serve requests.
// @Tags         service
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func Health(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "OK"})
}
