package controllers

import (
	"net/http"

	"github.com/shashiranjanraj/vinayak/pkg/response"
)

type HealthController struct{}

func NewHealthController() *HealthController {
	return &HealthController{}
}

// Root handles GET /: a plain-text liveness probe.
func (c *HealthController) Root(w http.ResponseWriter, _ *http.Request) {
	response.Text(w, http.StatusOK, "Backend is running")
}
