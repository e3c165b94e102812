package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getHome godoc
// @Summary Service banner
// @Description Reports that the event ledger is serving and where its API lives.
// @Tags system
// @Produce json
// @Success 200 {object} map[string]string
// @Router / [get]
func getHome(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"service": "event-ledger", "api": "/api/v1", "status": "ok"})
}
