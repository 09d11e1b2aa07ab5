package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wazehfarhan/rento/internal/seed"
)

// resetHandler wipes every collection and reseeds the demo catalog.
func (a *API) resetHandler(c *gin.Context) {
	if err := seed.Reset(c, a.store); err != nil {
		serverError(c, "failed to reset data", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": "reset"})
}

// reconcileHandler repairs driver availability drift from partial
// booking writes.
func (a *API) reconcileHandler(c *gin.Context) {
	repaired, err := a.engine.Reconcile(c)
	if err != nil {
		serverError(c, "failed to reconcile drivers", err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"repaired": repaired})
}
