package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// GetDashboard loads the day ledger, rolling the day over first when the
// last visit was on an earlier calendar day.
func GetDashboard(c *gin.Context) {
	snapshot, err := ledgerFor(c).Load()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snapshot)
}
