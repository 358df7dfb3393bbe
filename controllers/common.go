package controllers

import (
	"github.com/AbdullahAljelamneh/repright-application/config"
	"github.com/AbdullahAljelamneh/repright-application/services"

	"github.com/gin-gonic/gin"
)

// ledgerFor builds a ledger bound to the authenticated user's namespace of
// the document store.
func ledgerFor(c *gin.Context) *services.LedgerService {
	store := services.NewUserStore(services.NewGormStore(config.DB), c.GetUint("userID"))
	return services.NewLedgerService(store, services.SystemClock())
}

func storeFor(c *gin.Context) services.Store {
	return services.NewUserStore(services.NewGormStore(config.DB), c.GetUint("userID"))
}
