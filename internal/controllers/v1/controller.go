// Package v1 implements the v1 API of the agentcash backend.
package v1

import (
	"github.com/agentcash/backend/internal/store"
	"github.com/agentcash/backend/internal/watch"
	"github.com/gin-gonic/gin"
)

// Controller carries the collaborators of the v1 API handlers.
type Controller struct {
	Store   store.RecordStore
	Ledgers *watch.Manager
}

// RegisterOwnerRoutes registers the per-owner routes with the
// RouterGroup that is passed.
func RegisterOwnerRoutes(co Controller, r *gin.RouterGroup) {
	{
		r.OPTIONS("/ledger", OptionsLedger)
		r.GET("/ledger", co.GetLedger)
		r.GET("/ledger/stream", co.StreamLedger)
	}

	{
		r.OPTIONS("/transactions", OptionsTransactions)
		r.GET("/transactions", co.GetTransactions)
		r.POST("/transactions", co.CreateTransaction)
	}

	{
		r.OPTIONS("/watch", OptionsWatch)
		r.DELETE("/watch", co.DeleteWatch)
	}

	{
		r.OPTIONS("/export", OptionsExport)
		r.GET("/export", co.GetExport)
	}
}

// URIOwner is the owner scope of all v1 resources.
type URIOwner struct {
	OwnerID string `uri:"ownerId" binding:"required"` // Opaque identity that owns the ledger
}
