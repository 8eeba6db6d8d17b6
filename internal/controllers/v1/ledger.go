package v1

import (
	"net/http"

	"github.com/agentcash/backend/internal/httputil"
	"github.com/agentcash/backend/internal/ledger"
	"github.com/gin-gonic/gin"
)

// LedgerResponse wraps a derived ledger snapshot.
type LedgerResponse struct {
	Error *string          `json:"error"` // The error, if any occurred
	Data  *ledger.Snapshot `json:"data"`  // The derived ledger
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/owners/{ownerId}/ledger [options]
func OptionsLedger(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Get ledger
// @Description	Returns the derived ledger for the owner: all transactions in chronological order with cash in, cash out and running balance, plus the final balance and the fee total for today
// @Tags			Ledger
// @Produce		json
// @Success		200	{object}	LedgerResponse
// @Failure		400	{object}	LedgerResponse
// @Failure		500	{object}	LedgerResponse
// @Param			ownerId	path	string	true	"ID of the owner"
// @Router			/v1/owners/{ownerId}/ledger [get]
func (co Controller) GetLedger(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{Error: &e})
		return
	}

	watcher, err := co.Ledgers.Watcher(uri.OwnerID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), LedgerResponse{Error: &e})
		return
	}

	// A subscription error does not invalidate the last good snapshot.
	// Return both so the consumer can render stale data with an error
	// indicator.
	snapshot := watcher.Snapshot()
	response := LedgerResponse{Data: &snapshot}
	if err := watcher.LastError(); err != nil {
		e := err.Error()
		response.Error = &e
	}

	c.JSON(http.StatusOK, response)
}

// @Summary		Stream ledger
// @Description	Pushes a server-sent event with the full derived ledger on every change to the owner's transactions
// @Tags			Ledger
// @Produce		text/event-stream
// @Success		200	{object}	ledger.Snapshot
// @Failure		400	{object}	httpError
// @Param			ownerId	path	string	true	"ID of the owner"
// @Router			/v1/owners/{ownerId}/ledger/stream [get]
func (co Controller) StreamLedger(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	watcher, err := co.Ledgers.Watcher(uri.OwnerID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	updates, cancel := watcher.Updates()
	defer cancel()

	// Deliver the current state first so consumers do not wait for the
	// next change
	c.SSEvent("snapshot", watcher.Snapshot())
	c.Writer.Flush()

	for {
		select {
		case snapshot := <-updates:
			c.SSEvent("snapshot", snapshot)
			c.Writer.Flush()
		case <-c.Request.Context().Done():
			return
		}
	}
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Ledger
// @Success		204
// @Router			/v1/owners/{ownerId}/watch [options]
func OptionsWatch(c *gin.Context) {
	httputil.OptionsDelete(c)
}

// @Summary		Detach watcher
// @Description	Cancels the owner's store subscription. The next ledger request establishes a fresh one
// @Tags			Ledger
// @Success		204
// @Failure		400	{object}	httpError
// @Param			ownerId	path	string	true	"ID of the owner"
// @Router			/v1/owners/{ownerId}/watch [delete]
func (co Controller) DeleteWatch(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	co.Ledgers.Detach(uri.OwnerID)
	c.Status(http.StatusNoContent)
}
