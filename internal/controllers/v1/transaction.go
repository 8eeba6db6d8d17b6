package v1

import (
	"net/http"

	"github.com/agentcash/backend/internal/gateway"
	"github.com/agentcash/backend/internal/httputil"
	"github.com/agentcash/backend/internal/ledger"
	"github.com/agentcash/backend/internal/models"
	"github.com/agentcash/backend/internal/types"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/ryanuber/go-glob"
)

// TransactionListResponse wraps the filtered ledger rows.
type TransactionListResponse struct {
	Error *string      `json:"error"` // The error, if any occurred
	Data  []ledger.Row `json:"data"`  // List of ledger rows
}

// TransactionCreateResponse reports the outcome of a submission.
type TransactionCreateResponse struct {
	Error *string    `json:"error"` // The error, if any occurred
	Data  *CreatedID `json:"data"`  // ID of the created transaction
}

type CreatedID struct {
	ID uuid.UUID `json:"id" example:"d430d7c3-d14c-4712-9336-ee56965a6673"` // Store-assigned ID of the new transaction
}

// TransactionQueryFilter narrows the transaction listing.
type TransactionQueryFilter struct {
	Kind      string `form:"kind"`      // Filter by transaction kind
	Date      string `form:"date"`      // Exact business date in YYYY-MM-DD format
	Reference string `form:"reference"` // Glob pattern matched against the reference
	Note      string `form:"note"`      // Glob pattern matched against the note
}

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Transactions
// @Success		204
// @Router			/v1/owners/{ownerId}/transactions [options]
func OptionsTransactions(c *gin.Context) {
	httputil.OptionsGetPost(c)
}

// @Summary		Get transactions
// @Description	Returns the owner's transactions as annotated ledger rows, optionally filtered
// @Tags			Transactions
// @Produce		json
// @Success		200	{object}	TransactionListResponse
// @Failure		400	{object}	TransactionListResponse
// @Failure		500	{object}	TransactionListResponse
// @Param			ownerId		path	string	true	"ID of the owner"
// @Param			kind		query	string	false	"Filter by transaction kind"
// @Param			date		query	string	false	"Filter by business date (YYYY-MM-DD)"
// @Param			reference	query	string	false	"Glob pattern for the reference, e.g. RCPT-*"
// @Param			note		query	string	false	"Glob pattern for the note"
// @Router			/v1/owners/{ownerId}/transactions [get]
func (co Controller) GetTransactions(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	var filter TransactionQueryFilter
	if err := c.ShouldBindQuery(&filter); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionListResponse{Error: &e})
		return
	}

	watcher, err := co.Ledgers.Watcher(uri.OwnerID)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionListResponse{Error: &e})
		return
	}

	rows := make([]ledger.Row, 0)
	for _, row := range watcher.Snapshot().Rows {
		if filter.matches(row) {
			rows = append(rows, row)
		}
	}

	c.JSON(http.StatusOK, TransactionListResponse{Data: rows})
}

// matches reports whether a ledger row passes the filter.
func (f TransactionQueryFilter) matches(row ledger.Row) bool {
	if f.Kind != "" && row.Kind != models.Kind(f.Kind) {
		return false
	}

	if f.Date != "" {
		date, err := types.ParseDate(f.Date)
		if err != nil || !row.Date.Equal(date) {
			return false
		}
	}

	if f.Reference != "" && !glob.Glob(f.Reference, row.Reference) {
		return false
	}

	if f.Note != "" && !glob.Glob(f.Note, row.Note) {
		return false
	}

	return true
}

// @Summary		Create transaction
// @Description	Validates and stores one new transaction. The derived ledger refreshes through the next change notification
// @Tags			Transactions
// @Produce		json
// @Success		201		{object}	TransactionCreateResponse
// @Failure		400		{object}	TransactionCreateResponse
// @Failure		500		{object}	TransactionCreateResponse
// @Param			ownerId		path	string			true	"ID of the owner"
// @Param			transaction	body	gateway.Draft	true	"Transaction draft"
// @Router			/v1/owners/{ownerId}/transactions [post]
func (co Controller) CreateTransaction(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &e})
		return
	}

	var draft gateway.Draft
	if err := httputil.BindData(c, &draft); err != nil {
		e := err.Error()
		c.JSON(http.StatusBadRequest, TransactionCreateResponse{Error: &e})
		return
	}

	id, err := gateway.Submit(co.Store, uri.OwnerID, draft)
	if err != nil {
		e := err.Error()
		c.JSON(status(err), TransactionCreateResponse{Error: &e})
		return
	}

	c.JSON(http.StatusCreated, TransactionCreateResponse{Data: &CreatedID{ID: id}})
}
