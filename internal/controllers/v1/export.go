package v1

import (
	"net/http"

	"github.com/agentcash/backend/internal/export"
	"github.com/agentcash/backend/internal/httputil"
	"github.com/gin-gonic/gin"
	"golang.org/x/text/language"
)

// @Summary		Allowed HTTP verbs
// @Description	Returns an empty response with the HTTP Header "allow" set to the allowed HTTP verbs
// @Tags			Export
// @Success		204
// @Router			/v1/owners/{ownerId}/export [options]
func OptionsExport(c *gin.Context) {
	httputil.OptionsGet(c)
}

// @Summary		Export ledger
// @Description	Returns the derived ledger as a CSV download with numbers formatted for the requested locale
// @Tags			Export
// @Produce		text/csv
// @Success		200
// @Failure		400	{object}	httpError
// @Failure		500	{object}	httpError
// @Param			ownerId	path	string	true	"ID of the owner"
// @Param			locale	query	string	false	"BCP 47 language tag for number formatting. Defaults to id-ID"
// @Router			/v1/owners/{ownerId}/export [get]
func (co Controller) GetExport(c *gin.Context) {
	var uri URIOwner
	err := c.ShouldBindUri(&uri)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	tag := language.Indonesian
	if locale := c.Query("locale"); locale != "" {
		parsed, err := language.Parse(locale)
		if err != nil {
			c.JSON(http.StatusBadRequest, httpError{Error: err.Error()})
			return
		}
		tag = parsed
	}

	watcher, err := co.Ledgers.Watcher(uri.OwnerID)
	if err != nil {
		c.JSON(status(err), httpError{Error: err.Error()})
		return
	}

	body, err := export.CSV(watcher.Snapshot(), tag)
	if err != nil {
		c.JSON(http.StatusInternalServerError, httpError{Error: err.Error()})
		return
	}

	c.Header("content-disposition", `attachment; filename="ledger.csv"`)
	c.Data(http.StatusOK, "text/csv", body)
}
