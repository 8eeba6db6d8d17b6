package v1_test

import (
	"net/http"

	"github.com/agentcash/backend/internal/gateway"
	"github.com/agentcash/backend/test"
)

func (suite *TestSuiteStandard) TestExport() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000", Reference: "RCPT-0001",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/export", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	suite.Assert().Equal("text/csv", recorder.Header().Get("content-type"))
	suite.Assert().Contains(recorder.Header().Get("content-disposition"), "ledger.csv")
	suite.Assert().Contains(recorder.Body.String(), "RCPT-0001")
	suite.Assert().Contains(recorder.Body.String(), "503.000", "default locale is Indonesian")
}

func (suite *TestSuiteStandard) TestExportLocale() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/export?locale=en", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)
	suite.Assert().Contains(recorder.Body.String(), "503,000")

	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/export?locale=%21%21", nil)
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)
}

func (suite *TestSuiteStandard) TestExportOptions() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/owners/agent-7/export", nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))
}
