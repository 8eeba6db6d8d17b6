package v1_test

import (
	"net/http"

	v1 "github.com/agentcash/backend/internal/controllers/v1"
	"github.com/agentcash/backend/internal/gateway"
	"github.com/agentcash/backend/test"
	"github.com/shopspring/decimal"
)

func (suite *TestSuiteStandard) createTransaction(owner string, draft gateway.Draft) {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/owners/"+owner+"/transactions", draft)
	suite.Require().Equal(http.StatusCreated, recorder.Code, "Creating a transaction failed: %s", recorder.Body.String())
}

func (suite *TestSuiteStandard) TestLedgerEmpty() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/ledger", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response v1.LedgerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Error)
	suite.Assert().Empty(response.Data.Rows)
	suite.Assert().True(response.Data.FinalBalance.IsZero())
	suite.Assert().True(response.Data.TodayFeeTotal.IsZero())
}

func (suite *TestSuiteStandard) TestLedgerReflectsSubmissions() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000",
	})
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "10:00", Kind: "CASH_WITHDRAWAL", Amount: "200000", Fee: "2000",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/ledger", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response v1.LedgerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)

	suite.Require().NotNil(response.Data)
	suite.Require().Len(response.Data.Rows, 2)
	suite.Assert().True(response.Data.Rows[0].RunningBalance.Equal(decimal.NewFromInt(503000)))
	suite.Assert().True(response.Data.Rows[1].RunningBalance.Equal(decimal.NewFromInt(301000)))
	suite.Assert().True(response.Data.FinalBalance.Equal(decimal.NewFromInt(301000)))
}

func (suite *TestSuiteStandard) TestLedgerScopedByOwner() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-8/ledger", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response v1.LedgerResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Empty(response.Data.Rows)
}

func (suite *TestSuiteStandard) TestDeleteWatch() {
	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/ledger", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/owners/agent-7/watch", nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)

	// Detaching without an active subscription is fine, too
	recorder = test.Request(suite.T(), suite.router, http.MethodDelete, "/v1/owners/agent-7/watch", nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)

	// The ledger is re-derived on the next request
	recorder = test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/ledger", nil)
	suite.Assert().Equal(http.StatusOK, recorder.Code)
}

func (suite *TestSuiteStandard) TestLedgerOptions() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/owners/agent-7/ledger", nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET", recorder.Header().Get("allow"))

	recorder = test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/owners/agent-7/watch", nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, DELETE", recorder.Header().Get("allow"))
}
