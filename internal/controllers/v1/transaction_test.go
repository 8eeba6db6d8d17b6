package v1_test

import (
	"net/http"
	"testing"

	v1 "github.com/agentcash/backend/internal/controllers/v1"
	"github.com/agentcash/backend/internal/gateway"
	"github.com/agentcash/backend/internal/models"
	"github.com/agentcash/backend/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func (suite *TestSuiteStandard) TestTransactionCreate() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/owners/agent-7/transactions", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000",
	})
	suite.Require().Equal(http.StatusCreated, recorder.Code)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Data)
	suite.Assert().Nil(response.Error)
	suite.Assert().NotEmpty(response.Data.ID)
}

func (suite *TestSuiteStandard) TestTransactionCreateInvalid() {
	tests := []struct {
		name  string
		draft gateway.Draft
	}{
		{"missing date", gateway.Draft{Time: "09:00", Kind: "CASH_DEPOSIT"}},
		{"missing time", gateway.Draft{Date: "2024-03-01", Kind: "CASH_DEPOSIT"}},
		{"unknown kind", gateway.Draft{Date: "2024-03-01", Time: "09:00", Kind: "GOLD_SAVINGS"}},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodPost, "/v1/owners/agent-7/transactions", tt.draft)
			assert.Equal(t, http.StatusBadRequest, recorder.Code)

			var response v1.TransactionCreateResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.NotNil(t, response.Error)
			assert.Nil(t, response.Data)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionCreateEmptyBody() {
	recorder := test.Request(suite.T(), suite.router, http.MethodPost, "/v1/owners/agent-7/transactions", "")
	suite.Assert().Equal(http.StatusBadRequest, recorder.Code)

	var response v1.TransactionCreateResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().NotNil(response.Error)
	suite.Assert().Equal("the request body must not be empty", *response.Error)
}

func (suite *TestSuiteStandard) TestTransactionsList() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000", Reference: "RCPT-0001",
	})
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-02", Time: "10:00", Kind: "TRANSFER", Amount: "1000000", Fee: "5000", Reference: "TRF-0001", Note: "to BCA",
	})

	tests := []struct {
		name  string
		query string
		count int
	}{
		{"all", "", 2},
		{"by kind", "?kind=TRANSFER", 1},
		{"by date", "?date=2024-03-01", 1},
		{"by reference glob", "?reference=RCPT-*", 1},
		{"by note glob", "?note=*BCA*", 1},
		{"no match", "?kind=PLN", 0},
		{"unparseable date", "?date=yesterday", 0},
	}

	for _, tt := range tests {
		suite.T().Run(tt.name, func(t *testing.T) {
			recorder := test.Request(t, suite.router, http.MethodGet, "/v1/owners/agent-7/transactions"+tt.query, nil)
			require.Equal(t, http.StatusOK, recorder.Code)

			var response v1.TransactionListResponse
			test.DecodeResponse(t, &recorder, &response)
			assert.Len(t, response.Data, tt.count)
		})
	}
}

func (suite *TestSuiteStandard) TestTransactionsListAnnotated() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "PLN", Amount: "250000", Fee: "2500",
	})

	recorder := test.Request(suite.T(), suite.router, http.MethodGet, "/v1/owners/agent-7/transactions", nil)
	suite.Require().Equal(http.StatusOK, recorder.Code)

	var response v1.TransactionListResponse
	test.DecodeResponse(suite.T(), &recorder, &response)
	suite.Require().Len(response.Data, 1)

	row := response.Data[0]
	suite.Assert().Equal(models.KindPLN, row.Kind)
	suite.Assert().Equal("2500", row.CashIn.String(), "the fee is the cash effect of a bill payment")
	suite.Assert().Equal("0", row.CashOut.String())
	suite.Assert().Equal("2500", row.RunningBalance.String())
}

func (suite *TestSuiteStandard) TestTransactionsOptions() {
	recorder := test.Request(suite.T(), suite.router, http.MethodOptions, "/v1/owners/agent-7/transactions", nil)
	suite.Assert().Equal(http.StatusNoContent, recorder.Code)
	suite.Assert().Equal("OPTIONS, GET, POST", recorder.Header().Get("allow"))
}
