package v1_test

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"time"

	"github.com/agentcash/backend/internal/gateway"
)

// The stream delivers the current snapshot immediately and a new one
// for every change until the client disconnects.
func (suite *TestSuiteStandard) TestStreamLedger() {
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "09:00", Kind: "CASH_DEPOSIT", Amount: "500000", Fee: "3000",
	})

	ctx, cancel := context.WithCancel(context.Background())

	recorder := httptest.NewRecorder()
	request, err := http.NewRequestWithContext(ctx, http.MethodGet, "/v1/owners/agent-7/ledger/stream", nil)
	suite.Require().Nil(err)

	done := make(chan struct{})
	go func() {
		defer close(done)
		suite.router.ServeHTTP(recorder, request)
	}()

	// Let the handler deliver the initial snapshot, then trigger a change
	time.Sleep(50 * time.Millisecond)
	suite.createTransaction("agent-7", gateway.Draft{
		Date: "2024-03-01", Time: "10:00", Kind: "TRANSFER", Amount: "1000000", Fee: "5000",
	})
	time.Sleep(50 * time.Millisecond)

	cancel()
	select {
	case <-done:
	case <-time.After(5 * time.Second):
		suite.Require().FailNow("stream did not end on client disconnect")
	}

	body := recorder.Body.String()
	suite.Assert().Equal(http.StatusOK, recorder.Code)
	suite.Assert().GreaterOrEqual(strings.Count(body, "event:snapshot"), 2, "expected at least two snapshot events, got: %s", body)
	suite.Assert().Contains(body, "finalBalance")
}

func (suite *TestSuiteStandard) TestStreamLedgerInvalidOwner() {
	recorder := httptest.NewRecorder()
	request, err := http.NewRequest(http.MethodGet, "/v1/owners//ledger/stream", nil)
	suite.Require().Nil(err)

	suite.router.ServeHTTP(recorder, request)
	suite.Assert().NotEqual(http.StatusOK, recorder.Code)
}
