package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/controllers"
	"github.com/envelope-zero/personal-budget/test"
)

func (suite *TestSuiteStandard) TestTransfer() {
	groceries := suite.createTestEnvelope("Groceries", "$400")
	gas := suite.createTestEnvelope("Gas", "$100")

	r := test.Request(suite.T(), suite.controller, "POST", "http://example.com/transfers", map[string]any{
		"sourceEnvelopeId": groceries.ID,
		"targetEnvelopeId": gas.ID,
		"transferAmount":   "$100.00",
	})
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var envelopes []controllers.Envelope
	test.DecodeResponse(suite.T(), &r, &envelopes)
	suite.Require().Len(envelopes, 2)
	suite.Assert().Equal(groceries.ID, envelopes[0].ID)
	suite.Assert().Equal("$300.00", envelopes[0].TotalAmountUSD.Format())
	suite.Assert().Equal(gas.ID, envelopes[1].ID)
	suite.Assert().Equal("$200.00", envelopes[1].TotalAmountUSD.Format())

	r = test.Request(suite.T(), suite.controller, "GET", envelopePath(groceries.ID), nil)
	var envelope controllers.Envelope
	test.DecodeResponse(suite.T(), &r, &envelope)
	suite.Assert().Equal("$300.00", envelope.TotalAmountUSD.Format())
}

func (suite *TestSuiteStandard) TestTransferIDsAsStrings() {
	groceries := suite.createTestEnvelope("Groceries", "$400")
	gas := suite.createTestEnvelope("Gas", "$100")

	r := test.Request(suite.T(), suite.controller, "POST", "http://example.com/transfers", `{
		"sourceEnvelopeId": "1",
		"targetEnvelopeId": "2",
		"transferAmount": 50
	}`)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusOK)

	var envelopes []controllers.Envelope
	test.DecodeResponse(suite.T(), &r, &envelopes)
	suite.Assert().Equal(groceries.ID, envelopes[0].ID)
	suite.Assert().Equal("$350.00", envelopes[0].TotalAmountUSD.Format())
	suite.Assert().Equal(gas.ID, envelopes[1].ID)
	suite.Assert().Equal("$150.00", envelopes[1].TotalAmountUSD.Format())
}

func (suite *TestSuiteStandard) TestTransferFails() {
	groceries := suite.createTestEnvelope("Groceries", "$400")
	gas := suite.createTestEnvelope("Gas", "$100")

	tests := []struct {
		name   string
		body   map[string]any
		status int
		error  string
	}{
		{"Exceeds balance", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": groceries.ID, "transferAmount": "$150"}, http.StatusBadRequest, "invalid request: transfer amount exceeds source balance"},
		{"Whole balance", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": groceries.ID, "transferAmount": "$100"}, http.StatusBadRequest, "invalid request: transfer amount exceeds source balance"},
		{"Zero amount", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": groceries.ID, "transferAmount": "$0"}, http.StatusBadRequest, "invalid request: transferAmount must be greater than zero"},
		{"Missing amount", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": groceries.ID}, http.StatusBadRequest, "invalid request: transferAmount is required"},
		{"Invalid amount", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": groceries.ID, "transferAmount": "lots"}, http.StatusBadRequest, `invalid request: the amount is not a valid currency value: "lots"`},
		{"Same envelope", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": gas.ID, "transferAmount": "$10"}, http.StatusBadRequest, "invalid request: source and target envelope must be different"},
		{"Unknown source", map[string]any{"sourceEnvelopeId": 99999999, "targetEnvelopeId": gas.ID, "transferAmount": "$10"}, http.StatusNotFound, ""},
		{"Unknown target", map[string]any{"sourceEnvelopeId": gas.ID, "targetEnvelopeId": 99999999, "transferAmount": "$10"}, http.StatusNotFound, ""},
		{"Invalid source", map[string]any{"sourceEnvelopeId": "abcdef", "targetEnvelopeId": gas.ID, "transferAmount": "$10"}, http.StatusNotFound, ""},
		{"Missing target", map[string]any{"sourceEnvelopeId": gas.ID, "transferAmount": "$10"}, http.StatusNotFound, ""},
	}

	for _, tt := range tests {
		r := test.Request(suite.T(), suite.controller, "POST", "http://example.com/transfers", tt.body)
		test.AssertHTTPStatus(suite.T(), &r, tt.status)

		if tt.error != "" {
			suite.Assert().Equal(tt.error, test.DecodeError(suite.T(), r.Body.Bytes()), tt.name)
		}
	}

	// No balance has changed
	for _, e := range []controllers.Envelope{groceries, gas} {
		r := test.Request(suite.T(), suite.controller, "GET", envelopePath(e.ID), nil)
		var envelope controllers.Envelope
		test.DecodeResponse(suite.T(), &r, &envelope)
		suite.Assert().Equal(e.TotalAmountUSD.Format(), envelope.TotalAmountUSD.Format())
	}
}

func (suite *TestSuiteStandard) TestTransferOptions() {
	r := test.Request(suite.T(), suite.controller, "OPTIONS", "http://example.com/transfers", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, POST", r.Header().Get("allow"))
}
