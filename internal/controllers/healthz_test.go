package controllers_test

import (
	"net/http"

	"github.com/envelope-zero/personal-budget/internal/models"
	"github.com/envelope-zero/personal-budget/test"
)

func (suite *TestSuiteStandard) TestHealthz() {
	r := test.Request(suite.T(), suite.controller, "GET", "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)

	r = test.Request(suite.T(), suite.controller, "OPTIONS", "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusNoContent)
	suite.Assert().Equal("OPTIONS, GET", r.Header().Get("allow"))
}

func (suite *TestSuiteStandard) TestHealthzDatabaseError() {
	suite.CloseDB()

	r := test.Request(suite.T(), suite.controller, "GET", "http://example.com/healthz", nil)
	test.AssertHTTPStatus(suite.T(), &r, http.StatusInternalServerError)
	suite.Assert().Equal(models.ErrGeneral.Error(), test.DecodeError(suite.T(), r.Body.Bytes()))
}
