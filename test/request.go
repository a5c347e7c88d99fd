package test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"reflect"
	"testing"

	"github.com/envelope-zero/personal-budget/internal/controllers"
	"github.com/envelope-zero/personal-budget/internal/router"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Request is a helper method to simplify making a HTTP request for tests.
//
// The body can be a string, a struct or map that is marshalled to JSON,
// or nil.
func Request(t *testing.T, co controllers.Controller, method, path string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	byteBuffer := new(bytes.Buffer)

	if body != nil {
		switch reflect.TypeOf(body).Kind() {
		case reflect.String:
			byteBuffer = bytes.NewBufferString(body.(string))
		case reflect.Struct, reflect.Map, reflect.Slice:
			byteStr, err := json.Marshal(body)
			if err != nil {
				assert.FailNow(t, "Request body could not be marshalled from struct input", err)
			}
			byteBuffer = bytes.NewBuffer(byteStr)
		default:
			assert.FailNow(t, "Unsupported request body type", "%T", body)
		}
	}

	u, _ := url.Parse("http://example.com")
	r, teardown, err := router.Config(u)
	if err != nil {
		assert.FailNow(t, "Router could not be initialized", err)
	}
	defer teardown()

	router.AttachRoutes(co, r.Group("/"))

	recorder := httptest.NewRecorder()
	req, _ := http.NewRequest(method, path, byteBuffer)

	for _, headerMap := range headers {
		for header, value := range headerMap {
			req.Header.Set(header, value)
		}
	}

	r.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes an HTTP response into a target struct.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), &target)
	if err != nil {
		assert.FailNow(t, "Parsing error", "Unable to parse response from server %q into %v, '%v', Request ID: %s", r.Body, reflect.TypeOf(target), err, r.Result().Header.Get("x-request-id"))
	}
}

// DecodeError returns the error message of an error response.
func DecodeError(t *testing.T, s []byte) string {
	var r struct {
		Error string `json:"error"`
	}

	if err := json.Unmarshal(s, &r); err != nil {
		assert.Fail(t, "Not valid JSON!", "%s", s)
	}

	return r.Error
}

// AssertHTTPStatus verifies that the HTTP response status is correct
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Result().Header.Get("x-request-id"), r.Body.String())
}
