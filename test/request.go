package test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

// Request sends a request to the handler and returns the recorded response.
//
// A string or *bytes.Buffer body is sent as is, nil sends no body and
// everything else is encoded as JSON.
func Request(t *testing.T, handler http.Handler, method, reqURL string, body any, headers ...map[string]string) httptest.ResponseRecorder {
	var reader io.Reader

	switch b := body.(type) {
	case nil:
	case string:
		reader = bytes.NewBufferString(b)
	case *bytes.Buffer:
		reader = b
	default:
		encoded, err := json.Marshal(b)
		require.Nil(t, err, "request body could not be encoded as JSON")
		reader = bytes.NewBuffer(encoded)
	}

	req, err := http.NewRequest(method, reqURL, reader)
	require.Nil(t, err, "request could not be created")

	for _, h := range headers {
		for key, value := range h {
			req.Header.Set(key, value)
		}
	}

	recorder := httptest.NewRecorder()
	handler.ServeHTTP(recorder, req)

	return *recorder
}

// DecodeResponse decodes the JSON body of a response into target.
func DecodeResponse(t *testing.T, r *httptest.ResponseRecorder, target any) {
	err := json.Unmarshal(r.Body.Bytes(), target)
	require.Nil(t, err, "response %q could not be decoded into %T. Request ID: %s", r.Body.String(), target, r.Header().Get("x-request-id"))
}

// AssertHTTPStatus fails the test immediately when the response status is not
// one of the expected ones.
func AssertHTTPStatus(t *testing.T, r *httptest.ResponseRecorder, expectedStatus ...int) {
	require.Contains(t, expectedStatus, r.Code, "HTTP status is wrong. Request ID: '%s' Response body: %s", r.Header().Get("x-request-id"), r.Body.String())
}
