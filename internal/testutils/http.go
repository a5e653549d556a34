package testutils

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/require"
)

type TestServer struct {
	*httptest.Server
	t *testing.T
}

func NewTestServer(t *testing.T, handler http.Handler) *TestServer {
	server := httptest.NewServer(handler)
	t.Cleanup(server.Close)
	return &TestServer{
		Server: server,
		t:      t,
	}
}

// Do sends a request with an optional JSON body and raw Authorization token
func (ts *TestServer) Do(method, path, token string, body interface{}) *http.Response {
	var bodyReader io.Reader
	if body != nil {
		jsonBody, err := json.Marshal(body)
		require.NoError(ts.t, err)
		bodyReader = bytes.NewReader(jsonBody)
	}

	req, err := http.NewRequest(method, ts.URL+path, bodyReader)
	require.NoError(ts.t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", token)
	}

	resp, err := ts.Client().Do(req)
	require.NoError(ts.t, err)
	return resp
}

func (ts *TestServer) GET(path, token string) *http.Response {
	return ts.Do(http.MethodGet, path, token, nil)
}

func (ts *TestServer) POST(path, token string, body interface{}) *http.Response {
	return ts.Do(http.MethodPost, path, token, body)
}

func (ts *TestServer) DELETE(path, token string) *http.Response {
	return ts.Do(http.MethodDelete, path, token, nil)
}

func AssertJSONResponse(t *testing.T, resp *http.Response, expectedStatus int, target interface{}) {
	defer resp.Body.Close()
	require.Equal(t, expectedStatus, resp.StatusCode)
	require.Equal(t, "application/json", resp.Header.Get("Content-Type"))

	if target != nil {
		err := json.NewDecoder(resp.Body).Decode(target)
		require.NoError(t, err)
	}
}

func AssertErrorResponse(t *testing.T, resp *http.Response, expectedStatus int, expectedMessage string) {
	defer resp.Body.Close()
	require.Equal(t, expectedStatus, resp.StatusCode)

	var errorResp map[string]interface{}
	err := json.NewDecoder(resp.Body).Decode(&errorResp)
	require.NoError(t, err)

	if expectedMessage != "" {
		require.Contains(t, errorResp["error"], expectedMessage)
	}
}
