// Package testutil holds helpers shared by HTTP-level tests
package testutil

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"jobboard-portal/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

// SetupGinTestMode sets gin to test mode
func SetupGinTestMode() {
	gin.SetMode(gin.TestMode)
}

// TestConfig returns a configuration serving the mock data set with
// generous rate limits
func TestConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{Port: "8080", Host: "localhost", Env: "test"},
		Data:   config.DataConfig{Source: config.DataSourceMock},
		Log:    config.LogConfig{Level: "silent", Format: "json"},
		CORS: config.CORSConfig{
			Origins:     []string{"http://localhost:3000"},
			Credentials: true,
		},
		RateLimit: config.RateLimitConfig{Requests: 1000, Window: 60},
	}
}

// ParseJSONResponse decodes the recorder body into target
func ParseJSONResponse(t *testing.T, w *httptest.ResponseRecorder, target interface{}) {
	t.Helper()
	err := json.Unmarshal(w.Body.Bytes(), target)
	require.NoError(t, err, "body: %s", w.Body.String())
}

// AssertJSONResponse asserts status, content type and the given top-level fields.
// A nil expected value only checks that the key is present.
func AssertJSONResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedFields map[string]interface{}) {
	t.Helper()
	require.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	ParseJSONResponse(t, w, &response)

	for key, expectedValue := range expectedFields {
		require.Contains(t, response, key)
		if expectedValue != nil {
			require.Equal(t, expectedValue, response[key], "field %s", key)
		}
	}
}

// AssertErrorResponse asserts that the response is an error with expected message
func AssertErrorResponse(t *testing.T, w *httptest.ResponseRecorder, expectedStatus int, expectedErrorMessage string) {
	t.Helper()
	require.Equal(t, expectedStatus, w.Code, "body: %s", w.Body.String())
	require.Equal(t, "application/json; charset=utf-8", w.Header().Get("Content-Type"))

	var response map[string]interface{}
	ParseJSONResponse(t, w, &response)

	require.Contains(t, response, "error")
	if expectedErrorMessage != "" {
		require.Contains(t, response["error"].(string), expectedErrorMessage)
	}
}

// TestHTTPClient drives a router without a network listener
type TestHTTPClient struct {
	router http.Handler
}

func NewTestHTTPClient(router http.Handler) *TestHTTPClient {
	return &TestHTTPClient{router: router}
}

func (c *TestHTTPClient) Do(method, url, body string, headers map[string]string) *httptest.ResponseRecorder {
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, url, strings.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, url, nil)
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	w := httptest.NewRecorder()
	c.router.ServeHTTP(w, req)
	return w
}

func (c *TestHTTPClient) GET(url string, headers map[string]string) *httptest.ResponseRecorder {
	return c.Do(http.MethodGet, url, "", headers)
}

func (c *TestHTTPClient) POST(url string, body string, headers map[string]string) *httptest.ResponseRecorder {
	return c.Do(http.MethodPost, url, body, headers)
}

func (c *TestHTTPClient) DELETE(url string, body string, headers map[string]string) *httptest.ResponseRecorder {
	return c.Do(http.MethodDelete, url, body, headers)
}
