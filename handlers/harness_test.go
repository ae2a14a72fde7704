package handlers

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"travel-planner-server/db"
)

func setupServer(t *testing.T) *httptest.Server {
	t.Helper()
	_, err := db.InitDB("test")
	if err != nil {
		t.Fatalf("failed to init test database: %v", err)
	}

	server := httptest.NewServer(NewRouter())
	t.Cleanup(server.Close)
	return server
}

func doRequest(t *testing.T, method, url string, body any) *http.Response {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			t.Fatalf("failed to marshal request body: %v", err)
		}
		reader = bytes.NewReader(raw)
	}

	request, err := http.NewRequest(method, url, reader)
	if err != nil {
		t.Fatalf("failed to build request: %v", err)
	}
	request.Header.Set("Content-Type", "application/json")

	response, err := http.DefaultClient.Do(request)
	if err != nil {
		t.Fatalf("request failed: %v", err)
	}
	return response
}

func decodeMap(t *testing.T, response *http.Response) map[string]any {
	t.Helper()
	defer func() { _ = response.Body.Close() }()

	body := make(map[string]any)
	err := json.NewDecoder(response.Body).Decode(&body)
	if err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func decodeList(t *testing.T, response *http.Response) []map[string]any {
	t.Helper()
	defer func() { _ = response.Body.Close() }()

	var body []map[string]any
	err := json.NewDecoder(response.Body).Decode(&body)
	if err != nil {
		t.Fatalf("failed to decode response body: %v", err)
	}
	return body
}

func readText(t *testing.T, response *http.Response) string {
	t.Helper()
	defer func() { _ = response.Body.Close() }()

	raw, err := io.ReadAll(response.Body)
	if err != nil {
		t.Fatalf("failed to read response body: %v", err)
	}
	return string(raw)
}

// create posts the payload and returns the created record, failing the test
// on any status other than 201.
func create(t *testing.T, baseURL, path string, payload map[string]any) map[string]any {
	t.Helper()

	response := doRequest(t, http.MethodPost, baseURL+path, payload)
	if response.StatusCode != http.StatusCreated {
		t.Fatalf("POST %s returned %d: %s", path, response.StatusCode, readText(t, response))
	}
	return decodeMap(t, response)
}

func entityID(t *testing.T, body map[string]any) int {
	t.Helper()

	id, ok := body["id"].(float64)
	if !ok {
		t.Fatalf("response has no numeric id: %v", body)
	}
	return int(id)
}
