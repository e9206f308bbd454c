//go:build e2e

package e2e

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

// E2ETestSuite drives a running datasets server over HTTP
type E2ETestSuite struct {
	suite.Suite
	baseURL string
	client  *http.Client
}

func TestE2ESuite(t *testing.T) {
	if testing.Short() {
		t.Skip("Skipping E2E tests in short mode")
	}
	suite.Run(t, new(E2ETestSuite))
}

func (s *E2ETestSuite) SetupSuite() {
	s.baseURL = os.Getenv("DATASETS_API_URL")
	if s.baseURL == "" {
		s.baseURL = "http://localhost:8080"
	}
	s.client = &http.Client{Timeout: 30 * time.Second}

	s.waitForAPI()
}

func (s *E2ETestSuite) waitForAPI() {
	for j := 0; j < 30; j++ {
		resp, err := s.client.Get(s.baseURL + "/livez")
		if err == nil {
			resp.Body.Close()
			if resp.StatusCode == http.StatusOK {
				return
			}
		}
		time.Sleep(time.Second)
	}
	s.T().Fatal("API failed to become ready within timeout")
}

func (s *E2ETestSuite) do(method, path string, body any) (int, map[string]any) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		s.Require().NoError(err)
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequest(method, s.baseURL+path, reader)
	s.Require().NoError(err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	s.Require().NoError(err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	s.Require().NoError(err)

	var out map[string]any
	if len(raw) > 0 {
		s.Require().NoError(json.Unmarshal(raw, &out), "failed to parse response: %s", string(raw))
	}
	return resp.StatusCode, out
}

func (s *E2ETestSuite) TestHealth() {
	status, body := s.do(http.MethodGet, "/health", nil)

	s.Equal(http.StatusOK, status)
	s.Equal("healthy", body["status"])
}

func (s *E2ETestSuite) TestDatasetLifecycle() {
	status, dataset := s.do(http.MethodPost, "/v1/datasets", map[string]any{
		"name":        "e2e-dataset",
		"description": "end to end",
		"project":     "e2e",
	})
	s.Require().Equal(http.StatusCreated, status)
	s.Equal("Local", dataset["scope"])
	path := "/v1/datasets/" + dataset["id"].(string)

	status, updated := s.do(http.MethodPut, path, map[string]any{"name": "e2e-renamed", "description": "renamed"})
	s.Require().Equal(http.StatusOK, status)
	s.Equal("e2e-renamed", updated["name"])

	status, page := s.do(http.MethodPost, "/v1/datasets/search", map[string]any{"query": map[string]any{"id": dataset["id"]}})
	s.Require().Equal(http.StatusOK, status)
	s.Equal(float64(1), page["total"])

	status, deleted := s.do(http.MethodDelete, path, nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("Successfully delete dataset.", deleted["message"])

	status, _ = s.do(http.MethodGet, path, nil)
	s.Equal(http.StatusNotFound, status)
}

func (s *E2ETestSuite) TestVersionOfEmptyBucket() {
	status, bucket := s.do(http.MethodPost, "/v1/buckets", nil)
	s.Require().Equal(http.StatusCreated, status)

	status, dataset := s.do(http.MethodPost, "/v1/datasets", map[string]any{
		"name":        "e2e-versioned",
		"description": "versioned",
		"scope":       "Global",
	})
	s.Require().Equal(http.StatusCreated, status)

	status, version := s.do(http.MethodPost, "/v1/versions", map[string]any{
		"dataset":        dataset["id"],
		"related_bucket": bucket["name"],
		"author":         "e2e",
	})
	s.Require().Equal(http.StatusCreated, status)
	s.Equal("1", version["name"])
	s.Equal(float64(0), version["size"])
	s.Equal([]any{}, version["manifest"])

	status, got := s.do(http.MethodGet, "/v1/datasets/"+dataset["id"].(string), nil)
	s.Require().Equal(http.StatusOK, status)
	s.Equal("1", got["version"])
}

func (s *E2ETestSuite) TestUnknownBucket() {
	status, dataset := s.do(http.MethodPost, "/v1/datasets", map[string]any{
		"name":        "e2e-ghost",
		"description": "ghost",
		"scope":       "Global",
	})
	s.Require().Equal(http.StatusCreated, status)

	status, body := s.do(http.MethodPost, "/v1/versions", map[string]any{
		"dataset":        dataset["id"],
		"related_bucket": "does-not-exist-e2e",
		"author":         "e2e",
	})
	s.Equal(http.StatusNotFound, status)
	s.Equal("NOT_FOUND", body["error"].(map[string]any)["code"])
}
