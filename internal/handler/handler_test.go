package handler

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/ilyde-platform/ilyde-datasets/internal/repository/memory"
	"github.com/ilyde-platform/ilyde-datasets/internal/service"
	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
)

type testAPI struct {
	app     *fiber.App
	objects *storage.MemoryStore
}

func newTestAPI() *testAPI {
	store := memory.NewStore()
	objects := storage.NewMemory()
	log := zap.NewNop()

	datasets := service.NewDatasetService(store.Datasets(), log)
	versions := service.NewVersionService(store.Datasets(), store.Versions(), objects, nil, log)
	buckets := service.NewBucketService(objects, log)

	app := fiber.New()
	v1 := app.Group("/v1")
	NewDatasetsHandler(datasets, log).RegisterRoutes(v1)
	NewVersionsHandler(versions, log).RegisterRoutes(v1)
	NewBucketsHandler(buckets).RegisterRoutes(v1)

	return &testAPI{app: app, objects: objects}
}

func (a *testAPI) do(t *testing.T, method, path string, body any) (int, []byte) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := a.app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, raw
}

func decode[T any](t *testing.T, raw []byte) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return out
}

func (a *testAPI) createDataset(t *testing.T, body map[string]any) map[string]any {
	t.Helper()
	status, raw := a.do(t, http.MethodPost, "/v1/datasets", body)
	require.Equal(t, http.StatusCreated, status, string(raw))
	return decode[map[string]any](t, raw)
}
