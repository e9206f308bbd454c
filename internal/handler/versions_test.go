package handler

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ilyde-platform/ilyde-datasets/internal/storage"
)

func TestVersionsHandler_EndToEnd(t *testing.T) {
	api := newTestAPI()
	api.objects.Put("bucket-a",
		storage.Object{Name: "a.png", Size: 10},
		storage.Object{Name: "b.png", Size: 20},
	)
	dataset := api.createDataset(t, map[string]any{"name": "fashion-mnist", "description": "clothing", "scope": "Global"})
	datasetID := dataset["id"].(string)

	status, raw := api.do(t, http.MethodPost, "/v1/versions", map[string]any{
		"dataset":        datasetID,
		"related_bucket": "bucket-a",
		"author":         "alice",
	})
	require.Equal(t, http.StatusCreated, status, string(raw))
	version := decode[map[string]any](t, raw)
	assert.Equal(t, "1", version["name"])
	assert.Equal(t, float64(30), version["size"])
	assert.Len(t, version["manifest"], 2)
	assert.Equal(t, datasetID, version["dataset"])

	status, raw = api.do(t, http.MethodGet, "/v1/datasets/"+datasetID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "1", decode[map[string]any](t, raw)["version"])

	status, raw = api.do(t, http.MethodGet, "/v1/versions/"+version["id"].(string), nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, "alice", decode[map[string]any](t, raw)["author"])

	status, raw = api.do(t, http.MethodGet, "/v1/versions?dataset="+datasetID, nil)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(1), decode[map[string]any](t, raw)["total"])

	status, _ = api.do(t, http.MethodDelete, "/v1/datasets/"+datasetID, nil)
	require.Equal(t, http.StatusOK, status)

	status, raw = api.do(t, http.MethodPost, "/v1/versions/search", map[string]any{"query": map[string]any{"dataset": datasetID}})
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(0), decode[map[string]any](t, raw)["total"])

	status, _ = api.do(t, http.MethodGet, "/v1/versions/"+version["id"].(string), nil)
	assert.Equal(t, http.StatusNotFound, status)
}

func TestVersionsHandler_Create(t *testing.T) {
	api := newTestAPI()
	dataset := api.createDataset(t, map[string]any{"name": "mnist", "description": "digits", "project": "p1"})

	t.Run("missing bucket", func(t *testing.T) {
		status, raw := api.do(t, http.MethodPost, "/v1/versions", map[string]any{
			"dataset":        dataset["id"],
			"related_bucket": "ghost",
			"author":         "alice",
		})

		assert.Equal(t, http.StatusNotFound, status)
		assert.Equal(t, "NOT_FOUND", decode[ErrorResponse](t, raw).Error.Code)
	})

	t.Run("missing author", func(t *testing.T) {
		status, raw := api.do(t, http.MethodPost, "/v1/versions", map[string]any{
			"dataset":        dataset["id"],
			"related_bucket": "bucket-a",
		})

		assert.Equal(t, http.StatusBadRequest, status)
		assert.Equal(t, "INVALID_ARGUMENT", decode[ErrorResponse](t, raw).Error.Code)
	})
}

func TestBucketsHandler_Create(t *testing.T) {
	api := newTestAPI()

	status, raw := api.do(t, http.MethodPost, "/v1/buckets", nil)

	require.Equal(t, http.StatusCreated, status)
	bucket := decode[map[string]any](t, raw)
	assert.Regexp(t, `^[0-9a-f]{32}$`, bucket["name"])
}
