package server_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/dijkstep/metrics"
	"github.com/katalvlaran/dijkstep/server"
	"github.com/katalvlaran/dijkstep/session"
)

// Node 3 is isolated so the summary carries an unreachable distance.
const chainJSON = `{
	"nodes": 3,
	"start": 1,
	"edges": [{"from": 1, "to": 2, "weight": 2.5}]
}`

func newHandler(t *testing.T) http.Handler {
	t.Helper()
	reg := prometheus.NewRegistry()
	mgr := session.NewManager(session.NewMemoryStore(), session.WithMetrics(metrics.New(reg)))
	return server.NewHandler(mgr, server.WithGatherer(reg))
}

func do(t *testing.T, h http.Handler, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func decode[T any](t *testing.T, rec *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &v), rec.Body.String())
	return v
}

func create(t *testing.T, h http.Handler) server.SessionResponse {
	t.Helper()
	rec := do(t, h, http.MethodPost, "/sessions", chainJSON)
	require.Equal(t, http.StatusCreated, rec.Code, rec.Body.String())
	return decode[server.SessionResponse](t, rec)
}

func TestCreateSession(t *testing.T) {
	h := newHandler(t)
	resp := create(t, h)

	assert.NotEqual(t, uuid.Nil, resp.Session.ID)
	assert.Equal(t, 3, resp.Session.Nodes)
	assert.Equal(t, 0, resp.Session.Cursor)
	assert.Equal(t, "init", resp.Step.Kind)
	require.NotNil(t, resp.Step.Current)
	assert.Equal(t, 1, *resp.Step.Current)
	assert.Nil(t, resp.Step.Neighbor)
	assert.Equal(t, []int{}, resp.Step.Visited)
	assert.Equal(t, []int{1}, resp.Step.Frontier)
	require.NotNil(t, resp.Step.Distances[1])
	assert.Equal(t, 0.0, *resp.Step.Distances[1])
	assert.Nil(t, resp.Step.Distances[2])
}

func TestCreateSession_BadInput(t *testing.T) {
	h := newHandler(t)

	cases := map[string]string{
		"not json":      `{`,
		"unknown field": `{"nodes": 2, "colour": "red"}`,
		"no edges":      `{"nodes": 2}`,
		"self loop":     `{"nodes": 2, "edges": [{"from": 1, "to": 1, "weight": 1}]}`,
		"bad start":     `{"nodes": 2, "start": 9, "edges": [{"from": 1, "to": 2, "weight": 1}]}`,
	}
	for name, body := range cases {
		rec := do(t, h, http.MethodPost, "/sessions", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code, name)
		assert.NotEmpty(t, decode[map[string]string](t, rec)["error"], name)
	}
}

func TestNavigation(t *testing.T) {
	h := newHandler(t)
	id := create(t, h).Session.ID.String()

	rec := do(t, h, http.MethodPost, "/sessions/"+id+"/previous", "")
	assert.Equal(t, http.StatusConflict, rec.Code)

	// init, select 1, relax 1→2, select 2, done
	var kinds []string
	for {
		rec := do(t, h, http.MethodPost, "/sessions/"+id+"/next", "")
		if rec.Code == http.StatusConflict {
			break
		}
		require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
		kinds = append(kinds, decode[server.StepDTO](t, rec).Kind)
	}
	assert.Equal(t, []string{"select", "relax", "select", "done"}, kinds)

	rec = do(t, h, http.MethodGet, "/sessions/"+id, "")
	require.Equal(t, http.StatusOK, rec.Code)
	got := decode[server.SessionResponse](t, rec)
	assert.Equal(t, 4, got.Session.Cursor)
	assert.Equal(t, "done", got.Step.Kind)
	assert.Nil(t, got.Step.Current)
	require.NotNil(t, got.Step.Distances[2])
	assert.Equal(t, 2.5, *got.Step.Distances[2])
	assert.Nil(t, got.Step.Distances[3])
	assert.Contains(t, got.Step.Description, "Node 3: unreachable")

	rec = do(t, h, http.MethodPost, "/sessions/"+id+"/reset", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "init", decode[server.StepDTO](t, rec).Kind)

	rec = do(t, h, http.MethodGet, "/sessions/"+id+"/steps", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Len(t, decode[map[string][]server.StepDTO](t, rec)["steps"], 5)
}

func TestListAndDelete(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/sessions", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"sessions": []}`, rec.Body.String())

	id := create(t, h).Session.ID

	rec = do(t, h, http.MethodGet, "/sessions", "")
	assert.Equal(t, []uuid.UUID{id}, decode[map[string][]uuid.UUID](t, rec)["sessions"])

	rec = do(t, h, http.MethodDelete, "/sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNoContent, rec.Code)

	rec = do(t, h, http.MethodDelete, "/sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	rec = do(t, h, http.MethodGet, "/sessions/"+id.String(), "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestUnknownAndMalformedIDs(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodPost, "/sessions/"+uuid.NewString()+"/next", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, h, http.MethodGet, "/sessions/not-a-uuid", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestHealthAndMetrics(t *testing.T) {
	h := newHandler(t)

	rec := do(t, h, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"status": "ok"}`, rec.Body.String())

	create(t, h)
	rec = do(t, h, http.MethodGet, "/metrics", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "dijkstep_runs_total 1")
	assert.Contains(t, rec.Body.String(), `dijkstep_navigations_total{op="create"} 1`)
	assert.Contains(t, rec.Body.String(), "dijkstep_sessions_active 1")
}
