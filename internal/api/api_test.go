package api_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"math/rand/v2"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/factflip/backend/internal/api"
	"github.com/factflip/backend/internal/service"
	"github.com/factflip/backend/internal/store"
)

const spaceDeck = `{
	"deckName": "Space",
	"facts": [
		{"content": "The **Sun** is a star.", "tags": ["stars"]},
		{"content": "Mars is red.", "back": "Iron oxide", "tags": ["planets", "mars"]},
		"Jupiter is the largest planet."
	]
}`

func newServer(t *testing.T, limiter *api.RateLimiter) http.Handler {
	t.Helper()
	s, err := store.NewSQLite(":memory:")
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	now := time.Date(2026, 4, 20, 19, 0, 0, 0, time.UTC)

	cfg := service.DefaultConfig()
	cfg.Now = func() time.Time { return now }
	cfg.Rand = rand.New(rand.NewPCG(1, 1))
	svc := service.NewStudyService(s, cfg, logger)

	mux := http.NewServeMux()
	api.RegisterRoutes(mux, api.NewHandler(svc, 1<<20, logger), limiter)
	return api.CORS(mux)
}

func do(t *testing.T, srv http.Handler, method, path string, body io.Reader) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, body)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func uploadFile(t *testing.T, srv http.Handler, filename, content string) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("file", filename)
	require.NoError(t, err)
	_, err = fw.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	rec := httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	return rec
}

func decode(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), rec.Body.String())
	return out
}

func TestHealth(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ok", decode(t, rec)["status"])
}

func TestCORSPreflight(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodOptions, "/upload", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}

func TestNextFact_NoDeck(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodGet, "/next_fact", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "No deck loaded", decode(t, rec)["error"])
}

func TestUploadAndStudy(t *testing.T) {
	srv := newServer(t, nil)

	rec := uploadFile(t, srv, "space.json", spaceDeck)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decode(t, rec)
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "Space", body["deckName"])
	assert.EqualValues(t, 3, body["count"])

	rec = do(t, srv, http.MethodGet, "/next_fact", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fact := decode(t, rec)
	assert.Equal(t, "The **Sun** is a star.", fact["fact"])
	assert.Equal(t, []any{"stars"}, fact["tags"])
	assert.EqualValues(t, 2.5, fact["easeFactor"])
	assert.NotContains(t, fact, "nextReview")
	assert.NotEmpty(t, fact["new_achievements"])

	factID := fact["factId"].(string)
	rec = do(t, srv, http.MethodPost, "/submit_answer/"+factID+"/4", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	answer := decode(t, rec)
	assert.Equal(t, "success", answer["status"])
	assert.EqualValues(t, 1, answer["repetitions"])
	assert.EqualValues(t, 1, answer["interval"])
	assert.Equal(t, "2026-04-21T19:00:00Z", answer["nextReview"])

	// GET works too.
	rec = do(t, srv, http.MethodGet, "/submit_answer/"+factID+"/5", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 6, decode(t, rec)["interval"])
}

func TestNextFact_TagFilter(t *testing.T) {
	srv := newServer(t, nil)
	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)

	rec := do(t, srv, http.MethodGet, "/next_fact?tag=planets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	fact := decode(t, rec)
	assert.Equal(t, "Mars is red.", fact["fact"])
	assert.Equal(t, "Iron oxide", fact["back"])

	rec = do(t, srv, http.MethodGet, "/next_fact?tag=comets", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Empty(t, decode(t, rec))
}

func TestSubmitAnswer_Errors(t *testing.T) {
	srv := newServer(t, nil)
	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)
	fact := decode(t, do(t, srv, http.MethodGet, "/next_fact", nil))
	factID := fact["factId"].(string)

	tests := []struct {
		name    string
		path    string
		status  int
		message string
	}{
		{"quality too high", "/submit_answer/" + factID + "/6", http.StatusBadRequest, "Quality must be between 0 and 5"},
		{"quality not a number", "/submit_answer/" + factID + "/good", http.StatusBadRequest, "Quality must be between 0 and 5"},
		{"unknown fact", "/submit_answer/missing/3", http.StatusNotFound, "Fact not found"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := do(t, srv, http.MethodPost, tt.path, nil)
			assert.Equal(t, tt.status, rec.Code)
			body := decode(t, rec)
			assert.Equal(t, "error", body["status"])
			assert.Equal(t, tt.message, body["message"])
		})
	}

	// The rejected answers left the fact new.
	details := decode(t, do(t, srv, http.MethodGet, "/get_fact_details/"+factID, nil))
	assert.EqualValues(t, 0, details["repetitions"])
}

func TestUpload_Rejected(t *testing.T) {
	srv := newServer(t, nil)

	rec := uploadFile(t, srv, "broken.json", "{not json")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	body := decode(t, rec)
	assert.Equal(t, "error", body["status"])
	assert.Equal(t, "Invalid JSON file", body["message"])

	rec = uploadFile(t, srv, "empty.json", `{"deckName": "Empty"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	req := httptest.NewRequest(http.MethodPost, "/upload", strings.NewReader(""))
	rec = httptest.NewRecorder()
	srv.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "No file uploaded", decode(t, rec)["message"])

	// Nothing was stored.
	var names []string
	require.NoError(t, json.Unmarshal(do(t, srv, http.MethodGet, "/list_decks", nil).Body.Bytes(), &names))
	assert.Empty(t, names)
}

func TestUpload_RateLimited(t *testing.T) {
	srv := newServer(t, api.NewRateLimiter(1))

	assert.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)
	rec := uploadFile(t, srv, "space.json", spaceDeck)
	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
}

func TestDeckEndpoints(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodGet, "/get_status", nil)
	assert.Equal(t, false, decode(t, rec)["loaded"])

	rec = do(t, srv, http.MethodGet, "/get_deck/Space", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Deck not found", decode(t, rec)["error"])

	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)

	status := decode(t, do(t, srv, http.MethodGet, "/get_status", nil))
	assert.Equal(t, true, status["loaded"])
	assert.Equal(t, "Space", status["deckName"])
	assert.EqualValues(t, 3, status["count"])

	rec = do(t, srv, http.MethodGet, "/get_deck/Space", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	d := decode(t, rec)
	assert.Equal(t, "Space", d["deckName"])
	assert.Len(t, d["facts"], 3)

	rec = do(t, srv, http.MethodPost, "/load_deck/Space", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.EqualValues(t, 3, decode(t, rec)["count"])

	rec = do(t, srv, http.MethodPost, "/load_deck/Nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/export", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, `attachment; filename="Space.json"`, rec.Header().Get("Content-Disposition"))

	// The export uploads back unchanged.
	reimport := uploadFile(t, srv, "space.json", rec.Body.String())
	require.Equal(t, http.StatusOK, reimport.Code, reimport.Body.String())
	assert.EqualValues(t, 3, decode(t, reimport)["count"])

	rec = do(t, srv, http.MethodDelete, "/delete_deck/Space", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "Deck 'Space' deleted", decode(t, rec)["message"])

	assert.Equal(t, false, decode(t, do(t, srv, http.MethodGet, "/get_status", nil))["loaded"])
	assert.Equal(t, "No deck loaded", decode(t, do(t, srv, http.MethodGet, "/export", nil))["error"])

	rec = do(t, srv, http.MethodDelete, "/delete_deck/Space", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLoadSample_Missing(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodGet, "/load_sample", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Sample deck not found", decode(t, rec)["message"])
}

func TestStudyModeAndShuffle(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodPost, "/set_study_mode", strings.NewReader(`{"mode": "sequential"}`))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "sequential", decode(t, rec)["mode"])

	rec = do(t, srv, http.MethodPost, "/set_study_mode", strings.NewReader(`{"mode": "backwards"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/set_study_mode", strings.NewReader(`{`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	assert.Equal(t, true, decode(t, do(t, srv, http.MethodGet, "/toggle_shuffle", nil))["shuffle"])
	assert.Equal(t, false, decode(t, do(t, srv, http.MethodGet, "/toggle_shuffle", nil))["shuffle"])
}

func TestSessionLifecycle(t *testing.T) {
	srv := newServer(t, nil)

	rec := do(t, srv, http.MethodPost, "/create_custom_session", strings.NewReader(`{"fact_limit": 1}`))
	assert.Equal(t, http.StatusConflict, rec.Code)

	progress := decode(t, do(t, srv, http.MethodGet, "/get_session_progress", nil))
	assert.Equal(t, false, progress["active"])

	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)

	rec = do(t, srv, http.MethodPost, "/create_custom_session", strings.NewReader(`{"fact_limit": 1, "time_limit": 10}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	created := decode(t, rec)
	assert.Equal(t, "success", created["status"])
	assert.NotEmpty(t, created["session_id"])

	fact := decode(t, do(t, srv, http.MethodGet, "/next_fact", nil))
	rec = do(t, srv, http.MethodPost, "/submit_answer/"+fact["factId"].(string)+"/4", nil)
	require.Equal(t, http.StatusOK, rec.Code)

	progress = decode(t, do(t, srv, http.MethodGet, "/get_session_progress", nil))
	assert.Equal(t, true, progress["active"])
	assert.EqualValues(t, 1, progress["facts_studied"])
	assert.EqualValues(t, 1, progress["correct_answers"])
	assert.EqualValues(t, 100, progress["accuracy"])
	assert.EqualValues(t, 600, progress["remaining_seconds"])

	rec = do(t, srv, http.MethodGet, "/next_fact", nil)
	assert.Equal(t, true, decode(t, rec)["session_complete"])

	rec = do(t, srv, http.MethodGet, "/end_session", nil)
	require.Equal(t, http.StatusOK, rec.Code)
	ended := decode(t, rec)
	assert.Equal(t, "success", ended["status"])
	session := ended["session"].(map[string]any)
	assert.EqualValues(t, 1, session["facts_studied"])
	assert.EqualValues(t, 100, session["accuracy"])
	assert.Equal(t, created["session_id"], session["id"])

	rec = do(t, srv, http.MethodGet, "/end_session", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCreateSession_Invalid(t *testing.T) {
	srv := newServer(t, nil)
	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)

	rec := do(t, srv, http.MethodPost, "/create_custom_session", strings.NewReader(`{"mode": "chaos"}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(t, srv, http.MethodPost, "/create_custom_session", strings.NewReader(`{"fact_limit": -1}`))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestAchievementsAndProgress(t *testing.T) {
	srv := newServer(t, nil)

	var catalog []map[string]any
	require.NoError(t, json.Unmarshal(do(t, srv, http.MethodGet, "/get_achievements", nil).Body.Bytes(), &catalog))
	assert.NotEmpty(t, catalog)

	var unlocked []map[string]any
	require.NoError(t, json.Unmarshal(do(t, srv, http.MethodGet, "/get_user_achievements", nil).Body.Bytes(), &unlocked))
	assert.Empty(t, unlocked)

	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)
	do(t, srv, http.MethodGet, "/next_fact", nil)

	require.NoError(t, json.Unmarshal(do(t, srv, http.MethodGet, "/get_user_achievements", nil).Body.Bytes(), &unlocked))
	ids := []string{}
	for _, a := range unlocked {
		ids = append(ids, a["id"].(string))
		assert.Equal(t, "2026-04-20T19:00:00Z", a["unlocked_at"])
	}
	assert.ElementsMatch(t, []string{"deck_builder", "first_fact"}, ids)

	progress := decode(t, do(t, srv, http.MethodGet, "/get_progress", nil))
	assert.EqualValues(t, 1, progress["current_streak"])
	assert.EqualValues(t, 1, progress["facts_viewed"])
	assert.EqualValues(t, 31, progress["total_xp"])
	assert.EqualValues(t, 1, progress["level"])
}

func TestTagsAndDetails(t *testing.T) {
	srv := newServer(t, nil)
	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)

	tags := decode(t, do(t, srv, http.MethodGet, "/get_tags", nil))
	assert.Equal(t, []any{"mars", "planets", "stars"}, tags["tags"])

	fact := decode(t, do(t, srv, http.MethodGet, "/next_fact", nil))
	factID := fact["factId"].(string)

	rec := do(t, srv, http.MethodPost, "/update_fact_tags/"+factID, strings.NewReader(`{"tags": ["Sol", " stars "]}`))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, []any{"sol", "stars"}, decode(t, rec)["tags"])

	rec = do(t, srv, http.MethodPost, "/update_fact_tags/missing", strings.NewReader(`{"tags": []}`))
	assert.Equal(t, http.StatusNotFound, rec.Code)

	rec = do(t, srv, http.MethodGet, "/get_fact_details/"+factID, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	details := decode(t, rec)
	assert.Equal(t, "Space", details["deckName"])
	assert.Contains(t, details["content_html"], "<strong>Sun</strong>")
	assert.Equal(t, []any{"sol", "stars"}, details["tags"])

	rec = do(t, srv, http.MethodGet, "/get_fact_details/missing", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestStudyStats(t *testing.T) {
	srv := newServer(t, nil)
	require.Equal(t, http.StatusOK, uploadFile(t, srv, "space.json", spaceDeck).Code)

	fact := decode(t, do(t, srv, http.MethodGet, "/next_fact", nil))
	require.Equal(t, http.StatusOK, do(t, srv, http.MethodPost, "/submit_answer/"+fact["factId"].(string)+"/5", nil).Code)

	stats := decode(t, do(t, srv, http.MethodGet, "/get_study_stats", nil))
	assert.EqualValues(t, 3, stats["total_facts"])
	assert.EqualValues(t, 1, stats["reviewed_facts"])
	assert.EqualValues(t, 2, stats["new_facts"])
	assert.EqualValues(t, 0, stats["due_facts"])
	assert.InDelta(t, 2.6, stats["avg_ease_factor"], 1e-9)
	assert.Equal(t, []any{}, stats["study_sessions"])
}
