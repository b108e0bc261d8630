package httpapi

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/lox/pokercarlo/internal/deck"
	"github.com/lox/pokercarlo/internal/montecarlo"
)

func newTestServer() *Server {
	logger := log.NewWithOptions(io.Discard, log.Options{})
	return NewServer([]montecarlo.Option{montecarlo.WithWorkers(2)}, 10000, logger)
}

func post(t *testing.T, h http.Handler, body string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, "/v1/odds", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func TestHealthz(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/healthz", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"ok":true}`, rec.Body.String())
}

func TestOdds(t *testing.T) {
	rec := post(t, newTestServer().Handler(), `{"hands":["Ah5s","Jd5d"],"trials":2000,"seed":42}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	assert.Equal(t, "application/json", rec.Header().Get("Content-Type"))

	var resp OddsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.NotEmpty(t, resp.RunID)
	assert.Equal(t, 2000, resp.Trials)
	assert.InDelta(t, 100.0, resp.Hand1+resp.Hand2+resp.Tie, 1e-9)
	assert.Greater(t, resp.Hand1, resp.Hand2)
}

func TestOddsSeedIsReproducible(t *testing.T) {
	h := newTestServer().Handler()
	body := `{"hands":["Kh Kd","As 9s"],"board":"Qs 7d 2c","trials":1000,"seed":9}`

	var first, second OddsResponse
	require.NoError(t, json.Unmarshal(post(t, h, body).Body.Bytes(), &first))
	require.NoError(t, json.Unmarshal(post(t, h, body).Body.Bytes(), &second))

	assert.Equal(t, first.Hand1, second.Hand1)
	assert.Equal(t, first.Tie, second.Tie)
	assert.NotEqual(t, first.RunID, second.RunID)
}

func TestOddsCompleteBoard(t *testing.T) {
	rec := post(t, newTestServer().Handler(), `{"hands":["Ah Ad","2c 3c"],"board":"Qs Qd Qc 5c 10s","trials":50}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var resp OddsResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 100.0, resp.Hand1)
	assert.Zero(t, resp.Hand2)
	assert.Zero(t, resp.Tie)
}

func TestOddsBadRequests(t *testing.T) {
	tests := []struct {
		name  string
		body  string
		error string
	}{
		{"malformed json", `{"hands":`, "invalid request body"},
		{"one hand", `{"hands":["Ah5s"]}`, "exactly 2 hands"},
		{"bad card", `{"hands":["Ah5x","Jd5d"]}`, "hand 1"},
		{"bad board", `{"hands":["Ah5s","Jd5d"],"board":"Zz"}`, "board"},
		{"duplicate card", `{"hands":["Ah5s","Ah5d"]}`, "Ah"},
		{"board too long", `{"hands":["Ah5s","Jd5d"],"board":"2c 3c 4c 6c 7c 8c"}`, "community"},
		{"too many trials", `{"hands":["Ah5s","Jd5d"],"trials":20000}`, "exceeds limit"},
		{"negative trials", `{"hands":["Ah5s","Jd5d"],"trials":-5}`, "trials"},
	}

	h := newTestServer().Handler()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := post(t, h, tt.body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)

			var resp errorResponse
			require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
			assert.Contains(t, resp.Error, tt.error)
		})
	}
}

func TestOddsCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	req := httptest.NewRequest(http.MethodPost, "/v1/odds", strings.NewReader(`{"hands":["Ah5s","Jd5d"]}`)).WithContext(ctx)
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestStatusFor(t *testing.T) {
	assert.Equal(t, http.StatusBadRequest, statusFor(&deck.DeckIntegrityError{Card: deck.NewCard(deck.Spades, deck.Ace)}))
	assert.Equal(t, http.StatusBadRequest, statusFor(&montecarlo.SamplingExhaustionError{Needed: 5, Available: 1}))
	assert.Equal(t, http.StatusServiceUnavailable, statusFor(context.DeadlineExceeded))
	assert.Equal(t, http.StatusInternalServerError, statusFor(io.ErrUnexpectedEOF))
}

func TestMethodNotAllowed(t *testing.T) {
	rec := httptest.NewRecorder()
	newTestServer().Handler().ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/v1/odds", nil))
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}
