package bootstrap

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"luvo/app/models/reading"
	"luvo/app/services"
	"luvo/pkg/deck"
	"luvo/pkg/live"
	"luvo/pkg/metrics"
	"luvo/pkg/session"
	"luvo/routes"
)

type stubCompleter struct{}

func (stubCompleter) Complete(context.Context, string) (string, error) {
	return "Карты говорят: всё будет хорошо.", nil
}

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	collector := metrics.New("luvo_test")
	store := session.NewMemoryStore()
	service := services.NewTarotService(
		deck.NewDrawer(deck.NewSeededRNG(3, 5)),
		services.NewInterpreter(stubCompleter{}, time.Second, collector),
		store,
		collector,
	)

	router := gin.New()
	SetupRoute(router, routes.Dependencies{
		Service:        service,
		Store:          store,
		Metrics:        collector,
		Live:           live.Config{},
		AllowedOrigins: []string{"http://localhost:3000", "https://web.telegram.org"},
		RateLimit:      "1000-S",
	})
	return router
}

func doRequest(router *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	var req *http.Request
	if body == "" {
		req = httptest.NewRequest(method, path, nil)
	} else {
		req = httptest.NewRequest(method, path, bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)
	return rec
}

func TestCardsEndpoints(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/cards", "")
	require.Equal(t, http.StatusOK, rec.Code)
	var all struct {
		Cards []map[string]interface{} `json:"cards"`
		Total int                      `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &all))
	assert.Equal(t, 78, all.Total)
	assert.Len(t, all.Cards, 78)

	rec = doRequest(router, http.MethodGet, "/api/cards/0", "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"The Fool"`)

	rec = doRequest(router, http.MethodGet, "/api/cards/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.JSONEq(t, `{"status":"error","message":"Card not found"}`, rec.Body.String())
}

func TestSpreadsEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/api/spreads", "")
	require.Equal(t, http.StatusOK, rec.Code)

	var body struct {
		Spreads []struct {
			ID    string `json:"id"`
			Cards int    `json:"cards"`
		} `json:"spreads"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &body))
	require.Len(t, body.Spreads, 5)
	assert.Equal(t, "single", body.Spreads[0].ID)
	assert.Equal(t, 10, body.Spreads[2].Cards)
}

func TestReadingRoundTrip(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/reading", `{"question":"Что меня ждет?","spread_type":"three"}`)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var created reading.Reading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	assert.Len(t, created.SessionID, 32)
	assert.Equal(t, "Карты говорят: всё будет хорошо.", created.Interpretation)
	require.Len(t, created.Cards, 3)
	assert.Equal(t, "Прошлое", created.Cards[0].PositionLabel())

	rec = doRequest(router, http.MethodGet, "/api/reading/"+created.SessionID, "")
	require.Equal(t, http.StatusOK, rec.Code)
	var fetched reading.Reading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &fetched))
	assert.Equal(t, created.SessionID, fetched.SessionID)
	assert.Equal(t, created.Cards, fetched.Cards)
	assert.Equal(t, created.Timestamp, fetched.Timestamp)
}

func TestReadingCeltic(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/reading", `{"question":"q","spread_type":"celtic"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	var created reading.Reading
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &created))
	require.Len(t, created.Cards, 10)
	assert.Equal(t, "Текущая ситуация", created.Cards[0].PositionLabel())
	assert.Equal(t, "Финальный результат", created.Cards[9].PositionLabel())

	seen := make(map[int]bool)
	for _, c := range created.Cards {
		assert.False(t, seen[c.ID], "card %d drawn twice", c.ID)
		seen[c.ID] = true
	}
}

func TestReadingErrors(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/reading", `{"question":"q","spread_type":"tarot"}`)
	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)

	rec = doRequest(router, http.MethodPost, "/api/reading", `{"question":`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = doRequest(router, http.MethodGet, "/api/reading/unknown", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "Reading session not found")
}

func TestInterpretEndpoint(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodPost, "/api/interpret",
		`{"question":"q","spread_type":"single","cards":[{"id":0,"name":"The Fool","name_ru":"Шут","meaning":"m","keywords":[],"position":"Ситуация","reversed":true}]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"interpretation":"Карты говорят: всё будет хорошо."}`, rec.Body.String())
}

func TestDailyEndpointIsStable(t *testing.T) {
	router := newTestRouter(t)

	first := doRequest(router, http.MethodGet, "/api/daily", "")
	second := doRequest(router, http.MethodGet, "/api/daily", "")

	require.Equal(t, http.StatusOK, first.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
	assert.Contains(t, first.Body.String(), `"position":null`)
	assert.Contains(t, first.Body.String(), "Карта дня: ")
}

func TestHomeHealthAndMetrics(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "Luvo Tarot API")

	rec = doRequest(router, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"ai":"not_configured"`)

	doRequest(router, http.MethodPost, "/api/reading", `{"question":"q","spread_type":"single"}`)
	rec = doRequest(router, http.MethodGet, "/metrics", "")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `luvo_test_readings_total{spread="single"} 1`)
}

func TestUnknownRoute(t *testing.T) {
	router := newTestRouter(t)

	rec := doRequest(router, http.MethodGet, "/nope", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestLiveReadingSocket(t *testing.T) {
	server := httptest.NewServer(newTestRouter(t))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/live-reading"
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	require.NoError(t, err)
	defer conn.Close()

	require.NoError(t, conn.WriteJSON(map[string]string{"action": "shuffle"}))
	var statuses []string
	for i := 0; i < 6; i++ {
		var reply map[string]interface{}
		require.NoError(t, conn.ReadJSON(&reply))
		statuses = append(statuses, reply["status"].(string))
	}
	assert.Equal(t, []string{"shuffling", "shuffling", "shuffling", "shuffling", "shuffling", "ready"}, statuses)
}

func TestLiveReadingRejectsForeignOrigin(t *testing.T) {
	server := httptest.NewServer(newTestRouter(t))
	defer server.Close()

	url := "ws" + strings.TrimPrefix(server.URL, "http") + "/ws/live-reading"
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example"}})

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

type fakeBreaker struct {
	err error
}

func (f fakeBreaker) BreakerState() string { return "open" }

func (f fakeBreaker) HealthCheck(context.Context) error { return f.err }

func TestHealthReportsDegradedAI(t *testing.T) {
	gin.SetMode(gin.TestMode)
	store := session.NewMemoryStore()
	router := gin.New()
	SetupRoute(router, routes.Dependencies{
		Service: services.NewTarotService(nil, services.NewInterpreter(nil, time.Second, nil), store, nil),
		Store:   store,
		AI:      fakeBreaker{err: errors.New("circuit breaker is open")},
	})

	rec := doRequest(router, http.MethodGet, "/healthz", "")

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"degraded"`)
	assert.Contains(t, rec.Body.String(), `"ai":"open"`)
}
