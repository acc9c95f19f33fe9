package handler

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
	"legal-board-api/internal/realtime"
)

const eventSecret = "event-secret"

func setupEventServer(hub *realtime.Hub) *httptest.Server {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.GET("/procesos/:processId/eventos",
		NewEventHandler(hub, eventSecret, []string{"https://app.example.com"}, zap.NewNop()).Subscribe)
	return httptest.NewServer(router)
}

func eventToken(t *testing.T, secret string) string {
	t.Helper()
	s, err := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": uuid.New().String(),
		"exp":     time.Now().Add(time.Hour).Unix(),
	}).SignedString([]byte(secret))
	require.NoError(t, err)
	return s
}

func eventURL(srv *httptest.Server, processID uuid.UUID) string {
	return "ws" + strings.TrimPrefix(srv.URL, "http") + "/procesos/" + processID.String() + "/eventos"
}

func TestEventHandler_Subscribe(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := realtime.NewHub(nil, zap.NewNop())
	srv := setupEventServer(hub)
	defer srv.Close()
	processID := uuid.New()

	url := eventURL(srv, processID) + "?token=" + eventToken(t, eventSecret)
	header := http.Header{"Origin": []string{"https://app.example.com"}}
	conn, _, err := websocket.DefaultDialer.Dial(url, header)
	require.NoError(t, err)
	defer conn.Close()
	require.Eventually(t, func() bool { return hub.Subscribers(processID) == 1 }, 2*time.Second, 10*time.Millisecond)

	hub.Publish(domain.BoardEvent{Type: domain.EventDeleted, Board: "reuniones", ProcessID: processID, ItemID: uuid.New()})

	require.NoError(t, conn.SetReadDeadline(time.Now().Add(2*time.Second)))
	var ev domain.BoardEvent
	require.NoError(t, conn.ReadJSON(&ev))
	assert.Equal(t, domain.EventDeleted, ev.Type)
	assert.Equal(t, "reuniones", ev.Board)

	hub.Stop()
}

func TestEventHandler_RejectsForeignOrigin(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := realtime.NewHub(nil, zap.NewNop())
	defer hub.Stop()
	srv := setupEventServer(hub)
	defer srv.Close()

	url := eventURL(srv, uuid.New()) + "?token=" + eventToken(t, eventSecret)
	_, resp, err := websocket.DefaultDialer.Dial(url, http.Header{"Origin": []string{"https://evil.example.org"}})

	require.Error(t, err)
	require.NotNil(t, resp)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

func TestEventHandler_BadProcessID(t *testing.T) {
	hub := realtime.NewHub(nil, zap.NewNop())
	defer hub.Stop()
	srv := setupEventServer(hub)
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/procesos/nope/eventos")
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
}

func TestEventHandler_RequiresToken(t *testing.T) {
	defer goleak.VerifyNone(t)

	hub := realtime.NewHub(nil, zap.NewNop())
	defer hub.Stop()
	srv := setupEventServer(hub)
	defer srv.Close()
	processID := uuid.New()
	header := http.Header{"Origin": []string{"https://app.example.com"}}

	tests := []struct {
		name  string
		query string
	}{
		{name: "no token", query: ""},
		{name: "empty token", query: "?token="},
		{name: "garbage token", query: "?token=not-a-jwt"},
		{name: "foreign signature", query: "?token=" + eventToken(t, "other-secret")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, resp, err := websocket.DefaultDialer.Dial(eventURL(srv, processID)+tt.query, header)

			require.Error(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
			assert.Zero(t, hub.Subscribers(processID))
		})
	}
}
