// Package realtime streams board events to WebSocket subscribers of a process.
package realtime

import (
	"encoding/json"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"legal-board-api/internal/domain"
)

const (
	writeWait      = 10 * time.Second
	pongWait       = 60 * time.Second
	pingPeriod     = (pongWait * 9) / 10
	maxMessageSize = 512
	sendBuffer     = 32
	broadcastQueue = 256
)

// SubscriberRecorder is notified when subscribers come and go
type SubscriberRecorder interface {
	SubscriberConnected()
	SubscriberDisconnected()
}

// Client is one WebSocket connection watching a process
type Client struct {
	conn      *websocket.Conn
	send      chan []byte
	processID uuid.UUID
	hub       *Hub
}

// Hub fans board events out to the clients of each process
type Hub struct {
	clients    map[uuid.UUID]map[*Client]struct{}
	clientsMu  sync.RWMutex
	register   chan *Client
	unregister chan *Client
	broadcast  chan domain.BoardEvent
	done       chan struct{}
	stopped    chan struct{}
	stopOnce   sync.Once
	recorder   SubscriberRecorder
	logger     *zap.Logger
}

// NewHub creates a hub and starts its loop. recorder may be nil.
func NewHub(recorder SubscriberRecorder, logger *zap.Logger) *Hub {
	h := &Hub{
		clients:    make(map[uuid.UUID]map[*Client]struct{}),
		register:   make(chan *Client),
		unregister: make(chan *Client),
		broadcast:  make(chan domain.BoardEvent, broadcastQueue),
		done:       make(chan struct{}),
		stopped:    make(chan struct{}),
		recorder:   recorder,
		logger:     logger,
	}
	go h.run()
	return h
}

func (h *Hub) run() {
	defer close(h.stopped)
	for {
		select {
		case c := <-h.register:
			h.clientsMu.Lock()
			if h.clients[c.processID] == nil {
				h.clients[c.processID] = make(map[*Client]struct{})
			}
			h.clients[c.processID][c] = struct{}{}
			h.clientsMu.Unlock()
			if h.recorder != nil {
				h.recorder.SubscriberConnected()
			}
			h.logger.Info("Subscriber registered", zap.String("process_id", c.processID.String()))

		case c := <-h.unregister:
			h.remove(c)

		case ev := <-h.broadcast:
			h.deliver(ev)

		case <-h.done:
			h.clientsMu.Lock()
			for _, set := range h.clients {
				for c := range set {
					close(c.send)
					if h.recorder != nil {
						h.recorder.SubscriberDisconnected()
					}
				}
			}
			h.clients = make(map[uuid.UUID]map[*Client]struct{})
			h.clientsMu.Unlock()
			return
		}
	}
}

// remove expects to run on the hub loop
func (h *Hub) remove(c *Client) {
	h.clientsMu.Lock()
	defer h.clientsMu.Unlock()
	set, ok := h.clients[c.processID]
	if !ok {
		return
	}
	if _, exists := set[c]; !exists {
		return
	}
	delete(set, c)
	close(c.send)
	if len(set) == 0 {
		delete(h.clients, c.processID)
	}
	if h.recorder != nil {
		h.recorder.SubscriberDisconnected()
	}
	h.logger.Info("Subscriber unregistered", zap.String("process_id", c.processID.String()))
}

// deliver expects to run on the hub loop. Clients that cannot keep up are dropped.
func (h *Hub) deliver(ev domain.BoardEvent) {
	payload, err := json.Marshal(ev)
	if err != nil {
		h.logger.Error("Failed to encode board event", zap.Error(err))
		return
	}

	h.clientsMu.RLock()
	var slow []*Client
	for c := range h.clients[ev.ProcessID] {
		select {
		case c.send <- payload:
		default:
			slow = append(slow, c)
		}
	}
	h.clientsMu.RUnlock()

	for _, c := range slow {
		h.logger.Warn("Dropping slow subscriber", zap.String("process_id", c.processID.String()))
		h.remove(c)
	}
}

// Publish queues ev for the subscribers of its process. It never blocks;
// events are dropped when the queue is full or the hub is stopped.
func (h *Hub) Publish(ev domain.BoardEvent) {
	select {
	case <-h.done:
		return
	default:
	}
	select {
	case h.broadcast <- ev:
	default:
		h.logger.Warn("Event queue full, dropping event",
			zap.String("board", ev.Board),
			zap.String("type", string(ev.Type)),
		)
	}
}

// Subscribers returns the number of clients watching processID
func (h *Hub) Subscribers(processID uuid.UUID) int {
	h.clientsMu.RLock()
	defer h.clientsMu.RUnlock()
	return len(h.clients[processID])
}

// Serve attaches conn to the hub and pumps events to it until either side closes
func (h *Hub) Serve(conn *websocket.Conn, processID uuid.UUID) {
	c := &Client{
		conn:      conn,
		send:      make(chan []byte, sendBuffer),
		processID: processID,
		hub:       h,
	}
	select {
	case h.register <- c:
	case <-h.done:
		conn.Close()
		return
	}

	go c.writePump()
	go c.readPump()
}

// Stop disconnects every client and ends the hub loop
func (h *Hub) Stop() {
	h.stopOnce.Do(func() { close(h.done) })
	<-h.stopped
}

// readPump only consumes control frames; clients do not send events
func (c *Client) readPump() {
	defer func() {
		select {
		case c.hub.unregister <- c:
		case <-c.hub.done:
		}
		c.conn.Close()
	}()

	c.conn.SetReadLimit(maxMessageSize)
	c.conn.SetReadDeadline(time.Now().Add(pongWait))
	c.conn.SetPongHandler(func(string) error {
		c.conn.SetReadDeadline(time.Now().Add(pongWait))
		return nil
	})

	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				c.hub.logger.Debug("WebSocket closed", zap.Error(err))
			}
			return
		}
	}
}

func (c *Client) writePump() {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		c.conn.Close()
	}()

	for {
		select {
		case message, ok := <-c.send:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if !ok {
				c.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
				return
			}
			if err := c.conn.WriteMessage(websocket.TextMessage, message); err != nil {
				return
			}

		case <-ticker.C:
			c.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := c.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}
