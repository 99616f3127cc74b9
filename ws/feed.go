package ws

import (
	"log"
	"net/http"
	"sync"

	"github.com/NebiyouChanie/sapore/entity"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

// FeedEvent is one entry on the admin live feed.
type FeedEvent struct {
	Type        string              `json:"type"` // reservation.created | reservation.status
	Reservation *entity.Reservation `json:"reservation"`
}

// FeedHub broadcasts reservation events to every connected admin panel.
type FeedHub struct {
	clients    map[*websocket.Conn]bool
	broadcast  chan FeedEvent
	register   chan *websocket.Conn
	unregister chan *websocket.Conn
	mu         sync.Mutex
}

func NewFeedHub() *FeedHub {
	return &FeedHub{
		clients:    make(map[*websocket.Conn]bool),
		broadcast:  make(chan FeedEvent, 16),
		register:   make(chan *websocket.Conn),
		unregister: make(chan *websocket.Conn),
	}
}

func (h *FeedHub) Run() {
	for {
		select {
		case conn := <-h.register:
			h.mu.Lock()
			h.clients[conn] = true
			h.mu.Unlock()

		case conn := <-h.unregister:
			h.mu.Lock()
			if _, ok := h.clients[conn]; ok {
				delete(h.clients, conn)
				conn.Close()
			}
			h.mu.Unlock()

		case evt := <-h.broadcast:
			h.mu.Lock()
			for conn := range h.clients {
				if err := conn.WriteJSON(evt); err != nil {
					log.Printf("ws write error: %v", err)
					conn.Close()
					delete(h.clients, conn)
				}
			}
			h.mu.Unlock()
		}
	}
}

// Publish never blocks a request handler; an overflowing feed drops the
// event rather than stalling the HTTP path.
func (h *FeedHub) Publish(event string, reservation *entity.Reservation) {
	select {
	case h.broadcast <- FeedEvent{Type: event, Reservation: reservation}:
	default:
		log.Println("ws feed full, dropping event:", event)
	}
}

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool { return true },
}

// WS route: /ws/admin/feed
func (h *FeedHub) HandleWebSocket(c *gin.Context) {
	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		log.Printf("ws upgrade error: %v", err)
		return
	}

	h.register <- conn
	go h.drain(conn)
}

// drain discards inbound frames; the feed is one-way. A read error means
// the client went away.
func (h *FeedHub) drain(conn *websocket.Conn) {
	defer func() { h.unregister <- conn }()
	for {
		if _, _, err := conn.ReadMessage(); err != nil {
			return
		}
	}
}
