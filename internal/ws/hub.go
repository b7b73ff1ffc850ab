package ws

import (
	"log"
	"sync"

	"github.com/google/uuid"
)

// Hub routes notification payloads to the clients subscribed for a given
// profile. A profile can hold several connections at once (multiple tabs,
// phone plus web).
type Hub struct {
	clients    map[uuid.UUID]map[*Client]bool
	publish    chan publication
	register   chan *Client
	unregister chan *Client
	mutex      sync.RWMutex
	logger     *log.Logger
}

type publication struct {
	profileID uuid.UUID
	message   []byte
}

func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		clients:    make(map[uuid.UUID]map[*Client]bool),
		publish:    make(chan publication, 1024),
		register:   make(chan *Client, 128),
		unregister: make(chan *Client, 128),
		logger:     logger,
	}
}

func (h *Hub) Run() {
	for {
		select {
		case client := <-h.register:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			conns := h.clients[client.profileID]
			if conns == nil {
				conns = make(map[*Client]bool)
				h.clients[client.profileID] = conns
			}
			conns[client] = true
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS connected | profile=%s", client.profileID)
			}

		case client := <-h.unregister:
			if client == nil {
				continue
			}
			h.mutex.Lock()
			if conns, ok := h.clients[client.profileID]; ok && conns[client] {
				delete(conns, client)
				if len(conns) == 0 {
					delete(h.clients, client.profileID)
				}
				close(client.send)
			}
			h.mutex.Unlock()
			if h.logger != nil {
				h.logger.Printf("WS disconnected | profile=%s", client.profileID)
			}

		case pub := <-h.publish:
			h.mutex.RLock()
			snapshot := make([]*Client, 0, len(h.clients[pub.profileID]))
			for c := range h.clients[pub.profileID] {
				snapshot = append(snapshot, c)
			}
			h.mutex.RUnlock()

			for _, client := range snapshot {
				select {
				case client.send <- pub.message:
				default:
					h.unregister <- client
				}
			}
		}
	}
}

func (h *Hub) Register(client *Client) {
	if h == nil {
		return
	}
	h.register <- client
}

func (h *Hub) Unregister(client *Client) {
	if h == nil {
		return
	}
	h.unregister <- client
}

// Publish delivers a message to every connection of one profile. It never
// blocks: if the hub's buffer is full the message is dropped and logged.
func (h *Hub) Publish(profileID uuid.UUID, message []byte) {
	if h == nil {
		return
	}
	select {
	case h.publish <- publication{profileID: profileID, message: message}:
	default:
		if h.logger != nil {
			h.logger.Printf("WS publish dropped | profile=%s reason=buffer_full", profileID)
		}
	}
}

func (h *Hub) ClientCount() int {
	if h == nil {
		return 0
	}
	h.mutex.RLock()
	defer h.mutex.RUnlock()
	n := 0
	for _, conns := range h.clients {
		n += len(conns)
	}
	return n
}
