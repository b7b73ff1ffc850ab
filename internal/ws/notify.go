package ws

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type PrewarmCompletedEvent struct {
	Type      string `json:"type"`
	Computed  int    `json:"computed"`
	Failed    int    `json:"failed"`
	Timestamp string `json:"timestamp"`
}

// Notifier adapts the hub to the discovery usecase's completion callback.
type Notifier struct {
	hub *Hub
}

func NewNotifier(hub *Hub) *Notifier {
	return &Notifier{hub: hub}
}

func (n *Notifier) PrewarmCompleted(profileID uuid.UUID, computed, failed int) {
	if n == nil || n.hub == nil {
		return
	}

	evt := PrewarmCompletedEvent{
		Type:      "prewarm_completed",
		Computed:  computed,
		Failed:    failed,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
	b, err := json.Marshal(evt)
	if err != nil {
		return
	}

	n.hub.Publish(profileID, b)
}
