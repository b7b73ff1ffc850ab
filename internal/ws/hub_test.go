package ws

import (
	"testing"
	"time"

	"github.com/google/uuid"
)

func waitFor(t *testing.T, cond func() bool) {
	t.Helper()
	deadline := time.Now().Add(2 * time.Second)
	for time.Now().Before(deadline) {
		if cond() {
			return
		}
		time.Sleep(5 * time.Millisecond)
	}
	t.Fatalf("condition not reached")
}

func TestHubPublishesToSubscribedProfileOnly(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	alice := uuid.New()
	bob := uuid.New()

	aliceClient := NewClient(hub, nil, alice)
	bobClient := NewClient(hub, nil, bob)
	hub.Register(aliceClient)
	hub.Register(bobClient)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Publish(alice, []byte(`{"type":"prewarm_completed"}`))

	select {
	case msg := <-aliceClient.send:
		if string(msg) != `{"type":"prewarm_completed"}` {
			t.Fatalf("unexpected payload: %s", msg)
		}
	case <-time.After(2 * time.Second):
		t.Fatalf("subscribed client got nothing")
	}

	select {
	case msg := <-bobClient.send:
		t.Fatalf("unsubscribed profile received %s", msg)
	default:
	}
}

func TestHubFansOutToAllProfileConnections(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	profile := uuid.New()
	first := NewClient(hub, nil, profile)
	second := NewClient(hub, nil, profile)
	hub.Register(first)
	hub.Register(second)
	waitFor(t, func() bool { return hub.ClientCount() == 2 })

	hub.Publish(profile, []byte("hello"))

	for _, c := range []*Client{first, second} {
		select {
		case <-c.send:
		case <-time.After(2 * time.Second):
			t.Fatalf("connection missed fan-out")
		}
	}
}

func TestHubUnregisterClosesSendChannel(t *testing.T) {
	hub := NewHub(nil)
	go hub.Run()

	client := NewClient(hub, nil, uuid.New())
	hub.Register(client)
	waitFor(t, func() bool { return hub.ClientCount() == 1 })

	hub.Unregister(client)
	waitFor(t, func() bool { return hub.ClientCount() == 0 })

	if _, open := <-client.send; open {
		t.Fatalf("send channel still open after unregister")
	}
}
