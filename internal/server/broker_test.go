package server

import (
	"encoding/json"
	"testing"

	"github.com/runicvine/vinequiz/internal/game"
)

func TestBrokerPublish(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("round-1")
	other := b.Subscribe("round-2")

	b.Publish("round-1", game.Event{Type: "tick", Remaining: 42})

	select {
	case data := <-ch:
		var e game.Event
		if err := json.Unmarshal(data, &e); err != nil {
			t.Fatalf("unmarshal: %v", err)
		}
		if e.Type != "tick" || e.Remaining != 42 {
			t.Errorf("event = %+v", e)
		}
	default:
		t.Fatal("subscriber got nothing")
	}

	select {
	case <-other:
		t.Fatal("event leaked to another round's subscriber")
	default:
	}
}

func TestBrokerUnsubscribe(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("round-1")
	b.Unsubscribe("round-1", ch)

	b.Publish("round-1", game.Event{Type: "tick"})
	select {
	case <-ch:
		t.Fatal("received after unsubscribe")
	default:
	}
}

func TestBrokerDropsWhenSlow(t *testing.T) {
	b := NewBroker()
	ch := b.Subscribe("round-1")

	// Fill the buffer and then some. Publish must never block.
	for i := 0; i < cap(ch)+10; i++ {
		b.Publish("round-1", game.Event{Type: "tick", Remaining: i})
	}
	if len(ch) != cap(ch) {
		t.Errorf("buffered = %d, want full buffer %d", len(ch), cap(ch))
	}
}
