package realtime

import "testing"

func TestPublishReachesSubscribers(t *testing.T) {
	h := NewHub()
	a := h.Subscribe(TopicOrders)
	b := h.Subscribe(TopicOrders)
	other := h.Subscribe(TopicMenus)

	h.Publish(TopicOrders, "changed", nil)

	for _, sub := range []*Subscription{a, b} {
		select {
		case ev := <-sub.C:
			if ev.Topic != TopicOrders || ev.Type != "changed" {
				t.Fatalf("unexpected event %+v", ev)
			}
		default:
			t.Fatal("subscriber did not receive event")
		}
	}
	select {
	case ev := <-other.C:
		t.Fatalf("menus subscriber received orders event %+v", ev)
	default:
	}
}

func TestCloseStopsDelivery(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(TopicTables)
	sub.Close()
	sub.Close() // idempotent

	h.Publish(TopicTables, "changed", nil)

	if _, open := <-sub.C; open {
		t.Fatal("channel still open after Close")
	}
}

func TestSlowSubscriberDropsInsteadOfBlocking(t *testing.T) {
	h := NewHub()
	sub := h.Subscribe(TopicChat)

	for i := 0; i < subscriptionBuffer+5; i++ {
		h.Publish(TopicChat, "changed", i)
	}

	// Publisher never blocked; buffer holds at most subscriptionBuffer events.
	if got := len(sub.C); got != subscriptionBuffer {
		t.Fatalf("buffered %d events, want %d", got, subscriptionBuffer)
	}
}

func TestTableOrdersTopic(t *testing.T) {
	if got := TableOrdersTopic("3"); got != "orders/table/3" {
		t.Fatalf("TableOrdersTopic(3) = %q", got)
	}
}
