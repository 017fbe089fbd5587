package ecs

import (
	"testing"

	"github.com/phanxgames/osier"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

func TestNewDonburiBus(t *testing.T) {
	world := donburi.NewWorld()
	bus := NewDonburiBus(world)
	if bus == nil {
		t.Fatal("NewDonburiBus returned nil")
	}
}

func TestDonburiBus_Send(t *testing.T) {
	world := donburi.NewWorld()
	bus := NewDonburiBus(world)

	var received []osier.Message
	MessageEventType.Subscribe(world, func(w donburi.World, m osier.Message) {
		received = append(received, m)
	})

	bus.Send(osier.Message{Kind: osier.EventClick, ViewID: 42, ViewName: "ok", X: 100, Y: 200})
	bus.Send(osier.Message{Kind: osier.EventUser + 1, Payload: "saved"})

	// Events are queued until processed.
	MessageEventType.ProcessEvents(world)

	if len(received) != 2 {
		t.Fatalf("expected 2 messages, got %d", len(received))
	}
	if m := received[0]; m.Kind != osier.EventClick || m.ViewID != 42 || m.X != 100 || m.Y != 200 {
		t.Errorf("message 0: %+v", m)
	}
	if m := received[1]; m.Kind != osier.EventUser+1 || m.Payload != "saved" {
		t.Errorf("message 1: %+v", m)
	}
}

func TestDonburiBus_ImplementsMessageBus(t *testing.T) {
	var bus osier.MessageBus = NewDonburiBus(donburi.NewWorld())
	_ = bus // compile-time interface check
}

func TestSubscribe_FiltersByKind(t *testing.T) {
	world := donburi.NewWorld()
	bus := NewDonburiBus(world)

	var clicks, focus int
	Subscribe(world, osier.EventClick, func(osier.Message) { clicks++ })
	Subscribe(world, osier.EventFocusGained, func(osier.Message) { focus++ })

	bus.Send(osier.Message{Kind: osier.EventClick})
	bus.Send(osier.Message{Kind: osier.EventClick})
	bus.Send(osier.Message{Kind: osier.EventFocusGained})
	events.ProcessAllEvents(world)

	if clicks != 2 || focus != 1 {
		t.Errorf("clicks = %d, focus = %d, want 2 and 1", clicks, focus)
	}
}

func TestPageForwardsDispatchToBus(t *testing.T) {
	world := donburi.NewWorld()
	page := osier.NewPage(200, 200)
	page.SetMessageBus(NewDonburiBus(world))

	button := osier.NewView("button")
	button.Style = osier.Style{X: 0.5, Y: 0.5, Width: 0.5, Height: 0.5}
	page.Root().AddChild(button)

	var got []string
	MessageEventType.Subscribe(world, func(w donburi.World, m osier.Message) {
		got = append(got, m.ViewName+":"+m.Kind.String())
	})

	page.InjectClick(100, 100)
	page.Update()
	page.Update()
	events.ProcessAllEvents(world)

	want := []string{
		"button:focus-gained", "button:mouse-enter", "button:press",
		"button:mouse-hover", "button:release", "button:click",
	}
	if len(got) != len(want) {
		t.Fatalf("got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("message %d = %q, want %q", i, got[i], want[i])
		}
	}
}
