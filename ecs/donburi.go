package ecs

import (
	"github.com/phanxgames/osier"

	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/features/events"
)

// MessageEventType is the Donburi event type for osier messages.
var MessageEventType = events.NewEventType[osier.Message]()

type donburiBus struct {
	world donburi.World
}

// NewDonburiBus creates a MessageBus backed by a Donburi world.
// Messages are queued on MessageEventType and delivered to subscribers by
// events.ProcessAllEvents or MessageEventType.ProcessEvents.
func NewDonburiBus(world donburi.World) osier.MessageBus {
	return &donburiBus{world: world}
}

func (b *donburiBus) Send(msg osier.Message) {
	MessageEventType.Publish(b.world, msg)
}

// Subscribe registers fn for messages of the given kind only.
func Subscribe(world donburi.World, kind osier.EventKind, fn func(osier.Message)) {
	MessageEventType.Subscribe(world, func(_ donburi.World, msg osier.Message) {
		if msg.Kind == kind {
			fn(msg)
		}
	})
}
