// Package ecs provides ECS adapters for osier's message bus.
//
// The primary adapter is [NewDonburiBus], which publishes osier messages
// (focus, hover, click, key and widget-defined notifications) into a
// [Donburi] world as typed events. Subscribe to [MessageEventType] in your
// ECS systems to receive them.
//
// Usage:
//
//	bus := ecs.NewDonburiBus(world)
//	page.SetMessageBus(bus)
//
// [Donburi]: https://github.com/yohamta/donburi
package ecs
