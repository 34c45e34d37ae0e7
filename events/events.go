// Package events carries the semantic action events published by the router
// and the subscription registry they are delivered through.
package events

import (
	dmath "github.com/yohamta/donburi/features/math"
)

// Kind identifies one of the semantic action events.
type Kind int

const (
	MoveStarted Kind = iota
	Move
	MoveCanceled
	PrimaryInteract
	PrimaryCanceled
	SecondaryInteract
	SecondaryCanceled
	Menu
	KindCount // Must be last - used for array sizing
)

func (k Kind) String() string {
	switch k {
	case MoveStarted:
		return "move-started"
	case Move:
		return "move"
	case MoveCanceled:
		return "move-canceled"
	case PrimaryInteract:
		return "primary-interact"
	case PrimaryCanceled:
		return "primary-canceled"
	case SecondaryInteract:
		return "secondary-interact"
	case SecondaryCanceled:
		return "secondary-canceled"
	case Menu:
		return "menu"
	}
	return "unknown"
}

// Event is the payload delivered to listeners. Value is the current move
// vector for the Move family and the zero vector for button kinds.
type Event struct {
	Kind  Kind
	Value dmath.Vec2
}
