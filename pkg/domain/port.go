package domain

import "strings"

// Direction is the role a port plays in communication.
type Direction string

const (
	DirectionSender   Direction = "sender"
	DirectionReceiver Direction = "receiver"
)

// Port is a named communication endpoint of a component.
// Ports are values; replacing one means adding a new Port.
type Port struct {
	Name      string    `json:"name" yaml:"name"`
	Direction Direction `json:"direction" yaml:"direction"`
}

// NewPort creates a port, normalizing the direction to lowercase.
func NewPort(name string, direction Direction) Port {
	return Port{
		Name:      name,
		Direction: Direction(strings.ToLower(strings.TrimSpace(string(direction)))),
	}
}
