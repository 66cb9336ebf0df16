package fsm

import "github.com/librescoot/librefsm"

// Actions is implemented by the traffic light system. Guards are evaluated
// against the most recent flag snapshot it reported; exactly one of them is
// true for any snapshot.
type Actions interface {
	// State entry actions
	EnterCycle(c *librefsm.Context) error
	EnterBlinking(c *librefsm.Context) error
	EnterEmergency(c *librefsm.Context) error
	EnterOff(c *librefsm.Context) error

	// Guards
	IsPowerOff(c *librefsm.Context) bool
	IsEmergency(c *librefsm.Context) bool // emergency set and power on
	IsBlinking(c *librefsm.Context) bool  // blinking set, no higher override
	IsNormal(c *librefsm.Context) bool    // no override set
}
