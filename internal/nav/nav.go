// Package nav tracks which screen of the session is active.
package nav

import (
	"errors"
	"fmt"
	"log/slog"
)

// NoSellersGuidance is shown when a transaction is started without sellers.
const NoSellersGuidance = "Please define at least one seller in Settings before starting a transaction."

// Screen is a navigation state.
type Screen string

const (
	Home        Screen = "home"
	Settings    Screen = "settings"
	Transaction Screen = "transaction"
)

var (
	// ErrNoSellers is returned when a transaction is started without sellers.
	// The navigator has already moved to Settings when it is returned.
	ErrNoSellers = errors.New("no sellers defined")

	// ErrInvalidTransition is returned for moves the current screen does not offer.
	ErrInvalidTransition = errors.New("invalid screen transition")
)

// Navigator is the screen state machine. It holds no data of its own;
// entering Home runs the reset hook so transaction state never outlives
// the transaction screen.
type Navigator struct {
	current  Screen
	previous Screen
	onHome   func()
}

// New returns a navigator starting at Home, or at Settings when there are
// no sellers. onHome runs on every entry to Home and may be nil.
func New(sellerCount int, onHome func()) *Navigator {
	n := &Navigator{current: Home, onHome: onHome}
	if sellerCount == 0 {
		n.current = Settings
	}
	return n
}

// Current returns the active screen.
func (n *Navigator) Current() Screen {
	return n.current
}

// Previous returns the screen recorded when Settings was opened.
func (n *Navigator) Previous() Screen {
	return n.previous
}

// OpenSettings moves from Home or Transaction to Settings, recording the origin.
func (n *Navigator) OpenSettings() error {
	if n.current == Settings {
		return fmt.Errorf("%w: settings already open", ErrInvalidTransition)
	}
	n.move(Settings)
	return nil
}

// Back leaves Settings for the recorded screen, or Home when none was recorded.
func (n *Navigator) Back() error {
	if n.current != Settings {
		return fmt.Errorf("%w: back from %s", ErrInvalidTransition, n.current)
	}
	target := n.previous
	if target != Home && target != Transaction {
		target = Home
	}
	n.previous = ""
	n.enter(target)
	return nil
}

// StartTransaction moves from Home to Transaction. Without sellers it
// redirects to Settings and returns ErrNoSellers.
func (n *Navigator) StartTransaction(sellerCount int) error {
	if n.current != Home {
		return fmt.Errorf("%w: start transaction from %s", ErrInvalidTransition, n.current)
	}
	if sellerCount == 0 {
		n.move(Settings)
		return ErrNoSellers
	}
	n.move(Transaction)
	return nil
}

// GoHome moves to Home from any screen. Confirm, cancel and load use it.
func (n *Navigator) GoHome() {
	n.move(Home)
}

// Sync forces Settings once the seller collection is empty.
func (n *Navigator) Sync(sellerCount int) {
	if sellerCount == 0 && n.current != Settings {
		slog.Debug("No sellers left, forcing settings", "from", n.current)
		n.current = Settings
	}
}

func (n *Navigator) move(to Screen) {
	n.previous = n.current
	n.enter(to)
}

func (n *Navigator) enter(to Screen) {
	slog.Debug("Screen changed", "from", n.current, "to", to)
	n.current = to
	if to == Home && n.onHome != nil {
		n.onHome()
	}
}
