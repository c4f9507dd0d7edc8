package core

import (
	"github.com/thelolagemann/sm83/internal/cartridge"
	"github.com/thelolagemann/sm83/pkg/log"
)

// Opt is a function that modifies a Core
// instance.
type Opt func(c *Core)

// Debug enables instruction tracing on the CPU.
func Debug() Opt {
	return func(c *Core) {
		c.CPU.Debug = true
	}
}

// WithLogger sets the logger of the core and every component.
func WithLogger(l log.Logger) Opt {
	return func(c *Core) {
		c.Logger = l
		c.Bus.Log = l
		c.CPU.Log = l
	}
}

// WithCartridge inserts an already parsed cartridge.
func WithCartridge(cart *cartridge.Cartridge) Opt {
	return func(c *Core) {
		c.Bus.LoadCartridge(cart)
		c.Infof("inserted cartridge: %s", cart.Header.String())
	}
}

// WithROM parses rom as a cartridge and inserts it. A ROM that fails to
// parse leaves the empty cartridge inserted, and the error is returned
// by NewFromROM.
func WithROM(rom []byte) Opt {
	return func(c *Core) {
		cart, err := cartridge.New(rom)
		if err != nil {
			c.Errorf("invalid rom: %v", err)
			c.optErr = err
			return
		}
		WithCartridge(cart)(c)
	}
}
