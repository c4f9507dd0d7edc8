// Package core provides the embedding surface of the SM83 engine: a
// machine made of a cartridge, a bus and a CPU that a host steps.
package core

import (
	"github.com/thelolagemann/sm83/internal/bus"
	"github.com/thelolagemann/sm83/internal/cpu"
	"github.com/thelolagemann/sm83/pkg/log"
	"github.com/thelolagemann/sm83/pkg/utils"
)

// Core represents a machine. It contains all the components of the
// machine, and is the main entry point for a host.
type Core struct {
	CPU *cpu.CPU
	Bus *bus.Bus

	log.Logger

	optErr error
}

// New returns a new Core with an empty cartridge inserted, and
// applies the given options in order.
func New(opts ...Opt) *Core {
	logger := log.NewNullLogger()
	b := bus.NewBus(nil, logger)
	c := &Core{
		CPU:    cpu.NewCPU(b),
		Bus:    b,
		Logger: logger,
	}

	for _, opt := range opts {
		opt(c)
	}

	return c
}

// NewFromROM returns a new Core with rom inserted as its cartridge.
func NewFromROM(rom []byte, opts ...Opt) (*Core, error) {
	c := New(append(opts, WithROM(rom))...)
	if c.optErr != nil {
		return nil, c.optErr
	}
	return c, nil
}

// NewFromFile loads a ROM from disk, decompressing it if necessary,
// and returns a new Core with it inserted.
func NewFromFile(filename string, opts ...Opt) (*Core, error) {
	rom, err := utils.LoadFile(filename)
	if err != nil {
		return nil, err
	}
	return NewFromROM(rom, opts...)
}

// LoadROM swaps the inserted cartridge for rom without touching the
// CPU. On error the previous cartridge stays inserted.
func (c *Core) LoadROM(rom []byte) error {
	if err := c.Bus.Cart.Load(rom); err != nil {
		c.Errorf("invalid rom: %v", err)
		return err
	}
	c.Infof("loaded cartridge: %s", c.Bus.Cart.Header.String())
	return nil
}

// Reset resets the CPU to its power on state. Memory and the cycle
// counter are left as they are.
func (c *Core) Reset() {
	c.CPU.Reset()
}

// Status returns the status of the CPU.
func (c *Core) Status() Status {
	switch {
	case c.CPU.Err() != nil:
		return Errored
	case c.CPU.Halted(), c.CPU.Stopped():
		return Halted
	}
	return Running
}

// Step executes a single instruction.
func (c *Core) Step() error {
	_, err := c.CPU.Step()
	return err
}

// Run executes up to steps instructions. It returns early when the CPU
// halts, stops or locks up, returning the error in the last case.
func (c *Core) Run(steps int) error {
	for i := 0; i < steps; i++ {
		if err := c.Step(); err != nil {
			return err
		}
		if !c.Status().IsRunning() {
			return nil
		}
	}
	return nil
}

// RunCycles executes instructions until the bus has been ticked at
// least n cycles. It returns early in the same cases as Run.
func (c *Core) RunCycles(n uint64) error {
	start := c.Bus.Cycles()
	for c.Bus.Cycles()-start < n {
		if err := c.Step(); err != nil {
			return err
		}
		if !c.Status().IsRunning() {
			return nil
		}
	}
	return nil
}
