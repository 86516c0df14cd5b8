// Package ledmatrixtest provides a software model of a chain of LED matrices
// for tests and emulators.
package ledmatrixtest

import (
	"errors"
	"fmt"
	"sync"

	"periph.io/x/conn/v3"
	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

// RegisterLength is the size of the shift register of each matrix.
const RegisterLength = 32

// Chain emulates n daisy-chained matrices. It implements spi.Port and the
// spi.Conn it returns.
//
// Each byte written is shifted into the matrix nearest to the host; the byte
// leaving the last matrix is echoed back to the host, which makes the chain
// a delay line of n*RegisterLength bytes. An empty chain echoes bytes
// unchanged.
type Chain struct {
	mu    sync.Mutex
	regs  []byte
	freq  physic.Frequency
	txs   int
	TxErr error // Returned by Tx when set.
}

// New returns a chain of n blank matrices.
func New(n int) *Chain {
	return &Chain{regs: make([]byte, n*RegisterLength)}
}

// Len returns the number of matrices.
func (c *Chain) Len() int {
	return len(c.regs) / RegisterLength
}

// String implements conn.Resource.
func (c *Chain) String() string {
	return fmt.Sprintf("ledmatrixtest.Chain{%d}", c.Len())
}

// Connect implements spi.Port.
func (c *Chain) Connect(f physic.Frequency, mode spi.Mode, bits int) (spi.Conn, error) {
	if bits != 8 {
		return nil, errors.New("ledmatrixtest: only 8 bits words are supported")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.freq = f
	return c, nil
}

// LimitSpeed implements spi.Port.
func (c *Chain) LimitSpeed(f physic.Frequency) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.freq = f
	return nil
}

// Freq returns the clock set by Connect or LimitSpeed.
func (c *Chain) Freq() physic.Frequency {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.freq
}

// Duplex implements conn.Conn.
func (c *Chain) Duplex() conn.Duplex {
	return conn.Full
}

// Tx implements conn.Conn. r may be nil.
func (c *Chain) Tx(w, r []byte) error {
	if r != nil && len(r) != len(w) {
		return errors.New("ledmatrixtest: read and write buffers must have the same length")
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.TxErr != nil {
		return c.TxErr
	}
	c.txs++
	for i, b := range w {
		out := b
		if len(c.regs) > 0 {
			out = c.regs[0]
			copy(c.regs, c.regs[1:])
			c.regs[len(c.regs)-1] = b
		}
		if r != nil {
			r[i] = out
		}
	}
	return nil
}

// TxPackets implements spi.Conn.
func (c *Chain) TxPackets(p []spi.Packet) error {
	for _, pkt := range p {
		if err := c.Tx(pkt.W, pkt.R); err != nil {
			return err
		}
	}
	return nil
}

// Transfers returns the number of successful Tx calls.
func (c *Chain) Transfers() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.txs
}

// Frame returns the content of all registers, farthest matrix first. After a
// full frame is shifted in, it equals the bytes sent.
func (c *Chain) Frame() []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]byte(nil), c.regs...)
}

// Register returns the content of matrix i, 0 being the matrix nearest to the
// host.
func (c *Chain) Register(i int) []byte {
	c.mu.Lock()
	defer c.mu.Unlock()
	n := len(c.regs) / RegisterLength
	start := (n - 1 - i) * RegisterLength
	return append([]byte(nil), c.regs[start:start+RegisterLength]...)
}

var _ spi.Port = (*Chain)(nil)
var _ spi.Conn = (*Chain)(nil)
