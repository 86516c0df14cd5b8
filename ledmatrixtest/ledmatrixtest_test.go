package ledmatrixtest

import (
	"bytes"
	"errors"
	"testing"

	"periph.io/x/conn/v3/physic"
	"periph.io/x/conn/v3/spi"
)

func TestChainDelaysBytes(t *testing.T) {
	c := New(2)
	w := make([]byte, 3*RegisterLength)
	for i := range w {
		w[i] = byte(i + 1)
	}
	r := make([]byte, len(w))
	if err := c.Tx(w, r); err != nil {
		t.Fatalf("Tx() error = %v", err)
	}
	// The first 64 bytes come from the blank registers.
	for i := 0; i < 2*RegisterLength; i++ {
		if r[i] != 0 {
			t.Fatalf("r[%d] = %#x, want 0", i, r[i])
		}
	}
	if !bytes.Equal(r[2*RegisterLength:], w[:RegisterLength]) {
		t.Errorf("echo = %v, want %v", r[2*RegisterLength:], w[:RegisterLength])
	}
	if !bytes.Equal(c.Frame(), w[RegisterLength:]) {
		t.Error("Frame() does not hold the last bytes sent")
	}
}

func TestChainRegisters(t *testing.T) {
	c := New(2)
	w := append(bytes.Repeat([]byte{0xAA}, RegisterLength), bytes.Repeat([]byte{0x55}, RegisterLength)...)
	if err := c.Tx(w, nil); err != nil {
		t.Fatalf("Tx() error = %v", err)
	}
	// The bytes sent last stay in the matrix nearest to the host.
	if got := c.Register(0); !bytes.Equal(got, w[RegisterLength:]) {
		t.Errorf("Register(0) = %v, want 0x55s", got)
	}
	if got := c.Register(1); !bytes.Equal(got, w[:RegisterLength]) {
		t.Errorf("Register(1) = %v, want 0xAAs", got)
	}
}

func TestEmptyChainEchoes(t *testing.T) {
	c := New(0)
	w := []byte{1, 2, 3}
	r := make([]byte, len(w))
	if err := c.Tx(w, r); err != nil {
		t.Fatalf("Tx() error = %v", err)
	}
	if !bytes.Equal(r, w) {
		t.Errorf("r = %v, want %v", r, w)
	}
}

func TestChainTxErrors(t *testing.T) {
	c := New(1)
	if err := c.Tx([]byte{1, 2}, make([]byte, 1)); err == nil {
		t.Error("Tx() with mismatched buffers should fail")
	}
	boom := errors.New("boom")
	c.TxErr = boom
	if err := c.Tx([]byte{1}, nil); err != boom {
		t.Errorf("Tx() error = %v, want %v", err, boom)
	}
	if c.Transfers() != 0 {
		t.Errorf("Transfers() = %d, want 0", c.Transfers())
	}
}

func TestChainConnect(t *testing.T) {
	c := New(3)
	conn, err := c.Connect(physic.MegaHertz, spi.Mode0, 8)
	if err != nil {
		t.Fatalf("Connect() error = %v", err)
	}
	if c.Freq() != physic.MegaHertz {
		t.Errorf("Freq() = %v, want %v", c.Freq(), physic.MegaHertz)
	}
	if err := conn.TxPackets([]spi.Packet{{W: []byte{1}}, {W: []byte{2}}}); err != nil {
		t.Fatalf("TxPackets() error = %v", err)
	}
	if c.Transfers() != 2 {
		t.Errorf("Transfers() = %d, want 2", c.Transfers())
	}
	if _, err := c.Connect(physic.MegaHertz, spi.Mode0, 16); err == nil {
		t.Error("Connect() with 16 bits should fail")
	}
	if c.String() != "ledmatrixtest.Chain{3}" {
		t.Errorf("String() = %q", c.String())
	}
}
