package id

import (
	"bufio"
	"crypto/rand"
	"encoding/binary"
	"io"
)

// Rand supplies the entropy a Generator consumes: one 32-bit draw per counter
// refresh and one per generated ID. Implementations must produce uniformly
// distributed values but need not be safe for concurrent use; the Generator
// serializes all access under its lock.
type Rand interface {
	Uint32() uint32
}

// cryptoRand adapts crypto/rand with a small read-ahead buffer so each draw
// does not cost a syscall.
type cryptoRand struct {
	r *bufio.Reader
}

func newCryptoRand() *cryptoRand {
	return &cryptoRand{r: bufio.NewReaderSize(rand.Reader, 64)}
}

// Uint32 returns the next four buffered random bytes. The OS entropy source
// failing leaves no sound way to keep issuing IDs, so it panics.
func (c *cryptoRand) Uint32() uint32 {
	var b [4]byte
	if _, err := io.ReadFull(c.r, b[:]); err != nil {
		panic("id: crypto/rand failed: " + err.Error())
	}
	return binary.BigEndian.Uint32(b[:])
}
