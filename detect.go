package ledmatrix

import (
	"bytes"
	"crypto/rand"
	"errors"
	"fmt"

	"periph.io/x/conn/v3"
)

// ErrDetect is returned when Detect can't find its marker in the echoed data.
var ErrDetect = errors.New("ledmatrix: chain detection failed")

// Detect returns the number of matrices chained on c.
//
// A random marker followed by enough zeros to flush MaxMatrices shift
// registers is sent; the marker comes back delayed by ShiftRegisterLength
// bytes per matrix.
func Detect(c conn.Conn) (int, error) {
	marker := make([]byte, ShiftRegisterLength)
	if _, err := rand.Read(marker); err != nil {
		return 0, fmt.Errorf("ledmatrix: %w", err)
	}
	// An all zero marker would match the padding.
	marker[0] |= 1

	w := make([]byte, ShiftRegisterLength*(MaxMatrices+1))
	copy(w, marker)
	r := make([]byte, len(w))
	if err := c.Tx(w, r); err != nil {
		return 0, err
	}
	for n := 0; n <= MaxMatrices; n++ {
		if bytes.Equal(r[n*ShiftRegisterLength:(n+1)*ShiftRegisterLength], marker) {
			return n, nil
		}
	}
	return 0, ErrDetect
}
