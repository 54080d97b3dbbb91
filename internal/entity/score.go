package entity

import (
	"math"
	"strconv"
)

// Score counts apples eaten. It saturates at its maximum instead of wrapping.
type Score uint16

// Inc adds one apple to the score.
func (s *Score) Inc() {
	if *s < math.MaxUint16 {
		*s++
	}
}

// String returns the score as a decimal number.
func (s Score) String() string {
	return strconv.Itoa(int(s))
}
