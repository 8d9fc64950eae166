package catalog

import (
	"errors"
	"fmt"
	"math/bits"

	"github.com/gopherjs/glenum/internal/errorList"
)

// ErrIrregularFlag is reported for flags members that are neither zero, a
// single bit, nor a combination of other members of the same group.
var ErrIrregularFlag = errors.New("irregular flag value")

// ValidateFlags checks that every member of a flags group is zero, a single
// bit, or composed from single-bit members of the group. Masks such as
// GL_ALL_BARRIER_BITS (every bit set) are accepted as well.
func ValidateFlags(g *Group) error {
	if !g.Flags {
		return nil
	}
	var union uint64
	for _, m := range g.Members {
		if bits.OnesCount64(m.Value) == 1 {
			union |= m.Value
		}
	}
	var errs errorList.ErrorList
	for _, m := range g.Members {
		switch {
		case m.Value == 0, bits.OnesCount64(m.Value) == 1:
		case m.Value&^union == 0:
		case isAllBits(m.Value, g.Wide):
		default:
			errs = errs.Append(fmt.Errorf("%w: %s = 0x%X in %s", ErrIrregularFlag, m.Token, m.Value, g.Name))
		}
	}
	return errs.ErrOrNil()
}

func isAllBits(v uint64, wide bool) bool {
	if wide {
		return v == ^uint64(0)
	}
	return v == 0xFFFFFFFF
}
