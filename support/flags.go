package support

import (
	"fmt"
	"math/bits"
	"strings"

	"golang.org/x/exp/constraints"
)

// Flag names one member of a flags group.
type Flag struct {
	Value uint64
	Name  string
}

// HasFlags reports whether every bit of mask is set in v.
func HasFlags[T constraints.Unsigned](v, mask T) bool {
	return v&mask == mask
}

// FormatFlags renders v using the names of flags, which must be sorted by
// value. An exact match wins, otherwise the single-bit flags present are
// joined with "|" and bits without a name are appended in hex.
func FormatFlags(v uint64, flags []Flag) string {
	for _, f := range flags {
		if f.Value == v {
			return f.Name
		}
	}
	if v == 0 {
		return "0"
	}
	var names []string
	rest := v
	for _, f := range flags {
		if bits.OnesCount64(f.Value) != 1 || rest&f.Value == 0 {
			continue
		}
		names = append(names, f.Name)
		rest &^= f.Value
	}
	if rest != 0 {
		names = append(names, fmt.Sprintf("0x%X", rest))
	}
	return strings.Join(names, "|")
}

// FormatUnknown renders a value no member of the named group matches.
func FormatUnknown(group string, v uint64) string {
	return fmt.Sprintf("%s(0x%X)", group, v)
}
