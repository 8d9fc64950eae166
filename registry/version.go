package registry

import (
	"fmt"
	"strconv"
	"strings"
)

// Version is a core API version number such as 4.3.
type Version struct {
	Major int
	Minor int
}

// ParseVersion parses "major.minor".
func ParseVersion(s string) (Version, error) {
	major, minor, ok := strings.Cut(strings.TrimSpace(s), ".")
	if !ok {
		return Version{}, fmt.Errorf("malformed version %q", s)
	}
	maj, err := strconv.Atoi(major)
	if err != nil {
		return Version{}, fmt.Errorf("malformed version %q: %w", s, err)
	}
	mnr, err := strconv.Atoi(minor)
	if err != nil {
		return Version{}, fmt.Errorf("malformed version %q: %w", s, err)
	}
	return Version{Major: maj, Minor: mnr}, nil
}

// Less reports whether v precedes o.
func (v Version) Less(o Version) bool {
	if v.Major != o.Major {
		return v.Major < o.Major
	}
	return v.Minor < o.Minor
}

// IsZero reports whether v is unset.
func (v Version) IsZero() bool { return v == Version{} }

func (v Version) String() string {
	return fmt.Sprintf("%d.%d", v.Major, v.Minor)
}
