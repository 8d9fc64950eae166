// Package experiments holds the experimental switches of glenum.
//
// The GLENUM_EXPERIMENT environment variable enables them as a comma
// separated list, for example:
//
//	GLENUM_EXPERIMENT=strict_flags,serial glenum generate
package experiments

import (
	"errors"
	"fmt"
	"os"
	"reflect"
	"sort"
	"strconv"
	"strings"
)

// EnvVar names the environment variable read at startup.
const EnvVar = "GLENUM_EXPERIMENT"

var (
	// ErrInvalidDest is returned by parseFlags when dest isn't a non-nil
	// pointer to a struct of boolean fields.
	ErrInvalidDest = errors.New("invalid flag struct")
	// ErrInvalidFormat is returned by parseFlags for malformed flag lists.
	ErrInvalidFormat = errors.New("invalid flag string format")
)

// Env holds the experiments enabled through GLENUM_EXPERIMENT.
var Env Flags

func init() {
	if err := parseFlags(os.Getenv(EnvVar), &Env); err != nil {
		panic(fmt.Errorf("failed to parse %s flags: %w", EnvVar, err))
	}
}

// Flags lists the supported experiments.
type Flags struct {
	// StrictFlags fails generation when a flags group has members that are
	// neither single bits nor unions of other members.
	StrictFlags bool `flag:"strict_flags"`
	// Serial generates one target at a time.
	Serial bool `flag:"serial"`
}

// Enabled returns the names of the experiments turned on in f, sorted.
func (f Flags) Enabled() []string {
	var names []string
	for name, field := range fieldMap(reflect.ValueOf(f)) {
		if field.Bool() {
			names = append(names, name)
		}
	}
	sort.Strings(names)
	return names
}

// parseFlags fills the boolean fields of dest from raw.
//
// raw is a list of `<name>` or `<name>=<value>` entries separated by commas,
// where a bare name means true. Spaces around names and values are ignored
// and the last occurrence of a repeated name wins. Fields are matched by their
// `flag` tag. Names without a field are skipped so that a retired experiment
// left in someone's environment doesn't break the tool.
func parseFlags(raw string, dest any) error {
	ptr := reflect.ValueOf(dest)
	if ptr.Kind() != reflect.Pointer || ptr.Type().Elem().Kind() != reflect.Struct {
		return fmt.Errorf("%w: must be a pointer to a struct", ErrInvalidDest)
	}
	if ptr.IsNil() {
		return fmt.Errorf("%w: must not be nil", ErrInvalidDest)
	}
	if raw == "" {
		return nil
	}
	fields := fieldMap(ptr.Elem())

	for _, entry := range strings.Split(raw, ",") {
		key, val, found := strings.Cut(entry, "=")
		key = strings.TrimSpace(key)
		val = strings.TrimSpace(val)
		if !found {
			val = "true"
		}
		if key == "" {
			return fmt.Errorf("%w: empty flag name", ErrInvalidFormat)
		}

		field, ok := fields[key]
		if !ok {
			continue
		}
		if field.Kind() != reflect.Bool {
			return fmt.Errorf("%w: only boolean flags are supported", ErrInvalidDest)
		}
		b, err := strconv.ParseBool(val)
		if err != nil {
			return fmt.Errorf("%w: can't parse %q as boolean for flag %q", ErrInvalidFormat, val, key)
		}
		field.SetBool(b)
	}
	return nil
}

// fieldMap indexes the fields of struct s by their "flag" tag.
func fieldMap(s reflect.Value) map[string]reflect.Value {
	typ := s.Type()
	result := map[string]reflect.Value{}
	for i := 0; i < typ.NumField(); i++ {
		if val, ok := typ.Field(i).Tag.Lookup("flag"); ok {
			result[val] = s.Field(i)
		}
	}
	return result
}
