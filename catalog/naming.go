package catalog

import (
	"strings"
)

// vendorSuffixes are registry vendor tags that appear in all caps at the end of
// group names. Longer tags come first so that NVX wins over NV.
var vendorSuffixes = []string{
	"ANGLE", "APPLE", "INTEL", "QCOM", "MESA", "SGIX", "SGIS", "3DFX",
	"ARB", "EXT", "KHR", "OES", "AMD", "ATI", "IBM", "IMG", "NVX", "OVR",
	"SGI", "SUN", "ARM", "NV",
}

// GoName converts a registry token name into the exported Go identifier used
// for a member, without the group prefix.
//
//	GL_COLOR_BUFFER_BIT -> ColorBufferBit
//	GL_TEXTURE_2D_ARRAY -> Texture2DArray
//	GL_2_BYTES          -> N2Bytes
func GoName(token string) string {
	var b strings.Builder
	for _, part := range strings.Split(strings.TrimPrefix(token, "GL_"), "_") {
		if part == "" {
			continue
		}
		if isDigit(part[0]) {
			b.WriteString(part)
			continue
		}
		b.WriteString(strings.ToUpper(part[:1]))
		b.WriteString(strings.ToLower(part[1:]))
	}
	name := b.String()
	if name == "" || isDigit(name[0]) {
		name = "N" + name
	}
	return name
}

// TypeName converts a registry group name into the Go type name of the group.
// Trailing vendor tags are title-cased: BufferTargetARB -> BufferTargetArb.
func TypeName(group string) string {
	name := group
	for _, v := range vendorSuffixes {
		if len(name) > len(v) && strings.HasSuffix(name, v) && !isUpper(name[len(name)-len(v)-1]) {
			name = name[:len(name)-len(v)] + v[:1] + strings.ToLower(v[1:])
			break
		}
	}
	if name != "" {
		name = strings.ToUpper(name[:1]) + name[1:]
	}
	return name
}

func isDigit(c byte) bool { return c >= '0' && c <= '9' }
func isUpper(c byte) bool { return c >= 'A' && c <= 'Z' }
