package certgen

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// parseHexColor accepts #rgb and #rrggbb. Anything else falls back to the
// default accent so a bad template row cannot break rendering.
func parseHexColor(s string) color.RGBA {
	c, err := hexColor(s)
	if err != nil {
		c, _ = hexColor(defaultPrimaryColor)
	}
	return c
}

func hexColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(strings.TrimSpace(s), "#")
	switch len(s) {
	case 3:
		s = string([]byte{s[0], s[0], s[1], s[1], s[2], s[2]})
	case 6:
	default:
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("bad hex color %q", s)
	}
	return color.RGBA{
		R: uint8(v >> 16),
		G: uint8(v >> 8),
		B: uint8(v),
		A: 0xff,
	}, nil
}
