// internal/defs/types.go
package defs

import (
	"encoding/json"
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// EnemyType identifies an enemy variant. The string value doubles as the key
// in tuning files and sprite sets.
type EnemyType string

const (
	EnemyGrunt          EnemyType = "GRUNT"
	EnemyRunner         EnemyType = "RUNNER"
	EnemySpawner        EnemyType = "SPAWNER"
	EnemyMinion         EnemyType = "MINION"
	EnemyBatteryCarrier EnemyType = "BATTERY_CARRIER"
	EnemyZigzag         EnemyType = "ZIGZAG"
)

// EnemyTypes lists every enemy type in a stable order.
var EnemyTypes = []EnemyType{
	EnemyGrunt,
	EnemyRunner,
	EnemySpawner,
	EnemyMinion,
	EnemyBatteryCarrier,
	EnemyZigzag,
}

// Valid reports whether t is one of the known enemy types.
func (t EnemyType) Valid() bool {
	for _, known := range EnemyTypes {
		if t == known {
			return true
		}
	}
	return false
}

// HexColor is a color.RGBA that reads and writes "#rrggbb" / "#rrggbbaa".
type HexColor color.RGBA

// RGBA returns the color as color.RGBA.
func (c HexColor) RGBA() color.RGBA {
	return color.RGBA(c)
}

func (c HexColor) String() string {
	if c.A == 0xff {
		return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
	}
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

func (c HexColor) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *HexColor) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("color must be a string: %w", err)
	}
	parsed, err := ParseHexColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

// ParseHexColor parses "#rgb", "#rrggbb" or "#rrggbbaa".
func ParseHexColor(s string) (HexColor, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return HexColor{}, fmt.Errorf("invalid color %q", s)
	}
	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return HexColor{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return HexColor{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
}

// MustHex is ParseHexColor for literals in the built-in tables.
func MustHex(s string) HexColor {
	c, err := ParseHexColor(s)
	if err != nil {
		panic(err)
	}
	return c
}
