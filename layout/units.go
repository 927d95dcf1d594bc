package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// This file defines the length units accepted in job descriptions. Canvas
// geometry is always in pixels; physical units go through a DPI.

// Unit is the unit a length was written with in the DSL.
type Unit int

const (
	UnitNone Unit = iota // bare numbers, read as pixels
	UnitPX               // pixels
	UnitPT               // points
	UnitIN               // inches
	UnitMM               // millimeters
)

// Conversion constants.
const (
	DefaultDPI    = 96.0
	PointsPerInch = 72.0
	MmPerInch     = 25.4
)

// UnitToString returns a short string for a Unit value.
func UnitToString(u Unit) string {
	switch u {
	case UnitPX:
		return "px"
	case UnitPT:
		return "pt"
	case UnitIN:
		return "in"
	case UnitMM:
		return "mm"
	default:
		return ""
	}
}

// Length preserves a numeric value with its unit.
type Length struct {
	Value float64 `json:"value"`
	Unit  Unit    `json:"unit"`
}

// Pixels converts the length to pixels at dpi (DefaultDPI when dpi <= 0).
func (l Length) Pixels(dpi float64) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	switch l.Unit {
	case UnitPT:
		return l.Value * dpi / PointsPerInch
	case UnitIN:
		return l.Value * dpi
	case UnitMM:
		return l.Value * dpi / MmPerInch
	default:
		return l.Value
	}
}

// ParseLength parses "12", "12px", "9pt", "0.5in" or "10mm".
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	if v == "" {
		return Length{}, fmt.Errorf("长度为空")
	}
	unit := UnitNone
	num := v
	for _, suf := range []struct {
		s string
		u Unit
	}{{"px", UnitPX}, {"pt", UnitPT}, {"in", UnitIN}, {"mm", UnitMM}} {
		if strings.HasSuffix(v, suf.s) {
			unit = suf.u
			num = strings.TrimSpace(strings.TrimSuffix(v, suf.s))
			break
		}
	}
	f, err := strconv.ParseFloat(num, 64)
	if err != nil {
		return Length{}, fmt.Errorf("长度 %q 无法解析: %w", value, err)
	}
	if f < 0 {
		return Length{}, fmt.Errorf("长度 %q 不能为负数", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
