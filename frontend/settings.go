// Package frontend holds the tuner frontend settings handed to the SDR layer.
// Settings are immutable values and are only produced by their builders.
package frontend

import "fmt"

// Type identifies which variant of the frontend settings family a value is.
type Type int

const (
	TypeUndefined Type = halFrontendTypeUndefined
	TypeAnalog    Type = halFrontendTypeAnalog
	TypeATSC      Type = halFrontendTypeATSC
	TypeATSC3     Type = halFrontendTypeATSC3
	TypeDVBC      Type = halFrontendTypeDVBC
	TypeDVBS      Type = halFrontendTypeDVBS
	TypeDVBT      Type = halFrontendTypeDVBT
	TypeISDBS     Type = halFrontendTypeISDBS
	TypeISDBS3    Type = halFrontendTypeISDBS3
	TypeISDBT     Type = halFrontendTypeISDBT
)

var typeNames = map[Type]string{
	TypeUndefined: "UNDEFINED",
	TypeAnalog:    "ANALOG",
	TypeATSC:      "ATSC",
	TypeATSC3:     "ATSC3",
	TypeDVBC:      "DVBC",
	TypeDVBS:      "DVBS",
	TypeDVBT:      "DVBT",
	TypeISDBS:     "ISDBS",
	TypeISDBS3:    "ISDBS3",
	TypeISDBT:     "ISDBT",
}

func (t Type) String() string {
	if name, ok := typeNames[t]; ok {
		return name
	}
	return fmt.Sprintf("Type(%d)", int(t))
}

// Settings is implemented by every frontend settings variant.
type Settings interface {
	// Type returns the variant discriminant.
	Type() Type
	// Frequency returns the tuning frequency in Hz.
	Frequency() int
}

// base carries the fields shared by all settings variants.
type base struct {
	frequency int
}

// Frequency returns the tuning frequency in Hz.
func (b base) Frequency() int {
	return b.frequency
}
