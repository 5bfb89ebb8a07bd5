package frontend

// AnalogCapabilities describes what an analog frontend can handle. Both fields
// are bit masks of the HAL enumerants.
type AnalogCapabilities struct {
	SignalTypeCap  SignalType
	SifStandardCap SifStandard
}

// SupportsSignalType reports whether every bit of s is in the capability mask.
// UNDEFINED is never supported.
func (c AnalogCapabilities) SupportsSignalType(s SignalType) bool {
	return s != SignalTypeUndefined && c.SignalTypeCap&s == s
}

// SupportsSifStandard reports whether every bit of s is in the capability mask.
func (c AnalogCapabilities) SupportsSifStandard(s SifStandard) bool {
	return s != SifUndefined && c.SifStandardCap&s == s
}

// SignalTypeMask ORs signal types together.
func SignalTypeMask(types ...SignalType) SignalType {
	var m SignalType
	for _, t := range types {
		m |= t
	}
	return m
}

// SifStandardMask ORs SIF standards together.
func SifStandardMask(standards ...SifStandard) SifStandard {
	var m SifStandard
	for _, s := range standards {
		m |= s
	}
	return m
}
