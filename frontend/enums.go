package frontend

import (
	"fmt"
	"strings"
)

// SignalType is an analog video signal type. Values are HAL bit flags, so a
// set of them can also be used as a capability mask.
type SignalType int

const (
	SignalTypeUndefined SignalType = halAnalogTypeUndefined
	SignalTypeAuto      SignalType = halAnalogTypeAuto
	SignalTypePAL       SignalType = halAnalogTypePAL
	SignalTypePALM      SignalType = halAnalogTypePALM
	SignalTypePALN      SignalType = halAnalogTypePALN
	SignalTypePAL60     SignalType = halAnalogTypePAL60
	SignalTypeNTSC      SignalType = halAnalogTypeNTSC
	SignalTypeNTSC443   SignalType = halAnalogTypeNTSC443
	SignalTypeSECAM     SignalType = halAnalogTypeSECAM
)

// SifStandard is an analog Standard Interchange Format (sound sub-carrier)
// standard. Values are HAL bit flags.
type SifStandard int

const (
	SifUndefined SifStandard = halSifUndefined
	SifAuto      SifStandard = halSifAuto
	SifBG        SifStandard = halSifBG
	SifBGA2      SifStandard = halSifBGA2
	SifBGNICAM   SifStandard = halSifBGNICAM
	SifI         SifStandard = halSifI
	SifDK        SifStandard = halSifDK
	SifDK1A2     SifStandard = halSifDK1A2
	SifDK2A2     SifStandard = halSifDK2A2
	SifDK3A2     SifStandard = halSifDK3A2
	SifDKNICAM   SifStandard = halSifDKNICAM
	SifL         SifStandard = halSifL
	SifM         SifStandard = halSifM
	SifMBTSC     SifStandard = halSifMBTSC
	SifMA2       SifStandard = halSifMA2
	SifMEIAJ     SifStandard = halSifMEIAJ
	SifINICAM    SifStandard = halSifINICAM
	SifLNICAM    SifStandard = halSifLNICAM
	SifLPrime    SifStandard = halSifLPrime
)

type signalTypeName struct {
	value SignalType
	name  string
}

type sifStandardName struct {
	value SifStandard
	name  string
}

// Declared in HAL order.
var signalTypeNames = []signalTypeName{
	{SignalTypeUndefined, "UNDEFINED"},
	{SignalTypeAuto, "AUTO"},
	{SignalTypePAL, "PAL"},
	{SignalTypePALM, "PAL_M"},
	{SignalTypePALN, "PAL_N"},
	{SignalTypePAL60, "PAL_60"},
	{SignalTypeNTSC, "NTSC"},
	{SignalTypeNTSC443, "NTSC_443"},
	{SignalTypeSECAM, "SECAM"},
}

var sifStandardNames = []sifStandardName{
	{SifUndefined, "UNDEFINED"},
	{SifAuto, "AUTO"},
	{SifBG, "BG"},
	{SifBGA2, "BG_A2"},
	{SifBGNICAM, "BG_NICAM"},
	{SifI, "I"},
	{SifDK, "DK"},
	{SifDK1A2, "DK1_A2"},
	{SifDK2A2, "DK2_A2"},
	{SifDK3A2, "DK3_A2"},
	{SifDKNICAM, "DK_NICAM"},
	{SifL, "L"},
	{SifM, "M"},
	{SifMBTSC, "M_BTSC"},
	{SifMA2, "M_A2"},
	{SifMEIAJ, "M_EIAJ"},
	{SifINICAM, "I_NICAM"},
	{SifLNICAM, "L_NICAM"},
	{SifLPrime, "L_PRIME"},
}

func (s SignalType) String() string {
	for _, n := range signalTypeNames {
		if n.value == s {
			return n.name
		}
	}
	return fmt.Sprintf("SignalType(%#x)", int(s))
}

func (s SifStandard) String() string {
	for _, n := range sifStandardNames {
		if n.value == s {
			return n.name
		}
	}
	return fmt.Sprintf("SifStandard(%#x)", int(s))
}

// SignalTypes returns every declared signal type in HAL order.
func SignalTypes() []SignalType {
	out := make([]SignalType, 0, len(signalTypeNames))
	for _, n := range signalTypeNames {
		out = append(out, n.value)
	}
	return out
}

// SifStandards returns every declared SIF standard in HAL order.
func SifStandards() []SifStandard {
	out := make([]SifStandard, 0, len(sifStandardNames))
	for _, n := range sifStandardNames {
		out = append(out, n.value)
	}
	return out
}

func normalizeName(s string) string {
	s = strings.TrimSpace(strings.ToUpper(s))
	return strings.ReplaceAll(s, "-", "_")
}

// ParseSignalType parses a signal type name such as "pal-m" or "NTSC_443".
func ParseSignalType(s string) (SignalType, error) {
	want := normalizeName(s)
	for _, n := range signalTypeNames {
		if n.name == want {
			return n.value, nil
		}
	}
	return SignalTypeUndefined, fmt.Errorf("unknown signal type %q", s)
}

// ParseSifStandard parses a SIF standard name such as "bg-nicam" or "L_PRIME".
func ParseSifStandard(s string) (SifStandard, error) {
	want := normalizeName(s)
	for _, n := range sifStandardNames {
		if n.name == want {
			return n.value, nil
		}
	}
	return SifUndefined, fmt.Errorf("unknown SIF standard %q", s)
}
