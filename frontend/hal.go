package frontend

// Values of the tuner HAL 1.0 constant tables. Every exported enumerant in this
// package is defined from this block so that the numbers crossing the hardware
// boundary live in exactly one place.
const (
	halFrontendTypeUndefined = 0
	halFrontendTypeAnalog    = 1
	halFrontendTypeATSC      = 2
	halFrontendTypeATSC3     = 3
	halFrontendTypeDVBC      = 4
	halFrontendTypeDVBS      = 5
	halFrontendTypeDVBT      = 6
	halFrontendTypeISDBS     = 7
	halFrontendTypeISDBS3    = 8
	halFrontendTypeISDBT     = 9
)

// FrontendAnalogType
const (
	halAnalogTypeUndefined = 0
	halAnalogTypeAuto      = 1 << 0
	halAnalogTypePAL       = 1 << 1
	halAnalogTypePALM      = 1 << 2
	halAnalogTypePALN      = 1 << 3
	halAnalogTypePAL60     = 1 << 4
	halAnalogTypeNTSC      = 1 << 5
	halAnalogTypeNTSC443   = 1 << 6
	halAnalogTypeSECAM     = 1 << 7
)

// FrontendAnalogSifStandard
const (
	halSifUndefined = 0
	halSifAuto      = 1 << 0
	halSifBG        = 1 << 1
	halSifBGA2      = 1 << 2
	halSifBGNICAM   = 1 << 3
	halSifI         = 1 << 4
	halSifDK        = 1 << 5
	halSifDK1A2     = 1 << 6
	halSifDK2A2     = 1 << 7
	halSifDK3A2     = 1 << 8
	halSifDKNICAM   = 1 << 9
	halSifL         = 1 << 10
	halSifM         = 1 << 11
	halSifMBTSC     = 1 << 12
	halSifMA2       = 1 << 13
	halSifMEIAJ     = 1 << 14
	halSifINICAM    = 1 << 15
	halSifLNICAM    = 1 << 16
	halSifLPrime    = 1 << 17
)
