// Package sif maps analog SIF standards to their sound carrier plans.
package sif

import "analogtv/frontend"

// Modulation of a sound carrier.
type Modulation int

const (
	FM Modulation = iota
	AM
	DQPSK
)

func (m Modulation) String() string {
	switch m {
	case FM:
		return "FM"
	case AM:
		return "AM"
	case DQPSK:
		return "DQPSK"
	}
	return "unknown"
}

// Stereo is the stereo or dual-sound scheme carried alongside the main sound.
type Stereo int

const (
	Mono Stereo = iota
	A2
	NICAM
	BTSC
	EIAJ
)

func (s Stereo) String() string {
	switch s {
	case Mono:
		return "mono"
	case A2:
		return "A2"
	case NICAM:
		return "NICAM"
	case BTSC:
		return "BTSC"
	case EIAJ:
		return "EIAJ"
	}
	return "unknown"
}

// System is the broadcast system letter(s) the sound plan belongs to.
type System string

const (
	SystemBG     System = "B/G"
	SystemI      System = "I"
	SystemDK     System = "D/K"
	SystemL      System = "L"
	SystemLPrime System = "L'"
	SystemM      System = "M"
)

// Carrier is a sound carrier relative to the vision carrier.
type Carrier struct {
	OffsetHz   float64
	Modulation Modulation
}

// Plan is the sound carrier layout for one SIF standard.
type Plan struct {
	Standard  frontend.SifStandard
	System    System
	Primary   Carrier
	Secondary *Carrier
	Stereo    Stereo
}

// PositiveVideo reports whether the system uses positive vision modulation
// (white is high carrier), as systems L and L' do.
func (p Plan) PositiveVideo() bool {
	return p.System == SystemL || p.System == SystemLPrime
}

// Frequencies returns the absolute sound carrier frequencies for a vision
// carrier at visionHz. The secondary is zero when the plan has none.
func (p Plan) Frequencies(visionHz float64) (primary, secondary float64) {
	primary = visionHz + p.Primary.OffsetHz
	if p.Secondary != nil {
		secondary = visionHz + p.Secondary.OffsetHz
	}
	return primary, secondary
}

const (
	a2SecondBG  = 5_742_187.5
	a2SecondDK1 = 6_257_812.5
	a2SecondDK2 = 6_742_187.5
	a2SecondM   = 4_724_212.0
	nicamBGDKL  = 5_850_000.0
	nicamI      = 6_552_000.0
	soundBG     = 5_500_000.0
	soundI      = 6_000_000.0
	soundDKL    = 6_500_000.0
	soundM      = 4_500_000.0
	soundLPrime = -6_500_000.0
)

func second(offset float64, m Modulation) *Carrier {
	return &Carrier{OffsetHz: offset, Modulation: m}
}

var plans = map[frontend.SifStandard]Plan{
	frontend.SifBG:      {System: SystemBG, Primary: Carrier{soundBG, FM}},
	frontend.SifBGA2:    {System: SystemBG, Primary: Carrier{soundBG, FM}, Secondary: second(a2SecondBG, FM), Stereo: A2},
	frontend.SifBGNICAM: {System: SystemBG, Primary: Carrier{soundBG, FM}, Secondary: second(nicamBGDKL, DQPSK), Stereo: NICAM},
	frontend.SifI:       {System: SystemI, Primary: Carrier{soundI, FM}},
	frontend.SifINICAM:  {System: SystemI, Primary: Carrier{soundI, FM}, Secondary: second(nicamI, DQPSK), Stereo: NICAM},
	frontend.SifDK:      {System: SystemDK, Primary: Carrier{soundDKL, FM}},
	frontend.SifDK1A2:   {System: SystemDK, Primary: Carrier{soundDKL, FM}, Secondary: second(a2SecondDK1, FM), Stereo: A2},
	frontend.SifDK2A2:   {System: SystemDK, Primary: Carrier{soundDKL, FM}, Secondary: second(a2SecondDK2, FM), Stereo: A2},
	frontend.SifDK3A2:   {System: SystemDK, Primary: Carrier{soundDKL, FM}, Secondary: second(a2SecondBG, FM), Stereo: A2},
	frontend.SifDKNICAM: {System: SystemDK, Primary: Carrier{soundDKL, FM}, Secondary: second(nicamBGDKL, DQPSK), Stereo: NICAM},
	frontend.SifL:       {System: SystemL, Primary: Carrier{soundDKL, AM}},
	frontend.SifLNICAM:  {System: SystemL, Primary: Carrier{soundDKL, AM}, Secondary: second(nicamBGDKL, DQPSK), Stereo: NICAM},
	frontend.SifLPrime:  {System: SystemLPrime, Primary: Carrier{soundLPrime, AM}},
	frontend.SifM:       {System: SystemM, Primary: Carrier{soundM, FM}},
	frontend.SifMBTSC:   {System: SystemM, Primary: Carrier{soundM, FM}, Stereo: BTSC},
	frontend.SifMA2:     {System: SystemM, Primary: Carrier{soundM, FM}, Secondary: second(a2SecondM, FM), Stereo: A2},
	frontend.SifMEIAJ:   {System: SystemM, Primary: Carrier{soundM, FM}, Stereo: EIAJ},
}

// Lookup returns the plan for a concrete SIF standard. UNDEFINED, AUTO and
// unknown values have no plan.
func Lookup(s frontend.SifStandard) (Plan, bool) {
	p, ok := plans[s]
	if !ok {
		return Plan{}, false
	}
	p.Standard = s
	return p, true
}

// Which sound systems each colour system is broadcast with.
var systemsFor = map[frontend.SignalType][]System{
	frontend.SignalTypePAL:     {SystemBG, SystemI, SystemDK},
	frontend.SignalTypePALM:    {SystemM},
	frontend.SignalTypePALN:    {SystemM},
	frontend.SignalTypePAL60:   {SystemM},
	frontend.SignalTypeNTSC:    {SystemM},
	frontend.SignalTypeNTSC443: {SystemM},
	frontend.SignalTypeSECAM:   {SystemBG, SystemDK, SystemL, SystemLPrime},
}

// Compatible reports whether a SIF standard can accompany a signal type.
func Compatible(signal frontend.SignalType, standard frontend.SifStandard) bool {
	p, ok := Lookup(standard)
	if !ok {
		return false
	}
	for _, sys := range systemsFor[signal] {
		if sys == p.System {
			return true
		}
	}
	return false
}

// Default returns the SIF standard used when AUTO is requested for a signal
// type, or SifUndefined when the signal type is not concrete.
func Default(signal frontend.SignalType) frontend.SifStandard {
	switch signal {
	case frontend.SignalTypePAL:
		return frontend.SifBG
	case frontend.SignalTypeSECAM:
		return frontend.SifL
	case frontend.SignalTypePALM, frontend.SignalTypePALN, frontend.SignalTypePAL60,
		frontend.SignalTypeNTSC, frontend.SignalTypeNTSC443:
		return frontend.SifM
	}
	return frontend.SifUndefined
}
