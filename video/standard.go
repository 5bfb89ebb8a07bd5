package video

// Capture resolution requested from FFmpeg. Every encoder scales these rows
// onto its own active line count.
const (
	FrameWidth  = 540
	FrameHeight = 480
)

// Standard is a composite video generator for one signal type.
type Standard interface {
	Timing() Timing
	SampleRate() float64
	GenerateFullFrame()
	FillTestPattern()
	Frames() uint64

	// composite frame, read by the modulator
	LockFrame()
	UnlockFrame()
	RLockFrame()
	RUnlockFrame()
	FrameBuffer() []float64

	// RGB24 capture frame, written by the source
	LockRaw()
	UnlockRaw()
	RawFrameBuffer() []byte
}

var _ Standard = (*Encoder)(nil)
