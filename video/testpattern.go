package video

// 75% SMPTE bars, top to bottom: the seven colour bars over two thirds of the
// picture, then the reverse-blue castellations, then black.
var (
	barColors = [7][3]uint8{
		{192, 192, 192}, // Gray
		{192, 192, 0},   // Yellow
		{0, 192, 192},   // Cyan
		{0, 192, 0},     // Green
		{192, 0, 192},   // Magenta
		{192, 0, 0},     // Red
		{0, 0, 192},     // Blue
	}
	castellationColors = [7][3]uint8{
		{0, 0, 192},     // Blue
		{19, 19, 19},    // Black
		{192, 0, 192},   // Magenta
		{19, 19, 19},    // Black
		{0, 192, 192},   // Cyan
		{19, 19, 19},    // Black
		{192, 192, 192}, // Gray
	}
)

// FillColorBars fills an RGB24 FrameWidth x FrameHeight buffer with SMPTE colour bars.
func FillColorBars(buf []byte) {
	barWidth := FrameWidth / 7
	barsEnd := FrameHeight * 2 / 3
	castellationEnd := FrameHeight * 3 / 4
	for y := 0; y < FrameHeight; y++ {
		for x := 0; x < FrameWidth; x++ {
			barIdx := x / barWidth
			if barIdx >= 7 {
				barIdx = 6
			}
			c := [3]uint8{0, 0, 0}
			switch {
			case y < barsEnd:
				c = barColors[barIdx]
			case y < castellationEnd:
				c = castellationColors[barIdx]
			}
			i := (y*FrameWidth + x) * 3
			buf[i] = c[0]
			buf[i+1] = c[1]
			buf[i+2] = c[2]
		}
	}
}
