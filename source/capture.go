// Package source feeds webcam frames into a video standard through FFmpeg.
package source

import (
	"errors"
	"fmt"
	"io"
	"os/exec"
	"runtime"
	"strings"

	"analogtv/config"
	"analogtv/internal/metrics"
	"analogtv/video"

	"github.com/rs/zerolog"
)

// FrameRateArg formats a frame rate the way FFmpeg's fps filter expects it.
func FrameRateArg(t video.Timing) string {
	if t.Lines == 525 {
		return "30000/1001"
	}
	return fmt.Sprintf("%g", t.FrameRate)
}

// FFmpegArgs builds the capture command line for goos.
func FFmpegArgs(goos string, cfg *config.Config, t video.Timing) ([]string, error) {
	var ffmpegArgs []string
	dev := cfg.Device

	switch goos {
	case "linux":
		if dev == "" {
			dev = "/dev/video0"
		}
		ffmpegArgs = []string{"-f", "v4l2", "-i", dev}
	case "darwin":
		if dev == "" {
			dev = "0"
		}
		ffmpegArgs = []string{"-f", "avfoundation", "-i", dev}
	case "windows":
		if dev == "" {
			dev = "Integrated Webcam"
		}
		ffmpegArgs = []string{"-f", "dshow", "-i", "video=" + dev}
	default:
		return nil, fmt.Errorf("unsupported OS: %s", goos)
	}

	vf := []string{
		fmt.Sprintf("scale=%d:%d", video.FrameWidth, video.FrameHeight),
		"fps=" + FrameRateArg(t),
	}
	if cfg.Callsign != "" {
		vf = append(vf,
			"drawbox=x=0:y=ih-40:w=iw:h=40:color=black@0.6:t=fill",
			fmt.Sprintf("drawtext=fontfile=/usr/share/fonts/truetype/dejavu/DejaVuSans-Bold.ttf:expansion=none:text=%s:x=10:y=h-35:fontcolor=white:fontsize=32:borderw=2:bordercolor=black", EscapeFilterText(cfg.Callsign)),
		)
	}

	commonArgs := []string{
		"-hide_banner", "-loglevel", "error",
		"-fflags", "nobuffer", "-flags", "low_delay",
		"-probesize", "32", "-analyzeduration", "0",
		"-threads", "1", "-f", "rawvideo",
		"-pix_fmt", "rgb24", "-vf", strings.Join(vf, ","), "-",
	}
	return append(ffmpegArgs, commonArgs...), nil
}

var (
	optionEscaper = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `:`, `\:`)
	graphEscaper  = strings.NewReplacer(`\`, `\\`, `'`, `\'`, `[`, `\[`, `]`, `\]`, `,`, `\,`, `;`, `\;`)
)

// EscapeFilterText escapes s as a filter option value inside a -vf graph. The
// value is unescaped twice by FFmpeg: once by the graph parser and once by the
// option parser.
func EscapeFilterText(s string) string {
	return graphEscaper.Replace(optionEscaper.Replace(s))
}

// StartFFmpegCapture starts an FFmpeg process and regenerates the composite
// frame of v every time a full RGB frame arrives.
func StartFFmpegCapture(cfg *config.Config, v video.Standard, logger zerolog.Logger) (*exec.Cmd, error) {
	args, err := FFmpegArgs(runtime.GOOS, cfg, v.Timing())
	if err != nil {
		return nil, err
	}
	ffmpegCmd := exec.Command("ffmpeg", args...)

	ffmpegStdout, err := ffmpegCmd.StdoutPipe()
	if err != nil {
		return nil, fmt.Errorf("failed to get FFmpeg stdout pipe: %w", err)
	}
	if err := ffmpegCmd.Start(); err != nil {
		return nil, fmt.Errorf("failed to start FFmpeg: %w", err)
	}
	logger.Info().Msg("FFmpeg process started to capture webcam")

	go Pump(ffmpegStdout, v, logger)
	return ffmpegCmd, nil
}

// Pump copies raw frames from r into v until r fails.
func Pump(r io.Reader, v video.Standard, logger zerolog.Logger) {
	for {
		v.LockRaw()
		_, err := io.ReadFull(r, v.RawFrameBuffer())
		v.UnlockRaw()

		if err != nil {
			if !errors.Is(err, io.EOF) {
				metrics.CaptureErrors.Inc()
				logger.Error().Err(err).Msg("error reading from FFmpeg")
			}
			return
		}

		v.LockFrame()
		v.GenerateFullFrame()
		v.UnlockFrame()
	}
}
