// Package display shows decoded frames in an FFplay window.
package display

import (
	"fmt"
	"io"
	"os"
	"os/exec"

	"analogtv/video"

	"github.com/rs/zerolog"
)

// FFplay represents the FFplay video player process and its input pipe.
type FFplay struct {
	Pipe io.WriteCloser
	Cmd  *exec.Cmd
}

// Args builds the FFplay command line for raw RGB frames at t's frame rate.
func Args(t video.Timing, title string) []string {
	return []string{
		"-f", "rawvideo",
		"-pixel_format", "rgb24",
		"-video_size", fmt.Sprintf("%dx%d", video.FrameWidth, video.FrameHeight),
		"-framerate", fmt.Sprintf("%f", t.FrameRate),
		"-i", "-", // Read from stdin
		"-window_title", title,
		"-x", "720", "-y", "480",
		"-fflags", "nobuffer",
		"-flags", "low_delay",
	}
}

// Start launches the FFplay process configured for our raw video stream.
func Start(t video.Timing, logger zerolog.Logger) (*FFplay, error) {
	ffplayPath, err := exec.LookPath("ffplay")
	if err != nil {
		return nil, fmt.Errorf("ffplay not found in your PATH")
	}

	cmd := exec.Command(ffplayPath, Args(t, t.Signal.String()+" Receiver")...)
	stdinPipe, err := cmd.StdinPipe()
	if err != nil {
		return nil, err
	}
	cmd.Stderr = os.Stderr // Show ffplay errors in our console

	if err := cmd.Start(); err != nil {
		return nil, err
	}

	logger.Info().Msg("FFplay process started, video output should appear in a new window")
	return &FFplay{Pipe: stdinPipe, Cmd: cmd}, nil
}

// Write sends one frame to the player.
func (f *FFplay) Write(frame []byte) (int, error) {
	return f.Pipe.Write(frame)
}

// Stop safely terminates the FFplay process.
func (f *FFplay) Stop() {
	_ = f.Pipe.Close()
	if f.Cmd.Process != nil {
		_ = f.Cmd.Process.Kill()
	}
}
