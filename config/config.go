package config

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"math"
	"os"
	"strconv"
	"strings"

	"analogtv/frontend"
	"analogtv/preset"

	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
)

// EnvPrefix prefixes every environment variable that provides a flag default.
const EnvPrefix = "ANALOGTV_"

// Config holds all application configuration values.
type Config struct {
	Frequency  float64 // MHz
	Bandwidth  float64 // MHz
	SampleRate float64 // Hz, derived from Bandwidth
	Gain       int
	Device     string
	Callsign   string
	Test       bool

	Signal      string
	Sif         string
	Preset      string
	PresetsFile string

	LogLevel    string
	MetricsAddr string
	NoAuth      bool
	DevicePaths []string
	TUI         bool

	flags *pflag.FlagSet
}

// NewTransmit returns the transmitter defaults.
func NewTransmit() *Config {
	return &Config{
		Frequency:   1280,
		Bandwidth:   1.5,
		Gain:        30,
		Callsign:    "NOCALL",
		Signal:      "NTSC",
		Sif:         "UNDEFINED",
		LogLevel:    "info",
		DevicePaths: []string{"/dev/bus/usb"},
		TUI:         true,
	}
}

// NewReceive returns the receiver defaults. Gain is in tenths of a dB.
func NewReceive() *Config {
	c := NewTransmit()
	c.Bandwidth = 2.0
	c.Gain = 496
	c.TUI = false
	return c
}

// LoadEnv loads .env style files into the process environment. Missing files
// are skipped; variables already set win.
func LoadEnv(files ...string) error {
	if len(files) == 0 {
		files = []string{".env"}
	}
	for _, f := range files {
		if err := godotenv.Load(f); err != nil && !errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("load %s: %w", f, err)
		}
	}
	return nil
}

// BindFlags registers the flags on fs. Environment variables named
// EnvPrefix + upper-cased flag name override the built-in defaults.
func (c *Config) BindFlags(fs *pflag.FlagSet) {
	c.flags = fs
	fs.Float64Var(&c.Frequency, "freq", envFloat("FREQ", c.Frequency), "Frequency in MHz")
	fs.Float64Var(&c.Bandwidth, "bw", envFloat("BW", c.Bandwidth), "Channel bandwidth (sample rate) in MHz")
	fs.IntVar(&c.Gain, "gain", envInt("GAIN", c.Gain), "Gain (TX VGA 0-47 dB, RX tenths of a dB)")
	fs.StringVar(&c.Device, "device", envString("DEVICE", c.Device), "Video device name or index (OS-dependent)")
	fs.StringVar(&c.Callsign, "callsign", envString("CALLSIGN", c.Callsign), "Callsign to overlay on the video")
	fs.BoolVar(&c.Test, "test", envBool("TEST", c.Test), "Show SMPTE colorbar test screen instead of webcam")
	fs.StringVar(&c.Signal, "signal", envString("SIGNAL", c.Signal), "Analog signal type (PAL, PAL_M, PAL_N, PAL_60, NTSC, NTSC_443, SECAM, AUTO)")
	fs.StringVar(&c.Sif, "sif", envString("SIF", c.Sif), "SIF sound standard (BG, I, DK, L, M, ..., AUTO, UNDEFINED)")
	fs.StringVar(&c.Preset, "preset", envString("PRESET", c.Preset), "Channel name from the presets file")
	fs.StringVar(&c.PresetsFile, "presets", envString("PRESETS", c.PresetsFile), "YAML channel map")
	fs.StringVar(&c.LogLevel, "log-level", envString("LOG_LEVEL", c.LogLevel), "Log level (debug, info, warn, error)")
	fs.StringVar(&c.MetricsAddr, "metrics-addr", envString("METRICS_ADDR", c.MetricsAddr), "Serve Prometheus metrics on this address")
	fs.BoolVar(&c.NoAuth, "no-auth", envBool("NO_AUTH", c.NoAuth), "Skip the tuner device access check")
	fs.StringSliceVar(&c.DevicePaths, "device-path", envList("DEVICE_PATH", c.DevicePaths), "Device nodes that grant tuner access")
	fs.BoolVar(&c.TUI, "tui", envBool("TUI", c.TUI), "Show the terminal status view")
}

// Finalize derives computed fields and checks ranges.
func (c *Config) Finalize() error {
	if c.Bandwidth <= 0 {
		return fmt.Errorf("bandwidth must be positive, got %.3f MHz", c.Bandwidth)
	}
	if c.Preset == "" && c.Frequency <= 0 {
		return fmt.Errorf("frequency must be positive, got %.3f MHz", c.Frequency)
	}
	if c.Preset != "" && c.PresetsFile == "" {
		return errors.New("--preset needs --presets")
	}
	// Calculate sample rate from bandwidth
	c.SampleRate = c.Bandwidth * 1_000_000
	return nil
}

// Authorizer returns the tuner access check selected by the configuration.
func (c *Config) Authorizer() frontend.Authorizer {
	if c.NoAuth {
		return frontend.AllowAll
	}
	return frontend.DeviceAuthorizer{Paths: c.DevicePaths}
}

// Settings builds the frontend settings from the frequency, signal and SIF
// flags. With a preset selected, the channel supplies them instead, except for
// flags given explicitly on the command line.
func (c *Config) Settings(ctx context.Context, auth frontend.Authorizer) (*frontend.AnalogSettings, error) {
	ch := preset.Channel{
		Name:         "flags",
		FrequencyMHz: c.Frequency,
		Signal:       c.Signal,
		Sif:          c.Sif,
	}
	if c.Preset != "" {
		m, err := preset.Load(c.PresetsFile)
		if err != nil {
			return nil, err
		}
		if ch, err = m.Find(c.Preset); err != nil {
			return nil, err
		}
		if c.changed("freq") {
			ch.FrequencyMHz = c.Frequency
		}
		if c.changed("signal") {
			ch.Signal = c.Signal
		}
		if c.changed("sif") {
			ch.Sif = c.Sif
		}
	}

	b, err := frontend.NewAnalogBuilder(ctx, auth)
	if err != nil {
		return nil, err
	}
	return ch.Apply(b)
}

func (c *Config) changed(flag string) bool {
	return c.flags != nil && c.flags.Changed(flag)
}

func envString(name, def string) string {
	if v, ok := os.LookupEnv(EnvPrefix + name); ok {
		return v
	}
	return def
}

func envFloat(name string, def float64) float64 {
	if v, err := strconv.ParseFloat(envString(name, ""), 64); err == nil && !math.IsNaN(v) {
		return v
	}
	return def
}

func envInt(name string, def int) int {
	if v, err := strconv.Atoi(envString(name, "")); err == nil {
		return v
	}
	return def
}

func envBool(name string, def bool) bool {
	if v, err := strconv.ParseBool(envString(name, "")); err == nil {
		return v
	}
	return def
}

func envList(name string, def []string) []string {
	v := envString(name, "")
	if v == "" {
		return def
	}
	return strings.Split(v, ",")
}
