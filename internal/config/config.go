// SPDX-License-Identifier: EPL-2.0

// Package config builds the cuemix command configuration from command-line
// flags and CUEMIX_* environment variables.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/ik5/cuemix/cue"
)

// EnvPrefix prefixes every environment variable read by Load. The variable
// for a flag is its name upper-cased with dashes as underscores, so
// -block-size is CUEMIX_BLOCK_SIZE.
const EnvPrefix = "CUEMIX_"

// ErrNoInput is returned when no audio files are given.
var ErrNoInput = errors.New("no input files")

// Config holds the command configuration.
type Config struct {
	Files  []string
	Logger LoggerConfig
	// Detect is checked by cue.Settings.Validate.
	Detect cue.Settings `validate:"-"`
	Mix    MixConfig
	// JSON prints the cue table as JSON instead of text.
	JSON bool
	// Workers bounds how many files are analyzed at once.
	Workers int `validate:"min=1"`
}

// LoggerConfig holds logging configuration.
type LoggerConfig struct {
	Level  string
	Format string `validate:"oneof=text json"`
}

// MixConfig holds the offline render configuration. No render happens when
// Out is empty.
type MixConfig struct {
	Out string
	// SampleRate of the mix; 0 takes the rate of the first track.
	SampleRate int `validate:"gte=0"`
	Channels   int `validate:"min=1,max=8"`
	BitDepth   int `validate:"oneof=16 24"`
	// Tick is the scheduler step of the render.
	Tick time.Duration `validate:"gt=0"`
}

type option struct {
	name   string
	usage  string
	isBool bool
}

var options = []option{
	{name: "log-level", usage: "Log level (debug, info, warn, error)"},
	{name: "log-format", usage: "Log format (text, json)"},

	{name: "block-size", usage: "Analysis block size in frames, a power of two in [256, 16384] (default: 256)"},
	{name: "start-peak", usage: "Start scan peak level in dBFS (default: -15)"},
	{name: "start-quiet", usage: "Start scan quiet level in dBFS (default: -30)"},
	{name: "start-duration", usage: "Start scan quiet duration in seconds (default: 0.5)"},
	{name: "next-peak", usage: "Next scan peak level in dBFS (default: -15)"},
	{name: "next-quiet", usage: "Next scan quiet level in dBFS (default: -30)"},
	{name: "next-duration", usage: "Next scan quiet duration in seconds (default: 0.5)"},
	{name: "begin-fade", usage: "Seconds between begin and start (default: 0)"},
	{name: "end-fade", usage: "Seconds between next and end (default: 0.5)"},

	{name: "out", usage: "Render the crossfaded playlist to this WAV file"},
	{name: "rate", usage: "Mix sample rate in Hz (default: first track's rate)"},
	{name: "channels", usage: "Mix channel count (default: 2)"},
	{name: "bit-depth", usage: "Mix bit depth, 16 or 24 (default: 16)"},
	{name: "tick", usage: "Scheduler step of the render (default: 16.666ms)"},

	{name: "json", usage: "Print cue points as JSON", isBool: true},
	{name: "workers", usage: "Files analyzed concurrently (default: 4)"},
}

// setting is a flag that remembers whether it was given.
type setting struct {
	value  string
	isBool bool
}

func (s *setting) String() string     { return s.value }
func (s *setting) Set(v string) error { s.value = v; return nil }
func (s *setting) IsBoolFlag() bool   { return s.isBool }

func newFlagSet(name string) (*flag.FlagSet, map[string]*setting) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	settings := make(map[string]*setting, len(options))
	for _, o := range options {
		s := &setting{isBool: o.isBool}
		settings[o.name] = s
		fs.Var(s, o.name, o.usage)
	}
	return fs, settings
}

// Load reads the configuration with precedence:
// 1. Command-line flags (highest priority).
// 2. Environment variables (CUEMIX_*), looked up with getenv.
// 3. Default values (lowest priority).
// Positional arguments are the input files. getenv may be nil to use os.Getenv.
func Load(name string, args []string, getenv func(string) string) (*Config, error) {
	if getenv == nil {
		getenv = os.Getenv
	}

	fs, flags := newFlagSet(name)
	fs.SetOutput(io.Discard)
	if err := fs.Parse(args); err != nil {
		return nil, fmt.Errorf("parsing flags: %w", err)
	}

	v := &values{flags: flags, getenv: getenv}
	def := cue.DefaultSettings()

	cfg := &Config{
		Files: fs.Args(),
		Logger: LoggerConfig{
			Level:  v.str("log-level", "info"),
			Format: v.str("log-format", "text"),
		},
		Detect: cue.Settings{
			Start: cue.Threshold{
				PeakLevel:     v.float("start-peak", def.Start.PeakLevel),
				QuietLevel:    v.float("start-quiet", def.Start.QuietLevel),
				QuietDuration: v.float("start-duration", def.Start.QuietDuration),
			},
			Next: cue.Threshold{
				PeakLevel:     v.float("next-peak", def.Next.PeakLevel),
				QuietLevel:    v.float("next-quiet", def.Next.QuietLevel),
				QuietDuration: v.float("next-duration", def.Next.QuietDuration),
			},
			BeginFade: v.float("begin-fade", def.BeginFade),
			EndFade:   v.float("end-fade", def.EndFade),
			BlockSize: v.int("block-size", def.BlockSize),
		},
		Mix: MixConfig{
			Out:        v.str("out", ""),
			SampleRate: v.int("rate", 0),
			Channels:   v.int("channels", 2),
			BitDepth:   v.int("bit-depth", 16),
			Tick:       v.duration("tick", time.Second/60),
		},
		JSON:    v.bool("json", false),
		Workers: v.int("workers", 4),
	}

	if err := errors.Join(v.errs...); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Usage writes the command synopsis and flag summary to w.
func Usage(w io.Writer, name string) {
	fs, _ := newFlagSet(name)
	fs.SetOutput(w)
	fmt.Fprintf(w, "usage: %s [flags] file...\n\n", name)
	fs.PrintDefaults()
	fmt.Fprintf(w, "\nEvery flag can also be set from the environment, e.g. %s.\n", EnvKey("block-size"))
}

// EnvKey returns the environment variable read for the named flag.
func EnvKey(flagName string) string {
	return EnvPrefix + strings.ToUpper(strings.ReplaceAll(flagName, "-", "_"))
}

var validate = sync.OnceValue(func() *validator.Validate {
	return validator.New(validator.WithRequiredStructEnabled())
})

// Validate checks the configuration for errors.
func (c *Config) Validate() error {
	if len(c.Files) == 0 {
		return ErrNoInput
	}
	if err := validate().Struct(c); err != nil {
		return fmt.Errorf("invalid configuration: %w", err)
	}
	if err := c.Detect.Validate(); err != nil {
		return fmt.Errorf("invalid detection settings: %w", err)
	}
	return nil
}

// values resolves one setting at a time and collects parse errors so that
// every bad value is reported at once.
type values struct {
	flags  map[string]*setting
	getenv func(string) string
	errs   []error
}

// lookup returns the raw value for name and where it came from.
func (v *values) lookup(name string) (string, string) {
	if s := v.flags[name].value; s != "" {
		return s, "-" + name
	}
	key := EnvKey(name)
	if s := v.getenv(key); s != "" {
		return s, key
	}
	return "", ""
}

func (v *values) str(name, defaultValue string) string {
	if s, _ := v.lookup(name); s != "" {
		return s
	}
	return defaultValue
}

func parse[T any](v *values, name string, defaultValue T, fn func(string) (T, error)) T {
	s, from := v.lookup(name)
	if s == "" {
		return defaultValue
	}
	x, err := fn(s)
	if err != nil {
		v.errs = append(v.errs, fmt.Errorf("%s %q: %w", from, s, err))
		return defaultValue
	}
	return x
}

func (v *values) int(name string, defaultValue int) int {
	return parse(v, name, defaultValue, strconv.Atoi)
}

func (v *values) float(name string, defaultValue float64) float64 {
	return parse(v, name, defaultValue, func(s string) (float64, error) {
		return strconv.ParseFloat(s, 64)
	})
}

func (v *values) bool(name string, defaultValue bool) bool {
	return parse(v, name, defaultValue, strconv.ParseBool)
}

func (v *values) duration(name string, defaultValue time.Duration) time.Duration {
	return parse(v, name, defaultValue, time.ParseDuration)
}
