// Package log configures the slog logger of the coerce command from flags.
package log

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/dave-shawley/coercion/internal/flags/enum"
)

const (
	FormatFlagName = "logformat"
	LevelFlagName  = "loglevel"
	OutputFlagName = "logoutput"
)

const (
	FormatText = "text"
	FormatJSON = "json"

	LevelWarn  = "warn"
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelError = "error"

	OutputStderr = "stderr"
	OutputStdout = "stdout"
)

// choice is one accepted value of a logging flag.
type choice struct {
	name string
	help string
}

// setting describes one logging flag. The first choice is the default.
type setting struct {
	flag    string
	summary string
	choices []choice
}

var settings = []setting{
	{
		flag:    FormatFlagName,
		summary: "log output format",
		choices: []choice{
			{FormatText, "human-readable key=value lines"},
			{FormatJSON, "one JSON object per line"},
		},
	},
	{
		flag:    LevelFlagName,
		summary: "minimum level of logged records",
		choices: []choice{
			{LevelWarn, "warnings and errors"},
			{LevelDebug, "everything, including each processed document"},
			{LevelInfo, "informational messages and above"},
			{LevelError, "errors only"},
		},
	},
	{
		// stderr keeps logs apart from documents written to stdout.
		flag:    OutputFlagName,
		summary: "log destination",
		choices: []choice{
			{OutputStderr, "standard error"},
			{OutputStdout, "standard output, interleaved with documents"},
		},
	},
}

var levels = map[string]slog.Level{
	LevelDebug: slog.LevelDebug,
	LevelInfo:  slog.LevelInfo,
	LevelWarn:  slog.LevelWarn,
	LevelError: slog.LevelError,
}

var handlers = map[string]func(io.Writer, *slog.HandlerOptions) slog.Handler{
	FormatText: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewTextHandler(w, o) },
	FormatJSON: func(w io.Writer, o *slog.HandlerOptions) slog.Handler { return slog.NewJSONHandler(w, o) },
}

func (s setting) usage() string {
	var b strings.Builder
	b.WriteString(s.summary)
	for i, c := range s.choices {
		fmt.Fprintf(&b, "\n   %-6s %s", c.name+":", c.help)
		if i == 0 {
			b.WriteString(" (default)")
		}
	}
	return b.String()
}

func (s setting) names() []string {
	names := make([]string, len(s.choices))
	for i, c := range s.choices {
		names[i] = c.name
	}
	return names
}

// RegisterLoggingFlags adds the logformat, loglevel and logoutput flags to
// flagset.
func RegisterLoggingFlags(flagset *pflag.FlagSet) {
	for _, s := range settings {
		enum.Var(flagset, s.flag, s.names(), s.usage())
	}
}

// Config is the logger setup selected on the command line.
type Config struct {
	Format string
	Level  slog.Level
	Output string
}

// ConfigFromFlags reads the logging flags registered by RegisterLoggingFlags.
func ConfigFromFlags(flagset *pflag.FlagSet) (Config, error) {
	var cfg Config
	values := make(map[string]string, len(settings))
	for _, s := range settings {
		v, err := enum.Get(flagset, s.flag)
		if err != nil {
			return cfg, fmt.Errorf("cannot read logging flag: %w", err)
		}
		values[s.flag] = v
	}

	level, ok := levels[values[LevelFlagName]]
	if !ok {
		return cfg, fmt.Errorf("invalid log level: %s", values[LevelFlagName])
	}
	cfg.Format = values[FormatFlagName]
	cfg.Level = level
	cfg.Output = values[OutputFlagName]
	return cfg, nil
}

// Handler returns the slog handler for cfg writing to w.
func (cfg Config) Handler(w io.Writer) (slog.Handler, error) {
	newHandler, ok := handlers[cfg.Format]
	if !ok {
		return nil, fmt.Errorf("invalid log format: %s", cfg.Format)
	}
	return newHandler(w, &slog.HandlerOptions{Level: cfg.Level}), nil
}

// GetBaseLogger builds the logger selected by the command's logging flags.
// Records go to the command's own output or error writer.
func GetBaseLogger(cmd *cobra.Command) (*slog.Logger, error) {
	cfg, err := ConfigFromFlags(cmd.Flags())
	if err != nil {
		return nil, err
	}

	var w io.Writer
	switch cfg.Output {
	case OutputStdout:
		w = cmd.OutOrStdout()
	case OutputStderr:
		w = cmd.ErrOrStderr()
	default:
		return nil, fmt.Errorf("invalid log output: %s", cfg.Output)
	}

	handler, err := cfg.Handler(w)
	if err != nil {
		return nil, err
	}
	return slog.New(handler), nil
}
