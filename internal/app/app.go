package app

import (
	"io"
	"log/slog"
	"time"

	"github.com/k0kubun/pp/v3"
	"github.com/specialistvlad/mailassembler/internal/config"
	"github.com/specialistvlad/mailassembler/internal/hcl"
)

// Input file names inside the reports directory.
const (
	ScheduleFileName     = "Program participant schedules.xml"
	ParticipantsFileName = "Program participants.xml"
)

// App encapsulates the application's dependencies, configuration, and lifecycle.
type App struct {
	outW    io.Writer
	logger  *slog.Logger
	config  *Config
	loaders map[config.Format]config.Loader
	now     func() time.Time
	printer *pp.PrettyPrinter
}

// Option customizes an App.
type Option func(*App)

// WithClock sets the time source used for the batch file header.
func WithClock(now func() time.Time) Option {
	return func(a *App) { a.now = now }
}

// WithLoader replaces the parameter loader for a file format.
func WithLoader(format config.Format, loader config.Loader) Option {
	return func(a *App) { a.loaders[format] = loader }
}

// NewApp is the constructor for the main application. It returns a fully
// initialized App instance with its own isolated logger. Logs and the final
// problem report go to outW.
func NewApp(outW io.Writer, appConfig *Config, opts ...Option) *App {
	logger := newLogger(appConfig.LogLevel, appConfig.LogFormat, outW)
	logger.Debug("Logger configured successfully.")

	a := &App{
		outW:   outW,
		logger: logger,
		config: appConfig,
		loaders: map[config.Format]config.Loader{
			config.FormatParm: config.ParmLoader{},
			config.FormatYAML: config.YAMLLoader{},
			config.FormatHCL:  hcl.NewLoader(),
		},
		now:     time.Now,
		printer: newPrinter(),
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Logger returns the application's logger. This is primarily for testing.
func (a *App) Logger() *slog.Logger {
	return a.logger
}
