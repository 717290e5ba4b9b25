package tabpfn

import (
	"io"

	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/models"
	"github.com/rs/zerolog"
	"github.com/spf13/pflag"
)

// Option customises a [Session] built by [NewSession].
type Option func(*Session)

// WithConnector replaces the default connector that talks HTTP to the
// service and caches state under the cache directory.
func WithConnector(c Connector) Option {
	return func(s *Session) { s.connector = c }
}

// WithPrompter replaces the default interactive terminal prompts.
func WithPrompter(p Prompter) Option {
	return func(s *Session) { s.prompter = p }
}

// WithCacheDir sets the directory removed by [Session.Reset].
func WithCacheDir(dir string) Option {
	return func(s *Session) { s.cacheDir = dir }
}

// WithLogger sets the logger. The default writes JSON to the configured log
// file, or to stderr.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Session) { s.logger = &logger.Logger{Logger: l} }
}

// WithFlagSet makes the configuration read CLI flags bound on fs in addition
// to the environment and the JSON file.
func WithFlagSet(fs *pflag.FlagSet) Option {
	return func(s *Session) { s.flags = fs }
}

// WithPromptOutput sends the output of the default prompter to w.
func WithPromptOutput(w io.Writer) Option {
	return func(s *Session) { s.promptOut = w }
}

// WithBuildInfo sets the build info shown by the default prompter.
func WithBuildInfo(info models.AppBuildInfo) Option {
	return func(s *Session) { s.buildInfo = &info }
}
