package config

import (
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/spf13/pflag"
)

// Flag names bound by [BindFlags].
const (
	FlagServer   = "server"
	FlagTimeout  = "timeout"
	FlagRetries  = "retries"
	FlagCacheDir = "cache-dir"
	FlagConfig   = "config"
	FlagLogLevel = "log-level"
	FlagLogFile  = "log-file"
)

// ServiceURL holds the base URL of the inference service.
// It implements the pflag.Value interface.
type ServiceURL struct {
	URL *url.URL
}

// BindFlags registers all configuration flags on fs. It is meant to be
// called on the persistent flag set of the root CLI command; the parsed set
// is later passed to [GetStructuredConfig].
//
// Flags:
//
//	-s/--server     inference service URL, [scheme://]host[:port]
//	--timeout       request timeout (e.g., "30s", "5m")
//	--retries       number of retries for failed requests
//	--cache-dir     local cache directory
//	-c/--config     json file path with configs
//	--log-level     log level (debug, info, warn, error)
//	--log-file      file to append log entries to
func BindFlags(fs *pflag.FlagSet) {
	fs.VarP(&ServiceURL{}, FlagServer, "s", "Inference service URL [scheme://]host[:port]")
	fs.Duration(FlagTimeout, 0, "Request timeout (e.g., 30s, 5m)")
	fs.Int(FlagRetries, 0, "Number of retries for failed requests")
	fs.String(FlagCacheDir, "", "Local cache directory")
	fs.StringP(FlagConfig, "c", "", "JSON config file path")
	fs.String(FlagLogLevel, "", "Log level (debug, info, warn, error)")
	fs.String(FlagLogFile, "", "File to append log entries to")
}

// parseFlags reads the flags registered by [BindFlags] from an already
// parsed fs. Flags that are not registered on fs are left zero.
func parseFlags(fs *pflag.FlagSet) (*StructuredConfig, error) {
	cfg := &StructuredConfig{}

	if f := fs.Lookup(FlagServer); f != nil {
		cfg.Adapter.HTTPAddress = f.Value.String()
	}

	var err error
	if fs.Lookup(FlagTimeout) != nil {
		cfg.Adapter.RequestTimeout, err = fs.GetDuration(FlagTimeout)
		if err != nil {
			return nil, fmt.Errorf("error reading --%s flag: %w", FlagTimeout, err)
		}
	}
	if fs.Lookup(FlagRetries) != nil {
		cfg.Adapter.RetryCount, err = fs.GetInt(FlagRetries)
		if err != nil {
			return nil, fmt.Errorf("error reading --%s flag: %w", FlagRetries, err)
		}
	}

	for name, dst := range map[string]*string{
		FlagCacheDir: &cfg.Storage.CacheDir,
		FlagConfig:   &cfg.JSONFilePath,
		FlagLogLevel: &cfg.Logging.Level,
		FlagLogFile:  &cfg.Logging.File,
	} {
		if fs.Lookup(name) == nil {
			continue
		}
		if *dst, err = fs.GetString(name); err != nil {
			return nil, fmt.Errorf("error reading --%s flag: %w", name, err)
		}
	}

	return cfg, nil
}

// String returns the canonical URL, or an empty string when unset.
func (u *ServiceURL) String() string {
	if u == nil || u.URL == nil {
		return ""
	}

	return u.URL.String()
}

// Set parses s as the service URL. A missing scheme defaults to http. Only
// http and https are accepted and a host is required; a trailing slash is
// dropped.
func (u *ServiceURL) Set(s string) error {
	if !strings.Contains(s, "://") {
		s = "http://" + s
	}

	parsed, err := url.Parse(s)
	if err != nil {
		return fmt.Errorf("incorrect service URL provided: %w", err)
	}

	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return errors.New("service URL scheme must be http or https")
	}

	if parsed.Host == "" {
		return errors.New("service URL must contain a host")
	}

	parsed.Path = strings.TrimSuffix(parsed.Path, "/")
	u.URL = parsed
	return nil
}

// Type implements pflag.Value.
func (u *ServiceURL) Type() string {
	return "url"
}

var _ pflag.Value = (*ServiceURL)(nil)
