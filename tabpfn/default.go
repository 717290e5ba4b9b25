package tabpfn

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/MKhiriev/go-tabpfn-client/internal/adapter"
	"github.com/MKhiriev/go-tabpfn-client/internal/config"
	"github.com/MKhiriev/go-tabpfn-client/internal/logger"
	"github.com/MKhiriev/go-tabpfn-client/internal/service"
	"github.com/MKhiriev/go-tabpfn-client/internal/store"
	"github.com/MKhiriev/go-tabpfn-client/internal/tui"
)

// applyDefaults fills the collaborators not supplied by options from the
// merged client configuration.
func (s *Session) applyDefaults() error {
	cfg, err := config.GetClientConfig(s.flags)
	if err != nil {
		return fmt.Errorf("error loading client config: %w", err)
	}

	if s.logger == nil {
		s.logger = logger.NewClientLogger("tabpfn", cfg.Logging.File, cfg.Logging.Level)
	}
	if s.cacheDir == "" {
		s.cacheDir = cfg.Storage.CacheDir
	} else {
		// the cache database lives in the directory Reset removes
		cfg.Storage.CacheDir = s.cacheDir
		cfg.Storage.DB.DSN = filepath.Join(s.cacheDir, config.DefaultDBFileName)
	}
	if s.connector == nil {
		s.connector = &defaultConnector{cfg: cfg, logger: s.logger}
	}
	if s.prompter == nil {
		var opts []tui.Option
		if s.promptOut != nil {
			opts = append(opts, tui.WithOutput(s.promptOut))
		}
		if s.buildInfo != nil {
			opts = append(opts, tui.WithBuildInfo(*s.buildInfo))
		}
		s.prompter = tuiPrompter{tui.NewPromptAgent(s.logger.GetChildLogger("prompt"), opts...)}
	}

	return nil
}

// defaultConnector opens the local cache database and the HTTP client on
// every Connect. The returned auth handle owns both and closes them.
type defaultConnector struct {
	cfg    *config.ClientConfig
	logger *logger.Logger
}

func (c *defaultConnector) Connect(ctx context.Context) (AuthHandle, InferenceHandle, error) {
	storages, err := store.NewClientStorages(ctx, c.cfg.Storage, c.logger.GetChildLogger("store"))
	if err != nil {
		return nil, nil, fmt.Errorf("error opening local cache: %w", err)
	}

	serviceClient, err := adapter.NewHTTPServiceClient(c.cfg.Adapter, c.logger.GetChildLogger("adapter"))
	if err != nil {
		storages.Close()
		return nil, nil, fmt.Errorf("error creating service client: %w", err)
	}

	services := service.NewClientServices(storages, serviceClient, c.cfg.App, c.logger.GetChildLogger("service"))
	return services.AuthService, services.InferenceService, nil
}

// tuiPrompter adapts the terminal prompt agent to [Prompter].
type tuiPrompter struct {
	*tui.PromptAgent
}

func (p tuiPrompter) PromptAndSetToken(ctx context.Context, auth AuthHandle) (string, error) {
	return p.PromptAgent.PromptAndSetToken(ctx, auth)
}
