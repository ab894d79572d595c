package app

import (
	"context"
	"fmt"

	"napt/internal/config"
	"napt/internal/creds"
	"napt/internal/history"
	"napt/internal/logging"
	"napt/internal/napkin"
	"napt/internal/submit"
	"napt/internal/ui"
)

// Options configure the napt application.
type Options struct {
	ConfigPath string // empty uses default ~/.config/napt/config.toml
}

// Run boots the napt TUI until the context is cancelled or the user quits.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	log, logCloser, err := logging.New(logging.Config{
		Level:  cfg.LogLevel,
		Format: cfg.LogFormat,
		Path:   cfg.LogPath(),
	})
	if err != nil {
		return fmt.Errorf("init logging: %w", err)
	}
	defer func() { _ = logCloser.Close() }()

	client, err := napkin.NewClient(cfg.BaseURL, cfg.Timeout)
	if err != nil {
		return fmt.Errorf("init napkin client: %w", err)
	}

	// Environment credentials (possibly from the config dir's .env) override
	// the encrypted file store; saves from the settings view always land in
	// the file store.
	credStore := creds.Chain{
		creds.EnvStore{},
		creds.NewFileStore(cfg.CredentialsPath(), cfg.CredentialKeyPath()),
	}

	hist, err := history.Open(cfg.HistoryPath())
	if err != nil {
		// History is a convenience; the app still sends without it.
		log.Warn("history unavailable", "error", err)
		hist = nil
	} else {
		defer func() { _ = hist.Close() }()
	}

	submitter := submit.New(client, credStore, recorderOrNil(hist), log)

	log.Info("napt starting", "base_url", cfg.BaseURL)
	return ui.Run(ui.Options{
		Context:   ctx,
		Submitter: submitter,
		Creds:     credStore,
		History:   hist,
		Log:       log,
	})
}

// recorderOrNil avoids handing submit a non-nil interface wrapping a nil
// *history.Store.
func recorderOrNil(hist *history.Store) submit.Recorder {
	if hist == nil {
		return nil
	}
	return hist
}
