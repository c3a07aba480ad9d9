package app

import (
	"context"
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/handydiet/internal/config"
	"github.com/five82/handydiet/internal/dietapi"
	"github.com/five82/handydiet/internal/kv"
	"github.com/five82/handydiet/internal/overrides"
	"github.com/five82/handydiet/internal/prefs"
	"github.com/five82/handydiet/internal/server"
	"github.com/five82/handydiet/internal/state"
	"github.com/five82/handydiet/internal/ui"
)

// Options configure a handydiet session.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/handydiet/prefs.toml
	Verbose    bool
	// LogToFile sends logs to the config's log file instead of stderr.
	LogToFile bool
}

// Session holds the wired dependencies shared by every command.
type Session struct {
	Config    config.Config
	Logger    *zap.Logger
	Overrides *overrides.Store
	Fetcher   dietapi.Fetcher
	Data      *state.Store

	closers []func() error
}

// Open loads configuration and wires logging, override storage and the
// dataset client.
func Open(opts Options) (*Session, error) {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	logPath := ""
	if opts.LogToFile {
		logPath = cfg.LogPath()
	}
	logger, err := NewLogger(opts.Verbose, logPath)
	if err != nil {
		return nil, err
	}

	backend, closeBackend, err := kv.Open(cfg.Storage.Backend, cfg.Storage.Path)
	if err != nil {
		_ = logger.Sync()
		return nil, fmt.Errorf("open storage: %w", err)
	}

	client, err := dietapi.NewClient(cfg.APIURL)
	if err != nil {
		_ = closeBackend()
		_ = logger.Sync()
		return nil, fmt.Errorf("init diet client: %w", err)
	}

	logger.Debug("session opened",
		zap.String("api_url", client.BaseURL()),
		zap.String("storage", cfg.Storage.Backend),
		zap.String("storage_path", cfg.Storage.Path),
	)

	return newSession(cfg, logger, backend, client, closeBackend), nil
}

func newSession(cfg config.Config, logger *zap.Logger, backend kv.Store, fetcher dietapi.Fetcher, closers ...func() error) *Session {
	return &Session{
		Config:    cfg,
		Logger:    logger,
		Overrides: overrides.Load(backend, logger.Named("overrides")),
		Fetcher:   fetcher,
		Data:      &state.Store{},
		closers:   closers,
	}
}

// Close releases storage and flushes the logger.
func (s *Session) Close() error {
	var errs []error
	for _, c := range s.closers {
		if c == nil {
			continue
		}
		if err := c(); err != nil {
			errs = append(errs, err)
		}
	}
	_ = s.Logger.Sync()
	return errors.Join(errs...)
}

// Load fetches the dataset once. Later calls return the settled outcome.
func (s *Session) Load(ctx context.Context) error {
	if snap := s.Data.Snapshot(); snap.Phase != state.Loading {
		return snap.Err
	}
	return loadDataset(ctx, s.Data, s.Fetcher, s.Logger)
}

// RunTUI boots the interactive viewer until the user quits or ctx is done.
func RunTUI(ctx context.Context, opts Options) error {
	opts.LogToFile = true
	s, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	prefsPath := opts.PrefsPath
	if prefsPath == "" {
		prefsPath = prefs.DefaultPath()
	}

	return ui.Run(ui.Options{
		Context:   ctx,
		Load:      s.Load,
		Data:      s.Data,
		Overrides: s.Overrides,
		Logger:    s.Logger.Named("ui"),
		Prefs:     prefs.Load(prefsPath),
		PrefsPath: prefsPath,
		Source:    s.Config.APIURL,
	})
}

// RunServe serves the dataset and static front end until ctx is done.
func RunServe(ctx context.Context, opts Options) error {
	s, err := Open(opts)
	if err != nil {
		return err
	}
	defer func() { _ = s.Close() }()

	srv, err := server.New(server.Options{
		DataFile:  s.Config.DataFile,
		StaticDir: s.Config.StaticDir,
		Logger:    s.Logger.Named("server"),
	})
	if err != nil {
		return fmt.Errorf("init server: %w", err)
	}
	s.Logger.Info("serving diet data", zap.String("data_file", s.Config.DataFile))
	return server.Run(ctx, s.Config.Listen, srv, s.Logger, nil)
}
