package client

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/caarlos0/env/v11"

	"github.com/MKhiriev/legacy-vault/internal/adapter"
	"github.com/MKhiriev/legacy-vault/internal/config"
	"github.com/MKhiriev/legacy-vault/internal/host"
	"github.com/MKhiriev/legacy-vault/internal/logger"
	"github.com/MKhiriev/legacy-vault/internal/service"
	"github.com/MKhiriev/legacy-vault/internal/store"
	"github.com/MKhiriev/legacy-vault/models"
)

const clientRole = "vault-client"

// waitTimeout bounds how long the app waits for unsettled mutations on exit.
const waitTimeout = 10 * time.Second

// Options are the global command-line options.
type Options struct {
	// ConfigPath is the optional JSON configuration file.
	ConfigPath string

	// InitData is the host-issued session string. Never logged.
	InitData string
}

// sessionEnv is read when --init-data is not given.
type sessionEnv struct {
	InitData string `env:"INIT_DATA"`
}

// Runtime is everything a command needs once configuration is loaded.
type Runtime struct {
	Vault       service.ClientVaultService
	Adapter     adapter.SessionAdapter
	StorageMode store.Mode
	AppVersion  string
	Closer      io.Closer
	Logger      *logger.Logger
}

// Bootstrap builds the [Runtime] for one invocation.
type Bootstrap func(ctx context.Context, opts Options, in io.Reader, out io.Writer) (*Runtime, error)

// App is the vault CLI.
type App struct {
	build     models.AppBuildInfo
	bootstrap Bootstrap

	in     io.Reader
	out    io.Writer
	errOut io.Writer

	opts    Options
	runtime *Runtime
}

// NewApp returns an App wired to the real stores, validator and terminal.
func NewApp(build models.AppBuildInfo, in io.Reader, out, errOut io.Writer) *App {
	return NewAppWithBootstrap(build, DefaultBootstrap, in, out, errOut)
}

// NewAppWithBootstrap returns an App that builds its runtime with bootstrap.
func NewAppWithBootstrap(build models.AppBuildInfo, bootstrap Bootstrap, in io.Reader, out, errOut io.Writer) *App {
	return &App{
		build:     build,
		bootstrap: bootstrap,
		in:        in,
		out:       out,
		errOut:    errOut,
	}
}

func (a *App) Run(ctx context.Context, args []string) error {
	root := a.newRootCommand()
	root.SetArgs(args)
	root.SetIn(a.in)
	root.SetOut(a.out)
	root.SetErr(a.errOut)

	defer a.shutdown()

	return root.ExecuteContext(ctx)
}

// loadRuntime bootstraps on first use so that help and usage errors never
// open the stores.
func (a *App) loadRuntime(ctx context.Context) (*Runtime, error) {
	if a.runtime != nil {
		return a.runtime, nil
	}

	if a.opts.InitData == "" {
		fromEnv, err := env.ParseAs[sessionEnv]()
		if err != nil {
			return nil, fmt.Errorf("error reading session env: %w", err)
		}
		a.opts.InitData = fromEnv.InitData
	}

	rt, err := a.bootstrap(ctx, a.opts, a.in, a.out)
	if err != nil {
		return nil, err
	}
	if rt.Logger == nil {
		rt.Logger = logger.Nop()
	}

	a.runtime = rt
	return rt, nil
}

// shutdown lets in-flight writes settle before the stores are closed.
func (a *App) shutdown() {
	if a.runtime == nil {
		return
	}
	log := a.runtime.Logger

	ctx, cancel := context.WithTimeout(context.Background(), waitTimeout)
	defer cancel()

	if err := a.runtime.Vault.Wait(ctx); err != nil {
		log.Err(err).Str("func", "App.shutdown").Int("pending", a.runtime.Vault.Pending()).Msg("mutations still pending on exit")
	}
	if a.runtime.Closer != nil {
		if err := a.runtime.Closer.Close(); err != nil {
			log.Err(err).Str("func", "App.shutdown").Msg("error closing stores")
		}
	}
}

// DefaultBootstrap loads the client configuration and wires the bbolt/SQLite
// stores, the HTTP validator adapter and the terminal host surfaces.
func DefaultBootstrap(ctx context.Context, opts Options, in io.Reader, out io.Writer) (*Runtime, error) {
	cfg, err := config.GetClientConfig(opts.ConfigPath)
	if err != nil {
		return nil, fmt.Errorf("error getting configs: %w", err)
	}

	log := logger.NewClientLogger(clientRole, cfg.App.LogDir)
	log.Debug().Str("func", "DefaultBootstrap").
		Str("validator", cfg.Adapter.HTTPAddress).
		Str("secure_path", cfg.Storage.SecurePath).
		Str("fallback_dsn", cfg.Storage.FallbackDSN).
		Bool("init_data_present", opts.InitData != "").
		Msg("received configs")

	var secure host.SecureStorage = host.UnsupportedStorage{}
	device, err := store.OpenDeviceStorage(cfg.Storage.SecurePath, log)
	if err != nil {
		log.Warn().Err(err).Str("func", "DefaultBootstrap").Msg("device storage could not be opened")
	} else {
		secure = device
	}

	h := &host.Host{
		InitData:  opts.InitData,
		Storage:   secure,
		Biometric: host.NewPromptBiometric(in, out),
		Feedback:  host.NewConsoleFeedback(out),
		Closer: host.CloserFunc(func() {
			log.Warn().Str("func", "DefaultBootstrap").Msg("session rejected by validator, closing")
		}),
	}

	storages, err := store.NewClientStorages(ctx, cfg.Storage, h.Storage, log)
	if err != nil {
		if device != nil {
			_ = device.Close()
		}
		return nil, fmt.Errorf("error creating storages: %w", err)
	}

	sessionAdapter, err := adapter.NewHTTPSessionAdapter(cfg.Adapter, log)
	if err != nil {
		_ = storages.Close()
		return nil, fmt.Errorf("error creating session adapter: %w", err)
	}

	services := service.NewClientServices(storages.Vault, sessionAdapter, h, log)

	return &Runtime{
		Vault:       services.VaultService,
		Adapter:     sessionAdapter,
		StorageMode: storages.Vault.Mode(),
		AppVersion:  cfg.App.Version,
		Closer:      storages,
		Logger:      log,
	}, nil
}
