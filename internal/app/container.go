package app

import (
	"context"
	"os"

	configapp "github.com/doeshing/diceroll-go/internal/application/config"
	"github.com/doeshing/diceroll-go/internal/application/dice"
	"github.com/doeshing/diceroll-go/internal/application/doctor"
	"github.com/doeshing/diceroll-go/internal/application/query"
	"github.com/doeshing/diceroll-go/internal/domain"
	"github.com/doeshing/diceroll-go/internal/infrastructure/clipboard"
	"github.com/doeshing/diceroll-go/internal/infrastructure/config"
	"github.com/doeshing/diceroll-go/internal/infrastructure/icons"
	"github.com/doeshing/diceroll-go/internal/infrastructure/random"
	"github.com/doeshing/diceroll-go/internal/pkg/logger"
	"github.com/doeshing/diceroll-go/internal/ports"
)

// Container wires up application services with infrastructure adapters.
type Container struct {
	Config         domain.Config
	Env            config.Env
	QueryService   *query.Service
	DoctorService  *doctor.Service
	Plugin         *dice.Plugin
	ConfigProvider ports.ConfigProvider
	ConfigLoader   *config.FileLoader
	Clipboard      ports.Clipboard
	Icons          *icons.Resolver
	Logger         ports.Logger
}

// BuildContainer constructs the dependency graph.
func BuildContainer(ctx context.Context, verbose bool) (*Container, error) {
	env, err := config.LoadEnv()
	if err != nil {
		return nil, err
	}

	cfgLoader := config.NewFileLoader(env.ConfigPath)
	fileCfg, loadErr := cfgLoader.Load(ctx)
	if loadErr == nil {
		loadErr = configapp.Validate(fileCfg)
	}
	if loadErr != nil {
		fileCfg = config.DefaultConfig()
	}
	cfg := env.Apply(fileCfg)
	if verbose {
		cfg.Logging.Level = "debug"
	}

	log := logger.New(os.Stderr, cfg.Logging.Level)

	// A broken file still lets config/doctor commands run and repair it;
	// rolling uses the defaults meanwhile.
	if loadErr != nil {
		log.Warn("unusable configuration, using defaults", map[string]interface{}{
			"path":  cfgLoader.Path(),
			"error": loadErr.Error(),
		})
	}

	rng := random.New()
	if seed, ok, err := env.SeedValue(); err != nil {
		return nil, err
	} else if ok {
		rng = random.NewSeeded(seed)
	}

	iconResolver := icons.NewResolver(cfg.Icons.Dir)
	plugin := dice.NewPlugin(dice.NewProcessor(rng, iconResolver), cfg.Launcher.Trigger)
	clip := clipboard.New()

	queryService := &query.Service{
		ConfigProvider: effectiveConfig{cfg: cfg},
		Plugin:         plugin,
		Clipboard:      clip,
		Logger:         log,
	}

	doctorService := &doctor.Service{
		ConfigProvider: cfgLoader,
		Plugin:         plugin,
		Clipboard:      clip,
		Icons:          iconResolver,
	}

	return &Container{
		Config:         cfg,
		Env:            env,
		QueryService:   queryService,
		DoctorService:  doctorService,
		Plugin:         plugin,
		ConfigProvider: cfgLoader,
		ConfigLoader:   cfgLoader,
		Clipboard:      clip,
		Icons:          iconResolver,
		Logger:         log,
	}, nil
}

// Seeded returns a query service whose rolls are reproducible for seed.
func (c *Container) Seeded(seed uint64) *query.Service {
	plugin := dice.NewPlugin(dice.NewProcessor(random.NewSeeded(seed), c.Icons), c.Config.Launcher.Trigger)
	svc := *c.QueryService
	svc.Plugin = plugin
	return &svc
}

// effectiveConfig serves the config after env overrides and fallback, so the
// query service sees what the container was built with.
type effectiveConfig struct {
	cfg domain.Config
}

func (e effectiveConfig) Load(context.Context) (domain.Config, error) {
	return e.cfg, nil
}
