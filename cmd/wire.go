package cmd

import (
	"fmt"
	"time"

	"github.com/bnema/coursecupid-cli/internal/adapters/api"
	tomlrepo "github.com/bnema/coursecupid-cli/internal/adapters/repo/toml"
	filestate "github.com/bnema/coursecupid-cli/internal/adapters/state/file"
	"github.com/bnema/coursecupid-cli/internal/application"
	"github.com/bnema/coursecupid-cli/internal/config"
	"github.com/bnema/coursecupid-cli/internal/logger"
	"github.com/bnema/coursecupid-cli/internal/ports"
	"github.com/rs/zerolog"
	"github.com/spf13/viper"
)

type app struct {
	cfg        config.Config
	logger     zerolog.Logger
	identities *filestate.IdentityStore
	prefs      *filestate.Preferences
	drafts     *tomlrepo.ProfileDraftRepository
	client     *api.Client
	terminal   *terminal

	sessions   *application.SessionService
	guard      *application.SessionGuard
	reconciler *application.Reconciler
	liveness   *application.LivenessReporter
	feed       *application.Feed
	swipes     *application.SwipeSubmitter
	helpDesk   *application.HelpDesk
	pods       *application.PodService

	now func() time.Time
}

func wireApp() (*app, error) {
	v := viper.New()
	cfg, err := config.Load(v)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(logger.Config{Level: logger.Level(cfg.LogLevel), Pretty: cfg.LogPretty})

	store := filestate.NewStore(cfg.StateDir)
	identities := filestate.NewIdentityStore(store)
	prefs := filestate.NewPreferences(store)

	drafts, err := tomlrepo.NewProfileDraftRepository(v)
	if err != nil {
		return nil, fmt.Errorf("wire profile draft repository: %w", err)
	}

	client := api.NewClient(cfg.BaseURL, identities, log)
	client.Timeout = cfg.Timeout

	clock := ports.SystemClock{}
	term := &terminal{}
	sessions := application.NewSessionService(identities, prefs, drafts, client, clock, log)
	guard := sessions.Guard()
	reconciler := application.NewReconciler(client, guard, term, term, clock, cfg.PollInterval, log)
	feed := application.NewFeed(client, guard, prefs, log)

	return &app{
		cfg:        cfg,
		logger:     log,
		identities: identities,
		prefs:      prefs,
		drafts:     drafts,
		client:     client,
		terminal:   term,
		sessions:   sessions,
		guard:      guard,
		reconciler: reconciler,
		liveness:   application.NewLivenessReporter(client, guard, clock, cfg.HeartbeatInterval, log),
		feed:       feed,
		swipes:     application.NewSwipeSubmitter(client, guard, feed, reconciler, log),
		helpDesk:   application.NewHelpDesk(client, guard, reconciler, log),
		pods:       application.NewPodService(client, guard, reconciler, clock, log),
		now:        time.Now,
	}, nil
}
