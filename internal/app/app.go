package app

import (
	"context"
	"fmt"

	"github.com/rkeller/stride/internal/config"
	"github.com/rkeller/stride/internal/plan"
	"github.com/rkeller/stride/internal/prefs"
	"github.com/rkeller/stride/internal/trainer"
	"github.com/rkeller/stride/internal/ui"
)

// Options configure the stride application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/stride/prefs.toml
	PlanWeeks  int    // zero uses the UI default
}

// Run boots the stride TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	client, err := trainer.NewClient(cfg.APIURL)
	if err != nil {
		return fmt.Errorf("init api client: %w", err)
	}

	store := plan.NewStore(cfg.PlanID)

	// Populate the store before the UI starts so the first frame already
	// shows the plan. Failures are tolerated; the UI retries on startup.
	Preload(ctx, store, client)

	uiOpts := ui.Options{
		Context:   ctx,
		Client:    client,
		Store:     store,
		PlanWeeks: opts.PlanWeeks,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	}
	return ui.Run(uiOpts)
}
