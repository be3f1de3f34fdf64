package app

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/caizhw/ojview/internal/cache"
	"github.com/caizhw/ojview/internal/config"
	"github.com/caizhw/ojview/internal/prefs"
	"github.com/caizhw/ojview/internal/source"
	"github.com/caizhw/ojview/internal/state"
	"github.com/caizhw/ojview/internal/ui"
)

// Options configure the ojview application.
type Options struct {
	ConfigPath string
	PrefsPath  string // empty uses default ~/.config/ojview/prefs.toml
	Provider   string // overrides the configured hosting provider
	Refresh    bool   // bypass cache freshness on startup
}

// Run boots the ojview TUI until the context is cancelled.
func Run(ctx context.Context, opts Options) error {
	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	userPrefs := prefs.Load(opts.PrefsPath)

	providerName := cfg.Provider
	if userPrefs.Provider != "" {
		providerName = userPrefs.Provider
	}
	if opts.Provider != "" {
		providerName = opts.Provider
	}
	provider, err := source.ByName(providerName)
	if err != nil {
		return err
	}

	token := cfg.Token
	if token == "" {
		token = os.Getenv("OJVIEW_TOKEN")
	}

	cacheStore, err := cache.New(cfg.CacheDir)
	if err != nil {
		// A broken cache never blocks browsing.
		log.Printf("cache unavailable: %v", err)
		cacheStore = nil
	}

	store := &state.Store{}
	session, err := NewSession(cfg, token, cacheStore, store, provider)
	if err != nil {
		return fmt.Errorf("init data source: %w", err)
	}

	// Populate the store before the UI starts so the first frame has data.
	session.Load(ctx, opts.Refresh)

	return ui.Run(ui.Options{
		Context:   ctx,
		Source:    session,
		Store:     store,
		ThemeName: userPrefs.Theme,
		PrefsPath: opts.PrefsPath,
	})
}

// Session owns the data-source wiring for one repository and supports
// switching between hosting providers at runtime. It implements ui.Source.
type Session struct {
	cfg      config.Config
	token    string
	cache    *cache.Store
	store    *state.Store
	provider source.Provider
	loader   *Loader
}

// Ensure Session satisfies the UI's data-source contract.
var _ ui.Source = (*Session)(nil)

// NewSession builds a Session for the given provider.
func NewSession(cfg config.Config, token string, cacheStore *cache.Store, store *state.Store, provider source.Provider) (*Session, error) {
	client, err := source.NewClient(provider, cfg.Owner, cfg.Repo, token)
	if err != nil {
		return nil, err
	}
	return &Session{
		cfg:      cfg,
		token:    token,
		cache:    cacheStore,
		store:    store,
		provider: provider,
		loader:   NewLoader(client, cacheStore, store),
	}, nil
}

// Label identifies the repository being browsed.
func (s *Session) Label() string {
	return s.cfg.Owner + "/" + s.cfg.Repo
}

// ProviderName returns the active hosting provider.
func (s *Session) ProviderName() string {
	return s.provider.Name
}

// Load runs one load cycle against the active provider.
func (s *Session) Load(ctx context.Context, force bool) state.Snapshot {
	return s.loader.Load(ctx, force)
}

// Switch selects the next hosting provider and returns its name. The caller
// is expected to trigger a Load afterwards.
func (s *Session) Switch() string {
	next := source.Next(s.provider.Name)
	client, err := source.NewClient(next, s.cfg.Owner, s.cfg.Repo, s.token)
	if err != nil {
		log.Printf("switch provider: %v", err)
		return s.provider.Name
	}
	s.provider = next
	s.loader = NewLoader(client, s.cache, s.store)
	return next.Name
}
