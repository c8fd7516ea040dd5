// internal/themeprovider/provider.go
package themeprovider

import (
	"context"
	"sync/atomic"

	"github.com/rs/zerolog/log"

	"github.com/codr1/qlick/internal/models"
)

type State int

const (
	StateLoading State = iota
	StateReady
)

func (s State) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateReady:
		return "ready"
	default:
		return "unknown"
	}
}

// Source reports the name of the theme that should be active right now.
type Source interface {
	ActiveThemeName(ctx context.Context) (string, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func(ctx context.Context) (string, error)

func (f SourceFunc) ActiveThemeName(ctx context.Context) (string, error) {
	return f(ctx)
}

type snapshot struct {
	config *models.ThemeConfig
	state  State
}

// Provider holds the theme every renderer reads. It starts out loading with
// the default theme and swaps in a new config on each Refresh. Concurrent
// refreshes are not coordinated; the last one to finish wins.
type Provider struct {
	catalog *models.Catalog
	source  Source
	current atomic.Pointer[snapshot]
}

func New(catalog *models.Catalog, source Source) *Provider {
	p := &Provider{catalog: catalog, source: source}
	p.current.Store(&snapshot{config: catalog.Default(), state: StateLoading})
	return p
}

// Refresh asks the source for the active theme and maps it through the
// catalog. Any failure, including an unknown name, yields the default theme.
// The provider is ready afterwards regardless of outcome.
func (p *Provider) Refresh(ctx context.Context) *models.ThemeConfig {
	config := p.resolve(ctx)
	p.current.Store(&snapshot{config: config, state: StateReady})
	return config
}

func (p *Provider) resolve(ctx context.Context) *models.ThemeConfig {
	name, err := p.source.ActiveThemeName(ctx)
	if err != nil {
		log.Warn().Err(err).Msg("Failed to fetch active theme, using default")
		return p.catalog.Default()
	}
	config, ok := p.catalog.Lookup(name)
	if !ok {
		log.Debug().Str("theme", name).Msg("Active theme not in catalog, using default")
		return p.catalog.Default()
	}
	return config
}

// Current returns the config last stored and the provider state.
func (p *Provider) Current() (*models.ThemeConfig, State) {
	snap := p.current.Load()
	return snap.config, snap.state
}

// Ready returns the current config, refreshing first if no refresh has
// completed yet. Renderers call this so they never draw with a theme that
// has not been resolved.
func (p *Provider) Ready(ctx context.Context) *models.ThemeConfig {
	config, state := p.Current()
	if state == StateReady {
		return config
	}
	return p.Refresh(ctx)
}

func (p *Provider) Catalog() *models.Catalog {
	return p.catalog
}
