package model

import (
	"context"
	"time"
	"tokentrack/internal/config"
)

// Initializer performs the work of a Loading attempt. Implementations must
// return promptly once ctx is cancelled.
type Initializer interface {
	Initialize(ctx context.Context, settings config.Settings) (Snapshot, error)
}

// InitializerFunc adapts a function to the Initializer interface.
type InitializerFunc func(ctx context.Context, settings config.Settings) (Snapshot, error)

func (f InitializerFunc) Initialize(ctx context.Context, settings config.Settings) (Snapshot, error) {
	return f(ctx, settings)
}

// ProviderStatus is the dashboard's view of one configured provider.
type ProviderStatus struct {
	Name    string
	Kind    string
	Enabled bool
}

// Snapshot is the result of a successful Loading attempt.
type Snapshot struct {
	Providers []ProviderStatus
	LoadedAt  time.Time
}

// ActiveCount returns the number of enabled providers.
func (s Snapshot) ActiveCount() int {
	n := 0
	for _, p := range s.Providers {
		if p.Enabled {
			n++
		}
	}
	return n
}

// ProviderInitializer builds a Snapshot from the configured provider stanzas.
// It performs no I/O; provider integrations replace it.
type ProviderInitializer struct {
	// Now is used for Snapshot.LoadedAt. Defaults to time.Now.
	Now func() time.Time
}

func (p ProviderInitializer) Initialize(ctx context.Context, settings config.Settings) (Snapshot, error) {
	if err := ctx.Err(); err != nil {
		return Snapshot{}, err
	}

	stanzas := settings.Providers()
	statuses := make([]ProviderStatus, 0, len(stanzas))
	for _, s := range stanzas {
		if err := ctx.Err(); err != nil {
			return Snapshot{}, err
		}
		statuses = append(statuses, ProviderStatus{Name: s.Name, Kind: s.Kind, Enabled: s.Enabled})
	}

	now := p.Now
	if now == nil {
		now = time.Now
	}
	return Snapshot{Providers: statuses, LoadedAt: now()}, nil
}
