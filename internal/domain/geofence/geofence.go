package geofence

import (
	"context"

	"github.com/fieldhr/hrms-backend-go/internal/pkg/geo"
)

// Config describes a circular geofence around an office location.
type Config struct {
	Name            string
	CenterLatitude  float64
	CenterLongitude float64
	RadiusMeters    float64
	Enabled         bool
	ReasonRequired  bool
}

// DistanceFrom returns the distance in meters from the given point to the
// geofence center.
func (c Config) DistanceFrom(lat, lon float64) float64 {
	return geo.Distance(lat, lon, c.CenterLatitude, c.CenterLongitude)
}

// Contains reports whether the given point lies inside the geofence radius.
func (c Config) Contains(lat, lon float64) bool {
	return c.DistanceFrom(lat, lon) <= c.RadiusMeters
}

// Provider supplies the active geofence for attendance evaluation. There is
// one active geofence per deployment today; the interface leaves room for a
// per-branch lookup without touching the attendance service.
type Provider interface {
	Active(ctx context.Context) (Config, error)
}

type staticProvider struct {
	cfg Config
}

// NewStaticProvider returns a Provider that always serves the given config.
func NewStaticProvider(cfg Config) Provider {
	return &staticProvider{cfg: cfg}
}

func (p *staticProvider) Active(ctx context.Context) (Config, error) {
	return p.cfg, nil
}
