package loader

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// Feature is one loadable module of the application.
type Feature interface {
	// Name returns the feature name used in logs.
	Name() string

	// IsEnabled reports whether the feature should be loaded.
	IsEnabled() bool

	// Load registers the feature's routes on the router.
	Load(app fiber.Router) error
}

// Manager holds the registry of available features.
type Manager struct {
	features []Feature
}

// NewManager creates an empty feature manager.
func NewManager() *Manager {
	return &Manager{}
}

// Register adds a feature to the registry.
func (m *Manager) Register(f Feature) {
	m.features = append(m.features, f)
}

// LoadAll loads every enabled feature, logging and skipping disabled ones.
// It stops at the first feature that fails to load.
func (m *Manager) LoadAll(app fiber.Router, logg *zap.Logger) error {
	for _, f := range m.features {
		if !f.IsEnabled() {
			logg.Info("Feature disabled, skipping", zap.String("feature", f.Name()))
			continue
		}
		if err := f.Load(app); err != nil {
			return err
		}
		logg.Info("Feature loaded", zap.String("feature", f.Name()))
	}
	return nil
}
