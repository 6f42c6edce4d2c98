package catalog

import (
	"fmt"
	"sync/atomic"

	"go.uber.org/zap"
)

// Cache holds the published catalog snapshot. Reload builds and validates a
// complete bundle before swapping it in, so readers never observe a
// partially-updated catalog.
type Cache struct {
	loader  Loader
	logger  *zap.Logger
	current atomic.Pointer[Bundle]
}

func NewCache(loader Loader, logger *zap.Logger) *Cache {
	return &Cache{loader: loader, logger: logger}
}

// Current returns the published snapshot, or ErrCatalogUnavailable when
// nothing has been loaded yet.
func (c *Cache) Current() (*Bundle, error) {
	b := c.current.Load()
	if b == nil {
		return nil, ErrCatalogUnavailable
	}
	return b, nil
}

// Reload loads a fresh bundle and publishes it atomically. On failure the
// previously published snapshot stays in place.
func (c *Cache) Reload() error {
	if c.loader == nil {
		return ErrCatalogUnavailable
	}
	bundle, err := c.loader.Load()
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if bundle == nil {
		return ErrCatalogUnavailable
	}
	if err := ValidateConstitutionItems(&bundle.Ninefold); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	c.current.Store(bundle)
	if c.logger != nil {
		c.logger.Info("catalog published",
			zap.Int("eightfold_questions", len(bundle.Eightfold.Questions)),
			zap.Int("ninefold_questions", len(bundle.Ninefold.Questions)),
			zap.Int("narrative_types", len(bundle.Eightfold.Types)),
		)
	}
	return nil
}
