// Package adapters bridges the infrastructure clients to the interfaces the
// use cases consume.
package adapters

import (
	"context"

	mappingusecases "slidebridge/internal/application/mapping/usecases"
	"slidebridge/internal/infrastructure/cache"
	"slidebridge/internal/infrastructure/slide"
	"slidebridge/internal/shared/logger"
)

const slideClientsCacheKey = "slide_clients"

// SlideDirectoryAdapter serves the Slide client directory for mapping use
// cases, read through the shared directory cache.
type SlideDirectoryAdapter struct {
	client *slide.Client
	cache  *cache.DirectoryCache
	logger logger.Interface
}

func NewSlideDirectoryAdapter(client *slide.Client, dirCache *cache.DirectoryCache, log logger.Interface) *SlideDirectoryAdapter {
	return &SlideDirectoryAdapter{
		client: client,
		cache:  dirCache,
		logger: log,
	}
}

func (a *SlideDirectoryAdapter) Clients(ctx context.Context) ([]mappingusecases.SlideClient, error) {
	clients, cached, err := cache.Fetch(ctx, a.cache, slideClientsCacheKey, a.client.GetClients)
	if err != nil {
		return nil, err
	}
	if !cached {
		a.logger.Debugw("slide client directory refreshed", "count", len(clients))
	}

	result := make([]mappingusecases.SlideClient, 0, len(clients))
	for _, c := range clients {
		result = append(result, mappingusecases.SlideClient{
			ID:   c.ID,
			Name: c.Name,
		})
	}
	return result, nil
}
