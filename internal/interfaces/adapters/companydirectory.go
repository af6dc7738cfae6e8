package adapters

import (
	"context"

	mappingusecases "slidebridge/internal/application/mapping/usecases"
	"slidebridge/internal/infrastructure/cache"
	"slidebridge/internal/infrastructure/connectwise"
	"slidebridge/internal/shared/logger"
)

const companiesCacheKey = "connectwise_companies"

// CompanyDirectoryAdapter serves the ConnectWise company directory for
// mapping use cases. Company lists run to thousands of entries per MSP, so
// reads go through the shared directory cache.
type CompanyDirectoryAdapter struct {
	client *connectwise.Client
	cache  *cache.DirectoryCache
	logger logger.Interface
}

func NewCompanyDirectoryAdapter(client *connectwise.Client, dirCache *cache.DirectoryCache, log logger.Interface) *CompanyDirectoryAdapter {
	return &CompanyDirectoryAdapter{
		client: client,
		cache:  dirCache,
		logger: log,
	}
}

func (a *CompanyDirectoryAdapter) Companies(ctx context.Context) ([]mappingusecases.Company, error) {
	companies, cached, err := cache.Fetch(ctx, a.cache, companiesCacheKey, a.client.GetCompanies)
	if err != nil {
		return nil, err
	}
	if !cached {
		a.logger.Debugw("connectwise company directory refreshed", "count", len(companies))
	}

	result := make([]mappingusecases.Company, 0, len(companies))
	for _, c := range companies {
		result = append(result, mappingusecases.Company{
			ID:   c.ID,
			Name: c.Name,
		})
	}
	return result, nil
}
