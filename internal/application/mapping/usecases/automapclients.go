package usecases

import (
	"context"
	"errors"
	"sort"

	"golang.org/x/sync/singleflight"

	"slidebridge/internal/domain/mapping"
	apperrors "slidebridge/internal/shared/errors"
	"slidebridge/internal/shared/logger"
)

type AutoMapResult struct {
	Created       int          `json:"created"`
	AlreadyMapped int          `json:"alreadyMapped"`
	NoMatch       int          `json:"noMatch"`
	Ambiguous     int          `json:"ambiguous"`
	CreatedRows   []MappingRow `json:"createdRows"`
}

// AutoMapClientsUseCase creates mappings for Slide clients whose normalized
// name exactly matches a ConnectWise company name. Matching is conservative:
// no fuzzy or partial matches, ever. A wrong guess files tickets against the
// wrong customer, while a missed match just leaves a client for manual
// mapping. Concurrent invocations collapse into a single run.
type AutoMapClientsUseCase struct {
	mappingRepo mapping.Repository
	slideDir    SlideDirectory
	companyDir  CompanyDirectory
	group       singleflight.Group
	logger      logger.Interface
}

func NewAutoMapClientsUseCase(
	mappingRepo mapping.Repository,
	slideDir SlideDirectory,
	companyDir CompanyDirectory,
	logger logger.Interface,
) *AutoMapClientsUseCase {
	return &AutoMapClientsUseCase{
		mappingRepo: mappingRepo,
		slideDir:    slideDir,
		companyDir:  companyDir,
		logger:      logger,
	}
}

func (uc *AutoMapClientsUseCase) Execute(ctx context.Context) (*AutoMapResult, error) {
	result, err, _ := uc.group.Do("automap", func() (any, error) {
		return uc.run(ctx)
	})
	if err != nil {
		return nil, err
	}
	return result.(*AutoMapResult), nil
}

func (uc *AutoMapClientsUseCase) run(ctx context.Context) (*AutoMapResult, error) {
	clients, err := uc.slideDir.Clients(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch slide clients for auto-map", "error", err)
		return nil, apperrors.NewRemoteError("slide directory unavailable")
	}

	companies, err := uc.companyDir.Companies(ctx)
	if err != nil {
		uc.logger.Errorw("failed to fetch connectwise companies for auto-map", "error", err)
		return nil, apperrors.NewRemoteError("connectwise directory unavailable")
	}

	byName := make(map[string][]Company, len(companies))
	for _, company := range companies {
		key := mapping.NormalizeName(company.Name)
		if key == "" {
			continue
		}
		byName[key] = append(byName[key], company)
	}

	result := &AutoMapResult{}

	for _, client := range clients {
		if _, err := uc.mappingRepo.FindBySlideClientID(ctx, client.ID); err == nil {
			result.AlreadyMapped++
			continue
		} else if !errors.Is(err, mapping.ErrMappingNotFound) {
			return nil, err
		}

		key := mapping.NormalizeName(client.Name)
		candidates := byName[key]
		if key == "" || len(candidates) == 0 {
			result.NoMatch++
			continue
		}

		company := candidates[0]
		if len(candidates) > 1 {
			// Duplicate company names: pick the lowest ID for determinism
			// and flag the ambiguity for review.
			sort.Slice(candidates, func(i, j int) bool { return candidates[i].ID < candidates[j].ID })
			company = candidates[0]
			result.Ambiguous++
			uc.logger.Warnw("ambiguous company name during auto-map",
				"slide_client_name", client.Name,
				"candidate_count", len(candidates),
				"chosen_company_id", company.ID,
			)
		}

		newMapping, err := mapping.NewClientMapping(client.ID, client.Name, company.ID, company.Name)
		if err != nil {
			uc.logger.Warnw("skipping invalid auto-map candidate",
				"slide_client_id", client.ID,
				"error", err,
			)
			result.NoMatch++
			continue
		}

		if err := uc.mappingRepo.Save(ctx, newMapping); err != nil {
			if errors.Is(err, mapping.ErrMappingExists) {
				result.AlreadyMapped++
				continue
			}
			return nil, err
		}

		createdAt := newMapping.CreatedAt()
		result.Created++
		result.CreatedRows = append(result.CreatedRows, MappingRow{
			SlideClientID:   newMapping.SlideClientID(),
			SlideClientName: newMapping.SlideClientName(),
			Mapped:          true,
			ConnectWiseID:   newMapping.ConnectWiseID(),
			ConnectWiseName: newMapping.ConnectWiseName(),
			CreatedAt:       &createdAt,
		})
	}

	uc.logger.Infow("auto-map completed",
		"created", result.Created,
		"already_mapped", result.AlreadyMapped,
		"no_match", result.NoMatch,
		"ambiguous", result.Ambiguous,
	)

	return result, nil
}
