package usecases

import (
	"context"
	"sort"
	"time"

	"slidebridge/internal/domain/mapping"
	"slidebridge/internal/shared/logger"
)

type MappingRow struct {
	SlideClientID   string     `json:"slideClientId"`
	SlideClientName string     `json:"slideClientName"`
	Mapped          bool       `json:"mapped"`
	ConnectWiseID   int        `json:"connectWiseId"`
	ConnectWiseName string     `json:"connectWiseName"`
	CreatedAt       *time.Time `json:"createdAt,omitempty"`
}

type ListMappingsResult struct {
	Rows []MappingRow
}

// ListMappingsUseCase merges the live Slide client directory with persisted
// mappings. Unmapped clients appear as placeholder rows so operators can see
// what still needs mapping. When the directory is unreachable the persisted
// mappings are still returned.
type ListMappingsUseCase struct {
	mappingRepo mapping.Repository
	slideDir    SlideDirectory
	logger      logger.Interface
}

func NewListMappingsUseCase(
	mappingRepo mapping.Repository,
	slideDir SlideDirectory,
	logger logger.Interface,
) *ListMappingsUseCase {
	return &ListMappingsUseCase{
		mappingRepo: mappingRepo,
		slideDir:    slideDir,
		logger:      logger,
	}
}

func (uc *ListMappingsUseCase) Execute(ctx context.Context) (*ListMappingsResult, error) {
	mappings, err := uc.mappingRepo.List(ctx)
	if err != nil {
		uc.logger.Errorw("failed to list mappings", "error", err)
		return nil, err
	}

	mapped := make(map[string]*mapping.ClientMapping, len(mappings))
	for _, m := range mappings {
		mapped[m.SlideClientID()] = m
	}

	rows := make([]MappingRow, 0, len(mappings))
	seen := make(map[string]struct{}, len(mappings))

	clients, err := uc.slideDir.Clients(ctx)
	if err != nil {
		uc.logger.Warnw("slide directory unavailable, listing persisted mappings only", "error", err)
	} else {
		for _, client := range clients {
			row := MappingRow{
				SlideClientID:   client.ID,
				SlideClientName: client.Name,
			}
			if m, ok := mapped[client.ID]; ok {
				createdAt := m.CreatedAt()
				row.Mapped = true
				row.ConnectWiseID = m.ConnectWiseID()
				row.ConnectWiseName = m.ConnectWiseName()
				row.CreatedAt = &createdAt
				// The directory name is fresher than the one captured at
				// mapping time.
				if client.Name == "" {
					row.SlideClientName = m.SlideClientName()
				}
			}
			rows = append(rows, row)
			seen[client.ID] = struct{}{}
		}
	}

	// Mappings whose client no longer appears in the directory still show up;
	// deleting them is an operator decision.
	for _, m := range mappings {
		if _, ok := seen[m.SlideClientID()]; ok {
			continue
		}
		createdAt := m.CreatedAt()
		rows = append(rows, MappingRow{
			SlideClientID:   m.SlideClientID(),
			SlideClientName: m.SlideClientName(),
			Mapped:          true,
			ConnectWiseID:   m.ConnectWiseID(),
			ConnectWiseName: m.ConnectWiseName(),
			CreatedAt:       &createdAt,
		})
	}

	sort.Slice(rows, func(i, j int) bool {
		a := mapping.NormalizeName(rows[i].SlideClientName)
		b := mapping.NormalizeName(rows[j].SlideClientName)
		if a == b {
			return rows[i].SlideClientID < rows[j].SlideClientID
		}
		return a < b
	})

	return &ListMappingsResult{Rows: rows}, nil
}
