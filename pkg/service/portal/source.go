package portal

import (
	"context"

	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/utils/logging"
)

// Source adapts the Portal client to the ingestion pipeline
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) Kind() types.SourceKind {
	return types.SourcePortal
}

// Fetch walks the full countries → regions → locations → members expansion
// and flattens it into one normalized list. A failure at any level aborts
// the whole fetch: no partially-expanded country is ever committed.
//
// The location listings also carry the per-location average score; those
// are collected as a side artifact for the score cache.
func (s *Source) Fetch(ctx context.Context) (*model.FetchResult, error) {
	countries, err := s.client.FetchCountries(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.FetchResult{}
	for _, country := range countries {
		regions, err := s.client.FetchRegions(ctx, country.ID)
		if err != nil {
			return nil, err
		}

		for _, region := range regions {
			locations, err := s.client.FetchLocations(ctx, region.ID)
			if err != nil {
				return nil, err
			}

			for _, location := range locations {
				if location.Average != nil {
					result.Averages = append(result.Averages, model.LocationAverage{
						Country:  country.Name,
						Location: location.Name,
						Average:  *location.Average,
					})
				}

				members, err := s.client.FetchMembers(ctx, location.ID)
				if err != nil {
					return nil, err
				}

				for _, raw := range members {
					member, err := Normalize(raw, location.Name)
					if err != nil {
						logging.From(ctx).Warn("skipping portal record", "error", err)
						result.Skipped++
						continue
					}
					result.Members = append(result.Members, member)
				}
			}
		}
	}

	return result, nil
}
