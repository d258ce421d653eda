package hub

import (
	"context"

	"github.com/reef-world/finsync/pkg/domain/model"
	"github.com/reef-world/finsync/pkg/domain/types"
	"github.com/reef-world/finsync/pkg/utils/logging"
)

// Source adapts the Hub client to the ingestion pipeline
type Source struct {
	client *Client
}

func NewSource(client *Client) *Source {
	return &Source{client: client}
}

func (s *Source) Kind() types.SourceKind {
	return types.SourceHub
}

// Fetch retrieves and normalizes the full Hub listing. Unnormalizable
// records are logged and counted, never fatal.
func (s *Source) Fetch(ctx context.Context) (*model.FetchResult, error) {
	operations, err := s.client.FetchOperations(ctx)
	if err != nil {
		return nil, err
	}

	result := &model.FetchResult{}
	for _, op := range operations {
		member, err := Normalize(op)
		if err != nil {
			logging.From(ctx).Warn("skipping hub record", "error", err)
			result.Skipped++
			continue
		}
		result.Members = append(result.Members, member)
	}

	return result, nil
}
