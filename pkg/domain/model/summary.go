package model

import (
	"log/slog"
	"time"

	"github.com/reef-world/finsync/pkg/domain/types"
)

// RunSummary reports the outcome of one ingestion run
type RunSummary struct {
	TraceID       types.TraceID
	Source        types.SourceKind
	Created       int
	Updated       int
	Skipped       int
	AssetsFetched int
	Archived      int
	Duration      time.Duration
}

func (s RunSummary) LogValue() slog.Value {
	return slog.GroupValue(
		slog.String("trace_id", s.TraceID.String()),
		slog.String("source", s.Source.String()),
		slog.Int("created", s.Created),
		slog.Int("updated", s.Updated),
		slog.Int("skipped", s.Skipped),
		slog.Int("assets_fetched", s.AssetsFetched),
		slog.Int("archived", s.Archived),
		slog.Duration("duration", s.Duration),
	)
}
