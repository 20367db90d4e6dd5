package mapper

import (
	"planner/internal/adapter/http/dto"
	"planner/internal/app/board"
	"planner/internal/core/domain"
	"time"
)

// ToBoardResponse always lists every bucket, empty ones included.
func ToBoardResponse(snapshot board.Snapshot) dto.BoardResponse {
	buckets := make(map[string][]dto.TaskItem, len(domain.FilterBuckets))
	for _, bucket := range domain.FilterBuckets {
		buckets[string(bucket)] = ToTaskItems(snapshot.Buckets[bucket])
	}

	resp := dto.BoardResponse{
		Marker:    snapshot.Marker,
		Buckets:   buckets,
		DerivedAt: snapshot.DerivedAt.Format(time.RFC3339),
	}
	if !snapshot.RefreshedAt.IsZero() {
		resp.RefreshedAt = snapshot.RefreshedAt.Format(time.RFC3339)
	}
	return resp
}
