package ports

import "planner/internal/core/domain"

type ReloadPublisher interface {
	Publish(entity domain.Entity, id uint64)
}
