package service

import (
	"time"

	"github.com/s21platform/team-chat-service/internal/config"
)

const (
	defaultPageSize          = 20
	defaultEnrichConcurrency = 8
)

type Service struct {
	repository  DBRepo
	storage     BlobStorage
	versions    VersionStore
	publisher   Publisher
	pageSize    uint64
	maxPageSize uint64
	concurrency int
	now         func() time.Time
}

func New(repo DBRepo, storage BlobStorage, versions VersionStore, publisher Publisher, cfg config.Feed) *Service {
	s := &Service{
		repository:  repo,
		storage:     storage,
		versions:    versions,
		publisher:   publisher,
		pageSize:    cfg.PageSize,
		maxPageSize: cfg.MaxPageSize,
		concurrency: cfg.EnrichConcurrency,
		now:         func() time.Time { return time.Now().UTC().Truncate(time.Microsecond) },
	}

	if s.pageSize == 0 {
		s.pageSize = defaultPageSize
	}
	if s.maxPageSize < s.pageSize {
		s.maxPageSize = s.pageSize
	}
	if s.concurrency <= 0 {
		s.concurrency = defaultEnrichConcurrency
	}

	return s
}
