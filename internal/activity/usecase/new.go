package usecase

import (
	"report-srv/internal/activity"
	"report-srv/internal/activity/repository"
	"report-srv/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

// New creates a new activity UseCase implementation.
func New(repo repository.Repository, l log.Logger) activity.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
