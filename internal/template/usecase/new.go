package usecase

import (
	"report-srv/internal/template"
	"report-srv/internal/template/repository"
	"report-srv/pkg/log"
)

type implUseCase struct {
	repo repository.Repository
	l    log.Logger
}

func New(repo repository.Repository, l log.Logger) template.UseCase {
	return &implUseCase{
		repo: repo,
		l:    l,
	}
}
