package usecase

import (
	"voice-fact-skill/internal/fact"
	"voice-fact-skill/internal/fact/repository"
	"voice-fact-skill/pkg/log"
)

// implUseCase is the private implementation of fact.UseCase.
type implUseCase struct {
	table repository.Table
	l     log.Logger
}

var _ fact.UseCase = (*implUseCase)(nil)

// New creates a fact resolver over table.
func New(table repository.Table, l log.Logger) *implUseCase {
	return &implUseCase{
		table: table,
		l:     l,
	}
}
