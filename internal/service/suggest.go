package service

import (
	"context"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/repository"

	"github.com/rs/zerolog"
)

type SuggestService struct {
	repo   *repository.LookupRepository
	logger zerolog.Logger
}

func NewSuggestService(repo *repository.LookupRepository, logger zerolog.Logger) *SuggestService {
	return &SuggestService{repo: repo, logger: logger}
}

// Suggestions serves the search box from the lookup history. An empty query
// returns the most recent lookups.
func (s *SuggestService) Suggestions(ctx context.Context, query string) ([]domain.Lookup, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.DatabaseTimeout)
	defer cancel()

	var (
		lookups []domain.Lookup
		err     error
	)
	if query == "" {
		lookups, err = s.repo.Recent(ctx, constants.SearchSuggestionLimit)
	} else {
		lookups, err = s.repo.Search(ctx, query, constants.SearchSuggestionLimit)
	}
	if err != nil {
		s.logger.Error().Err(err).Str("query", query).Msg("failed to search lookups")
		return nil, err
	}

	s.logger.Debug().Int("count", len(lookups)).Str("query", query).Msg("suggestions served")
	return lookups, nil
}
