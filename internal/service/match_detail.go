package service

import (
	"context"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
	"league-tracker/internal/stats"

	"github.com/rs/zerolog"
)

type MatchDetailService struct {
	riot   *riot.Client
	logger zerolog.Logger
}

func NewMatchDetailService(riotClient *riot.Client, logger zerolog.Logger) *MatchDetailService {
	return &MatchDetailService{riot: riotClient, logger: logger}
}

// GetMatch fetches one match and shapes the team-grouped detail view. A nil
// return means the match is absent upstream; the handler turns that into 404.
func (s *MatchDetailService) GetMatch(ctx context.Context, matchID, platform string) *domain.MatchDetail {
	ctx, cancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer cancel()

	s.logger.Debug().Str("match_id", matchID).Str("platform", platform).Msg("getting match")

	match := s.riot.MatchByID(ctx, matchID, platform)
	if match == nil {
		s.logger.Info().Str("match_id", matchID).Msg("match not found")
		return nil
	}

	detail := stats.BuildMatchDetail(match)
	return &detail
}
