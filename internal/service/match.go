package service

import (
	"context"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
	"league-tracker/internal/stats"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type MatchService struct {
	riot   *riot.Client
	logger zerolog.Logger
}

func NewMatchService(riotClient *riot.Client, logger zerolog.Logger) *MatchService {
	return &MatchService{riot: riotClient, logger: logger}
}

// RecentMatches lists a player's latest match ids and fetches each payload
// with a bounded worker group. The indexed result slice preserves the id
// order (most recent first), and a match that fails to load or that lacks the
// requesting player is skipped without touching its siblings.
func (s *MatchService) RecentMatches(ctx context.Context, puuid, platform string, count, queueID int) []domain.SimpleMatch {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	ids := s.riot.MatchIDs(ctx, puuid, platform, count, queueID)
	if len(ids) == 0 {
		s.logger.Debug().Str("puuid", puuid).Str("platform", platform).Msg("no match ids")
		return []domain.SimpleMatch{}
	}

	results := make([]*domain.SimpleMatch, len(ids))

	g, gCtx := errgroup.WithContext(ctx)
	g.SetLimit(constants.MatchFetchConcurrency)
	for i, id := range ids {
		g.Go(func() error {
			match := s.riot.MatchByID(gCtx, id, platform)
			if match == nil {
				return nil
			}
			simple, ok := stats.DeriveSimpleMatch(match, puuid)
			if !ok {
				s.logger.Warn().
					Str("match_id", id).
					Str("puuid", puuid).
					Msg("player missing from own match, skipping")
				return nil
			}
			results[i] = &simple
			return nil
		})
	}
	// workers never return errors; Wait only fences the group
	_ = g.Wait()

	matches := make([]domain.SimpleMatch, 0, len(ids))
	for _, r := range results {
		if r != nil {
			matches = append(matches, *r)
		}
	}

	s.logger.Info().
		Str("puuid", puuid).
		Int("requested", len(ids)).
		Int("returned", len(matches)).
		Msg("recent matches fetched")
	return matches
}
