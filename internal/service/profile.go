package service

import (
	"context"
	"fmt"
	"net/url"

	"league-tracker/internal/constants"
	"league-tracker/internal/domain"
	"league-tracker/internal/repository"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

type ProfileService struct {
	riot   *riot.Client
	repo   *repository.LookupRepository
	logger zerolog.Logger
}

func NewProfileService(riotClient *riot.Client, repo *repository.LookupRepository, logger zerolog.Logger) *ProfileService {
	return &ProfileService{riot: riotClient, repo: repo, logger: logger}
}

// GetProfile resolves a Riot ID into the full profile shape. Every call hits
// upstream fresh; nothing about the profile is cached.
func (s *ProfileService) GetProfile(ctx context.Context, gameName, tagLine string) (*riot.SummonerProfile, error) {
	ctx, cancel := context.WithTimeout(ctx, constants.RequestTimeout)
	defer cancel()

	gameName, err := url.QueryUnescape(gameName)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape game name: %w", err)
	}
	tagLine, err = url.QueryUnescape(tagLine)
	if err != nil {
		return nil, fmt.Errorf("failed to unescape tag line: %w", err)
	}

	s.logger.Info().Str("game_name", gameName).Str("tag_line", tagLine).Msg("getting profile")

	apiCtx, apiCancel := context.WithTimeout(ctx, constants.ExternalAPITimeout)
	defer apiCancel()

	profile, err := s.riot.GetSummonerProfile(apiCtx, gameName, tagLine)
	if err != nil {
		s.logger.Error().Err(err).
			Str("game_name", gameName).
			Str("tag_line", tagLine).
			Msg("failed to fetch profile")
		return nil, err
	}

	// record the lookup off the critical path; history failures never fail
	// the profile response
	g := new(errgroup.Group)
	g.Go(func() error {
		recordCtx, recordCancel := context.WithTimeout(context.Background(), constants.DatabaseTimeout)
		defer recordCancel()
		return s.repo.Record(recordCtx, &domain.Lookup{
			PUUID:         profile.Account.PUUID,
			GameName:      profile.Account.GameName,
			TagLine:       profile.Account.TagLine,
			Platform:      profile.Region,
			ProfileIconID: profile.Summoner.ProfileIconID,
			SummonerLevel: profile.Summoner.SummonerLevel,
		})
	})
	go func() {
		if err := g.Wait(); err != nil {
			s.logger.Warn().Err(err).Str("puuid", profile.Account.PUUID).Msg("failed to record lookup")
		}
	}()

	s.logger.Info().
		Str("puuid", profile.Account.PUUID).
		Str("platform", profile.Region).
		Int("league_count", len(profile.Leagues)).
		Msg("profile fetched successfully")
	return profile, nil
}
