package riot

import (
	"context"
	"fmt"
	"net/url"
)

func (c *Client) accountByRiotID(ctx context.Context, region AccountRegion, gameName, tagLine string) (*Account, error) {
	u := fmt.Sprintf("%s/riot/account/v1/accounts/by-riot-id/%s/%s",
		c.baseURL(string(region)), url.PathEscape(gameName), url.PathEscape(tagLine))
	return doRequest[Account](ctx, c, u)
}

func (c *Client) summonerByPUUID(ctx context.Context, platform, puuid string) (*Summoner, error) {
	u := fmt.Sprintf("%s/lol/summoner/v4/summoners/by-puuid/%s",
		c.baseURL(platform), url.PathEscape(puuid))
	return doRequest[Summoner](ctx, c, u)
}

// ResolveAccount walks the account regions guessed-first and stops on the
// first hit. Only a 404 means "wrong region"; any other failure class aborts
// the search immediately so a rate limit or a bad key is never masked as a
// retry storm across shards.
func (c *Client) ResolveAccount(ctx context.Context, gameName, tagLine string) (*ResolvedAccount, error) {
	guess := GuessAccountRegion(tagLine)

	for _, region := range AccountRegionCandidates(guess) {
		account, err := c.accountByRiotID(ctx, region, gameName, tagLine)
		if err == nil {
			c.logger.Debug().
				Str("game_name", gameName).
				Str("tag_line", tagLine).
				Str("region", string(region)).
				Msg("account resolved")
			return &ResolvedAccount{Account: *account, AccountRegion: region}, nil
		}
		if IsNotFound(err) {
			continue
		}
		return nil, err
	}

	return nil, &APIError{
		StatusCode: 404,
		Message:    fmt.Sprintf("account %s#%s not found in any region", gameName, tagLine),
	}
}

// ResolveSummoner applies the same stop-on-success, continue-on-404 policy
// over the platform shards belonging to the resolved account region.
func (c *Client) ResolveSummoner(ctx context.Context, puuid string, accountRegion AccountRegion) (*ResolvedSummoner, error) {
	for _, platform := range PlatformCandidates(accountRegion) {
		summoner, err := c.summonerByPUUID(ctx, platform, puuid)
		if err == nil {
			c.logger.Debug().
				Str("puuid", puuid).
				Str("platform", platform).
				Msg("summoner resolved")
			return &ResolvedSummoner{Summoner: *summoner, Platform: platform}, nil
		}
		if IsNotFound(err) {
			continue
		}
		return nil, err
	}

	return nil, &APIError{
		StatusCode: 404,
		Message:    "summoner not found on any platform",
	}
}

// LeagueEntries is a terminal single-shot lookup: the platform is already
// authoritative, and ranked data is optional enrichment, so every failure
// degrades to an empty list.
func (c *Client) LeagueEntries(ctx context.Context, puuid, platform string) []LeagueEntry {
	u := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s",
		c.baseURL(platform), url.PathEscape(puuid))

	entries, err := doRequest[[]LeagueEntry](ctx, c, u)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("puuid", puuid).
			Str("platform", platform).
			Msg("failed to fetch league entries, returning none")
		return []LeagueEntry{}
	}
	return *entries
}

// GetSummonerProfile runs the three lookups in dependency order: account
// resolution fixes the account region, summoner resolution fixes the
// platform, leagues enrich the result. It never partially succeeds past the
// summoner step.
func (c *Client) GetSummonerProfile(ctx context.Context, gameName, tagLine string) (*SummonerProfile, error) {
	account, err := c.ResolveAccount(ctx, gameName, tagLine)
	if err != nil {
		return nil, err
	}

	summoner, err := c.ResolveSummoner(ctx, account.PUUID, account.AccountRegion)
	if err != nil {
		return nil, err
	}

	leagues := c.LeagueEntries(ctx, account.PUUID, summoner.Platform)

	return &SummonerProfile{
		Account:        account.Account,
		Summoner:       summoner.Summoner,
		Leagues:        leagues,
		Region:         summoner.Platform,
		ProfileIconURL: ProfileIconURL(summoner.ProfileIconID),
	}, nil
}
