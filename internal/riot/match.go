package riot

import (
	"context"
	"fmt"
	"net/url"
)

// MatchIDs lists the most recent match ids for a player, newest first. Match
// history is enrichment, not a hard dependency of the profile view, so any
// failure degrades to an empty list.
func (c *Client) MatchIDs(ctx context.Context, puuid, platform string, count, queueID int) []string {
	u := fmt.Sprintf("%s/lol/match/v5/matches/by-puuid/%s/ids?start=0&count=%d",
		c.baseURL(MatchRegionFor(platform)), url.PathEscape(puuid), count)
	if queueID != 0 {
		u += fmt.Sprintf("&queue=%d", queueID)
	}

	ids, err := doRequest[[]string](ctx, c, u)
	if err != nil {
		c.logger.Warn().Err(err).
			Str("puuid", puuid).
			Str("platform", platform).
			Msg("failed to list match ids, returning none")
		return []string{}
	}
	return *ids
}

// MatchByID fetches one full match payload. A missing or malformed match must
// read as absent data, never as a fatal error: one bad id should not abort a
// user paging through history.
func (c *Client) MatchByID(ctx context.Context, matchID, platform string) *Match {
	u := fmt.Sprintf("%s/lol/match/v5/matches/%s",
		c.baseURL(MatchRegionFor(platform)), url.PathEscape(matchID))

	match, err := doRequest[Match](ctx, c, u)
	if err != nil {
		c.logger.Debug().Err(err).
			Str("match_id", matchID).
			Str("platform", platform).
			Msg("match fetch failed, skipping")
		return nil
	}
	return match
}
