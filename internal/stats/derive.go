// Package stats turns raw match payloads into the derived metrics the UI
// displays. Everything here is a pure function of the match fields: the same
// payload must produce the same numbers on every call site, so the profile
// listing and the match detail view can never drift apart.
package stats

import (
	"math"

	"league-tracker/internal/domain"
	"league-tracker/internal/riot"
)

// Round1 rounds half-up at the tenths digit. The rounding convention is
// load-bearing for display consistency; use these helpers, never ad-hoc
// formatting.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

// KDA returns kills+assists when deaths is zero. That is a display
// convention, not a numerical accident: a deathless game shows the raw
// kill+assist count, and an all-zero line shows 0.
func KDA(kills, deaths, assists int) float64 {
	if deaths == 0 {
		return Round2(float64(kills + assists))
	}
	return Round2(float64(kills+assists) / float64(deaths))
}

// CS counts lane and jungle minions together.
func CS(p *riot.Participant) int {
	return p.TotalMinionsKilled + p.NeutralMinionsKilled
}

func perMin(value float64, gameDuration int) float64 {
	if gameDuration <= 0 {
		return 0
	}
	return Round1(value / (float64(gameDuration) / 60))
}

// teamIDOf falls back to the win flag when the payload omits teamId
// (true means blue side, 100). Upstream guarantees a consistent win flag per
// team; with an absent teamId and inconsistent flags, behavior is undefined.
func teamIDOf(p *riot.Participant) int {
	if p.TeamID != 0 {
		return p.TeamID
	}
	if p.Win {
		return 100
	}
	return 200
}

func position(p *riot.Participant) string {
	if p.TeamPosition != "" {
		return p.TeamPosition
	}
	return p.Lane
}

func displayName(p *riot.Participant) string {
	if p.RiotIDGameName != "" {
		return p.RiotIDGameName
	}
	return p.SummonerName
}

func items(p *riot.Participant) []int {
	return []int{p.Item0, p.Item1, p.Item2, p.Item3, p.Item4, p.Item5, p.Item6}
}

// DeriveSimpleMatch builds the condensed profile-view row for one player.
// The second return is false when the player is missing from the match
// payload; upstream data is untrusted, so callers skip such matches instead
// of failing.
func DeriveSimpleMatch(m *riot.Match, puuid string) (domain.SimpleMatch, bool) {
	var p *riot.Participant
	for i := range m.Info.Participants {
		if m.Info.Participants[i].PUUID == puuid {
			p = &m.Info.Participants[i]
			break
		}
	}
	if p == nil {
		return domain.SimpleMatch{}, false
	}

	cs := CS(p)

	return domain.SimpleMatch{
		MatchID:            m.Metadata.MatchID,
		ChampionID:         p.ChampionID,
		ChampionName:       p.ChampionName,
		ChampionIconURL:    riot.ChampionIconURL(p.ChampionName),
		Kills:              p.Kills,
		Deaths:             p.Deaths,
		Assists:            p.Assists,
		CS:                 cs,
		VisionScore:        p.VisionScore,
		GoldEarned:         p.GoldEarned,
		Damage:             p.TotalDamageDealtToChampions,
		Win:                p.Win,
		GameDuration:       m.Info.GameDuration,
		GameStartTimestamp: m.Info.GameStartTimestamp,
		QueueID:            m.Info.QueueID,
		QueueName:          riot.QueueName(m.Info.QueueID),
		Position:           position(p),
		Items:              items(p),
		Summoners:          []int{p.Summoner1ID, p.Summoner2ID},
		KDA:                KDA(p.Kills, p.Deaths, p.Assists),
		CSPerMin:           perMin(float64(cs), m.Info.GameDuration),
	}, true
}

// DeriveParticipant computes the full per-player block for the match detail
// view from raw counters and game duration.
func DeriveParticipant(p *riot.Participant, gameDuration int) domain.ParticipantStats {
	cs := CS(p)

	return domain.ParticipantStats{
		PUUID:         p.PUUID,
		SummonerName:  displayName(p),
		TagLine:       p.RiotIDTagline,
		ChampionID:    p.ChampionID,
		ChampionName:  p.ChampionName,
		ChampionLevel: p.ChampLevel,

		Kills:    p.Kills,
		Deaths:   p.Deaths,
		Assists:  p.Assists,
		KDA:      KDA(p.Kills, p.Deaths, p.Assists),
		CS:       cs,
		CSPerMin: perMin(float64(cs), gameDuration),

		VisionScore:        p.VisionScore,
		WardsPlaced:        p.WardsPlaced,
		WardsKilled:        p.WardsKilled,
		ControlWardsPlaced: p.DetectorWardsPlaced,

		GoldEarned:       p.GoldEarned,
		GoldPerMin:       perMin(float64(p.GoldEarned), gameDuration),
		TotalDamageDealt: p.TotalDamageDealtToChampions,
		TotalDamageTaken: p.TotalDamageTaken,
		TotalHeal:        p.TotalHeal,
		DamagePerMin:     perMin(float64(p.TotalDamageDealtToChampions), gameDuration),

		Win:       p.Win,
		TeamID:    teamIDOf(p),
		Position:  position(p),
		Items:     items(p),
		Summoners: []int{p.Summoner1ID, p.Summoner2ID},
		Perks:     p.Perks,

		DoubleKills:      p.DoubleKills,
		TripleKills:      p.TripleKills,
		QuadraKills:      p.QuadraKills,
		PentaKills:       p.PentaKills,
		FirstBloodKill:   p.FirstBloodKill,
		FirstBloodAssist: p.FirstBloodAssist,
		TurretKills:      p.TurretKills,
		InhibitorKills:   p.InhibitorKills,

		LargestKillingSpree: p.LargestKillingSpree,
		LargestMultiKill:    p.LargestMultiKill,
		KillingSprees:       p.KillingSprees,
	}
}

func objectivesFor(m *riot.Match, teamID int) domain.Objectives {
	for _, t := range m.Info.Teams {
		if t.TeamID == teamID && t.Objectives != nil {
			return t.Objectives
		}
	}
	return domain.Objectives{}
}

func buildTeamView(m *riot.Match, teamID int, participants []domain.ParticipantStats) domain.TeamView {
	view := domain.TeamView{
		TeamID:       teamID,
		Objectives:   objectivesFor(m, teamID),
		Participants: participants,
	}
	if len(participants) > 0 {
		// per-team win flags are consistent upstream; any member will do
		view.Win = participants[0].Win
	}
	for _, p := range participants {
		view.TotalKills += p.Kills
		view.TotalDeaths += p.Deaths
		view.TotalAssists += p.Assists
		view.TotalGold += p.GoldEarned
		view.TotalDamage += p.TotalDamageDealt
	}
	return view
}

// BuildMatchDetail derives every participant, partitions them into blue
// (teamId 100) and red (teamId 200), and sums the team totals.
func BuildMatchDetail(m *riot.Match) domain.MatchDetail {
	var blue, red []domain.ParticipantStats
	for i := range m.Info.Participants {
		derived := DeriveParticipant(&m.Info.Participants[i], m.Info.GameDuration)
		if derived.TeamID == 100 {
			blue = append(blue, derived)
		} else {
			red = append(red, derived)
		}
	}

	return domain.MatchDetail{
		MatchID:            m.Metadata.MatchID,
		GameMode:           m.Info.GameMode,
		GameType:           m.Info.GameType,
		QueueID:            m.Info.QueueID,
		QueueName:          riot.QueueName(m.Info.QueueID),
		GameDuration:       m.Info.GameDuration,
		GameStartTimestamp: m.Info.GameStartTimestamp,
		GameEndTimestamp:   m.Info.GameEndTimestamp,
		Teams: domain.MatchTeams{
			Blue: buildTeamView(m, 100, blue),
			Red:  buildTeamView(m, 200, red),
		},
	}
}
