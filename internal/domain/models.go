package domain

import (
	"time"
)

// Perks mirrors the rune page block Riot attaches to each match participant.
// It is passed through to the UI untouched.
type Perks struct {
	Styles []PerkStyle `json:"styles"`
}

type PerkStyle struct {
	Description string          `json:"description,omitempty"`
	Style       int             `json:"style"`
	Selections  []PerkSelection `json:"selections"`
}

type PerkSelection struct {
	Perk int `json:"perk"`
}

// SimpleMatch is the per-player condensed match row shown in the profile view.
type SimpleMatch struct {
	MatchID            string `json:"matchId"`
	ChampionID         int    `json:"championId"`
	ChampionName       string `json:"championName"`
	ChampionIconURL    string `json:"championIconUrl,omitempty"`
	Kills              int    `json:"kills"`
	Deaths             int    `json:"deaths"`
	Assists            int    `json:"assists"`
	CS                 int    `json:"cs"`
	VisionScore        int    `json:"visionScore"`
	GoldEarned         int    `json:"goldEarned"`
	Damage             int    `json:"damage"`
	Win                bool   `json:"win"`
	GameDuration       int    `json:"gameDuration"`
	GameStartTimestamp int64  `json:"gameStartTimestamp"`
	QueueID            int    `json:"queueId"`
	QueueName          string `json:"queueName,omitempty"`
	Position           string `json:"position"`
	Items              []int  `json:"items"`
	Summoners          []int  `json:"summoners"`

	KDA      float64 `json:"kda"`
	CSPerMin float64 `json:"csPerMin"`
}

// ParticipantStats is the fully derived per-player block in the match detail view.
type ParticipantStats struct {
	PUUID         string `json:"puuid"`
	SummonerName  string `json:"summonerName"`
	TagLine       string `json:"tagLine"`
	ChampionID    int    `json:"championId"`
	ChampionName  string `json:"championName"`
	ChampionLevel int    `json:"championLevel"`

	Kills    int     `json:"kills"`
	Deaths   int     `json:"deaths"`
	Assists  int     `json:"assists"`
	KDA      float64 `json:"kda"`
	CS       int     `json:"cs"`
	CSPerMin float64 `json:"csPerMin"`

	VisionScore        int `json:"visionScore"`
	WardsPlaced        int `json:"wardsPlaced"`
	WardsKilled        int `json:"wardsKilled"`
	ControlWardsPlaced int `json:"controlWardsPlaced"`

	GoldEarned       int     `json:"goldEarned"`
	GoldPerMin       float64 `json:"goldPerMin"`
	TotalDamageDealt int     `json:"totalDamageDealt"`
	TotalDamageTaken int     `json:"totalDamageTaken"`
	TotalHeal        int     `json:"totalHeal"`
	DamagePerMin     float64 `json:"damagePerMin"`

	Win       bool   `json:"win"`
	TeamID    int    `json:"teamId"`
	Position  string `json:"position"`
	Items     []int  `json:"items"`
	Summoners []int  `json:"summoners"`
	Perks     Perks  `json:"perks"`

	DoubleKills      int  `json:"doubleKills"`
	TripleKills      int  `json:"tripleKills"`
	QuadraKills      int  `json:"quadraKills"`
	PentaKills       int  `json:"pentaKills"`
	FirstBloodKill   bool `json:"firstBloodKill"`
	FirstBloodAssist bool `json:"firstBloodAssist"`
	TurretKills      int  `json:"turretKills"`
	InhibitorKills   int  `json:"inhibitorKills"`

	LargestKillingSpree int `json:"largestKillingSpree"`
	LargestMultiKill    int `json:"largestMultiKill"`
	KillingSprees       int `json:"killingSprees"`
}

// ObjectiveStat is one entry of a team's objectives block (baron, dragon, tower, ...).
type ObjectiveStat struct {
	First bool `json:"first"`
	Kills int  `json:"kills"`
}

type Objectives map[string]ObjectiveStat

// TeamView groups a side's totals with its derived participants.
type TeamView struct {
	TeamID       int                `json:"teamId"`
	Win          bool               `json:"win"`
	TotalKills   int                `json:"totalKills"`
	TotalDeaths  int                `json:"totalDeaths"`
	TotalAssists int                `json:"totalAssists"`
	TotalGold    int                `json:"totalGold"`
	TotalDamage  int                `json:"totalDamage"`
	Objectives   Objectives         `json:"objectives"`
	Participants []ParticipantStats `json:"participants"`
}

// MatchDetail is the match-detail endpoint response, blue = teamId 100, red = 200.
type MatchDetail struct {
	MatchID            string     `json:"matchId"`
	GameMode           string     `json:"gameMode"`
	GameType           string     `json:"gameType"`
	QueueID            int        `json:"queueId"`
	QueueName          string     `json:"queueName,omitempty"`
	GameDuration       int        `json:"gameDuration"`
	GameStartTimestamp int64      `json:"gameStartTimestamp"`
	GameEndTimestamp   int64      `json:"gameEndTimestamp"`
	Teams              MatchTeams `json:"teams"`
}

type MatchTeams struct {
	Blue TeamView `json:"blue"`
	Red  TeamView `json:"red"`
}

// Lookup is one row of the search history store: a Riot ID we resolved
// successfully, kept so the search box can offer suggestions.
type Lookup struct {
	ID            string
	PUUID         string
	GameName      string
	TagLine       string
	Platform      string
	ProfileIconID int
	SummonerLevel int
	LastSeenAt    time.Time
	CreatedAt     time.Time
	UpdatedAt     time.Time
}
