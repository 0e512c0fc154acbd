package riot

import "league-tracker/internal/domain"

// Account is the account-v1 record. PUUID is the durable cross-region player
// identifier; gameName#tagLine is the mutable display handle.
type Account struct {
	PUUID    string `json:"puuid"`
	GameName string `json:"gameName"`
	TagLine  string `json:"tagLine"`
}

// Summoner is the summoner-v4 record, scoped to exactly one platform shard.
type Summoner struct {
	ID            string `json:"id"`
	AccountID     string `json:"accountId"`
	PUUID         string `json:"puuid"`
	ProfileIconID int    `json:"profileIconId"`
	RevisionDate  int64  `json:"revisionDate"`
	SummonerLevel int    `json:"summonerLevel"`
}

// LeagueEntry is one ranked queue standing. Zero entries means unranked, not
// an error.
type LeagueEntry struct {
	LeagueID     string `json:"leagueId"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	SummonerID   string `json:"summonerId"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	Veteran      bool   `json:"veteran"`
	Inactive     bool   `json:"inactive"`
	FreshBlood   bool   `json:"freshBlood"`
	HotStreak    bool   `json:"hotStreak"`
}

// ResolvedAccount carries the account region the fallback search landed on.
type ResolvedAccount struct {
	Account
	AccountRegion AccountRegion `json:"accountRegion"`
}

// ResolvedSummoner carries the platform shard that holds the live record.
type ResolvedSummoner struct {
	Summoner
	Platform string `json:"platform"`
}

// SummonerProfile is the profile endpoint response shape.
type SummonerProfile struct {
	Account        Account       `json:"account"`
	Summoner       Summoner      `json:"summoner"`
	Leagues        []LeagueEntry `json:"leagues"`
	Region         string        `json:"region"`
	ProfileIconURL string        `json:"profileIconUrl,omitempty"`
}

// Match is a raw match-v5 payload. Immutable once played.
type Match struct {
	Metadata MatchMetadata `json:"metadata"`
	Info     MatchInfo     `json:"info"`
}

type MatchMetadata struct {
	MatchID      string   `json:"matchId"`
	Participants []string `json:"participants"`
}

type MatchInfo struct {
	GameID             int64         `json:"gameId"`
	GameDuration       int           `json:"gameDuration"`
	GameStartTimestamp int64         `json:"gameStartTimestamp"`
	GameEndTimestamp   int64         `json:"gameEndTimestamp"`
	GameMode           string        `json:"gameMode"`
	GameType           string        `json:"gameType"`
	QueueID            int           `json:"queueId"`
	Participants       []Participant `json:"participants"`
	Teams              []Team        `json:"teams"`
}

// Participant carries the raw per-player counters a match stores. Derived
// fields (KDA, CS/min, ...) are computed from these every time a match is
// displayed, never stored.
type Participant struct {
	PUUID          string `json:"puuid"`
	SummonerName   string `json:"summonerName"`
	RiotIDGameName string `json:"riotIdGameName"`
	RiotIDTagline  string `json:"riotIdTagline"`

	ChampionID   int    `json:"championId"`
	ChampionName string `json:"championName"`
	ChampLevel   int    `json:"champLevel"`

	Kills                int `json:"kills"`
	Deaths               int `json:"deaths"`
	Assists              int `json:"assists"`
	TotalMinionsKilled   int `json:"totalMinionsKilled"`
	NeutralMinionsKilled int `json:"neutralMinionsKilled"`

	VisionScore         int `json:"visionScore"`
	WardsPlaced         int `json:"wardsPlaced"`
	WardsKilled         int `json:"wardsKilled"`
	DetectorWardsPlaced int `json:"detectorWardsPlaced"`

	GoldEarned                  int `json:"goldEarned"`
	TotalDamageDealtToChampions int `json:"totalDamageDealtToChampions"`
	TotalDamageTaken            int `json:"totalDamageTaken"`
	TotalHeal                   int `json:"totalHeal"`

	Win          bool   `json:"win"`
	TeamID       int    `json:"teamId"`
	TeamPosition string `json:"teamPosition"`
	Lane         string `json:"lane"`

	Item0 int `json:"item0"`
	Item1 int `json:"item1"`
	Item2 int `json:"item2"`
	Item3 int `json:"item3"`
	Item4 int `json:"item4"`
	Item5 int `json:"item5"`
	Item6 int `json:"item6"`

	Summoner1ID int `json:"summoner1Id"`
	Summoner2ID int `json:"summoner2Id"`

	Perks domain.Perks `json:"perks"`

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

// Team is one entry of the match's info.teams array. Older or partial payloads
// omit the array entirely.
type Team struct {
	TeamID     int               `json:"teamId"`
	Win        bool              `json:"win"`
	Objectives domain.Objectives `json:"objectives"`
}
