package riot

import "strings"

// AccountRegion is one of the three continental shards the account-v1 API is
// partitioned into.
type AccountRegion string

const (
	Americas AccountRegion = "americas"
	Europe   AccountRegion = "europe"
	Asia     AccountRegion = "asia"
)

var accountRegions = []AccountRegion{Americas, Europe, Asia}

var (
	americasHints = []string{"NA", "BR", "LA", "OC"}
	europeHints   = []string{"EUW", "EUN", "TR", "RU"}
	asiaHints     = []string{"KR", "JP", "TW", "VN", "TH", "SG", "PH"}
)

// GuessAccountRegion classifies a user-supplied tag line by substring match.
// It only orders the candidate search; an account whose tag guesses wrong is
// still found through the remaining regions.
func GuessAccountRegion(tag string) AccountRegion {
	upper := strings.ToUpper(tag)
	for _, hint := range americasHints {
		if strings.Contains(upper, hint) {
			return Americas
		}
	}
	for _, hint := range europeHints {
		if strings.Contains(upper, hint) {
			return Europe
		}
	}
	for _, hint := range asiaHints {
		if strings.Contains(upper, hint) {
			return Asia
		}
	}
	return Americas
}

// AccountRegionCandidates returns every account region ordered guessed-first.
func AccountRegionCandidates(guess AccountRegion) []AccountRegion {
	candidates := make([]AccountRegion, 0, len(accountRegions))
	candidates = append(candidates, guess)
	for _, r := range accountRegions {
		if r != guess {
			candidates = append(candidates, r)
		}
	}
	return candidates
}

// accountToPlatforms maps an account region to the platform shards that can
// hold a summoner for one of its accounts, in search order.
var accountToPlatforms = map[AccountRegion][]string{
	Americas: {"BR1", "NA1", "LA1", "LA2", "OC1"},
	Europe:   {"EUW1", "EUN1", "TR1", "RU"},
	Asia:     {"KR", "JP1", "TW2", "VN2", "TH2", "SG2", "PH2"},
}

// PlatformCandidates never returns an empty list; an unknown account region
// falls back to the americas platforms.
func PlatformCandidates(region AccountRegion) []string {
	if platforms, ok := accountToPlatforms[region]; ok {
		return platforms
	}
	return accountToPlatforms[Americas]
}

// platformToMatchRegion routes match-v5 calls. Match storage is tiered more
// coarsely than platforms and splits asia from sea.
var platformToMatchRegion = map[string]string{
	"BR1":  "americas",
	"NA1":  "americas",
	"LA1":  "americas",
	"LA2":  "americas",
	"OC1":  "americas",
	"EUW1": "europe",
	"EUN1": "europe",
	"TR1":  "europe",
	"RU":   "europe",
	"KR":   "asia",
	"JP1":  "asia",
	"TW2":  "sea",
	"VN2":  "sea",
	"TH2":  "sea",
	"SG2":  "sea",
	"PH2":  "sea",
}

// MatchRegionFor is authoritative once the platform is known; there is no
// fallback search on the match side.
func MatchRegionFor(platform string) string {
	if region, ok := platformToMatchRegion[platform]; ok {
		return region
	}
	return "americas"
}
