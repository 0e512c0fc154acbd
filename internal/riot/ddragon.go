package riot

import "fmt"

// Data Dragon is Riot's static asset CDN; the version is bumped manually with
// game patches.
const DDragonVersion = "16.2.1"

const ddragonBase = "https://ddragon.leagueoflegends.com/cdn/" + DDragonVersion

func ProfileIconURL(iconID int) string {
	return fmt.Sprintf("%s/img/profileicon/%d.png", ddragonBase, iconID)
}

func ChampionIconURL(championName string) string {
	return fmt.Sprintf("%s/img/champion/%s.png", ddragonBase, championName)
}

func ItemIconURL(itemID int) string {
	if itemID == 0 {
		return ""
	}
	return fmt.Sprintf("%s/img/item/%d.png", ddragonBase, itemID)
}

var spellNames = map[int]string{
	1:  "SummonerBoost",
	3:  "SummonerExhaust",
	4:  "SummonerFlash",
	6:  "SummonerHaste",
	7:  "SummonerHeal",
	11: "SummonerSmite",
	12: "SummonerTeleport",
	13: "SummonerMana",
	14: "SummonerDot",
	21: "SummonerBarrier",
	32: "SummonerSnowball",
}

func SummonerSpellIconURL(spellID int) string {
	name, ok := spellNames[spellID]
	if !ok {
		name = "SummonerFlash"
	}
	return fmt.Sprintf("%s/img/spell/%s.png", ddragonBase, name)
}

var queueNames = map[int]string{
	420:  "Ranked Solo/Duo",
	440:  "Ranked Flex",
	400:  "Normal Draft",
	430:  "Normal Blind",
	450:  "ARAM",
	900:  "URF",
	1020: "One for All",
	1300: "Nexus Blitz",
	1400: "Ultimate Spellbook",
}

func QueueName(queueID int) string {
	if name, ok := queueNames[queueID]; ok {
		return name
	}
	return "Match"
}
