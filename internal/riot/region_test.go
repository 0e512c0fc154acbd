package riot

import "testing"

func TestGuessAccountRegion(t *testing.T) {
	cases := []struct {
		tag  string
		want AccountRegion
	}{
		{"KR1", Asia},
		{"NA1", Americas},
		{"BR1", Americas},
		{"EUW", Europe},
		{"euw", Europe},
		{"TR1", Europe},
		{"JP1", Asia},
		{"1234", Americas}, // unrecognized tag falls back to americas
		{"", Americas},
	}

	for _, c := range cases {
		if got := GuessAccountRegion(c.tag); got != c.want {
			t.Errorf("GuessAccountRegion(%q) = %q, want %q", c.tag, got, c.want)
		}
		// guessing is deterministic
		if got := GuessAccountRegion(c.tag); got != c.want {
			t.Errorf("GuessAccountRegion(%q) not deterministic", c.tag)
		}
	}
}

func TestAccountRegionCandidates(t *testing.T) {
	candidates := AccountRegionCandidates(Europe)
	if len(candidates) != 3 {
		t.Fatalf("expected 3 candidates, got %d", len(candidates))
	}
	if candidates[0] != Europe {
		t.Errorf("guessed region must come first, got %q", candidates[0])
	}
	seen := map[AccountRegion]bool{}
	for _, c := range candidates {
		if seen[c] {
			t.Errorf("duplicate candidate %q", c)
		}
		seen[c] = true
	}
}

func TestPlatformCandidates(t *testing.T) {
	americas := PlatformCandidates(Americas)
	if len(americas) == 0 {
		t.Fatal("americas platform list must not be empty")
	}
	if americas[0] != "BR1" {
		t.Errorf("expected BR1 first for americas, got %q", americas[0])
	}

	// unknown region falls back to americas rather than failing
	fallback := PlatformCandidates(AccountRegion("atlantis"))
	if len(fallback) != len(americas) {
		t.Errorf("unknown account region should fall back to americas platforms")
	}
}

func TestMatchRegionFor(t *testing.T) {
	cases := map[string]string{
		"NA1":  "americas",
		"BR1":  "americas",
		"EUW1": "europe",
		"KR":   "asia",
		"JP1":  "asia",
		"TW2":  "sea",
		"PH2":  "sea",
		"XX9":  "americas", // unknown platform defaults to americas
	}
	for platform, want := range cases {
		if got := MatchRegionFor(platform); got != want {
			t.Errorf("MatchRegionFor(%q) = %q, want %q", platform, got, want)
		}
	}
}
