package riot

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"league-tracker/internal/config"

	"github.com/rs/zerolog"
)

// upstreamHandler serves one stubbed Riot API call. shard is the routing host
// the client targeted ("americas", "NA1", ...), path is the endpoint path.
type upstreamHandler func(shard, path string, w http.ResponseWriter, r *http.Request)

type callLog struct {
	mu     sync.Mutex
	shards []string
}

func (l *callLog) add(shard string) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.shards = append(l.shards, shard)
}

func (l *callLog) calls() []string {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]string(nil), l.shards...)
}

// newTestClient points the client's host construction at a stub server. The
// shard becomes the first path segment so the handler can tell which routing
// host a call targeted.
func newTestClient(t *testing.T, handle upstreamHandler) (*Client, *callLog) {
	t.Helper()

	log := &callLog{}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		trimmed := strings.TrimPrefix(r.URL.Path, "/")
		shard, path, _ := strings.Cut(trimmed, "/")
		log.add(shard)
		handle(shard, "/"+path, w, r)
	}))
	t.Cleanup(srv.Close)

	client := NewClient(
		&config.Config{RiotAPIKey: "test-key"},
		zerolog.Nop(),
		WithBaseURL(func(shard string) string { return srv.URL + "/" + shard }),
	)
	return client, log
}

func writeRiotError(w http.ResponseWriter, status int, msg string) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]any{
		"status": map[string]any{"message": msg, "status_code": status},
	})
}

func writeAccount(w http.ResponseWriter, puuid, gameName, tagLine string) {
	_ = json.NewEncoder(w).Encode(Account{PUUID: puuid, GameName: gameName, TagLine: tagLine})
}

func TestResolveAccount_GuessedFirstStopsOnSuccess(t *testing.T) {
	// tag "1234" guesses americas; the account lives in europe
	client, log := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		if shard == "europe" {
			writeAccount(w, "puuid-1", "Faker", "1234")
			return
		}
		writeRiotError(w, 404, "Data not found")
	})

	account, err := client.ResolveAccount(context.Background(), "Faker", "1234")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if account.AccountRegion != Europe {
		t.Errorf("expected account region europe, got %q", account.AccountRegion)
	}
	if account.PUUID != "puuid-1" {
		t.Errorf("unexpected puuid %q", account.PUUID)
	}

	calls := log.calls()
	want := []string{"americas", "europe"}
	if len(calls) != len(want) {
		t.Fatalf("expected calls %v, got %v", want, calls)
	}
	for i := range want {
		if calls[i] != want[i] {
			t.Errorf("call %d: expected %q, got %q (asia must never be attempted)", i, want[i], calls[i])
		}
	}
}

func TestResolveAccount_ForbiddenAbortsImmediately(t *testing.T) {
	client, log := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		writeRiotError(w, 403, "Forbidden")
	})

	_, err := client.ResolveAccount(context.Background(), "Faker", "KR1")
	if !IsForbidden(err) {
		t.Fatalf("expected forbidden error, got %v", err)
	}
	if calls := log.calls(); len(calls) != 1 {
		t.Errorf("403 must short-circuit the candidate loop, got %d calls", len(calls))
	}
}

func TestResolveAccount_RateLimitAborts(t *testing.T) {
	client, log := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		writeRiotError(w, 429, "Rate limit exceeded")
	})

	_, err := client.ResolveAccount(context.Background(), "Faker", "NA1")
	if !IsRateLimited(err) {
		t.Fatalf("expected rate-limit error, got %v", err)
	}
	if calls := log.calls(); len(calls) != 1 {
		t.Errorf("429 must not be retried against other regions, got %d calls", len(calls))
	}
}

func TestResolveAccount_ExhaustionIsNotFound(t *testing.T) {
	client, log := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		writeRiotError(w, 404, "Data not found")
	})

	_, err := client.ResolveAccount(context.Background(), "Ghost", "1234")
	if !IsNotFound(err) {
		t.Fatalf("expected not-found after exhaustion, got %v", err)
	}
	if calls := log.calls(); len(calls) != 3 {
		t.Errorf("expected all 3 account regions attempted, got %d", len(calls))
	}
}

func TestResolveSummoner_PlatformFallback(t *testing.T) {
	client, log := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		if shard == "EUN1" {
			_ = json.NewEncoder(w).Encode(Summoner{ID: "s-1", PUUID: "puuid-1", SummonerLevel: 250})
			return
		}
		writeRiotError(w, 404, "summoner not found")
	})

	summoner, err := client.ResolveSummoner(context.Background(), "puuid-1", Europe)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if summoner.Platform != "EUN1" {
		t.Errorf("expected platform EUN1, got %q", summoner.Platform)
	}

	calls := log.calls()
	want := []string{"EUW1", "EUN1"}
	if len(calls) != len(want) || calls[0] != want[0] || calls[1] != want[1] {
		t.Errorf("expected platform order %v, got %v", want, calls)
	}
}

func TestLeagueEntries_DegradesToEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		writeRiotError(w, 500, "internal error")
	})

	entries := client.LeagueEntries(context.Background(), "puuid-1", "NA1")
	if entries == nil {
		t.Fatal("league entries must never be nil")
	}
	if len(entries) != 0 {
		t.Errorf("expected empty entries on failure, got %d", len(entries))
	}
}

func TestMatchIDs_DegradesToEmpty(t *testing.T) {
	client, _ := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		writeRiotError(w, 429, "Rate limit exceeded")
	})

	ids := client.MatchIDs(context.Background(), "puuid-1", "NA1", 10, 0)
	if ids == nil || len(ids) != 0 {
		t.Errorf("expected empty id list on failure, got %v", ids)
	}
}

func TestMatchIDs_RoutesThroughMatchRegion(t *testing.T) {
	client, log := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		if !strings.Contains(path, "/lol/match/v5/matches/by-puuid/") {
			t.Errorf("unexpected path %q", path)
		}
		if got := r.URL.Query().Get("queue"); got != "420" {
			t.Errorf("expected queue=420, got %q", got)
		}
		_ = json.NewEncoder(w).Encode([]string{"KR_1", "KR_2"})
	})

	ids := client.MatchIDs(context.Background(), "puuid-1", "KR", 2, 420)
	if len(ids) != 2 {
		t.Fatalf("expected 2 ids, got %d", len(ids))
	}
	if calls := log.calls(); len(calls) != 1 || calls[0] != "asia" {
		t.Errorf("KR match calls must route to asia, got %v", log.calls())
	}
}

func TestMatchByID_NilOnFailure(t *testing.T) {
	client, _ := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		writeRiotError(w, 404, "match file not found")
	})

	if match := client.MatchByID(context.Background(), "NA1_garbage", "NA1"); match != nil {
		t.Errorf("expected nil for missing match, got %v", match)
	}
}

func TestMatchByID_NilOnMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte("{not json"))
	})

	if match := client.MatchByID(context.Background(), "NA1_1", "NA1"); match != nil {
		t.Errorf("expected nil for malformed payload, got %v", match)
	}
}

func TestGetSummonerProfile_NoRankedEntries(t *testing.T) {
	client, _ := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(path, "/riot/account/"):
			if shard == "americas" {
				writeAccount(w, "puuid-9", "Teemo", "NA1")
				return
			}
			writeRiotError(w, 404, "Data not found")
		case strings.Contains(path, "/lol/summoner/"):
			if shard == "NA1" {
				_ = json.NewEncoder(w).Encode(Summoner{ID: "s-9", PUUID: "puuid-9", ProfileIconID: 4321, SummonerLevel: 99})
				return
			}
			writeRiotError(w, 404, "summoner not found")
		case strings.Contains(path, "/lol/league/"):
			// player has never touched ranked
			writeRiotError(w, 404, "no entries")
		default:
			t.Errorf("unexpected path %q", path)
			w.WriteHeader(500)
		}
	})

	profile, err := client.GetSummonerProfile(context.Background(), "Teemo", "NA1")
	if err != nil {
		t.Fatalf("unranked player must still resolve: %v", err)
	}
	if profile.Region != "NA1" {
		t.Errorf("expected region NA1, got %q", profile.Region)
	}
	if profile.Leagues == nil || len(profile.Leagues) != 0 {
		t.Errorf("expected leagues to be an empty list, got %v", profile.Leagues)
	}
	if profile.Summoner.SummonerLevel != 99 {
		t.Errorf("unexpected summoner level %d", profile.Summoner.SummonerLevel)
	}
	if profile.ProfileIconURL == "" {
		t.Error("expected a profile icon url")
	}
}

func TestRateLimitHeadersTracked(t *testing.T) {
	client, _ := newTestClient(t, func(shard, path string, w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-App-Rate-Limit", "20:1,100:120")
		w.Header().Set("X-App-Rate-Limit-Count", "3:1,17:120")
		writeAccount(w, "p", "a", "b")
	})

	if _, err := client.ResolveAccount(context.Background(), "a", "b"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	info := client.RateLimit()
	if info.AppLimit != "20:1,100:120" {
		t.Errorf("unexpected app limit %q", info.AppLimit)
	}
	if info.AppCount != "3:1,17:120" {
		t.Errorf("unexpected app count %q", info.AppCount)
	}
}
