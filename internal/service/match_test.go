package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"league-tracker/internal/config"
	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
)

func matchPayload(matchID, puuid string, kills int) riot.Match {
	var m riot.Match
	m.Metadata.MatchID = matchID
	m.Info.GameDuration = 1800
	m.Info.QueueID = 420
	m.Info.Participants = []riot.Participant{
		{PUUID: puuid, TeamID: 100, Win: true, Kills: kills, Deaths: 2, Assists: 4},
		{PUUID: "someone-else", TeamID: 200, Win: false},
	}
	return m
}

func newMatchService(t *testing.T, handle http.HandlerFunc) *MatchService {
	t.Helper()

	srv := httptest.NewServer(handle)
	t.Cleanup(srv.Close)

	client := riot.NewClient(
		&config.Config{RiotAPIKey: "test-key"},
		zerolog.Nop(),
		riot.WithBaseURL(func(shard string) string { return srv.URL + "/" + shard }),
	)
	return NewMatchService(client, zerolog.Nop())
}

func TestRecentMatches_SkipsFailuresAndKeepsOrder(t *testing.T) {
	svc := newMatchService(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case strings.Contains(r.URL.Path, "/matches/by-puuid/"):
			_ = json.NewEncoder(w).Encode([]string{"NA1_1", "NA1_2", "NA1_3", "NA1_4"})
		case strings.HasSuffix(r.URL.Path, "/NA1_1"):
			_ = json.NewEncoder(w).Encode(matchPayload("NA1_1", "me", 10))
		case strings.HasSuffix(r.URL.Path, "/NA1_2"):
			// upstream lost this one; it must not abort its siblings
			w.WriteHeader(http.StatusNotFound)
		case strings.HasSuffix(r.URL.Path, "/NA1_3"):
			// payload without the requesting player
			_ = json.NewEncoder(w).Encode(matchPayload("NA1_3", "not-me", 1))
		case strings.HasSuffix(r.URL.Path, "/NA1_4"):
			_ = json.NewEncoder(w).Encode(matchPayload("NA1_4", "me", 3))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
			w.WriteHeader(http.StatusInternalServerError)
		}
	})

	matches := svc.RecentMatches(context.Background(), "me", "NA1", 4, 0)

	if len(matches) != 2 {
		t.Fatalf("expected 2 matches, got %d", len(matches))
	}
	if matches[0].MatchID != "NA1_1" || matches[1].MatchID != "NA1_4" {
		t.Errorf("expected most-recent-first order [NA1_1 NA1_4], got [%s %s]",
			matches[0].MatchID, matches[1].MatchID)
	}
	if matches[0].Kills != 10 {
		t.Errorf("expected 10 kills in first match, got %d", matches[0].Kills)
	}
	if matches[0].KDA != 7.00 {
		t.Errorf("expected kda 7.00, got %v", matches[0].KDA)
	}
}

func TestRecentMatches_EmptyIDListDegrades(t *testing.T) {
	svc := newMatchService(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	})

	matches := svc.RecentMatches(context.Background(), "me", "NA1", 10, 0)
	if matches == nil || len(matches) != 0 {
		t.Errorf("expected empty match list, got %v", matches)
	}
}

func TestGetMatch_NilForMissingMatch(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	}))
	defer srv.Close()

	client := riot.NewClient(
		&config.Config{RiotAPIKey: "test-key"},
		zerolog.Nop(),
		riot.WithBaseURL(func(shard string) string { return srv.URL + "/" + shard }),
	)
	svc := NewMatchDetailService(client, zerolog.Nop())

	if detail := svc.GetMatch(context.Background(), "NA1_gone", "NA1"); detail != nil {
		t.Errorf("expected nil detail for a missing match, got %v", detail)
	}
}
