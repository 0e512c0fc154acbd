package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"league-tracker/internal/riot"

	"github.com/rs/zerolog"
)

func newBareServer() *Server {
	// handlers reject bad input before touching any service
	return New(nil, nil, nil, nil, nil, zerolog.Nop())
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	var body errorResponse
	if err := json.NewDecoder(rec.Body).Decode(&body); err != nil {
		t.Fatalf("failed to decode error body: %v", err)
	}
	return body.Error
}

func TestHandleSummoner_MissingParams(t *testing.T) {
	s := newBareServer()

	req := httptest.NewRequest(http.MethodGet, "/api/summoner?gameName=Faker", nil)
	rec := httptest.NewRecorder()
	s.handleSummoner(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
	if msg := decodeError(t, rec); msg == "" {
		t.Error("expected an error message")
	}
}

func TestHandleSummoner_RejectsInvalidGameName(t *testing.T) {
	s := newBareServer()

	req := httptest.NewRequest(http.MethodGet, "/api/summoner?gameName=%3Cscript%3E&tagLine=NA1", nil)
	rec := httptest.NewRecorder()
	s.handleSummoner(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400 for invalid game name, got %d", rec.Code)
	}
}

func TestHandleMatches_MissingParams(t *testing.T) {
	s := newBareServer()

	req := httptest.NewRequest(http.MethodGet, "/api/matches?puuid=abc", nil)
	rec := httptest.NewRecorder()
	s.handleMatches(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Errorf("expected 400, got %d", rec.Code)
	}
}

func TestHandleMatches_InvalidCount(t *testing.T) {
	s := newBareServer()

	for _, count := range []string{"0", "-1", "101", "abc"} {
		req := httptest.NewRequest(http.MethodGet, "/api/matches?puuid=abc&platform=NA1&count="+count, nil)
		rec := httptest.NewRecorder()
		s.handleMatches(rec, req)

		if rec.Code != http.StatusBadRequest {
			t.Errorf("count=%s: expected 400, got %d", count, rec.Code)
		}
	}
}

func TestWriteRiotError_StatusMapping(t *testing.T) {
	s := newBareServer()

	cases := []struct {
		err        error
		wantStatus int
	}{
		{&riot.APIError{StatusCode: 404, Message: "Data not found"}, http.StatusNotFound},
		{&riot.APIError{StatusCode: 403, Message: "Forbidden"}, http.StatusForbidden},
		{&riot.APIError{StatusCode: 429, Message: "Rate limit exceeded"}, http.StatusTooManyRequests},
		{&riot.APIError{StatusCode: 502, Message: "Bad gateway"}, http.StatusInternalServerError},
	}

	for _, c := range cases {
		rec := httptest.NewRecorder()
		s.writeRiotError(rec, c.err)
		if rec.Code != c.wantStatus {
			t.Errorf("%v: expected status %d, got %d", c.err, c.wantStatus, rec.Code)
		}
		if msg := decodeError(t, rec); msg == "" {
			t.Errorf("%v: expected an error message", c.err)
		}
	}
}

func TestWriteRiotError_NonAPIErrorIs500(t *testing.T) {
	s := newBareServer()

	rec := httptest.NewRecorder()
	s.writeRiotError(rec, errNetwork{})
	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 for a non-API error, got %d", rec.Code)
	}
}

type errNetwork struct{}

func (errNetwork) Error() string { return "connection refused" }
