package server

import (
	"encoding/json"
	"net/http"
	"strconv"

	"league-tracker/internal/constants"
	"league-tracker/internal/riot"
	"league-tracker/internal/service"

	"github.com/rs/zerolog"
)

type Server struct {
	profileSvc     *service.ProfileService
	matchSvc       *service.MatchService
	matchDetailSvc *service.MatchDetailService
	suggestSvc     *service.SuggestService
	riot           *riot.Client
	logger         zerolog.Logger
}

func New(
	profileSvc *service.ProfileService,
	matchSvc *service.MatchService,
	matchDetailSvc *service.MatchDetailService,
	suggestSvc *service.SuggestService,
	riotClient *riot.Client,
	logger zerolog.Logger,
) *Server {
	return &Server{
		profileSvc:     profileSvc,
		matchSvc:       matchSvc,
		matchDetailSvc: matchDetailSvc,
		suggestSvc:     suggestSvc,
		riot:           riotClient,
		logger:         logger,
	}
}

func (s *Server) Routes() *http.ServeMux {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/summoner", s.handleSummoner)
	mux.HandleFunc("GET /api/matches", s.handleMatches)
	mux.HandleFunc("GET /api/match/{matchId}", s.handleMatchDetail)
	mux.HandleFunc("GET /api/search/suggestions", s.handleSuggestions)
	mux.HandleFunc("GET /api/status", s.handleStatus)
	return mux
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, errorResponse{Error: msg})
}

// writeRiotError maps the upstream error taxonomy onto the HTTP boundary by
// explicit status-code checks. 404 and 403 and 429 keep their classes; every
// other failure (5xx, network, decode) surfaces as 500.
func (s *Server) writeRiotError(w http.ResponseWriter, err error) {
	switch riot.StatusOf(err) {
	case http.StatusNotFound:
		writeError(w, http.StatusNotFound, "summoner not found")
	case http.StatusForbidden:
		writeError(w, http.StatusForbidden, "invalid or expired Riot API key")
	case http.StatusTooManyRequests:
		writeError(w, http.StatusTooManyRequests, "too many requests, try again in a few seconds")
	default:
		writeError(w, http.StatusInternalServerError, err.Error())
	}
}

func (s *Server) handleSummoner(w http.ResponseWriter, r *http.Request) {
	gameName := r.URL.Query().Get("gameName")
	tagLine := r.URL.Query().Get("tagLine")

	if gameName == "" || tagLine == "" {
		writeError(w, http.StatusBadRequest, "gameName and tagLine are required")
		return
	}
	if err := validateGameName(gameName); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validateTagLine(tagLine); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	profile, err := s.profileSvc.GetProfile(r.Context(), gameName, tagLine)
	if err != nil {
		s.logger.Error().Err(err).Str("game_name", gameName).Str("tag_line", tagLine).Msg("summoner lookup failed")
		s.writeRiotError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, profile)
}

func (s *Server) handleMatches(w http.ResponseWriter, r *http.Request) {
	puuid := r.URL.Query().Get("puuid")
	platform := r.URL.Query().Get("platform")

	if puuid == "" || platform == "" {
		writeError(w, http.StatusBadRequest, "puuid and platform are required")
		return
	}
	if err := validatePUUID(puuid); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePlatform(platform); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	count := constants.DefaultMatchCount
	if countStr := r.URL.Query().Get("count"); countStr != "" {
		c, err := strconv.Atoi(countStr)
		if err != nil || c < 1 || c > constants.MaxMatchCount {
			writeError(w, http.StatusBadRequest, "invalid 'count' parameter")
			return
		}
		count = c
	}

	queueID := 0
	if queueStr := r.URL.Query().Get("queue"); queueStr != "" {
		q, err := strconv.Atoi(queueStr)
		if err != nil {
			writeError(w, http.StatusBadRequest, "invalid 'queue' parameter")
			return
		}
		queueID = q
	}

	matches := s.matchSvc.RecentMatches(r.Context(), puuid, platform, count, queueID)
	writeJSON(w, http.StatusOK, map[string]any{"matches": matches})
}

func (s *Server) handleMatchDetail(w http.ResponseWriter, r *http.Request) {
	matchID := r.PathValue("matchId")
	platform := r.URL.Query().Get("platform")

	if matchID == "" || platform == "" {
		writeError(w, http.StatusBadRequest, "matchId and platform are required")
		return
	}
	if err := validateMatchID(matchID); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := validatePlatform(platform); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	detail := s.matchDetailSvc.GetMatch(r.Context(), matchID, platform)
	if detail == nil {
		writeError(w, http.StatusNotFound, "match not found")
		return
	}

	writeJSON(w, http.StatusOK, detail)
}

type suggestion struct {
	PUUID          string `json:"puuid"`
	GameName       string `json:"gameName"`
	TagLine        string `json:"tagLine"`
	Platform       string `json:"platform"`
	SummonerLevel  int    `json:"summonerLevel"`
	ProfileIconURL string `json:"profileIconUrl"`
}

func (s *Server) handleSuggestions(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query().Get("q")

	lookups, err := s.suggestSvc.Suggestions(r.Context(), query)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "failed to load suggestions")
		return
	}

	suggestions := make([]suggestion, 0, len(lookups))
	for _, l := range lookups {
		suggestions = append(suggestions, suggestion{
			PUUID:          l.PUUID,
			GameName:       l.GameName,
			TagLine:        l.TagLine,
			Platform:       l.Platform,
			SummonerLevel:  l.SummonerLevel,
			ProfileIconURL: riot.ProfileIconURL(l.ProfileIconID),
		})
	}

	writeJSON(w, http.StatusOK, map[string]any{"suggestions": suggestions})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]any{
		"status":    "ok",
		"rateLimit": s.riot.RateLimit(),
	})
}
