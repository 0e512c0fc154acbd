package server

import (
	"fmt"
	"regexp"
	"strings"
)

const (
	maxGameNameLength = 50
	maxTagLineLength  = 20
	maxMatchIDLength  = 50
	maxPUUIDLength    = 100
)

type ValidationError struct {
	Field   string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation error for field '%s': %s", e.Field, e.Message)
}

var (
	gameNameRegex = regexp.MustCompile(`^[a-zA-Z0-9 _\-\.]+$`)
	tagLineRegex  = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
	matchIDRegex  = regexp.MustCompile(`^[a-zA-Z0-9_\-]+$`)
	puuidRegex    = regexp.MustCompile(`^[a-zA-Z0-9\-_]+$`)
	platformRegex = regexp.MustCompile(`^[A-Za-z0-9]+$`)
)

func validateGameName(gameName string) error {
	if gameName == "" {
		return ValidationError{Field: "gameName", Message: "game name cannot be empty"}
	}
	if len(gameName) > maxGameNameLength {
		return ValidationError{Field: "gameName", Message: fmt.Sprintf("game name cannot exceed %d characters", maxGameNameLength)}
	}
	if !gameNameRegex.MatchString(gameName) {
		return ValidationError{Field: "gameName", Message: "game name contains invalid characters"}
	}
	if strings.TrimSpace(gameName) != gameName {
		return ValidationError{Field: "gameName", Message: "game name cannot start or end with whitespace"}
	}
	return nil
}

func validateTagLine(tagLine string) error {
	if tagLine == "" {
		return ValidationError{Field: "tagLine", Message: "tag line cannot be empty"}
	}
	if len(tagLine) > maxTagLineLength {
		return ValidationError{Field: "tagLine", Message: fmt.Sprintf("tag line cannot exceed %d characters", maxTagLineLength)}
	}
	if !tagLineRegex.MatchString(tagLine) {
		return ValidationError{Field: "tagLine", Message: "tag line contains invalid characters"}
	}
	return nil
}

func validatePUUID(puuid string) error {
	if puuid == "" {
		return ValidationError{Field: "puuid", Message: "puuid cannot be empty"}
	}
	if len(puuid) > maxPUUIDLength {
		return ValidationError{Field: "puuid", Message: fmt.Sprintf("puuid cannot exceed %d characters", maxPUUIDLength)}
	}
	if !puuidRegex.MatchString(puuid) {
		return ValidationError{Field: "puuid", Message: "puuid contains invalid characters"}
	}
	return nil
}

func validateMatchID(matchID string) error {
	if matchID == "" {
		return ValidationError{Field: "matchId", Message: "match id cannot be empty"}
	}
	if len(matchID) > maxMatchIDLength {
		return ValidationError{Field: "matchId", Message: fmt.Sprintf("match id cannot exceed %d characters", maxMatchIDLength)}
	}
	if !matchIDRegex.MatchString(matchID) {
		return ValidationError{Field: "matchId", Message: "match id contains invalid characters"}
	}
	return nil
}

func validatePlatform(platform string) error {
	if platform == "" {
		return ValidationError{Field: "platform", Message: "platform cannot be empty"}
	}
	if !platformRegex.MatchString(platform) {
		return ValidationError{Field: "platform", Message: "platform contains invalid characters"}
	}
	return nil
}
