package chatstreamController

import (
	"encoding/json"
	"time"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/prompt"
)

// Validation error codes, surfaced verbatim in the 400 response body.
const (
	codeInvalidBody      = "invalid_body"
	codeMissingFields    = "Missing required fields"
	codeInvalidBirthDate = "Invalid birthDate"
	codeInvalidBirthTime = "Invalid birthTime"
	codeInvalidLatitude  = "Invalid latitude"
	codeInvalidLongitude = "Invalid longitude"
)

const maxThemeLength = 40

type validationError struct {
	Code string
}

func (e *validationError) Error() string {
	return e.Code
}

var allowedRoles = map[string]bool{
	domain.RoleSystem:    true,
	domain.RoleUser:      true,
	domain.RoleAssistant: true,
}

// validateRequest coerces the raw payload. Checks run in a fixed order and
// the first failure wins: combined presence check, then date, time,
// latitude, longitude.
func validateRequest(raw *chatStreamRequest) (*validatedRequest, *validationError) {
	if raw.BirthDate == "" || raw.BirthTime == "" || raw.Latitude == nil || raw.Longitude == nil {
		return nil, &validationError{Code: codeMissingFields}
	}
	if !isValidDate(raw.BirthDate) {
		return nil, &validationError{Code: codeInvalidBirthDate}
	}
	if !isValidTime(raw.BirthTime) {
		return nil, &validationError{Code: codeInvalidBirthTime}
	}
	if !isValidLatitude(*raw.Latitude) {
		return nil, &validationError{Code: codeInvalidLatitude}
	}
	if !isValidLongitude(*raw.Longitude) {
		return nil, &validationError{Code: codeInvalidLongitude}
	}

	gender := raw.Gender
	if gender != domain.GenderFemale {
		gender = domain.GenderMale
	}

	theme := raw.Theme
	if len(theme) > maxThemeLength {
		theme = theme[:maxThemeLength]
	}
	if theme == "" {
		theme = domain.ThemeChat
	}

	lang := raw.Lang
	if lang != domain.LangKO && lang != domain.LangEN {
		lang = domain.LangKO
	}

	return &validatedRequest{
		Profile: domain.BirthProfile{
			Name:      raw.Name,
			BirthDate: raw.BirthDate,
			BirthTime: raw.BirthTime,
			Gender:    gender,
			Latitude:  *raw.Latitude,
			Longitude: *raw.Longitude,
			Timezone:  raw.Timezone,
		},
		Theme:       theme,
		Lang:        lang,
		Messages:    coerceMessages(raw.Messages),
		Saju:        raw.Saju,
		Astro:       raw.Astro,
		UserContext: raw.UserContext,
		CVText:      raw.CVText,
	}, nil
}

// coerceMessages converts loose JSON entries to ChatMessage, dropping any
// with an unknown role or empty content, then clamps to the inbound limit
// and truncates each body.
func coerceMessages(raw []json.RawMessage) []domain.ChatMessage {
	out := make([]domain.ChatMessage, 0, len(raw))
	for _, entry := range raw {
		var m rawMessage
		if err := json.Unmarshal(entry, &m); err != nil {
			continue
		}
		if !allowedRoles[m.Role] || m.Content == "" {
			continue
		}
		out = append(out, domain.ChatMessage{
			Role:    m.Role,
			Content: prompt.TruncateContent(m.Content, prompt.MaxMessageChars),
		})
	}
	return prompt.ClampMessages(out, prompt.MaxInboundMessages)
}

func isValidDate(s string) bool {
	_, err := time.Parse("2006-01-02", s)
	return err == nil
}

func isValidTime(s string) bool {
	if _, err := time.Parse("15:04", s); err == nil {
		return true
	}
	_, err := time.Parse("15:04:05", s)
	return err == nil
}

func isValidLatitude(v float64) bool {
	return v >= -90 && v <= 90
}

func isValidLongitude(v float64) bool {
	return v >= -180 && v <= 180
}
