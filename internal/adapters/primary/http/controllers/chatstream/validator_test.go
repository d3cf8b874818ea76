package chatstreamController

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

func float64Ptr(v float64) *float64 {
	return &v
}

func validRawRequest() *chatStreamRequest {
	return &chatStreamRequest{
		BirthDate: "1990-05-15",
		BirthTime: "08:30",
		Latitude:  float64Ptr(37.5665),
		Longitude: float64Ptr(126.978),
	}
}

func TestValidateRequestHappyPath(t *testing.T) {
	validated, verr := validateRequest(validRawRequest())
	require.Nil(t, verr)

	assert.Equal(t, "1990-05-15", validated.Profile.BirthDate)
	assert.Equal(t, domain.GenderMale, validated.Profile.Gender)
	assert.Equal(t, domain.ThemeChat, validated.Theme)
	assert.Equal(t, domain.LangKO, validated.Lang)
}

func TestValidateRequestMissingFields(t *testing.T) {
	cases := []struct {
		name   string
		mutate func(*chatStreamRequest)
	}{
		{"no birthDate", func(r *chatStreamRequest) { r.BirthDate = "" }},
		{"no birthTime", func(r *chatStreamRequest) { r.BirthTime = "" }},
		{"no latitude", func(r *chatStreamRequest) { r.Latitude = nil }},
		{"no longitude", func(r *chatStreamRequest) { r.Longitude = nil }},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			raw := validRawRequest()
			tc.mutate(raw)

			_, verr := validateRequest(raw)
			require.NotNil(t, verr)
			assert.Equal(t, codeMissingFields, verr.Code)
		})
	}
}

func TestValidateRequestCheckOrder(t *testing.T) {
	// An invalid date wins over an invalid time or coordinate.
	raw := validRawRequest()
	raw.BirthDate = "not-a-date"
	raw.BirthTime = "99:99"
	raw.Latitude = float64Ptr(999)

	_, verr := validateRequest(raw)
	require.NotNil(t, verr)
	assert.Equal(t, codeInvalidBirthDate, verr.Code)

	raw = validRawRequest()
	raw.BirthTime = "99:99"
	raw.Latitude = float64Ptr(999)
	_, verr = validateRequest(raw)
	require.NotNil(t, verr)
	assert.Equal(t, codeInvalidBirthTime, verr.Code)

	raw = validRawRequest()
	raw.Latitude = float64Ptr(999)
	raw.Longitude = float64Ptr(999)
	_, verr = validateRequest(raw)
	require.NotNil(t, verr)
	assert.Equal(t, codeInvalidLatitude, verr.Code)

	raw = validRawRequest()
	raw.Longitude = float64Ptr(999)
	_, verr = validateRequest(raw)
	require.NotNil(t, verr)
	assert.Equal(t, codeInvalidLongitude, verr.Code)
}

func TestValidateRequestDefaults(t *testing.T) {
	raw := validRawRequest()
	raw.Gender = "other"
	raw.Lang = "fr"
	raw.Theme = ""

	validated, verr := validateRequest(raw)
	require.Nil(t, verr)
	assert.Equal(t, domain.GenderMale, validated.Profile.Gender)
	assert.Equal(t, domain.LangKO, validated.Lang)
	assert.Equal(t, domain.ThemeChat, validated.Theme)
}

func TestValidateRequestThemeTruncation(t *testing.T) {
	raw := validRawRequest()
	raw.Theme = "abcdefghijabcdefghijabcdefghijabcdefghijEXTRA"

	validated, verr := validateRequest(raw)
	require.Nil(t, verr)
	assert.Len(t, validated.Theme, maxThemeLength)
}

func TestCoerceMessagesDropsInvalidEntries(t *testing.T) {
	raw := []json.RawMessage{
		json.RawMessage(`{"role":"user","content":"valid"}`),
		json.RawMessage(`{"role":"hacker","content":"bad role"}`),
		json.RawMessage(`{"role":"user","content":""}`),
		json.RawMessage(`not even json`),
		json.RawMessage(`{"role":"assistant","content":"also valid"}`),
	}

	messages := coerceMessages(raw)
	require.Len(t, messages, 2)
	assert.Equal(t, "valid", messages[0].Content)
	assert.Equal(t, domain.RoleAssistant, messages[1].Role)
}

func TestCoerceMessagesClampsToInboundLimit(t *testing.T) {
	raw := make([]json.RawMessage, 0, 15)
	for i := 0; i < 15; i++ {
		raw = append(raw, json.RawMessage(`{"role":"user","content":"m"}`))
	}

	messages := coerceMessages(raw)
	assert.Len(t, messages, 10)
}
