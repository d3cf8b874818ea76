package chatstreamController

import (
	"encoding/json"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
)

// chatStreamRequest is the raw inbound payload before validation. Coordinates
// are pointers so "absent" and "zero" stay distinguishable; messages arrive
// as loose JSON and are coerced one by one.
type chatStreamRequest struct {
	Name              string             `json:"name,omitempty"`
	BirthDate         string             `json:"birthDate"`
	BirthTime         string             `json:"birthTime"`
	Gender            string             `json:"gender,omitempty"`
	Latitude          *float64           `json:"latitude"`
	Longitude         *float64           `json:"longitude"`
	Timezone          string             `json:"timezone,omitempty"`
	Theme             string             `json:"theme,omitempty"`
	Lang              string             `json:"lang,omitempty"`
	Messages          []json.RawMessage  `json:"messages,omitempty"`
	Saju              *domain.SajuData   `json:"saju,omitempty"`
	Astro             *domain.AstroData  `json:"astro,omitempty"`
	PredictionContext string             `json:"predictionContext,omitempty"`
	UserContext       string             `json:"userContext,omitempty"`
	CVText            string             `json:"cvText,omitempty"`
}

// rawMessage is the shape one conversation entry is coerced into.
type rawMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// validatedRequest is the sanitized payload the service consumes.
type validatedRequest struct {
	Profile     domain.BirthProfile
	Theme       string
	Lang        string
	Messages    []domain.ChatMessage
	Saju        *domain.SajuData
	Astro       *domain.AstroData
	UserContext string
	CVText      string
}
