package domain

// Chat roles accepted from the client; anything else is dropped during
// validation.
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// Supported response languages.
const (
	LangKO = "ko"
	LangEN = "en"
)

// Themes the section builders gate on. The theme field itself is a free
// string; these are the values with dedicated behavior.
const (
	ThemeChat   = "chat"
	ThemeToday  = "today"
	ThemeWeek   = "week"
	ThemeMonth  = "month"
	ThemeYear   = "year"
	ThemeLife   = "life"
	ThemeDecade = "decade"
	ThemeLove   = "love"
	ThemeCareer = "career"
)

// ChatMessage is one turn of the conversation, oldest first.
type ChatMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// Gender values; validator defaults to male when absent.
const (
	GenderMale   = "male"
	GenderFemale = "female"
)

// BirthProfile is the validated birth data a chart is computed from.
type BirthProfile struct {
	Name      string  `json:"name,omitempty"`
	BirthDate string  `json:"birthDate"` // YYYY-MM-DD
	BirthTime string  `json:"birthTime"` // HH:MM
	Gender    string  `json:"gender"`
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
	Timezone  string  `json:"timezone,omitempty"` // IANA name, defaults to Asia/Seoul
}

// PersonaMemory is a long-term fact the memory repository keeps per user.
type PersonaMemory struct {
	ID      int64  `db:"id" json:"id"`
	UserID  string `db:"user_id" json:"userId"`
	Kind    string `db:"kind" json:"kind"`
	Content string `db:"content" json:"content"`
}

// SessionSummary is a condensed past conversation.
type SessionSummary struct {
	ID        int64  `db:"id" json:"id"`
	UserID    string `db:"user_id" json:"userId"`
	Summary   string `db:"summary" json:"summary"`
	CreatedAt string `db:"created_at" json:"createdAt"`
}

// UserProfile is the persisted user record read through the profile
// repository.
type UserProfile struct {
	UserID    string   `db:"user_id" json:"userId"`
	Name      *string  `db:"name" json:"name,omitempty"`
	BirthDate *string  `db:"birth_date" json:"birthDate,omitempty"`
	BirthTime *string  `db:"birth_time" json:"birthTime,omitempty"`
	Gender    *string  `db:"gender" json:"gender,omitempty"`
	Latitude  *float64 `db:"latitude" json:"latitude,omitempty"`
	Longitude *float64 `db:"longitude" json:"longitude,omitempty"`
	Timezone  *string  `db:"timezone" json:"timezone,omitempty"`
}
