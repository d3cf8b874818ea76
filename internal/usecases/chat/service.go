package chat

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/events"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/repository"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/service"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/storage"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/prompt"
)

// Errors the controller maps to HTTP statuses.
var (
	ErrNotAuthenticated = errors.New("not_authenticated")
	ErrCreditExhausted  = errors.New("credit exhausted")
)

const (
	personaMemoryLimit  = 10
	sessionSummaryLimit = 3
)

var fallbackMessages = map[string]string{
	domain.LangKO: "지금 운세 서버와 연결이 원활하지 않습니다. 잠시 후 다시 시도해 주세요. 🙏",
	domain.LangEN: "The fortune service is temporarily unreachable. Please try again in a moment. 🙏",
}

// StreamRequest is the validated inbound chat request.
type StreamRequest struct {
	UserID      string
	SessionID   string
	Profile     domain.BirthProfile
	Theme       string
	Lang        string
	Messages    []domain.ChatMessage
	Saju        *domain.SajuData
	Astro       *domain.AstroData
	UserContext string
	CVText      string
}

// StreamResult is what the controller relays. Exactly one of Intercepted,
// Fallback or Body is the live branch.
type StreamResult struct {
	RequestID        string
	Intercepted      bool
	InterceptMessage string
	Fallback         bool
	FallbackMessage  string
	Body             io.ReadCloser
	Prompt           string
}

// Service orchestrates one chat-stream request: safety gate, credit, charts,
// context, prompt and the backend call. Optional collaborators (Events,
// Archive, Alerter, Credits, Memory) may be nil and are skipped.
type Service struct {
	Loader   *chart.Loader
	Advanced service.IAdvancedAstroService
	Builder  *prompt.ContextBuilder
	LLM      service.ILLMStreamService
	Profiles repository.IProfileRepo
	Memory   repository.IMemoryRepo
	Credits  repository.ICreditRepo
	Events   events.IChatEventPublisher
	Archive  storage.IPromptArchive
	Alerter  service.IAlerterService
	Log      *slog.Logger

	SystemPrompt string
	DevMode      bool
}

// Stream runs the request lifecycle. Validation happens upstream; here the
// order is safety, auth, credit, charts, context, prompt, backend call.
func (s *Service) Stream(ctx context.Context, req StreamRequest) (*StreamResult, error) {
	requestID := uuid.NewString()
	result := &StreamResult{RequestID: requestID}

	// Safety gate first: an intercepted request must not touch charts,
	// credits or the backend.
	if intercepted, msg := CheckSafety(req.Messages, req.Lang); intercepted {
		s.Log.Warn("safety intercept",
			"request_id", requestID,
			"theme", req.Theme,
		)
		result.Intercepted = true
		result.InterceptMessage = msg
		s.publishEvent(ctx, req, requestID, events.OutcomeSafetyIntercept, 0)
		return result, nil
	}

	if !s.DevMode && req.UserID == "" {
		return nil, ErrNotAuthenticated
	}

	if s.Credits != nil && req.UserID != "" {
		ok, err := s.Credits.Consume(ctx, req.UserID)
		if err != nil {
			return nil, fmt.Errorf("credit check failed: %w", err)
		}
		if !ok {
			return nil, ErrCreditExhausted
		}
	}

	s.syncProfile(ctx, req.UserID, &req.Profile)

	data := s.Loader.LoadOrCompute(ctx, req.Profile, req.Saju, req.Astro)
	harmonic, eclipses, stars, patterns := s.loadAdvanced(ctx, data, req.Profile)
	memories, summaries := s.loadMemory(ctx, req.UserID)

	pctx := s.Builder.Build(prompt.Input{
		Profile:   req.Profile,
		Theme:     req.Theme,
		Lang:      req.Lang,
		Charts:    data,
		Harmonic:  harmonic,
		Eclipses:  eclipses,
		Stars:     stars,
		Patterns:  patterns,
		Memories:  memories,
		Summaries: summaries,
		UserCtx:   req.UserContext,
	})

	question := lastUserMessage(req.Messages)
	finalPrompt := prompt.AssembleFinalPrompt(
		s.SystemPrompt, pctx.BaseData, pctx.Memory, pctx.Sections,
		req.Messages, question, req.Lang,
	)
	result.Prompt = finalPrompt

	if s.Archive != nil {
		if err := s.Archive.StorePrompt(ctx, requestID, finalPrompt); err != nil {
			s.Log.Warn("prompt archiving failed",
				"request_id", requestID,
				"error", err,
			)
		}
	}

	body, err := s.LLM.AskStream(ctx, service.AskStreamRequest{
		Theme:       req.Theme,
		Prompt:      finalPrompt,
		Locale:      req.Lang,
		Saju:        data.Saju,
		Astro:       data.Astro,
		Birth:       askBirth(req.Profile),
		History:     prompt.ClampMessages(req.Messages, prompt.MaxHistoryMessages),
		SessionID:   req.SessionID,
		UserContext: req.UserContext,
		CVText:      req.CVText,
	})
	if err != nil {
		s.Log.Error("llm backend unreachable, falling back",
			"request_id", requestID,
			"error", err,
		)
		s.sendAlert(ctx, requestID, err)
		result.Fallback = true
		result.FallbackMessage = fallbackMessage(req.Lang)
		s.publishEvent(ctx, req, requestID, events.OutcomeFallback, len(finalPrompt))
		return result, nil
	}

	result.Body = body
	s.publishEvent(ctx, req, requestID, events.OutcomeStreamed, len(finalPrompt))
	return result, nil
}

// loadAdvanced fetches the deep analyses best-effort. Any failure leaves the
// corresponding input nil and the tier generator skips it.
func (s *Service) loadAdvanced(ctx context.Context, data chart.Data, profile domain.BirthProfile) (*domain.HarmonicAnalysis, *domain.EclipseAnalysis, []domain.FixedStarConjunction, []domain.RarePatternMatch) {
	if s.Advanced == nil {
		return nil, nil, nil, nil
	}

	var (
		harmonic *domain.HarmonicAnalysis
		eclipses *domain.EclipseAnalysis
		stars    []domain.FixedStarConjunction
		patterns []domain.RarePatternMatch
	)

	if data.Astro.HasSun() {
		age := profileAge(profile)
		if age > 0 {
			h, err := s.Advanced.HarmonicChart(ctx, data.Astro, age)
			if err != nil {
				s.Log.Warn("harmonic analysis failed", "error", err)
			} else {
				harmonic = h
			}
		}

		e, err := s.Advanced.EclipseImpacts(ctx, data.Astro, time.Now())
		if err != nil {
			s.Log.Warn("eclipse analysis failed", "error", err)
		} else {
			eclipses = e
		}

		f, err := s.Advanced.FixedStarConjunctions(ctx, data.Astro)
		if err != nil {
			s.Log.Warn("fixed star lookup failed", "error", err)
		} else {
			stars = f
		}
	}

	if data.Saju.HasDayMaster() {
		p, err := s.Advanced.RarePatterns(ctx, data.Saju)
		if err != nil {
			s.Log.Warn("rare pattern lookup failed", "error", err)
		} else {
			patterns = p
		}
	}

	return harmonic, eclipses, stars, patterns
}

// syncProfile fills gaps in the inbound profile from the stored one and
// persists the result. Best-effort: a repository failure is logged only.
func (s *Service) syncProfile(ctx context.Context, userID string, profile *domain.BirthProfile) {
	if s.Profiles == nil || userID == "" {
		return
	}

	stored, err := s.Profiles.GetByUserID(ctx, userID)
	if err != nil {
		s.Log.Warn("profile lookup failed", "error", err)
		return
	}
	if stored != nil {
		if profile.Name == "" && stored.Name != nil {
			profile.Name = *stored.Name
		}
		if profile.Timezone == "" && stored.Timezone != nil {
			profile.Timezone = *stored.Timezone
		}
	}

	upsert := &domain.UserProfile{
		UserID:    userID,
		BirthDate: &profile.BirthDate,
		BirthTime: &profile.BirthTime,
		Gender:    &profile.Gender,
		Latitude:  &profile.Latitude,
		Longitude: &profile.Longitude,
	}
	if profile.Name != "" {
		upsert.Name = &profile.Name
	}
	if profile.Timezone != "" {
		upsert.Timezone = &profile.Timezone
	}
	if err := s.Profiles.Upsert(ctx, upsert); err != nil {
		s.Log.Warn("profile upsert failed", "error", err)
	}
}

// loadMemory fetches persona memories and recent summaries best-effort.
func (s *Service) loadMemory(ctx context.Context, userID string) ([]domain.PersonaMemory, []domain.SessionSummary) {
	if s.Memory == nil || userID == "" {
		return nil, nil
	}

	memories, err := s.Memory.GetPersonaMemories(ctx, userID, personaMemoryLimit)
	if err != nil {
		s.Log.Warn("persona memory lookup failed", "error", err)
	}
	summaries, err := s.Memory.GetRecentSummaries(ctx, userID, sessionSummaryLimit)
	if err != nil {
		s.Log.Warn("session summary lookup failed", "error", err)
	}
	return memories, summaries
}

func (s *Service) publishEvent(ctx context.Context, req StreamRequest, requestID, outcome string, promptSize int) {
	if s.Events == nil {
		return
	}
	err := s.Events.PublishChatEvent(ctx, events.ChatEvent{
		RequestID:  requestID,
		UserID:     req.UserID,
		Theme:      req.Theme,
		Lang:       req.Lang,
		Outcome:    outcome,
		PromptSize: promptSize,
	})
	if err != nil {
		s.Log.Warn("chat event publish failed",
			"request_id", requestID,
			"error", err,
		)
	}
}

func (s *Service) sendAlert(ctx context.Context, requestID string, cause error) {
	if s.Alerter == nil {
		return
	}
	msg := fmt.Sprintf("chat-stream fallback: backend unreachable (request %s): %v", requestID, cause)
	if err := s.Alerter.SendAlert(ctx, msg); err != nil {
		s.Log.Warn("ops alert failed", "error", err)
	}
}

func fallbackMessage(lang string) string {
	if msg, ok := fallbackMessages[lang]; ok {
		return msg
	}
	return fallbackMessages[domain.LangKO]
}

func askBirth(p domain.BirthProfile) service.AskBirth {
	return service.AskBirth{
		Date:   p.BirthDate,
		Time:   p.BirthTime,
		Gender: p.Gender,
		Lat:    p.Latitude,
		Lon:    p.Longitude,
	}
}

// profileAge mirrors the context builder's age rule: completed years from a
// YYYY-MM-DD birth date, 0 when unparsable.
func profileAge(p domain.BirthProfile) int {
	born, err := time.Parse("2006-01-02", p.BirthDate)
	if err != nil {
		return 0
	}
	now := time.Now()
	age := now.Year() - born.Year()
	if now.Month() < born.Month() || (now.Month() == born.Month() && now.Day() < born.Day()) {
		age--
	}
	if age < 0 {
		return 0
	}
	return age
}
