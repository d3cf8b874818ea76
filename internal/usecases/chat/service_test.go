package chat

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/pppaal/saju-astro-chat-sub011/internal/domain"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/events"
	"github.com/pppaal/saju-astro-chat-sub011/internal/ports/service"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chart"
	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/prompt"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

type fakeCharts struct{}

func (f *fakeCharts) CalculateSaju(_ context.Context, _ domain.BirthProfile) (*domain.SajuData, error) {
	return &domain.SajuData{
		DayMaster: &domain.DayMaster{Stem: "甲", Branch: "子", Element: "wood"},
	}, nil
}

func (f *fakeCharts) CalculateNatalChart(_ context.Context, _ domain.BirthProfile) (*domain.AstroData, error) {
	return &domain.AstroData{
		Sun:  &domain.PlanetPlacement{Name: "Sun", Sign: "Aries", Longitude: 10},
		Moon: &domain.PlanetPlacement{Name: "Moon", Sign: "Cancer", Longitude: 100},
	}, nil
}

func (f *fakeCharts) CalculateTransits(_ context.Context, _ time.Time, _, _ float64) ([]domain.TransitAspect, error) {
	return nil, nil
}

type fakeLLM struct {
	calls int
	err   error
	body  string
}

func (f *fakeLLM) AskStream(_ context.Context, _ service.AskStreamRequest) (io.ReadCloser, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return io.NopCloser(strings.NewReader(f.body)), nil
}

type fakePublisher struct {
	published []events.ChatEvent
}

func (f *fakePublisher) PublishChatEvent(_ context.Context, event events.ChatEvent) error {
	f.published = append(f.published, event)
	return nil
}

type fakeCredits struct {
	allow bool
}

func (f *fakeCredits) Consume(_ context.Context, _ string) (bool, error) {
	return f.allow, nil
}

func (f *fakeCredits) Balance(_ context.Context, _ string) (int, error) {
	return 0, nil
}

func newTestService(llm *fakeLLM, publisher *fakePublisher) *Service {
	log := testLogger()
	return &Service{
		Loader:       chart.NewLoader(&fakeCharts{}, log),
		Builder:      prompt.NewContextBuilder(log),
		LLM:          llm,
		Events:       publisher,
		Log:          log,
		SystemPrompt: "You are a fortune teller.",
		DevMode:      true,
	}
}

func validRequest() StreamRequest {
	return StreamRequest{
		Profile: domain.BirthProfile{
			BirthDate: "1990-05-15",
			BirthTime: "08:30",
			Gender:    domain.GenderMale,
			Latitude:  37.5665,
			Longitude: 126.978,
		},
		Theme: domain.ThemeToday,
		Lang:  domain.LangKO,
		Messages: []domain.ChatMessage{
			{Role: domain.RoleUser, Content: "오늘 운세 알려줘"},
		},
	}
}

func TestStreamSafetyInterceptSkipsLLM(t *testing.T) {
	llm := &fakeLLM{body: "data: hi\n\ndata: [DONE]\n\n"}
	publisher := &fakePublisher{}
	svc := newTestService(llm, publisher)

	req := validRequest()
	req.Messages = []domain.ChatMessage{
		{Role: domain.RoleUser, Content: "thinking about suicide"},
	}

	result, err := svc.Stream(context.Background(), req)
	require.NoError(t, err)
	assert.True(t, result.Intercepted)
	assert.NotEmpty(t, result.InterceptMessage)
	assert.Zero(t, llm.calls, "safety intercept must not reach the backend")

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.OutcomeSafetyIntercept, publisher.published[0].Outcome)
}

func TestStreamRequiresAuthOutsideDevMode(t *testing.T) {
	svc := newTestService(&fakeLLM{}, &fakePublisher{})
	svc.DevMode = false

	_, err := svc.Stream(context.Background(), validRequest())
	assert.ErrorIs(t, err, ErrNotAuthenticated)
}

func TestStreamCreditExhaustion(t *testing.T) {
	svc := newTestService(&fakeLLM{}, &fakePublisher{})
	svc.Credits = &fakeCredits{allow: false}

	req := validRequest()
	req.UserID = "user-1"

	_, err := svc.Stream(context.Background(), req)
	assert.ErrorIs(t, err, ErrCreditExhausted)
}

func TestStreamFallbackOnBackendError(t *testing.T) {
	llm := &fakeLLM{err: errors.New("connection refused")}
	publisher := &fakePublisher{}
	svc := newTestService(llm, publisher)

	result, err := svc.Stream(context.Background(), validRequest())
	require.NoError(t, err)
	assert.True(t, result.Fallback)
	assert.NotEmpty(t, result.FallbackMessage)
	assert.Nil(t, result.Body)

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.OutcomeFallback, publisher.published[0].Outcome)
}

func TestStreamSuccess(t *testing.T) {
	llm := &fakeLLM{body: "data: hello\n\ndata: [DONE]\n\n"}
	publisher := &fakePublisher{}
	svc := newTestService(llm, publisher)

	result, err := svc.Stream(context.Background(), validRequest())
	require.NoError(t, err)
	assert.False(t, result.Intercepted)
	assert.False(t, result.Fallback)
	require.NotNil(t, result.Body)
	defer result.Body.Close()

	assert.Equal(t, 1, llm.calls)
	assert.NotEmpty(t, result.RequestID)

	// The assembled prompt carries system prompt, chart data and question.
	assert.Contains(t, result.Prompt, "You are a fortune teller.")
	assert.Contains(t, result.Prompt, "오늘 운세 알려줘")
	assert.Contains(t, result.Prompt, "day master: 甲子")

	require.Len(t, publisher.published, 1)
	assert.Equal(t, events.OutcomeStreamed, publisher.published[0].Outcome)
	assert.Greater(t, publisher.published[0].PromptSize, 0)
}
