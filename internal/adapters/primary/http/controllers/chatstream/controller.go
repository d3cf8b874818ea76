package chatstreamController

import (
	"bufio"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/pppaal/saju-astro-chat-sub011/internal/usecases/chat"
)

const doneEvent = "[DONE]"

// ChatStreamController exposes the chat-stream endpoint and relays the
// backend SSE stream to the client with PII masking.
type ChatStreamController struct {
	service *chat.Service
	log     *slog.Logger
}

func New(service *chat.Service, log *slog.Logger) *ChatStreamController {
	return &ChatStreamController{
		service: service,
		log:     log,
	}
}

func (c *ChatStreamController) RegisterRoutes(r *gin.Engine) {
	r.POST("/api/destiny-map/chat-stream", c.chatStream)
}

func (c *ChatStreamController) chatStream(ctx *gin.Context) {
	var raw chatStreamRequest
	if err := ctx.ShouldBindJSON(&raw); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": codeInvalidBody})
		return
	}

	validated, verr := validateRequest(&raw)
	if verr != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": verr.Code})
		return
	}

	result, err := c.service.Stream(ctx.Request.Context(), chat.StreamRequest{
		UserID:      ctx.GetHeader("x-user-id"),
		SessionID:   ctx.GetHeader("x-session-id"),
		Profile:     validated.Profile,
		Theme:       validated.Theme,
		Lang:        validated.Lang,
		Messages:    validated.Messages,
		Saju:        validated.Saju,
		Astro:       validated.Astro,
		UserContext: validated.UserContext,
		CVText:      validated.CVText,
	})
	if err != nil {
		switch {
		case errors.Is(err, chat.ErrNotAuthenticated):
			ctx.JSON(http.StatusUnauthorized, gin.H{"error": "not_authenticated"})
		case errors.Is(err, chat.ErrCreditExhausted):
			ctx.JSON(http.StatusPaymentRequired, gin.H{"error": "credit exhausted"})
		default:
			c.log.Error("chat stream failed",
				"error", err,
				"theme", validated.Theme,
			)
			ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		}
		return
	}

	writeSSEHeaders(ctx)

	switch {
	case result.Intercepted:
		writeSyntheticStream(ctx, result.InterceptMessage)
	case result.Fallback:
		ctx.Header("X-Fallback", "1")
		writeSyntheticStream(ctx, result.FallbackMessage)
	default:
		c.relayStream(ctx, result)
	}
}

func writeSSEHeaders(ctx *gin.Context) {
	ctx.Header("Content-Type", "text/event-stream")
	ctx.Header("Cache-Control", "no-cache")
	ctx.Header("Connection", "keep-alive")
}

// writeSyntheticStream emits the two-event form used for safety intercepts
// and backend fallbacks.
func writeSyntheticStream(ctx *gin.Context, message string) {
	ctx.Status(http.StatusOK)
	writeEvent(ctx, message)
	writeEvent(ctx, doneEvent)
}

// relayStream forwards the upstream SSE stream event by event, masking each
// payload. The closed flag prevents a double close when the reader errors
// after the stream already finished.
func (c *ChatStreamController) relayStream(ctx *gin.Context, result *chat.StreamResult) {
	ctx.Status(http.StatusOK)

	closed := false
	defer func() {
		if !closed {
			closed = true
			result.Body.Close()
		}
	}()

	sawDone := false
	scanner := bufio.NewScanner(result.Body)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}
		payload, ok := strings.CutPrefix(line, "data:")
		if !ok {
			continue
		}
		payload = strings.TrimSpace(payload)
		if payload == doneEvent {
			sawDone = true
			writeEvent(ctx, doneEvent)
			break
		}
		writeEvent(ctx, chat.MaskPII(payload))
	}

	if err := scanner.Err(); err != nil {
		c.log.Warn("stream relay interrupted",
			"request_id", result.RequestID,
			"error", err,
		)
	}
	if !sawDone {
		writeEvent(ctx, doneEvent)
	}

	closed = true
	result.Body.Close()
}

func writeEvent(ctx *gin.Context, payload string) {
	ctx.Writer.WriteString("data: " + payload + "\n\n")
	ctx.Writer.Flush()
}
