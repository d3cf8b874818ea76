package service

import (
	"context"
	"io"
)

// AskStreamRequest is the payload forwarded to the LLM backend's /ask-stream
// endpoint. Charts travel as opaque JSON-ready structures.
type AskStreamRequest struct {
	Theme         string      `json:"theme"`
	Prompt        string      `json:"prompt"`
	Locale        string      `json:"locale"`
	Saju          interface{} `json:"saju,omitempty"`
	Astro         interface{} `json:"astro,omitempty"`
	AdvancedAstro interface{} `json:"advanced_astro,omitempty"`
	Birth         AskBirth    `json:"birth"`
	History       interface{} `json:"history"`
	SessionID     string      `json:"session_id,omitempty"`
	UserContext   string      `json:"user_context,omitempty"`
	CVText        string      `json:"cv_text,omitempty"`
}

// AskBirth is the birth block of AskStreamRequest.
type AskBirth struct {
	Date   string  `json:"date"`
	Time   string  `json:"time"`
	Gender string  `json:"gender"`
	Lat    float64 `json:"lat"`
	Lon    float64 `json:"lon"`
}

// ILLMStreamService opens a streaming completion against the backend. The
// returned body is the upstream SSE stream; the caller owns closing it.
type ILLMStreamService interface {
	AskStream(ctx context.Context, req AskStreamRequest) (io.ReadCloser, error)
}
