package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestMaskPIIEmail(t *testing.T) {
	masked := MaskPII("reach me at john.doe+test@example.co.kr please")
	assert.Equal(t, "reach me at *** please", masked)
}

func TestMaskPIIPhone(t *testing.T) {
	assert.Equal(t, "call ***", MaskPII("call 010-1234-5678"))

	masked := MaskPII("call +82 10 1234 5678")
	assert.NotContains(t, masked, "5678")
	assert.Contains(t, masked, "***")
}

func TestMaskPIIMixed(t *testing.T) {
	masked := MaskPII("email a@b.io or call 010-1234-5678 anytime")
	assert.NotContains(t, masked, "a@b.io")
	assert.NotContains(t, masked, "1234")
	assert.Contains(t, masked, "anytime")
}

func TestMaskPIIPlainTextUntouched(t *testing.T) {
	text := "오늘의 운세는 긍정적입니다"
	assert.Equal(t, text, MaskPII(text))
}
