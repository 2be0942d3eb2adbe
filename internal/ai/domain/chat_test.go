package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFallbackReply_Branches(t *testing.T) {
	tests := []struct {
		name     string
		message  string
		contains string
	}{
		{"booking", "How do I book a car?", "booking platform"},
		{"pricing by price", "what is the price?", "$599 to $1200 per day"},
		{"pricing by cost", "how much does it cost", "$599 to $1200 per day"},
		{"pricing by fee", "any extra fees?", "$599 to $1200 per day"},
		{"cancellation", "I need to cancel my rental", "cancellation policy"},
		{"default", "tell me a joke", "I'd be happy to help"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Contains(t, FallbackReply(tt.message), tt.contains)
		})
	}
}

func TestFallbackReply_BookTakesPriorityOverCancel(t *testing.T) {
	// "book" проверяется раньше "cancel"
	reply := FallbackReply("cancel my booking")
	assert.Contains(t, reply, "booking platform")
}

func TestSystemPromptMentionsBrand(t *testing.T) {
	assert.Contains(t, SystemPrompt, "Zoro Cars")
	assert.Contains(t, SystemPrompt, "$599 to $1200")
}
