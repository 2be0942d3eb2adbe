package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAssistantRespond_IntentPriority(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		contains string
	}{
		{"car intent", "What cars do you have?", "luxury vehicles"},
		{"driver intent", "Tell me about your drivers", "professional drivers"},
		{"booking intent", "How do I make a reservation?", "Booking with Zoro Cars"},
		{"pricing intent", "What does it cost?", "Our pricing varies"},
		{"default intent", "Hello there", "Welcome to Zoro Cars"},
		// запрос содержит и "book", и "luxury car" — приоритет у намерения про машины
		{"car beats booking", "book a luxury car now", "luxury vehicles"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := AssistantRespond(tt.query, AssistantContext{})
			assert.Contains(t, resp.Response, tt.contains)
			assert.Len(t, resp.SuggestedActions, 2)
		})
	}
}

func TestAssistantRespond_CarContextInterpolation(t *testing.T) {
	ctx := AssistantContext{
		AvailableCars: []CarSummary{
			{ID: "c1", Name: "Aventador", Brand: "Lamborghini", Price: 1200},
			{ID: "c2", Name: "488 Spider", Brand: "Ferrari", Price: 1100},
			{ID: "c3", Name: "Huracan", Brand: "Lamborghini", Price: 1000},
			{ID: "c4", Name: "Continental", Brand: "Bentley", Price: 900},
			{ID: "c5", Name: "Ghost", Brand: "Rolls Royce", Price: 1150},
		},
	}

	resp := AssistantRespond("show me your cars", ctx)

	assert.Contains(t, resp.Response, "5 premium vehicles")
	// Только три уникальных бренда в порядке появления
	assert.Contains(t, resp.Response, "Lamborghini, Ferrari, Bentley")
	assert.NotContains(t, resp.Response, "Rolls Royce")
}

func TestAssistantRespond_DriverContextInterpolation(t *testing.T) {
	ctx := AssistantContext{
		AvailableDrivers: []DriverSummary{
			{ID: "d1", Name: "Marcus", Experience: 8},
			{ID: "d2", Name: "Ivan", Experience: 15},
			{ID: "d3", Name: "Lena", Experience: 4},
		},
	}

	resp := AssistantRespond("do you provide a chauffeur?", ctx)

	assert.Contains(t, resp.Response, "3 professional drivers")
	assert.Contains(t, resp.Response, "15 years of experience")
}

func TestAssistantRespond_EmptyContextFallsBackToGenericCopy(t *testing.T) {
	resp := AssistantRespond("what vehicles are available?", AssistantContext{})

	assert.Contains(t, resp.Response, "premium selection of luxury vehicles")
	assert.Equal(t, []string{
		"Browse all available cars",
		"Contact us for special requests",
	}, resp.SuggestedActions)
}
