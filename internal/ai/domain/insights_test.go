package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDriverInsights_ColdStart(t *testing.T) {
	lx := DefaultLexicon()

	insights := lx.DriverInsights("d1", nil)

	assert.Equal(t, 75, insights.OverallScore)
	assert.Equal(t, ScoreBreakdown{
		ProfessionalismScore: 75,
		SafetyScore:          80,
		CommunicationScore:   70,
		KnowledgeScore:       75,
		PunctualityScore:     75,
	}, insights.ScoreBreakdown)
	assert.Len(t, insights.TopStrengths, 3)
	assert.Len(t, insights.ImprovementSuggestions, 2)
	assert.Contains(t, insights.PerformanceSummary, "Limited review data available")
}

func TestDriverInsights_PerfectRatings(t *testing.T) {
	lx := DefaultLexicon()
	reviews := []ReviewInput{
		{Rating: 5, Comment: "great"},
		{Rating: 5, Comment: "great"},
	}

	insights := lx.DriverInsights("d1", reviews)

	assert.Equal(t, 100, insights.OverallScore)
	assert.Equal(t, 100, insights.ScoreBreakdown.ProfessionalismScore)
	assert.Equal(t, 100, insights.ScoreBreakdown.PunctualityScore)
	assert.Contains(t, insights.PerformanceSummary, "Outstanding driver")

	// При равных подоценках топ-3 следует порядку объявления категорий
	assert.Equal(t, []string{
		"Professional and courteous service",
		"Safe and secure driving practices",
		"Excellent communication with clients",
	}, insights.TopStrengths)
	assert.Equal(t, []string{
		"Enhance professionalism and customer service approach",
		"Focus on safety and defensive driving techniques",
	}, insights.ImprovementSuggestions)
}

func TestDriverInsights_MentionsRaiseCategoryScore(t *testing.T) {
	lx := DefaultLexicon()
	reviews := []ReviewInput{
		{Rating: 3, Comment: "Very professional and safe driver"},
	}

	insights := lx.DriverInsights("d1", reviews)

	assert.Equal(t, 60, insights.OverallScore)
	// Упоминание категории в отзыве добавляет 5 очков
	assert.Equal(t, 65, insights.ScoreBreakdown.ProfessionalismScore)
	assert.Equal(t, 65, insights.ScoreBreakdown.SafetyScore)
	assert.Equal(t, 60, insights.ScoreBreakdown.CommunicationScore)
	assert.Equal(t, "Professional and courteous service", insights.TopStrengths[0])
	assert.Contains(t, insights.PerformanceSummary, "Average performance")
}

func TestDriverInsights_MentionCountedOncePerReview(t *testing.T) {
	lx := DefaultLexicon()
	// Оба ключевых слова категории в одном отзыве дают одно упоминание
	reviews := []ReviewInput{
		{Rating: 4, Comment: "professional and courteous"},
	}

	insights := lx.DriverInsights("d1", reviews)

	assert.Equal(t, 80, insights.OverallScore)
	assert.Equal(t, 85, insights.ScoreBreakdown.ProfessionalismScore)
}

func TestDriverInsights_SubScoreCappedAtHundred(t *testing.T) {
	lx := DefaultLexicon()
	reviews := []ReviewInput{
		{Rating: 5, Comment: "professional"},
		{Rating: 5, Comment: "professional"},
		{Rating: 5, Comment: "professional"},
	}

	insights := lx.DriverInsights("d1", reviews)

	assert.Equal(t, 100, insights.OverallScore)
	assert.Equal(t, 100, insights.ScoreBreakdown.ProfessionalismScore)
}

func TestPerformanceSummaryBands(t *testing.T) {
	assert.Contains(t, performanceSummary(85), "Outstanding")
	assert.Contains(t, performanceSummary(70), "Solid performer")
	assert.Contains(t, performanceSummary(50), "Average performance")
	assert.Contains(t, performanceSummary(49), "Below average")
}

func TestSampleReviews(t *testing.T) {
	samples := SampleReviews()

	assert.Len(t, samples, 3)
	assert.Equal(t, 5, samples[0].Rating)
	assert.Equal(t, "New York", samples[0].City)
	assert.Equal(t, "NY", samples[0].State)
	assert.Equal(t, 4, samples[1].Rating)
	assert.Equal(t, 5, samples[2].Rating)
	// Город и штат хранятся раздельно, как в реальных отзывах
	for _, s := range samples {
		assert.NotEmpty(t, s.City)
		assert.NotEmpty(t, s.State)
	}
}
