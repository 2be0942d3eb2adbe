package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeReview_PositiveReview(t *testing.T) {
	lx := DefaultLexicon()
	driver := DriverRef{ID: "d1", Name: "Marcus", Experience: 10}

	result := lx.AnalyzeReview("Excellent, professional, and punctual driver!", driver)

	assert.Equal(t, "d1", result.DriverID)
	assert.Equal(t, "Marcus", result.DriverName)
	// 3 позитивных слова + бонус very-positive упираются в потолок
	assert.Equal(t, 5.0, result.SentimentScore)

	assert.Equal(t, 3.5, result.SkillAnalysis[SkillDrivingSkill]) // "driver" содержит "drive"
	assert.Equal(t, 3.5, result.SkillAnalysis[SkillPunctuality])
	assert.Equal(t, 3.5, result.SkillAnalysis[SkillProfessionalism])
	assert.Equal(t, 3.0, result.SkillAnalysis[SkillCommunication])
	assert.Equal(t, 3.0, result.SkillAnalysis[SkillVehicleCondition])

	assert.Equal(t, []string{
		"Marcus's 10 years of experience clearly shows in their driving skills.",
		"Passengers consistently rate this driver very highly.",
		"Driving Skill is this driver's strongest attribute based on passenger reviews.",
	}, result.Insights)

	assert.Equal(t, []string{
		"Consider focusing on improving Communication for better passenger satisfaction.",
	}, result.Recommendations)
}

func TestAnalyzeReview_NegativeReview(t *testing.T) {
	lx := DefaultLexicon()
	driver := DriverRef{ID: "d2", Name: "Ivan", Experience: 3}

	result := lx.AnalyzeReview("Terrible, rude and late driver", driver)

	assert.Equal(t, 1.5, result.SentimentScore)
	assert.Equal(t, 2.5, result.SkillAnalysis[SkillDrivingSkill])
	assert.Equal(t, 2.5, result.SkillAnalysis[SkillPunctuality])
	assert.Equal(t, 3.0, result.SkillAnalysis[SkillProfessionalism])

	assert.Equal(t, []string{
		"There may be some areas where this driver could improve.",
	}, result.Insights)
	assert.Equal(t, []string{
		"Consider focusing on improving Driving Skill for better passenger satisfaction.",
	}, result.Recommendations)
}

func TestAnalyzeReview_EmptyTextIsNeutral(t *testing.T) {
	lx := DefaultLexicon()

	result := lx.AnalyzeReview("", DriverRef{ID: "d3", Name: "Lena", Experience: 2})

	assert.Equal(t, 3.0, result.SentimentScore)
	for _, skill := range lx.SkillOrder {
		assert.Equal(t, 3.0, result.SkillAnalysis[skill])
	}
	assert.Empty(t, result.Insights)
	// При нейтральных навыках слабейшим становится первый по порядку объявления
	assert.Equal(t, []string{
		"Consider focusing on improving Driving Skill for better passenger satisfaction.",
	}, result.Recommendations)
}

func TestAnalyzeReview_SentimentClampedAtFive(t *testing.T) {
	lx := DefaultLexicon()

	result := lx.AnalyzeReview(
		"excellent amazing outstanding brilliant exceptional great good awesome fantastic wonderful",
		DriverRef{ID: "d4", Name: "Omar", Experience: 1})

	assert.Equal(t, 5.0, result.SentimentScore)
}

func TestAnalyzeReview_SentimentClampedAtOne(t *testing.T) {
	lx := DefaultLexicon()

	result := lx.AnalyzeReview(
		"poor bad terrible awful horrible disappointing rude dirty",
		DriverRef{ID: "d5", Name: "Pete", Experience: 1})

	assert.Equal(t, 1.0, result.SentimentScore)
}

func TestAnalyzeReview_NoExperienceInsightForJuniorDriver(t *testing.T) {
	lx := DefaultLexicon()

	result := lx.AnalyzeReview("Excellent excellent driver", DriverRef{ID: "d6", Name: "Nick", Experience: 5})

	for _, insight := range result.Insights {
		assert.NotContains(t, insight, "years of experience")
	}
}

func TestSkillTitle(t *testing.T) {
	assert.Equal(t, "Driving Skill", skillTitle("driving_skill"))
	assert.Equal(t, "Communication", skillTitle("communication"))
	assert.Equal(t, "Vehicle Condition", skillTitle("vehicle_condition"))
}
