package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRecommendDrivers_SpecialtyMatchWins(t *testing.T) {
	drivers := []DriverProfile{
		{ID: "d1", Name: "Marcus", Experience: 2, Rating: 400,
			Specialties: []string{"Mountain Roads"}, Languages: []string{"English"}},
		{ID: "d2", Name: "Ivan", Experience: 2, Rating: 400,
			Specialties: []string{"City Tours"}, Languages: []string{"English"}},
	}

	recs := RecommendDrivers("u1", "I want a trip through mountain roads", drivers)

	assert.Len(t, recs, 2)
	assert.Equal(t, "d1", recs[0].DriverID)
	// 400/5 + 2*2 + 15 = 99
	assert.Equal(t, 99, recs[0].MatchScore)
	assert.Equal(t, "Specializes in Mountain Roads", recs[0].ReasonForMatch)
	// 400/5 + 2*2 = 84
	assert.Equal(t, 84, recs[1].MatchScore)
}

func TestRecommendDrivers_LanguageMatchAndReasonOrder(t *testing.T) {
	drivers := []DriverProfile{
		{ID: "d1", Name: "Hans", Experience: 1, Rating: 350,
			Specialties: []string{"Night Drives"}, Languages: []string{"German"}},
	}

	recs := RecommendDrivers("u1", "need a german speaking driver", drivers)

	assert.Equal(t, 82, recs[0].MatchScore) // 70 + 2 + 10
	assert.Equal(t, "Speaks German", recs[0].ReasonForMatch)
}

func TestRecommendDrivers_ExperienceFallbackReason(t *testing.T) {
	drivers := []DriverProfile{
		{ID: "d1", Name: "Pete", Experience: 7, Rating: 300},
	}

	recs := RecommendDrivers("u1", "anything comfortable", drivers)

	assert.Equal(t, "7 years of professional experience", recs[0].ReasonForMatch)
	assert.Equal(t, 74, recs[0].MatchScore) // 60 + min(20, 14)
}

func TestRecommendDrivers_ScoreCappedAtHundred(t *testing.T) {
	drivers := []DriverProfile{
		{ID: "d1", Name: "Ace", Experience: 15, Rating: 500,
			Specialties: []string{"Luxury Events"}, Languages: []string{"English", "French"}},
	}

	recs := RecommendDrivers("u1", "luxury events with an english and french speaking driver", drivers)

	assert.Equal(t, 100, recs[0].MatchScore)
	// Первая найденная причина — специализация, она проверяется раньше языков
	assert.Equal(t, "Specializes in Luxury Events", recs[0].ReasonForMatch)
}

func TestRecommendDrivers_TopThreeOnly(t *testing.T) {
	drivers := []DriverProfile{
		{ID: "d1", Experience: 1, Rating: 100},
		{ID: "d2", Experience: 1, Rating: 200},
		{ID: "d3", Experience: 1, Rating: 300},
		{ID: "d4", Experience: 1, Rating: 400},
	}

	recs := RecommendDrivers("u1", "", drivers)

	assert.Len(t, recs, 3)
	assert.Equal(t, "d4", recs[0].DriverID)
	assert.Equal(t, "d3", recs[1].DriverID)
	assert.Equal(t, "d2", recs[2].DriverID)
}

func TestRecommendDrivers_StableOrderOnTies(t *testing.T) {
	drivers := []DriverProfile{
		{ID: "d1", Experience: 3, Rating: 400},
		{ID: "d2", Experience: 3, Rating: 400},
		{ID: "d3", Experience: 3, Rating: 400},
	}

	recs := RecommendDrivers("u1", "", drivers)

	assert.Equal(t, []string{"d1", "d2", "d3"},
		[]string{recs[0].DriverID, recs[1].DriverID, recs[2].DriverID})
}

func TestRecommendDrivers_NoDrivers(t *testing.T) {
	recs := RecommendDrivers("u1", "anything", nil)
	assert.Empty(t, recs)
}
