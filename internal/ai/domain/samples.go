package domain

// SampleReviews — синтетические отзывы для водителей без истории.
// Инсайты по ним честно помечаются флагом sampleData в ответе.
func SampleReviews() []ReviewInput {
	return []ReviewInput{
		{
			Rating:  5,
			Comment: "Excellent driver! Very professional and knowledgeable about the city.",
			City:    "New York",
			State:   "NY",
		},
		{
			Rating:  4,
			Comment: "Good experience overall. Driver was on time and knew all the shortcuts.",
			City:    "Los Angeles",
			State:   "CA",
		},
		{
			Rating:  5,
			Comment: "Amazing service! Made our trip special with his local recommendations.",
			City:    "Miami",
			State:   "FL",
		},
	}
}
