package domain

import (
	"math"
	"sort"
	"strings"
)

// ReviewInput — отзыв глазами AI-подсистемы: только то, что нужно для анализа
type ReviewInput struct {
	ID        string `json:"id"`
	UserID    string `json:"user_id"`
	DriverID  string `json:"driver_id,omitempty"`
	CarID     string `json:"car_id,omitempty"`
	BookingID string `json:"booking_id"`
	Rating    int    `json:"rating"` // 1-5
	Comment   string `json:"comment"`
	City      string `json:"city,omitempty"`
	State     string `json:"state,omitempty"`
}

// ScoreBreakdown — пять подоценок профиля водителя по шкале 0-100
type ScoreBreakdown struct {
	ProfessionalismScore int `json:"professionalismScore"`
	SafetyScore          int `json:"safetyScore"`
	CommunicationScore   int `json:"communicationScore"`
	KnowledgeScore       int `json:"knowledgeScore"`
	PunctualityScore     int `json:"punctualityScore"`
}

// DriverInsights — агрегированный профиль водителя по всем отзывам
type DriverInsights struct {
	OverallScore           int            `json:"overallScore"` // 0-100
	ScoreBreakdown         ScoreBreakdown `json:"scoreBreakdown"`
	TopStrengths           []string       `json:"topStrengths"`           // до 3
	ImprovementSuggestions []string       `json:"improvementSuggestions"` // до 2
	PerformanceSummary     string         `json:"performanceSummary"`
}

// Фиксированные формулировки сильных сторон по категориям
var strengthTexts = map[string]string{
	CategoryProfessionalism: "Professional and courteous service",
	CategorySafety:          "Safe and secure driving practices",
	CategoryCommunication:   "Excellent communication with clients",
	CategoryKnowledge:       "Extensive knowledge of routes and destinations",
	CategoryPunctuality:     "Punctual and reliable service",
}

// Фиксированные формулировки зон роста по категориям
var improvementTexts = map[string]string{
	CategoryProfessionalism: "Enhance professionalism and customer service approach",
	CategorySafety:          "Focus on safety and defensive driving techniques",
	CategoryCommunication:   "Improve communication and engagement with clients",
	CategoryKnowledge:       "Expand knowledge of routes and local attractions",
	CategoryPunctuality:     "Enhance punctuality and time management",
}

// coldStartInsights — фиксированный профиль при отсутствии отзывов
func coldStartInsights() DriverInsights {
	return DriverInsights{
		OverallScore: 75,
		ScoreBreakdown: ScoreBreakdown{
			ProfessionalismScore: 75,
			SafetyScore:          80,
			CommunicationScore:   70,
			KnowledgeScore:       75,
			PunctualityScore:     75,
		},
		TopStrengths: []string{
			"Professional driving experience",
			"Reliable service record",
			"Knowledge of local routes and destinations",
		},
		ImprovementSuggestions: []string{
			"Continue to develop customer service skills",
			"Maintain vehicle cleanliness and condition",
		},
		PerformanceSummary: "Limited review data available. Driver appears to maintain a professional standard of service.",
	}
}

// DriverInsights агрегирует отзывы в профиль водителя.
// Ноль отзывов — фиксированный cold-start профиль.
// Иначе: overall = round(mean(rating)*20); подоценка категории =
// min(100, overall + упоминания*5), упоминания считаются по всем
// комментариям сразу.
func (lx *Lexicon) DriverInsights(driverID string, reviews []ReviewInput) DriverInsights {
	if len(reviews) == 0 {
		return coldStartInsights()
	}

	sum := 0
	for _, r := range reviews {
		sum += r.Rating
	}
	mean := float64(sum) / float64(len(reviews))
	overall := int(math.Round(mean * 20)) // шкала 1-5 -> 0-100

	// Упоминания категорий по всем комментариям
	mentions := make(map[string]int, len(lx.CategoryOrder))
	for _, r := range reviews {
		comment := strings.ToLower(r.Comment)
		for _, category := range lx.CategoryOrder {
			for _, keyword := range lx.Categories[category] {
				if strings.Contains(comment, keyword) {
					mentions[category]++
					break
				}
			}
		}
	}

	scores := make(map[string]int, len(lx.CategoryOrder))
	for _, category := range lx.CategoryOrder {
		score := overall + mentions[category]*5
		if score > 100 {
			score = 100
		}
		scores[category] = score
	}

	// Топ-3 сильных и 2 слабейших категории; tie-break — порядок объявления
	ordered := append([]string(nil), lx.CategoryOrder...)

	byScoreDesc := append([]string(nil), ordered...)
	sort.SliceStable(byScoreDesc, func(i, j int) bool {
		return scores[byScoreDesc[i]] > scores[byScoreDesc[j]]
	})
	topStrengths := make([]string, 0, 3)
	for _, category := range byScoreDesc[:3] {
		topStrengths = append(topStrengths, strengthTexts[category])
	}

	byScoreAsc := append([]string(nil), ordered...)
	sort.SliceStable(byScoreAsc, func(i, j int) bool {
		return scores[byScoreAsc[i]] < scores[byScoreAsc[j]]
	})
	improvements := make([]string, 0, 2)
	for _, category := range byScoreAsc[:2] {
		improvements = append(improvements, improvementTexts[category])
	}

	return DriverInsights{
		OverallScore: overall,
		ScoreBreakdown: ScoreBreakdown{
			ProfessionalismScore: scores[CategoryProfessionalism],
			SafetyScore:          scores[CategorySafety],
			CommunicationScore:   scores[CategoryCommunication],
			KnowledgeScore:       scores[CategoryKnowledge],
			PunctualityScore:     scores[CategoryPunctuality],
		},
		TopStrengths:           topStrengths,
		ImprovementSuggestions: improvements,
		PerformanceSummary:     performanceSummary(overall),
	}
}

// performanceSummary выбирает одну из четырех фиксированных формулировок
func performanceSummary(overall int) string {
	switch {
	case overall >= 85:
		return "Outstanding driver with consistently excellent reviews. Delivers premium service that meets or exceeds client expectations."
	case overall >= 70:
		return "Solid performer with good customer feedback. Reliable driver who provides quality service with minor areas for improvement."
	case overall >= 50:
		return "Average performance with mixed reviews. Shows potential but needs to address several areas to enhance service quality."
	default:
		return "Below average performance that requires attention. Multiple areas need improvement to meet the standard expected by clients."
	}
}
