package domain

import (
	"fmt"
	"math"
	"sort"
	"strings"
)

// DriverProfile — профиль водителя для подбора рекомендаций
type DriverProfile struct {
	ID          string
	Name        string
	Experience  int
	Specialties []string
	Languages   []string
	Rating      int      // 0-500
}

// Recommendation — рекомендация водителя пользователю
type Recommendation struct {
	DriverID       string `json:"driverId"`
	MatchScore     int    `json:"matchScore"` // 0-100
	ReasonForMatch string `json:"reasonForMatch"`
}

// RecommendDrivers подбирает до трех водителей под текстовые предпочтения.
// База = rating/5 (0-100) + min(20, опыт*2); +15 за каждую специализацию
// и +10 за каждый язык, найденные в тексте как подстроки. Первая найденная
// причина становится reasonForMatch; специализации проверяются раньше языков.
func RecommendDrivers(userID, preferences string, drivers []DriverProfile) []Recommendation {
	preferencesLower := strings.ToLower(preferences)

	scored := make([]Recommendation, 0, len(drivers))
	for _, driver := range drivers {
		score := float64(driver.Rating) / 5
		reasons := make([]string, 0, 2)

		score += math.Min(20, float64(driver.Experience)*2)

		for _, specialty := range driver.Specialties {
			if strings.Contains(preferencesLower, strings.ToLower(specialty)) {
				score += 15
				reasons = append(reasons, fmt.Sprintf("Specializes in %s", specialty))
			}
		}

		for _, language := range driver.Languages {
			if strings.Contains(preferencesLower, strings.ToLower(language)) {
				score += 10
				reasons = append(reasons, fmt.Sprintf("Speaks %s", language))
			}
		}

		if len(reasons) == 0 {
			reasons = append(reasons, fmt.Sprintf("%d years of professional experience", driver.Experience))
		}

		if score > 100 {
			score = 100
		}

		scored = append(scored, Recommendation{
			DriverID:       driver.ID,
			MatchScore:     int(math.Round(score)),
			ReasonForMatch: reasons[0],
		})
	}

	// Стабильная сортировка: при равных очках сохраняется входной порядок
	sort.SliceStable(scored, func(i, j int) bool {
		return scored[i].MatchScore > scored[j].MatchScore
	})

	if len(scored) > 3 {
		scored = scored[:3]
	}
	return scored
}
