package domain

import (
	"fmt"
	"math"
	"strings"
)

// DriverRef — данные водителя, нужные анализатору
type DriverRef struct {
	ID         string
	Name       string
	Experience int    // лет
}

// SkillAnalysis — оценки пяти навыков по шкале 1-5
type SkillAnalysis map[string]float64

// AnalysisResult — результат анализа одного отзыва
type AnalysisResult struct {
	DriverID        string        `json:"driver_id"`
	DriverName      string        `json:"driver_name"`
	SentimentScore  float64       `json:"sentiment_score"` // 1-5
	SkillAnalysis   SkillAnalysis `json:"skill_analysis"`
	Insights        []string      `json:"insights"`
	Recommendations []string      `json:"recommendations"`
}

// AnalyzeReview анализирует текст отзыва по словарю: тональность и пять
// навыков по шкале 1-5 с нейтральной базой 3.0. Слова ищутся как подстроки.
// Пустой текст дает нейтральный результат, ошибок не бывает.
func (lx *Lexicon) AnalyzeReview(reviewText string, driver DriverRef) AnalysisResult {
	text := strings.ToLower(reviewText)

	positiveCount := countMatches(text, lx.Positive)
	negativeCount := countMatches(text, lx.Negative)
	veryPositiveCount := countMatches(text, lx.VeryPositive)

	// База 3.0 (нейтрально); каждый перевес в 1 слово сдвигает на 0.5
	sentiment := 3.0
	sentimentDiff := positiveCount - negativeCount
	switch {
	case sentimentDiff > 0:
		sentiment = math.Min(5, 3+float64(sentimentDiff)*0.5)
		sentiment = math.Min(5, sentiment+float64(veryPositiveCount)*0.5)
	case sentimentDiff < 0:
		sentiment = math.Max(1, 3+float64(sentimentDiff)*0.5)
	}

	// Навыки: упоминания усиливают оценку в сторону общей тональности
	skills := make(SkillAnalysis, len(lx.SkillOrder))
	for _, skill := range lx.SkillOrder {
		mentions := countMatches(text, lx.Skills[skill])
		score := 3.0
		if mentions > 0 {
			switch {
			case sentiment > 3:
				score = math.Min(5, 3+float64(mentions)*0.5)
			case sentiment < 3:
				score = math.Max(1, 3-float64(mentions)*0.5)
			}
		}
		skills[skill] = round1(score)
	}

	sentiment = round1(sentiment)

	insights := lx.buildInsights(driver, sentiment, skills)
	recommendations := lx.buildRecommendations(sentiment, skills)

	return AnalysisResult{
		DriverID:        driver.ID,
		DriverName:      driver.Name,
		SentimentScore:  sentiment,
		SkillAnalysis:   skills,
		Insights:        insights,
		Recommendations: recommendations,
	}
}

// buildInsights формирует 1-3 наблюдения: опыт, тональность, сильнейший навык
func (lx *Lexicon) buildInsights(driver DriverRef, sentiment float64, skills SkillAnalysis) []string {
	insights := make([]string, 0, 3)

	if driver.Experience > 5 {
		insights = append(insights, fmt.Sprintf(
			"%s's %d years of experience clearly shows in their driving skills.",
			driver.Name, driver.Experience))
	}

	if sentiment > 4 {
		insights = append(insights, "Passengers consistently rate this driver very highly.")
	} else if sentiment < 2 {
		insights = append(insights, "There may be some areas where this driver could improve.")
	}

	topSkill, topScore := lx.bestSkill(skills)
	if topScore > 3 {
		insights = append(insights, fmt.Sprintf(
			"%s is this driver's strongest attribute based on passenger reviews.",
			skillTitle(topSkill)))
	}

	return insights
}

// buildRecommendations формирует 0-2 рекомендации: слабейший навык или "keep up"
func (lx *Lexicon) buildRecommendations(sentiment float64, skills SkillAnalysis) []string {
	recommendations := make([]string, 0, 2)

	lowestSkill, lowestScore := lx.worstSkill(skills)
	if lowestScore < 4 {
		recommendations = append(recommendations, fmt.Sprintf(
			"Consider focusing on improving %s for better passenger satisfaction.",
			skillTitle(lowestSkill)))
	}

	if sentiment > 4 && len(recommendations) == 0 {
		recommendations = append(recommendations, "Continue maintaining your excellent service standards.")
	}

	return recommendations
}

// bestSkill возвращает навык с максимальной оценкой (tie-break — порядок объявления)
func (lx *Lexicon) bestSkill(skills SkillAnalysis) (string, float64) {
	best := ""
	bestScore := math.Inf(-1)
	for _, skill := range lx.SkillOrder {
		if skills[skill] > bestScore {
			best = skill
			bestScore = skills[skill]
		}
	}
	return best, bestScore
}

// worstSkill возвращает навык с минимальной оценкой (tie-break — порядок объявления)
func (lx *Lexicon) worstSkill(skills SkillAnalysis) (string, float64) {
	worst := ""
	worstScore := math.Inf(1)
	for _, skill := range lx.SkillOrder {
		if skills[skill] < worstScore {
			worst = skill
			worstScore = skills[skill]
		}
	}
	return worst, worstScore
}

// countMatches считает словарные слова, встречающиеся в тексте как подстроки
func countMatches(text string, words []string) int {
	count := 0
	for _, w := range words {
		if strings.Contains(text, w) {
			count++
		}
	}
	return count
}

// skillTitle превращает driving_skill в "Driving Skill"
func skillTitle(skill string) string {
	parts := strings.Split(skill, "_")
	for i, p := range parts {
		if p == "" {
			continue
		}
		parts[i] = strings.ToUpper(p[:1]) + p[1:]
	}
	return strings.Join(parts, " ")
}

// round1 округляет до одного знака после запятой
func round1(v float64) float64 {
	return math.Round(v*10) / 10
}
