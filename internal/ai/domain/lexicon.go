package domain

// Lexicon — единая таблица ключевых слов для анализатора и агрегатора.
// Обе подсистемы работают с одним словарем, чтобы оценка отдельного отзыва
// и профиль водителя не расходились.
type Lexicon struct {
	// Positive/Negative — слова общей тональности
	Positive []string
	Negative []string
	// VeryPositive — подмножество Positive с дополнительным весом
	VeryPositive []string
	// Skills — категории навыков для анализа отдельного отзыва (шкала 1-5)
	Skills map[string][]string
	// SkillOrder — порядок объявления категорий навыков (для детерминизма)
	SkillOrder []string
	// Categories — категории агрегатора (шкала 0-100)
	Categories map[string][]string
	// CategoryOrder — порядок объявления категорий агрегатора (tie-break)
	CategoryOrder []string
}

// Категории навыков анализатора
const (
	SkillDrivingSkill     = "driving_skill"
	SkillCommunication    = "communication"
	SkillPunctuality      = "punctuality"
	SkillProfessionalism  = "professionalism"
	SkillVehicleCondition = "vehicle_condition"
)

// Категории агрегатора
const (
	CategoryProfessionalism = "professionalism"
	CategorySafety          = "safety"
	CategoryCommunication   = "communication"
	CategoryKnowledge       = "knowledge"
	CategoryPunctuality     = "punctuality"
)

// DefaultLexicon возвращает стандартный словарь
func DefaultLexicon() *Lexicon {
	return &Lexicon{
		Positive: []string{
			"excellent", "amazing", "outstanding", "brilliant", "exceptional",
			"great", "good", "awesome", "fantastic", "wonderful", "professional",
			"helpful", "friendly", "polite", "courteous", "reliable", "punctual",
			"timely", "safe", "clean", "comfortable", "responsive", "attentive",
			"skilled", "expert", "knowledgeable", "experienced", "efficient",
		},
		Negative: []string{
			"poor", "bad", "terrible", "awful", "horrible", "disappointing",
			"rude", "unprofessional", "unreliable", "late", "dirty", "unsafe",
			"uncomfortable", "slow", "unresponsive", "careless", "inexperienced",
			"inefficient", "dangerous", "aggressive", "unprepared", "confused",
			"distracted", "impatient", "unpunctual", "messy",
		},
		VeryPositive: []string{
			"excellent", "amazing", "outstanding", "brilliant", "exceptional",
		},
		Skills: map[string][]string{
			SkillDrivingSkill:     {"drive", "driving", "skill", "control", "maneuver", "handling", "navigate"},
			SkillCommunication:    {"communicate", "communication", "response", "responsive", "talk", "explain", "update"},
			SkillPunctuality:      {"punctual", "time", "early", "late", "delay", "wait", "schedule", "arrival"},
			SkillProfessionalism:  {"professional", "manner", "conduct", "behavior", "attitude", "respectful", "courteous"},
			SkillVehicleCondition: {"car", "vehicle", "clean", "maintained", "condition", "interior", "exterior"},
		},
		SkillOrder: []string{
			SkillDrivingSkill,
			SkillCommunication,
			SkillPunctuality,
			SkillProfessionalism,
			SkillVehicleCondition,
		},
		Categories: map[string][]string{
			CategoryProfessionalism: {"professional", "courteous"},
			CategorySafety:          {"safe", "careful", "secure"},
			CategoryCommunication:   {"communicat", "friendly", "talk"},
			CategoryKnowledge:       {"knowledge", "expert", "inform"},
			CategoryPunctuality:     {"time", "punctual", "wait"},
		},
		CategoryOrder: []string{
			CategoryProfessionalism,
			CategorySafety,
			CategoryCommunication,
			CategoryKnowledge,
			CategoryPunctuality,
		},
	}
}
