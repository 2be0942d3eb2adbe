package domain

import (
	"fmt"
	"strings"
)

// CarSummary — данные машины для контекста ассистента
type CarSummary struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Type  string `json:"type"`
	Price int    `json:"price"`
}

// DriverSummary — данные водителя для контекста ассистента
type DriverSummary struct {
	ID          string   `json:"id"`
	Name        string   `json:"name"`
	Experience  int      `json:"experience"`
	Specialties []string `json:"specialties"`
}

// AssistantContext — опциональный живой контекст из каталога
type AssistantContext struct {
	AvailableCars    []CarSummary
	AvailableDrivers []DriverSummary
}

// AssistantResponse — ответ ассистента с предлагаемыми действиями
type AssistantResponse struct {
	Response         string   `json:"response"`
	SuggestedActions []string `json:"suggestedActions"`
}

// AssistantRespond классифицирует вопрос по пяти намерениям в фиксированном
// порядке приоритета (машины -> водители -> бронирование -> цены -> default);
// срабатывает первое совпадение. Ответ при наличии контекста интерполирует
// живые данные каталога.
func AssistantRespond(query string, ctx AssistantContext) AssistantResponse {
	queryLower := strings.ToLower(query)

	switch {
	case containsAny(queryLower, "car", "vehicle", "rent", "luxury"):
		return carResponse(ctx)
	case containsAny(queryLower, "driver", "chauffeur", "professional"):
		return driverResponse(ctx)
	case containsAny(queryLower, "book", "reservation", "reserve"):
		return AssistantResponse{
			Response: "Booking with Zoro Cars is easy and convenient. You can select your desired vehicle, dates, and optional driver services through our online booking system.",
			SuggestedActions: []string{
				"Start a new booking",
				"Check availability calendar",
			},
		}
	case containsAny(queryLower, "price", "cost", "rate"):
		return AssistantResponse{
			Response: "Our pricing varies based on the vehicle model, rental duration, and additional services. We offer competitive rates with discounts for longer rentals and return customers.",
			SuggestedActions: []string{
				"View detailed pricing",
				"Get a custom quote",
			},
		}
	default:
		return AssistantResponse{
			Response: "Welcome to Zoro Cars, your premier luxury car rental service. We offer a wide range of high-end vehicles and professional drivers to provide an exceptional experience.",
			SuggestedActions: []string{
				"Explore our car collection",
				"Learn about our services",
			},
		}
	}
}

func carResponse(ctx AssistantContext) AssistantResponse {
	if len(ctx.AvailableCars) > 0 {
		brands := uniqueBrands(ctx.AvailableCars, 3)
		return AssistantResponse{
			Response: fmt.Sprintf(
				"We offer %d premium vehicles from top brands including %s. Our fleet includes sedans, SUVs, and sports cars to meet your specific needs.",
				len(ctx.AvailableCars), strings.Join(brands, ", ")),
			SuggestedActions: []string{
				"Browse all available cars",
				"Filter cars by type or price range",
			},
		}
	}
	return AssistantResponse{
		Response: "We offer a premium selection of luxury vehicles from top brands. Our fleet includes sedans, SUVs, and sports cars to meet your specific needs.",
		SuggestedActions: []string{
			"Browse all available cars",
			"Contact us for special requests",
		},
	}
}

func driverResponse(ctx AssistantContext) AssistantResponse {
	if len(ctx.AvailableDrivers) > 0 {
		maxExp := 0
		for _, d := range ctx.AvailableDrivers {
			if d.Experience > maxExp {
				maxExp = d.Experience
			}
		}
		return AssistantResponse{
			Response: fmt.Sprintf(
				"We have %d professional drivers available, with up to %d years of experience. All our drivers are trained in luxury transportation and dedicated to providing exceptional service.",
				len(ctx.AvailableDrivers), maxExp),
			SuggestedActions: []string{
				"View all available drivers",
				"Request a driver by specialty",
			},
		}
	}
	return AssistantResponse{
		Response: "Our professional drivers are highly experienced and trained in luxury transportation. They are dedicated to providing exceptional service and ensuring your comfort throughout your journey.",
		SuggestedActions: []string{
			"View all available drivers",
			"Learn about our driver standards",
		},
	}
}

// containsAny проверяет вхождение любой из подстрок
func containsAny(text string, substrings ...string) bool {
	for _, s := range substrings {
		if strings.Contains(text, s) {
			return true
		}
	}
	return false
}

// uniqueBrands возвращает до limit уникальных брендов, сохраняя порядок
func uniqueBrands(cars []CarSummary, limit int) []string {
	seen := make(map[string]bool, len(cars))
	brands := make([]string, 0, limit)
	for _, c := range cars {
		if seen[c.Brand] {
			continue
		}
		seen[c.Brand] = true
		brands = append(brands, c.Brand)
		if len(brands) == limit {
			break
		}
	}
	return brands
}
