package domain

import "strings"

// Роли сообщений чата
const (
	RoleSystem    = "system"
	RoleUser      = "user"
	RoleAssistant = "assistant"
)

// ChatMessage — одно сообщение диалога. История передается клиентом
// с каждым запросом, сервер состояние чата не хранит.
type ChatMessage struct {
	Role    string `json:"role"` // user | assistant | system
	Content string `json:"content"`
}

// SystemPrompt — базовый промпт, задающий личность и знания ассистента Zoro
const SystemPrompt = `You are Zoro, a helpful AI assistant for the Zoro Cars luxury car rental service.

Your primary role is to provide information about car bookings, the luxury car fleet, driver services, and connect users with customer support when needed.

Information about Zoro Cars:
- Luxury car rental service with high-end vehicles (Lamborghini, Ferrari, Porsche, Rolls Royce, Bentley, Aston Martin)
- Offers both self-drive and chauffeur services
- Pricing is premium, typically ranging from $599 to $1200 per day depending on vehicle
- Booking requires a valid driver's license, insurance, and a security deposit
- Cancellation policy: Full refund if canceled 72+ hours before rental, 50% refund if canceled 24-72 hours before, no refund if canceled less than 24 hours
- All cars come with comprehensive insurance and 24/7 roadside assistance
- Minimum rental period is 24 hours
- Available in major cities with airport pickup available

When responding:
- Be professional but friendly and conversational
- Keep responses concise and focused on the user's question
- If you don't know something specific, offer to connect them with customer service
- For booking inquiries, explain the general process but suggest they complete it on the website
- Highlight luxury features and exceptional service

Always aim to provide a premium customer service experience that matches the luxury brand image.`

// FallbackReply — детерминированный локальный ответ, когда все провайдеры
// отказали. Простые проверки подстрок: book / price|cost|fee / cancel / default.
func FallbackReply(message string) string {
	lower := strings.ToLower(message)

	switch {
	case strings.Contains(lower, "book"):
		return "To book a car, you can use our website's booking platform. Simply select your desired car, dates, and whether you need a chauffeur. You'll need a valid driver's license and credit card for the security deposit. Would you like me to guide you through the specific steps?"
	case strings.Contains(lower, "price") || strings.Contains(lower, "cost") || strings.Contains(lower, "fee"):
		return "Our luxury vehicles range from $599 to $1200 per day, depending on the model. This includes insurance and roadside assistance. Additional services like chauffeurs or airport delivery may have extra fees. May I help you with pricing for a specific car?"
	case strings.Contains(lower, "cancel"):
		return "Our cancellation policy offers a full refund if you cancel 72+ hours before your rental, a 50% refund if canceled 24-72 hours before, and no refund for cancellations less than 24 hours before your reservation. Would you like help with a cancellation?"
	default:
		return "I'd be happy to help you with information about our luxury car rentals, booking process, or answer any other questions about Zoro Cars. Could you please provide a bit more detail about what you'd like to know?"
	}
}
