package usecase

import (
	"context"
	"strings"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// ChatService реализует ChatUseCase: последовательно опрашивает внешних
// провайдеров в порядке регистрации и при полном отказе отвечает
// локальным fallback. Ошибки провайдеров никогда не доходят до клиента.
type ChatService struct {
	providers  []out.Provider
	forceLocal bool
	log        *logger.Logger
}

// NewChatService создает новый сервис чат-бота
func NewChatService(providers []out.Provider, forceLocal bool, log *logger.Logger) *ChatService {
	return &ChatService{
		providers:  providers,
		forceLocal: forceLocal,
		log:        log,
	}
}

// Execute отвечает на сообщение пользователя. История диалога приходит
// от клиента целиком, сервер состояние чата не хранит.
func (s *ChatService) Execute(ctx context.Context, input in.ChatInput) (*in.ChatOutput, error) {
	if strings.TrimSpace(input.Message) == "" {
		return nil, domain.ErrEmptyMessage
	}

	messages := make([]domain.ChatMessage, 0, len(input.History)+2)
	messages = append(messages, domain.ChatMessage{Role: domain.RoleSystem, Content: domain.SystemPrompt})
	for _, m := range input.History {
		if m.Role != domain.RoleUser && m.Role != domain.RoleAssistant {
			continue
		}
		messages = append(messages, m)
	}
	messages = append(messages, domain.ChatMessage{Role: domain.RoleUser, Content: input.Message})

	if !s.forceLocal {
		for _, provider := range s.providers {
			if !provider.Configured() {
				continue
			}

			reply, err := provider.Generate(ctx, messages)
			if err != nil {
				s.log.Warn(logger.Entry{
					Action:  "provider_failed",
					Message: "provider request failed, trying next",
					Error:   &logger.ErrObj{Msg: err.Error()},
					Additional: map[string]interface{}{
						"provider": provider.Name(),
					},
				})
				continue
			}
			if strings.TrimSpace(reply) == "" {
				s.log.Warn(logger.Entry{
					Action:  "provider_empty_reply",
					Message: "provider returned empty reply, trying next",
					Additional: map[string]interface{}{
						"provider": provider.Name(),
					},
				})
				continue
			}

			return &in.ChatOutput{Reply: reply, Provider: provider.Name()}, nil
		}
	}

	s.log.Info(logger.Entry{
		Action:  "chat_local_fallback",
		Message: "answering with local fallback",
		Additional: map[string]interface{}{
			"force_local": s.forceLocal,
		},
	})

	return &in.ChatOutput{
		Reply:    domain.FallbackReply(input.Message),
		Provider: "local",
		Local:    true,
	}, nil
}
