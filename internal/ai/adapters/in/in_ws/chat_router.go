// Package inws — WebSocket-вход AI-сервиса: клиентские сообщения чата
// направляются в оркестратор провайдеров, ответ уходит тому же соединению.
package inws

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/ws"
)

// Типы сообщений, которые router принимает от клиента
const (
	msgTypePing = "ping"
	msgTypeChat = "chat"
)

// chatPayload — полезная нагрузка сообщения типа chat
type chatPayload struct {
	Message string               `json:"message"`
	History []domain.ChatMessage `json:"history,omitempty"`
}

// chatReply — ответ ассистента клиенту
type chatReply struct {
	Type         string `json:"type"`
	Response     string `json:"response"`
	UsingLocalAI bool   `json:"usingLocalAI"`
}

// ChatRouter реализует ws.MessageHandler: ping отвечает pong, chat уходит
// в ChatUseCase (цепочка провайдеров с локальным fallback), остальные
// типы сообщений игнорируются.
type ChatRouter struct {
	chatUC in.ChatUseCase
	log    *logger.Logger
}

// NewChatRouter создает router входящих WebSocket сообщений
func NewChatRouter(chatUC in.ChatUseCase, log *logger.Logger) *ChatRouter {
	return &ChatRouter{
		chatUC: chatUC,
		log:    log,
	}
}

// Handle обрабатывает одно входящее сообщение клиента
func (r *ChatRouter) Handle(client *ws.Client, messageType string, data json.RawMessage) error {
	reply, err := r.reply(context.Background(), messageType, data)
	if err != nil {
		return err
	}
	if reply == nil {
		return nil
	}
	return client.Send(reply)
}

// reply строит ответ на сообщение; nil означает, что тип не обрабатывается
func (r *ChatRouter) reply(ctx context.Context, messageType string, data json.RawMessage) (interface{}, error) {
	switch messageType {
	case msgTypePing:
		return map[string]string{"type": "pong"}, nil

	case msgTypeChat:
		var payload chatPayload
		if len(data) > 0 {
			if err := json.Unmarshal(data, &payload); err != nil {
				return nil, fmt.Errorf("decode chat payload: %w", err)
			}
		}

		output, err := r.chatUC.Execute(ctx, in.ChatInput{
			Message: payload.Message,
			History: payload.History,
		})
		if err != nil {
			if errors.Is(err, domain.ErrEmptyMessage) {
				return map[string]string{"type": "error", "message": "message is required"}, nil
			}
			return nil, err
		}

		r.log.Info(logger.Entry{
			Action:  "ws_chat_answered",
			Message: "chat message routed",
			Additional: map[string]interface{}{
				"provider":       output.Provider,
				"using_local_ai": output.Local,
			},
		})

		return chatReply{
			Type:         msgTypeChat,
			Response:     output.Reply,
			UsingLocalAI: output.Local,
		}, nil

	default:
		return nil, nil
	}
}
