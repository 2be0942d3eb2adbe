package in

import "context"

// StatusOutput — текущий режим AI-сервиса
type StatusOutput struct {
	Providers    []string `json:"providers"`
	UsingLocalAI bool     `json:"usingLocalAI"`
}

// StatusUseCase — интерфейс use case статуса провайдеров
type StatusUseCase interface {
	Execute(ctx context.Context) *StatusOutput
}
