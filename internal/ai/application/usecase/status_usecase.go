package usecase

import (
	"context"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
)

// StatusService реализует StatusUseCase
type StatusService struct {
	providers  []out.Provider
	forceLocal bool
}

// NewStatusService создает новый сервис статуса провайдеров
func NewStatusService(providers []out.Provider, forceLocal bool) *StatusService {
	return &StatusService{
		providers:  providers,
		forceLocal: forceLocal,
	}
}

// Execute возвращает список сконфигурированных провайдеров и текущий режим.
// Локальный режим включается принудительно конфигом либо отсутствием ключей.
func (s *StatusService) Execute(ctx context.Context) *in.StatusOutput {
	configured := make([]string, 0, len(s.providers))
	for _, p := range s.providers {
		if p.Configured() {
			configured = append(configured, p.Name())
		}
	}

	return &in.StatusOutput{
		Providers:    configured,
		UsingLocalAI: s.forceLocal || len(configured) == 0,
	}
}
