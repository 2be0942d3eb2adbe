package usecase

import (
	"context"
	"strings"

	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/in"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/application/ports/out"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/ai/domain"
	"github.com/RedDragX/carrentalwebsite-sub000/internal/shared/logger"
)

// AssistantService реализует AssistantUseCase
type AssistantService struct {
	catalog out.CatalogReader
	log     *logger.Logger
}

// NewAssistantService создает новый сервис ассистента по каталогу
func NewAssistantService(catalog out.CatalogReader, log *logger.Logger) *AssistantService {
	return &AssistantService{
		catalog: catalog,
		log:     log,
	}
}

// Execute отвечает на вопрос по каталогу. Контекст (машины, водители)
// подгружается только по флагам запроса; ошибка загрузки контекста не
// роняет ответ, ассистент отвечает без живых данных.
func (s *AssistantService) Execute(ctx context.Context, input in.AssistantInput) (*domain.AssistantResponse, error) {
	if strings.TrimSpace(input.Query) == "" {
		return nil, domain.ErrEmptyQuery
	}

	var assistantCtx domain.AssistantContext

	if input.IncludeCarInfo {
		cars, err := s.catalog.ListCarSummaries(ctx)
		if err != nil {
			s.log.Warn(logger.Entry{
				Action:  "assistant_car_context_failed",
				Message: "could not load car context",
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		} else {
			assistantCtx.AvailableCars = cars
		}
	}

	if input.IncludeDriverInfo {
		drivers, err := s.catalog.ListDriverSummaries(ctx)
		if err != nil {
			s.log.Warn(logger.Entry{
				Action:  "assistant_driver_context_failed",
				Message: "could not load driver context",
				Error:   &logger.ErrObj{Msg: err.Error()},
			})
		} else {
			assistantCtx.AvailableDrivers = drivers
		}
	}

	response := domain.AssistantRespond(input.Query, assistantCtx)
	return &response, nil
}
