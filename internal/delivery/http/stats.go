package http

import (
	"errors"
	"eventic-backend/internal/delivery/http/utils"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/usecase"
	"net/http"

	"github.com/labstack/echo/v4"
)

type Stats struct {
	statsUseCase usecase.Stats
}

func NewStats(statsUseCase usecase.Stats) *Stats {
	return &Stats{
		statsUseCase: statsUseCase,
	}
}

func (s *Stats) Configure(server *echo.Group) {
	server.GET("/stats", s.GetStats)
}

func (s *Stats) GetStats(c echo.Context) error {
	var request entity.GetStatsRequest
	err := utils.ReadQuery(c, &request)
	if err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Неверный формат запроса",
		})
	}
	if request.Start.IsZero() || request.End.IsZero() {
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Параметры start и end обязательны",
		})
	}

	stats, err := s.statsUseCase.GetStats(c.Request().Context(), &request)
	switch {
	case errors.Is(err, usecase.ErrInvalidPeriod):
		return c.JSON(http.StatusBadRequest, echo.Map{
			"error": "Начало периода должно быть раньше конца",
		})
	case err != nil:
		c.Logger().Errorf("Ошибка при получении статистики: %v", err)
		return c.JSON(http.StatusInternalServerError, echo.Map{
			"error": "Произошла непредвиденная ошибка",
		})
	}

	// отдаём массив без обёртки, его читает клиент статистики в шлюзе
	return c.JSON(http.StatusOK, stats)
}
