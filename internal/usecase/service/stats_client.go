package service

import (
	"context"
	"encoding/json"
	"eventic-backend/internal/entity"
	"eventic-backend/internal/usecase"
	"fmt"
	"net/http"
	"net/url"
	"time"
)

// statsEpoch - нижняя граница периода при запросе просмотров за все время
var statsEpoch = time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC)

// StatsClient получает счетчики просмотров из HTTP API сервиса статистики
type StatsClient struct {
	statsURL string
	client   *http.Client
}

func NewStatsClient(statsURL string) usecase.EventViews {
	return &StatsClient{
		statsURL: statsURL,
		client:   &http.Client{Timeout: 5 * time.Second},
	}
}

func (s *StatsClient) GetEventViews(ctx context.Context, eventID int) (int, error) {
	views, err := s.GetEventsViews(ctx, []int{eventID})
	if err != nil {
		return 0, err
	}
	return views[eventID], nil
}

func (s *StatsClient) GetEventsViews(ctx context.Context, eventIDs []int) (map[int]int, error) {
	views := make(map[int]int, len(eventIDs))
	if len(eventIDs) == 0 {
		return views, nil
	}

	params := url.Values{}
	params.Set("start", statsEpoch.Format(time.RFC3339))
	params.Set("end", time.Now().Add(time.Hour).Format(time.RFC3339))
	params.Set("unique", "true")
	for _, eventID := range eventIDs {
		params.Add("uris", fmt.Sprintf("/event/%d", eventID))
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.statsURL+"/stats?"+params.Encode(), nil)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("сервис статистики вернул статус %d", resp.StatusCode)
	}

	var stats []*entity.ViewStats
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		return nil, err
	}

	for _, stat := range stats {
		var eventID int
		if _, err := fmt.Sscanf(stat.URI, "/event/%d", &eventID); err == nil {
			views[eventID] = stat.Hits
		}
	}
	return views, nil
}
