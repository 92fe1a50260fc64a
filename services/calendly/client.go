package calendly

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// scheduledEvent is the subset of a Calendly scheduled_events resource the
// normalizer needs.
type scheduledEvent struct {
	Name      string `json:"name"`
	StartTime string `json:"start_time"`
	EndTime   string `json:"end_time"`
	EventType string `json:"event_type"` // URI of the event type resource
}

type scheduledEventResponse struct {
	Resource scheduledEvent `json:"resource"`
}

type eventTypeResponse struct {
	Resource struct {
		Name string `json:"name"`
	} `json:"resource"`
}

// fetchScheduledEvent resolves a scheduled-event reference URI against the
// Calendly read API.
func (s *DefaultCalendlyService) fetchScheduledEvent(ctx context.Context, uri string) (*scheduledEvent, error) {
	var out scheduledEventResponse
	if err := s.getJSON(ctx, uri, &out); err != nil {
		return nil, fmt.Errorf("fetch scheduled event: %w", err)
	}
	return &out.Resource, nil
}

// fetchEventTypeName resolves an event-type reference URI to its display name.
func (s *DefaultCalendlyService) fetchEventTypeName(ctx context.Context, uri string) (string, error) {
	var out eventTypeResponse
	if err := s.getJSON(ctx, uri, &out); err != nil {
		return "", fmt.Errorf("fetch event type: %w", err)
	}
	return out.Resource.Name, nil
}

func (s *DefaultCalendlyService) getJSON(ctx context.Context, uri string, out interface{}) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.APIToken)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.Client.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("calendly API returned status %d for %s", resp.StatusCode, uri)
	}
	return json.NewDecoder(resp.Body).Decode(out)
}
