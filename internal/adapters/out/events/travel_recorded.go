// Package events holds the wire form of the events the tracking service emits.
// Broker adapters share it so every transport carries the same payload.
package events

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"tracking/internal/core/domain/model/travel"
	"tracking/internal/core/ports"
)

// TravelRecordedType names the event emitted after a store entry is committed.
const TravelRecordedType = "courier.travel.recorded"

type TravelRecorded struct {
	Type      string    `json:"type"`
	RecordID  string    `json:"record_id"`
	CourierID string    `json:"courier_id"`
	StoreName string    `json:"store_name"`
	Location  Location  `json:"location"`
	Timestamp time.Time `json:"timestamp"`
}

type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

func NewTravelRecorded(r *travel.Record) (TravelRecorded, error) {
	if err := r.Validate(); err != nil {
		return TravelRecorded{}, err
	}

	return TravelRecorded{
		Type:      TravelRecordedType,
		RecordID:  r.ID().String(),
		CourierID: r.CourierID(),
		StoreName: r.StoreName(),
		Location: Location{
			Latitude:  r.Location().Latitude(),
			Longitude: r.Location().Longitude(),
		},
		Timestamp: r.Timestamp().UTC(),
	}, nil
}

// EncodeTravelRecorded builds the JSON body of a TravelRecorded event.
func EncodeTravelRecorded(r *travel.Record) ([]byte, error) {
	event, err := NewTravelRecorded(r)
	if err != nil {
		return nil, err
	}

	body, err := json.Marshal(event)
	if err != nil {
		return nil, fmt.Errorf("marshal travel recorded event: %w", err)
	}
	return body, nil
}

// NoopPublisher drops every event. It is used when no broker is configured.
type NoopPublisher struct{}

var _ ports.TravelEventPublisher = NoopPublisher{}

func (NoopPublisher) PublishTravelRecorded(_ context.Context, r *travel.Record) error {
	return r.Validate()
}
