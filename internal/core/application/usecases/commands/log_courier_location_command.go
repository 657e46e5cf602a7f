package commands

import (
	"errors"
	"time"

	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/core/domain/model/travel"
	"tracking/internal/pkg/guard"
)

var ErrLogCourierLocationCommandIsNotConstructed = errors.New(
	"LogCourierLocationCommand must be created via NewLogCourierLocationCommand constructor",
)

// LogCourierLocationCommand carries one location ping to evaluate.
type LogCourierLocationCommand struct {
	ping travel.LocationPing

	guard guard.ConstructorGuard
}

func NewLogCourierLocationCommand(
	courierID string,
	location kernel.Coordinate,
	timestamp time.Time,
) (LogCourierLocationCommand, error) {
	ping, err := travel.NewLocationPing(courierID, location, timestamp)
	if err != nil {
		return LogCourierLocationCommand{}, err
	}

	return LogCourierLocationCommand{
		ping:  ping,
		guard: guard.NewConstructorGuard(),
	}, nil
}

func (c LogCourierLocationCommand) Validate() error {
	return c.guard.Validate(ErrLogCourierLocationCommandIsNotConstructed)
}

func (c LogCourierLocationCommand) Ping() travel.LocationPing {
	return c.ping
}
