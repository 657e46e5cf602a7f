package http

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/domain/model/kernel"
	"tracking/internal/generated/servers"

	"github.com/labstack/echo/v4"
	"github.com/samber/lo"
)

type (
	CreateStoreHandler interface {
		Handle(ctx context.Context, cmd commands.CreateStoreCommand) (kernel.UUID, error)
	}

	LogCourierLocationHandler interface {
		Handle(ctx context.Context, cmd commands.LogCourierLocationCommand) (commands.LogCourierLocationResult, error)
	}

	GetAllStoresHandler interface {
		Handle(ctx context.Context, query queries.GetAllStoresQuery) ([]queries.GetAllStoresQueryResponse, error)
	}

	GetPastTravelsHandler interface {
		Handle(ctx context.Context, query queries.GetPastTravelsQuery) ([]queries.TravelResponse, error)
	}

	GetTravelsInRangeHandler interface {
		Handle(ctx context.Context, query queries.GetTravelsInRangeQuery) ([]queries.TravelResponse, error)
	}

	GetTotalTravelDistanceHandler interface {
		Handle(ctx context.Context, query queries.GetTotalTravelDistanceQuery) (queries.GetTotalTravelDistanceQueryResponse, error)
	}
)

// Server implements servers.ServerInterface on top of the application use cases.
type Server struct {
	// Command handlers
	createStoreHandler        CreateStoreHandler
	logCourierLocationHandler LogCourierLocationHandler

	// Query handlers
	getAllStoresHandler           GetAllStoresHandler
	getPastTravelsHandler         GetPastTravelsHandler
	getTravelsInRangeHandler      GetTravelsInRangeHandler
	getTotalTravelDistanceHandler GetTotalTravelDistanceHandler

	logger *slog.Logger
	now    func() time.Time
}

var _ servers.ServerInterface = (*Server)(nil)

func NewServer(
	createStoreHandler CreateStoreHandler,
	logCourierLocationHandler LogCourierLocationHandler,
	getAllStoresHandler GetAllStoresHandler,
	getPastTravelsHandler GetPastTravelsHandler,
	getTravelsInRangeHandler GetTravelsInRangeHandler,
	getTotalTravelDistanceHandler GetTotalTravelDistanceHandler,
	logger *slog.Logger,
) *Server {
	return &Server{
		createStoreHandler:            createStoreHandler,
		logCourierLocationHandler:     logCourierLocationHandler,
		getAllStoresHandler:           getAllStoresHandler,
		getPastTravelsHandler:         getPastTravelsHandler,
		getTravelsInRangeHandler:      getTravelsInRangeHandler,
		getTotalTravelDistanceHandler: getTotalTravelDistanceHandler,
		logger:                        logger.With("component", "http_server"),
		now:                           time.Now,
	}
}

// GetStores handles GET /api/v1/stores.
func (s *Server) GetStores(ctx echo.Context) error {
	stores, err := s.getAllStoresHandler.Handle(ctx.Request().Context(), queries.NewGetAllStoresQuery())
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve stores")
	}

	response := lo.Map(stores, func(st queries.GetAllStoresQueryResponse, _ int) servers.Store {
		return servers.Store{
			Id:        st.ID.Google(),
			Name:      st.Name,
			Location:  toLocation(st.Location),
			CreatedAt: st.CreatedAt,
		}
	})

	return ctx.JSON(http.StatusOK, response)
}

// CreateStore handles POST /api/v1/stores. Without createdAt the store is
// created as of now.
func (s *Server) CreateStore(ctx echo.Context) error {
	var body servers.NewStore
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewCoordinate(body.Location.Latitude, body.Location.Longitude)
	if err != nil {
		return s.fail(ctx, err, "Invalid store location")
	}

	createdAt := s.now().UTC()
	if body.CreatedAt != nil {
		createdAt = body.CreatedAt.UTC()
	}

	cmd, err := commands.NewCreateStoreCommand(body.Name, location, createdAt)
	if err != nil {
		return s.fail(ctx, err, "Invalid store data")
	}

	id, err := s.createStoreHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Failed to create store")
	}

	return ctx.JSON(http.StatusCreated, servers.Store{
		Id:        id.Google(),
		Name:      cmd.Name(),
		Location:  toLocation(cmd.Location()),
		CreatedAt: cmd.CreatedAt(),
	})
}

// LogCourierLocation handles POST /api/v1/couriers/locations.
func (s *Server) LogCourierLocation(ctx echo.Context) error {
	var body servers.LocationPing
	if err := ctx.Bind(&body); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	location, err := kernel.NewCoordinate(body.Location.Latitude, body.Location.Longitude)
	if err != nil {
		return s.fail(ctx, err, "Invalid courier location")
	}

	cmd, err := commands.NewLogCourierLocationCommand(body.CourierId.String(), location, body.Timestamp)
	if err != nil {
		return s.fail(ctx, err, "Invalid location ping")
	}

	result, err := s.logCourierLocationHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return s.fail(ctx, err, "Location was not recorded")
	}

	return ctx.JSON(http.StatusCreated, servers.LocationAccepted{
		RecordId:  result.RecordID.Google(),
		StoreName: result.StoreName,
		Timestamp: result.Timestamp,
	})
}

// GetCourierTravels handles GET /api/v1/couriers/{courierId}/travels.
func (s *Server) GetCourierTravels(ctx echo.Context, courierId servers.CourierId) error {
	query, err := queries.NewGetPastTravelsQuery(courierId.String())
	if err != nil {
		return s.fail(ctx, err, "Invalid courier id")
	}

	travels, err := s.getPastTravelsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve travels")
	}

	return ctx.JSON(http.StatusOK, lo.Map(travels, toTravel))
}

// SearchCourierTravels handles GET /api/v1/couriers/{courierId}/travels/search.
func (s *Server) SearchCourierTravels(
	ctx echo.Context,
	courierId servers.CourierId,
	params servers.SearchCourierTravelsParams,
) error {
	query, err := queries.NewGetTravelsInRangeQuery(courierId.String(), params.StoreName, params.Start, params.End)
	if err != nil {
		return s.fail(ctx, err, "Invalid search")
	}

	travels, err := s.getTravelsInRangeHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to retrieve travels")
	}

	return ctx.JSON(http.StatusOK, lo.Map(travels, toTravel))
}

// GetCourierTotalDistance handles GET /api/v1/couriers/{courierId}/travels/total-distance.
func (s *Server) GetCourierTotalDistance(
	ctx echo.Context,
	courierId servers.CourierId,
	params servers.GetCourierTotalDistanceParams,
) error {
	unit := kernel.Kilometers
	if params.Unit != nil {
		var err error
		if unit, err = kernel.ParseDistanceUnit(*params.Unit); err != nil {
			return s.fail(ctx, err, "Invalid distance unit")
		}
	}

	query, err := queries.NewGetTotalTravelDistanceQuery(courierId.String(), unit)
	if err != nil {
		return s.fail(ctx, err, "Invalid total distance query")
	}

	distance, err := s.getTotalTravelDistanceHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return s.fail(ctx, err, "Failed to compute total distance")
	}

	return ctx.JSON(http.StatusOK, servers.TotalDistance{
		CourierId:  distance.CourierID,
		Kilometers: distance.Kilometers,
		Unit:       distance.Unit.String(),
		Distance:   distance.Distance,
		Formatted:  distance.Formatted,
	})
}

// fail writes the error response for err. Client errors carry the error text,
// server errors only the generic message.
func (s *Server) fail(ctx echo.Context, err error, message string) error {
	status := statusFor(err)
	if status == http.StatusInternalServerError {
		s.logger.ErrorContext(ctx.Request().Context(), message,
			"method", ctx.Request().Method,
			"path", ctx.Path(),
			"error", err)
		return ctx.JSON(status, servers.Error{Code: int32(status), Message: message})
	}

	return ctx.JSON(status, servers.Error{Code: int32(status), Message: message + ": " + err.Error()})
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, servers.Error{Code: http.StatusBadRequest, Message: message})
}

func toLocation(c kernel.Coordinate) servers.Location {
	return servers.Location{Latitude: c.Latitude(), Longitude: c.Longitude()}
}

func toTravel(t queries.TravelResponse, _ int) servers.Travel {
	return servers.Travel{
		Id:        t.ID.Google(),
		CourierId: t.CourierID,
		StoreName: t.StoreName,
		Location:  toLocation(t.Location),
		Timestamp: t.Timestamp,
	}
}
