package cmd

import (
	"log/slog"

	httpadapter "tracking/internal/adapters/in/http"
	"tracking/internal/adapters/out/catalog"
	"tracking/internal/adapters/out/postgres"
	"tracking/internal/adapters/out/postgres/storerepo"
	"tracking/internal/adapters/out/postgres/travelrepo"
	"tracking/internal/core/application/usecases/commands"
	"tracking/internal/core/application/usecases/queries"
	"tracking/internal/core/ports"
	"tracking/internal/jobs"

	"github.com/labstack/echo/v4"
	"gorm.io/gorm"
)

type CompositionRoot struct {
	config       Config
	gormDB       *gorm.DB
	uowFactory   postgres.GormUnitOfWorkFactory
	storeCatalog *catalog.StoreCatalog
	publisher    ports.TravelEventPublisher
	logger       *slog.Logger
}

func NewCompositionRoot(
	config Config,
	gormDB *gorm.DB,
	publisher ports.TravelEventPublisher,
	logger *slog.Logger,
) CompositionRoot {
	return CompositionRoot{
		config:       config,
		gormDB:       gormDB,
		uowFactory:   *postgres.NewGormUnitOfWorkFactory(gormDB),
		storeCatalog: catalog.NewStoreCatalog(storerepo.NewGormStoreRepository(gormDB), logger),
		publisher:    publisher,
		logger:       logger,
	}
}

func (c *CompositionRoot) StoreCatalog() *catalog.StoreCatalog {
	return c.storeCatalog
}

func (c *CompositionRoot) CreateCreateStoreCommandHandler() commands.CreateStoreCommandHandler {
	var f commands.StoreUoWFactory = FuncStoreUoWFactory(func() commands.StoreUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateStoreCommandHandler(f, c.storeCatalog)
}

func (c *CompositionRoot) CreateLogCourierLocationCommandHandler() commands.LogCourierLocationCommandHandler {
	var f commands.TravelUoWFactory = FuncTravelUoWFactory(func() commands.TravelUoW {
		return c.uowFactory.Create()
	})
	return commands.NewLogCourierLocationCommandHandler(
		f,
		c.storeCatalog,
		c.publisher,
		c.config.ReentrySerialize,
		c.logger,
	)
}

func (c *CompositionRoot) CreateGetAllStoresQueryHandler() queries.GetAllStoresQueryHandler {
	return queries.NewGetAllStoresQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPastTravelsQueryHandler() queries.GetPastTravelsQueryHandler {
	return queries.NewGetPastTravelsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetTravelsInRangeQueryHandler() queries.GetTravelsInRangeQueryHandler {
	return queries.NewGetTravelsInRangeQueryHandler(travelrepo.NewGormTravelRecordRepository(c.gormDB))
}

func (c *CompositionRoot) CreateGetTotalTravelDistanceQueryHandler() queries.GetTotalTravelDistanceQueryHandler {
	return queries.NewGetTotalTravelDistanceQueryHandler(travelrepo.NewGormTravelRecordRepository(c.gormDB))
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(c.storeCatalog, c.config.StoreCatalogRefreshSpec, c.logger)
}

func (c *CompositionRoot) CreateRouter() *echo.Echo {
	createStore := c.CreateCreateStoreCommandHandler()
	logCourierLocation := c.CreateLogCourierLocationCommandHandler()

	server := httpadapter.NewServer(
		&createStore,
		&logCourierLocation,
		c.CreateGetAllStoresQueryHandler(),
		c.CreateGetPastTravelsQueryHandler(),
		c.CreateGetTravelsInRangeQueryHandler(),
		c.CreateGetTotalTravelDistanceQueryHandler(),
		c.logger,
	)
	return httpadapter.NewRouter(server, c.logger)
}

type FuncStoreUoWFactory func() commands.StoreUoW

func (f FuncStoreUoWFactory) Create() commands.StoreUoW {
	return f()
}

type FuncTravelUoWFactory func() commands.TravelUoW

func (f FuncTravelUoWFactory) Create() commands.TravelUoW {
	return f()
}
