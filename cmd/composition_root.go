package cmd

import (
	"log/slog"
	"time"

	"marketplace/internal/adapters/out/postgres"
	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/jobs"

	"gorm.io/gorm"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
	clock      func() time.Time
}

func NewCompositionRoot(config Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		config:     config,
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
		clock:      time.Now,
	}
}

func (c *CompositionRoot) Clock() func() time.Time {
	return c.clock
}

func (c *CompositionRoot) CreateReviewShopCommandHandler() commands.ReviewShopCommandHandler {
	var f commands.ShopReviewUoWFactory = FuncShopReviewUoWFactory(func() commands.ShopReviewUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewShopCommandHandler(f)
}

func (c *CompositionRoot) CreateReviewShipperCommandHandler() commands.ReviewShipperCommandHandler {
	var f commands.AccountUoWFactory = FuncAccountUoWFactory(func() commands.AccountUoW {
		return c.uowFactory.Create()
	})
	return commands.NewReviewShipperCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	var f commands.FulfillmentUoWFactory = FuncFulfillmentUoWFactory(func() commands.FulfillmentUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateShipmentStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateComplaintCommandHandler() commands.CreateComplaintCommandHandler {
	return commands.NewCreateComplaintCommandHandler(c.complaintUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateAppendComplaintMessageCommandHandler() commands.AppendComplaintMessageCommandHandler {
	return commands.NewAppendComplaintMessageCommandHandler(c.complaintUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateUpdateComplaintStatusCommandHandler() commands.UpdateComplaintStatusCommandHandler {
	return commands.NewUpdateComplaintStatusCommandHandler(c.complaintUoWFactory(), c.clock)
}

func (c *CompositionRoot) CreateGetComplaintQueryHandler() queries.GetComplaintQueryHandler {
	return queries.NewGetComplaintQueryHandler(c.gormDB, c.clock)
}

func (c *CompositionRoot) CreateGetOverdueComplaintsQueryHandler() queries.GetOverdueComplaintsQueryHandler {
	return queries.NewGetOverdueComplaintsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingReviewsQueryHandler() queries.GetPendingReviewsQueryHandler {
	return queries.NewGetPendingReviewsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateJobManager(logger *slog.Logger) *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateGetOverdueComplaintsQueryHandler(),
		c.config.SLAMonitorSchedule,
		c.clock,
		logger,
	)
}

func (c *CompositionRoot) complaintUoWFactory() commands.ComplaintUoWFactory {
	return FuncComplaintUoWFactory(func() commands.ComplaintUoW {
		return c.uowFactory.Create()
	})
}

type FuncAccountUoWFactory func() commands.AccountUoW

func (f FuncAccountUoWFactory) Create() commands.AccountUoW {
	return f()
}

type FuncShopReviewUoWFactory func() commands.ShopReviewUoW

func (f FuncShopReviewUoWFactory) Create() commands.ShopReviewUoW {
	return f()
}

type FuncFulfillmentUoWFactory func() commands.FulfillmentUoW

func (f FuncFulfillmentUoWFactory) Create() commands.FulfillmentUoW {
	return f()
}

type FuncComplaintUoWFactory func() commands.ComplaintUoW

func (f FuncComplaintUoWFactory) Create() commands.ComplaintUoW {
	return f()
}
