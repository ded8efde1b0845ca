package cmd

import (
	"gorm.io/gorm"

	"parcel/internal/adapters/out/postgres"
	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
)

// CompositionRoot wires the unit of work factory into every use case
// handler. The Func*UoWFactory adapters bridge the full GORM unit of work to
// the narrowed factory interface each handler depends on.
type CompositionRoot struct {
	gormDB     *gorm.DB
	uowFactory postgres.GormUnitOfWorkFactory
}

func NewCompositionRoot(_ Config, gormDB *gorm.DB) CompositionRoot {
	return CompositionRoot{
		gormDB:     gormDB,
		uowFactory: *postgres.NewGormUnitOfWorkFactory(gormDB),
	}
}

func (c *CompositionRoot) CreateAddStatusCommandHandler() commands.AddStatusCommandHandler {
	var f commands.StatusUoWFactory = FuncStatusUoWFactory(func() commands.StatusUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAddStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateShipmentCommandHandler() commands.CreateShipmentCommandHandler {
	return commands.NewCreateShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateUpdateShipmentStatusCommandHandler() commands.UpdateShipmentStatusCommandHandler {
	return commands.NewUpdateShipmentStatusCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateDeleteShipmentCommandHandler() commands.DeleteShipmentCommandHandler {
	return commands.NewDeleteShipmentCommandHandler(c.shipmentUoWFactory())
}

func (c *CompositionRoot) CreateAssignCourierCommandHandler() commands.AssignCourierCommandHandler {
	var f commands.AssignUoWFactory = FuncAssignUoWFactory(func() commands.AssignUoW {
		return c.uowFactory.Create()
	})
	return commands.NewAssignCourierCommandHandler(f)
}

func (c *CompositionRoot) CreateCreateReturnShipmentCommandHandler() commands.CreateReturnShipmentCommandHandler {
	var f commands.ReturnUoWFactory = FuncReturnUoWFactory(func() commands.ReturnUoW {
		return c.uowFactory.Create()
	})
	return commands.NewCreateReturnShipmentCommandHandler(f)
}

func (c *CompositionRoot) CreateReconcileCashCommandHandler() commands.ReconcileCashCommandHandler {
	var f commands.ReconcileUoWFactory = FuncReconcileUoWFactory(func() commands.ReconcileUoW {
		return c.uowFactory.Create()
	})
	returnHandler := c.CreateCreateReturnShipmentCommandHandler()
	return commands.NewReconcileCashCommandHandler(f, &returnHandler)
}

func (c *CompositionRoot) CreateCreatePayoutCommandHandler() commands.CreatePayoutCommandHandler {
	return commands.NewCreatePayoutCommandHandler(c.SettlementUoWFactory())
}

func (c *CompositionRoot) CreateUpdatePayoutStatusCommandHandler() commands.UpdatePayoutStatusCommandHandler {
	var f commands.PayoutUoWFactory = FuncPayoutUoWFactory(func() commands.PayoutUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdatePayoutStatusCommandHandler(f)
}

func (c *CompositionRoot) CreateUpdateCourierLocationCommandHandler() commands.UpdateCourierLocationCommandHandler {
	var f commands.UserUoWFactory = FuncUserUoWFactory(func() commands.UserUoW {
		return c.uowFactory.Create()
	})
	return commands.NewUpdateCourierLocationCommandHandler(f)
}

// SettlementUoWFactory is exported because the settlement sweep job needs it
// alongside the payout handler.
func (c *CompositionRoot) SettlementUoWFactory() commands.SettlementUoWFactory {
	return FuncSettlementUoWFactory(func() commands.SettlementUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateGetShipmentByTrackingQueryHandler() queries.GetShipmentByTrackingQueryHandler {
	return queries.NewGetShipmentByTrackingQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPendingPayoutsQueryHandler() queries.GetPendingPayoutsQueryHandler {
	return queries.NewGetPendingPayoutsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayoutsForUserQueryHandler() queries.GetPayoutsForUserQueryHandler {
	return queries.NewGetPayoutsForUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayoutByIDQueryHandler() queries.GetPayoutByIDQueryHandler {
	return queries.NewGetPayoutByIDQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetPayoutItemsQueryHandler() queries.GetPayoutItemsQueryHandler {
	return queries.NewGetPayoutItemsQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateGetMovementsForUserQueryHandler() queries.GetMovementsForUserQueryHandler {
	return queries.NewGetMovementsForUserQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateListStatusesQueryHandler() queries.ListStatusesQueryHandler {
	return queries.NewListStatusesQueryHandler(c.gormDB)
}

func (c *CompositionRoot) shipmentUoWFactory() commands.ShipmentUoWFactory {
	return FuncShipmentUoWFactory(func() commands.ShipmentUoW {
		return c.uowFactory.Create()
	})
}

type FuncStatusUoWFactory func() commands.StatusUoW

func (f FuncStatusUoWFactory) Create() commands.StatusUoW {
	return f()
}

type FuncShipmentUoWFactory func() commands.ShipmentUoW

func (f FuncShipmentUoWFactory) Create() commands.ShipmentUoW {
	return f()
}

type FuncAssignUoWFactory func() commands.AssignUoW

func (f FuncAssignUoWFactory) Create() commands.AssignUoW {
	return f()
}

type FuncReturnUoWFactory func() commands.ReturnUoW

func (f FuncReturnUoWFactory) Create() commands.ReturnUoW {
	return f()
}

type FuncReconcileUoWFactory func() commands.ReconcileUoW

func (f FuncReconcileUoWFactory) Create() commands.ReconcileUoW {
	return f()
}

type FuncSettlementUoWFactory func() commands.SettlementUoW

func (f FuncSettlementUoWFactory) Create() commands.SettlementUoW {
	return f()
}

type FuncPayoutUoWFactory func() commands.PayoutUoW

func (f FuncPayoutUoWFactory) Create() commands.PayoutUoW {
	return f()
}

type FuncUserUoWFactory func() commands.UserUoW

func (f FuncUserUoWFactory) Create() commands.UserUoW {
	return f()
}
