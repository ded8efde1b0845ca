// Package http is the thin echo adapter of the shipment core. Handlers only
// parse the request, construct a command or query, and translate errors to
// status codes; every rule lives in the use case layer.
package http

import (
	"github.com/labstack/echo/v4"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
)

// Server wires the use case handlers to echo routes.
type Server struct {
	addStatus             commands.AddStatusCommandHandler
	createShipment        commands.CreateShipmentCommandHandler
	updateShipmentStatus  commands.UpdateShipmentStatusCommandHandler
	assignCourier         commands.AssignCourierCommandHandler
	deleteShipment        commands.DeleteShipmentCommandHandler
	createReturn          commands.CreateReturnShipmentCommandHandler
	reconcileCash         commands.ReconcileCashCommandHandler
	createPayout          commands.CreatePayoutCommandHandler
	updatePayoutStatus    commands.UpdatePayoutStatusCommandHandler
	updateCourierLocation commands.UpdateCourierLocationCommandHandler

	getShipmentByTracking queries.GetShipmentByTrackingQueryHandler
	getPendingPayouts     queries.GetPendingPayoutsQueryHandler
	getPayoutsForUser     queries.GetPayoutsForUserQueryHandler
	getPayoutByID         queries.GetPayoutByIDQueryHandler
	getPayoutItems        queries.GetPayoutItemsQueryHandler
	getMovementsForUser   queries.GetMovementsForUserQueryHandler
	listStatuses          queries.ListStatusesQueryHandler
}

// Handlers carries the use case handlers the server exposes.
type Handlers struct {
	AddStatus             commands.AddStatusCommandHandler
	CreateShipment        commands.CreateShipmentCommandHandler
	UpdateShipmentStatus  commands.UpdateShipmentStatusCommandHandler
	AssignCourier         commands.AssignCourierCommandHandler
	DeleteShipment        commands.DeleteShipmentCommandHandler
	CreateReturn          commands.CreateReturnShipmentCommandHandler
	ReconcileCash         commands.ReconcileCashCommandHandler
	CreatePayout          commands.CreatePayoutCommandHandler
	UpdatePayoutStatus    commands.UpdatePayoutStatusCommandHandler
	UpdateCourierLocation commands.UpdateCourierLocationCommandHandler

	GetShipmentByTracking queries.GetShipmentByTrackingQueryHandler
	GetPendingPayouts     queries.GetPendingPayoutsQueryHandler
	GetPayoutsForUser     queries.GetPayoutsForUserQueryHandler
	GetPayoutByID         queries.GetPayoutByIDQueryHandler
	GetPayoutItems        queries.GetPayoutItemsQueryHandler
	GetMovementsForUser   queries.GetMovementsForUserQueryHandler
	ListStatuses          queries.ListStatusesQueryHandler
}

// NewServer creates the HTTP adapter.
func NewServer(handlers Handlers) *Server {
	return &Server{
		addStatus:             handlers.AddStatus,
		createShipment:        handlers.CreateShipment,
		updateShipmentStatus:  handlers.UpdateShipmentStatus,
		assignCourier:         handlers.AssignCourier,
		deleteShipment:        handlers.DeleteShipment,
		createReturn:          handlers.CreateReturn,
		reconcileCash:         handlers.ReconcileCash,
		createPayout:          handlers.CreatePayout,
		updatePayoutStatus:    handlers.UpdatePayoutStatus,
		updateCourierLocation: handlers.UpdateCourierLocation,
		getShipmentByTracking: handlers.GetShipmentByTracking,
		getPendingPayouts:     handlers.GetPendingPayouts,
		getPayoutsForUser:     handlers.GetPayoutsForUser,
		getPayoutByID:         handlers.GetPayoutByID,
		getPayoutItems:        handlers.GetPayoutItems,
		getMovementsForUser:   handlers.GetMovementsForUser,
		listStatuses:          handlers.ListStatuses,
	}
}

// RegisterRoutes mounts all routes under /api/v1.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	v1 := e.Group("/api/v1")

	v1.POST("/statuses", s.handleAddStatus)
	v1.GET("/statuses", s.handleListStatuses)

	v1.POST("/shipments", s.handleCreateShipment)
	v1.GET("/shipments/track/:trackingNumber", s.handleGetShipmentByTracking)
	v1.POST("/shipments/track/:trackingNumber/status", s.handleUpdateShipmentStatus)
	v1.POST("/shipments/:shipmentID/assign", s.handleAssignCourier)
	v1.POST("/shipments/:shipmentID/return", s.handleCreateReturn)
	v1.DELETE("/shipments/:shipmentID", s.handleDeleteShipment)

	v1.POST("/reconciliations", s.handleReconcileCash)

	v1.POST("/payouts", s.handleCreatePayout)
	v1.POST("/payouts/:payoutID/status", s.handleUpdatePayoutStatus)
	v1.GET("/payouts/pending", s.handleGetPendingPayouts)
	v1.GET("/payouts/:payoutID", s.handleGetPayoutByID)
	v1.GET("/payouts/:payoutID/items", s.handleGetPayoutItems)
	v1.GET("/users/:userID/payouts", s.handleGetPayoutsForUser)
	v1.GET("/users/:userID/movements", s.handleGetMovementsForUser)

	v1.PUT("/couriers/:courierID/location", s.handleUpdateCourierLocation)
}
