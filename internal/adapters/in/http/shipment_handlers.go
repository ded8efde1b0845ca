package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/shipment"
)

type addStatusRequest struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

type statusResponse struct {
	Name  string `json:"name"`
	Label string `json:"label"`
}

func (s *Server) handleAddStatus(c echo.Context) error {
	var req addStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewAddStatusCommand(req.Name, req.Label)
	if err != nil {
		return respondError(c, err)
	}

	added, err := s.addStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, statusResponse{Name: added.Name(), Label: added.Label()})
}

func (s *Server) handleListStatuses(c echo.Context) error {
	entries, err := s.listStatuses.Handle(c.Request().Context(), queries.NewListStatusesQuery())
	if err != nil {
		return respondError(c, err)
	}

	views := make([]statusResponse, 0, len(entries))
	for _, entry := range entries {
		views = append(views, statusResponse{Name: entry.Name, Label: entry.Label})
	}

	return c.JSON(http.StatusOK, views)
}

type createShipmentRequest struct {
	MerchantID     string          `json:"merchantId"`
	ZoneID         *string         `json:"zoneId,omitempty"`
	RecipientName  string          `json:"recipientName"`
	RecipientPhone string          `json:"recipientPhone"`
	Address        string          `json:"address"`
	ItemValue      decimal.Decimal `json:"itemValue"`
	CODAmount      decimal.Decimal `json:"codAmount"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
}

type shipmentResponse struct {
	ID             string          `json:"id"`
	TrackingNumber string          `json:"trackingNumber"`
	MerchantID     string          `json:"merchantId"`
	CourierID      *string         `json:"courierId,omitempty"`
	ZoneID         *string         `json:"zoneId,omitempty"`
	RecipientName  string          `json:"recipientName"`
	RecipientPhone string          `json:"recipientPhone"`
	Address        string          `json:"address"`
	ItemValue      decimal.Decimal `json:"itemValue"`
	CODAmount      decimal.Decimal `json:"codAmount"`
	DeliveryFee    decimal.Decimal `json:"deliveryFee"`
	StatusName     string          `json:"statusName"`
	StatusLabel    string          `json:"statusLabel"`
	CashReconciled bool            `json:"cashReconciled"`
	DeliveredAt    *time.Time      `json:"deliveredAt,omitempty"`
	PayoutID       *string         `json:"payoutId,omitempty"`
	CreatedAt      time.Time       `json:"createdAt"`
}

func toShipmentResponse(s *shipment.Shipment) shipmentResponse {
	return shipmentResponse{
		ID:             s.ID().String(),
		TrackingNumber: s.TrackingNumber().String(),
		MerchantID:     s.MerchantID().String(),
		CourierID:      optionalIDString(s.CourierID()),
		ZoneID:         optionalIDString(s.ZoneID()),
		RecipientName:  s.RecipientName(),
		RecipientPhone: s.RecipientPhone(),
		Address:        s.Address(),
		ItemValue:      s.ItemValue(),
		CODAmount:      s.CODAmount(),
		DeliveryFee:    s.DeliveryFee(),
		StatusName:     s.Status().Name(),
		StatusLabel:    s.Status().Label(),
		CashReconciled: s.CashReconciled(),
		DeliveredAt:    s.DeliveredAt(),
		PayoutID:       optionalIDString(s.PayoutID()),
		CreatedAt:      s.CreatedAt(),
	}
}

func optionalIDString(id *kernel.UUID) *string {
	if id == nil {
		return nil
	}
	raw := id.String()
	return &raw
}

func (s *Server) handleCreateShipment(c echo.Context) error {
	var req createShipmentRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return respondError(c, err)
	}

	var zoneID *kernel.UUID
	if req.ZoneID != nil {
		parsed, err := kernel.UUIDFromString(*req.ZoneID)
		if err != nil {
			return respondError(c, err)
		}
		zoneID = &parsed
	}

	cmd, err := commands.NewCreateShipmentCommand(
		kernel.NewUUID(),
		merchantID,
		zoneID,
		req.RecipientName,
		req.RecipientPhone,
		req.Address,
		req.ItemValue,
		req.CODAmount,
		req.DeliveryFee,
	)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.createShipment.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toShipmentResponse(created))
}

func (s *Server) handleGetShipmentByTracking(c echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(c.Param("trackingNumber"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetShipmentByTrackingQuery(trackingNumber)
	if err != nil {
		return respondError(c, err)
	}

	found, err := s.getShipmentByTracking.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}
	if found == nil {
		return c.JSON(http.StatusNotFound, errorResponse{Error: "shipment not found"})
	}

	view := shipmentResponse{
		ID:             found.ID.String(),
		TrackingNumber: found.TrackingNumber,
		MerchantID:     found.MerchantID.String(),
		RecipientName:  found.RecipientName,
		Address:        found.Address,
		CODAmount:      found.CODAmount,
		DeliveryFee:    found.DeliveryFee,
		StatusName:     found.StatusName,
		StatusLabel:    found.StatusLabel,
		CashReconciled: found.CashReconciled,
		DeliveredAt:    found.DeliveredAt,
		CreatedAt:      found.CreatedAt,
	}
	if found.CourierID != nil {
		raw := found.CourierID.String()
		view.CourierID = &raw
	}
	if found.PayoutID != nil {
		raw := found.PayoutID.String()
		view.PayoutID = &raw
	}

	return c.JSON(http.StatusOK, view)
}

type updateShipmentStatusRequest struct {
	StatusName string `json:"statusName"`
	Reason     string `json:"reason"`
}

func (s *Server) handleUpdateShipmentStatus(c echo.Context) error {
	trackingNumber, err := kernel.TrackingNumberFromString(c.Param("trackingNumber"))
	if err != nil {
		return respondError(c, err)
	}

	var req updateShipmentStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewUpdateShipmentStatusCommand(trackingNumber, req.StatusName, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updateShipmentStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponse(updated))
}

type assignCourierRequest struct {
	CourierID string `json:"courierId"`
}

func (s *Server) handleAssignCourier(c echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return respondError(c, err)
	}

	var req assignCourierRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewAssignCourierCommand(shipmentID, courierID)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.assignCourier.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toShipmentResponse(updated))
}

type createReturnRequest struct {
	Reason string `json:"reason"`
}

func (s *Server) handleCreateReturn(c echo.Context) error {
	originalID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return respondError(c, err)
	}

	var req createReturnRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewCreateReturnShipmentCommand(kernel.NewUUID(), originalID, req.Reason)
	if err != nil {
		return respondError(c, err)
	}

	reverse, err := s.createReturn.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toShipmentResponse(reverse))
}

func (s *Server) handleDeleteShipment(c echo.Context) error {
	shipmentID, err := kernel.UUIDFromString(c.Param("shipmentID"))
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewDeleteShipmentCommand(shipmentID)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.deleteShipment.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

type reconcileCashRequest struct {
	CourierID        string   `json:"courierId"`
	CashConfirmedIDs []string `json:"cashConfirmedIds"`
	ReturnedIDs      []string `json:"returnedIds"`
	ReturnReason     string   `json:"returnReason"`
}

func (s *Server) handleReconcileCash(c echo.Context) error {
	var req reconcileCashRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	courierID, err := kernel.UUIDFromString(req.CourierID)
	if err != nil {
		return respondError(c, err)
	}

	cashConfirmedIDs, err := parseIDs(req.CashConfirmedIDs)
	if err != nil {
		return respondError(c, err)
	}

	returnedIDs, err := parseIDs(req.ReturnedIDs)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewReconcileCashCommand(courierID, cashConfirmedIDs, returnedIDs, req.ReturnReason)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.reconcileCash.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}

func parseIDs(raw []string) ([]kernel.UUID, error) {
	ids := make([]kernel.UUID, 0, len(raw))
	for _, value := range raw {
		id, err := kernel.UUIDFromString(value)
		if err != nil {
			return nil, err
		}
		ids = append(ids, id)
	}
	return ids, nil
}

type updateCourierLocationRequest struct {
	X kernel.Coordinate `json:"x"`
	Y kernel.Coordinate `json:"y"`
}

func (s *Server) handleUpdateCourierLocation(c echo.Context) error {
	courierID, err := kernel.UUIDFromString(c.Param("courierID"))
	if err != nil {
		return respondError(c, err)
	}

	var req updateCourierLocationRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	location, err := kernel.NewLocation(req.X, req.Y)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewUpdateCourierLocationCommand(courierID, location)
	if err != nil {
		return respondError(c, err)
	}

	if err := s.updateCourierLocation.Handle(c.Request().Context(), cmd); err != nil {
		return respondError(c, err)
	}

	return c.NoContent(http.StatusNoContent)
}
