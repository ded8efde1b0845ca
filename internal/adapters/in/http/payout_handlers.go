package http

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"

	"parcel/internal/core/application/usecases/commands"
	"parcel/internal/core/application/usecases/queries"
	"parcel/internal/core/domain/model/kernel"
	"parcel/internal/core/domain/model/payout"
)

type createPayoutRequest struct {
	UserID      string    `json:"userId"`
	PayoutType  string    `json:"payoutType"`
	PeriodStart time.Time `json:"periodStart"`
	PeriodEnd   time.Time `json:"periodEnd"`
}

type payoutResponse struct {
	ID          string          `json:"id"`
	UserID      string          `json:"userId"`
	PayoutType  string          `json:"payoutType"`
	StatusName  string          `json:"statusName"`
	StatusLabel string          `json:"statusLabel,omitempty"`
	PeriodStart time.Time       `json:"periodStart"`
	PeriodEnd   time.Time       `json:"periodEnd"`
	NetAmount   decimal.Decimal `json:"netAmount"`
	PaidAt      *time.Time      `json:"paidAt,omitempty"`
	CreatedAt   time.Time       `json:"createdAt"`
}

func toPayoutResponse(p *payout.Payout) payoutResponse {
	return payoutResponse{
		ID:          p.ID().String(),
		UserID:      p.UserID().String(),
		PayoutType:  p.PayoutType().String(),
		StatusName:  p.Status().Name(),
		StatusLabel: p.Status().Label(),
		PeriodStart: p.PeriodStart(),
		PeriodEnd:   p.PeriodEnd(),
		NetAmount:   p.NetAmount(),
		PaidAt:      p.PaidAt(),
		CreatedAt:   p.CreatedAt(),
	}
}

func (s *Server) handleCreatePayout(c echo.Context) error {
	var req createPayoutRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondError(c, err)
	}

	cmd, err := commands.NewCreatePayoutCommand(userID, payout.Type(req.PayoutType), req.PeriodStart, req.PeriodEnd)
	if err != nil {
		return respondError(c, err)
	}

	created, err := s.createPayout.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusCreated, toPayoutResponse(created))
}

type updatePayoutStatusRequest struct {
	StatusName string `json:"statusName"`
}

func (s *Server) handleUpdatePayoutStatus(c echo.Context) error {
	payoutID, err := kernel.UUIDFromString(c.Param("payoutID"))
	if err != nil {
		return respondError(c, err)
	}

	var req updatePayoutStatusRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, errorResponse{Error: err.Error()})
	}

	cmd, err := commands.NewUpdatePayoutStatusCommand(payoutID, req.StatusName)
	if err != nil {
		return respondError(c, err)
	}

	updated, err := s.updatePayoutStatus.Handle(c.Request().Context(), cmd)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toPayoutResponse(updated))
}

func toPayoutView(r queries.PayoutResponse) payoutResponse {
	return payoutResponse{
		ID:          r.ID.String(),
		UserID:      r.UserID.String(),
		PayoutType:  r.PayoutType,
		StatusName:  r.StatusName,
		PeriodStart: r.PeriodStart,
		PeriodEnd:   r.PeriodEnd,
		NetAmount:   r.NetAmount,
		PaidAt:      r.PaidAt,
		CreatedAt:   r.CreatedAt,
	}
}

func toPayoutViews(rs []queries.PayoutResponse) []payoutResponse {
	views := make([]payoutResponse, 0, len(rs))
	for _, r := range rs {
		views = append(views, toPayoutView(r))
	}
	return views
}

type payoutItemResponse struct {
	ID         string          `json:"id"`
	PayoutID   string          `json:"payoutId"`
	SourceType string          `json:"sourceType"`
	SourceID   string          `json:"sourceId"`
	Amount     decimal.Decimal `json:"amount"`
}

func (s *Server) handleGetPendingPayouts(c echo.Context) error {
	result, err := s.getPendingPayouts.Handle(c.Request().Context(), queries.NewGetPendingPayoutsQuery())
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toPayoutViews(result))
}

func (s *Server) handleGetPayoutByID(c echo.Context) error {
	payoutID, err := kernel.UUIDFromString(c.Param("payoutID"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetPayoutByIDQuery(payoutID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getPayoutByID.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toPayoutView(result))
}

func (s *Server) handleGetPayoutItems(c echo.Context) error {
	payoutID, err := kernel.UUIDFromString(c.Param("payoutID"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetPayoutItemsQuery(payoutID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getPayoutItems.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]payoutItemResponse, 0, len(result))
	for _, item := range result {
		views = append(views, payoutItemResponse{
			ID:         item.ID.String(),
			PayoutID:   item.PayoutID.String(),
			SourceType: item.SourceType,
			SourceID:   item.SourceID.String(),
			Amount:     item.Amount,
		})
	}

	return c.JSON(http.StatusOK, views)
}

func (s *Server) handleGetPayoutsForUser(c echo.Context) error {
	userID, err := kernel.UUIDFromString(c.Param("userID"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetPayoutsForUserQuery(userID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getPayoutsForUser.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	return c.JSON(http.StatusOK, toPayoutViews(result))
}

type movementResponse struct {
	ID              string          `json:"id"`
	UserID          string          `json:"userId"`
	TransactionType string          `json:"transactionType"`
	Amount          decimal.Decimal `json:"amount"`
	Status          string          `json:"status"`
	CreatedAt       time.Time       `json:"createdAt"`
}

func (s *Server) handleGetMovementsForUser(c echo.Context) error {
	userID, err := kernel.UUIDFromString(c.Param("userID"))
	if err != nil {
		return respondError(c, err)
	}

	query, err := queries.NewGetMovementsForUserQuery(userID)
	if err != nil {
		return respondError(c, err)
	}

	result, err := s.getMovementsForUser.Handle(c.Request().Context(), query)
	if err != nil {
		return respondError(c, err)
	}

	views := make([]movementResponse, 0, len(result))
	for _, movement := range result {
		views = append(views, movementResponse{
			ID:              movement.ID.String(),
			UserID:          movement.UserID.String(),
			TransactionType: movement.TransactionType,
			Amount:          movement.Amount,
			Status:          movement.Status,
			CreatedAt:       movement.CreatedAt,
		})
	}

	return c.JSON(http.StatusOK, views)
}
