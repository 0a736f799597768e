package handler

import (
	"log/slog"
	"net/http"

	"ecodeli/internal/delivery/http/response"
	"ecodeli/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ApplicationHandlerParams holds dependencies for ApplicationHandler, injected by Fx.
type ApplicationHandlerParams struct {
	fx.In

	ApplicationUC usecase.ApplicationUsecase
	Logger        *slog.Logger
}

// ApplicationHandler serves the application lifecycle for deliverers and clients.
type ApplicationHandler struct {
	applicationUC usecase.ApplicationUsecase
	logger        *slog.Logger
}

// NewApplicationHandler is the constructor for ApplicationHandler
func NewApplicationHandler(params ApplicationHandlerParams) *ApplicationHandler {
	return &ApplicationHandler{
		applicationUC: params.ApplicationUC,
		logger:        params.Logger,
	}
}

// ApplyRequest is the body of POST /deliverer/announcements/:id/applications.
type ApplyRequest struct {
	ProposedPrice *float64 `json:"proposed_price,omitempty" validate:"omitempty,min=0"`
	Message       string   `json:"message" validate:"max=1000"`
}

// Apply records the calling deliverer's application on an announcement.
func (h *ApplicationHandler) Apply(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}
	announcementID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	var req ApplyRequest
	if err := bindAndValidate(c, &req); err != nil {
		return err
	}

	application, err := h.applicationUC.Apply(c.Request().Context(), delivererID, announcementID, &usecase.ApplyInput{
		ProposedPrice: req.ProposedPrice,
		Message:       req.Message,
	})
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusCreated, application, "Application submitted successfully")
}

// ListMine lists the calling deliverer's applications.
func (h *ApplicationHandler) ListMine(c echo.Context) error {
	delivererID, err := callerID(c)
	if err != nil {
		return err
	}

	applications, err := h.applicationUC.ListDelivererApplications(c.Request().Context(), delivererID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, nonNil(applications), "Applications retrieved successfully")
}

// Accept accepts an application on one of the calling client's announcements.
func (h *ApplicationHandler) Accept(c echo.Context) error {
	clientID, err := callerID(c)
	if err != nil {
		return err
	}
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	application, err := h.applicationUC.Accept(c.Request().Context(), clientID, applicationID)
	if err != nil {
		return err
	}

	h.logger.InfoContext(c.Request().Context(), "Application accepted",
		slog.String("application_id", application.ID.String()),
		slog.String("announcement_id", application.AnnouncementID.String()),
	)

	return response.Success(c, http.StatusOK, application, "Application accepted successfully")
}

// Reject rejects an application on one of the calling client's announcements.
func (h *ApplicationHandler) Reject(c echo.Context) error {
	clientID, err := callerID(c)
	if err != nil {
		return err
	}
	applicationID, err := pathID(c, "id")
	if err != nil {
		return err
	}

	application, err := h.applicationUC.Reject(c.Request().Context(), clientID, applicationID)
	if err != nil {
		return err
	}

	return response.Success(c, http.StatusOK, application, "Application rejected successfully")
}
