package http

import (
	"net/http"

	notificationDomain "propertyhub-backend/internal/domain/notification"

	"github.com/labstack/echo/v4"
)

// NotificationHandler reads the append-only notification feed; no
// usecase layer because there is no business logic to wrap.
type NotificationHandler struct{ repo notificationDomain.Repository }

func NewNotificationHandler(repo notificationDomain.Repository) *NotificationHandler {
	return &NotificationHandler{repo: repo}
}

func (h *NotificationHandler) List(c echo.Context) error {
	userType := notificationDomain.UserType(c.Param("user_type"))
	if userType != notificationDomain.UserOwner && userType != notificationDomain.UserTenant {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "user type must be owner or tenant"})
	}
	userID, err := pathID(c, "user_id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid user id"})
	}
	out, err := h.repo.ListByUser(c.Request().Context(), userType, userID)
	if err != nil {
		return jsonError(c, err)
	}
	return c.JSON(http.StatusOK, out)
}

func (h *NotificationHandler) MarkRead(c echo.Context) error {
	id, err := pathID(c, "id")
	if err != nil {
		return c.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid notification id"})
	}
	if err := h.repo.MarkRead(c.Request().Context(), id); err != nil {
		return jsonError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
