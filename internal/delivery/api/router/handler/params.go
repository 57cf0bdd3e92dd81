package handler

import (
	"net/http"

	"masjidcast/internal/delivery/api/response"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

func parseIDParam(c echo.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, false
	}

	return id, true
}

// HealthCheck is a simple handler to check if the service is up.
func HealthCheck(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{"status": "ok"})
}
