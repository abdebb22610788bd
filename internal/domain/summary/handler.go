package summary

import (
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/wardscribe/wardscribe/internal/platform/apperror"
	"github.com/wardscribe/wardscribe/pkg/pagination"
)

type Handler struct {
	svc *Service
}

func NewHandler(svc *Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) RegisterRoutes(api *echo.Group) {
	api.POST("/patients/:id/summary", h.Generate)
	api.GET("/patients/:id/summary", h.GetLatest)
	api.PUT("/patients/:id/summary", h.Review)
	api.GET("/patients/:id/summary/versions", h.Versions)
}

func parsePatientID(c echo.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return 0, apperror.Validation([]apperror.FieldViolation{
			{Field: "id", Message: "must be an integer"},
		})
	}
	return id, nil
}

func (h *Handler) Generate(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	sum, err := h.svc.Generate(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, sum)
}

func (h *Handler) GetLatest(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	sum, err := h.svc.Latest(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) Review(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	var in ReviewInput
	if err := c.Bind(&in); err != nil {
		return apperror.Validation([]apperror.FieldViolation{
			{Field: "body", Message: "malformed request body"},
		})
	}
	sum, err := h.svc.Review(c.Request().Context(), patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, sum)
}

func (h *Handler) Versions(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.Versions(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
