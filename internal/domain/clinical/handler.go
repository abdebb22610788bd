package clinical

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
	api.POST("/patients/:id/clinical-data", h.Create)
	api.GET("/patients/:id/clinical-data", h.GetLatest)
	api.GET("/patients/:id/clinical-data/history", h.List)
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

func (h *Handler) Create(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	var in CreateInput
	if err := c.Bind(&in); err != nil {
		return apperror.Validation([]apperror.FieldViolation{
			{Field: "body", Message: "malformed request body"},
		})
	}
	d, err := h.svc.Create(c.Request().Context(), patientID, in)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusCreated, d)
}

func (h *Handler) GetLatest(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	d, err := h.svc.LatestForPatient(c.Request().Context(), patientID)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, d)
}

func (h *Handler) List(c echo.Context) error {
	patientID, err := parsePatientID(c)
	if err != nil {
		return err
	}
	pg := pagination.FromContext(c)
	items, total, err := h.svc.ListForPatient(c.Request().Context(), patientID, pg.Limit, pg.Offset)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, pg.Limit, pg.Offset))
}
