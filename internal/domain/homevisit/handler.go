package homevisit

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"

	"github.com/homevisit/homevisit/internal/platform/catalog"
	"github.com/homevisit/homevisit/pkg/pagination"
)

// Handler exposes the home visit API over HTTP.
type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

// Register mounts the home visit routes on the given group.
func (h *Handler) Register(g *echo.Group) {
	hv := g.Group("/home-visit")
	hv.GET("/options", h.GetOptions)
	hv.GET("/windows", h.GetWindows)
	hv.POST("/validate", h.ValidateSubmission)
	hv.POST("/bookings", h.CreateBooking)
	hv.GET("/bookings", h.ListBookings)
	hv.GET("/bookings/:id", h.GetBooking)
}

// GetOptions returns the option catalog, optionally narrowed to one
// category and translated to the requested language.
func (h *Handler) GetOptions(c echo.Context) error {
	opts, err := h.service.Options(c.QueryParam("category"), c.QueryParam("language"))
	if err != nil {
		switch {
		case errors.Is(err, catalog.ErrUnknownCategory):
			return echo.NewHTTPError(http.StatusNotFound, "unknown category")
		case errors.Is(err, catalog.ErrUnsupportedLanguage):
			return echo.NewHTTPError(http.StatusBadRequest, "unsupported language")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load options")
	}
	return c.JSON(http.StatusOK, opts)
}

// GetWindows returns the selectable hour ranges for a visit date. The
// optional from parameter narrows the end-hour range once a start hour
// is chosen.
func (h *Handler) GetWindows(c echo.Context) error {
	date := c.QueryParam("date")
	if date == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "date is required")
	}

	var chosenFrom *int
	if raw := c.QueryParam("from"); raw != "" {
		from, err := strconv.Atoi(raw)
		if err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "from must be an integer hour")
		}
		chosenFrom = &from
	}

	windows, err := h.service.Windows(date, chosenFrom)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "date must be formatted YYYY-MM-DD")
	}
	return c.JSON(http.StatusOK, windows)
}

// ValidateSubmission runs the full rule set over a candidate submission
// without storing anything. It always answers 200; the verdict is in
// the body.
func (h *Handler) ValidateSubmission(c echo.Context) error {
	var in SubmissionInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}
	return c.JSON(http.StatusOK, h.service.Validate(in))
}

// CreateBooking validates a submission and stores a confirmation when
// it passes. Invalid submissions answer 422 with the error list.
func (h *Handler) CreateBooking(c echo.Context) error {
	var in SubmissionInput
	if err := c.Bind(&in); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid request body")
	}

	conf, resp := h.service.Submit(in)
	if conf == nil {
		return c.JSON(http.StatusUnprocessableEntity, resp)
	}
	return c.JSON(http.StatusCreated, conf)
}

// GetBooking returns a stored confirmation by ID.
func (h *Handler) GetBooking(c echo.Context) error {
	conf, err := h.service.GetBooking(c.Param("id"))
	if err != nil {
		if errors.Is(err, ErrBookingNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "booking not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "failed to load booking")
	}
	return c.JSON(http.StatusOK, conf)
}

// ListBookings returns a paginated list of stored confirmations.
func (h *Handler) ListBookings(c echo.Context) error {
	p := pagination.FromContext(c)
	items, total := h.service.ListBookings(p.Limit, p.Offset)
	return c.JSON(http.StatusOK, pagination.NewResponse(items, total, p.Limit, p.Offset))
}
