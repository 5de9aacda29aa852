package api

import (
	"errors"
	"net/http"

	"github.com/Domenick1991/flightroutes/internal/export"
	"github.com/Domenick1991/flightroutes/internal/registry"
	"github.com/Domenick1991/flightroutes/internal/service/routes"
	"github.com/gin-gonic/gin"
)

type DatasetHandler struct {
	service routes.RouteUseCase
}

func NewDatasetHandler(service routes.RouteUseCase) *DatasetHandler {
	return &DatasetHandler{service: service}
}

func (h *DatasetHandler) Register(router *gin.RouterGroup) {
	router.POST("/", h.create)
	router.GET("/:id/itineraries", h.itineraries)
	router.GET("/:id/flights", h.flights)
	router.GET("/:id/airports", h.airports)
	router.GET("/:id/airports/:code", h.airport)
}

// create ingests a CSV body of flight legs and answers with the dataset id
// and counts. Any malformed row rejects the whole upload.
func (h *DatasetHandler) create(c *gin.Context) {
	hasHeader := c.DefaultQuery("header", "true") != "false"

	summary, err := h.service.LoadDataset(c.Request.Context(), c.Request.Body, hasHeader)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, summary)
}

func (h *DatasetHandler) itineraries(c *gin.Context) {
	records, err := h.service.Itineraries(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		payload, err := export.ItinerariesCSV(records)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/csv", payload)
		return
	}

	c.JSON(http.StatusOK, export.ItinerariesDocument{Itineraries: records})
}

func (h *DatasetHandler) flights(c *gin.Context) {
	records, err := h.service.Flights(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}

	if c.Query("format") == "csv" {
		payload, err := export.FlightsCSV(records)
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
			return
		}
		c.Data(http.StatusOK, "text/csv", payload)
		return
	}

	c.JSON(http.StatusOK, export.FlightsDocument{Flights: records})
}

func (h *DatasetHandler) airports(c *gin.Context) {
	records, err := h.service.Airports(c.Request.Context(), c.Param("id"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, export.AirportsDocument{Airports: records})
}

func (h *DatasetHandler) airport(c *gin.Context) {
	record, err := h.service.Airport(c.Request.Context(), c.Param("id"), c.Param("code"))
	if err != nil {
		h.renderError(c, err)
		return
	}
	c.JSON(http.StatusOK, record)
}

func (h *DatasetHandler) renderError(c *gin.Context, err error) {
	status := http.StatusInternalServerError
	if errors.Is(err, routes.ErrDatasetNotFound) || errors.Is(err, registry.ErrAirportNotFound) {
		status = http.StatusNotFound
	}
	c.JSON(status, gin.H{"error": err.Error()})
}
