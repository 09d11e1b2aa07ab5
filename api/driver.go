package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/wazehfarhan/rento/driver"
	"github.com/wazehfarhan/rento/vehicle"
)

type driverRequest struct {
	Name         string         `json:"name" binding:"required"`
	Rating       float64        `json:"rating"`
	HourlyRate   float64        `json:"hourlyRate"`
	Available    *bool          `json:"available"`
	VehicleTypes []vehicle.Type `json:"vehicleTypes"`
}

// listDriversHandler returns all drivers, or with available=true only
// the free ones, optionally narrowed to a vehicle type they can drive.
func (a *API) listDriversHandler(c *gin.Context) {
	if c.Query("available") == "true" {
		drivers, err := a.dr.Available(c, vehicle.Type(c.Query("type")))
		if err != nil {
			serverError(c, "failed to list available drivers", err)
			return
		}
		c.JSON(http.StatusOK, drivers)
		return
	}

	drivers, err := a.dr.GetDrivers(c)
	if err != nil {
		serverError(c, "failed to list drivers", err)
		return
	}
	c.JSON(http.StatusOK, drivers)
}

func (a *API) getDriverHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	d, err := a.dr.GetDriver(c, id)
	if errors.Is(err, driver.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "DRIVER_NOT_FOUND", "message": "Driver not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to get driver", err)
		return
	}
	c.JSON(http.StatusOK, d)
}

func (a *API) createDriverHandler(c *gin.Context) {
	a.upsertDriver(c, 0)
}

func (a *API) updateDriverHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a.upsertDriver(c, id)
}

func (a *API) upsertDriver(c *gin.Context, id int) {
	var req driverRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	if req.Rating < 0 || req.Rating > 5 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "rating must be between 0 and 5"})
		return
	}
	if req.HourlyRate < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "hourlyRate must not be negative"})
		return
	}
	for _, t := range req.VehicleTypes {
		if !t.Valid() {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid vehicle type"})
			return
		}
	}

	// New drivers default to available unless the form says otherwise.
	available := true
	if req.Available != nil {
		available = *req.Available
	}

	d, err := a.dr.Upsert(c, driver.Driver{
		ID:           id,
		Name:         req.Name,
		Rating:       req.Rating,
		HourlyRate:   req.HourlyRate,
		Available:    available,
		VehicleTypes: req.VehicleTypes,
	})
	if err != nil {
		serverError(c, "failed to upsert driver", err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, d)
}

func (a *API) deleteDriverHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	err := a.dr.Delete(c, id)
	if errors.Is(err, driver.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "DRIVER_NOT_FOUND", "message": "Driver not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to delete driver", err)
		return
	}
	c.Status(http.StatusNoContent)
}
