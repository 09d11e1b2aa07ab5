package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wazehfarhan/rento/vehicle"
)

type vehicleRequest struct {
	Name         string           `json:"name" binding:"required"`
	Type         vehicle.Type     `json:"type" binding:"required"`
	FuelType     vehicle.FuelType `json:"fuelType" binding:"required"`
	Seats        int              `json:"seats"`
	PricePerHour float64          `json:"pricePerHour"`
	Hubs         []int            `json:"hubs"`
	Image        string           `json:"image"`
	Description  string           `json:"description"`
}

// listVehiclesHandler supports two optional pre-filters the booking form
// uses: hubId narrows to vehicles listed at a hub, and maxAge below 18
// narrows to EVs. These are conveniences only; eligibility is enforced
// at submission.
func (a *API) listVehiclesHandler(c *gin.Context) {
	vehicles, err := a.vr.GetVehicles(c)
	if err != nil {
		serverError(c, "failed to list vehicles", err)
		return
	}

	if hubIDStr := c.Query("hubId"); hubIDStr != "" {
		hubID, err := strconv.Atoi(hubIDStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid hubId"})
			return
		}
		filtered := make([]vehicle.Vehicle, 0, len(vehicles))
		for _, v := range vehicles {
			if v.AvailableAtHub(hubID) {
				filtered = append(filtered, v)
			}
		}
		vehicles = filtered
	}

	if maxAgeStr := c.Query("maxAge"); maxAgeStr != "" {
		maxAge, err := strconv.Atoi(maxAgeStr)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid maxAge"})
			return
		}
		if maxAge < 18 {
			filtered := make([]vehicle.Vehicle, 0, len(vehicles))
			for _, v := range vehicles {
				if v.FuelType == vehicle.FuelEV {
					filtered = append(filtered, v)
				}
			}
			vehicles = filtered
		}
	}

	c.JSON(http.StatusOK, vehicles)
}

func (a *API) getVehicleHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	v, err := a.vr.GetVehicle(c, id)
	if errors.Is(err, vehicle.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "VEHICLE_NOT_FOUND", "message": "Vehicle not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to get vehicle", err)
		return
	}
	c.JSON(http.StatusOK, v)
}

func (a *API) createVehicleHandler(c *gin.Context) {
	a.upsertVehicle(c, 0)
}

func (a *API) updateVehicleHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a.upsertVehicle(c, id)
}

func (a *API) upsertVehicle(c *gin.Context, id int) {
	var req vehicleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	if !req.Type.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid vehicle type"})
		return
	}
	if !req.FuelType.Valid() {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid fuel type"})
		return
	}
	if req.Seats < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "seats must be positive"})
		return
	}
	if req.PricePerHour < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "pricePerHour must not be negative"})
		return
	}

	v, err := a.vr.Upsert(c, vehicle.Vehicle{
		ID:           id,
		Name:         req.Name,
		Type:         req.Type,
		FuelType:     req.FuelType,
		Seats:        req.Seats,
		PricePerHour: req.PricePerHour,
		Hubs:         req.Hubs,
		Image:        req.Image,
		Description:  req.Description,
	})
	if err != nil {
		serverError(c, "failed to upsert vehicle", err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, v)
}

func (a *API) deleteVehicleHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	err := a.vr.Delete(c, id)
	if errors.Is(err, vehicle.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "VEHICLE_NOT_FOUND", "message": "Vehicle not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to delete vehicle", err)
		return
	}
	c.Status(http.StatusNoContent)
}
