package api

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/wazehfarhan/rento/hub"
)

type hubRequest struct {
	Name        string  `json:"name" binding:"required"`
	Location    string  `json:"location"`
	Lat         float64 `json:"lat"`
	Lon         float64 `json:"lon"`
	Description string  `json:"description"`
	Fee         float64 `json:"fee"`
}

type nearbyHubResponse struct {
	hub.Hub
	DistanceKm float64 `json:"distanceKm"`
}

func (a *API) listHubsHandler(c *gin.Context) {
	hubs, err := a.hr.GetHubs(c)
	if err != nil {
		serverError(c, "failed to list hubs", err)
		return
	}
	c.JSON(http.StatusOK, hubs)
}

func (a *API) nearbyHubsHandler(c *gin.Context) {
	lat, errLat := strconv.ParseFloat(c.Query("lat"), 64)
	lon, errLon := strconv.ParseFloat(c.Query("lon"), 64)
	if errLat != nil || errLon != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "lat and lon are required"})
		return
	}

	hubs, err := a.hr.GetHubs(c)
	if err != nil {
		serverError(c, "failed to list hubs", err)
		return
	}

	nearby := make([]nearbyHubResponse, 0, len(hubs))
	for _, h := range hubs {
		nearby = append(nearby, nearbyHubResponse{Hub: h, DistanceKm: h.Distance(lat, lon)})
	}
	sort.Slice(nearby, func(i, j int) bool {
		return nearby[i].DistanceKm < nearby[j].DistanceKm
	})
	c.JSON(http.StatusOK, nearby)
}

func (a *API) getHubHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	h, err := a.hr.GetHub(c, id)
	if errors.Is(err, hub.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "HUB_NOT_FOUND", "message": "Hub not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to get hub", err)
		return
	}
	c.JSON(http.StatusOK, h)
}

func (a *API) createHubHandler(c *gin.Context) {
	a.upsertHub(c, 0)
}

func (a *API) updateHubHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	a.upsertHub(c, id)
}

func (a *API) upsertHub(c *gin.Context, id int) {
	var req hubRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	if req.Fee < 0 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "fee must not be negative"})
		return
	}

	h, err := a.hr.Upsert(c, hub.Hub{
		ID:          id,
		Name:        req.Name,
		Location:    req.Location,
		Lat:         req.Lat,
		Lon:         req.Lon,
		Description: req.Description,
		Fee:         req.Fee,
	})
	if err != nil {
		serverError(c, "failed to upsert hub", err)
		return
	}

	status := http.StatusOK
	if id == 0 {
		status = http.StatusCreated
	}
	c.JSON(status, h)
}

func (a *API) deleteHubHandler(c *gin.Context) {
	id, ok := idParam(c, "id")
	if !ok {
		return
	}
	err := a.hr.Delete(c, id)
	if errors.Is(err, hub.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "HUB_NOT_FOUND", "message": "Hub not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to delete hub", err)
		return
	}
	c.Status(http.StatusNoContent)
}
