package api

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/wazehfarhan/rento/booking"
)

type bookingRequest struct {
	VehicleID    int    `json:"vehicleId" binding:"required"`
	PickupHubID  int    `json:"pickupHubId" binding:"required"`
	DropoffHubID int    `json:"dropoffHubId" binding:"required"`
	PickupDate   string `json:"pickupDate" binding:"required"`
	PickupTime   string `json:"pickupTime" binding:"required"`
	DropoffDate  string `json:"dropoffDate" binding:"required"`
	DropoffTime  string `json:"dropoffTime" binding:"required"`
	UserAge      int    `json:"userAge"`
	HasDriver    bool   `json:"hasDriver"`
	DriverID     *int   `json:"driverId"`
}

// Note: the request carries no total. The engine always recomputes the
// price; a client-supplied figure would never be trusted.
func (r bookingRequest) toEngineRequest() (booking.Request, error) {
	pickup, err := booking.ParseDateTime(r.PickupDate, r.PickupTime)
	if err != nil {
		return booking.Request{}, err
	}
	dropoff, err := booking.ParseDateTime(r.DropoffDate, r.DropoffTime)
	if err != nil {
		return booking.Request{}, err
	}
	return booking.Request{
		VehicleID:    r.VehicleID,
		PickupHubID:  r.PickupHubID,
		DropoffHubID: r.DropoffHubID,
		Pickup:       pickup,
		Dropoff:      dropoff,
		UserAge:      r.UserAge,
		HasDriver:    r.HasDriver,
		DriverID:     r.DriverID,
	}, nil
}

type bookingResponse struct {
	ID           int            `json:"id"`
	UserID       int            `json:"userId"`
	VehicleID    int            `json:"vehicleId"`
	VehicleName  string         `json:"vehicleName,omitempty"`
	PickupHubID  int            `json:"pickupHubId"`
	DropoffHubID int            `json:"dropoffHubId"`
	PickupDate   string         `json:"pickupDate"`
	PickupTime   string         `json:"pickupTime"`
	DropoffDate  string         `json:"dropoffDate"`
	DropoffTime  string         `json:"dropoffTime"`
	HasDriver    bool           `json:"hasDriver"`
	DriverID     *int           `json:"driverId,omitempty"`
	TotalPrice   float64        `json:"totalPrice"`
	Status       booking.Status `json:"status"`
	CreatedAt    time.Time      `json:"createdAt"`
}

func (a *API) quoteHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	engineReq, err := req.toEngineRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid pickup or dropoff date/time"})
		return
	}

	price, err := a.engine.Quote(c, engineReq)
	if err != nil {
		serverError(c, "failed to quote booking", err)
		return
	}
	c.JSON(http.StatusOK, price)
}

func (a *API) createBookingHandler(c *gin.Context) {
	var req bookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": err.Error()})
		return
	}
	engineReq, err := req.toEngineRequest()
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid pickup or dropoff date/time"})
		return
	}

	userID, err := a.ur.CurrentUserID(c)
	if err != nil {
		serverError(c, "failed to read session", err)
		return
	}

	b, err := a.engine.Submit(c, booking.Session{UserID: userID}, engineReq)
	if err != nil {
		switch {
		case errors.Is(err, booking.ErrNotAuthenticated):
			c.JSON(http.StatusUnauthorized, gin.H{"code": "NOT_AUTHENTICATED", "message": "Please log in to make a booking"})
		case errors.Is(err, booking.ErrNotEligible):
			c.JSON(http.StatusUnprocessableEntity, gin.H{"code": "NOT_ELIGIBLE", "message": err.Error()})
		default:
			serverError(c, "failed to create booking", err)
		}
		return
	}

	c.JSON(http.StatusCreated, a.toBookingResponse(c, b))
}

func (a *API) getBookingsHandler(c *gin.Context) {
	userID, err := a.ur.CurrentUserID(c)
	if err != nil {
		serverError(c, "failed to read session", err)
		return
	}
	if userID == 0 {
		c.JSON(http.StatusUnauthorized, gin.H{"code": "NOT_AUTHENTICATED", "message": "Please log in to view bookings"})
		return
	}

	var statusPtr *booking.Status
	if statusStr := c.Query("status"); statusStr != "" {
		status := booking.Status(statusStr)
		statusPtr = &status
	}

	bookings, err := a.bkr.GetByUserID(c, userID, statusPtr)
	if err != nil {
		serverError(c, "failed to get user bookings", err)
		return
	}

	responses := make([]bookingResponse, 0, len(bookings))
	for _, b := range bookings {
		responses = append(responses, a.toBookingResponse(c, b))
	}
	c.JSON(http.StatusOK, responses)
}

func (a *API) cancelBookingHandler(c *gin.Context) {
	id, ok := idParam(c, "bookingId")
	if !ok {
		return
	}

	b, err := a.engine.Cancel(c, id)
	if errors.Is(err, booking.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"code": "BOOKING_NOT_FOUND", "message": "Booking not found"})
		return
	}
	if err != nil {
		serverError(c, "failed to cancel booking", err)
		return
	}
	c.JSON(http.StatusOK, a.toBookingResponse(c, b))
}

// toBookingResponse enriches a booking with its vehicle name. A vehicle
// that no longer resolves leaves the name empty.
func (a *API) toBookingResponse(c *gin.Context, b booking.Booking) bookingResponse {
	var vehicleName string
	if v, err := a.vr.GetVehicle(c, b.VehicleID); err == nil {
		vehicleName = v.Name
	}

	return bookingResponse{
		ID:           b.ID,
		UserID:       b.UserID,
		VehicleID:    b.VehicleID,
		VehicleName:  vehicleName,
		PickupHubID:  b.PickupHubID,
		DropoffHubID: b.DropoffHubID,
		PickupDate:   b.PickupDate,
		PickupTime:   b.PickupTime,
		DropoffDate:  b.DropoffDate,
		DropoffTime:  b.DropoffTime,
		HasDriver:    b.HasDriver,
		DriverID:     b.DriverID,
		TotalPrice:   b.TotalPrice,
		Status:       b.Status,
		CreatedAt:    b.CreatedAt,
	}
}
