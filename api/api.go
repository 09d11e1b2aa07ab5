package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/wazehfarhan/rento/booking"
	"github.com/wazehfarhan/rento/driver"
	"github.com/wazehfarhan/rento/hub"
	"github.com/wazehfarhan/rento/internal/keyval"
	"github.com/wazehfarhan/rento/internal/middleware"
	"github.com/wazehfarhan/rento/internal/o11y"
	"github.com/wazehfarhan/rento/user"
	"github.com/wazehfarhan/rento/vehicle"
)

type API struct {
	r      *gin.Engine
	hr     *hub.Repository
	vr     *vehicle.Repository
	dr     *driver.Repository
	ur     *user.Repository
	bkr    *booking.Repository
	engine *booking.Engine
	store  *keyval.Store
}

func New(obs *o11y.Observability, hr *hub.Repository, vr *vehicle.Repository, dr *driver.Repository, ur *user.Repository, bkr *booking.Repository, engine *booking.Engine, store *keyval.Store, metricsUsername, metricsPassword string) *API {
	a := &API{
		hr:     hr,
		vr:     vr,
		dr:     dr,
		ur:     ur,
		bkr:    bkr,
		engine: engine,
		store:  store,
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Tracing())
	r.Use(middleware.Logging(obs.Logger))
	r.Use(middleware.Metrics(obs.Registry))
	a.r = r

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	metricsHandler := gin.WrapH(promhttp.HandlerFor(obs.Registry, promhttp.HandlerOpts{}))
	if metricsUsername != "" {
		r.GET("/metrics", gin.BasicAuth(gin.Accounts{metricsUsername: metricsPassword}), metricsHandler)
	} else {
		r.GET("/metrics", metricsHandler)
	}

	r.GET("/hubs", a.listHubsHandler)
	r.GET("/hubs/nearby", a.nearbyHubsHandler)
	r.GET("/hubs/:id", a.getHubHandler)
	r.POST("/hubs", a.createHubHandler)
	r.PUT("/hubs/:id", a.updateHubHandler)
	r.DELETE("/hubs/:id", a.deleteHubHandler)

	r.GET("/vehicles", a.listVehiclesHandler)
	r.GET("/vehicles/:id", a.getVehicleHandler)
	r.POST("/vehicles", a.createVehicleHandler)
	r.PUT("/vehicles/:id", a.updateVehicleHandler)
	r.DELETE("/vehicles/:id", a.deleteVehicleHandler)

	r.GET("/drivers", a.listDriversHandler)
	r.GET("/drivers/:id", a.getDriverHandler)
	r.POST("/drivers", a.createDriverHandler)
	r.PUT("/drivers/:id", a.updateDriverHandler)
	r.DELETE("/drivers/:id", a.deleteDriverHandler)

	r.GET("/session", a.getSessionHandler)
	r.PUT("/session", a.setSessionHandler)

	r.GET("/bookings", a.getBookingsHandler)
	r.POST("/bookings/quote", a.quoteHandler)
	r.POST("/bookings", a.createBookingHandler)
	r.POST("/bookings/:bookingId/cancel", a.cancelBookingHandler)

	r.POST("/admin/reset", a.resetHandler)
	r.POST("/admin/reconcile", a.reconcileHandler)

	return a
}

func (a *API) Router() *gin.Engine {
	return a.r
}

// serverError logs the failure and maps storage outages to 503,
// everything else to 500.
func serverError(c *gin.Context, msg string, err error) {
	middleware.GetLogger(c).ErrorContext(c, msg, "error", err)
	if errors.Is(err, keyval.ErrUnavailable) {
		c.JSON(http.StatusServiceUnavailable, gin.H{"code": "STORAGE_UNAVAILABLE", "message": "storage unavailable"})
		return
	}
	c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
}

// idParam parses a positive integer path parameter, writing a 400 when
// it is malformed.
func idParam(c *gin.Context, name string) (int, bool) {
	id, err := strconv.Atoi(c.Param(name))
	if err != nil || id < 1 {
		c.JSON(http.StatusBadRequest, gin.H{"code": "INVALID_REQUEST", "message": "invalid " + name})
		return 0, false
	}
	return id, true
}
