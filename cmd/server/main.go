package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"time"

	"github.com/alecthomas/kong"
	"github.com/redis/go-redis/v9"

	"github.com/wazehfarhan/rento/api"
	"github.com/wazehfarhan/rento/booking"
	"github.com/wazehfarhan/rento/driver"
	"github.com/wazehfarhan/rento/hub"
	"github.com/wazehfarhan/rento/internal/keyval"
	"github.com/wazehfarhan/rento/internal/o11y"
	"github.com/wazehfarhan/rento/internal/seed"
	"github.com/wazehfarhan/rento/user"
	"github.com/wazehfarhan/rento/vehicle"
)

var cli = struct {
	RedisURL string `name:"redis-url" env:"REDIS_URL" default:"redis://localhost:6379/0"`
	Port     int    `name:"port" env:"PORT" default:"8080"`
	Seed     bool   `name:"seed" env:"SEED" default:"true" help:"Seed the demo catalog into empty collections on startup."`

	OTLPEndpoint string `name:"otlp-endpoint" env:"OTLP_ENDPOINT" default:"localhost:4318"`

	MetricsUsername string `name:"metrics-username" env:"METRICS_USERNAME"`
	MetricsPassword string `name:"metrics-password" env:"METRICS_PASSWORD"`
}{}

func main() {
	if err := run(); err != nil {
		log.Fatalf("unexpected error: %v", err)
	}
}

func run() error {
	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	kong.Parse(&cli)

	opts, err := redis.ParseURL(cli.RedisURL)
	if err != nil {
		return err
	}
	rdb := redis.NewClient(opts)
	if err := rdb.Ping(ctx).Err(); err != nil {
		return err
	}

	store := keyval.NewStore(rdb)
	if cli.Seed {
		if err := seed.Initialize(ctx, store); err != nil {
			return err
		}
	}

	hr := hub.NewRepository(store)
	vr := vehicle.NewRepository(store)
	dr := driver.NewRepository(store)
	ur := user.NewRepository(store)
	bkr := booking.NewRepository(store)

	obs, cleanup, err := o11y.Setup(ctx, cli.OTLPEndpoint)
	defer cleanup()
	if err != nil {
		return err
	}

	engine := booking.NewEngine(hr, vr, dr, bkr, obs.Logger)

	a := api.New(obs, hr, vr, dr, ur, bkr, engine, store, cli.MetricsUsername, cli.MetricsPassword)

	serv := http.Server{
		Addr:    fmt.Sprintf(":%d", cli.Port),
		Handler: a.Router(),
	}

	go func() {
		if err := serv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("failed to start server: %v", err)
		}
	}()

	<-ctx.Done()
	ctx, cancel = context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return serv.Shutdown(ctx)
}
