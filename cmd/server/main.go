package main // Entry point package

import (
	"context"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/rehaevents/ticketing/internal/config"
	"github.com/rehaevents/ticketing/internal/database"
	"github.com/rehaevents/ticketing/internal/handler"
	"github.com/rehaevents/ticketing/internal/middleware"
	"github.com/rehaevents/ticketing/internal/queue"
	"github.com/rehaevents/ticketing/internal/repository"
	"github.com/rehaevents/ticketing/internal/reservation"
	"github.com/rehaevents/ticketing/internal/router"
	"github.com/rehaevents/ticketing/internal/sequence"
	queue_publisher "github.com/rehaevents/ticketing/internal/service"
	"github.com/rehaevents/ticketing/internal/store"
	"github.com/rehaevents/ticketing/internal/ticket"
	"github.com/rehaevents/ticketing/internal/wave"
)

func main() {
	_ = godotenv.Load() // optional .env for local development

	cfg := config.Load()
	event := config.LoadEvent()
	waves, err := config.LoadWaves(cfg.WavesFile)
	if err != nil {
		log.Fatalf("load waves: %v", err)
	}

	// Process-lifetime context; cancellation stops the wave monitor
	// and triggers HTTP shutdown.
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	monitor := wave.NewMonitor(waves, event.DefaultPriceETB, cfg.WaveRefresh)
	go monitor.Run(ctx)

	rdb := config.NewRedisClient() // nil when Redis is unreachable

	var reserver reservation.Reserver
	var ticketRepo *repository.TicketRepo
	switch cfg.ReservationMode {
	case config.ModeRemote:
		reserver = reservation.NewRemoteClient(cfg.SupabaseURL, cfg.SupabaseKey, cfg.ReserveTimeout)
	case config.ModeLocal:
		db, err := database.Open(cfg.DBUser, cfg.DBPass, cfg.DBHost, cfg.DBPort, cfg.DBName)
		if err != nil {
			log.Fatalf("open database: %v", err)
		}
		ticketRepo = repository.NewTicketRepo(db)
		var seq sequence.Provider
		if rdb != nil {
			seq = sequence.NewRedis(rdb)
		} else {
			log.Printf("redis unavailable; ticket numbers fall back to an in-process counter")
			seq = sequence.NewMemory(uint64(time.Now().Unix())) // avoid restart collisions
		}
		reserver = reservation.NewLocalStore(ticketRepo, seq, monitor, cfg.TicketIDPrefix)
	}

	renderer, err := ticket.NewRenderer()
	if err != nil {
		log.Fatalf("init ticket renderer: %v", err)
	}
	tickets := store.NewTicketStore()

	go queue.StartBookingConsumer(ctx)

	e := echo.New()
	e.HideBanner = true

	router.RegisterRoutes(e)
	router.RegisterPublic(e, handler.NewEventHandler(event, monitor))
	router.RegisterBooking(e,
		handler.NewBookingHandler(reserver, event, monitor, tickets, ticket.QREncoder{}, queue_publisher.PublishTicketBooked),
		handler.NewTicketImageHandler(tickets, renderer),
		middleware.NewTokenBucket(config.LoadRateLimitConfig(), rdb),
	)
	router.RegisterAdmin(e, &handler.AdminHandler{
		Email:      cfg.AdminEmail,
		PassHash:   cfg.AdminPassHash,
		JWTSecret:  cfg.JWTSecret,
		TTLMinutes: cfg.AccessTTLMin,
		Tickets:    ticketRepo,
	}, cfg.JWTSecret)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s mode=%s)", addr, cfg.Env, cfg.ReservationMode)

	go func() {
		if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
			log.Fatal(err)
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		log.Printf("shutdown: %v", err)
	}
}
