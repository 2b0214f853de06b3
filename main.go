package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"

	"samayas/internal/config"
	"samayas/internal/distance"
	"samayas/internal/domain/models"
	api "samayas/internal/http"
	"samayas/internal/http/handlers"
	"samayas/internal/logger"
	"samayas/internal/notify"
	"samayas/internal/services"
)

func main() {
	env := config.LoadEnv()
	if env.GinMode != "" {
		gin.SetMode(env.GinMode)
	}

	log := logger.New(env.ServiceName)

	fareSvc := services.NewFareService(models.DefaultTariffTable(), buildDistanceProvider(env, log))

	bookingSvc := services.NewBookingService(fareSvc, buildNotifier(env, log), log)
	bookingSvc.SetDispatchTimeout(env.DispatchTimeout)
	bookingSvc.SetSessionTTL(env.SessionTTL)

	docsSvc := services.NewDocsService("Samayas Travels")

	handlers.Configure(bookingSvc, fareSvc, docsSvc)
	r := api.NewRouter(env, log)

	janitorCtx, stopJanitor := context.WithCancel(context.Background())
	defer stopJanitor()
	go bookingSvc.RunJanitor(janitorCtx)

	srv := &http.Server{
		Addr:              env.AppAddr,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       20 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Info("server listening", logger.String("addr", env.AppAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Error("server failed", logger.Error(err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit

	log.Info("shutting down")
	stopJanitor()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		log.Error("shutdown failed", logger.Error(err))
		os.Exit(1)
	}
	log.Info("server stopped")
}

// buildDistanceProvider picks the road-distance source: Google Maps when an
// API key is configured, the random development stub otherwise, with an
// optional Redis read-through cache on top.
func buildDistanceProvider(env config.Env, log logger.ILogger) services.DistanceProvider {
	var provider distance.Provider
	if env.GoogleMapsAPIKey != "" {
		google, err := distance.NewGoogleProvider(env.GoogleMapsAPIKey)
		if err != nil {
			log.Error("google maps client", logger.Error(err))
			os.Exit(1)
		}
		provider = google
		log.Info("distance provider: google maps")
	} else {
		provider = distance.NewRandom(0)
		log.Warning("distance provider: random stub, fares are not real")
	}

	if env.RedisAddr != "" {
		rdb := redis.NewClient(&redis.Options{Addr: env.RedisAddr, Password: env.RedisPassword})
		provider = distance.NewCached(provider, rdb, env.DistanceTTL)
		log.Info("distance cache enabled", logger.String("addr", env.RedisAddr))
	}
	return provider
}

// buildNotifier assembles the delivery channels. Without EmailJS credentials
// every confirm takes the degraded path, which keeps development harmless.
func buildNotifier(env config.Env, log logger.ILogger) services.Notifier {
	var primary notify.Channel
	if emailjs := notify.NewEmailJS(env); emailjs.Configured() {
		primary = emailjs
	} else {
		log.Warning("emailjs not configured, bookings will not be delivered")
	}

	var extras []notify.Channel
	if env.TelegramBotToken != "" && env.TelegramChatID != 0 {
		tg, err := notify.NewTelegram(env.TelegramBotToken, env.TelegramChatID)
		if err != nil {
			log.Warning("telegram channel disabled", logger.Error(err))
		} else {
			extras = append(extras, tg)
		}
	}

	return notify.NewManager(primary, log, extras...)
}
