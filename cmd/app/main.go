package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"

	"car-service-booking/internal/auth"
	httpx "car-service-booking/internal/http"
	"car-service-booking/internal/http/handlers"
	"car-service-booking/internal/http/middleware"
	"car-service-booking/internal/repo"
	"car-service-booking/pkg/config"
	"car-service-booking/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic(err)
	}
	log := logger.New("car-service-booking", cfg.Common.LogLevel, cfg.Common.LogPretty)

	client, err := mongo.Connect(options.Client().
		ApplyURI(cfg.Mongo.URI).
		SetServerAPIOptions(options.ServerAPI(options.ServerAPIVersion1)))
	if err != nil {
		log.Fatal().Err(err).Msg("mongo connect failed")
	}
	defer func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = client.Disconnect(ctx)
	}()

	ctxPing, cancelPing := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancelPing()
	if err := client.Ping(ctxPing, nil); err != nil {
		log.Fatal().Err(err).Msg("mongo ping failed")
	}
	log.Info().Str("db", cfg.Mongo.Database).Msg("mongodb connected")

	db := client.Database(cfg.Mongo.Database)
	servicesRepo := &repo.ServicesMongo{C: db.Collection("services")}
	ordersRepo := &repo.OrdersMongo{C: db.Collection("orders")}

	tokens := auth.NewService(cfg.Auth.AccessTokenSecret, auth.DefaultTTL)
	authmw := &middleware.Auth{Tokens: tokens, Log: log}

	createSession := &handlers.CreateSessionHandler{
		Tokens:       tokens,
		CookieSecure: cfg.Auth.CookieSecure,
		Log:          log,
	}
	listServices := &handlers.ListServicesHandler{Store: servicesRepo, Log: log}
	getService := &handlers.GetServiceHandler{Store: servicesRepo, Log: log}
	listOrders := &handlers.ListOrdersHandler{Store: ordersRepo, Log: log}
	createOrder := &handlers.CreateOrderHandler{Store: ordersRepo, Log: log}
	updateStatus := &handlers.UpdateOrderStatusHandler{Store: ordersRepo, Log: log}
	deleteOrder := &handlers.DeleteOrderHandler{Store: ordersRepo, Log: log}

	router := httpx.NewRouter(&httpx.Handlers{
		Root:          handlers.Root(cfg.HTTP.Port),
		Health:        handlers.Health,
		CreateSession: createSession.ServeHTTP,
		Logout:        handlers.Logout,
		ListServices:  listServices.ServeHTTP,
		GetService:    getService.ServeHTTP,
		ListOrders:    listOrders.ServeHTTP,
		CreateOrder:   createOrder.ServeHTTP,
		UpdateStatus:  updateStatus.ServeHTTP,
		DeleteOrder:   deleteOrder.ServeHTTP,
	}, authmw, httpx.Options{
		AllowedOrigin: cfg.CORS.AllowedOrigin,
		ProtectWrites: cfg.Auth.ProtectWrites,
		Log:           log,
	})

	srv := &http.Server{
		Addr:              ":" + cfg.HTTP.Port,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		log.Info().Str("addr", srv.Addr).Msg("http started")
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal().Err(err).Msg("http failed")
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	log.Info().Msg("shutdown...")
	shCtx, shCancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer shCancel()
	_ = srv.Shutdown(shCtx)
}
