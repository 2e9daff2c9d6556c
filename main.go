package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go-food-delivery/config"
	"go-food-delivery/controllers"
	"go-food-delivery/metrics"
	"go-food-delivery/middleware"
	"go-food-delivery/repositories"
	"go-food-delivery/routes"
	"go-food-delivery/services"
	"go-food-delivery/utils"

	"github.com/gorilla/mux"
	"github.com/sirupsen/logrus"
)

func main() {
	log := logrus.New()
	log.SetFormatter(&logrus.JSONFormatter{})

	// Load environment variables from .env file and the environment
	cfg, err := config.Load()
	if err != nil {
		log.WithError(err).Fatal("loading configuration")
	}
	if level, err := logrus.ParseLevel(cfg.LogLevel); err == nil {
		log.SetLevel(level)
	} else {
		log.WithField("level", cfg.LogLevel).Warn("unknown LOG_LEVEL, keeping info")
	}

	// Connect to MongoDB
	client, err := utils.ConnectDB(context.Background(), cfg.MongoURI, log)
	if err != nil {
		log.WithError(err).Fatal("connecting to database")
	}
	defer func() {
		if err := client.Disconnect(context.Background()); err != nil {
			log.WithError(err).Error("disconnecting from database")
		}
	}()
	db := client.Database(cfg.MongoDatabase)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	if err := repositories.EnsureIndexes(ctx, db); err != nil {
		log.WithError(err).Fatal("creating indexes")
	}
	cancel()

	// Initialize services and controllers
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.TokenTTL)
	users := services.NewUserService(repositories.NewUsers(db), newMailer(cfg, log), log)
	meals := services.NewMealService(repositories.NewMeals(db), log)
	restaurants := services.NewRestaurantService(repositories.NewRestaurants(db), log)
	orders := services.NewOrderService(repositories.NewOrders(db), log)

	// Set up the router
	m := metrics.New()
	router := mux.NewRouter()
	router.Use(middleware.Logging(log), middleware.Recover(log), m.Middleware)
	router.Handle("/metrics", m.Handler()).Methods(http.MethodGet)
	routes.RegisterRoutes(router, routes.Controllers{
		Users:       controllers.NewUserController(users, tokens, cfg.RequestTimeout),
		Meals:       controllers.NewMealController(meals, cfg.RequestTimeout),
		Restaurants: controllers.NewRestaurantController(restaurants, cfg.RequestTimeout),
		Orders:      controllers.NewOrderController(orders, cfg.RequestTimeout),
		Health:      healthHandler(client.Ping),
	}, tokens)

	// Start the server
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}
	go func() {
		log.WithField("port", cfg.Port).Info("server is running")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.WithError(err).Fatal("serving http")
		}
	}()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	<-stop

	ctx, cancel = context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.WithError(err).Error("shutting down server")
	}
}

func newMailer(cfg config.Config, log *logrus.Logger) services.Mailer {
	switch cfg.MailProvider {
	case config.MailPostmark:
		return utils.NewPostmarkMailer(cfg.PostmarkAPIToken, cfg.EmailSender)
	case config.MailSendGrid:
		return utils.NewSendGridMailer(cfg.SendGridAPIKey, cfg.EmailSender)
	}
	return utils.NewLogMailer(log)
}
