package main

import (
	"context"
	"database/sql"
	"log"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/redis/go-redis/v9"

	"recircleBack/internal/config"
	"recircleBack/internal/handlers"
	"recircleBack/internal/repositories"
	"recircleBack/internal/services"
	"recircleBack/utils"
)

type application struct {
	errorLog    *log.Logger
	infoLog     *log.Logger
	db          *sql.DB
	tokens      *utils.Manager
	sessions    *services.SessionService
	userHandler *handlers.UserHandler
	itemHandler *handlers.ItemHandler
	authHandler *handlers.AuthHandler
}

func initializeApp(db *sql.DB, redisClient *redis.Client, cfg config.Config, errorLog, infoLog *log.Logger) (*application, error) {
	tokenManager, err := utils.NewManager(cfg.JWT.SigningKey, cfg.AccessTTL(), cfg.RefreshTTL())
	if err != nil {
		return nil, err
	}

	// Repositories
	userRepo := repositories.UserRepository{DB: db}
	itemRepo := repositories.ItemRepository{DB: db}

	// Services
	userService := &services.UserService{UserRepo: &userRepo}
	itemService := &services.ItemService{ItemRepo: &itemRepo}
	sessionService := &services.SessionService{Client: redisClient, TTL: cfg.SessionTTL()}

	// Handlers
	userHandler := &handlers.UserHandler{Service: userService, Items: itemService}
	itemHandler := &handlers.ItemHandler{Service: itemService}
	authHandler := &handlers.AuthHandler{Users: userService, Tokens: tokenManager, Sessions: sessionService}

	return &application{
		errorLog:    errorLog,
		infoLog:     infoLog,
		db:          db,
		tokens:      tokenManager,
		sessions:    sessionService,
		userHandler: userHandler,
		itemHandler: itemHandler,
		authHandler: authHandler,
	}, nil
}

func openDB(dsn string) (*sql.DB, error) {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return nil, err
	}
	if err = db.Ping(); err != nil {
		return nil, err
	}
	db.SetMaxIdleConns(25)
	return db, nil
}

func openRedis(cfg config.Config) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     cfg.Redis.Addr,
		Password: cfg.Redis.Password,
		DB:       0,
	})

	if err := client.Ping(context.Background()).Err(); err != nil {
		return nil, err
	}
	return client, nil
}
