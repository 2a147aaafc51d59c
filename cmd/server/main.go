package main // Entry point package

import (
	"log"

	"github.com/joho/godotenv"
	"github.com/labstack/echo/v4"

	"github.com/bartosz-starzec/Hotel-app-backend/internal/config"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/database"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/handler"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/queue"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/repository"
	"github.com/bartosz-starzec/Hotel-app-backend/internal/router"
)

func main() {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.Load()

	db, err := database.Open(cfg)
	if err != nil {
		log.Fatalf("database: %v", err)
	}
	defer db.Close()

	if err := database.Migrate(db); err != nil {
		log.Fatalf("migrate: %v", err)
	}

	// Optional infrastructure: a nil Redis client disables the response
	// cache, and the queue consumer keeps retrying the broker on its own.
	rdb := config.NewRedisClient()
	if rdb == nil {
		log.Println("redis unavailable, response cache disabled")
	}
	go func() {
		if err := queue.StartReservationConsumer(); err != nil {
			log.Printf("reservation consumer stopped: %v", err)
		}
	}()

	userRepo := repository.NewUserRepo(db)
	roomRepo := repository.NewRoomRepo(db)
	reservationRepo := repository.NewReservationRepo(db)

	e := echo.New()
	router.RegisterRoutes(e, cfg, config.LoadCacheConfig(), rdb,
		handler.NewAuthHandler(cfg, userRepo),
		handler.NewRoomHandler(roomRepo),
		handler.NewUserHandler(userRepo),
		handler.NewReservationHandler(reservationRepo, true),
	)

	addr := ":" + cfg.Port
	log.Printf("listening on %s (env=%s)", addr, cfg.Env)

	if err := e.Start(addr); err != nil {
		log.Fatal(err)
	}
}
