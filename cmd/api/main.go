package main

import (
	"log"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"

	"github.com/navalhaclub/booking-api/internal/config"
	dbpkg "github.com/navalhaclub/booking-api/internal/db"
	"github.com/navalhaclub/booking-api/internal/routes"
	"github.com/navalhaclub/booking-api/internal/timezone"
)

func main() {

	cfg := config.Load()
	timezone.Configure(cfg.Timezone)

	db := dbpkg.NewDB(cfg)
	rdb := newRedis(cfg)

	r := gin.Default()

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.RegisterRoutes(r, db, rdb, cfg)

	log.Printf("Server running on %s", cfg.Addr())
	if err := r.Run(cfg.Addr()); err != nil {
		log.Fatalf("failed to start server: %v", err)
	}
}

// newRedis tolera redis ausente: o cache de disponibilidade degrada
// para recalcular a cada consulta.
func newRedis(cfg *config.Config) *redis.Client {
	opts, err := redis.ParseURL(cfg.RedisURL)
	if err != nil {
		log.Printf("invalid REDIS_URL, running without cache: %v", err)
		return nil
	}

	return redis.NewClient(opts)
}
