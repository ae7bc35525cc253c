// seed-admin crea el usuario administrador inicial si todavía no existe.
// Username y password se toman de SEED_ADMIN_USER / SEED_ADMIN_PASSWORD
// (default admin / admin123, pensado solo para desarrollo).
//
// Uso: go run ./cmd/seed-admin
package main

import (
	"context"
	"os"
	"time"

	"github.com/tu-usuario/ventas-api/internal/application/auth"
	"github.com/tu-usuario/ventas-api/internal/domain"
	"github.com/tu-usuario/ventas-api/internal/domain/entity"
	"github.com/tu-usuario/ventas-api/internal/infrastructure/postgres"
	"github.com/tu-usuario/ventas-api/pkg/config"
	"github.com/tu-usuario/ventas-api/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		panic("cargar configuración: " + err.Error())
	}
	log := logger.New(logger.Config{Env: cfg.App.Env, Level: "info"})

	username := envOr("SEED_ADMIN_USER", "admin")
	password := envOr("SEED_ADMIN_PASSWORD", "admin123")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		log.Fatal().Err(err).Msg("conexión a PostgreSQL")
	}
	defer pool.Close()

	authUC := auth.NewAuthUseCase(postgres.NewUserRepository(pool), auth.JWTConfig{})
	user, err := authUC.CreateUser(ctx, username, password, entity.RoleAdmin)
	if err == domain.ErrDuplicate {
		log.Info().Str("username", username).Msg("el admin ya existe, nada que hacer")
		return
	}
	if err != nil {
		log.Fatal().Err(err).Msg("crear admin")
	}
	log.Info().Str("username", user.Username).Str("role", user.Role).Msg("admin creado")
}

func envOr(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}
