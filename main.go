package main

import (
	"fmt"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"github.com/solveighty/restaurant-mechita/configs"
	"github.com/solveighty/restaurant-mechita/middlewares"
	"github.com/solveighty/restaurant-mechita/pkg/mailer"
	"github.com/solveighty/restaurant-mechita/routes"
)

func main() {
	cfg := configs.LoadConfig()

	log := zerolog.New(os.Stdout).With().Timestamp().Logger()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		log.Fatal().Err(err).Msg("connect database")
	}

	if err := configs.SeedAdmin(db, cfg); err != nil {
		log.Fatal().Err(err).Msg("seed admin")
	}

	var mail mailer.Mailer = mailer.Nop{}
	if cfg.SMTPAddr != "" {
		mail = mailer.NewSMTP(cfg.SMTPAddr, cfg.SMTPFrom, cfg.SMTPUser, cfg.SMTPPass)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.RequestLogger(log))
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, mail, log)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Info().Str("addr", addr).Msg("server running")
	if err := r.Run(addr); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
