package main

import (
	"fmt"
	"log"

	"github.com/NebiyouChanie/sapore/configs"
	"github.com/NebiyouChanie/sapore/middlewares"
	"github.com/NebiyouChanie/sapore/pkg/mailer"
	"github.com/NebiyouChanie/sapore/routes"
	"github.com/NebiyouChanie/sapore/ws"
	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	db, err := configs.ConnectionDB(cfg.DBSource)
	if err != nil {
		log.Fatalf("connect database failed: %v", err)
	}

	// migrate
	if err := configs.SetupDatabase(db); err != nil {
		log.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedAdmin(db); err != nil {
		log.Fatalf("seed admin failed: %v", err)
	}
	if err := configs.SeedMenuSettings(db); err != nil {
		log.Fatalf("seed menu settings failed: %v", err)
	}

	mail := mailer.NewSMTP(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUser, cfg.SMTPPass, cfg.MailFrom)

	feed := ws.NewFeedHub()
	go feed.Run()

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg, mail, feed)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
