package main

import (
	"fmt"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/albertkemp/home-cooking/configs"
	"github.com/albertkemp/home-cooking/middlewares"
	"github.com/albertkemp/home-cooking/routes"
)

func main() {
	logrus.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg := configs.LoadConfig()

	db, err := configs.ConnectDB(cfg.DBSource)
	if err != nil {
		logrus.WithError(err).Fatal("failed to connect database")
	}

	if err := configs.SeedAdmin(db); err != nil {
		logrus.WithError(err).Fatal("seed admin failed")
	}

	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// Serve uploaded assets
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.WithError(err).Fatal("server stopped")
	}
}
