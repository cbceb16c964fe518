package main

import (
	"fmt"

	"github.com/andyrob2215/AAASmores/configs"
	"github.com/andyrob2215/AAASmores/middlewares"
	"github.com/andyrob2215/AAASmores/routes"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	if err := configs.ConnectionDB(cfg); err != nil {
		logrus.Fatalf("connect database failed: %v", err)
	}
	db := configs.DB()

	// migrate
	if err := configs.SetupDatabase(); err != nil {
		logrus.Fatalf("migrate failed: %v", err)
	}

	if err := configs.SeedStaff(); err != nil {
		logrus.Fatalf("seed staff failed: %v", err)
	}
	if err := configs.SeedConfig(); err != nil {
		logrus.Fatalf("seed config failed: %v", err)
	}

	// HTTP
	r := gin.Default()
	r.Use(middlewares.CORSMiddleware())

	// uploaded menu images and hero backgrounds
	r.Static("/uploads", cfg.UploadDir)

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	logrus.WithField("addr", addr).Info("server running")
	if err := r.Run(addr); err != nil {
		logrus.Fatal(err)
	}
}
