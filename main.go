package main

import (
	"fmt"
	"log"

	"github.com/3bdelrahman-ibrahim/foodash/configs"
	"github.com/3bdelrahman-ibrahim/foodash/middlewares"
	"github.com/3bdelrahman-ibrahim/foodash/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg := configs.LoadConfig()

	// DB
	configs.ConnectionDB(cfg.DBSource)
	configs.SetupDatabase()
	db := configs.DB()

	// HTTP
	r := gin.Default()
	r.MaxMultipartMemory = 10 << 20

	r.Use(middlewares.CORSMiddleware())

	routes.RegisterRoutes(r, db, cfg)

	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Println("server running at", addr)
	if err := r.Run(addr); err != nil {
		log.Fatal(err)
	}
}
