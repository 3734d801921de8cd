package main

import (
	"os"

	"github.com/Khushal2406/stayfit/config"
	"github.com/Khushal2406/stayfit/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r.Run(":" + port)
}
