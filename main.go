package main

import (
	"log"

	"github.com/joho/godotenv"

	"github.com/leeboklee/rsvshop-sub002/internal/app"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("no .env file, using process environment")
	}
	app.Run()
}
