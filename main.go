package main

import (
	"fmt"
	"log"
	"os"

	"github.com/gofiber/fiber/v2"

	"cpu-scheduler/api"
	"cpu-scheduler/cli"
	"cpu-scheduler/config"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "serve" {
		serve()
		return
	}

	if err := cli.Run(os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func serve() {
	cfg := config.GetSchedulerConfig()
	handler := api.NewSchedulerHandlerImpl(cfg)

	app := fiber.New()
	api.RegisterRoutes(app, handler)

	log.Println("scheduler api listening on port", cfg.Port)
	log.Fatalln(app.Listen(fmt.Sprintf(":%d", cfg.Port)))
}
