package main

import (
	"context"
	"log"

	"eco-chat-be/internal/bootstrap"
	"eco-chat-be/internal/config"
	"eco-chat-be/internal/server"
	"eco-chat-be/internal/tracer"
)

func main() {
	// 0. Initialize Tracer (no-op unless OTEL_ENABLED=true)
	shutdownTracer := tracer.InitTracer()
	defer shutdownTracer(context.Background())

	// 1. Load Configuration
	cfg := config.Load()

	// 2. Bootstrap Dependencies (Container)
	container := bootstrap.NewContainer(cfg)
	defer container.Logger.Sync()

	// 3. Start Background Services
	go func() {
		log.Println("Background: Starting Usage Consumer...")
		if err := container.UsageConsumer.Consume(context.Background()); err != nil {
			log.Printf("Background Usage Consumer Error: %v", err)
		}
	}()

	// 4. Initialize Server
	srv := server.New(cfg, container)

	// 5. Run Server
	log.Fatal(srv.Run())
}
