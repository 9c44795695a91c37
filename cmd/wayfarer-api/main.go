// README: Service entrypoint.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"wayfarer/internal/booking"
	"wayfarer/internal/config"
	"wayfarer/internal/conversation"
	httpserver "wayfarer/internal/http"
	"wayfarer/internal/http/handlers"
	"wayfarer/internal/infra"
	"wayfarer/internal/itinerary"
	"wayfarer/internal/llm"
	"wayfarer/internal/maps"
	"wayfarer/internal/venue"
	"wayfarer/internal/weather"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("main: load config: %v", err)
	}

	// Storage is optional: without it the venue catalog falls back to
	// the static set and the planner stays fully functional.
	pool, err := infra.NewDB(ctx, cfg.DB.DSN)
	if err != nil {
		log.Printf("main: database unavailable, venue lookups will use the fallback catalog: %v", err)
	} else {
		defer pool.Close()
	}
	cache := infra.NewRedis(cfg.Redis.Addr)
	defer cache.Close()

	var primary, fallback llm.Provider
	if p, err := llm.NewGroqProvider(cfg.LLM.GroqKey, cfg.LLM.GroqModel); err != nil {
		log.Printf("main: groq provider disabled: %v", err)
	} else {
		primary = p
	}
	if g, err := llm.NewGeminiProvider(ctx, cfg.LLM.GeminiKey, cfg.LLM.GeminiModel); err != nil {
		log.Printf("main: gemini provider disabled: %v", err)
	} else {
		fallback = g
		defer g.Close()
	}
	gateway := llm.NewGateway(primary, fallback)

	venues := venue.NewService(venue.NewStore(pool, cache))
	forecasts := weather.NewService(weather.NewClient())
	bookings := booking.NewService()

	routes, err := maps.NewRouteService(cfg.Maps.APIKey)
	if err != nil {
		log.Printf("main: routing disabled: %v", err)
	}

	planner := itinerary.NewOrchestrator(
		forecasts, venues, bookings, routes, gateway,
		cfg.Generation.ItineraryTemperature, cfg.Generation.ItineraryMaxTokens,
	)
	conversations := conversation.NewService(
		gateway, planner,
		cfg.Generation.IntakeTemperature, cfg.Generation.IntakeMaxTokens,
	)

	server := httpserver.NewServer(
		cfg.HTTP.Addr,
		handlers.NewChatHandler(conversations),
		handlers.NewWeatherHandler(forecasts),
	)
	if err := server.Run(ctx); err != nil {
		log.Fatalf("main: server stopped: %v", err)
	}
	log.Println("main: shutdown complete")
}
