package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"
	_ "time/tzdata"

	"todo-summary-assistant/config"
	_ "todo-summary-assistant/docs" // Swagger docs
	"todo-summary-assistant/internal/httpserver"
	"todo-summary-assistant/internal/middleware"
	"todo-summary-assistant/internal/notification"
	summaryHTTP "todo-summary-assistant/internal/summary/delivery/http"
	"todo-summary-assistant/internal/summary/generator"
	summaryUC "todo-summary-assistant/internal/summary/usecase"
	todoHTTP "todo-summary-assistant/internal/todo/delivery/http"
	"todo-summary-assistant/internal/todo/repository/memory"
	todoUC "todo-summary-assistant/internal/todo/usecase"
	"todo-summary-assistant/pkg/datemath"
	"todo-summary-assistant/pkg/llmprovider"
	"todo-summary-assistant/pkg/log"
	"todo-summary-assistant/pkg/slack"
	"todo-summary-assistant/pkg/telegram"
)

// @title       Todo Summary Assistant API
// @description Todo tracker with LLM-assisted summaries delivered to Slack.
// @version     1
// @host        localhost:5000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Todo Summary Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Date math
	dateMathParser, err := datemath.NewParser(cfg.Summary.Timezone)
	if err != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Summary.Timezone, err)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 4. Todo domain
	todoRepo := memory.New(logger, memory.Options{SeedSamples: cfg.Todo.SeedSamples})
	todoUseCase := todoUC.New(logger, todoRepo, dateMathParser)

	// 5. Summary generator: LLM when a provider is configured, deterministic otherwise
	var summaryGen generator.Generator = generator.NewFallback(dateMathParser, cfg.Summary.TopTasks)
	if cfg.LLM.HasUsableProvider() {
		providers, pErr := llmprovider.InitializeProviders(&cfg.LLM, logger)
		if pErr != nil {
			logger.Warnf(ctx, "LLM providers unavailable, using fallback summaries: %v", pErr)
		} else {
			manager := llmprovider.NewManager(providers, llmprovider.NewManagerConfig(&cfg.LLM), logger)
			summaryGen = generator.NewLLM(logger, manager, summaryGen)
			logger.Infof(ctx, "LLM summaries enabled with %d provider(s)", len(providers))
		}
	} else {
		logger.Warn(ctx, "No LLM provider configured, using fallback summaries")
	}

	// 6. Notification channels
	slackClient := slack.New(slack.Config{
		WebhookURL: cfg.Slack.WebhookURL,
		HTTPClient: &http.Client{Timeout: parseTimeout(cfg.Slack.Timeout, slack.DefaultTimeout)},
	})
	if !slackClient.Configured() {
		logger.Warn(ctx, "SLACK_WEBHOOK_URL is not set, Slack delivery will report failure")
	}
	slackSender := notification.NewSlackSender(logger, slackClient)

	var telegramSender notification.Sender
	if cfg.Telegram.BotToken != "" {
		bot, tgErr := telegram.NewBot(telegram.Config{Token: cfg.Telegram.BotToken})
		if tgErr != nil {
			logger.Warnf(ctx, "Telegram bot not available: %v", tgErr)
		} else {
			telegramSender = notification.NewTelegramSender(logger, bot, cfg.Telegram.ChatID)
		}
	}

	// 7. Summary domain
	summaryUseCase := summaryUC.New(logger, todoUseCase, summaryGen, slackSender, telegramSender)

	// 8. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:         logger,
		Port:           cfg.HTTPServer.Port,
		Mode:           cfg.HTTPServer.Mode,
		Environment:    cfg.Environment.Name,
		Middleware:     middleware.New(logger, middleware.Config{RateLimitPerMin: cfg.RateLimit.PerMin}),
		TodoHandler:    todoHTTP.New(logger, todoUseCase),
		SummaryHandler: summaryHTTP.New(logger, summaryUseCase),
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 9. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(context.Background(), "Server stopped gracefully")
}

func parseTimeout(value string, fallback time.Duration) time.Duration {
	d, err := time.ParseDuration(value)
	if err != nil || d <= 0 {
		return fallback
	}
	return d
}
