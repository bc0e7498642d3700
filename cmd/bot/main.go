package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/bwmarrin/discordgo"
	"github.com/creatorsconnections/tokboard/internal/common/clock"
	"github.com/creatorsconnections/tokboard/internal/common/uuid"
	"github.com/creatorsconnections/tokboard/internal/handlers/discord"
	"github.com/creatorsconnections/tokboard/internal/handlers/health"
	"github.com/creatorsconnections/tokboard/internal/logging"
	"github.com/creatorsconnections/tokboard/internal/repositories/counter"
	"github.com/creatorsconnections/tokboard/internal/repositories/guildconfig"
	"github.com/creatorsconnections/tokboard/internal/repositories/linkmap"
	"github.com/creatorsconnections/tokboard/internal/repositories/session"
	"github.com/creatorsconnections/tokboard/internal/repositories/snapshot"
	"github.com/creatorsconnections/tokboard/internal/services/board"
	"github.com/creatorsconnections/tokboard/internal/services/handoff"
	"github.com/creatorsconnections/tokboard/internal/services/tracker"
	"github.com/creatorsconnections/tokboard/internal/services/weekly"
	"github.com/creatorsconnections/tokboard/internal/tiktok"
	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
)

func main() {
	// Load .env if present; deployed environments set variables directly
	_ = godotenv.Load()

	logger := logging.NewWithComponent("main")
	systemClock := &clock.DefaultClock{}

	// Initialize Redis client
	redisClient := redis.NewClient(&redis.Options{
		Addr:     getEnv("REDIS_ADDR", "localhost:6379"),
		Password: getEnv("REDIS_PASSWORD", ""),
		DB:       0,
	})

	// Test Redis connection
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := redisClient.Ping(ctx).Err(); err != nil {
		logger.WithError(err).Fatal("failed to connect to Redis")
	}

	// Initialize repositories
	guildConfigRepo, err := guildconfig.NewRedis(&guildconfig.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create guild config repository")
	}

	linkRepo, err := linkmap.NewRedis(&linkmap.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create link repository")
	}

	counterRepo, err := counter.NewRedis(&counter.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create counter repository")
	}

	sessionRepo, err := session.NewRedis(&session.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create session repository")
	}

	snapshotRepo, err := snapshot.NewRedis(&snapshot.Config{
		RedisClient: redisClient,
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create snapshot repository")
	}

	// Initialize the live event source
	liveSource, err := tiktok.New(&tiktok.Config{
		GatewayURL: getEnv("TIKTOK_GATEWAY_URL", ""),
		SessionID:  getEnv("TIKTOK_SESSION_ID", ""),
		Logger:     logging.NewWithComponent("tiktok"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create TikTok client")
	}

	// Get Discord token from environment
	discordToken := getEnv("DISCORD_TOKEN", "")
	if discordToken == "" {
		logger.Fatal("DISCORD_TOKEN environment variable is required")
	}

	// The session is shared between the bot, the publisher and the role rotator
	dg, err := discordgo.New("Bot " + discordToken)
	if err != nil {
		logger.WithError(err).Fatal("failed to create Discord session")
	}

	publisher, err := discord.NewPublisher(dg, guildConfigRepo)
	if err != nil {
		logger.WithError(err).Fatal("failed to create publisher")
	}

	roleRotator, err := discord.NewRoleRotator(dg, guildConfigRepo, logging.NewWithComponent("roles"))
	if err != nil {
		logger.WithError(err).Fatal("failed to create role rotator")
	}

	// Initialize services
	boardSvc, err := board.New(&board.Config{
		LinkRepo:    linkRepo,
		CounterRepo: counterRepo,
		Clock:       systemClock,
		Logger:      logging.NewWithComponent("board"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create board service")
	}

	handOffSvc, err := handoff.New(&handoff.Config{
		Publisher:    publisher,
		RoleRotator:  roleRotator,
		SnapshotRepo: snapshotRepo,
		UUID:         uuid.New(),
		Clock:        systemClock,
		Logger:       logging.NewWithComponent("handoff"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create hand-off service")
	}

	trackerSvc, err := tracker.New(&tracker.Config{
		Source:          liveSource,
		Board:           boardSvc,
		HandOff:         handOffSvc,
		Publisher:       publisher,
		SessionRepo:     sessionRepo,
		GuildConfigRepo: guildConfigRepo,
		Clock:           systemClock,
		Logger:          logging.NewWithComponent("tracker"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create tracker service")
	}

	weeklySvc, err := weekly.New(&weekly.Config{
		GuildConfigRepo: guildConfigRepo,
		CounterRepo:     counterRepo,
		Board:           boardSvc,
		HandOff:         handOffSvc,
		Clock:           systemClock,
		Logger:          logging.NewWithComponent("weekly"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create weekly scheduler")
	}

	// Initialize Discord bot
	bot, err := discord.New(&discord.Config{
		Session:         dg,
		ApplicationID:   getEnv("APPLICATION_ID", ""),
		GuildID:         getEnv("GUILD_ID", ""),
		TrackerService:  trackerSvc,
		BoardService:    boardSvc,
		LinkRepo:        linkRepo,
		GuildConfigRepo: guildConfigRepo,
		Logger:          logging.NewWithComponent("discord"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create Discord bot")
	}

	// Start the bot
	if err := bot.Start(); err != nil {
		logger.WithError(err).Fatal("failed to start Discord bot")
	}

	// Start the weekly rollover scheduler
	runCtx, stopRun := context.WithCancel(context.Background())
	go func() {
		if err := weeklySvc.Run(runCtx); err != nil {
			logger.WithError(err).Error("weekly scheduler stopped")
		}
	}()

	// Start the keep-alive server
	healthServer, err := health.New(&health.Config{
		Addr:   getEnv("HEALTH_ADDR", ""),
		Logger: logging.NewWithComponent("health"),
	})
	if err != nil {
		logger.WithError(err).Fatal("failed to create keep-alive server")
	}
	go func() {
		if err := healthServer.Run(); err != nil {
			logger.WithError(err).Error("keep-alive server stopped")
		}
	}()

	// Wait for interrupt signal to gracefully shutdown
	sc := make(chan os.Signal, 1)
	signal.Notify(sc, syscall.SIGINT, syscall.SIGTERM, os.Interrupt)
	<-sc

	logger.Info("shutting down")
	stopRun()

	// Close any open sessions so final leaderboards still go out
	stopCtx, stopCancel := context.WithTimeout(context.Background(), time.Minute)
	defer stopCancel()
	if err := trackerSvc.StopAll(stopCtx); err != nil {
		logger.WithError(err).Error("failed to stop trackers")
	}

	// Shutdown the bot
	if err := bot.Stop(); err != nil {
		logger.WithError(err).Error("failed to stop bot")
	}

	logger.Info("bot has been shut down")
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}
