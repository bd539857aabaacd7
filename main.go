package main

import (
	"context"
	"fmt"
	"math/rand"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/beka-birhanu/vinom-paradox/api"
	gameapi "github.com/beka-birhanu/vinom-paradox/api/game"
	api_i "github.com/beka-birhanu/vinom-paradox/api/i"
	"github.com/beka-birhanu/vinom-paradox/config"
	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/beka-birhanu/vinom-paradox/game/maze"
	mp "github.com/beka-birhanu/vinom-paradox/game/mp_encoder"
	"github.com/beka-birhanu/vinom-paradox/infrastruture/repo"
	"github.com/beka-birhanu/vinom-paradox/infrastruture/sortedstorage"
	logger "github.com/beka-birhanu/vinom-paradox/log"
	"github.com/beka-birhanu/vinom-paradox/service"
	"github.com/beka-birhanu/vinom-paradox/service/i"
	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// Global variables for dependencies
var (
	mongoClient    *mongo.Client
	redisClient    *redis.Client
	runRepo        i.RunRepo
	scoreStore     i.HighScoreStore
	keeper         *service.HighScoreKeeper
	paradoxGame    *game.Game
	gameSession    *service.GameSession
	gameController api_i.Controller
	router         *api.Router
	appLogger      i.Logger
)

func mustLogger(prefix, color string) i.Logger {
	l, err := logger.New(prefix, color, os.Stdout)
	if err != nil {
		fmt.Fprintf(os.Stderr, "creating %s logger: %v\n", prefix, err)
		os.Exit(1)
	}
	return l
}

func initMongo(ctx context.Context) {
	if config.Envs.MongoURI == "" {
		appLogger.Warning("MONGO_URI not set, run history disabled")
		return
	}

	var err error
	mongoClient, err = mongo.Connect(ctx, options.Client().ApplyURI(config.Envs.MongoURI))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Failed to connect to MongoDB: %v", err))
		os.Exit(1)
	}
	if err = mongoClient.Ping(ctx, nil); err != nil {
		appLogger.Error(fmt.Sprintf("MongoDB ping failed: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Connected to MongoDB")
}

func initRunRepo() {
	if mongoClient == nil {
		return
	}
	runRepo = repo.NewRunRepo(mongoClient, config.Envs.DBName, "runs")
	appLogger.Info("Run repository initialized")
}

func initScoreStore(ctx context.Context) {
	if config.Envs.RedisAddr == "" {
		scoreStore = sortedstorage.NewMemoryLeaderboard()
		appLogger.Warning("REDIS_ADDR not set, high scores kept in memory")
		return
	}

	redisClient = redis.NewClient(&redis.Options{
		Addr:     config.Envs.RedisAddr,
		Password: config.Envs.RedisPassword,
	})
	if err := redisClient.Ping(ctx).Err(); err != nil {
		appLogger.Warning(fmt.Sprintf("Redis ping failed, high scores may fall back to memory: %v", err))
	}

	var err error
	scoreStore, err = sortedstorage.NewRedisLeaderboard(redisClient, config.Envs.ScoreKey)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating redis leaderboard: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Redis leaderboard initialized")
}

func initKeeper() {
	var err error
	keeper, err = service.NewHighScoreKeeper(scoreStore, mustLogger("HIGH-SCORE", config.ColorYellow))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating high score keeper: %v", err))
		os.Exit(1)
	}
	appLogger.Info("High score keeper initialized")
}

func initGame() {
	layout, err := maze.Paradox()
	if err != nil {
		appLogger.Error(fmt.Sprintf("Loading maze layout: %v", err))
		os.Exit(1)
	}

	paradoxGame, err = game.New(layout, config.Envs.Tuning(), rand.New(rand.NewSource(config.Envs.Seed)))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game: %v", err))
		os.Exit(1)
	}
	appLogger.Info(fmt.Sprintf("Game initialized with %d dots", paradoxGame.DotsLeft()))
}

func initSession() {
	c := &service.SessionConfig{
		Game:     paradoxGame,
		TickRate: config.Envs.TickRate,
		Keeper:   keeper,
		Logger:   mustLogger("SESSION", config.ColorCyan),
	}
	if runRepo != nil {
		c.Runs = runRepo
	}

	var err error
	gameSession, err = service.NewGameSession(c)
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game session: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game session initialized")
}

func initGameController() {
	var err error
	gameController, err = gameapi.NewGameController(gameSession, &mp.MsgPack{}, mustLogger("STREAM", config.ColorPurple))
	if err != nil {
		appLogger.Error(fmt.Sprintf("Creating game controller: %v", err))
		os.Exit(1)
	}
	appLogger.Info("Game controller initialized")
}

func initRouter() {
	gin.SetMode(config.Envs.GinMode)
	router = api.NewRouter(api.Config{
		Addr:        fmt.Sprintf("%s:%v", config.Envs.HostIP, config.Envs.RESTPort),
		BaseURL:     "/api",
		Controllers: []api_i.Controller{gameController},
		Logger:      mustLogger("HTTP", config.ColorBlue),
	})
	appLogger.Info("Router initialized")
}

func main() {
	appLogger = mustLogger("APP", config.ColorGreen)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	initMongo(ctx)
	defer func() {
		if mongoClient != nil {
			_ = mongoClient.Disconnect(context.Background())
		}
	}()
	initRunRepo()

	initScoreStore(ctx)
	defer func() {
		if redisClient != nil {
			_ = redisClient.Close()
		}
	}()

	initKeeper()
	initGame()
	initSession()
	initGameController()
	initRouter()

	go gameSession.Start()
	defer func() {
		gameSession.Stop()
		<-gameSession.Done()
	}()

	errs := make(chan error, 1)
	go func() { errs <- router.Run() }()

	signals := make(chan os.Signal, 1)
	signal.Notify(signals, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errs:
		appLogger.Error(fmt.Sprintf("Starting server: %v", err))
	case sig := <-signals:
		appLogger.Info(fmt.Sprintf("Received %s, shutting down", sig))
	}
}
