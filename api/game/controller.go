package gameapi

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/beka-birhanu/vinom-paradox/game"
	"github.com/beka-birhanu/vinom-paradox/service/i"
	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
)

const (
	controlTimeout   = time.Second
	defaultRunsLimit = 10
	maxRunsLimit     = 100
)

// Controller errors.
var (
	ErrNilSession = errors.New("game session is nil")
	ErrNilEncoder = errors.New("encoder is nil")
	ErrNilLogger  = errors.New("logger is nil")
)

// GameController exposes a game session over HTTP and a websocket stream.
type GameController struct {
	session  i.GameSession
	encoder  game.Encoder
	logger   i.Logger
	upgrader websocket.Upgrader
}

// NewGameController initializes a GameController.
func NewGameController(session i.GameSession, encoder game.Encoder, logger i.Logger) (*GameController, error) {
	if session == nil {
		return nil, ErrNilSession
	}
	if encoder == nil {
		return nil, ErrNilEncoder
	}
	if logger == nil {
		return nil, ErrNilLogger
	}

	return &GameController{
		session: session,
		encoder: encoder,
		logger:  logger,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
		},
	}, nil
}

// Register registers the game routes.
func (gc *GameController) Register(route *gin.RouterGroup) {
	g := route.Group("/game")
	{
		g.POST("/start", gc.start)
		g.POST("/pause", gc.pause)
		g.POST("/resume", gc.resume)
		g.POST("/direction", gc.direction)
		g.GET("/state", gc.state)
		g.GET("/highscore", gc.highScore)
		g.GET("/runs", gc.runs)
		g.GET("/stream", gc.stream)
	}
}

// start handles run start requests. A run in progress is abandoned.
func (gc *GameController) start(ctx *gin.Context) {
	timeoutCtx, cancel := context.WithTimeout(ctx, controlTimeout)
	defer cancel()

	id, err := gc.session.StartRun(timeoutCtx)
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, &StartResponse{RunID: id.String()})
}

func (gc *GameController) pause(ctx *gin.Context) {
	gc.control(ctx, gc.session.Pause)
}

func (gc *GameController) resume(ctx *gin.Context) {
	gc.control(ctx, gc.session.Resume)
}

func (gc *GameController) control(ctx *gin.Context, fn func(context.Context) (bool, error)) {
	timeoutCtx, cancel := context.WithTimeout(ctx, controlTimeout)
	defer cancel()

	changed, err := fn(timeoutCtx)
	if err != nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": err.Error()})
		return
	}

	response := &ControlResponse{
		Changed: changed,
		Status:  string(gc.session.Snapshot().Status),
	}
	if !changed {
		ctx.JSON(http.StatusConflict, response)
		return
	}
	ctx.JSON(http.StatusOK, response)
}

// direction handles a key press or a swipe.
func (gc *GameController) direction(ctx *gin.Context) {
	var request DirectionRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	var (
		d  game.Direction
		ok bool
	)
	switch {
	case request.Key != "":
		d, ok = game.DirectionFromKey(request.Key)
		if !ok {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "unknown key"})
			return
		}
	case request.DX != nil && request.DY != nil:
		d, ok = game.DirectionFromSwipe(*request.DX, *request.DY)
		if !ok {
			ctx.JSON(http.StatusOK, &DirectionResponse{Accepted: false})
			return
		}
	default:
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "key or dx and dy required"})
		return
	}

	gc.session.SetDirection(d)
	ctx.JSON(http.StatusAccepted, &DirectionResponse{Accepted: true, Direction: d.String()})
}

func (gc *GameController) state(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, gc.session.Snapshot())
}

func (gc *GameController) highScore(ctx *gin.Context) {
	ctx.JSON(http.StatusOK, &HighScoreResponse{HighScore: gc.session.HighScore()})
}

// runs lists finished runs, best first.
func (gc *GameController) runs(ctx *gin.Context) {
	limit := int64(defaultRunsLimit)
	if raw := ctx.Query("limit"); raw != "" {
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil || n <= 0 || n > maxRunsLimit {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": "limit must be between 1 and 100"})
			return
		}
		limit = n
	}

	timeoutCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()

	runs, err := gc.session.Runs(timeoutCtx, limit)
	if err != nil {
		gc.logger.Error("listing runs: " + err.Error())
		ctx.JSON(http.StatusServiceUnavailable, gin.H{"error": "run history unavailable"})
		return
	}

	ctx.JSON(http.StatusOK, &RunsResponse{Runs: runs})
}
