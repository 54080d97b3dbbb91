package game

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/sirupsen/logrus"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/snake/internal/entity"
	"github.com/samdwyer/snake/internal/gamedata"
	"github.com/samdwyer/snake/internal/telemetry"
	"github.com/samdwyer/snake/internal/ui"
	"github.com/samdwyer/snake/internal/world"
)

// ErrNoColor is returned when the terminal cannot show the game's colors.
var ErrNoColor = errors.New("terminal does not support color")

// Outcome summarises a finished game.
type Outcome struct {
	Score  entity.Score
	Length int
	Ticks  int
	Lost   bool // False when the player quit while still running
}

// Game owns the screen and the round being played.
type Game struct {
	screen   *ui.Screen
	renderer *ui.Renderer
	board    world.Board
	round    *Round
	cfg      Config
	log      *logrus.Entry

	tick     time.Duration
	sleep    func(time.Duration)
	waitQuit func()
}

// New acquires the terminal and creates a game on it.
func New(cfg Config) (*Game, error) {
	screen, err := ui.NewScreen()
	if err != nil {
		return nil, err
	}
	return NewWithScreen(screen, cfg)
}

// NewWithScreen creates a game on an initialized screen. The game takes
// ownership of the screen and releases it on failure.
func NewWithScreen(screen *ui.Screen, cfg Config) (*Game, error) {
	if !screen.HasColor() {
		screen.Close()
		return nil, ErrNoColor
	}

	theme, err := gamedata.LoadTheme()
	if err != nil {
		screen.Close()
		return nil, fmt.Errorf("load theme: %w", err)
	}

	g := &Game{
		screen:   screen,
		renderer: ui.NewRenderer(screen, theme),
		board:    world.DefaultBoard(),
		cfg:      cfg,
		log:      logrus.WithField("session", cfg.SessionID),
		tick:     TickInterval,
		sleep:    time.Sleep,
	}
	g.waitQuit = screen.WaitQuit
	return g, nil
}

// Run plays one game until the player quits or loses and then quits.
// The screen is released before Run returns.
func (g *Game) Run(ctx context.Context) (Outcome, error) {
	defer g.Close()

	tracer := g.cfg.tracer()
	ctx, span := tracer.Start(ctx, "game.round",
		trace.WithAttributes(telemetry.SessionAttr(g.cfg.SessionID)))
	defer span.End()

	g.start(ctx, tracer)

	for g.round.State == StateRunning {
		if ctx.Err() != nil {
			g.log.WithError(ctx.Err()).Info("game cancelled")
			break
		}

		cmd := g.screen.ReadCommand()
		if cmd.Quit {
			g.log.Info("player quit")
			break
		}
		if cmd.Steers() {
			g.round.Steer(cmd.Direction)
		}

		res := g.round.Step()
		g.draw(res)

		if res.Ate {
			span.AddEvent("apple.eaten", trace.WithAttributes(
				attribute.Int("score", int(g.round.Score)),
				attribute.Int("snake.length", g.round.Snake.Len()),
			))
			g.log.WithFields(logrus.Fields{
				"score": g.round.Score,
				"apple": res.Apple.String(),
			}).Debug("apple eaten")
		}

		if res.Lost {
			g.lose(span, res)
			break
		}

		g.sleep(g.tick)
	}

	out := g.outcome()
	g.round.Close()
	span.SetAttributes(
		attribute.Int("game.score", int(out.Score)),
		attribute.Int("game.ticks", out.Ticks),
		attribute.Bool("game.lost", out.Lost),
	)
	g.log.WithFields(logrus.Fields{
		"score": out.Score,
		"ticks": out.Ticks,
		"lost":  out.Lost,
	}).Info("game over")

	return out, nil
}

// start sets up the round and draws the opening frame.
func (g *Game) start(ctx context.Context, tracer trace.Tracer) {
	_, span := tracer.Start(ctx, "game.init")
	defer span.End()

	g.round = NewRound(g.board, g.cfg.rng())

	g.renderer.DrawFrame(g.board)
	g.renderer.DrawScore(g.board, g.round.Score)
	g.renderer.DrawSnake(g.round.Snake)
	g.renderer.DrawApple(g.round.Apple)
	g.renderer.Show()

	head := g.round.Snake.Head()
	span.SetAttributes(
		attribute.Int("snake.head_x", head.X),
		attribute.Int("snake.head_y", head.Y),
		attribute.Int("apple.x", g.round.Apple.X),
		attribute.Int("apple.y", g.round.Apple.Y),
	)
	g.log.WithField("apple", g.round.Apple.String()).Info("game started")
}

// draw repaints the cells a tick changed.
func (g *Game) draw(res TickResult) {
	if !res.Moved {
		return
	}
	g.renderer.EraseCell(res.Vacated)
	g.renderer.DrawSnakeCell(res.Head)
	if res.Ate {
		g.renderer.DrawScore(g.board, g.round.Score)
		g.renderer.DrawSnakeCell(res.Grown)
		g.renderer.DrawApple(res.Apple)
	}
	g.renderer.Show()
}

// lose shows the loss message and blocks until the player quits.
func (g *Game) lose(span trace.Span, res TickResult) {
	span.AddEvent("game.lost", trace.WithAttributes(
		attribute.Int("head.x", res.Head.X),
		attribute.Int("head.y", res.Head.Y),
	))
	g.log.WithField("head", res.Head.String()).Info("collision")

	g.renderer.DrawLoss(g.board)
	g.renderer.Show()
	g.waitQuit()
}

func (g *Game) outcome() Outcome {
	return Outcome{
		Score:  g.round.Score,
		Length: g.round.Snake.Len(),
		Ticks:  g.round.Ticks,
		Lost:   g.round.State == StateLost,
	}
}

// Close releases the screen.
func (g *Game) Close() {
	if g.screen != nil {
		g.screen.Close()
	}
}
