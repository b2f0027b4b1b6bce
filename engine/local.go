package engine

import (
	"context"
	"time"

	"zones/experiments/metrics"
	"zones/game"
	"zones/gamemaster"
	"zones/searcher/agent"
	"zones/utils"

	"github.com/rs/zerolog/log"
)

type Option func(e *Local)

// WithMaxTurns stops the game after n applied turns.
func WithMaxTurns(n int) Option {
	return func(e *Local) {
		if n > 0 {
			e.maxTurns = n
		}
	}
}

// WithObserver calls observe after every applied turn.
func WithObserver(observe func(gamemaster.Update)) Option {
	return func(e *Local) {
		e.observe = observe
	}
}

// WithContext stops the game before the next turn once ctx is done.
func WithContext(ctx context.Context) Option {
	return func(e *Local) {
		if ctx != nil {
			e.ctx = ctx
		}
	}
}

// Local runs a game between two in-process agents.
type Local struct {
	session  *gamemaster.Session
	agents   map[game.Color]agent.Agent
	maxTurns int
	observe  func(gamemaster.Update)
	ctx      context.Context
}

func LocalEngine(session *gamemaster.Session, green, red agent.Agent, options ...Option) *Local {
	if session == nil {
		panic("session is nil")
	}
	if green == nil || red == nil {
		panic("need an agent for both players")
	}

	e := &Local{
		session:  session,
		agents:   map[game.Color]agent.Agent{game.Green: green, game.Red: red},
		maxTurns: MaxTurns,
		ctx:      context.Background(),
	}
	for _, option := range options {
		option(e)
	}
	return e
}

func (e *Local) Session() *gamemaster.Session {
	return e.session
}

// Run executes the game loop until the session is over, the turn limit is
// reached or the context is done.
func (e *Local) Run() (metrics.GameMetric, []metrics.MoveMetric) {
	start := time.Now()
	node := e.session.Node()
	log.Info().Msgf("%s (green) at %v vs %s (red) at %v",
		e.agents[game.Green].Name(), node.Green, e.agents[game.Red].Name(), node.Red)

	var moveMetrics []metrics.MoveMetric
	turns := 0
	for !e.session.Over() && turns < e.maxTurns && e.ctx.Err() == nil {
		color := e.session.Turn()
		update, metric := e.turn(color)

		moveMetrics = append(moveMetrics, metrics.MoveMetric{
			Step:         update.Step,
			Player:       color.String(),
			SearchMetric: metric,
		})
		if e.observe != nil {
			e.observe(update)
		}
		turns++
	}

	status := e.session.Status()
	end := time.Now()
	gameMetric := metrics.GameMetric{
		Winner:     status.Winner.String(),
		GreenZones: status.GreenZones,
		RedZones:   status.RedZones,
		Turns:      turns,
		Passes:     e.session.Passes(),
		Painted:    status.Painted,
		Stalled:    status.Stalled,
		Complete:   status.Complete,
		StartTime:  start,
		EndTime:    end,
		Duration:   end.Sub(start),
	}

	if e.session.Over() {
		log.Info().Msgf("game over after %d turns, winner: %s (%d-%d)", turns, gameMetric.Winner, status.GreenZones, status.RedZones)
	} else {
		log.Info().Msgf("stopped after %d turns with %d cells painted", turns, status.Painted)
	}
	return gameMetric, moveMetrics
}

// turn asks the mover's agent for a move. A move outside the legal set is
// replaced by the first legal move, a stuck mover passes.
func (e *Local) turn(color game.Color) (gamemaster.Update, metrics.SearchMetric) {
	node := e.session.Node()
	a := e.agents[color]
	move, metric := a.FindMove(node)

	moves := node.LegalMoves()
	if len(moves) == 0 {
		metric.Pass = true
		update, err := e.session.Pass(color)
		if err != nil {
			panic(err) // The session disagrees with the node it handed out
		}
		log.Debug().Msgf("%s passes at %v", color, move)
		return update, metric
	}

	if utils.FindIndex(moves, move) < 0 {
		log.Warn().Msgf("%s returned illegal move %v for %s, playing %v", a.Name(), move, color, moves[0])
		move = moves[0]
		metric.Pass = false
	}

	update, err := e.session.Play(color, move)
	if err != nil {
		panic(err)
	}
	log.Debug().Msgf("step %d: %s to %v", update.Step, color, move)
	return update, metric
}
