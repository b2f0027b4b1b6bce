package engine

import "zones/experiments/metrics"

// MaxTurns bounds a game when no other limit is configured. Pieces may
// wander the neutral squares forever without painting.
const MaxTurns = 500

type Engine interface {
	// Run plays a game until the board is complete, the game stalls or the
	// turn limit is reached
	Run() (gameMetric metrics.GameMetric, moveMetrics []metrics.MoveMetric)
}
