package server

import (
	"context"
	"fmt"
	"net/http"
	"strconv"

	"zones/communication"
	"zones/engine"
	"zones/gamemaster"
	"zones/searcher/agent"

	"github.com/gorilla/websocket"
	"github.com/rs/zerolog/log"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
}

// handleWatch streams an AI-vs-AI game: one update message per applied
// turn, then the result. Query parameters: green and red pick the agent
// ("easy", "medium", "hard" or "random"), seed fixes every draw of the game.
func (s *Server) handleWatch(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	seed := s.nextSeed()
	if raw := query.Get("seed"); raw != "" {
		parsed, err := strconv.ParseUint(raw, 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, fmt.Errorf("invalid seed %q", raw))
			return
		}
		seed = parsed
	}
	green, err := s.newAgent(query.Get("green"), "hard", seed+1)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	red, err := s.newAgent(query.Get("red"), "easy", seed+2)
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Error().Err(err).Msg("websocket upgrade failed")
		return
	}
	defer conn.Close()

	// The game stops once the client is gone: a failed write or a read
	// error, which includes the client's close frame
	ctx, cancel := context.WithCancel(r.Context())
	defer cancel()
	go func() {
		defer cancel()
		for {
			if _, _, err := conn.NextReader(); err != nil {
				return
			}
		}
	}()

	var writeErr error
	send := func(msg communication.WatchMessage) {
		if writeErr != nil {
			return
		}
		if writeErr = conn.WriteJSON(msg); writeErr != nil {
			log.Warn().Err(writeErr).Msg("watch client gone")
			cancel()
		}
	}

	session := gamemaster.NewSession(agent.NewRandom(seed))
	e := engine.LocalEngine(session, green, red,
		engine.WithMaxTurns(s.maxTurns),
		engine.WithContext(ctx),
		engine.WithObserver(func(u gamemaster.Update) {
			update := communication.FromUpdate(u)
			send(communication.WatchMessage{Type: communication.UpdateMessage, Update: &update})
		}))
	e.Run()
	if ctx.Err() != nil {
		log.Info().Msgf("watch stopped after %d turns", session.Steps())
		return
	}

	result := communication.FromStatus(session.Status())
	send(communication.WatchMessage{
		Type:   communication.ResultMessage,
		Result: &result,
		Green:  green.Name(),
		Red:    red.Name(),
	})
	if writeErr == nil {
		conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	}
}

// newAgent builds the agent named by a watch query parameter.
func (s *Server) newAgent(name, fallback string, seed uint64) (agent.Agent, error) {
	if name == "" {
		name = fallback
	}
	return agent.New(name, s.searcher, agent.NewRandom(seed))
}
