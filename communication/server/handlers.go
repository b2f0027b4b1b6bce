package server

import (
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"zones/communication"
	"zones/gamemaster"
	"zones/searcher/agent"

	"github.com/rs/zerolog/log"
)

// maxBody bounds request payloads, a node is well under a kilobyte.
const maxBody = 64 << 10

func (s *Server) handleMoves(w http.ResponseWriter, r *http.Request) {
	var req communication.Node
	if !decode(w, r, &req) {
		return
	}
	node, err := req.Decode()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.MovesResponse{Moves: node.LegalMoves()})
}

func (s *Server) handleFindMove(w http.ResponseWriter, r *http.Request) {
	req := communication.FindMoveRequest{Difficulty: agent.Hard}
	if !decode(w, r, &req) {
		return
	}
	if !req.Difficulty.Valid() {
		writeError(w, http.StatusBadRequest, fmt.Errorf("unknown difficulty %d", int(req.Difficulty)))
		return
	}
	node, err := req.Node.Decode()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}

	seed := s.nextSeed()
	if req.Seed != nil {
		seed = *req.Seed
	}
	a := agent.NewDifficultyAgent(req.Difficulty, s.searcher, agent.NewRandom(seed))
	move, metric := a.FindMove(node)

	writeJSON(w, http.StatusOK, communication.FindMoveResponse{
		Move:    move,
		Pass:    metric.Pass,
		Metrics: communication.FromSearchMetric(metric),
	})
}

func (s *Server) handleStatus(w http.ResponseWriter, r *http.Request) {
	var req communication.NodeRequest
	if !decode(w, r, &req) {
		return
	}
	node, err := req.Node.Decode()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.FromStatus(gamemaster.StatusOf(node)))
}

func (s *Server) handleEvaluate(w http.ResponseWriter, r *http.Request) {
	var req communication.NodeRequest
	if !decode(w, r, &req) {
		return
	}
	node, err := req.Node.Decode()
	if err != nil {
		writeError(w, http.StatusBadRequest, err)
		return
	}
	writeJSON(w, http.StatusOK, communication.EvaluateResponse{Score: s.searcher.Evaluate(node)})
}

// decode reads a JSON body into v, answering 400 on failure.
func decode(w http.ResponseWriter, r *http.Request, v any) bool {
	dec := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBody))
	dec.DisallowUnknownFields()
	if err := dec.Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, fmt.Errorf("invalid payload: %w", err))
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		log.Error().Err(err).Msg("failed to write response")
	}
}

func writeError(w http.ResponseWriter, status int, err error) {
	var maxBytes *http.MaxBytesError
	if errors.As(err, &maxBytes) {
		status = http.StatusRequestEntityTooLarge
	}
	log.Debug().Err(err).Int("status", status).Msg("rejected request")
	writeJSON(w, status, communication.ErrorResponse{Error: err.Error()})
}
