package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"zones/communication"
	"zones/experiments/metrics"
	"zones/game"
	"zones/searcher/agent"

	"github.com/rs/zerolog/log"
)

// Client calls a running zones server.
type Client struct {
	serverURL string
	http      *http.Client
}

func NewClient(serverURL string, timeout time.Duration) *Client {
	return &Client{
		serverURL: serverURL,
		http:      &http.Client{Timeout: timeout},
	}
}

func (c *Client) Moves(ctx context.Context, node game.Node) ([]game.Position, error) {
	var resp communication.MovesResponse
	if err := c.post(ctx, "/v1/moves", communication.FromNode(node), &resp); err != nil {
		return nil, err
	}
	return resp.Moves, nil
}

func (c *Client) FindMove(ctx context.Context, node game.Node, difficulty agent.Difficulty) (communication.FindMoveResponse, error) {
	req := communication.FindMoveRequest{Node: communication.FromNode(node), Difficulty: difficulty}
	var resp communication.FindMoveResponse
	err := c.post(ctx, "/v1/findmove", req, &resp)
	return resp, err
}

func (c *Client) Status(ctx context.Context, node game.Node) (communication.Status, error) {
	var resp communication.Status
	err := c.post(ctx, "/v1/status", communication.NodeRequest{Node: communication.FromNode(node)}, &resp)
	return resp, err
}

func (c *Client) Evaluate(ctx context.Context, node game.Node) (int, error) {
	var resp communication.EvaluateResponse
	err := c.post(ctx, "/v1/evaluate", communication.NodeRequest{Node: communication.FromNode(node)}, &resp)
	return resp.Score, err
}

func (c *Client) post(ctx context.Context, path string, body, out any) error {
	data, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("encoding %s request: %w", path, err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.serverURL+path, bytes.NewReader(data))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("calling %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		var e communication.ErrorResponse
		raw, _ := io.ReadAll(resp.Body)
		if json.Unmarshal(raw, &e) == nil && e.Error != "" {
			return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, e.Error)
		}
		return fmt.Errorf("%s returned %d: %s", path, resp.StatusCode, raw)
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decoding %s response: %w", path, err)
	}
	return nil
}

type remoteAgent struct {
	client     *Client
	difficulty agent.Difficulty
}

// NewRemoteAgent returns an agent asking the server for its moves. A failed
// call yields the mover's own square, the engine then falls back to a legal move.
func NewRemoteAgent(client *Client, difficulty agent.Difficulty) agent.Agent {
	return remoteAgent{client: client, difficulty: difficulty}
}

func (a remoteAgent) FindMove(node game.Node) (game.Position, metrics.SearchMetric) {
	resp, err := a.client.FindMove(context.Background(), node, a.difficulty)
	if err != nil {
		log.Error().Err(err).Msg("remote move request failed")
		return node.Mover(), metrics.SearchMetric{}
	}
	m := resp.Metrics
	return resp.Move, metrics.SearchMetric{
		Depth:    m.Depth,
		Nodes:    m.Nodes,
		Leaves:   m.Leaves,
		Cutoffs:  m.Cutoffs,
		Duration: time.Duration(m.DurationUS) * time.Microsecond,
		Random:   m.Random,
		Pass:     resp.Pass,
	}
}

func (a remoteAgent) Name() string {
	return fmt.Sprintf("remote-%s", a.difficulty)
}
