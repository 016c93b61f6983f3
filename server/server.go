package server

import (
	"encoding/json"
	"fmt"
	"net/http"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/pokerkit/showdown/cards"
	"github.com/pokerkit/showdown/hands"
)

// Server exposes the hand-evaluation engine as a stateless request/response
// service. It holds no tables and no game state: every request carries the
// full set of cards to judge and gets a verdict back.
type Server struct {
	cfg      Config
	logger   *log.Logger
	upgrader websocket.Upgrader
}

// NewServer creates a showdown evaluation server.
func NewServer(cfg Config, logger *log.Logger) *Server {
	return &Server{
		cfg:    cfg,
		logger: logger.WithPrefix("server"),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				return true // In production, implement proper origin checks
			},
		},
	}
}

// PlayerHand is one player's hole cards in a showdown request.
type PlayerHand struct {
	ID   string   `json:"id"`
	Hole []string `json:"hole"`
}

// ShowdownRequest asks the engine to judge a full showdown: every player's
// hole cards plus the shared community cards.
type ShowdownRequest struct {
	Players   []PlayerHand `json:"players"`
	Community []string     `json:"community"`
}

// PlayerResult is one player's verdict in a showdown response.
type PlayerResult struct {
	ID        string   `json:"id"`
	Category  int      `json:"category"`
	Label     string   `json:"label"`
	TieBreaks []int    `json:"tieBreaks"`
	BestHand  []string `json:"bestHand"`
}

// ShowdownResponse carries every player's best hand and the winner set.
type ShowdownResponse struct {
	Results []PlayerResult `json:"results"`
	Winners []string       `json:"winners"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Handler returns the HTTP handler serving the evaluation endpoints.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/health", s.handleHealth)
	mux.HandleFunc("/showdown", s.handleShowdown)
	mux.HandleFunc("/ws", s.handleWebSocket)
	return mux
}

// Start runs the HTTP server until it fails.
func (s *Server) Start() error {
	srv := &http.Server{
		Addr:         s.cfg.Addr,
		Handler:      s.Handler(),
		ReadTimeout:  s.cfg.ReadTimeout,
		WriteTimeout: s.cfg.WriteTimeout,
	}

	s.logger.Info("starting showdown evaluation server", "addr", s.cfg.Addr)
	return srv.ListenAndServe()
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(`{"status":"ok"}`))
}

func (s *Server) handleShowdown(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		writeJSON(w, http.StatusMethodNotAllowed, errorResponse{Error: "POST only"})
		return
	}

	var req ShowdownRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: fmt.Sprintf("invalid request: %v", err)})
		return
	}

	resp, err := s.evaluateShowdown(req)
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// handleWebSocket serves the same showdown requests as JSON frames for
// clients that keep a connection open across many evaluations.
func (s *Server) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Error("websocket upgrade failed", "err", err)
		return
	}
	defer conn.Close()

	connID := uuid.NewString()
	logger := s.logger.With("conn", connID)
	logger.Info("client connected", "remote", conn.RemoteAddr())

	for {
		var req ShowdownRequest
		if err := conn.ReadJSON(&req); err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				logger.Error("read failed", "err", err)
			}
			logger.Info("client disconnected")
			return
		}

		resp, err := s.evaluateShowdown(req)
		if err != nil {
			if err := conn.WriteJSON(errorResponse{Error: err.Error()}); err != nil {
				logger.Error("write failed", "err", err)
				return
			}
			continue
		}

		if err := conn.WriteJSON(resp); err != nil {
			logger.Error("write failed", "err", err)
			return
		}
	}
}

// evaluateShowdown judges one showdown request: best five-card hand per
// player over hole+community, then winners by max score with ties kept.
func (s *Server) evaluateShowdown(req ShowdownRequest) (*ShowdownResponse, error) {
	if len(req.Players) == 0 {
		return nil, fmt.Errorf("showdown needs at least one player")
	}

	community, err := parseCards(req.Community)
	if err != nil {
		return nil, fmt.Errorf("community cards: %w", err)
	}

	results := make([]PlayerResult, 0, len(req.Players))
	scores := make([]hands.PlayerScore, 0, len(req.Players))

	for _, player := range req.Players {
		hole, err := parseCards(player.Hole)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", player.ID, err)
		}

		pool := append(hole, community...)
		best, err := hands.BestHand(pool)
		if err != nil {
			return nil, fmt.Errorf("player %s: %w", player.ID, err)
		}

		results = append(results, toPlayerResult(player.ID, best))
		scores = append(scores, hands.PlayerScore{PlayerID: player.ID, Score: best.Score})
	}

	return &ShowdownResponse{
		Results: results,
		Winners: hands.Winners(scores),
	}, nil
}

func toPlayerResult(playerID string, best hands.Evaluation) PlayerResult {
	tieBreaks := make([]int, len(best.Score.TieBreaks))
	for i, rank := range best.Score.TieBreaks {
		tieBreaks[i] = int(rank)
	}

	bestHand := make([]string, len(best.Cards))
	for i, card := range best.Cards {
		bestHand[i] = card.String()
	}

	return PlayerResult{
		ID:        playerID,
		Category:  int(best.Score.Category),
		Label:     best.Score.Category.String(),
		TieBreaks: tieBreaks,
		BestHand:  bestHand,
	}
}

func parseCards(shorthands []string) (cards.Stack, error) {
	stack := make(cards.Stack, 0, len(shorthands))
	for _, s := range shorthands {
		card, err := cards.ParseCard(s)
		if err != nil {
			return nil, err
		}
		stack = append(stack, card)
	}
	return stack, nil
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}
