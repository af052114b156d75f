package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/duelforge/duel-server-go/internal/ai"
	"github.com/duelforge/duel-server-go/internal/game"
)

// Router builds the gin engine with all routes registered.
func (s *Server) Router() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	api := router.Group("/api")
	{
		api.POST("/matches", s.handleCreateMatch)
		api.GET("/matches/:id", s.handleGetMatch)
		api.POST("/matches/:id/intents", s.handleSubmitIntent)
		api.GET("/matches/:id/events", s.handleGetEvents)
	}
	router.GET("/ws/matches/:id", s.handleWebSocket)

	return router
}

type createMatchRequest struct {
	PlayerName string `json:"player_name" binding:"required"`
	Difficulty string `json:"difficulty"`
}

type createMatchResponse struct {
	MatchID  string         `json:"match_id"`
	PlayerID string         `json:"player_id"`
	View     game.MatchView `json:"view"`
}

func (s *Server) handleCreateMatch(c *gin.Context) {
	var req createMatchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	level := ai.LevelEasy
	if req.Difficulty != "" {
		parsed, err := ai.ParseLevel(req.Difficulty)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		level = parsed
	}

	sess, err := s.CreateMatch(req.PlayerName, level)
	if err != nil {
		s.logger.Error("failed to create match", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "failed to create match"})
		return
	}

	c.JSON(http.StatusCreated, createMatchResponse{
		MatchID:  sess.MatchID(),
		PlayerID: sess.HumanID(),
		View:     sess.ViewFor(sess.HumanID()),
	})
}

func (s *Server) handleGetMatch(c *gin.Context) {
	sess, ok := s.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	c.JSON(http.StatusOK, sess.ViewFor(sess.HumanID()))
}

type intentRequest struct {
	Kind       string `json:"kind" binding:"required"`
	CardID     string `json:"card_id"`
	TargetID   string `json:"target_id"`
	AttackerID string `json:"attacker_id"`
	Replace    []int  `json:"replace"`
}

type intentResponse struct {
	Code    string         `json:"code"`
	Message string         `json:"message,omitempty"`
	View    game.MatchView `json:"view"`
}

// intentKinds maps wire names to intent kinds.
var intentKinds = map[string]game.IntentKind{
	"play_card": game.IntentPlayCard,
	"attack":    game.IntentAttack,
	"end_turn":  game.IntentEndTurn,
	"concede":   game.IntentConcede,
	"mulligan":  game.IntentMulligan,
	"keep_hand": game.IntentKeepHand,
}

func (s *Server) handleSubmitIntent(c *gin.Context) {
	sess, ok := s.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}

	var req intentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	kind, ok := intentKinds[req.Kind]
	if !ok {
		c.JSON(http.StatusBadRequest, gin.H{"error": "unknown intent kind " + req.Kind})
		return
	}

	result := s.SubmitHuman(sess, game.Intent{
		Kind:       kind,
		PlayerID:   sess.HumanID(),
		CardID:     req.CardID,
		TargetID:   req.TargetID,
		AttackerID: req.AttackerID,
		Replace:    req.Replace,
	})

	status := http.StatusOK
	if !result.OK() {
		status = http.StatusUnprocessableEntity
	}
	c.JSON(status, intentResponse{
		Code:    result.Code.String(),
		Message: result.Message,
		View:    sess.ViewFor(sess.HumanID()),
	})
}

func (s *Server) handleGetEvents(c *gin.Context) {
	sess, ok := s.Session(c.Param("id"))
	if !ok {
		c.JSON(http.StatusNotFound, gin.H{"error": "match not found"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"events": sess.History()})
}
