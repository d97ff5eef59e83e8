package chat

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/medatlas/directory-api/internal/handler"
	"github.com/medatlas/directory-api/internal/model"
	"github.com/medatlas/directory-api/internal/service/chat"
	"github.com/medatlas/directory-api/internal/service/directory"
	apperrors "github.com/medatlas/directory-api/pkg/errors"
	"github.com/medatlas/directory-api/pkg/metrics"
)

type Handler struct {
	engine      *chat.Engine
	transcripts *chat.TranscriptStore
	directory   *directory.Service
	metrics     *metrics.Metrics
}

func NewHandler(engine *chat.Engine, transcripts *chat.TranscriptStore, dir *directory.Service, m *metrics.Metrics) *Handler {
	return &Handler{engine: engine, transcripts: transcripts, directory: dir, metrics: m}
}

func (h *Handler) RegisterRoutes(r *gin.RouterGroup) {
	r.POST("/hospitals/:id/chat", h.SendMessage)
	r.GET("/hospitals/:id/chat/:sessionId", h.GetTranscript)
}

// SendMessage runs one chat exchange: the user message and the generated
// reply are appended to the session transcript. A session is created
// when the request carries no session_id.
func (h *Handler) SendMessage(c *gin.Context) {
	hospital, ok := h.lookupHospital(c)
	if !ok {
		return
	}

	var req model.ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		handler.AbortWithError(c, apperrors.NewBadRequest(err.Error(), err))
		return
	}

	sessionID := req.SessionID
	if sessionID == "" {
		sessionID = h.transcripts.NewSession()
	}

	start := time.Now()
	reply := h.engine.Respond(req.Message, hospital)
	if h.metrics != nil {
		h.metrics.ChatResponseTime.Observe(time.Since(start).Seconds())
	}

	userMsg := model.NewChatMessage(model.SenderUser, req.Message)
	botMsg := model.NewChatMessage(model.SenderBot, reply)
	h.transcripts.Append(sessionID, userMsg, botMsg)

	c.JSON(http.StatusOK, handler.NewSuccessResponse(model.ChatReply{
		SessionID: sessionID,
		Message:   botMsg,
	}))
}

func (h *Handler) GetTranscript(c *gin.Context) {
	if _, ok := h.lookupHospital(c); !ok {
		return
	}

	transcript, ok := h.transcripts.Get(c.Param("sessionId"))
	if !ok {
		handler.AbortWithError(c, apperrors.NewNotFound("session", nil))
		return
	}

	c.JSON(http.StatusOK, handler.NewSuccessResponse(gin.H{
		"messages": transcript,
		"count":    len(transcript),
	}))
}

func (h *Handler) lookupHospital(c *gin.Context) (*model.Hospital, bool) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		handler.AbortWithError(c, apperrors.NewBadRequest("invalid hospital ID", err))
		return nil, false
	}
	hospital, ok := h.directory.Catalog().ByID(id)
	if !ok {
		handler.AbortWithError(c, apperrors.NewNotFound("hospital", nil))
		return nil, false
	}
	return hospital, true
}
