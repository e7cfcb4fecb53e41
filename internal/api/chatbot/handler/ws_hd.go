package chatbotHandler

import (
	"GlamoraBackend/internal/api/chatbot"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/handlerUtil"
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/websocket/v2"
	jsoniter "github.com/json-iterator/go"
	"github.com/sirupsen/logrus"
	"golang.org/x/net/context"
)

const (
	wsReadTimeout  = 5 * time.Minute
	wsWriteTimeout = 10 * time.Second
)

type wsError struct {
	Error string `json:"error"`
	Code  string `json:"code,omitempty"`
}

func (h *ChatbotHandler) upgradeOnly(c *fiber.Ctx) error {
	if websocket.IsWebSocketUpgrade(c) {
		c.Locals("request_id", h.middleware.GetRequestID(c))
		return c.Next()
	}
	return fiber.ErrUpgradeRequired
}

// handleWebSocket serves a chat over one connection. Each text frame is a
// ChatRequest; the session of the first answer sticks to the connection.
func (h *ChatbotHandler) handleWebSocket(c *websocket.Conn) {
	requestID, _ := c.Locals("request_id").(string)
	log := h.log.WithField("request_id", requestID)

	log.Info("Chat WebSocket client connected")
	defer log.Info("Chat WebSocket client disconnected")

	sessionID := ""
	for {
		if err := c.SetReadDeadline(time.Now().Add(wsReadTimeout)); err != nil {
			log.Errorf("Error setting read deadline: %v", err)
			break
		}

		messageType, message, err := c.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseGoingAway, websocket.CloseNormalClosure) {
				log.Errorf("Chat WebSocket error: %v", err)
			}
			break
		}

		if messageType != websocket.TextMessage {
			log.Warnf("Received unexpected message type: %d", messageType)
			continue
		}

		ctx, cancel := context.WithTimeout(contextPkg.WithRequestID(context.Background(), requestID), requestTimeout)
		reply := h.answer(ctx, message, &sessionID)
		cancel()

		if err := c.SetWriteDeadline(time.Now().Add(wsWriteTimeout)); err != nil {
			log.Errorf("Error setting write deadline: %v", err)
			break
		}
		if err := c.WriteJSON(reply); err != nil {
			log.Errorf("Error writing JSON response: %v", err)
			break
		}
	}
}

// answer turns one frame into the value written back to the client.
func (h *ChatbotHandler) answer(ctx context.Context, message []byte, sessionID *string) interface{} {
	var req chatbot.ChatRequest
	if err := jsoniter.Unmarshal(message, &req); err != nil {
		return wsError{Error: "Validation failed: " + err.Error(), Code: "VALIDATION_ERROR"}
	}
	if req.SessionID == "" {
		req.SessionID = *sessionID
	}
	if err := h.validator.Struct(req); err != nil {
		return wsError{Error: "Validation failed: " + err.Error(), Code: "VALIDATION_ERROR"}
	}

	resp, err := h.chatbotService.Chat(ctx, req)
	if err != nil {
		if errors.Is(err, chatbot.ErrSessionBusy) {
			return wsError{Error: "Session is busy, try again", Code: "SESSION_BUSY"}
		}
		if errors.Is(err, chatbot.ErrInvalidInput) {
			return wsError{Error: "Invalid chat input", Code: "INVALID_INPUT"}
		}
		h.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"error":      err.Error(),
		}).Error("Chat over WebSocket failed")
		return wsError{Error: handlerUtil.InternalServerError}
	}

	*sessionID = resp.SessionID
	return resp
}
