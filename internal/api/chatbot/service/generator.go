package chatbotService

import (
	"GlamoraBackend/pkg/conversation"
	contextPkg "GlamoraBackend/pkg/context"
	"GlamoraBackend/pkg/intent"
	"context"
	"fmt"

	"github.com/sirupsen/logrus"
)

const (
	returnPolicyResponse = "You can return any unopened product within 14 days of delivery for a full refund. " +
		"Opened items can be exchanged if they arrive damaged. Just share your order ID and we'll guide you through it. 🔄"
	deliveryTimeResponse = "Orders within Nairobi arrive in 1-2 business days, and the rest of the country in 3-5 business days. " +
		"You'll get a notification as soon as your package ships. 🚚"
	feedbackResponse = "Thank you for sharing your thoughts with us! Your feedback helps Glamora get better every day. 💖"
	generalResponse  = "I'm not sure what you mean. Let me know how I can assist you better. " +
		"Maybe you want to check out products, track orders, or browse categories? 🤔"
)

type turn struct {
	input   string
	intent  intent.Intent
	session *conversation.Context
}

// reply is a handler's answer plus the category preferences it learned.
type reply struct {
	text        string
	preferences []string
}

type intentHandler struct {
	handle func(ctx context.Context, t turn) (reply, error)
	// apology replaces the answer when handle fails
	apology string
}

func static(text string) func(context.Context, turn) (reply, error) {
	return func(context.Context, turn) (reply, error) {
		return reply{text: text}, nil
	}
}

func (s *chatbotService) registerHandlers() map[intent.Intent]intentHandler {
	return map[intent.Intent]intentHandler{
		intent.Greeting: {
			handle: func(context.Context, turn) (reply, error) {
				return reply{text: s.greeting()}, nil
			},
			apology: "Hello! Welcome to Glamora. 🌷",
		},
		intent.ProductInfo: {
			handle:  s.productInfo,
			apology: "Sorry, there was an issue fetching the product details. Please try again later. 🙇",
		},
		intent.ProductRecommendation: {
			handle:  s.productRecommendation,
			apology: "There was an error fetching product recommendations. Please try again later.",
		},
		intent.CategoryInfo: {
			handle:  s.categoryInfo,
			apology: "Sorry, I couldn't load that category right now. Please try again later.",
		},
		intent.SkinType: {
			handle:  s.skinType,
			apology: "Sorry, I couldn't load skincare suggestions right now. Please try again later.",
		},
		intent.Occasion: {
			handle:  s.occasion,
			apology: "Sorry, I couldn't load suggestions for that occasion right now. Please try again later.",
		},
		intent.Season: {
			handle:  s.season,
			apology: "Sorry, I couldn't load seasonal picks right now. Please try again later.",
		},
		intent.OrderStatus: {
			handle:  s.orderStatus,
			apology: "Sorry, I couldn't check your order right now. Please try again later. 🙇",
		},
		intent.ReturnPolicy: {
			handle:  static(returnPolicyResponse),
			apology: returnPolicyResponse,
		},
		intent.DeliveryTime: {
			handle:  static(deliveryTimeResponse),
			apology: deliveryTimeResponse,
		},
		intent.Feedback: {
			handle:  static(feedbackResponse),
			apology: feedbackResponse,
		},
		intent.GeneralQuery: {
			handle:  static(generalResponse),
			apology: generalResponse,
		},
	}
}

// GenerateResponse answers input for an already classified intent. convo is
// the session state before this message; it is not modified.
func (s *chatbotService) GenerateResponse(ctx context.Context, input string, in intent.Intent, sessionID string, convo *conversation.Context) string {
	if convo == nil {
		convo = &conversation.Context{SessionID: sessionID}
	}
	return s.generate(ctx, turn{input: input, intent: in, session: convo}).text
}

func (s *chatbotService) generate(ctx context.Context, t turn) reply {
	if followUp := s.followUp(t); followUp != "" {
		return reply{text: followUp}
	}

	h, ok := s.handlers[t.intent]
	if !ok {
		h = s.handlers[intent.GeneralQuery]
	}

	r, err := h.handle(ctx, t)
	if err != nil {
		s.log.WithFields(logrus.Fields{
			"request_id": contextPkg.GetRequestID(ctx),
			"session_id": t.session.SessionID,
			"intent":     t.intent.String(),
			"error":      err.Error(),
		}).Error("Intent handler failed")
		return reply{text: h.apology}
	}

	return r
}

// followUp asks an order question about the product discussed in the
// previous turn.
func (s *chatbotService) followUp(t turn) string {
	if t.intent != intent.OrderStatus || t.session.LastIntent != intent.ProductInfo {
		return ""
	}

	last, ok := t.session.LastTurn()
	if !ok || last.Query == "" {
		return ""
	}

	return fmt.Sprintf("Earlier you asked: \"%s\". Are you checking on an order that includes this product? "+
		"Share your order ID and I'll look it up for you. 📦", last.Query)
}
