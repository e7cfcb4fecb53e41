package chatbotService

import (
	"GlamoraBackend/internal/entity"
	"GlamoraBackend/pkg/nlp"
	"context"
	"fmt"
	"strings"
	"time"
)

const categoryListLimit = 10

type category struct {
	name        string
	description string
}

var categories = []category{
	{"skincare", "Our skincare products are designed to give you glowing and healthy skin."},
	{"makeup", "Explore our range of makeup products for a flawless look."},
	{"haircare", "Find haircare products that nourish and style your hair perfectly."},
	{"fragrance", "Discover our collection of enchanting fragrances."},
	{"bath & body", "Relax and rejuvenate with our bath & body essentials."},
	{"nail care", "Keep your nails stylish and healthy with our nail care range."},
	{"tools & brushes", "Professional tools and brushes to elevate your beauty routine."},
	{"men's grooming", "Premium grooming products tailored for men."},
}

var (
	skinTypes = []string{"dry skin", "oily skin", "sensitive skin", "combination skin"}
	occasions = []string{"wedding", "office", "party", "casual", "date night"}
)

func (s *chatbotService) price(amount float64) string {
	return fmt.Sprintf("%s %.2f", s.cfg.Currency, amount)
}

func (s *chatbotService) productList(products []entity.Product) string {
	lines := make([]string, 0, len(products))
	for _, p := range products {
		lines = append(lines, fmt.Sprintf("%s - %s (%.1f stars)", p.Name, s.price(p.Price), p.Rating))
	}
	return strings.Join(lines, "\n")
}

func (s *chatbotService) productInfo(ctx context.Context, t turn) (reply, error) {
	p, found, err := s.engine.FindBest(ctx, t.input)
	if err != nil {
		return reply{}, err
	}

	if !found {
		return reply{text: fmt.Sprintf("Hmm, I couldn't find anything related to \"%s\". "+
			"Could you tell me more or try rephrasing? I'm happy to assist! 😅", strings.TrimSpace(t.input))}, nil
	}

	return reply{
		text: fmt.Sprintf("The product \"%s\" is fantastic! It costs %s. Here's a quick overview: %s. 😍 "+
			"Let me know if you need more details or want to explore similar options.",
			p.Name, s.price(p.Price), strings.TrimSuffix(p.Description, ".")),
		preferences: []string{p.Category},
	}, nil
}

func (s *chatbotService) productRecommendation(ctx context.Context, t turn) (reply, error) {
	rec, err := s.engine.Recommend(ctx, t.input, t.session.Preferences)
	if err != nil {
		return reply{}, err
	}

	if len(rec.Products) == 0 {
		return reply{text: "I couldn't find products matching your preferences. Could you clarify or provide more details?"}, nil
	}

	header := "Here are some recommended products based on your query:"
	if rec.Personalized {
		header = fmt.Sprintf("Here are some personalized recommendations based on your interest in %s:",
			strings.Join(t.session.Preferences, ", "))
	}

	return reply{text: header + "\n" + s.productList(rec.Products)}, nil
}

func (s *chatbotService) categoryInfo(ctx context.Context, t turn) (reply, error) {
	names := make([]string, 0, len(categories))
	for _, c := range categories {
		names = append(names, c.name)
	}

	name, ok := nlp.FindTerm(t.input, names)
	if !ok {
		return reply{text: "I couldn't recognize the category. Please try again! " +
			"We carry skincare, makeup, haircare, fragrance, bath & body, nail care, tools & brushes and men's grooming."}, nil
	}

	var description string
	for _, c := range categories {
		if c.name == name {
			description = c.description
		}
	}

	products, err := s.engine.TopRatedInCategory(ctx, name, categoryListLimit)
	if err != nil {
		return reply{}, err
	}

	if len(products) == 0 {
		return reply{
			text:        description + "\n\nUnfortunately, we don't have products in this category at the moment.",
			preferences: []string{name},
		}, nil
	}

	return reply{
		text:        description + "\n\nHere are some of our top-rated products:\n" + s.productList(products),
		preferences: []string{name},
	}, nil
}

func (s *chatbotService) skinType(ctx context.Context, t turn) (reply, error) {
	term, ok := nlp.FindTerm(t.input, skinTypes)
	if !ok {
		return reply{text: "Could you tell me your skin type? For example dry skin, oily skin or sensitive skin. 😊"}, nil
	}
	return s.suggest(ctx, term, "Here are some products we love for "+term+":")
}

func (s *chatbotService) occasion(ctx context.Context, t turn) (reply, error) {
	term, ok := nlp.FindTerm(t.input, occasions)
	if !ok {
		return reply{text: "What's the occasion? A wedding, the office, a party or something casual? 🎉"}, nil
	}
	return s.suggest(ctx, term, "Here are some picks that are perfect for a "+term+":")
}

// season always answers for the current month, whatever season the shopper named.
func (s *chatbotService) season(ctx context.Context, _ turn) (reply, error) {
	term := seasonOf(s.now())
	return s.suggest(ctx, term, "Here are our favourites for "+term+":")
}

func (s *chatbotService) suggest(ctx context.Context, term, header string) (reply, error) {
	products, err := s.engine.Search(ctx, term)
	if err != nil {
		return reply{}, err
	}

	if len(products) == 0 {
		return reply{text: fmt.Sprintf("I couldn't find products for %s right now. "+
			"Would you like to browse our top-rated products instead?", term)}, nil
	}

	return reply{text: header + "\n" + s.productList(products)}, nil
}

// seasonOf maps a date to its meteorological season.
func seasonOf(t time.Time) string {
	switch t.Month() {
	case time.March, time.April, time.May:
		return "spring"
	case time.June, time.July, time.August:
		return "summer"
	case time.September, time.October, time.November:
		return "fall"
	default:
		return "winter"
	}
}
