package chatbotService

import (
	"fmt"
	"math/rand"
	"sync"
	"time"
)

const generalGreetingChance = 0.3

// Randomizer is the random source behind greeting selection.
type Randomizer interface {
	Intn(n int) int
	Float64() float64
}

type lockedRand struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewRandomizer returns a goroutine-safe Randomizer seeded with seed.
func NewRandomizer(seed int64) Randomizer {
	return &lockedRand{r: rand.New(rand.NewSource(seed))}
}

func (l *lockedRand) Intn(n int) int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Intn(n)
}

func (l *lockedRand) Float64() float64 {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.r.Float64()
}

var greetings = map[string][]string{
	"morning": {
		"Good morning! Start your day with a touch of beauty. 🌞",
		"Rise and shine! Ready to pamper yourself today? ✨",
		"Good morning! Let's make today glow with beauty! 🌼",
		"Good morning! What beauty treat can we help you discover today? 💄",
		"Good morning! Time to look and feel fabulous! 🌸",
		"Morning, gorgeous! Let's make today fabulous together! 🌷",
	},
	"afternoon": {
		"Good afternoon! A little beauty break to refresh your day? 🌟",
		"Hello there! How about some mid-day glam to brighten your day? 💄",
		"Good afternoon! Ready to shop some beauty must-haves? 💅",
		"Afternoon, lovely! It's the perfect time for a beauty pick-me-up. 🌸",
		"Good afternoon! Ready to discover your next beauty obsession? 🌞",
	},
	"evening": {
		"Good evening! Wind down with some luxurious beauty products. ✨",
		"Evening vibes! Treat yourself to a little beauty pampering. 🌙",
		"Good evening! Ready for some nighttime beauty essentials? 🌜",
		"Evening, gorgeous! Let's end the day with a little glam. 🌟",
		"Good evening! Let's help you glow even after the sun sets. ✨",
	},
	"general": {
		"Hey there! How can I help you look your best today?",
		"Hello! Ready to find your new beauty favorites? 💋",
		"Welcome! Glamora's got just what you need to look stunning! ✨",
		"Hi! Let's explore the best beauty products for your next look. 💄",
		"Hi there! Let's create your perfect beauty routine together. 🌸",
		"Welcome to Glamora! Ready to find your next beauty must-have? 🌷",
	},
}

func timeOfDay(t time.Time) string {
	switch hour := t.Hour(); {
	case hour < 12:
		return "morning"
	case hour < 18:
		return "afternoon"
	default:
		return "evening"
	}
}

func (s *chatbotService) greeting() string {
	if s.random.Float64() < generalGreetingChance {
		general := greetings["general"]
		return general[s.random.Intn(len(general))]
	}

	bucket := timeOfDay(s.now())
	candidates := greetings[bucket]

	return fmt.Sprintf("%s It's a beautiful %s! 🌷", candidates[s.random.Intn(len(candidates))], bucket)
}
