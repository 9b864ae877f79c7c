package reply

import (
	"fmt"
	"math/rand"
	"strings"
)

var (
	flavorMoods = []string{
		"gentle", "hopeful", "tender", "comforting", "reassuring", "sincere", "soft-spoken",
	}

	flavorMetaphors = []string{
		"like sunrise breaking through clouds",
		"like rain falling gently on dry land",
		"like a friend sitting silently beside you",
		"like warm hands around a cold heart",
		"like whispers of hope in a storm",
	}

	flavorFrames = []string{
		"Speak as someone who has felt this pain too.",
		"Talk as if you're wrapping the person in a warm blanket of peace.",
		"Speak to their heart as a soul who cares deeply.",
		"Use words that feel like a calm sea after waves of distress.",
	}
)

// toneFlavor composes a randomized tone instruction so consecutive replies
// don't read identically.
func toneFlavor(rng *rand.Rand) string {
	mood := flavorMoods[rng.Intn(len(flavorMoods))]
	metaphor := flavorMetaphors[rng.Intn(len(flavorMetaphors))]
	frame := flavorFrames[rng.Intn(len(flavorFrames))]
	return fmt.Sprintf("%s tone, %s, %s", capitalize(mood), metaphor, frame)
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
