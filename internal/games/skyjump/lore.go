package skyjump

import "strings"

// Lore is the story shown on the home screen.
const Lore = "The conflict between Gonggong and Zhurong has shattered the heavens.\n\n" +
	"You are Nuwa, creator deity and mother of humanity.\n\n" +
	"Ascend to gather:\n" +
	"1. The Five Colored Stones\n" +
	"2. The Leg of the Great Turtle Ao\n\n" +
	"Only then can you restore the cosmic pillars.\n\n" +
	"Press SPACE to Ascend."

// WrapText breaks text into lines no wider than maxWidth, as measured by
// measure. Explicit newlines are kept, so blank lines survive. A single
// word wider than maxWidth gets a line of its own.
func WrapText(text string, maxWidth float64, measure func(string) float64) []string {
	var lines []string
	for _, para := range strings.Split(text, "\n") {
		words := strings.Fields(para)
		if len(words) == 0 {
			lines = append(lines, "")
			continue
		}
		line := words[0]
		for _, w := range words[1:] {
			candidate := line + " " + w
			if measure(candidate) > maxWidth {
				lines = append(lines, line)
				line = w
				continue
			}
			line = candidate
		}
		lines = append(lines, line)
	}
	return lines
}

// RuneWidth measures text in terminal cells, one per rune.
func RuneWidth(s string) float64 {
	return float64(len([]rune(s)))
}
