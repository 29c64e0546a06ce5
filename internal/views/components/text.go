package components

import (
	"strings"
)

// wrapText breaks text into at most maxLines lines no wider than maxWidth.
// Words longer than a line are split by character.
func wrapText(text string, maxWidth float32, maxLines int, measure func(string) float32) []string {
	if maxLines <= 0 {
		return nil
	}

	var lines []string
	for _, paragraph := range strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n") {
		current := ""
		for _, word := range strings.Fields(paragraph) {
			candidate := word
			if current != "" {
				candidate = current + " " + word
			}
			if measure(candidate) <= maxWidth {
				current = candidate
				continue
			}

			if current != "" {
				lines = append(lines, current)
				if len(lines) == maxLines {
					return lines
				}
			}

			current = ""
			for _, r := range word {
				next := current + string(r)
				if current != "" && measure(next) > maxWidth {
					lines = append(lines, current)
					if len(lines) == maxLines {
						return lines
					}
					next = string(r)
				}
				current = next
			}
		}

		lines = append(lines, current)
		if len(lines) == maxLines {
			return lines
		}
	}

	for len(lines) > 0 && lines[len(lines)-1] == "" {
		lines = lines[:len(lines)-1]
	}
	if len(lines) == 0 {
		return nil
	}
	return lines
}

// fitLine cuts text to the longest prefix no wider than maxWidth.
func fitLine(text string, maxWidth float32, measure func(string) float32) string {
	text = strings.ReplaceAll(text, "\n", " ")
	if measure(text) <= maxWidth {
		return text
	}

	runes := []rune(text)
	for n := len(runes) - 1; n > 0; n-- {
		if measure(string(runes[:n])) <= maxWidth {
			return string(runes[:n])
		}
	}
	return ""
}
