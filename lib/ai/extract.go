package ai

import "strings"

const reasoningEndTag = "</think>"

// ExtractAnswer отрезает рассуждения модели до последнего </think>
func ExtractAnswer(response string) string {
	pos := strings.LastIndex(response, reasoningEndTag)
	if pos < 0 {
		return strings.TrimSpace(response)
	}
	return strings.TrimSpace(response[pos+len(reasoningEndTag):])
}
