package services

import (
	"strings"
	"unicode/utf8"
)

type TextChunker interface {
	ChunkText(text string, maxChunkSize int, overlap int) []string
}

type textChunker struct{}

func NewTextChunker() TextChunker {
	return &textChunker{}
}

// ChunkText splits guide text into paragraph-aligned chunks of at most
// maxChunkSize runes. Consecutive chunks share up to overlap trailing runes,
// fewer when the next piece would not fit otherwise. Paragraphs longer than a
// chunk are split on sentence boundaries.
func (tc *textChunker) ChunkText(text string, maxChunkSize int, overlap int) []string {
	if maxChunkSize <= 0 {
		maxChunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= maxChunkSize {
		overlap = maxChunkSize / 4
	}

	c := &chunkAccumulator{max: maxChunkSize, overlap: overlap}

	for _, para := range strings.Split(text, "\n\n") {
		para = strings.TrimSpace(para)
		if para == "" {
			continue
		}

		if utf8.RuneCountInString(para) <= maxChunkSize {
			c.add(para, "\n\n")
			continue
		}

		for _, sentence := range splitIntoSentences(para) {
			c.add(sentence, " ")
		}
	}

	return c.finish()
}

type chunkAccumulator struct {
	max     int
	overlap int
	current strings.Builder
	chunks  []string
}

func (c *chunkAccumulator) add(piece, sep string) {
	// A single sentence longer than a chunk is cut at the rune limit.
	for runes := []rune(piece); len(runes) > c.max; runes = []rune(piece) {
		c.add(string(runes[:c.max]), sep)
		piece = string(runes[c.max:])
	}

	pieceLen := utf8.RuneCountInString(piece)
	sepLen := utf8.RuneCountInString(sep)
	curLen := utf8.RuneCountInString(c.current.String())

	if curLen > 0 && curLen+sepLen+pieceLen > c.max {
		prev := c.current.String()
		c.chunks = append(c.chunks, prev)
		c.current.Reset()

		// The carried tail shrinks so tail, separator and piece stay within max.
		keep := min(c.overlap, c.max-sepLen-pieceLen)
		if tail := lastNRunes(prev, keep); tail != "" {
			c.current.WriteString(tail)
		}
	}

	if c.current.Len() > 0 {
		c.current.WriteString(sep)
	}
	c.current.WriteString(piece)
}

func (c *chunkAccumulator) finish() []string {
	if c.current.Len() > 0 {
		c.chunks = append(c.chunks, c.current.String())
	}
	return c.chunks
}

func splitIntoSentences(text string) []string {
	sentences := strings.FieldsFunc(text, func(r rune) bool {
		return r == '.' || r == '!' || r == '?'
	})

	var result []string
	for _, s := range sentences {
		if s = strings.TrimSpace(s); s != "" {
			result = append(result, s)
		}
	}
	return result
}

func lastNRunes(text string, n int) string {
	if n <= 0 {
		return ""
	}

	runes := []rune(text)
	if len(runes) <= n {
		return text
	}

	return string(runes[len(runes)-n:])
}
