package quizgen

import (
	"strings"

	"quizbuddy/internal/domain"
)

// DefaultMaxSegmentChars bounds the characters handed to the model per
// segment. Oversized segments raise both cost and failure probability.
const DefaultMaxSegmentChars = 6000

// BuildSegments partitions the pages into exactly numQuestions contiguous,
// non-overlapping segments, one per requested question.
//
// When numQuestions does not exceed the page count, segments are built
// from contiguous page ranges. Otherwise all pages are joined and the
// combined content is split into roughly equal character slices, with any
// remainder appended to the last slice.
func BuildSegments(pages []string, numQuestions int) ([]domain.Segment, error) {
	if numQuestions < 1 {
		return nil, domain.NewInvalidInputError("the number of questions must be an integer greater than 0")
	}

	totalPages := len(pages)

	if numQuestions > totalPages {
		return splitByLength(ExtractContent(pages), numQuestions), nil
	}

	segments := make([]domain.Segment, 0, numQuestions)
	ratio := float64(totalPages) / float64(numQuestions)
	for i := 0; i < numQuestions; i++ {
		start := int(float64(i) * ratio)
		end := start + 1
		if ratio > 1 {
			end = int(float64(i+1) * ratio)
		}
		if end > totalPages {
			end = totalPages
		}
		segments = append(segments, domain.Segment{
			Text:  ExtractContent(pages[start:end]),
			Index: i,
		})
	}
	return segments, nil
}

// splitByLength slices content into numSegments contiguous rune ranges of
// len/numSegments each. The remainder of an uneven split goes to the last
// segment so the slices jointly cover the content exactly once.
func splitByLength(content string, numSegments int) []domain.Segment {
	runes := []rune(content)
	segmentLength := len(runes) / numSegments

	segments := make([]domain.Segment, 0, numSegments)
	for i := 0; i < numSegments; i++ {
		segments = append(segments, domain.Segment{
			Text:  string(runes[i*segmentLength : (i+1)*segmentLength]),
			Index: i,
		})
	}
	if len(runes)%numSegments != 0 {
		segments[numSegments-1].Text += string(runes[numSegments*segmentLength:])
	}
	return segments
}

// TrimSegment bounds a segment to maxChars, keeping the leading portion.
// An exact token count does not matter here, the point is that the text
// handed to the model is never huge.
func TrimSegment(segment string, maxChars int) string {
	if maxChars <= 0 {
		maxChars = DefaultMaxSegmentChars
	}
	segment = strings.TrimSpace(segment)
	runes := []rune(segment)
	if len(runes) > maxChars {
		return string(runes[:maxChars])
	}
	return segment
}
