package markdown

import (
	"fmt"
	"sort"

	"github.com/yuin/goldmark/ast"
)

// segment is a half-open byte range [start, stop) into the source document.
type segment struct {
	start int
	stop  int
}

// proseSegments walks the document tree and collects the byte ranges of
// prose text, sorted and merged. Contiguous ranges are joined so a word
// is never split at an invisible node boundary.
func proseSegments(doc ast.Node) ([]segment, error) {
	var segments []segment

	err := ast.Walk(doc, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		if !entering {
			return ast.WalkContinue, nil
		}

		switch t := n.(type) {
		case *ast.CodeSpan:
			// Inline code keeps its exact spelling.
			return ast.WalkSkipChildren, nil

		case *ast.Image:
			// Alt text is metadata, not prose.
			return ast.WalkSkipChildren, nil

		case *ast.Text:
			seg := t.Segment
			if seg.Len() > 0 {
				segments = append(segments, segment{start: seg.Start, stop: seg.Stop})
			}
		}

		return ast.WalkContinue, nil
	})
	if err != nil {
		return nil, fmt.Errorf("walk document: %w", err)
	}

	return mergeSegments(segments), nil
}

// mergeSegments sorts segments by start and merges overlapping or
// contiguous ranges.
func mergeSegments(segments []segment) []segment {
	if len(segments) < 2 {
		return segments
	}

	sort.Slice(segments, func(i, j int) bool {
		return segments[i].start < segments[j].start
	})

	merged := segments[:1]
	for _, seg := range segments[1:] {
		last := &merged[len(merged)-1]
		if seg.start <= last.stop {
			if seg.stop > last.stop {
				last.stop = seg.stop
			}
			continue
		}
		merged = append(merged, seg)
	}

	return merged
}
