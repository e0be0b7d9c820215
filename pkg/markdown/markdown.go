// Package markdown renders Markdown through a bioread reader.
// Prose gets fixation emphasis; structure, code, HTML, and URLs pass
// through byte for byte, so the output is still valid Markdown.
package markdown

import (
	"bufio"
	"context"
	"fmt"
	"io"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/bioread/pkg/bioread"
)

// Renderer applies fixation emphasis to the prose of Markdown documents.
type Renderer struct {
	reader *bioread.Reader
	md     goldmark.Markdown
}

// NewRenderer creates a Renderer that marks up prose with the given reader.
func NewRenderer(reader *bioread.Reader) *Renderer {
	return &Renderer{
		reader: reader,
		md:     newGoldmarkInstance(),
	}
}

// Render parses src as Markdown and writes the emphasized document to dst.
//
// Only prose text runs are rewritten. Code spans and blocks, HTML, link
// destinations, autolinked URLs, image alt text, and all structural
// punctuation are copied verbatim from the source, so round-tripping a
// document with empty markers reproduces it exactly.
func (r *Renderer) Render(ctx context.Context, dst io.Writer, src []byte) error {
	// Check for early cancellation.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}

	reader := text.NewReader(src)
	doc := r.md.Parser().Parse(reader, parser.WithContext(parser.NewContext()))

	// Check for cancellation after parsing.
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("render cancelled: %w", err)
	}

	segments, err := proseSegments(doc)
	if err != nil {
		return err
	}

	w := bufio.NewWriter(dst)

	pos := 0
	for _, seg := range segments {
		if seg.start > pos {
			// Gap between prose runs: structure, markers, code.
			if _, err := w.Write(src[pos:seg.start]); err != nil {
				return fmt.Errorf("write output: %w", err)
			}
		}
		if _, err := w.WriteString(r.reader.Text(string(src[seg.start:seg.stop]))); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
		pos = seg.stop
	}

	if pos < len(src) {
		if _, err := w.Write(src[pos:]); err != nil {
			return fmt.Errorf("write output: %w", err)
		}
	}

	if err := w.Flush(); err != nil {
		return fmt.Errorf("flush output: %w", err)
	}
	return nil
}

// newGoldmarkInstance creates the configured goldmark.Markdown instance.
// GFM is always enabled: table cells and strikethrough runs are prose, and
// linkify keeps bare URLs out of the prose segments.
//
//nolint:ireturn // goldmark.Markdown is an external interface type
func newGoldmarkInstance() goldmark.Markdown {
	return goldmark.New(
		goldmark.WithExtensions(
			extension.GFM,
		),
	)
}
