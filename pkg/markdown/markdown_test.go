package markdown

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"github.com/yaklabco/bioread/pkg/bioread"
)

func newTestRenderer(t *testing.T, point int) *Renderer {
	t.Helper()

	reader, err := bioread.New(bioread.Options{
		FixationPoint: point,
		Emphasis:      bioread.Markers{Open: "<em>", Close: "</em>"},
		DeEmphasis:    bioread.Markers{Open: "<de>", Close: "</de>"},
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	return NewRenderer(reader)
}

func render(t *testing.T, r *Renderer, src string) string {
	t.Helper()

	var buf bytes.Buffer
	if err := r.Render(context.Background(), &buf, []byte(src)); err != nil {
		t.Fatalf("Render() error = %v", err)
	}
	return buf.String()
}

func TestRender_Paragraph(t *testing.T) {
	r := newTestRenderer(t, 3)

	got := render(t, r, "hello world\n")
	want := "<em>hel</em><de>lo</de> <em>wor</em><de>ld</de>\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_Heading(t *testing.T) {
	r := newTestRenderer(t, 3)

	// "here" is on the common word list, so it splits after one letter.
	got := render(t, r, "# Title here\n")
	want := "# <em>Tit</em><de>le</de> <em>h</em><de>ere</de>\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_EmphasisAndCommonWords(t *testing.T) {
	r := newTestRenderer(t, 3)

	got := render(t, r, "some *bold* text\n")
	want := "<em>s</em><de>ome</de> *<em>bo</em><de>ld</de>* <em>te</em><de>xt</de>\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_List(t *testing.T) {
	r := newTestRenderer(t, 3)

	src := "- item one\n- item two\n"
	want := "- <em>it</em><de>em</de> <em>o</em><de>ne</de>\n- <em>it</em><de>em</de> <em>t</em><de>wo</de>\n"

	if got := render(t, r, src); got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_CodeSpanVerbatim(t *testing.T) {
	r := newTestRenderer(t, 3)

	got := render(t, r, "run `go build` now\n")
	want := "<em>r</em><de>un</de> `go build` <em>n</em><de>ow</de>\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_FencedCodeBlockVerbatim(t *testing.T) {
	r := newTestRenderer(t, 3)

	src := "intro words\n\n```go\nfunc main() {}\n```\n"
	got := render(t, r, src)

	if !strings.Contains(got, "```go\nfunc main() {}\n```") {
		t.Errorf("code block should be verbatim, got %q", got)
	}
	if !strings.Contains(got, "<em>int</em><de>ro</de>") {
		t.Errorf("prose before code block should be emphasized, got %q", got)
	}
}

func TestRender_LinkTextEmphasizedDestinationVerbatim(t *testing.T) {
	r := newTestRenderer(t, 3)

	got := render(t, r, "[read this](https://example.com/path)\n")
	want := "[<em>re</em><de>ad</de> <em>th</em><de>is</de>](https://example.com/path)\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_AutolinkVerbatim(t *testing.T) {
	r := newTestRenderer(t, 3)

	got := render(t, r, "visit www.example.com today\n")
	want := "<em>vis</em><de>it</de> www.example.com <em>tod</em><de>ay</de>\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

func TestRender_ImageVerbatim(t *testing.T) {
	r := newTestRenderer(t, 3)

	src := "![alt words](img.png)\n"
	if got := render(t, r, src); got != src {
		t.Errorf("Render() = %q, want unchanged %q", got, src)
	}
}

func TestRender_HTMLBlockVerbatim(t *testing.T) {
	r := newTestRenderer(t, 3)

	src := "<div>\nraw html words\n</div>\n"
	if got := render(t, r, src); got != src {
		t.Errorf("Render() = %q, want unchanged %q", got, src)
	}
}

func TestRender_TableCells(t *testing.T) {
	r := newTestRenderer(t, 3)

	src := "| one | two |\n| --- | --- |\n| three | four |\n"
	got := render(t, r, src)

	for _, want := range []string{
		"<em>o</em><de>ne</de>",
		"<em>t</em><de>wo</de>",
		"<em>thr</em><de>ee</de>",
		"<em>fo</em><de>ur</de>",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("Render() = %q, missing %q", got, want)
		}
	}
	if !strings.Contains(got, "| --- | --- |") {
		t.Errorf("delimiter row should be verbatim, got %q", got)
	}
}

func TestRender_Blockquote(t *testing.T) {
	r := newTestRenderer(t, 3)

	got := render(t, r, "> quoted words\n")
	want := "> <em>quo</em><de>ted</de> <em>wor</em><de>ds</de>\n"

	if got != want {
		t.Errorf("Render() = %q, want %q", got, want)
	}
}

// Rendering with empty markers must reproduce the source byte for byte:
// every byte lands in either a verbatim gap or a prose run, and prose runs
// change nothing when the markers are empty.
func TestRender_EmptyMarkersAreIdentity(t *testing.T) {
	docs := []string{
		"",
		"plain paragraph\n",
		"# Heading\n\nBody text with *emphasis* and `code`.\n",
		"- a list\n- of items\n\n> and a quote\n",
		"```\ncode block\n```\n",
		"| a | b |\n| - | - |\n| c | d |\n",
		"Text with [link](https://x.example) and ![img](y.png).\n",
		"<div>\nhtml block\n</div>\n",
		"Escaped \\*stars\\* and &amp; entities.\n",
		"Soft\nbreak and hard  \nbreak.\n",
	}

	for point := bioread.MinFixationPoint; point <= bioread.MaxFixationPoint; point++ {
		reader, err := bioread.New(bioread.Options{FixationPoint: point})
		if err != nil {
			t.Fatalf("New(%d) error = %v", point, err)
		}
		r := NewRenderer(reader)

		for _, doc := range docs {
			var buf bytes.Buffer
			if err := r.Render(context.Background(), &buf, []byte(doc)); err != nil {
				t.Fatalf("Render() error = %v", err)
			}
			if buf.String() != doc {
				t.Errorf("point %d: Render() = %q, want identity %q", point, buf.String(), doc)
			}
		}
	}
}

func TestRender_ContextCancelled(t *testing.T) {
	r := newTestRenderer(t, 3)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var buf bytes.Buffer
	if err := r.Render(ctx, &buf, []byte("hello world")); err == nil {
		t.Fatal("expected error for cancelled context")
	}
}

func TestMergeSegments(t *testing.T) {
	tests := []struct {
		name string
		in   []segment
		want []segment
	}{
		{
			name: "empty",
			in:   nil,
			want: nil,
		},
		{
			name: "single",
			in:   []segment{{0, 5}},
			want: []segment{{0, 5}},
		},
		{
			name: "disjoint stay separate",
			in:   []segment{{0, 3}, {5, 8}},
			want: []segment{{0, 3}, {5, 8}},
		},
		{
			name: "contiguous merge",
			in:   []segment{{0, 3}, {3, 8}},
			want: []segment{{0, 8}},
		},
		{
			name: "overlapping merge",
			in:   []segment{{0, 5}, {3, 8}},
			want: []segment{{0, 8}},
		},
		{
			name: "unsorted input",
			in:   []segment{{5, 8}, {0, 3}},
			want: []segment{{0, 3}, {5, 8}},
		},
		{
			name: "contained segment absorbed",
			in:   []segment{{0, 10}, {2, 4}},
			want: []segment{{0, 10}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mergeSegments(tt.in)

			if len(got) != len(tt.want) {
				t.Fatalf("mergeSegments() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("segment[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
