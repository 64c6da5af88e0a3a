package markdown

import (
	"fmt"
	"strings"

	"github.com/tsawler/quill/document"
)

// presentationParallelThreshold is the slide count above which
// presentation rendering shards slides across goroutines.
const presentationParallelThreshold = 10

// RenderPresentation renders a presentation to Markdown. Each slide
// becomes a first-level heading followed by the slide text; slides are
// separated by a horizontal rule.
func RenderPresentation(pres document.Presentation, opts Options) (string, error) {
	slides, err := pres.SlideTexts()
	if err != nil {
		return "", fmt.Errorf("reading slides: %w", err)
	}

	var sb strings.Builder
	if opts.IncludeMetadata {
		meta, merr := pres.Metadata()
		if merr != nil {
			return "", fmt.Errorf("reading presentation metadata: %w", merr)
		}
		w := newWriter(opts)
		if err := w.writeFrontMatter(meta); err != nil {
			return "", err
		}
		sb.WriteString(w.finish())
	}

	rendered := make([]string, len(slides))
	if opts.UseParallel && len(slides) > presentationParallelThreshold {
		eachIndexed(len(slides), func(i int) {
			rendered[i] = renderSlide(slides[i])
		})
	} else {
		for i, slide := range slides {
			rendered[i] = renderSlide(slide)
		}
	}

	sb.WriteString(strings.Join(rendered, "\n\n---\n\n"))
	return sb.String(), nil
}

// renderSlide renders one slide: a heading built from the slide number and
// the text's first line, then the full slide text as the body. The first
// line appears in both; the heading is a navigation aid, not a substitute
// for the content.
func renderSlide(slide document.SlideText) string {
	var sb strings.Builder
	sb.Grow(len(slide.Text)*2 + 16)

	first, _, _ := strings.Cut(slide.Text, "\n")
	if first == "" {
		fmt.Fprintf(&sb, "# Slide %d", slide.Number)
	} else {
		fmt.Fprintf(&sb, "# Slide %d %s", slide.Number, first)
	}
	sb.WriteString("\n\n")

	if slide.Text != "" {
		sb.WriteString(slide.Text)
		sb.WriteString("\n\n")
	}
	return sb.String()
}
