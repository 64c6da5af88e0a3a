package markdown

import (
	"fmt"
	"strings"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/tsawler/quill/document"
)

// frontMatterView is the YAML shape of a metadata front matter block.
// Zero-valued fields are omitted so the block only carries what the
// source document actually declared.
type frontMatterView struct {
	Title    string            `yaml:"title,omitempty"`
	Author   string            `yaml:"author,omitempty"`
	Subject  string            `yaml:"subject,omitempty"`
	Keywords []string          `yaml:"keywords,omitempty"`
	Creator  string            `yaml:"creator,omitempty"`
	Producer string            `yaml:"producer,omitempty"`
	Created  string            `yaml:"created,omitempty"`
	Modified string            `yaml:"modified,omitempty"`
	Custom   map[string]string `yaml:"custom,omitempty"`
}

// writeFrontMatter renders a YAML front matter block for the metadata,
// followed by a blank line. Empty metadata produces no output.
func (w *writer) writeFrontMatter(meta *document.Metadata) error {
	if meta == nil || meta.IsEmpty() {
		return nil
	}

	view := frontMatterView{
		Title:    meta.Title,
		Author:   meta.Author,
		Subject:  meta.Subject,
		Keywords: meta.Keywords,
		Creator:  meta.Creator,
		Producer: meta.Producer,
		Custom:   meta.Custom,
	}
	if !meta.CreationDate.IsZero() {
		view.Created = meta.CreationDate.Format(time.RFC3339)
	}
	if !meta.ModDate.IsZero() {
		view.Modified = meta.ModDate.Format(time.RFC3339)
	}

	var body strings.Builder
	enc := yaml.NewEncoder(&body)
	enc.SetIndent(2)
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encoding front matter: %w", err)
	}
	if err := enc.Close(); err != nil {
		return fmt.Errorf("encoding front matter: %w", err)
	}

	w.buf.WriteString("---\n")
	w.buf.WriteString(body.String())
	w.buf.WriteString("---\n\n")
	return nil
}
