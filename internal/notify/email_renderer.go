package notify

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/renderer/html"
)

// RenderedMessage is an email ready for sending.
type RenderedMessage struct {
	Subject string
	Text    string
	HTML    string
}

type emailData struct {
	Title string
	Body  template.HTML
}

var unescaper = strings.NewReplacer(`\_`, "_", `\*`, "*", "\\`", "`", `\[`, "[")

// HTMLEmailRenderer turns a chat message (Telegram Markdown) into an HTML
// email with a plain text fallback.
type HTMLEmailRenderer struct {
	tmpl *template.Template
	md   goldmark.Markdown
}

func NewHTMLEmailRenderer() *HTMLEmailRenderer {
	return &HTMLEmailRenderer{
		tmpl: template.Must(template.New("email").Parse(emailHTMLTemplate)),
		md: goldmark.New(
			goldmark.WithExtensions(extension.Linkify),
			goldmark.WithRendererOptions(html.WithHardWraps()),
		),
	}
}

func (r *HTMLEmailRenderer) Render(text string) (*RenderedMessage, error) {
	subject := Subject(text)

	var body bytes.Buffer
	if err := r.md.Convert([]byte(text), &body); err != nil {
		return nil, fmt.Errorf("failed to convert markdown: %w", err)
	}

	var htmlBuf bytes.Buffer
	if err := r.tmpl.Execute(&htmlBuf, emailData{Title: subject, Body: template.HTML(body.String())}); err != nil {
		return nil, fmt.Errorf("failed to render HTML template: %w", err)
	}

	return &RenderedMessage{
		Subject: subject,
		Text:    unescaper.Replace(text),
		HTML:    htmlBuf.String(),
	}, nil
}

// Subject is the first non-blank line of text with Markdown markers removed.
func Subject(text string) string {
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		line = strings.ReplaceAll(line, `\*`, "\x00")
		line = strings.ReplaceAll(line, "*", "")
		line = strings.ReplaceAll(line, "\x00", "*")
		return strings.TrimSpace(unescaper.Replace(line))
	}
	return "screenwatch"
}
