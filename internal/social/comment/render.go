// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package comment

import (
	"context"
	"fmt"
	"html/template"
	"strings"
	"time"
)

// Renderer turns a ranked view into the client's presentation format.
type Renderer interface {
	Render(context context.Context, view *RankedView) (string, error)
}

// HTMLRenderer renders a flat ordered list; nesting is expressed with
// data-depth so clients can indent without a recursive template.
type HTMLRenderer struct {
	tmpl *template.Template
}

const listTemplate = `<ol class="comment-list" data-orderby="{{.OrderMode}}" data-page="{{.Page}}">
{{- range .Sequence}}
<li id="comment-{{.Comment.ID}}" class="comment depth-{{.Depth}}{{if and $.PinnedID (eq .Comment.ID $.PinnedID)}} pinned{{end}}" data-id="{{.Comment.ID}}" data-depth="{{.Depth}}">
<header><span class="author">{{.Comment.AuthorName}}</span> <time datetime="{{rfc3339 .Comment.CreatedAt}}">{{rfc3339 .Comment.CreatedAt}}</time> <span class="likes">{{.Comment.LikeCount}}</span></header>
<div class="body">{{.Comment.Body}}</div>
</li>
{{- end}}
</ol>`

// NewHTMLRenderer parses the list template.
func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("comments").Funcs(template.FuncMap{
		"rfc3339": func(t time.Time) string { return t.UTC().Format(time.RFC3339) },
	}).Parse(listTemplate)
	if err != nil {
		return nil, fmt.Errorf("comment: parse template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

// Render executes the template for view. Comment bodies are escaped.
func (renderer *HTMLRenderer) Render(_ context.Context, view *RankedView) (string, error) {
	var out strings.Builder
	if err := renderer.tmpl.Execute(&out, view); err != nil {
		return "", fmt.Errorf("comment: render: %w", err)
	}
	return out.String(), nil
}
