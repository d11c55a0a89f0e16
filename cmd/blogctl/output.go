package main

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/jrsteele09/go-blog-client/auth"
	"github.com/jrsteele09/go-blog-client/blogs"
	"gopkg.in/yaml.v3"
)

const (
	outputText = "text"
	outputJSON = "json"
	outputYAML = "yaml"
)

func validOutput(format string) error {
	switch format {
	case outputText, outputJSON, outputYAML:
		return nil
	}
	return fmt.Errorf("unknown output format %q, want text, json or yaml", format)
}

// render writes v as JSON or YAML, or calls text for the human readable form.
func (a *app) render(w io.Writer, v any, text func(io.Writer)) error {
	switch a.output {
	case outputJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(v)
	case outputYAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		defer enc.Close()
		return enc.Encode(v)
	}
	text(w)
	return nil
}

// renderResult prints an auth outcome. A failed result becomes the command's error.
func (a *app) renderResult(w io.Writer, res auth.Result) error {
	if !res.Success && a.output == outputText {
		return fmt.Errorf("%s", res.Message)
	}
	if err := a.render(w, res, func(w io.Writer) { fmt.Fprintln(w, res.Message) }); err != nil {
		return err
	}
	if !res.Success {
		return fmt.Errorf("%s", res.Message)
	}
	return nil
}

func printBlogLine(w io.Writer, b blogs.Blog) {
	draft := ""
	if b.IsDraft {
		draft = " [draft]"
	}
	category := b.Category
	if category == "" {
		category = "-"
	}
	fmt.Fprintf(w, "#%-4d %s%s\n      by %s in %s on %s\n", b.ID, b.Title, draft, b.Author, category, b.Timestamp.Format("2006-01-02"))
}

func printBlog(w io.Writer, b blogs.Blog) {
	printBlogLine(w, b)
	if len(b.Tags) > 0 {
		fmt.Fprintf(w, "      tags: %s\n", strings.Join(b.Tags, ", "))
	}
	fmt.Fprintf(w, "      %d views, %d likes\n\n%s\n", b.ViewCount, b.LikesCount, b.Content)
}

func printPagination(w io.Writer, p blogs.Pagination) {
	fmt.Fprintf(w, "page %d of %d (%d total)\n", p.Page, max(p.Pages, 1), p.Total)
}

func printComment(w io.Writer, c blogs.Comment) {
	indent := ""
	if c.IsReply() {
		indent = "    "
	}
	fmt.Fprintf(w, "%s#%d %s (%s): %s\n", indent, c.ID, c.Author, c.CreatedAt.Format("2006-01-02 15:04"), c.Content)
}
