// Package markdown imports notes from a directory of markdown files.
//
// Each file becomes one note: the title comes from YAML frontmatter,
// the first H1 heading or the filename; tags come from frontmatter;
// the body is the content with markdown formatting simplified.
package markdown

import (
	"bytes"
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"

	"github.com/blaster151/zettelview-sub001/internal/core/domain"
	"github.com/blaster151/zettelview-sub001/internal/logger"
)

// frontMatter is the YAML header recognised at the top of a note file.
type frontMatter struct {
	Title string   `yaml:"title"`
	Tags  []string `yaml:"tags"`
}

// ImportDir walks dir and converts every .md and .markdown file into
// a note. Files that fail to read are skipped with a warning rather
// than aborting the whole import.
func ImportDir(ctx context.Context, dir string) ([]domain.Note, error) {
	var notes []domain.Note

	err := filepath.WalkDir(dir, func(path string, entry fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if entry.IsDir() || !isMarkdown(path) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			rel = path
		}

		note, err := importFile(path, rel)
		if err != nil {
			logger.Warn("skipping %s: %v", path, err)
			return nil
		}
		notes = append(notes, note)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("importing %s: %w", dir, err)
	}

	logger.Info("imported %d markdown files from %s", len(notes), dir)
	return notes, nil
}

func isMarkdown(path string) bool {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".md", ".markdown":
		return true
	}
	return false
}

// noteNamespace seeds the deterministic note IDs. Importing the same
// file again yields the same ID, so re-imports upsert instead of
// duplicating notes.
var noteNamespace = uuid.MustParse("5f9b2c6e-1f6a-4f3d-9c4e-8a27d10b4a31")

func importFile(path, rel string) (domain.Note, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Note{}, err
	}
	info, err := os.Stat(path)
	if err != nil {
		return domain.Note{}, err
	}

	fm, body, err := splitFrontMatter(data)
	if err != nil {
		return domain.Note{}, fmt.Errorf("parsing front matter: %w", err)
	}

	content := string(body)
	title := fm.Title
	if title == "" {
		title = extractTitle(content, path)
	}

	modified := info.ModTime().UTC()
	return domain.Note{
		ID:        uuid.NewSHA1(noteNamespace, []byte(filepath.ToSlash(rel))).String(),
		Title:     title,
		Body:      stripMarkdown(content),
		Tags:      fm.Tags,
		CreatedAt: modified,
		UpdatedAt: modified,
	}, nil
}

var frontMatterDelim = []byte("---")

// splitFrontMatter separates an optional YAML header from the body.
func splitFrontMatter(data []byte) (frontMatter, []byte, error) {
	var fm frontMatter

	trimmed := bytes.TrimLeft(data, "\uFEFF")
	if !bytes.HasPrefix(trimmed, frontMatterDelim) {
		return fm, data, nil
	}

	rest := trimmed[len(frontMatterDelim):]
	end := bytes.Index(rest, append([]byte("\n"), frontMatterDelim...))
	if end < 0 {
		return fm, data, nil
	}

	header := rest[:end]
	body := rest[end+1+len(frontMatterDelim):]
	if err := yaml.Unmarshal(header, &fm); err != nil {
		return frontMatter{}, nil, err
	}
	return fm, bytes.TrimLeft(body, "\r\n"), nil
}

// extractTitle finds the first H1 heading or falls back to the
// filename with separators turned into spaces.
func extractTitle(content, path string) string {
	for _, line := range strings.Split(content, "\n") {
		line = strings.TrimSpace(line)
		if strings.HasPrefix(line, "# ") {
			return strings.TrimSpace(strings.TrimPrefix(line, "#"))
		}
	}

	filename := filepath.Base(path)
	if ext := filepath.Ext(filename); ext != "" {
		filename = strings.TrimSuffix(filename, ext)
	}
	filename = strings.ReplaceAll(filename, "_", " ")
	filename = strings.ReplaceAll(filename, "-", " ")
	return filename
}

var (
	codeBlockRe    = regexp.MustCompile("(?s)```[^`]*```")
	inlineCodeRe   = regexp.MustCompile("`[^`]+`")
	imageRe        = regexp.MustCompile(`!\[[^\]]*\]\([^)]+\)`)
	linkRe         = regexp.MustCompile(`\[([^\]]+)\]\([^)]+\)`)
	headingRe      = regexp.MustCompile(`(?m)^#{1,6}\s+`)
	blockquoteRe   = regexp.MustCompile(`(?m)^>\s*`)
	hrRe           = regexp.MustCompile(`(?m)^[-*_]{3,}\s*$`)
	listMarkerRe   = regexp.MustCompile(`(?m)^\s*[-*+]\s+`)
	numberedListRe = regexp.MustCompile(`(?m)^\s*\d+\.\s+`)
	multiNewlineRe = regexp.MustCompile(`\n{3,}`)
)

// stripMarkdown removes common markdown formatting so searches hit
// the prose, not the syntax. This is a simplified implementation that
// handles common cases.
func stripMarkdown(content string) string {
	content = codeBlockRe.ReplaceAllString(content, "")
	content = inlineCodeRe.ReplaceAllString(content, "")
	content = imageRe.ReplaceAllString(content, "")
	content = linkRe.ReplaceAllString(content, "$1")
	content = headingRe.ReplaceAllString(content, "")

	content = strings.ReplaceAll(content, "**", "")
	content = strings.ReplaceAll(content, "__", "")
	content = strings.ReplaceAll(content, "*", "")

	content = blockquoteRe.ReplaceAllString(content, "")
	content = hrRe.ReplaceAllString(content, "")
	content = listMarkerRe.ReplaceAllString(content, "")
	content = numberedListRe.ReplaceAllString(content, "")
	content = multiNewlineRe.ReplaceAllString(content, "\n\n")

	return strings.TrimSpace(content)
}
