package document

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode/utf8"

	"rsc.io/pdf"
)

// previewRunes caps Imported.Preview.
const previewRunes = 280

// Imported is the text pulled out of a file for the guide's content field.
type Imported struct {
	Name    string
	Format  string
	Size    int64
	Pages   int // 0 unless the source is a PDF
	Words   int
	Content string
	Preview string
}

// SizeLabel formats Size for the guide header.
func (d *Imported) SizeLabel() string {
	switch {
	case d.Size < 1<<10:
		return fmt.Sprintf("%d B", d.Size)
	case d.Size < 1<<20:
		return fmt.Sprintf("%.1f KB", float64(d.Size)/(1<<10))
	}
	return fmt.Sprintf("%.1f MB", float64(d.Size)/(1<<20))
}

// Import reads a text, markdown or PDF file.
func Import(ctx context.Context, path string) (*Imported, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return nil, err
	}

	info, err := os.Stat(absPath)
	if os.IsNotExist(err) {
		return nil, fmt.Errorf("file not found: %s", path)
	}
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return nil, fmt.Errorf("%s is a directory", path)
	}

	doc := &Imported{
		Name:   strings.TrimSuffix(filepath.Base(absPath), filepath.Ext(absPath)),
		Format: strings.TrimPrefix(strings.ToLower(filepath.Ext(absPath)), "."),
		Size:   info.Size(),
	}

	var text string
	switch doc.Format {
	case "pdf":
		text, doc.Pages, err = readPDF(ctx, absPath)
		if err != nil {
			return nil, err
		}
	default:
		data, err := os.ReadFile(absPath)
		if err != nil {
			return nil, fmt.Errorf("read %s: %w", path, err)
		}
		if !utf8.Valid(data) {
			return nil, fmt.Errorf("%s is not a text file", path)
		}
		text = string(data)
	}

	doc.Words = len(strings.Fields(text))
	doc.Content = text
	doc.Preview = preview(text)
	return doc, nil
}

func readPDF(ctx context.Context, path string) (string, int, error) {
	doc, err := pdf.Open(path)
	if err != nil {
		return "", 0, fmt.Errorf("open pdf: %w", err)
	}

	total := doc.NumPage()
	var b strings.Builder
	for i := 1; i <= total; i++ {
		if err := ctx.Err(); err != nil {
			return "", 0, err
		}
		p := doc.Page(i)
		if p.V.IsNull() {
			continue
		}
		var line []string
		for _, t := range p.Content().Text {
			if strings.TrimSpace(t.S) == "" {
				continue
			}
			line = append(line, t.S)
		}
		if len(line) == 0 {
			continue
		}
		if b.Len() > 0 {
			b.WriteString("\n\n")
		}
		b.WriteString(strings.Join(line, ""))
	}
	return b.String(), total, nil
}

func preview(text string) string {
	text = strings.Join(strings.Fields(text), " ")
	if utf8.RuneCountInString(text) <= previewRunes {
		return text
	}
	runes := []rune(text)
	return string(runes[:previewRunes-3]) + "..."
}
