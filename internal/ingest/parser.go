package ingest

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"github.com/go-shiori/go-readability"
	"github.com/ledongthuc/pdf"
)

var ErrCorpusRead = errors.New("corpus read failed")

// CorpusReadError marks a source document that could not be opened, parsed,
// or yielded no usable words. It is terminal for a training run.
type CorpusReadError struct {
	Path string
	Err  error
}

func (e *CorpusReadError) Error() string {
	return fmt.Sprintf("read corpus %s: %v", e.Path, e.Err)
}

func (e *CorpusReadError) Unwrap() []error { return []error{ErrCorpusRead, e.Err} }

type Parsed struct {
	Title      string
	SourcePath string
	Text       string
}

func ParseFile(path string) (*Parsed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, &CorpusReadError{Path: path, Err: fmt.Errorf("read file: %w", err)}
	}

	ext := strings.ToLower(filepath.Ext(path))
	var text string
	switch ext {
	case ".docx":
		text, err = parseDOCX(raw)
	case ".pdf":
		text, err = parsePDF(path)
	case ".html", ".htm":
		text, err = parseHTML(path, raw)
	case ".txt", ".md":
		text = string(raw)
	default:
		err = fmt.Errorf("unsupported file type: %s", ext)
	}
	if err != nil {
		return nil, &CorpusReadError{Path: path, Err: err}
	}

	title := strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	return &Parsed{
		Title:      title,
		SourcePath: path,
		Text:       normalizeWhitespace(text),
	}, nil
}

func parseDOCX(raw []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(raw), int64(len(raw)))
	if err != nil {
		return "", fmt.Errorf("open docx zip: %w", err)
	}

	var xmlData []byte
	for _, f := range zr.File {
		if f.Name != "word/document.xml" {
			continue
		}
		rc, openErr := f.Open()
		if openErr != nil {
			return "", fmt.Errorf("open document.xml: %w", openErr)
		}
		xmlData, err = io.ReadAll(rc)
		rc.Close()
		if err != nil {
			return "", fmt.Errorf("read document.xml: %w", err)
		}
		break
	}
	if len(xmlData) == 0 {
		return "", fmt.Errorf("word/document.xml not found")
	}

	decoder := xml.NewDecoder(bytes.NewReader(xmlData))
	var b strings.Builder
	inText := false
	for {
		tok, tokenErr := decoder.Token()
		if tokenErr == io.EOF {
			break
		}
		if tokenErr != nil {
			return "", fmt.Errorf("decode document.xml: %w", tokenErr)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "t":
				inText = true
			case "p":
				if b.Len() > 0 {
					b.WriteString("\n")
				}
			}
		case xml.EndElement:
			if t.Name.Local == "t" {
				inText = false
			}
		case xml.CharData:
			if inText {
				b.Write(t)
			}
		}
	}
	return b.String(), nil
}

func parsePDF(path string) (string, error) {
	f, r, err := pdf.Open(path)
	if err != nil {
		return "", fmt.Errorf("open pdf: %w", err)
	}
	defer f.Close()

	return collectPages(r.NumPage(), func(i int) (string, bool, error) {
		p := r.Page(i)
		if p.V.IsNull() {
			return "", false, nil
		}
		text, err := p.GetPlainText(nil)
		return text, true, err
	})
}

// collectPages joins the text of pages 1..total. Pages reported as absent are
// skipped; any page that fails extraction fails the whole document.
func collectPages(total int, pageText func(i int) (text string, ok bool, err error)) (string, error) {
	var b strings.Builder
	for i := 1; i <= total; i++ {
		content, ok, err := pageText(i)
		if err != nil {
			return "", fmt.Errorf("page %d: %w", i, err)
		}
		if !ok {
			continue
		}
		b.WriteString(content)
		b.WriteString("\n")
	}
	if b.Len() == 0 {
		return "", fmt.Errorf("no extractable text found in pdf")
	}
	return b.String(), nil
}

func parseHTML(path string, raw []byte) (string, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		abs = path
	}
	pageURL := &url.URL{Scheme: "file", Path: filepath.ToSlash(abs)}

	article, err := readability.FromReader(bytes.NewReader(raw), pageURL)
	if err != nil {
		return "", fmt.Errorf("extract article: %w", err)
	}
	if strings.TrimSpace(article.TextContent) == "" {
		return "", fmt.Errorf("no readable text found in html")
	}
	return article.Title + "\n" + article.TextContent, nil
}

func normalizeWhitespace(text string) string {
	lines := strings.Split(text, "\n")
	out := make([]string, 0, len(lines))
	for _, line := range lines {
		line = strings.Join(strings.Fields(line), " ")
		if line == "" {
			continue
		}
		out = append(out, line)
	}
	return strings.Join(out, "\n")
}
