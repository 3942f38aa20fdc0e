package extractor

import (
	"context"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/nguyenthenguyen/docx"
)

func extractDOCX(ctx context.Context, path string) (string, error) {

	doc, err := docx.ReadDocxFile(path)
	if err != nil {
		return "", fmt.Errorf("failed to open docx: %w", err)
	}
	defer doc.Close()

	paragraphs, err := bodyParagraphs(ctx, strings.NewReader(doc.Editable().GetContent()))
	if err != nil {
		return "", fmt.Errorf("failed to parse word/document.xml: %w", err)
	}

	return strings.Join(paragraphs, "\n"), nil
}

// bodyParagraphs returns the text of each w:p that is a direct child of
// w:body, in document order. Paragraphs nested in tables, text boxes or
// drawings are not part of the list. Within a paragraph, w:t contributes its
// text, w:tab a tab and w:br / w:cr a newline.
func bodyParagraphs(ctx context.Context, r io.Reader) ([]string, error) {

	dec := xml.NewDecoder(r)

	var (
		stack      []string
		paragraphs []string
		current    strings.Builder
		depth      int // nesting of p elements
		collecting bool
		inText     bool
	)

	for {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}

		tok, err := dec.Token()
		if err != nil {
			if errors.Is(err, io.EOF) {
				return paragraphs, nil
			}
			return nil, err
		}

		switch el := tok.(type) {
		case xml.StartElement:
			name := el.Name.Local
			parent := ""
			if len(stack) > 0 {
				parent = stack[len(stack)-1]
			}

			if name == "p" {
				depth++
				if depth == 1 && parent == "body" {
					collecting = true
					current.Reset()
				}
			}

			if collecting && depth == 1 && parent == "r" {
				switch name {
				case "t":
					inText = true
				case "tab":
					current.WriteByte('\t')
				case "br", "cr":
					current.WriteByte('\n')
				}
			}

			stack = append(stack, name)

		case xml.EndElement:
			if len(stack) > 0 {
				stack = stack[:len(stack)-1]
			}

			switch el.Name.Local {
			case "t":
				inText = false
			case "p":
				if depth == 1 && collecting {
					paragraphs = append(paragraphs, current.String())
					collecting = false
				}
				depth--
			}

		case xml.CharData:
			if collecting && inText {
				current.Write(el)
			}
		}
	}
}
