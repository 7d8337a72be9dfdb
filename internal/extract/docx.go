package extract

import (
	"archive/zip"
	"bytes"
	"encoding/xml"
	"errors"
	"fmt"
	"io"
	"strings"
)

// docxText reads word/document.xml from the docx archive and joins the text
// of every non-empty paragraph with a single space.
func docxText(content []byte) (string, error) {
	zr, err := zip.NewReader(bytes.NewReader(content), int64(len(content)))
	if err != nil {
		return "", fmt.Errorf("docx archive: %w", err)
	}

	var doc io.ReadCloser
	for _, f := range zr.File {
		if f.Name == "word/document.xml" {
			doc, err = f.Open()
			if err != nil {
				return "", fmt.Errorf("open document.xml: %w", err)
			}
			break
		}
	}
	if doc == nil {
		return "", errors.New("docx: document.xml not found")
	}
	defer func() { _ = doc.Close() }()

	return documentText(doc)
}

func documentText(r io.Reader) (string, error) {
	dec := xml.NewDecoder(r)

	paragraphs := make([]string, 0)
	var paragraph strings.Builder
	inText := false

	for {
		tok, err := dec.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return "", fmt.Errorf("decode document.xml: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			if t.Name.Local == "t" {
				inText = true
			}
		case xml.EndElement:
			switch t.Name.Local {
			case "t":
				inText = false
			case "p":
				if s := paragraph.String(); s != "" {
					paragraphs = append(paragraphs, s)
				}
				paragraph.Reset()
			}
		case xml.CharData:
			if inText {
				paragraph.Write(t)
			}
		}
	}

	if s := paragraph.String(); s != "" {
		paragraphs = append(paragraphs, s)
	}

	return strings.Join(paragraphs, " "), nil
}
