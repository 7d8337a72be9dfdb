package extract

import (
	"archive/zip"
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/drjayaswal/biasbreaker-backend/internal/entities"
)

func TestSupported(t *testing.T) {
	require.True(t, Supported(entities.MimePDF))
	require.True(t, Supported(entities.MimeDOCX))
	require.True(t, Supported(entities.MimePlain))
	require.False(t, Supported("image/png"))
	require.False(t, Supported(""))
}

func TestTextPlain(t *testing.T) {
	got := Text([]byte("  hello world \n"), entities.MimePlain)
	require.Equal(t, "hello world", got)
}

func TestTextEmptyContent(t *testing.T) {
	require.Empty(t, Text(nil, entities.MimePlain))
	require.Empty(t, Text([]byte{}, entities.MimePDF))
}

func TestTextUnsupportedMime(t *testing.T) {
	require.Empty(t, Text([]byte("data"), "image/png"))
}

func TestTextDocx(t *testing.T) {
	doc := `<?xml version="1.0" encoding="UTF-8" standalone="yes"?>
<w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main">
  <w:body>
    <w:p><w:r><w:t>Jane Doe</w:t></w:r></w:p>
    <w:p><w:r><w:t>Senior </w:t></w:r><w:r><w:t>Engineer</w:t></w:r></w:p>
    <w:p></w:p>
  </w:body>
</w:document>`

	got := Text(buildDocx(t, doc), entities.MimeDOCX)
	require.Equal(t, "Jane Doe Senior Engineer", got)
}

func TestTextDocxCorrupt(t *testing.T) {
	require.Empty(t, Text([]byte("definitely not a zip"), entities.MimeDOCX))
}

func TestTextDocxMissingDocument(t *testing.T) {
	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/other.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte("<x/>"))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	require.Empty(t, Text(buf.Bytes(), entities.MimeDOCX))
}

func TestTextPDFCorrupt(t *testing.T) {
	require.Empty(t, Text([]byte("%PDF-broken"), entities.MimePDF))
}

func buildDocx(t *testing.T, documentXML string) []byte {
	t.Helper()

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	w, err := zw.Create("word/document.xml")
	require.NoError(t, err)
	_, err = w.Write([]byte(documentXML))
	require.NoError(t, err)
	require.NoError(t, zw.Close())

	return buf.Bytes()
}
