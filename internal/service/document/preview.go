package document

import (
	"mime"
	"net/http"
	"strings"
)

const (
	previewBytes = 2000
	sniffBytes   = 512
)

// headBuffer keeps the first n bytes written to it and discards the rest.
type headBuffer struct {
	n   int
	buf []byte
}

func (h *headBuffer) Write(p []byte) (int, error) {
	if room := h.n - len(h.buf); room > 0 {
		if len(p) < room {
			room = len(p)
		}
		h.buf = append(h.buf, p[:room]...)
	}
	return len(p), nil
}

// resolveContentType keeps the client's type unless it is missing or
// generic, in which case the head of the file is sniffed.
func resolveContentType(declared string, head []byte) string {
	mt, _, err := mime.ParseMediaType(declared)
	if err == nil && mt != "" && mt != "application/octet-stream" {
		return declared
	}
	if len(head) > sniffBytes {
		head = head[:sniffBytes]
	}
	return http.DetectContentType(head)
}

func isText(contentType string) bool {
	mt, _, err := mime.ParseMediaType(contentType)
	if err != nil {
		return false
	}
	if strings.HasPrefix(mt, "text/") {
		return true
	}
	switch mt {
	case "application/json", "application/xml", "application/x-yaml", "application/yaml":
		return true
	}
	return false
}

// textPreview returns the searchable prefix of a text document, or nil.
// The result is valid UTF-8 without NUL bytes so PostgreSQL accepts it.
func textPreview(contentType string, head []byte) *string {
	if !isText(contentType) || len(head) == 0 {
		return nil
	}
	if len(head) > previewBytes {
		head = head[:previewBytes]
	}
	s := strings.ToValidUTF8(string(head), "")
	s = strings.ReplaceAll(s, "\x00", "")
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
