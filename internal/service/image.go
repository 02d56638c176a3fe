package service

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// Image is a decoded inline image ready for the inference backend.
type Image struct {
	MimeType string
	Data     []byte
}

// ParseImage strips an optional data-URI header from s and decodes the base64
// payload. The header's mime type wins over defaultMime when it names an image type.
func ParseImage(s, defaultMime string) (Image, error) {
	s = strings.TrimSpace(s)
	mime := defaultMime
	payload := s
	if i := strings.Index(s, ","); i >= 0 {
		if m, ok := mimeFromHeader(s[:i]); ok {
			mime = m
		}
		payload = s[i+1:]
	}
	if payload == "" {
		return Image{}, fmt.Errorf("%w: empty image payload", ErrMissingInput)
	}

	data, err := decodeBase64(payload)
	if err != nil {
		return Image{}, fmt.Errorf("%w: %v", ErrInvalidImage, err)
	}
	return Image{MimeType: mime, Data: data}, nil
}

// DataURI returns original unchanged when it already carries a data-URI header,
// otherwise wraps it as a base64 data URI of type mime.
func DataURI(original, mime string) string {
	if strings.HasPrefix(original, "data:") {
		return original
	}
	return "data:" + mime + ";base64," + original
}

// mimeFromHeader reads "data:image/png;base64" style headers.
func mimeFromHeader(header string) (string, bool) {
	rest, ok := strings.CutPrefix(strings.TrimSpace(header), "data:")
	if !ok {
		return "", false
	}
	mime, _, _ := strings.Cut(rest, ";")
	mime = strings.ToLower(strings.TrimSpace(mime))
	if !strings.HasPrefix(mime, "image/") {
		return "", false
	}
	return mime, true
}

func decodeBase64(payload string) ([]byte, error) {
	if strings.ContainsAny(payload, " \r\n\t") {
		payload = strings.Join(strings.Fields(payload), "")
	}
	data, err := base64.StdEncoding.DecodeString(payload)
	if err == nil {
		return data, nil
	}
	if raw, rerr := base64.RawStdEncoding.DecodeString(payload); rerr == nil {
		return raw, nil
	}
	return nil, err
}
