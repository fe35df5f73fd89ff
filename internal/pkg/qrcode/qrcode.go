// Package qrcode encodes booking ids into the attendance QR payload and
// decodes scanned text back into an id.
package qrcode

import (
	"encoding/json"
	"strings"

	goqrcode "github.com/skip2/go-qrcode"
)

const (
	Version = 1
	Tag     = "HBK"
)

type payload struct {
	V  int    `json:"v"`
	T  string `json:"t"`
	ID string `json:"id"`
}

// Encode returns the canonical payload text {"v":1,"t":"HBK","id":...}.
func Encode(bookingID string) string {
	raw, _ := json.Marshal(payload{V: Version, T: Tag, ID: bookingID})
	return string(raw)
}

// Decode returns the booking id carried by text. ok is false for anything
// that is not a version-1 HBK payload with a non-empty id. Keys match
// exactly; differently cased keys are ignored.
func Decode(text string) (id string, ok bool) {
	var fields map[string]json.RawMessage
	if err := json.Unmarshal([]byte(strings.TrimSpace(text)), &fields); err != nil {
		return "", false
	}

	rawV, hasV := fields["v"]
	rawT, hasT := fields["t"]
	rawID, hasID := fields["id"]
	if !hasV || !hasT || !hasID {
		return "", false
	}

	var v float64
	if err := json.Unmarshal(rawV, &v); err != nil || v != Version {
		return "", false
	}
	var tag string
	if err := json.Unmarshal(rawT, &tag); err != nil || tag != Tag {
		return "", false
	}
	if err := json.Unmarshal(rawID, &id); err != nil || id == "" {
		return "", false
	}
	return id, true
}

// RenderPNG draws text as a PNG QR code of size x size pixels.
func RenderPNG(text string, size int) ([]byte, error) {
	return goqrcode.Encode(text, goqrcode.Medium, size)
}
