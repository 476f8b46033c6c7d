// Package invite implements the compact URL-safe token that carries an
// event/promoter pair through an invite link. Tokens are JSON compressed
// with zlib and encoded as unpadded base64url, so they can sit directly in
// a path segment.
package invite

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"io"

	"github.com/klauspost/compress/zlib"
)

// ErrInvalidToken is returned by Decode for any string that is not a
// well-formed invite token. Foreign input is expected here, so this is a
// sentinel rather than a wrapped parse error.
var ErrInvalidToken = errors.New("invalid invite token")

// Data is the pair an invite link resolves to.
type Data struct {
	EventID    string `json:"eventId"`
	PromoterID string `json:"promoterId"`
}

// Encode serializes the pair into a token. The same input always produces
// the same token.
func Encode(data Data) (string, error) {
	payload, err := json.Marshal(data)
	if err != nil {
		return "", err
	}

	var buf bytes.Buffer
	zw := zlib.NewWriter(&buf)
	if _, err := zw.Write(payload); err != nil {
		return "", err
	}
	if err := zw.Close(); err != nil {
		return "", err
	}

	return base64.RawURLEncoding.EncodeToString(buf.Bytes()), nil
}

// Decode reverses Encode. It never panics: malformed, truncated or foreign
// strings yield ErrInvalidToken, as does a token missing either field.
func Decode(token string) (Data, error) {
	raw, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return Data{}, ErrInvalidToken
	}

	zr, err := zlib.NewReader(bytes.NewReader(raw))
	if err != nil {
		return Data{}, ErrInvalidToken
	}
	defer zr.Close()

	decompressed, err := io.ReadAll(zr)
	if err != nil {
		return Data{}, ErrInvalidToken
	}

	var data Data
	if err := json.Unmarshal(decompressed, &data); err != nil {
		return Data{}, ErrInvalidToken
	}
	if data.EventID == "" || data.PromoterID == "" {
		return Data{}, ErrInvalidToken
	}

	return data, nil
}
