package drawio

import (
	"bytes"
	"compress/flate"
	"encoding/base64"
	"fmt"
	"io"
	"net/url"
)

// decodeStep is one fallible stage of the payload decoding chain.
type decodeStep func([]byte) ([]byte, error)

// decodeChain is the compressed-payload decoding pipeline, applied in
// order: URL-decode, Base64-decode, raw-deflate inflate. The chain is
// all-or-nothing; any failure means the payload was not stored encoded.
var decodeChain = []decodeStep{urlDecode, base64Decode, inflate}

// decodePayload decodes a diagram page payload. If any stage of the
// chain fails the payload is returned unchanged, on the assumption
// that it is already plaintext XML. The caller decides what to do when
// that assumption is also wrong.
func decodePayload(data []byte) []byte {
	decoded := data
	for _, step := range decodeChain {
		out, err := step(decoded)
		if err != nil {
			return data
		}
		decoded = out
	}
	return decoded
}

// urlDecode reverses percent-encoding. PathUnescape is used rather than
// QueryUnescape so '+' characters in the Base64 payload survive.
func urlDecode(data []byte) ([]byte, error) {
	s, err := url.PathUnescape(string(data))
	if err != nil {
		return nil, fmt.Errorf("url decode: %w", err)
	}
	return []byte(s), nil
}

// base64Decode reverses standard Base64 encoding.
func base64Decode(data []byte) ([]byte, error) {
	out, err := base64.StdEncoding.DecodeString(string(data))
	if err != nil {
		// Some writers strip padding.
		out, err = base64.RawStdEncoding.DecodeString(string(data))
	}
	if err != nil {
		return nil, fmt.Errorf("base64 decode: %w", err)
	}
	return out, nil
}

// inflate decompresses a raw deflate stream (zlib with a negative
// window, draw.io's storage encoding).
func inflate(data []byte) ([]byte, error) {
	r := flate.NewReader(bytes.NewReader(data))
	defer r.Close()
	out, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("inflate: %w", err)
	}
	return out, nil
}

// deflate compresses data as a raw deflate stream. Used only by tests
// to build realistic compressed fixtures; the generator always emits
// plaintext.
func deflate(data []byte) ([]byte, error) {
	var buf bytes.Buffer
	w, err := flate.NewWriter(&buf, flate.DefaultCompression)
	if err != nil {
		return nil, err
	}
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
