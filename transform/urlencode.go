package transform

import (
	"errors"
	"net/url"
	"strings"
	"unicode/utf8"
)

var queryToPath = strings.NewReplacer("+", "%20", "%2F", "/")

// EncodeURL percent-encodes every byte of s outside [A-Za-z0-9-_.~/].
func EncodeURL(s string) string {
	return queryToPath.Replace(url.QueryEscape(s))
}

// DecodeURL replaces %XX escapes with the bytes they encode. '+' is left
// as is and the result must be valid UTF-8.
func DecodeURL(s string) (string, error) {
	d, err := url.PathUnescape(s)
	if err != nil {
		return "", &EncodingError{Op: "decode url", Err: err}
	}
	if !utf8.ValidString(d) {
		return "", &EncodingError{Op: "decode url", Err: errors.New("decoded data is not valid UTF-8")}
	}
	return d, nil
}
