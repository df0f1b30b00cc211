// Package transform holds the plain string transformations applied to
// clipboard text: defanging, case mapping, Base64, percent-encoding and
// the phishing indicator encoding built on top of it.
package transform

import (
	"encoding/base64"
	"fmt"
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// EncodingError reports input that a decoder could not accept.
type EncodingError struct {
	Op  string
	Err error
}

func (e *EncodingError) Error() string {
	return fmt.Sprintf("%s: %v", e.Op, e.Err)
}

func (e *EncodingError) Unwrap() error { return e.Err }

var (
	upperCaser = cases.Upper(language.Und)
	lowerCaser = cases.Lower(language.Und)
)

// Defang turns https://example.com into hxxps[://]example[.]com.
func Defang(s string) string {
	s = strings.ReplaceAll(s, "http", "hxxp")
	s = strings.ReplaceAll(s, "://", "[://]")
	return strings.ReplaceAll(s, ".", "[.]")
}

// Fang reverses Defang.
func Fang(s string) string {
	s = strings.ReplaceAll(s, "hxxp", "http")
	s = strings.ReplaceAll(s, "[://]", "://")
	return strings.ReplaceAll(s, "[.]", ".")
}

// Upper maps s to upper case using full Unicode case mapping.
func Upper(s string) string { return upperCaser.String(s) }

// Lower maps s to lower case using full Unicode case mapping.
func Lower(s string) string { return lowerCaser.String(s) }

// EncodeBase64 returns the standard padded Base64 encoding of s.
func EncodeBase64(s string) string {
	return base64.StdEncoding.EncodeToString([]byte(s))
}

// DecodeBase64 expects standard padded Base64 that decodes to UTF-8 text.
func DecodeBase64(s string) (string, error) {
	b, err := base64.StdEncoding.DecodeString(s)
	if err != nil {
		return "", &EncodingError{Op: "decode base64", Err: err}
	}
	if !utf8.Valid(b) {
		return "", &EncodingError{Op: "decode base64", Err: fmt.Errorf("decoded data is not valid UTF-8")}
	}
	return string(b), nil
}

// EncodePhishingIndicator replaces spaces with '+' and percent-encodes the result.
func EncodePhishingIndicator(s string) string {
	return EncodeURL(strings.ReplaceAll(s, " ", "+"))
}

// DecodePhishingIndicator reverses EncodePhishingIndicator.
func DecodePhishingIndicator(s string) (string, error) {
	d, err := DecodeURL(s)
	if err != nil {
		return "", err
	}
	return strings.ReplaceAll(d, "+", " "), nil
}
