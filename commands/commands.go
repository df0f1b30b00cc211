// Package commands builds the clipcmd command table.
package commands

import (
	"strings"

	"github.com/andareed/clipcmd/registry"
	"github.com/andareed/clipcmd/timeconv"
	"github.com/andareed/clipcmd/transform"
)

// NewRegistry registers every clipboard command, including help, in the
// order they are listed to the user.
func NewRegistry(conv *timeconv.Converter) *registry.Registry {
	r := registry.New()

	r.Register(registry.Command{
		Name: "defang", Alias: "d",
		Description: "https://example.com to hxxps[://]example[.]com",
		Fn:          plain(transform.Defang),
	})
	r.Register(registry.Command{
		Name: "fang", Alias: "f",
		Description: "hxxps[://]example[.]com to https://example.com",
		Fn:          plain(transform.Fang),
	})
	r.Register(registry.Command{
		Name: "lower", Alias: "l",
		Description: "convert to lowercase",
		Fn:          plain(transform.Lower),
	})
	r.Register(registry.Command{
		Name: "upper", Alias: "u",
		Description: "convert to uppercase",
		Fn:          plain(transform.Upper),
	})
	r.Register(registry.Command{
		Name: "to_utc", Alias: "utc",
		Description: "Mountain Time timestamp to UTC",
		Fn: func(s string, opts registry.Options) (string, error) {
			return conv.ToUTC(s, opts.Format)
		},
	})
	r.Register(registry.Command{
		Name: "to_mountain_time", Alias: "mdt",
		Description: "UTC timestamp to Mountain Time",
		Fn: func(s string, opts registry.Options) (string, error) {
			return conv.ToMountain(s, opts.Format)
		},
	})
	r.Register(registry.Command{
		Name: "encode_base64", Alias: "be",
		Description: "Base64 encode",
		Fn:          plain(transform.EncodeBase64),
	})
	r.Register(registry.Command{
		Name: "decode_base64", Alias: "bd",
		Description: "Base64 decode",
		Fn:          fallible(transform.DecodeBase64),
	})
	r.Register(registry.Command{
		Name: "encode_url", Alias: "ue",
		Description: "percent-encode",
		Fn:          plain(transform.EncodeURL),
	})
	r.Register(registry.Command{
		Name: "decode_url", Alias: "ud",
		Description: "percent-decode",
		Fn:          fallible(transform.DecodeURL),
	})
	r.Register(registry.Command{
		Name: "encode_phishing_indicator", Alias: "pie",
		Description: "spaces to '+', then percent-encode",
		Fn:          plain(transform.EncodePhishingIndicator),
	})
	r.Register(registry.Command{
		Name: "decode_phishing_indicator", Alias: "pid",
		Description: "percent-decode, then '+' to spaces",
		Fn:          fallible(transform.DecodePhishingIndicator),
	})
	r.Register(registry.Command{
		Name: "help", Alias: "h",
		Description: "list valid commands and shortcuts",
		Fn: func(string, registry.Options) (string, error) {
			return Help(r), nil
		},
	})

	return r
}

// Help lists the registered names and shortcuts.
func Help(r *registry.Registry) string {
	return "Valid commands are: " + strings.Join(r.Names(), ", ") + "." +
		"\n\nShortcuts are: " + strings.Join(r.Shortcuts(), ", ") + "."
}

func plain(fn func(string) string) registry.Func {
	return func(s string, _ registry.Options) (string, error) {
		return fn(s), nil
	}
}

func fallible(fn func(string) (string, error)) registry.Func {
	return func(s string, _ registry.Options) (string, error) {
		return fn(s)
	}
}
