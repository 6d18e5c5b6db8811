package snapshot

import (
	"encoding/base64"

	"github.com/goliatone/go-snapshot/pkg/interfaces/logger"
	"github.com/goliatone/go-snapshot/pkg/secrets"
)

// BytesDecoder converts a stored string into bytes when a lookup requests
// KindBytes against a string binding. A failing decoder surfaces to the
// caller as a TypeMismatchError for that key.
type BytesDecoder func(s string) ([]byte, error)

// UTF8Decoder returns the string's UTF-8 encoding. This is the default.
func UTF8Decoder(s string) ([]byte, error) {
	return []byte(s), nil
}

// Base64Decoder decodes standard base64 text into bytes.
func Base64Decoder(s string) ([]byte, error) {
	return base64.StdEncoding.DecodeString(s)
}

// Options collects the pluggable collaborators consulted at construction and
// lookup time. Zero value behavior: nothing is secret, string-to-bytes
// coercion is UTF-8 passthrough, logging is discarded.
type Options struct {
	Classifier   secrets.Classifier
	BytesDecoder BytesDecoder
	Logger       logger.Logger
}

// Option amends construction options.
type Option func(*Options)

// WithSecretClassifier sets the policy consulted once per leaf while
// flattening. The decision is stored on the entry and never recomputed.
func WithSecretClassifier(c secrets.Classifier) Option {
	return func(o *Options) {
		if c != nil {
			o.Classifier = c
		}
	}
}

// WithBytesDecoder sets the decoder used for string-to-bytes coercion.
func WithBytesDecoder(d BytesDecoder) Option {
	return func(o *Options) {
		if d != nil {
			o.BytesDecoder = d
		}
	}
}

// WithLogger sets the logger used for construction diagnostics. The engine
// logs key counts and identifiers only, never values.
func WithLogger(l logger.Logger) Option {
	return func(o *Options) {
		if l != nil {
			o.Logger = l
		}
	}
}

func buildOptions(opts []Option) Options {
	settings := Options{
		Classifier:   secrets.Never(),
		BytesDecoder: UTF8Decoder,
		Logger:       &logger.Nop{},
	}
	for _, opt := range opts {
		opt(&settings)
	}
	return settings
}
