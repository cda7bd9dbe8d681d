package repository

import (
	"log"

	"github.com/viant/splmodel/code"
)

// Option configures a Store
type Option func(*Store)

// WithLogger sets the logger reporting skipped writes and loaded models
func WithLogger(logger *log.Logger) Option {
	return func(s *Store) {
		s.logger = logger
	}
}

// WithFileName overrides the source model file name
func WithFileName(name string) Option {
	return func(s *Store) {
		s.fileName = name
	}
}

// WithEncoderOptions sets the options used when writing models
func WithEncoderOptions(options ...code.EncoderOption) Option {
	return func(s *Store) {
		s.encoderOptions = options
	}
}

// WithSchemaLocation sets the xsi:schemaLocation written with models
func WithSchemaLocation(location string) Option {
	return func(s *Store) {
		s.schemaLocation = location
	}
}
