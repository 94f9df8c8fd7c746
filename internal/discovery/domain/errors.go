package domain

import "errors"

// ErrUnsupportedMediaType is returned when no adapter is registered for a media type.
var ErrUnsupportedMediaType = errors.New("unsupported media type")
