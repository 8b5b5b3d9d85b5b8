package schema

import (
	"encoding/base64"
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Image is a base64-encoded image, passed through to the model unchanged
type Image string

////////////////////////////////////////////////////////////////////////////////
// LIFECYCLE

// ImageFromBase64 wraps an already-encoded image
func ImageFromBase64(data string) Image {
	return Image(data)
}

// ImageFromBytes encodes raw image data
func ImageFromBytes(data []byte) Image {
	return Image(base64.StdEncoding.EncodeToString(data))
}

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

// Base64 returns the encoded image
func (i Image) Base64() string {
	return string(i)
}
