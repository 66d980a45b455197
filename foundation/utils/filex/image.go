// File: image.go
// Title: Image Dimension Probing
// Description: Reads image dimensions through a pluggable decoder, bounded
//              by a timeout and the caller's context, with a configurable
//              failure policy.
// Author: msto63
// Version: v0.1.0
// Created: 2026-10-17
// Modified: 2026-10-17
//
// Change History:
// - 2026-10-17 v0.1.0: Initial implementation

package filex

import (
	"context"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"time"

	"github.com/msto63/ztk/foundation/core/errors"
	"github.com/msto63/ztk/foundation/core/log"
	"github.com/msto63/ztk/foundation/core/options"
)

// Dimensions of an image in pixels
type Dimensions struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// String renders "WxH"
func (d Dimensions) String() string {
	return fmt.Sprintf("%dx%d", d.Width, d.Height)
}

// DimensionDecoder reads the dimensions of an encoded image
type DimensionDecoder interface {
	DecodeDimensions(r io.Reader) (Dimensions, error)
}

// DimensionDecoderFunc adapts a function to DimensionDecoder
type DimensionDecoderFunc func(r io.Reader) (Dimensions, error)

// DecodeDimensions calls f
func (f DimensionDecoderFunc) DecodeDimensions(r io.Reader) (Dimensions, error) {
	return f(r)
}

// StandardDecoder reads PNG, JPEG and GIF headers without decoding pixels
var StandardDecoder DimensionDecoder = DimensionDecoderFunc(func(r io.Reader) (Dimensions, error) {
	cfg, _, err := image.DecodeConfig(r)
	if err != nil {
		return Dimensions{}, err
	}
	return Dimensions{Width: cfg.Width, Height: cfg.Height}, nil
})

// OnErrorPolicy selects how ImageDimensions reports a failure
type OnErrorPolicy string

const (
	// OnErrorThrow returns a PLATFORM_UNAVAILABLE error
	OnErrorThrow OnErrorPolicy = "throw"
	// OnErrorReturnNull returns nil dimensions and no error
	OnErrorReturnNull OnErrorPolicy = "return-null"
)

// DefaultImageTimeout bounds a single probe
const DefaultImageTimeout = 5 * time.Second

// ImageDimensionOptions are call-site overrides; nil fields keep the default.
type ImageDimensionOptions struct {
	OnError *OnErrorPolicy
	Timeout *time.Duration
	Decoder DimensionDecoder
}

// ImageDimensionSpec is the effective probe configuration
type ImageDimensionSpec struct {
	OnError OnErrorPolicy
	Timeout time.Duration
	Decoder DimensionDecoder
}

// DefaultImageDimensionSpec returns the built-in probe defaults
func DefaultImageDimensionSpec() ImageDimensionSpec {
	return ImageDimensionSpec{
		OnError: OnErrorThrow,
		Timeout: DefaultImageTimeout,
		Decoder: StandardDecoder,
	}
}

type decodeResult struct {
	dims Dimensions
	err  error
}

// ImageDimensions decodes the dimensions of the image in r. The probe ends
// when the decoder returns, the timeout elapses or ctx is done, whichever
// comes first. A decoder that outlives the probe is abandoned; it must not
// block forever on r.
func ImageDimensions(ctx context.Context, r io.Reader, opts ...ImageDimensionOptions) (*Dimensions, error) {
	spec := DefaultImageDimensionSpec()
	for _, o := range opts {
		spec = options.Resolve(spec, o)
	}

	switch spec.OnError {
	case OnErrorThrow, OnErrorReturnNull:
	default:
		return nil, errors.InvalidSpec(errors.ModuleFilex, "ImageDimensions", "onError", spec.OnError, "must be throw or return-null")
	}
	if spec.Timeout <= 0 {
		return nil, errors.InvalidSpec(errors.ModuleFilex, "ImageDimensions", "timeout", spec.Timeout, "must be positive")
	}

	done := make(chan decodeResult, 1)
	go func() {
		dims, err := spec.Decoder.DecodeDimensions(r)
		if err == nil && (dims.Width <= 0 || dims.Height <= 0) {
			err = fmt.Errorf("decoder reported empty dimensions %s", dims)
		}
		done <- decodeResult{dims: dims, err: err}
	}()

	timer := time.NewTimer(spec.Timeout)
	defer timer.Stop()

	var cause error
	select {
	case res := <-done:
		if res.err == nil {
			return &res.dims, nil
		}
		cause = res.err
	case <-timer.C:
		cause = fmt.Errorf("image decoding timed out after %s", spec.Timeout)
	case <-ctx.Done():
		cause = ctx.Err()
	}

	if spec.OnError == OnErrorReturnNull {
		log.Named("filex").Warn("image dimensions unavailable", log.Fields{"error": cause.Error()})
		return nil, nil
	}
	return nil, errors.PlatformUnavailable(errors.ModuleFilex, "ImageDimensions", "image decoder", cause)
}

// ImageDimensionsFromFile opens path and probes it with ImageDimensions. A
// file that cannot be opened is reported according to the OnError policy.
func ImageDimensionsFromFile(ctx context.Context, path string, opts ...ImageDimensionOptions) (*Dimensions, error) {
	f, err := os.Open(path)
	if err != nil {
		failing := DimensionDecoderFunc(func(io.Reader) (Dimensions, error) { return Dimensions{}, err })
		return ImageDimensions(ctx, nil, append(opts, ImageDimensionOptions{Decoder: failing})...)
	}
	defer f.Close()
	return ImageDimensions(ctx, f, opts...)
}
