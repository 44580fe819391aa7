package encoding

import (
	"fmt"
	"math"
	"math/bits"
	"strconv"
	"strings"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

// ResolutionPixels returns the total pixel count of a "<W>x<H>" resolution.
func ResolutionPixels(raw string) (int, error) {
	return resolutionPixels(raw, true)
}

func resolutionPixels(raw string, strict bool) (int, error) {
	parts := strings.Split(raw, "x")
	if len(parts) < 2 || (strict && len(parts) != 2) {
		return 0, resolutionError(raw, "expected <width>x<height>")
	}

	width, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil {
		return 0, resolutionError(raw, err.Error())
	}
	height, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return 0, resolutionError(raw, err.Error())
	}
	if strict && (width <= 0 || height <= 0) {
		return 0, resolutionError(raw, "dimensions must be positive")
	}
	if productOverflows(width, height) {
		return 0, resolutionError(raw, "resolution too large")
	}
	return width * height, nil
}

func productOverflows(a, b int) bool {
	hi, lo := bits.Mul64(absUint(a), absUint(b))
	return hi != 0 || lo > math.MaxInt
}

func absUint(v int) uint64 {
	if v < 0 {
		return uint64(-(v + 1)) + 1
	}
	return uint64(v)
}

func resolutionError(raw, reason string) error {
	return domain.WrapError(domain.ErrParsing, "parse resolution", fmt.Errorf("%q: %s", raw, reason))
}
