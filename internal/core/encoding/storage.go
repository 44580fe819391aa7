package encoding

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/satyam2006-cmd/Laptop-Price-Prediction-Model/internal/core/domain"
)

type StorageKind string

const (
	StorageSSD StorageKind = "SSD"
	StorageHDD StorageKind = "HDD"
)

// unitsPerTB converts terabytes into the GB-scale integer used by the model.
const unitsPerTB = 1024

// maxStorageUnits bounds parsed sizes in either unit.
const maxStorageUnits = math.MaxInt32

// ParseStorage converts a descriptor such as "512GB SSD" or "1TB HDD" into
// its size in GB-scale units and the drive kind.
func ParseStorage(raw string) (int, StorageKind, error) {
	return parseStorage(raw, true)
}

func parseStorage(raw string, strict bool) (int, StorageKind, error) {
	compact := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, raw)

	hasSSD := strings.Contains(compact, string(StorageSSD))
	hasHDD := strings.Contains(compact, string(StorageHDD))

	var kind StorageKind
	switch {
	case hasSSD && hasHDD:
		if strict {
			return 0, "", storageError(raw, "both SSD and HDD present")
		}
		kind = StorageHDD
	case hasHDD:
		kind = StorageHDD
	case hasSSD:
		kind = StorageSSD
	default:
		return 0, "", storageError(raw, "no SSD or HDD token")
	}

	token := strings.ReplaceAll(compact, string(StorageSSD), "")
	token = strings.ReplaceAll(token, string(StorageHDD), "")

	if strings.Contains(token, "TB") {
		size, err := strconv.ParseFloat(strings.ReplaceAll(token, "TB", ""), 64)
		if err != nil {
			return 0, "", storageError(raw, err.Error())
		}
		if math.IsNaN(size) || math.IsInf(size, 0) {
			return 0, "", storageError(raw, "size must be finite")
		}
		if strict && size <= 0 {
			return 0, "", storageError(raw, "size must be positive")
		}
		if math.Abs(size*unitsPerTB) > maxStorageUnits {
			return 0, "", storageError(raw, "size too large")
		}
		return int(size * unitsPerTB), kind, nil
	}

	if strict && !strings.HasSuffix(token, "GB") {
		return 0, "", storageError(raw, "expected a GB or TB unit")
	}
	size, err := strconv.Atoi(strings.ReplaceAll(token, "GB", ""))
	if err != nil {
		return 0, "", storageError(raw, err.Error())
	}
	if strict && size <= 0 {
		return 0, "", storageError(raw, "size must be positive")
	}
	if size > maxStorageUnits || size < -maxStorageUnits {
		return 0, "", storageError(raw, "size too large")
	}
	return size, kind, nil
}

func storageError(raw, reason string) error {
	return domain.WrapError(domain.ErrParsing, "parse storage", fmt.Errorf("%q: %s", raw, reason))
}

// FormatStorage renders a GB-denominated descriptor that ParseStorage accepts.
func FormatStorage(size int, kind StorageKind) string {
	return fmt.Sprintf("%dGB %s", size, kind)
}
