package utils

import (
	"strings"

	"github.com/gomlx/gopjrt/dtypes"
	"github.com/pkg/errors"
)

// dtypeNames maps the spellings accepted in graph description files to dtypes.
// Both the TFLite tensor type names and the short MLIR-like names are accepted.
var dtypeNames = map[string]dtypes.DType{
	"bool":     dtypes.Bool,
	"i1":       dtypes.Bool,
	"int8":     dtypes.Int8,
	"i8":       dtypes.Int8,
	"int16":    dtypes.Int16,
	"i16":      dtypes.Int16,
	"int32":    dtypes.Int32,
	"i32":      dtypes.Int32,
	"int64":    dtypes.Int64,
	"i64":      dtypes.Int64,
	"uint8":    dtypes.Uint8,
	"ui8":      dtypes.Uint8,
	"uint16":   dtypes.Uint16,
	"ui16":     dtypes.Uint16,
	"uint32":   dtypes.Uint32,
	"ui32":     dtypes.Uint32,
	"uint64":   dtypes.Uint64,
	"ui64":     dtypes.Uint64,
	"float16":  dtypes.Float16,
	"f16":      dtypes.Float16,
	"bfloat16": dtypes.BFloat16,
	"bf16":     dtypes.BFloat16,
	"float32":  dtypes.Float32,
	"f32":      dtypes.Float32,
	"float64":  dtypes.Float64,
	"f64":      dtypes.Float64,
}

// DTypeFromName parses a dtype name as written in graph description files.
// Matching is case-insensitive.
func DTypeFromName(name string) (dtypes.DType, error) {
	dtype, found := dtypeNames[strings.ToLower(strings.TrimSpace(name))]
	if !found {
		return dtypes.InvalidDType, errors.Errorf("unknown dtype %q", name)
	}
	return dtype, nil
}
