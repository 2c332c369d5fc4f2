package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestUpperSnakeCase(t *testing.T) {
	for in, want := range map[string]string{
		"":                "",
		"Add":             "ADD",
		"FullyConnected":  "FULLY_CONNECTED",
		"L2Normalization": "L2_NORMALIZATION",
		"Relu6":           "RELU6",
		"HTTPServer":      "HTTP_SERVER",
		"Conv2D":          "CONV2_D",
		"already_snake":   "ALREADY_SNAKE",
	} {
		assert.Equalf(t, want, UpperSnakeCase(in), "UpperSnakeCase(%q)", in)
	}
}
