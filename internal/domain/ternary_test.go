package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTernaryLogicValue_String(t *testing.T) {
	tests := []struct {
		name     string
		value    TernaryLogicValue
		expected string
	}{
		{name: "true renders as TRUE", value: TernaryTrue, expected: "TRUE"},
		{name: "false renders as FALSE", value: TernaryFalse, expected: "FALSE"},
		{name: "uncomparable renders as UNCOMPARABLE", value: TernaryUncomparable, expected: "UNCOMPARABLE"},
		{name: "out of range renders as UNKNOWN", value: TernaryLogicValue(42), expected: "UNKNOWN"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.value.String())
		})
	}
}
