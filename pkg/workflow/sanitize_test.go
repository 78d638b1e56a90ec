package workflow

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSanitizeName(t *testing.T) {
	tcs := map[string]struct {
		input    string
		expected string
	}{
		"leading digit":      {input: "123abc", expected: "Action_123abc"},
		"invalid characters": {input: "a!!b", expected: "ab"},
		"empty":              {input: "", expected: "Item"},
		"all invalid":        {input: "!!!", expected: "Item"},
		"spaces removed":     {input: "XML disassembler", expected: "XMLdisassembler"},
		"underscore kept":    {input: "pipeline_receive", expected: "pipeline_receive"},
		"hyphen kept":        {input: "my-pipeline", expected: "my-pipeline"},
		"dots removed":       {input: "Orders.Receive.btp", expected: "OrdersReceivebtp"},
		"clean passthrough":  {input: "Decode", expected: "Decode"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, SanitizeName(tc.input))
		})
	}
}
