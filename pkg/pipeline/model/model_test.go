package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStageDisplayName(t *testing.T) {
	tcs := map[string]struct {
		category StageCategory
		expected string
	}{
		"decode":        {category: CategoryDecode, expected: "Decode"},
		"disassemble":   {category: CategoryDisassemble, expected: "Disassemble"},
		"validate":      {category: CategoryValidate, expected: "Validate"},
		"resolve party": {category: CategoryResolveParty, expected: "ResolveParty"},
		"pre assemble":  {category: CategoryPreAssemble, expected: "PreAssemble"},
		"assemble":      {category: CategoryAssemble, expected: "Assemble"},
		"encode":        {category: CategoryEncode, expected: "Encode"},
		"unknown":       {category: StageCategory("not-a-category"), expected: "Stage"},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, StageDisplayName(tc.category))
		})
	}
}

func TestComponentTypeForCategory(t *testing.T) {
	assert.Equal(t, ComponentTypeDisassembling, ComponentTypeForCategory(CategoryDisassemble))
	assert.Equal(t, ComponentTypeAssembling, ComponentTypeForCategory(CategoryAssemble))
	assert.Equal(t, ComponentTypeValidating, ComponentTypeForCategory(CategoryValidate))
	assert.Equal(t, ComponentTypePartyResolver, ComponentTypeForCategory(CategoryResolveParty))
	assert.Equal(t, ComponentTypeGeneral, ComponentTypeForCategory(CategoryDecode))
	assert.Equal(t, ComponentTypeGeneral, ComponentTypeForCategory(StageCategory("other")))
}

func TestComponentDisplayName(t *testing.T) {
	tcs := map[string]struct {
		component Component
		expected  string
	}{
		"short name wins": {
			component: Component{Name: "Microsoft.BizTalk.Component.XmlDasmComp", ComponentName: "XML disassembler"},
			expected:  "XML disassembler",
		},
		"falls back to last segment": {
			component: Component{Name: "Microsoft.BizTalk.Component.XmlDasmComp"},
			expected:  "XmlDasmComp",
		},
		"no dots": {
			component: Component{Name: "MyComponent"},
			expected:  "MyComponent",
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, tc.expected, tc.component.DisplayName())
		})
	}
}

func TestComponentProperty(t *testing.T) {
	comp := Component{
		Properties: []Property{
			{Name: "DocumentSpecName", Value: "Orders.OrderSchema", Type: "string"},
			{Name: "EnvelopeSpecName", Value: "", Type: "string"},
		},
	}

	value, ok := comp.Property("DocumentSpecName")
	assert.True(t, ok)
	assert.Equal(t, "Orders.OrderSchema", value)

	value, ok = comp.Property("documentspecname")
	assert.True(t, ok)
	assert.Equal(t, "Orders.OrderSchema", value)

	_, ok = comp.Property("RecoverableInterchangeProcessing")
	assert.False(t, ok)
}

func TestComponentCount(t *testing.T) {
	var nilDoc *PipelineDocument
	assert.Zero(t, nilDoc.ComponentCount())

	doc := &PipelineDocument{
		Stages: []*Stage{
			{Category: CategoryDecode},
			nil,
			{Category: CategoryDisassemble, Components: []*Component{{Name: "a"}, {Name: "b"}}},
		},
	}
	assert.Equal(t, 2, doc.ComponentCount())
}
