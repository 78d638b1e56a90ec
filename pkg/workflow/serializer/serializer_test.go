package serializer

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	wmodel "github.com/haroldcampos/biztalk-migrator/pkg/workflow/model"
)

func testWorkflow() *wmodel.Workflow {
	scope := &wmodel.Action{
		Name:     "Disassemble",
		Type:     wmodel.ActionTypeScope,
		Details:  "Stage Disassemble (execution mode: All)",
		Sequence: 1,
	}
	foreach := &wmodel.Action{
		Name:          "XMLdisassembler",
		Type:          wmodel.ActionTypeForeach,
		Sequence:      2,
		Configuration: map[string]string{"DocumentSpecName": "Orders.OrderSchema"},
	}
	scope.AddChild(foreach)

	return &wmodel.Workflow{
		Name: "OrdersReceive",
		Triggers: []wmodel.Trigger{
			{Name: "pipeline_receive", Kind: wmodel.TriggerKindRequest, Transport: wmodel.TriggerTransportHTTP, Sequence: 0},
		},
		Actions: []*wmodel.Action{scope},
	}
}

func TestWrite(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Write(&buf, testWorkflow()))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	assert.Equal(t, "OrdersReceive", doc["name"])

	definition, ok := doc["definition"].(map[string]any)
	require.True(t, ok)
	assert.Contains(t, definition["$schema"], "workflowdefinition.json")

	triggers, ok := definition["triggers"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, triggers, "pipeline_receive")

	trigger := triggers["pipeline_receive"].(map[string]any)
	assert.Equal(t, "Request", trigger["type"])
	assert.Equal(t, "Http", trigger["kind"])

	actions, ok := definition["actions"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, actions, "Disassemble")

	scope := actions["Disassemble"].(map[string]any)
	assert.Equal(t, "Scope", scope["type"])

	children, ok := scope["actions"].(map[string]any)
	require.True(t, ok)
	require.Contains(t, children, "XMLdisassembler")

	child := children["XMLdisassembler"].(map[string]any)
	inputs := child["inputs"].(map[string]any)
	assert.Equal(t, "Orders.OrderSchema", inputs["DocumentSpecName"])
}

func TestWriteRunAfterChainsSiblings(t *testing.T) {
	wf := &wmodel.Workflow{
		Name: "Chained",
		Actions: []*wmodel.Action{
			{Name: "First", Type: wmodel.ActionTypeScope, Sequence: 1},
			{Name: "Second", Type: wmodel.ActionTypeScope, Sequence: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, wf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	actions := doc["definition"].(map[string]any)["actions"].(map[string]any)

	first := actions["First"].(map[string]any)
	assert.Empty(t, first["runAfter"])

	second := actions["Second"].(map[string]any)
	runAfter := second["runAfter"].(map[string]any)
	require.Contains(t, runAfter, "First")
}

func TestWriteDisambiguatesDuplicateNames(t *testing.T) {
	wf := &wmodel.Workflow{
		Name: "Duplicates",
		Actions: []*wmodel.Action{
			{Name: "Step", Type: wmodel.ActionTypeCompose, Sequence: 1},
			{Name: "Step", Type: wmodel.ActionTypeCompose, Sequence: 2},
		},
	}

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, wf))

	var doc map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &doc))

	actions := doc["definition"].(map[string]any)["actions"].(map[string]any)
	assert.Len(t, actions, 2)
	assert.Contains(t, actions, "Step")
	assert.Contains(t, actions, "Step_2")
}

func TestWriteNilWorkflow(t *testing.T) {
	var buf bytes.Buffer
	assert.Error(t, Write(&buf, nil))
}
