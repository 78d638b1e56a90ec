package report

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/haroldcampos/biztalk-migrator/pkg/registry"
)

func TestCollectorSummary(t *testing.T) {
	collector := NewDefault()

	collector.RecordWorkflow("OrdersReceive", "custom")
	collector.RecordAction("Scope")
	collector.RecordAction("Foreach")
	collector.RecordAction("Compose")
	collector.RecordAction("Compose")

	collector.RecordComponent(registry.ComponentMapping{
		Identity:          "Microsoft.BizTalk.Component.XmlDasmComp",
		DisplayName:       "XML disassembler",
		Complexity:        registry.ComplexityMedium,
		RequiredResources: []string{"Integration Account"},
	})
	collector.RecordComponent(registry.ComponentMapping{
		Identity:           "Microsoft.BizTalk.Component.MIME_SMIME_Decoder",
		DisplayName:        "MIME/SMIME decoder",
		Complexity:         registry.ComplexityHigh,
		CustomCodeRequired: true,
		RequiredResources:  []string{"Azure Function", "Key Vault"},
	})
	collector.RecordComponent(registry.ComponentMapping{
		Identity:    "Fabrikam.Mystery",
		DisplayName: "Unknown Component",
		Complexity:  registry.ComplexityVariable,
	})

	summary := collector.Summary()

	assert.Equal(t, 1, summary.Workflows)
	assert.Equal(t, 4, summary.Actions)
	assert.Equal(t, 2, summary.ActionsByType["Compose"])
	assert.Equal(t, 1, summary.ByComplexity[registry.ComplexityMedium])
	assert.Equal(t, 1, summary.ByComplexity[registry.ComplexityHigh])
	assert.Equal(t, []string{"MIME/SMIME decoder"}, summary.CustomCode)
	assert.Equal(t, []string{"Fabrikam.Mystery"}, summary.Unknown)
	assert.Equal(t, []string{"Azure Function", "Integration Account", "Key Vault"}, summary.RequiredServices)
}

func TestCollectorConcurrent(t *testing.T) {
	collector := NewDefault()

	done := make(chan struct{})
	for i := 0; i < 4; i++ {
		go func() {
			defer func() { done <- struct{}{} }()
			for j := 0; j < 100; j++ {
				collector.RecordAction("Compose")
			}
		}()
	}
	for i := 0; i < 4; i++ {
		<-done
	}

	assert.Equal(t, 400, collector.Summary().Actions)
}

func TestSummaryRender(t *testing.T) {
	collector := NewDefault()
	collector.RecordWorkflow("OrdersReceive", "custom")
	collector.RecordAction("Scope")
	collector.RecordComponent(registry.ComponentMapping{
		DisplayName:        "MIME/SMIME decoder",
		Complexity:         registry.ComplexityHigh,
		CustomCodeRequired: true,
		RequiredResources:  []string{"Azure Function"},
	})

	var buf bytes.Buffer
	require.NoError(t, collector.Summary().Render(&buf, registry.Default(nil)))

	out := buf.String()
	assert.Contains(t, out, "Workflows mapped: 1")
	assert.Contains(t, out, "MIME/SMIME decoder")
	assert.Contains(t, out, "Azure Function")
}
