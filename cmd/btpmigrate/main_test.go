package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const ordersPipeline = `<?xml version="1.0"?>
<Document xmlns:xsi="http://www.w3.org/2001/XMLSchema-instance"
          PolicyFilePath="BTSReceivePolicy.xml"
          FriendlyName="Orders Receive">
  <Stages>
    <Stage CategoryId="9d0e4105-4cce-4536-83fa-4a5040674ad6" ExecutionMode="all">
      <Components>
        <Component Name="Microsoft.BizTalk.Component.XmlDasmComp"
                   ComponentName="XML disassembler" Version="1.0">
          <Properties>
            <Property Name="DocumentSpecName">
              <Value xsi:type="xsd:string">Orders.OrderSchema</Value>
            </Property>
          </Properties>
        </Component>
      </Components>
    </Stage>
  </Stages>
</Document>`

func TestMappingsCommand(t *testing.T) {
	var out, errOut bytes.Buffer

	require.NoError(t, execute([]string{"mappings"}, &out, &errOut))

	assert.Contains(t, out.String(), "Microsoft.BizTalk.Component.XmlDasmComp")
	assert.Contains(t, out.String(), "XML disassembler")
}

func TestMigrateCommand(t *testing.T) {
	dir := t.TempDir()
	btp := filepath.Join(dir, "orders.btp")
	require.NoError(t, os.WriteFile(btp, []byte(ordersPipeline), 0o600))

	var out, errOut bytes.Buffer
	err := execute([]string{"migrate", btp, "--out-dir", dir, "--diagram", "--report"}, &out, &errOut)
	require.NoError(t, err)

	workflow, err := os.ReadFile(filepath.Join(dir, "orders.workflow.json"))
	require.NoError(t, err)
	assert.Contains(t, string(workflow), `"OrdersReceive"`)
	assert.Contains(t, string(workflow), "pipeline_receive")

	dot, err := os.ReadFile(filepath.Join(dir, "orders.dot"))
	require.NoError(t, err)
	assert.Contains(t, string(dot), "strict digraph")

	assert.Contains(t, out.String(), "Workflows mapped: 1")
}

func TestMigrateCommandMissingInput(t *testing.T) {
	var out, errOut bytes.Buffer

	err := execute([]string{"migrate", filepath.Join(t.TempDir(), "missing.btp")}, &out, &errOut)
	assert.Error(t, err)
}

func TestMigrateCommandNameWithMultipleInputs(t *testing.T) {
	var out, errOut bytes.Buffer

	err := execute([]string{"migrate", "a.btp", "b.btp", "--name", "One"}, &out, &errOut)
	assert.Error(t, err)
}
