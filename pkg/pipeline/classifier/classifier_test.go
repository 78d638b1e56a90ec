package classifier

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/haroldcampos/biztalk-migrator/pkg/pipeline/model"
)

func TestClassify(t *testing.T) {
	tcs := map[string]struct {
		doc      *model.PipelineDocument
		expected Classification
	}{
		"nil document": {
			doc:      nil,
			expected: Unknown,
		},
		"empty receive pipeline": {
			doc: &model.PipelineDocument{
				Direction: model.DirectionReceive,
				Stages:    []*model.Stage{{Category: model.CategoryDecode}},
			},
			expected: PassThroughReceive,
		},
		"empty send pipeline": {
			doc: &model.PipelineDocument{
				Direction: model.DirectionSend,
				Stages:    []*model.Stage{{Category: model.CategoryEncode}},
			},
			expected: PassThroughTransmit,
		},
		"standard receive template": {
			doc: &model.PipelineDocument{
				Direction: model.DirectionReceive,
				Stages: []*model.Stage{
					{
						Category: model.CategoryDisassemble,
						Components: []*model.Component{
							{Name: "Microsoft.BizTalk.Component.XmlDasmComp"},
						},
					},
				},
			},
			expected: StandardReceiveTemplate,
		},
		"standard transmit template": {
			doc: &model.PipelineDocument{
				Direction: model.DirectionSend,
				Stages: []*model.Stage{
					{
						Category: model.CategoryAssemble,
						Components: []*model.Component{
							{Name: "Microsoft.BizTalk.Component.XmlAsmComp"},
						},
					},
				},
			},
			expected: StandardTransmitTemplate,
		},
		"custom component makes custom pipeline": {
			doc: &model.PipelineDocument{
				Direction: model.DirectionReceive,
				Stages: []*model.Stage{
					{
						Category: model.CategoryDecode,
						Components: []*model.Component{
							{Name: "Contoso.Pipeline.LegacyDecoder"},
						},
					},
				},
			},
			expected: Custom,
		},
	}

	for name, tc := range tcs {
		t.Run(name, func(t *testing.T) {
			result := Classify(tc.doc)
			assert.Equal(t, tc.expected, result.Classification)
			assert.NotEmpty(t, result.Description)
		})
	}
}

func TestIsPassThrough(t *testing.T) {
	assert.True(t, PassThroughReceive.IsPassThrough())
	assert.True(t, PassThroughTransmit.IsPassThrough())
	assert.False(t, StandardReceiveTemplate.IsPassThrough())
	assert.False(t, StandardTransmitTemplate.IsPassThrough())
	assert.False(t, Custom.IsPassThrough())
	assert.False(t, Unknown.IsPassThrough())
}
