package classifier

import (
	"strings"

	"github.com/haroldcampos/biztalk-migrator/pkg/pipeline/model"
)

// Classification is one member of the closed pipeline-pattern set.
type Classification string

const (
	PassThroughReceive       Classification = "pass-through-receive"
	PassThroughTransmit      Classification = "pass-through-transmit"
	StandardReceiveTemplate  Classification = "standard-receive-template"
	StandardTransmitTemplate Classification = "standard-transmit-template"
	Custom                   Classification = "custom"
	Unknown                  Classification = "unknown"
)

// IsPassThrough reports whether the classification is one of the two
// pass-through variants. This is the only distinction the mapper consumes.
func (c Classification) IsPassThrough() bool {
	return c == PassThroughReceive || c == PassThroughTransmit
}

// Result pairs a classification with a human-readable description.
type Result struct {
	Classification Classification
	Description    string
}

// Stock components that make up the standard receive/transmit templates.
var standardComponents = map[string]struct{}{
	"microsoft.biztalk.component.xmldasmcomp":  {},
	"microsoft.biztalk.component.xmlasmcomp":   {},
	"microsoft.biztalk.component.xmlvalidator": {},
	"microsoft.biztalk.component.partyres":     {},
}

// Classify inspects a pipeline document and returns its default-pattern
// classification. It is a pure function of the document.
func Classify(doc *model.PipelineDocument) Result {
	if doc == nil {
		return Result{
			Classification: Unknown,
			Description:    "No pipeline document available for classification",
		}
	}

	if doc.ComponentCount() == 0 {
		return passThrough(doc.Direction)
	}

	if allStandard(doc) {
		return standardTemplate(doc.Direction)
	}

	return Result{
		Classification: Custom,
		Description:    "Custom pipeline with non-default component configuration",
	}
}

func passThrough(direction model.Direction) Result {
	if direction == model.DirectionSend {
		return Result{
			Classification: PassThroughTransmit,
			Description:    "Pass-through transmit pipeline performing no message processing",
		}
	}

	return Result{
		Classification: PassThroughReceive,
		Description:    "Pass-through receive pipeline performing no message processing",
	}
}

func standardTemplate(direction model.Direction) Result {
	if direction == model.DirectionSend {
		return Result{
			Classification: StandardTransmitTemplate,
			Description:    "Standard XML transmit pipeline using stock components only",
		}
	}

	return Result{
		Classification: StandardReceiveTemplate,
		Description:    "Standard XML receive pipeline using stock components only",
	}
}

func allStandard(doc *model.PipelineDocument) bool {
	for _, stage := range doc.Stages {
		for _, comp := range stage.Components {
			if comp == nil {
				continue
			}
			if _, ok := standardComponents[strings.ToLower(comp.Name)]; !ok {
				return false
			}
		}
	}

	return true
}
