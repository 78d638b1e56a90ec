package model

// Direction indicates which way messages flow through a pipeline.
type Direction string

const (
	// DirectionReceive marks inbound pipelines (decode, disassemble, validate, resolve party).
	DirectionReceive Direction = "Receive"
	// DirectionSend marks outbound pipelines (pre-assemble, assemble, encode).
	DirectionSend Direction = "Send"
)

// PipelineDocument is a parsed BizTalk pipeline. Stage order is execution order.
// The document is an immutable input: the engine never mutates it and never
// keeps references into it inside the workflows it produces.
type PipelineDocument struct {
	FriendlyName string
	Description  string
	Version      string
	Direction    Direction
	Stages       []*Stage
}

// ComponentCount returns the total number of components across all stages.
func (d *PipelineDocument) ComponentCount() int {
	if d == nil {
		return 0
	}

	total := 0
	for _, stage := range d.Stages {
		if stage == nil {
			continue
		}
		total += len(stage.Components)
	}

	return total
}
