package workflow

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/haroldcampos/biztalk-migrator/pkg/pipeline/classifier"
	pmodel "github.com/haroldcampos/biztalk-migrator/pkg/pipeline/model"
	"github.com/haroldcampos/biztalk-migrator/pkg/registry"
	wmodel "github.com/haroldcampos/biztalk-migrator/pkg/workflow/model"
	"github.com/haroldcampos/biztalk-migrator/pkg/workflow/report"
)

// Canonical stage traversal orders per pipeline direction. Stages absent from
// a document, or present but empty, contribute nothing.
var (
	receiveStageOrder = []string{
		pmodel.StageNameDecode,
		pmodel.StageNameDisassemble,
		pmodel.StageNameValidate,
		pmodel.StageNameResolveParty,
	}
	sendStageOrder = []string{
		pmodel.StageNamePreAssemble,
		pmodel.StageNameAssemble,
		pmodel.StageNameEncode,
	}
)

const passThroughActionName = "PassThroughPipelineInfo"

// ClassifyFunc is the classifier contract the mapper consumes: a pure
// function of the document returning its default-pattern classification.
type ClassifyFunc func(*pmodel.PipelineDocument) classifier.Result

// Mapper translates pipeline documents into workflow action trees. A Mapper
// is stateless across calls and safe for concurrent use; each MapToWorkflow
// invocation owns its own sequence cursor and output tree.
type Mapper struct {
	registry  *registry.Registry
	classify  ClassifyFunc
	logger    *slog.Logger
	collector report.Collector
}

// Option configures a Mapper.
type Option func(*Mapper)

// WithLogger sets the mapper's logger. Nil selects slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(m *Mapper) {
		if logger != nil {
			m.logger = logger
		}
	}
}

// WithClassifier replaces the default pattern classifier.
func WithClassifier(classify ClassifyFunc) Option {
	return func(m *Mapper) {
		if classify != nil {
			m.classify = classify
		}
	}
}

// WithCollector attaches a report collector that receives mapping events.
func WithCollector(collector report.Collector) Option {
	return func(m *Mapper) {
		m.collector = collector
	}
}

// New creates a Mapper backed by the given component registry.
func New(reg *registry.Registry, opts ...Option) *Mapper {
	m := &Mapper{
		registry: reg,
		classify: classifier.Classify,
		logger:   slog.Default(),
	}

	for _, opt := range opts {
		opt(m)
	}

	return m
}

// MapToWorkflow translates a pipeline document into a workflow. The workflow
// name is explicitName when non-blank, else the document's friendly name,
// else "Pipeline", sanitized in every case. A nil document is the only error
// condition.
func (m *Mapper) MapToWorkflow(doc *pmodel.PipelineDocument, explicitName string) (*wmodel.Workflow, error) {
	if doc == nil {
		return nil, ErrNilDocument
	}

	wf := &wmodel.Workflow{
		Name: SanitizeName(workflowName(doc, explicitName)),
	}

	seq := &sequencer{}
	wf.Triggers = append(wf.Triggers, wmodel.Trigger{
		Name:      triggerName(doc.Direction),
		Kind:      wmodel.TriggerKindRequest,
		Transport: wmodel.TriggerTransportHTTP,
		Sequence:  seq.Next(),
	})

	result := m.classify(doc)
	m.record(func(c report.Collector) {
		c.RecordWorkflow(wf.Name, string(result.Classification))
	})

	// Pass-through pipelines perform no message processing, so the produced
	// workflow documents that fact instead of synthesizing empty stages.
	if result.Classification.IsPassThrough() {
		info := m.passThroughAction(doc, result, seq)
		wf.Actions = append(wf.Actions, info)

		m.logger.Debug("pass-through pipeline, skipping stage traversal",
			"pipeline", doc.FriendlyName, "classification", string(result.Classification))

		return wf, nil
	}

	for _, stageName := range stageOrder(doc.Direction) {
		stage := findStage(doc, stageName)
		if stage == nil || len(stage.Components) == 0 {
			continue
		}

		scope := m.mapStage(stage, seq)
		wf.Actions = append(wf.Actions, scope)

		m.logger.Debug("mapped stage",
			"stage", stage.DisplayName(), "components", len(stage.Components))
	}

	return wf, nil
}

func workflowName(doc *pmodel.PipelineDocument, explicitName string) string {
	if strings.TrimSpace(explicitName) != "" {
		return explicitName
	}

	if doc.FriendlyName != "" {
		return doc.FriendlyName
	}

	return "Pipeline"
}

func triggerName(direction pmodel.Direction) string {
	if direction == pmodel.DirectionSend {
		return "pipeline_send"
	}

	return "pipeline_receive"
}

func stageOrder(direction pmodel.Direction) []string {
	if direction == pmodel.DirectionSend {
		return sendStageOrder
	}

	return receiveStageOrder
}

// findStage returns the first stage whose display name matches
// case-insensitively. Later stages sharing the same name are ignored.
func findStage(doc *pmodel.PipelineDocument, name string) *pmodel.Stage {
	for _, stage := range doc.Stages {
		if stage != nil && strings.EqualFold(stage.DisplayName(), name) {
			return stage
		}
	}

	return nil
}

// mapStage wraps a stage's component actions in a Scope action.
func (m *Mapper) mapStage(stage *pmodel.Stage, seq *sequencer) *wmodel.Action {
	details := fmt.Sprintf("Stage %s (execution mode: %s)", stage.DisplayName(), stage.ExecutionMode)
	if stage.Description != "" {
		details += "\n" + stage.Description
	}

	scope := &wmodel.Action{
		Name:     SanitizeName(stage.DisplayName()),
		Type:     wmodel.ActionTypeScope,
		Details:  details,
		Sequence: seq.Next(),
	}
	m.record(func(c report.Collector) { c.RecordAction(scope.Type) })

	for _, component := range stage.Components {
		action := m.mapComponent(component, stage, seq)
		if action == nil {
			continue
		}
		scope.AddChild(action)
	}

	return scope
}

func (m *Mapper) passThroughAction(doc *pmodel.PipelineDocument, result classifier.Result, seq *sequencer) *wmodel.Action {
	name := doc.FriendlyName
	if name == "" {
		name = "Pipeline"
	}

	action := &wmodel.Action{
		Name: passThroughActionName,
		Type: wmodel.ActionTypeCompose,
		Details: strings.Join([]string{
			fmt.Sprintf("Original pipeline %q performs no message processing.", name),
			result.Description,
			"No processing actions were generated for this pass-through pipeline.",
		}, "\n"),
		Sequence: seq.Next(),
	}
	m.record(func(c report.Collector) { c.RecordAction(action.Type) })

	return action
}

func (m *Mapper) record(fn func(report.Collector)) {
	if m.collector != nil {
		fn(m.collector)
	}
}
