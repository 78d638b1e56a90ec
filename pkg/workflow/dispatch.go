package workflow

import (
	"fmt"
	"strings"

	pmodel "github.com/haroldcampos/biztalk-migrator/pkg/pipeline/model"
	"github.com/haroldcampos/biztalk-migrator/pkg/registry"
	wmodel "github.com/haroldcampos/biztalk-migrator/pkg/workflow/model"
	"github.com/haroldcampos/biztalk-migrator/pkg/workflow/report"
)

// dispatchContext carries everything a rule builder needs for one component.
type dispatchContext struct {
	component *pmodel.Component
	stage     *pmodel.Stage
	mapping   registry.ComponentMapping
	seq       *sequencer
}

// dispatchRule pairs a predicate with an action builder. Rules are evaluated
// top to bottom; the first matching rule wins.
type dispatchRule struct {
	name    string
	matches func(c *pmodel.Component) bool
	build   func(ctx *dispatchContext) *wmodel.Action
}

var dispatchRules = []dispatchRule{
	{
		name:    "disassembler",
		matches: func(c *pmodel.Component) bool { return c.Type == pmodel.ComponentTypeDisassembling },
		build:   buildDisassembler,
	},
	{
		name: "xml assembler",
		matches: func(c *pmodel.Component) bool {
			return c.Type == pmodel.ComponentTypeAssembling && containsFold(c.DisplayName(), "XML")
		},
		build: buildXMLAssembler,
	},
	{
		name: "flat file assembler",
		matches: func(c *pmodel.Component) bool {
			return c.Type == pmodel.ComponentTypeAssembling && isFlatFile(c)
		},
		build: buildFlatFileAssembler,
	},
	{
		name:    "assembler",
		matches: func(c *pmodel.Component) bool { return c.Type == pmodel.ComponentTypeAssembling },
		build:   buildCompose,
	},
	{
		name:    "mime",
		matches: func(c *pmodel.Component) bool { return containsFold(c.DisplayName(), "MIME") },
		build:   buildMIME,
	},
	{
		name:    "party resolution",
		matches: func(c *pmodel.Component) bool { return containsFold(c.DisplayName(), "Party Resolution") },
		build:   buildPartyResolution,
	},
	{
		name: "xsl transform",
		matches: func(c *pmodel.Component) bool {
			return containsFold(c.DisplayName(), "XSL Transform") ||
				containsFold(c.DisplayName(), "XslTransform") ||
				containsFold(c.Name, "XslTransform")
		},
		build: buildXslt,
	},
	{
		name:    "compose",
		matches: func(c *pmodel.Component) bool { return true },
		build:   buildCompose,
	},
}

// MapComponent maps a single component to an action using a sequence cursor
// local to this call, starting at 1 as if the component directly followed the
// trigger. Within a full document mapping the shared run cursor is used
// instead. A nil component maps to nil.
func (m *Mapper) MapComponent(component *pmodel.Component, stage *pmodel.Stage) *wmodel.Action {
	return m.mapComponent(component, stage, &sequencer{next: 1})
}

func (m *Mapper) mapComponent(component *pmodel.Component, stage *pmodel.Stage, seq *sequencer) *wmodel.Action {
	if component == nil {
		return nil
	}

	mapping := m.registry.Resolve(component.Name)
	m.record(func(c report.Collector) { c.RecordComponent(mapping) })

	ctx := &dispatchContext{
		component: component,
		stage:     stage,
		mapping:   mapping,
		seq:       seq,
	}

	var action *wmodel.Action
	for _, rule := range dispatchRules {
		if rule.matches(component) {
			action = rule.build(ctx)
			break
		}
	}

	if stage != nil {
		action.Details = action.Details + "\n" + stageLine(stage)
	}

	// Component-declared configuration always wins over synthesized defaults.
	for _, p := range component.Properties {
		if p.Name == "" || p.Value == "" {
			continue
		}
		action.SetConfiguration(p.Name, p.Value)
	}

	m.record(func(c report.Collector) {
		c.RecordAction(action.Type)
		for _, child := range action.Children {
			c.RecordAction(child.Type)
		}
	})

	return action
}

func containsFold(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}

// isFlatFile matches flat file components by display name: "Flat File" in any
// case, or the literal FF abbreviation BizTalk uses (kept case-sensitive so
// words like "off" never match). Unnamed components fall back to the identity's
// last segment through DisplayName, which covers class names like FFDasmComp.
func isFlatFile(c *pmodel.Component) bool {
	display := c.DisplayName()

	return containsFold(display, "Flat File") || strings.Contains(display, "FF")
}

func stageLine(stage *pmodel.Stage) string {
	return fmt.Sprintf("Source stage: %s (execution mode: %s)", stage.DisplayName(), stage.ExecutionMode)
}

func newAction(ctx *dispatchContext, actionType string, details ...string) *wmodel.Action {
	return &wmodel.Action{
		Name:     SanitizeName(ctx.component.DisplayName()),
		Type:     actionType,
		Details:  strings.Join(details, "\n"),
		Sequence: ctx.seq.Next(),
	}
}

// buildDisassembler produces a Foreach action: disassembly yields zero or
// more output messages, each handled by one iteration. The synthesized child
// carries the format-specific decoding guidance.
func buildDisassembler(ctx *dispatchContext) *wmodel.Action {
	foreach := newAction(ctx, wmodel.ActionTypeForeach,
		ctx.mapping.Action.Description,
		"Each iteration handles one message produced by disassembly.",
	)

	var child *wmodel.Action
	switch {
	case containsFold(ctx.component.DisplayName(), "XML"):
		child = &wmodel.Action{
			Name: "Parse_XML_with_schema",
			Type: wmodel.ActionTypeCompose,
			Details: strings.Join([]string{
				"1. Upload the disassembler's XSD schemas to the Integration Account.",
				"2. Parse each split message against the uploaded schema.",
				"3. Re-create promoted properties with XPath expressions on the parsed content.",
			}, "\n"),
			Sequence: ctx.seq.Next(),
		}
	case isFlatFile(ctx.component):
		spec, ok := ctx.component.Property("DocumentSpecName")
		if !ok {
			spec = "<document specification not configured>"
		}
		child = &wmodel.Action{
			Name: "Decode_flat_file",
			Type: wmodel.ActionTypeCompose,
			Details: strings.Join([]string{
				"1. Convert the flat file schema and upload it to the Integration Account.",
				fmt.Sprintf("2. Decode the flat file content using schema %s.", spec),
				"3. Iterate over the decoded messages.",
			}, "\n"),
			Sequence: ctx.seq.Next(),
		}
		child.SetConfiguration("schemaName", spec)
	default:
		child = &wmodel.Action{
			Name:     "Disassemble_message",
			Type:     wmodel.ActionTypeCompose,
			Details:  fmt.Sprintf("Re-create the disassembly behaviour of %s for each output message.", ctx.component.DisplayName()),
			Sequence: ctx.seq.Next(),
		}
	}

	foreach.AddChild(child)

	return foreach
}

func buildXMLAssembler(ctx *dispatchContext) *wmodel.Action {
	return newAction(ctx, wmodel.ActionTypeXmlCompose,
		ctx.mapping.Action.Description,
		"1. Upload the assembler's XSD schemas to the Integration Account.",
		"2. Compose the outbound XML document from the workflow inputs.",
		"3. Apply the envelope wrapping declared on the assembler.",
		"4. Validate the composed document against the uploaded schema.",
	)
}

func buildFlatFileAssembler(ctx *dispatchContext) *wmodel.Action {
	return newAction(ctx, wmodel.ActionTypeFlatFileEncoding,
		ctx.mapping.Action.Description,
		"1. Convert the flat file schema and upload it to the Integration Account.",
		"2. Compose the outbound message from the workflow inputs.",
		"3. Encode the composed message with the Flat File Encoding action.",
		"4. Verify delimiters and positional fields against sample output.",
	)
}

func buildMIME(ctx *dispatchContext) *wmodel.Action {
	action := newAction(ctx, wmodel.ActionTypeInvokeFunction, ctx.mapping.Action.Description)

	action.SetConfiguration("content", "@triggerBody()")
	if containsFold(ctx.component.DisplayName(), "Decoder") {
		action.SetConfiguration("functionName", "MIMEDecode")
		action.SetConfiguration("validateSignature", "true")
		action.SetConfiguration("decryptMessage", "true")
	} else {
		action.SetConfiguration("functionName", "MIMEEncode")
		action.SetConfiguration("encryptMessage", "true")
		action.SetConfiguration("signMessage", "true")
	}

	return action
}

func buildPartyResolution(ctx *dispatchContext) *wmodel.Action {
	action := newAction(ctx, wmodel.ActionTypeInvokeFunction, ctx.mapping.Action.Description)

	action.SetConfiguration("functionName", "ResolveParty")
	action.SetConfiguration("senderCertificate", "@triggerOutputs()['headers']['X-Sender-Certificate']")
	action.SetConfiguration("senderSID", "@triggerOutputs()['headers']['X-Sender-SID']")
	action.SetConfiguration("resolveBySID", "true")

	return action
}

func buildXslt(ctx *dispatchContext) *wmodel.Action {
	return newAction(ctx, wmodel.ActionTypeXslt,
		ctx.mapping.Action.Description,
		"1. Export the XSLT from the original transform.",
		"2. Upload the exported map to the Integration Account.",
		"3. Test the transform output against representative messages.",
	)
}

func buildCompose(ctx *dispatchContext) *wmodel.Action {
	return newAction(ctx, wmodel.ActionTypeCompose, ctx.mapping.Action.Description)
}
