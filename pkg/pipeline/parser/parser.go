package parser

import (
	"bufio"
	"encoding/xml"
	"io"
	"os"
	"strings"

	"github.com/pkg/errors"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"

	"github.com/haroldcampos/biztalk-migrator/pkg/pipeline/model"
)

type xmlDocument struct {
	XMLName        xml.Name   `xml:"Document"`
	FriendlyName   string     `xml:"FriendlyName,attr"`
	Description    string     `xml:"Description,attr"`
	MajorVersion   string     `xml:"MajorVersion,attr"`
	MinorVersion   string     `xml:"MinorVersion,attr"`
	PolicyFilePath string     `xml:"PolicyFilePath,attr"`
	Stages         []xmlStage `xml:"Stages>Stage"`
}

type xmlStage struct {
	CategoryID    string         `xml:"CategoryId,attr"`
	Description   string         `xml:"Description,attr"`
	ExecutionMode string         `xml:"ExecutionMode,attr"`
	Components    []xmlComponent `xml:"Components>Component"`
}

type xmlComponent struct {
	Name          string        `xml:"Name,attr"`
	ComponentName string        `xml:"ComponentName,attr"`
	Version       string        `xml:"Version,attr"`
	Description   string        `xml:"Description,attr"`
	Properties    []xmlProperty `xml:"Properties>Property"`
}

type xmlProperty struct {
	Name  string   `xml:"Name,attr"`
	Value xmlValue `xml:"Value"`
}

type xmlValue struct {
	Type string `xml:"type,attr"`
	Text string `xml:",chardata"`
}

// ParseFile reads and parses a .btp pipeline document from disk.
func ParseFile(path string) (*model.PipelineDocument, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to open pipeline document %s", path)
	}
	defer file.Close()

	doc, err := Parse(file)
	if err != nil {
		return nil, errors.Wrapf(err, "unable to parse pipeline document %s", path)
	}

	return doc, nil
}

// Parse decodes a BizTalk pipeline document from r. Pipeline designers save
// .btp files as UTF-16 with a BOM; those are transcoded before decoding.
func Parse(r io.Reader) (*model.PipelineDocument, error) {
	decoder := xml.NewDecoder(transcode(r))
	// Content is UTF-8 by the time the decoder sees it; the declared
	// charset (commonly utf-16) only needs to be accepted.
	decoder.CharsetReader = func(charset string, input io.Reader) (io.Reader, error) {
		return input, nil
	}

	var raw xmlDocument
	if err := decoder.Decode(&raw); err != nil {
		return nil, errors.Wrap(err, "unable to decode pipeline XML")
	}

	if raw.XMLName.Local != "Document" {
		return nil, ErrNotAPipeline
	}

	if len(raw.Stages) == 0 {
		return nil, ErrEmptyDocument
	}

	doc := &model.PipelineDocument{
		FriendlyName: raw.FriendlyName,
		Description:  raw.Description,
		Version:      version(raw.MajorVersion, raw.MinorVersion),
		Stages:       make([]*model.Stage, 0, len(raw.Stages)),
	}

	for _, rawStage := range raw.Stages {
		doc.Stages = append(doc.Stages, buildStage(rawStage))
	}

	doc.Direction = direction(raw.PolicyFilePath, doc.Stages)

	return doc, nil
}

// transcode converts UTF-16 input (either byte order, detected by BOM) to
// UTF-8 and passes anything else through untouched.
func transcode(r io.Reader) io.Reader {
	br := bufio.NewReader(r)

	bom, err := br.Peek(2)
	if err != nil || len(bom) < 2 {
		return br
	}

	if (bom[0] == 0xFF && bom[1] == 0xFE) || (bom[0] == 0xFE && bom[1] == 0xFF) {
		enc := unicode.UTF16(unicode.LittleEndian, unicode.UseBOM)
		return transform.NewReader(br, enc.NewDecoder())
	}

	return br
}

func buildStage(raw xmlStage) *model.Stage {
	category := model.StageCategory(strings.ToLower(raw.CategoryID))

	mode := raw.ExecutionMode
	if mode == "" {
		mode = "All"
	}

	stage := &model.Stage{
		Category:      category,
		Description:   raw.Description,
		ExecutionMode: mode,
		Components:    make([]*model.Component, 0, len(raw.Components)),
	}

	for _, rawComp := range raw.Components {
		stage.Components = append(stage.Components, &model.Component{
			Name:          rawComp.Name,
			ComponentName: rawComp.ComponentName,
			Type:          model.ComponentTypeForCategory(category),
			Version:       rawComp.Version,
			Description:   rawComp.Description,
			Properties:    buildProperties(rawComp.Properties),
		})
	}

	return stage
}

func buildProperties(raw []xmlProperty) []model.Property {
	props := make([]model.Property, 0, len(raw))
	for _, p := range raw {
		props = append(props, model.Property{
			Name:  p.Name,
			Value: strings.TrimSpace(p.Value.Text),
			Type:  p.Value.Type,
		})
	}

	return props
}

// direction derives the pipeline direction from the policy file reference,
// falling back to the stage makeup when the reference is absent.
func direction(policyFilePath string, stages []*model.Stage) model.Direction {
	policy := strings.ToLower(policyFilePath)
	switch {
	case strings.Contains(policy, "receive"):
		return model.DirectionReceive
	case strings.Contains(policy, "transmit"), strings.Contains(policy, "send"):
		return model.DirectionSend
	}

	for _, stage := range stages {
		switch stage.Category {
		case model.CategoryAssemble, model.CategoryPreAssemble, model.CategoryEncode:
			return model.DirectionSend
		}
	}

	return model.DirectionReceive
}

func version(major, minor string) string {
	if major == "" {
		return ""
	}
	if minor == "" {
		minor = "0"
	}

	return major + "." + minor
}
