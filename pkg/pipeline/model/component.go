package model

import "strings"

// ComponentType is the declared classification of a pipeline component.
type ComponentType string

const (
	ComponentTypeGeneral       ComponentType = "General"
	ComponentTypeDisassembling ComponentType = "Disassembling"
	ComponentTypeAssembling    ComponentType = "Assembling"
	ComponentTypeValidating    ComponentType = "Validating"
	ComponentTypePartyResolver ComponentType = "PartyResolver"
)

var categoryComponentTypes = map[StageCategory]ComponentType{
	CategoryDisassemble:  ComponentTypeDisassembling,
	CategoryAssemble:     ComponentTypeAssembling,
	CategoryValidate:     ComponentTypeValidating,
	CategoryResolveParty: ComponentTypePartyResolver,
}

// ComponentTypeForCategory returns the component classification implied by the
// stage a component is declared in. Stages without a specific classification
// yield ComponentTypeGeneral.
func ComponentTypeForCategory(category StageCategory) ComponentType {
	if t, ok := categoryComponentTypes[category]; ok {
		return t
	}

	return ComponentTypeGeneral
}

// Property is a single typed configuration value declared on a component.
type Property struct {
	Name  string
	Value string
	Type  string
}

// Component is a configured processing unit within a stage.
type Component struct {
	// Name is the fully-qualified component identity, e.g.
	// "Microsoft.BizTalk.Component.XmlDasmComp".
	Name string
	// ComponentName is the short human-readable name, e.g. "XML disassembler".
	ComponentName string
	Type          ComponentType
	Version       string
	Description   string
	Properties    []Property
}

// DisplayName returns the short name when declared, otherwise the last
// dot-separated segment of the fully-qualified identity.
func (c *Component) DisplayName() string {
	if c.ComponentName != "" {
		return c.ComponentName
	}

	if idx := strings.LastIndex(c.Name, "."); idx >= 0 {
		return c.Name[idx+1:]
	}

	return c.Name
}

// Property returns the value of the named configuration property.
func (c *Component) Property(name string) (string, bool) {
	for _, p := range c.Properties {
		if strings.EqualFold(p.Name, name) {
			return p.Value, true
		}
	}

	return "", false
}
