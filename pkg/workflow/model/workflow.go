package model

// Action type tags used by the mapping engine.
const (
	ActionTypeScope            = "Scope"
	ActionTypeCompose          = "Compose"
	ActionTypeForeach          = "Foreach"
	ActionTypeInvokeFunction   = "InvokeFunction"
	ActionTypeXslt             = "Xslt"
	ActionTypeXmlCompose       = "XmlCompose"
	ActionTypeFlatFileEncoding = "FlatFileEncoding"
)

// Trigger kinds and transports.
const (
	TriggerKindRequest   = "Request"
	TriggerTransportHTTP = "Http"
)

// Trigger starts a workflow run.
type Trigger struct {
	Name      string `json:"name"`
	Kind      string `json:"kind"`
	Transport string `json:"transport"`
	Sequence  int    `json:"sequence"`
}

// Action is one node in the produced workflow tree. Sequence numbers are
// strictly increasing and unique within one mapping run. Parent refers to the
// enclosing action by name; top-level actions have no parent.
type Action struct {
	Name          string            `json:"name"`
	Type          string            `json:"type"`
	Details       string            `json:"details,omitempty"`
	Sequence      int               `json:"sequence"`
	Parent        string            `json:"parent,omitempty"`
	Children      []*Action         `json:"children,omitempty"`
	Configuration map[string]string `json:"configuration,omitempty"`
}

// SetConfiguration stores a configuration key, overwriting any existing value.
func (a *Action) SetConfiguration(key, value string) {
	if a.Configuration == nil {
		a.Configuration = make(map[string]string)
	}
	a.Configuration[key] = value
}

// AddChild appends a child action and records the parent reference.
func (a *Action) AddChild(child *Action) {
	child.Parent = a.Name
	a.Children = append(a.Children, child)
}

// Workflow is the produced target-platform representation: one trigger list
// and a tree of actions.
type Workflow struct {
	Name     string    `json:"name"`
	Triggers []Trigger `json:"triggers"`
	Actions  []*Action `json:"actions"`
}

// ActionCount returns the total number of actions in the tree.
func (w *Workflow) ActionCount() int {
	count := 0
	var walk func(actions []*Action)
	walk = func(actions []*Action) {
		for _, a := range actions {
			count++
			walk(a.Children)
		}
	}
	walk(w.Actions)

	return count
}
