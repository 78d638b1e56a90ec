package serializer

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/pkg/errors"

	wmodel "github.com/haroldcampos/biztalk-migrator/pkg/workflow/model"
)

const definitionSchema = "https://schema.management.azure.com/providers/Microsoft.Logic/schemas/2016-06-01/workflowdefinition.json#"

type document struct {
	Name       string     `json:"name"`
	Definition definition `json:"definition"`
}

type definition struct {
	Schema         string             `json:"$schema"`
	ContentVersion string             `json:"contentVersion"`
	Triggers       map[string]trigger `json:"triggers"`
	Actions        map[string]action  `json:"actions"`
}

type trigger struct {
	Type     string         `json:"type"`
	Kind     string         `json:"kind"`
	Metadata map[string]any `json:"metadata,omitempty"`
}

type action struct {
	Type        string              `json:"type"`
	Description string              `json:"description,omitempty"`
	Inputs      map[string]string   `json:"inputs,omitempty"`
	Actions     map[string]action   `json:"actions,omitempty"`
	RunAfter    map[string][]string `json:"runAfter"`
	Metadata    map[string]any      `json:"metadata,omitempty"`
}

// Write serializes a workflow as an indented JSON definition.
func Write(w io.Writer, wf *wmodel.Workflow) error {
	if wf == nil {
		return errors.New("workflow must be set")
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	if err := enc.Encode(build(wf)); err != nil {
		return errors.Wrap(err, "unable to encode workflow definition")
	}

	return nil
}

// WriteFile serializes a workflow definition to path.
func WriteFile(path string, wf *wmodel.Workflow) error {
	file, err := os.Create(path)
	if err != nil {
		return errors.Wrapf(err, "unable to create workflow file %s", path)
	}
	defer file.Close()

	if err := Write(file, wf); err != nil {
		return errors.Wrapf(err, "unable to write workflow file %s", path)
	}

	return file.Close()
}

func build(wf *wmodel.Workflow) document {
	doc := document{
		Name: wf.Name,
		Definition: definition{
			Schema:         definitionSchema,
			ContentVersion: "1.0.0.0",
			Triggers:       make(map[string]trigger, len(wf.Triggers)),
			Actions:        buildActions(wf.Actions),
		},
	}

	for _, t := range wf.Triggers {
		doc.Definition.Triggers[t.Name] = trigger{
			Type:     t.Kind,
			Kind:     t.Transport,
			Metadata: map[string]any{"sequence": t.Sequence},
		}
	}

	return doc
}

// buildActions converts a sibling list into the name-keyed map the target
// format uses. Siblings are chained with runAfter edges in sequence order;
// duplicate names are disambiguated with the sequence number.
func buildActions(actions []*wmodel.Action) map[string]action {
	ordered := make([]*wmodel.Action, len(actions))
	copy(ordered, actions)
	sort.SliceStable(ordered, func(i, j int) bool {
		return ordered[i].Sequence < ordered[j].Sequence
	})

	out := make(map[string]action, len(ordered))
	previous := ""

	for _, a := range ordered {
		name := a.Name
		if _, exists := out[name]; exists {
			name = fmt.Sprintf("%s_%d", name, a.Sequence)
		}

		runAfter := map[string][]string{}
		if previous != "" {
			runAfter[previous] = []string{"Succeeded"}
		}

		out[name] = action{
			Type:        a.Type,
			Description: a.Details,
			Inputs:      a.Configuration,
			Actions:     buildActions(a.Children),
			RunAfter:    runAfter,
			Metadata:    map[string]any{"sequence": a.Sequence},
		}

		previous = name
	}

	return out
}
