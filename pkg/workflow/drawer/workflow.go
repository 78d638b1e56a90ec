package drawer

import (
	"fmt"

	"github.com/pkg/errors"

	wmodel "github.com/haroldcampos/biztalk-migrator/pkg/workflow/model"
)

// DrawWorkflow feeds a produced workflow into a drawer and renders it.
// Triggers and top-level actions are chained in run order; scope and
// iteration children hang off their parent. Duplicate action names are
// disambiguated with the sequence number, matching the serializer, so every
// action keeps its own vertex.
func DrawWorkflow(d Drawer, wf *wmodel.Workflow) error {
	if wf == nil {
		return errors.New("workflow must be set")
	}

	seen := make(map[string]struct{})

	previous := ""
	for _, t := range wf.Triggers {
		name := uniqueName(seen, t.Name, t.Sequence)
		if err := d.AddAction(name, "Trigger"); err != nil {
			return errors.Wrap(err, "unable to add trigger")
		}
		previous = name
	}

	if err := addActions(d, seen, wf.Actions, previous, true); err != nil {
		return err
	}

	if err := d.Draw(); err != nil {
		return errors.Wrap(err, "unable to draw workflow")
	}

	return nil
}

// addActions adds a sibling list. When chained, each sibling links from the
// previous one (run order); otherwise every sibling links from the parent.
func addActions(d Drawer, seen map[string]struct{}, actions []*wmodel.Action, parent string, chained bool) error {
	previous := parent

	for _, a := range actions {
		name := uniqueName(seen, a.Name, a.Sequence)
		if err := d.AddAction(name, a.Type); err != nil {
			return errors.Wrapf(err, "unable to add action %s", name)
		}

		source := parent
		if chained {
			source = previous
		}
		if source != "" {
			if err := d.AddLink(source, name); err != nil {
				return errors.Wrapf(err, "unable to link action %s", name)
			}
		}

		if err := addActions(d, seen, a.Children, name, false); err != nil {
			return err
		}

		previous = name
	}

	return nil
}

// uniqueName returns name, suffixed with the sequence number when the name is
// already taken, and marks the result as taken.
func uniqueName(seen map[string]struct{}, name string, sequence int) string {
	if _, exists := seen[name]; exists {
		name = fmt.Sprintf("%s_%d", name, sequence)
	}
	seen[name] = struct{}{}

	return name
}
