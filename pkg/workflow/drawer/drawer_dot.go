package drawer

import (
	"os"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	wmodel "github.com/haroldcampos/biztalk-migrator/pkg/workflow/model"
)

// DOTDrawer is a drawer that creates a Graphviz DOT file with the workflow
// graph. Render it to SVG with the dot tool.
type DOTDrawer struct {
	graph    graph.Graph[string, string]
	actions  map[string]struct{}
	fileName string
}

// NewDOTDrawer creates a new DOT drawer writing to fileName.
func NewDOTDrawer(fileName string) *DOTDrawer {
	return &DOTDrawer{
		fileName: fileName,
		graph:    graph.New(graph.StringHash, graph.Directed()),
		actions:  make(map[string]struct{}),
	}
}

// AddAction adds an action node to the workflow graph, filled with the color
// of its action type.
func (d *DOTDrawer) AddAction(name, actionType string) error {
	err := d.graph.AddVertex(name,
		graph.VertexAttribute("style", "filled"),
		graph.VertexAttribute("fillcolor", typeColor(actionType)),
		graph.VertexAttribute("xlabel", actionType),
	)
	if err != nil {
		return errors.Wrapf(err, "unable to add action %s", name)
	}

	d.actions[name] = struct{}{}

	return nil
}

// AddLink adds a link between parent and child actions.
func (d *DOTDrawer) AddLink(parentName, childName string) error {
	err := d.graph.AddEdge(parentName, childName)
	if err != nil {
		return errors.Wrapf(err, "unable to add edge from %s to %s", parentName, childName)
	}

	return nil
}

// Draw creates a DOT file with the workflow graph.
func (d *DOTDrawer) Draw() error {
	file, err := os.Create(d.fileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.fileName)
	}
	defer file.Close()

	err = dot(d.graph, file)
	if err != nil {
		return errors.Wrapf(err, "unable to render dot file %s", d.fileName)
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)

const fallbackColor = "#d3d3d3"

// typeColor maps an action type to a fill color.
func typeColor(actionType string) string {
	var r, g, b uint8

	switch actionType {
	case "Trigger":
		r, g, b = 255, 215, 0
	case wmodel.ActionTypeScope:
		r, g, b = 176, 196, 222
	case wmodel.ActionTypeForeach:
		r, g, b = 255, 165, 0
	case wmodel.ActionTypeInvokeFunction:
		r, g, b = 147, 112, 219
	case wmodel.ActionTypeXslt:
		r, g, b = 64, 160, 160
	case wmodel.ActionTypeXmlCompose, wmodel.ActionTypeFlatFileEncoding:
		r, g, b = 144, 238, 144
	default:
		r, g, b = 211, 211, 211
	}

	rgb, err := colors.RGB(r, g, b) //nolint
	if err != nil {
		return fallbackColor
	}

	return rgb.ToHEX().String()
}
