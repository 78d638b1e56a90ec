package drawer

// Drawer is an interface that defines the methods for drawing a workflow.
type Drawer interface {
	// AddAction adds an action node to the workflow drawing.
	AddAction(name, actionType string) error
	// AddLink adds a link between a parent and a child action.
	AddLink(parentName, childName string) error
	// Draw creates a file with the workflow graph.
	Draw() error
}
