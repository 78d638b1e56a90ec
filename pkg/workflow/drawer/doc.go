// Package drawer renders produced workflow action trees as Graphviz DOT
// documents, coloring each action by its type so scopes, iterations and
// function invocations stand out in the migration review.
package drawer
