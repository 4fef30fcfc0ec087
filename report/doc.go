// Package report turns census and significance results into tables and
// chart-ready series.
//
// Rendering (bar charts, motif drawings) is left to the consumer; Class.EdgeList
// in package motif provides the topology of each slot for drawing.
package report
