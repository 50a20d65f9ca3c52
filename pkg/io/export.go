package io

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/bricklayer/pkg/plan"
	"github.com/matzehuels/bricklayer/pkg/support"
	"github.com/matzehuels/bricklayer/pkg/wall"
)

type graph struct {
	Nodes []node `json:"nodes"`
	Edges []edge `json:"edges"`
}

type node struct {
	ID     wall.BrickID `json:"id"`
	Course int          `json:"course"`
	Kind   wall.Kind    `json:"kind"`
}

type edge = support.Edge

// WriteLayout encodes l as indented JSON.
func WriteLayout(l wall.Layout, w io.Writer) error {
	return encode(l, w)
}

// ExportLayout writes l to a JSON file at path.
func ExportLayout(l wall.Layout, path string) error {
	return export(path, func(w io.Writer) error { return WriteLayout(l, w) })
}

// WritePlan encodes p as indented JSON.
func WritePlan(p plan.Plan, w io.Writer) error {
	return encode(p, w)
}

// ExportPlan writes p to a JSON file at path.
func ExportPlan(p plan.Plan, path string) error {
	return export(path, func(w io.Writer) error { return WritePlan(p, w) })
}

// WriteGraph encodes the support graph as nodes and edges.
func WriteGraph(g *support.Graph, w io.Writer) error {
	out := graph{
		Nodes: make([]node, 0, g.BrickCount()),
		Edges: append([]edge{}, g.Edges()...),
	}
	for _, b := range g.Bricks() {
		out.Nodes = append(out.Nodes, node{ID: b.ID, Course: b.Course, Kind: b.Kind()})
	}
	return encode(out, w)
}

func encode(v any, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(v); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

func export(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	if err := write(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
