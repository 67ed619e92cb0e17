// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package scene

import (
	"fmt"

	"cogentcore.org/core/math32"
	"cogentcore.org/core/tree"
)

// Node is an element of the scene graph.
type Node interface {
	tree.Node

	// AsNodeBase returns the common node data.
	AsNodeBase() *NodeBase
}

// NodeBase is the common data for all nodes. The tree links
// (name, parent and children) come from [tree.NodeBase].
type NodeBase struct {
	tree.NodeBase

	// Pose is the transform relative to the parent.
	Pose Pose
}

func (nb *NodeBase) AsNodeBase() *NodeBase {
	return nb
}

// initNode gives a newly made node its name and default pose.
func initNode(n Node, name string) {
	tree.InitNode(n)
	nb := n.AsNodeBase()
	nb.Name = name
	nb.Pose.Defaults()
}

// ParentNode returns the scene node this node belongs to, or nil.
func (nb *NodeBase) ParentNode() *NodeBase {
	if nb.Parent == nil {
		return nil
	}
	if pn, ok := nb.Parent.AsTree().This.(Node); ok {
		return pn.AsNodeBase()
	}
	return nil
}

// WorldPos returns the position of the node in scene coordinates.
func (nb *NodeBase) WorldPos() math32.Vector3 {
	return nb.ToWorld(math32.Vector3{})
}

// ToWorld transforms the given point from the node's local space
// into scene coordinates.
func (nb *NodeBase) ToWorld(pt math32.Vector3) math32.Vector3 {
	pt = nb.Pose.Apply(pt)
	for p := nb.ParentNode(); p != nil; p = p.ParentNode() {
		pt = p.Pose.Apply(pt)
	}
	return pt
}

// Group collects nodes under a shared transform. It has no shape of its own.
type Group struct {
	NodeBase
}

// NewGroup returns a new empty group with the given name.
func NewGroup(name string) *Group {
	gp := &Group{}
	initNode(gp, name)
	return gp
}

// Add appends the given node to the group's children. A node can only
// belong to one group; adding a node that already has a parent panics.
func (gp *Group) Add(n Node) {
	nb := n.AsNodeBase()
	if nb.Parent != nil {
		panic(fmt.Sprintf("scene: node %q already belongs to %q", nb.Name, nb.Parent.AsTree().Name))
	}
	gp.AddChild(n)
}

// Solid is a visible surface: a shape with a material.
type Solid struct {
	NodeBase

	// Shape is the geometry of the solid.
	Shape Shape

	// Material is the surface appearance.
	Material Material
}

// NewSolid returns a new solid with the given shape and a default material.
func NewSolid(name string, sh Shape) *Solid {
	sd := &Solid{Shape: sh}
	initNode(sd, name)
	sd.Material.Defaults()
	return sd
}

// Points is a cloud of point primitives sharing one color and size.
// Point positions are in the node's local space.
type Points struct {
	NodeBase

	// Points are the point positions.
	Points []math32.Vector3

	// Material gives the color and opacity of the points.
	Material Material

	// Size is the rendered point size.
	Size float32
}

// NewPoints returns a new point cloud with the given positions.
func NewPoints(name string, pts []math32.Vector3) *Points {
	ps := &Points{Points: pts, Size: 1}
	initNode(ps, name)
	ps.Material.Defaults()
	ps.Material.Unlit = true
	return ps
}
