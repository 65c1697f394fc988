package scene

import "log"

// NodeBuilderOption is a functional option for configuring a Node.
type NodeBuilderOption func(n *node)

// WithPosition sets the initial local translation.
func WithPosition(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.position = [3]float32{x, y, z}
	}
}

// WithRotation sets the initial local Euler angles in radians.
func WithRotation(x, y, z float32) NodeBuilderOption {
	return func(n *node) {
		n.rotation = [3]float32{x, y, z}
	}
}

// WithScalar sets a uniform initial scale.
func WithScalar(s float32) NodeBuilderOption {
	return func(n *node) {
		n.scale = [3]float32{s, s, s}
	}
}

// WithChildren attaches children at construction. Invalid children are logged and skipped.
func WithChildren(children ...Node) NodeBuilderOption {
	return func(n *node) {
		for _, c := range children {
			if err := n.Add(c); err != nil {
				log.Printf("scene: %s: %v", n.name, err)
			}
		}
	}
}
