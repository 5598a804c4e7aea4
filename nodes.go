package dockside

import (
	"context"
	"fmt"

	"github.com/docker/docker/api/types/swarm"
)

// NodeCollection manages the nodes of a swarm. The daemon must be a swarm
// manager.
type NodeCollection struct {
	client *Client
}

// Get returns the node identified by ID or hostname.
func (c *NodeCollection) Get(ctx context.Context, nodeID string) (*Node, error) {
	if nodeID == "" {
		return nil, ErrNullResource
	}

	resp, _, err := c.client.api.NodeInspectWithRaw(ctx, nodeID)
	if err != nil {
		return nil, fmt.Errorf("failed to inspect node %q: %w", nodeID, err)
	}

	return newNode(c.client, resp), nil
}

// List returns the swarm's nodes.
func (c *NodeCollection) List(ctx context.Context, options swarm.NodeListOptions) ([]*Node, error) {
	resp, err := c.client.api.NodeList(ctx, options)
	if err != nil {
		return nil, fmt.Errorf("failed to list nodes: %w", err)
	}

	nodes := make([]*Node, 0, len(resp))
	for _, node := range resp {
		nodes = append(nodes, newNode(c.client, node))
	}
	return nodes, nil
}

// Node is a local representation of a swarm node.
//
// The exported fields are a snapshot taken when the model was built; call
// Reload to refresh them.
type Node struct {
	ID       string
	Hostname string

	// Attrs is the raw daemon payload backing the fields above.
	Attrs swarm.Node

	client *Client
}

func newNode(client *Client, resp swarm.Node) *Node {
	return &Node{
		ID:       resp.ID,
		Hostname: resp.Description.Hostname,
		Attrs:    resp,
		client:   client,
	}
}

// ShortID returns the truncated form of the node's ID.
func (n *Node) ShortID() string {
	if len(n.ID) > shortIDLength {
		return n.ID[:shortIDLength]
	}
	return n.ID
}

// Update replaces the node's spec, changing its role, availability, or
// labels. The version in Attrs is sent with the update, so Reload first when
// the node may have changed since the model was built.
func (n *Node) Update(ctx context.Context, spec swarm.NodeSpec) error {
	err := n.client.api.NodeUpdate(ctx, n.ID, n.Attrs.Version, spec)
	if err != nil {
		return fmt.Errorf("failed to update node %q: %w\nReload the node and retry if its version is out of date", n.ID, err)
	}
	return nil
}

// Remove deletes the node from the swarm. Force removes it even when it is
// still active.
func (n *Node) Remove(ctx context.Context, force bool) error {
	err := n.client.api.NodeRemove(ctx, n.ID, swarm.NodeRemoveOptions{Force: force})
	if err != nil {
		return fmt.Errorf("failed to remove node %q: %w\nDrain the node or set force", n.ID, err)
	}
	return nil
}

// Reload fetches the node's current state from the swarm and updates the
// model in place.
func (n *Node) Reload(ctx context.Context) error {
	resp, _, err := n.client.api.NodeInspectWithRaw(ctx, n.ID)
	if err != nil {
		return fmt.Errorf("failed to inspect node %q: %w", n.ID, err)
	}

	*n = *newNode(n.client, resp)
	return nil
}
