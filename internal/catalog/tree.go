package catalog

import "fmt"

// Node is an entry with its nested children. Subsections hang under the chapter sharing their path.
type Node struct {
	Entry

	Children        []*Node `json:"children,omitempty"`
	ChildCount      int     `json:"child_count"`
	HasChildren     bool    `json:"has_children"`
	HasMoreChildren bool    `json:"has_more_children,omitempty"`
}

// NodeDTO is a lean representation optimized for agent consumption.
type NodeDTO struct {
	ID          string     `json:"id"`
	Title       string     `json:"title"`
	Category    Category   `json:"category"`
	Description string     `json:"description,omitempty"`
	ChildCount  int        `json:"child_count"`
	HasMore     bool       `json:"has_more,omitempty"`
	Children    []*NodeDTO `json:"children,omitempty"`
}

// BuildTree organizes the catalog into a depth-limited tree.
// When rootID is empty the tree starts at chapters and principles.
// Depth counts how many levels (including the root) are returned.
func BuildTree(c *Catalog, rootID string, depth int) ([]*Node, error) {
	if depth < 1 {
		return nil, fmt.Errorf("depth must be at least 1")
	}

	childrenByPath := make(map[string][]Entry)
	var roots []Entry
	for _, entry := range c.entries {
		if entry.Category == CategorySubsection {
			childrenByPath[entry.Path] = append(childrenByPath[entry.Path], entry)
			continue
		}
		roots = append(roots, entry)
	}

	if rootID != "" {
		root, err := c.Get(rootID)
		if err != nil {
			return nil, fmt.Errorf("root not found: %w", err)
		}
		if root.Category != CategoryChapter {
			return nil, fmt.Errorf("root %s is a %s, not a chapter", rootID, root.Category)
		}
		roots = childrenByPath[root.Path]
	}

	nodes := make([]*Node, 0, len(roots))
	for _, entry := range roots {
		nodes = append(nodes, buildNode(entry, childrenByPath, depth, 1))
	}

	return nodes, nil
}

func buildNode(entry Entry, childrenByPath map[string][]Entry, maxDepth, currentDepth int) *Node {
	var children []Entry
	if entry.Category == CategoryChapter {
		children = childrenByPath[entry.Path]
	}

	node := &Node{
		Entry:       entry,
		ChildCount:  len(children),
		HasChildren: len(children) > 0,
	}

	if len(children) > 0 && currentDepth < maxDepth {
		node.Children = make([]*Node, 0, len(children))
		for _, child := range children {
			node.Children = append(node.Children, buildNode(child, childrenByPath, maxDepth, currentDepth+1))
		}
	}

	if len(children) > 0 && currentDepth >= maxDepth {
		node.HasMoreChildren = true
	}

	return node
}

// NodesToDTO converts nodes into lightweight DTOs.
func NodesToDTO(nodes []*Node) []*NodeDTO {
	if len(nodes) == 0 {
		return []*NodeDTO{}
	}

	dtos := make([]*NodeDTO, 0, len(nodes))
	for _, node := range nodes {
		if node == nil {
			continue
		}
		dtos = append(dtos, node.toDTO())
	}

	return dtos
}

func (n *Node) toDTO() *NodeDTO {
	dto := &NodeDTO{
		ID:          n.ID,
		Title:       n.Title,
		Category:    n.Category,
		Description: n.Description,
		ChildCount:  n.ChildCount,
		HasMore:     n.HasMoreChildren,
	}

	if len(n.Children) > 0 {
		dto.Children = make([]*NodeDTO, 0, len(n.Children))
		for _, child := range n.Children {
			dto.Children = append(dto.Children, child.toDTO())
		}
	}

	return dto
}
