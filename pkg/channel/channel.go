package channel

import "fmt"

// Channel identifies one list on one node. List numbers start at 1.
type Channel struct {
	Node string `json:"Node"`
	List int    `json:"List"`
}

func New(node string, list int) Channel {
	return Channel{
		Node: node,
		List: list,
	}
}

func (c Channel) String() string {
	return fmt.Sprintf("%s/%d", c.Node, c.List)
}
