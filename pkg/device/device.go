// Package device describes the device server layer consumed by the coordinator.
// Physical protocol handling lives behind these interfaces.
package device

//go:generate mockgen -destination=../../internal/mocks/mock_device.go -package=mocks github.com/sarpt/list-coordinator/pkg/device Pool,Node,List

import (
	"errors"

	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/timecode"
)

// ListCommand is a control command applied to a whole list.
type ListCommand string

const (
	ThreadList   ListCommand = "thread"
	PlayList     ListCommand = "play"
	HoldList     ListCommand = "hold"
	FreezeList   ListCommand = "freeze"
	UnfreezeList ListCommand = "unfreeze"
	SkipList     ListCommand = "skip"
	RecueList    ListCommand = "recue"
)

// EventCommand is a control command applied to a single event.
type EventCommand string

const (
	SkipEvent      EventCommand = "skip"
	RecueEvent     EventCommand = "recue"
	ProtectEvent   EventCommand = "protect"
	UnprotectEvent EventCommand = "unprotect"
	ThreadEvent    EventCommand = "thread"
	UnthreadEvent  EventCommand = "unthread"
)

var (
	// ErrNotConnected informs that node is not connected and cannot serve requests.
	ErrNotConnected = errors.New("device node is not connected")

	// ErrNoSuchList informs that the list number is not provisioned on the node.
	ErrNoSuchList = errors.New("list does not exist on device node")

	// ErrNoSuchEvent informs that an event with provided id is not present on the list.
	ErrNoSuchEvent = errors.New("event does not exist on device list")

	// ErrUnknownCommand informs that the device does not support provided command.
	ErrUnknownCommand = errors.New("unknown device command")
)

// ConnectionObserver receives node connection state changes.
// Implementations must not block.
type ConnectionObserver interface {
	OnServerConnected(name string)
	OnServerDisconnected(name string)
}

// Pool is a set of configured device nodes.
type Pool interface {
	Configured() []string
	Node(name string) (Node, bool)
	Observe(observer ConnectionObserver)
}

// Node is a single device server hosting multiple lists.
type Node interface {
	Name() string
	Connected() bool
	ListCount() (int, error)
	ListNames() ([]string, error)
	List(number int) (List, error)
	CurrentTime() (timecode.TimeCode, error)
	Gang(mask uint32, cmd ListCommand) error
}

// List is a device side ordered event list.
type List interface {
	Refresh() error
	Events() ([]event.Event, error)
	Insert(index int, events []event.Event) error
	Modify(events []event.Event) error
	Move(from, count, to int) error
	Delete(ids []string) error
	DeleteAll() error
	Lookahead() (int, error)
	SetLookahead(count int) error
	Perform(cmd ListCommand) error
	PerformEvent(id string, cmd EventCommand) error
}

// GangMask returns bitmask addressing provided list numbers. List 1 is the least significant bit.
func GangMask(lists ...int) uint32 {
	var mask uint32
	for _, list := range lists {
		if list < 1 || list > 32 {
			continue
		}

		mask |= 1 << (list - 1)
	}

	return mask
}

// GangLists returns list numbers addressed by mask in ascending order.
func GangLists(mask uint32) []int {
	lists := []int{}
	for bit := 0; bit < 32; bit++ {
		if mask&(1<<bit) != 0 {
			lists = append(lists, bit+1)
		}
	}

	return lists
}
