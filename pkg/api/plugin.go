package api

import (
	"net/http"

	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/device"
	"github.com/sarpt/list-coordinator/pkg/event"
	"github.com/sarpt/list-coordinator/pkg/ripple"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

// PluginApi is the coordinator surface available to transports.
type PluginApi interface {
	GetEventsCount(ch channel.Channel) (int, error)
	GetList(ch channel.Channel) (ListSnapshot, error)
	GetListPartial(ch channel.Channel, start, count int) ([]event.Event, error)
	GetListPage(ch channel.Channel, page, size int) ([]event.Event, error)
	GetListFiltered(ch channel.Channel, filter event.Filter) ([]event.Event, error)
	GetListsByPeriod(ch channel.Channel, from, to string) ([]event.Event, error)
	GetListOfSecondaries(ch channel.Channel, primaryID string) ([]event.Event, error)
	ListRevision(ch channel.Channel) (uint64, error)

	InsertEvents(ch channel.Channel, client string, index int, events []event.Event) ([]event.Event, error)
	InsertEventsAfter(ch channel.Channel, client string, afterID string, events []event.Event) ([]event.Event, error)
	ModifyEvents(ch channel.Channel, client string, events []event.Event) error
	MoveEvents(ch channel.Channel, client string, from, count, to int) error
	DeleteEvents(ch channel.Channel, client string, ids []string) error
	DeleteAllEvents(ch channel.Channel, client string) error
	RippleTime(ch channel.Channel, client string, startID string) (ripple.Result, error)

	LockList(ch channel.Channel, client string) (bool, error)
	UnlockList(ch channel.Channel, client string) (bool, error)
	IsListAvailable(ch channel.Channel, client string) (bool, error)

	RegisterListListener(ch channel.Channel, client string) error
	UnregisterListListener(ch channel.Channel, client string) (bool, error)
	UnregisterListListenerAll(client string) (int, error)
	RegisterConnectionStateListener(node string, client string) error
	UnregisterConnectionStateListener(node string, client string) (bool, error)

	GangCommand(node string, client string, mask uint32, cmd device.ListCommand) error
	PerformListCommand(ch channel.Channel, client string, cmd device.ListCommand) error
	PerformEventCommand(ch channel.Channel, client string, id string, cmd device.EventCommand) error

	GetLookahead(ch channel.Channel) (int, error)
	SetLookahead(ch channel.Channel, client string, count int) error
	ToggleLookahead(ch channel.Channel, client string) (int, error)

	GetAvailableDeviceServers() []string
	GetAllConfiguredServers() []string
	GetListCount(node string) (int, error)
	Status() Status

	ConnectClient(cb subscribers.Callback)
	DisconnectClient(id string)
	Client(id string) (subscribers.Callback, bool)
}

// Plugin is a transport mounted by the Server under its PathBase.
type Plugin interface {
	Init(apiServer PluginApi) error
	Handler() http.Handler
	Name() string
	PathBase() string
	Shutdown()
}
