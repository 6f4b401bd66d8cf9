package state

import (
	"github.com/sarpt/list-coordinator/internal/common"
	"github.com/sarpt/list-coordinator/pkg/channel"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/lists"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/locks"
	"github.com/sarpt/list-coordinator/pkg/state/pkg/subscribers"
)

type Repository interface {
	Lists() *lists.Storage
	Locks() *locks.Storage
	Subscribers() *subscribers.Storage
	Close()
}

// NodeResolver verifies that the node is known before its lists are looked up.
type NodeResolver = func(node string) error

type inMemoryRepository struct {
	lists            *lists.Storage
	listsBroadcaster *common.Broadcaster[lists.NodeChange]
	locks            *locks.Storage
	subscribers      *subscribers.Storage
}

func (r *inMemoryRepository) Lists() *lists.Storage {
	return r.lists
}

func (r *inMemoryRepository) Locks() *locks.Storage {
	return r.locks
}

func (r *inMemoryRepository) Subscribers() *subscribers.Storage {
	return r.subscribers
}

func (r *inMemoryRepository) Close() {
	r.listsBroadcaster.Close()
}

// NewRepository creates storages of coordination state. Channel locks are granted only for
// channels of known nodes which currently have a list behind them.
func NewRepository(resolveNode NodeResolver) Repository {
	listsBroadcaster := createAndInitBroadcaster[lists.NodeChange]()
	listsStorage := lists.NewStorage(listsBroadcaster)

	resolveChannel := func(ch channel.Channel) error {
		if resolveNode != nil {
			if err := resolveNode(ch.Node); err != nil {
				return err
			}
		}

		_, err := listsStorage.List(ch)
		return err
	}

	return &inMemoryRepository{
		lists:            listsStorage,
		listsBroadcaster: listsBroadcaster,
		locks:            locks.NewStorage(resolveChannel),
		subscribers:      subscribers.NewStorage(),
	}
}

func createAndInitBroadcaster[Change any]() *common.Broadcaster[Change] {
	broadcaster := common.NewBroadcaster[Change]()
	broadcaster.Broadcast()

	return broadcaster
}
