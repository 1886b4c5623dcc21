package event

import "errors"

// Owner is implemented by widgets that carry a dispatcher.
type Owner interface {
	EventDispatcher() *Dispatcher
}

// ChildProvider is implemented by widgets with children.
type ChildProvider interface {
	ChildOwners() []Owner
}

// ConnectTree connects the dispatchers of root and its descendants, parents
// before children so children are hit first. Owners without a dispatcher
// are skipped. All errors are joined; a failure on one node does not stop
// the walk.
func ConnectTree(m *Manager, root Owner) error {
	var errs []error
	walkTree(root, func(o Owner) {
		if d := o.EventDispatcher(); d != nil {
			if err := m.Connect(d); err != nil {
				errs = append(errs, err)
			}
		}
	}, nil)
	return errors.Join(errs...)
}

// DisconnectTree disconnects the dispatchers of root and its descendants,
// children before parents.
func DisconnectTree(m *Manager, root Owner) error {
	var errs []error
	walkTree(root, nil, func(o Owner) {
		if d := o.EventDispatcher(); d != nil {
			if err := m.Disconnect(d); err != nil {
				errs = append(errs, err)
			}
		}
	})
	return errors.Join(errs...)
}

func walkTree(o Owner, pre, post func(Owner)) {
	if o == nil {
		return
	}
	if pre != nil {
		pre(o)
	}
	if children, ok := o.(ChildProvider); ok {
		for _, child := range children.ChildOwners() {
			walkTree(child, pre, post)
		}
	}
	if post != nil {
		post(o)
	}
}
