package event

import "time"

// Delivery describes an event that reached at least one callback.
type Delivery struct {
	Kind     Kind
	Target   ID
	Name     string
	Point    Point
	Key      Key
	Captured bool
	Fired    int
	At       time.Time
}

// Observer receives deliveries for diagnostics.
type Observer interface {
	ObserveDelivery(Delivery)
}

// ObserverFunc adapts a function to Observer.
type ObserverFunc func(Delivery)

// ObserveDelivery calls f.
func (f ObserverFunc) ObserveDelivery(d Delivery) {
	if f != nil {
		f(d)
	}
}
