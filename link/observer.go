package link

// Observer is notified when a tap lands on a link.
type Observer interface {
	LinkTapped(l *Label, tag string)
}

// The ObserverFunc type is an adapter to allow the use of ordinary
// functions as observers.
type ObserverFunc func(l *Label, tag string)

// LinkTapped calls f(l, tag).
func (f ObserverFunc) LinkTapped(l *Label, tag string) {
	f(l, tag)
}
