package commander

// Subscribe registers a handler for the named event. Handlers for a same
// event are invoked in registration order. Binding handlers installed by
// Option subscribe to the event named after the option's canonical name,
// but callers may subscribe their own handlers as well.
func (c *Command) Subscribe(event string, handler Handler) {
	c.handlers[event] = append(c.handlers[event], handler)
}

// Publish synchronously invokes all handlers registered for the named
// event, in registration order. A nil value means "flag present, no
// explicit value"; otherwise the value is the raw string captured from
// the command line. There is no queuing or reentrancy protection: if the
// same event is published twice, the second firing simply runs after the
// first, and its writes win.
func (c *Command) Publish(event string, val *string) {
	for _, handler := range c.handlers[event] {
		handler(val)
	}
}
