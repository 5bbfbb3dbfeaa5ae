package login

// HostNotifier forwards events to a native shell embedding the page.
type HostNotifier interface {
	Notify(event string) error
	Bridged() bool
}

// NoHost is used when the page runs in a plain browser.
type NoHost struct{}

func (NoHost) Notify(string) error { return nil }
func (NoHost) Bridged() bool       { return false }

// BridgedHost posts events through the bridge found at startup. A nil Post
// drops events.
type BridgedHost struct {
	Post func(message string) error
}

func (h BridgedHost) Notify(event string) error {
	if h.Post == nil {
		return nil
	}
	return h.Post(event)
}

func (BridgedHost) Bridged() bool { return true }
