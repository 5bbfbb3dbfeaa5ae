package login

// Announcement tracks whether the server banner was dismissed during this
// page view. It is never persisted, so the banner returns after a reload.
type Announcement struct {
	gate  Gate
	shown bool
}

func NewAnnouncement(gate Gate) *Announcement {
	return &Announcement{gate: gate}
}

func (a *Announcement) Text() string {
	text, _ := a.gate.AnnouncementText()
	return text
}

func (a *Announcement) IsVisible() bool {
	_, ok := a.gate.AnnouncementText()
	return ok && !a.shown
}

func (a *Announcement) Acknowledge() {
	a.shown = true
}
