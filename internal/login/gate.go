package login

import "login-front/internal/session"

// Gate answers which optional actions the server allows.
type Gate struct {
	caps *session.Capabilities
}

// NewGate reads from caps. A nil snapshot disables every action.
func NewGate(caps *session.Capabilities) Gate {
	return Gate{caps: caps}
}

func (g Gate) CanRegister() bool {
	return g.caps != nil && g.caps.Registration
}

func (g Gate) CanResetPassword() bool {
	return g.caps != nil && g.caps.EmailEnabled
}

func (g Gate) AnnouncementText() (string, bool) {
	if g.caps == nil || g.caps.Announcement == "" {
		return "", false
	}
	return g.caps.Announcement, true
}
