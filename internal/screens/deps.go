// Package screens holds the dependency container shared by every
// screen package. Screens receive a *Deps at construction and pass it
// along when they push the next screen.
package screens

import (
	"context"
	"time"

	"github.com/ssantos/wordkids/internal/activity"
	"github.com/ssantos/wordkids/internal/assets"
	"github.com/ssantos/wordkids/internal/auth"
	"github.com/ssantos/wordkids/internal/catalog"
	"github.com/ssantos/wordkids/internal/repo"
	"github.com/ssantos/wordkids/internal/session"
	"github.com/ssantos/wordkids/internal/speech"
)

// RefreshProfileMsg asks the root model to reload the signed-in user's
// profile so the header points keep up with what the games just logged.
type RefreshProfileMsg struct{}

// Deps bundles what screens need: storage, auth, the asset cache, the
// speech providers, the activity logger, and the shared session state.
type Deps struct {
	Items      repo.ItemRepository
	Users      repo.UserRepository
	Auth       *auth.Provider
	Cache      *assets.Cache
	Gate       *assets.Gate
	Speaker    speech.Speaker
	Recognizer speech.Recognizer

	// Logger is swapped in at sign-in; the zero logger is a no-op, so
	// screens log unconditionally.
	Logger *activity.Logger

	// Session is the one learning-session state shared across screens.
	Session *session.State
}

// Speak plays text in the background. Errors are dropped: audio is
// best-effort and never interrupts the session.
func (d *Deps) Speak(text string) {
	if d == nil || d.Speaker == nil || text == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		_ = d.Speaker.Speak(ctx, text)
	}()
}

// Log records an activity event, a no-op when nobody is signed in.
func (d *Deps) Log(activityType catalog.ActivityType, activityName string, points int, metadata map[string]string) {
	if d == nil {
		return
	}
	d.Logger.Log(activityType, activityName, points, metadata)
}
