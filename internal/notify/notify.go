// Package notify shows desktop notifications after the PATH is switched.
package notify

import (
	"fmt"

	"github.com/gen2brain/beeep"
)

// Notifier shows a title/body message to the user.
type Notifier interface {
	Notify(title, body string) error
}

const activatedTitle = "Environment Switched"

// Activated returns the title and body shown after alias was activated.
func Activated(alias string) (string, string) {
	return activatedTitle, fmt.Sprintf("%s is now active.", alias)
}

// Desktop uses the platform notification service.
type Desktop struct{}

func (Desktop) Notify(title, body string) error {
	return beeep.Notify(title, body, "")
}

// Nop discards notifications.
type Nop struct{}

func (Nop) Notify(string, string) error { return nil }

// Recorder keeps every notification it is given.
type Recorder struct {
	Sent []Message
}

// Message is one recorded notification.
type Message struct {
	Title string
	Body  string
}

func (r *Recorder) Notify(title, body string) error {
	r.Sent = append(r.Sent, Message{Title: title, Body: body})
	return nil
}
