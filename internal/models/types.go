package models

import "strings"

type Conversation struct {
	ID           int    `yaml:"id"`
	DisplayName  string `yaml:"name"`
	Avatar       string `yaml:"avatar,omitempty"`
	LastMessage  string `yaml:"last_message"`
	LastActivity string `yaml:"time"`
	UnreadCount  int    `yaml:"unread"`
	Online       bool   `yaml:"online,omitempty"`
}

// Initials returns the avatar fallback: the first rune of every word in the name.
func (c Conversation) Initials() string {
	return Initials(c.DisplayName)
}

// Presence returns the status line shown under the conversation name.
func (c Conversation) Presence() string {
	if c.Online {
		return "online"
	}
	return "last seen recently"
}

type Message struct {
	ID       int    `yaml:"id"`
	Text     string `yaml:"text"`
	Time     string `yaml:"time"`
	Outgoing bool   `yaml:"mine"`
}

// Initials builds avatar initials from a display name.
func Initials(name string) string {
	var b strings.Builder
	for _, word := range strings.Split(name, " ") {
		for _, r := range word {
			b.WriteRune(r)
			break
		}
	}
	return b.String()
}

type Tab int

const (
	TabMessages Tab = iota
	TabCalls
	TabConferences
	TabSettings
	TabCount
)

func (t Tab) String() string {
	switch t {
	case TabMessages:
		return "messages"
	case TabCalls:
		return "calls"
	case TabConferences:
		return "conferences"
	case TabSettings:
		return "settings"
	default:
		return "unknown"
	}
}

type CallKind int

const (
	CallAudio CallKind = iota
	CallVideo
	CallConference
)

func (k CallKind) String() string {
	switch k {
	case CallAudio:
		return "audio"
	case CallVideo:
		return "video"
	case CallConference:
		return "conference"
	default:
		return "unknown"
	}
}

// CallState is the call overlay: closed, or open with a kind.
type CallState struct {
	Open bool
	Kind CallKind
}

func (s CallState) String() string {
	if !s.Open {
		return "closed"
	}
	return "open(" + s.Kind.String() + ")"
}

// Pane selects what a narrow layout shows.
type Pane int

const (
	PaneList Pane = iota
	PaneThread
)
