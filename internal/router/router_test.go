package router

import (
	"testing"

	tea "charm.land/bubbletea/v2"
)

// stubScreen records lifecycle calls for assertions.
type stubScreen struct {
	name     string
	inited   bool
	lastMsg  tea.Msg
	viewText string
}

func (s *stubScreen) Init() tea.Cmd {
	s.inited = true
	return nil
}

func (s *stubScreen) Update(msg tea.Msg) (Screen, tea.Cmd) {
	s.lastMsg = msg
	return s, nil
}

func (s *stubScreen) View(width, height int) string { return s.viewText }
func (s *stubScreen) Title() string                 { return s.name }

func TestPushPop(t *testing.T) {
	home := &stubScreen{name: "home"}
	r := New(home)

	if r.Depth() != 1 {
		t.Fatalf("depth = %d, want 1", r.Depth())
	}
	if r.Active() != home {
		t.Fatal("active is not the initial screen")
	}

	board := &stubScreen{name: "board"}
	r.Update(PushScreenMsg{Screen: board})
	if r.Depth() != 2 || r.Active() != board {
		t.Fatalf("after push: depth=%d active=%v", r.Depth(), r.Active().Title())
	}
	if !board.inited {
		t.Error("pushed screen was not initialized")
	}

	r.Update(PopScreenMsg{})
	if r.Depth() != 1 || r.Active() != home {
		t.Fatalf("after pop: depth=%d active=%v", r.Depth(), r.Active().Title())
	}

	// The last screen never pops.
	r.Update(PopScreenMsg{})
	if r.Depth() != 1 {
		t.Fatalf("popped the root screen: depth=%d", r.Depth())
	}
}

func TestReplace(t *testing.T) {
	home := &stubScreen{name: "home"}
	test := &stubScreen{name: "test"}
	r := New(home)
	r.Update(PushScreenMsg{Screen: test})

	summary := &stubScreen{name: "summary"}
	r.Update(ReplaceScreenMsg{Screen: summary})

	if r.Depth() != 2 {
		t.Fatalf("depth = %d, want 2", r.Depth())
	}
	if r.Active() != summary {
		t.Fatalf("active = %q, want summary", r.Active().Title())
	}
	if !summary.inited {
		t.Error("replacement screen was not initialized")
	}

	// Popping the summary lands on home, not the replaced test screen.
	r.Update(PopScreenMsg{})
	if r.Active() != home {
		t.Fatalf("active = %q, want home", r.Active().Title())
	}
}

func TestUpdate_ForwardsToActive(t *testing.T) {
	home := &stubScreen{name: "home"}
	top := &stubScreen{name: "top"}
	r := New(home)
	r.Push(top)

	msg := tea.WindowSizeMsg{Width: 80, Height: 24}
	r.Update(msg)

	if top.lastMsg != tea.Msg(msg) {
		t.Error("message not forwarded to active screen")
	}
	if home.lastMsg != nil {
		t.Error("message leaked to inactive screen")
	}
}

func TestView_RendersActive(t *testing.T) {
	r := New(&stubScreen{name: "home", viewText: "home view"})
	if got := r.View(80, 24); got != "home view" {
		t.Errorf("View = %q", got)
	}
}
