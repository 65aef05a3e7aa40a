package registry

import (
	"errors"
	"strings"
	"testing"

	"github.com/vovakirdan/twenty48/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string { return g.id }
func (g *stubGame) Title() string { return strings.ToUpper(g.id) }
func (g *stubGame) Reset(core.RuntimeConfig) {}
func (g *stubGame) Resize(int, int) {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen) {}
func (g *stubGame) State() core.GameState { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("test-stub", func() Game { return &stubGame{id: "test-stub"} })

	if !Exists("test-stub") {
		t.Fatal("Exists(test-stub) = false after Register")
	}

	g, err := Create("test-stub")
	if err != nil {
		t.Fatalf("Create error: %v", err)
	}
	if g.ID() != "test-stub" {
		t.Errorf("ID() = %q, want test-stub", g.ID())
	}

	found := false
	for _, info := range List() {
		if info.ID == "test-stub" {
			found = true
			if info.Title != "TEST-STUB" {
				t.Errorf("Title = %q, want TEST-STUB", info.Title)
			}
		}
	}
	if !found {
		t.Error("List() missing test-stub")
	}
}

func TestCreateUnknown(t *testing.T) {
	_, err := Create("no-such-game")
	if !errors.Is(err, ErrUnknownGame) {
		t.Errorf("Create(no-such-game) error = %v, want ErrUnknownGame", err)
	}
	if Exists("no-such-game") {
		t.Error("Exists(no-such-game) = true")
	}
}

func TestListSorted(t *testing.T) {
	Register("test-zz", func() Game { return &stubGame{id: "test-zz"} })
	Register("test-aa", func() Game { return &stubGame{id: "test-aa"} })

	games := List()
	for i := 1; i < len(games); i++ {
		if games[i-1].ID >= games[i].ID {
			t.Fatalf("List() not sorted: %q before %q", games[i-1].ID, games[i].ID)
		}
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("test-dup", func() Game { return &stubGame{id: "test-dup"} })
}
