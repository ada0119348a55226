package registry

import (
	"testing"

	"github.com/vovakirdan/fruit-harvest/internal/core"
)

type stubGame struct{ id string }

func (g *stubGame) ID() string                           { return g.id }
func (g *stubGame) Title() string                        { return "Stub " + g.id }
func (g *stubGame) Description() string                  { return "a stub" }
func (g *stubGame) Reset(core.RuntimeConfig)             {}
func (g *stubGame) Step(core.InputFrame) core.StepResult { return core.StepResult{} }
func (g *stubGame) Render(*core.Screen)                  {}
func (g *stubGame) State() core.GameState                { return core.GameState{} }

func TestRegisterAndCreate(t *testing.T) {
	Register("stub", func() Game { return &stubGame{id: "stub"} })
	Register("stub_variant", func() Game { return &stubGame{id: "stub_variant"} })

	if !Exists("stub") {
		t.Fatal("Exists(stub) = false after Register")
	}

	g, err := Create("stub")
	if err != nil {
		t.Fatalf("Create(stub) failed: %v", err)
	}
	if g.ID() != "stub" {
		t.Errorf("Create(stub).ID() = %q", g.ID())
	}

	info, ok := Info("stub")
	if !ok || info.Title != "Stub stub" || info.Description != "a stub" {
		t.Errorf("Info(stub) = %+v, %v", info, ok)
	}
	if info.Variant() {
		t.Error("stub should not be a variant")
	}
	if v, _ := Info("stub_variant"); !v.Variant() {
		t.Error("stub_variant should be a variant")
	}

	list := List()
	for i := 1; i < len(list); i++ {
		if list[i-1].ID > list[i].ID {
			t.Errorf("List() not sorted: %q before %q", list[i-1].ID, list[i].ID)
		}
	}

	if _, err := Create("missing"); err == nil {
		t.Error("Create(missing) should fail")
	}
}

func TestRegisterDuplicatePanics(t *testing.T) {
	Register("dup", func() Game { return &stubGame{id: "dup"} })

	defer func() {
		if recover() == nil {
			t.Error("duplicate Register should panic")
		}
	}()
	Register("dup", func() Game { return &stubGame{id: "dup"} })
}
