package system

import (
	"strings"
	"testing"

	"github.com/julianstephens/ibadah/internal/cli/clitest"
	"github.com/julianstephens/ibadah/internal/models"
)

func addReflection(t *testing.T, env *clitest.Env) {
	t.Helper()
	if _, err := env.Ctx.App.Reflections.Create(models.ReflectionInput{Title: "Tawakkul", Content: "Trust"}); err != nil {
		t.Fatal(err)
	}
}

func TestClearCmd(t *testing.T) {
	tests := []struct {
		name      string
		yes       bool
		answer    bool
		wantClear bool
	}{
		{name: "confirmed", answer: true, wantClear: true},
		{name: "declined", answer: false, wantClear: false},
		{name: "skip prompt", yes: true, wantClear: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			env, cleanup := clitest.New(t)
			defer cleanup()
			addReflection(t, env)
			env.Answer(tt.answer)

			if err := (&ClearCmd{Yes: tt.yes}).Run(env.Ctx); err != nil {
				t.Fatalf("clear failed: %v", err)
			}

			remaining := len(env.Ctx.App.Reflections.List())
			if tt.wantClear && remaining != 0 {
				t.Errorf("reflections = %d, want 0", remaining)
			}
			if !tt.wantClear {
				if remaining != 1 {
					t.Errorf("reflections = %d, want 1", remaining)
				}
				if !strings.Contains(env.Output(), "Cancelled.") {
					t.Errorf("unexpected output:\n%s", env.Output())
				}
			}
		})
	}
}
