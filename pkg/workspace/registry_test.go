package workspace

import (
	"sync"
	"testing"

	"github.com/scrawl/scrawl-cli/pkg/models"
)

func TestRegistryRegisterAndLookup(t *testing.T) {
	reg := NewRegistry()
	guard := NewCloseGuard(models.NewDocument(), (&saveRecorder{}).save)

	reg.Register(1, guard)

	got, ok := reg.Lookup(1)
	if !ok {
		t.Fatal("expected guard for window 1")
	}
	if got != guard {
		t.Error("Lookup returned a different guard")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistryDuplicateRegisterKeepsFirst(t *testing.T) {
	reg := NewRegistry()
	first := NewCloseGuard(models.NewDocument(), (&saveRecorder{}).save)
	second := NewCloseGuard(models.NewDocument(), (&saveRecorder{}).save)

	reg.Register(7, first)
	reg.Register(7, second)

	got, _ := reg.Lookup(7)
	if got != first {
		t.Error("duplicate register should keep the original guard")
	}
	if reg.Len() != 1 {
		t.Errorf("Len = %d, want 1", reg.Len())
	}
}

func TestRegistryRelease(t *testing.T) {
	reg := NewRegistry()
	reg.Register(1, NewCloseGuard(models.NewDocument(), (&saveRecorder{}).save))

	reg.Release(1)
	if _, ok := reg.Lookup(1); ok {
		t.Error("guard should be gone after Release")
	}
	if reg.Len() != 0 {
		t.Errorf("Len = %d, want 0", reg.Len())
	}

	// Releasing an id that is not registered is a logged no-op.
	reg.Release(99)
	if reg.Len() != 0 {
		t.Errorf("Len after bogus release = %d, want 0", reg.Len())
	}
}

func TestRegistryConcurrentAccess(t *testing.T) {
	reg := NewRegistry()

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			reg.Register(id, NewCloseGuard(models.NewDocument(), (&saveRecorder{}).save))
			reg.Lookup(id)
			if id%2 == 0 {
				reg.Release(id)
			}
		}(i)
	}
	wg.Wait()

	if reg.Len() != 25 {
		t.Errorf("Len = %d, want 25", reg.Len())
	}
}
