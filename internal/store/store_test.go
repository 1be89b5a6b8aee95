package store

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "prefs.bin")

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open missing file: %v", err)
	}
	if got := f.GetFloat("HighScore", 0); got != 0 {
		t.Fatalf("Expected default for empty store, got %v", got)
	}

	f.SetFloat("HighScore", 12.3)
	if err := f.Flush(); err != nil {
		t.Fatalf("Flush: %v", err)
	}

	g, err := Open(path)
	if err != nil {
		t.Fatalf("Reopen: %v", err)
	}
	if got := g.GetFloat("HighScore", 0); got != 12.3 {
		t.Errorf("Expected 12.3 after reopen, got %v", got)
	}
	if got := g.GetFloat("Other", -1); got != -1 {
		t.Errorf("Expected default for unknown key, got %v", got)
	}
}

func TestOpenCorruptFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.bin")
	if err := os.WriteFile(path, []byte{0xc1}, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Open(path); err == nil {
		t.Error("Expected an error for a corrupt file")
	}
}

func TestSetFloatIfGreater(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "prefs.bin"))
	if err != nil {
		t.Fatal(err)
	}

	steps := []struct {
		value      float64
		wantStored float64
		wantRaised bool
	}{
		{5, 5, true}, // missing key is always set
		{3, 5, false},
		{5, 5, false},
		{7.5, 7.5, true},
	}
	for _, st := range steps {
		got, raised := f.SetFloatIfGreater("HighScore", st.value)
		if got != st.wantStored || raised != st.wantRaised {
			t.Errorf("SetFloatIfGreater(%v) = (%v, %v), want (%v, %v)", st.value, got, raised, st.wantStored, st.wantRaised)
		}
	}
}

func TestSetFloatIfGreaterConcurrent(t *testing.T) {
	f, err := Open(filepath.Join(t.TempDir(), "prefs.bin"))
	if err != nil {
		t.Fatal(err)
	}

	var wg sync.WaitGroup
	for i := 1; i <= 100; i++ {
		wg.Add(1)
		go func(v float64) {
			defer wg.Done()
			f.SetFloatIfGreater("HighScore", v)
		}(float64(i))
	}
	wg.Wait()

	if got := f.GetFloat("HighScore", 0); got != 100 {
		t.Errorf("Expected the largest value to win, got %v", got)
	}
}
