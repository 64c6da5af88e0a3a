package formula

import (
	"errors"
	"testing"
)

func TestLatexPassthrough(t *testing.T) {
	conv, ok := Lookup("latex")
	if !ok {
		t.Fatal("latex converter not registered by default")
	}
	got, err := conv.Convert("\\frac{1}{2}")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if want := "\\frac{1}{2}"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegisterAndLookup(t *testing.T) {
	Register("test-notation", ConverterFunc(func(markup string) (string, error) {
		return "converted:" + markup, nil
	}))
	defer Register("test-notation", nil)

	conv, ok := Lookup("test-notation")
	if !ok {
		t.Fatal("registered converter not found")
	}
	got, err := conv.Convert("x")
	if err != nil {
		t.Fatalf("Convert: %v", err)
	}
	if want := "converted:x"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}

func TestRegisterNilRemoves(t *testing.T) {
	Register("ephemeral", ConverterFunc(func(string) (string, error) { return "", nil }))
	Register("ephemeral", nil)

	if _, ok := Lookup("ephemeral"); ok {
		t.Error("converter still registered after removal")
	}
}

func TestLookupUnknown(t *testing.T) {
	if _, ok := Lookup("no-such-notation"); ok {
		t.Error("unknown notation resolved")
	}
}

func TestConverterFuncError(t *testing.T) {
	wantErr := errors.New("bad markup")
	conv := ConverterFunc(func(string) (string, error) { return "", wantErr })

	if _, err := conv.Convert("x"); !errors.Is(err, wantErr) {
		t.Errorf("err = %v, want %v", err, wantErr)
	}
}

func TestNotationsSorted(t *testing.T) {
	Register("zzz", ConverterFunc(func(string) (string, error) { return "", nil }))
	Register("aaa", ConverterFunc(func(string) (string, error) { return "", nil }))
	defer Register("zzz", nil)
	defer Register("aaa", nil)

	names := Notations()
	for i := 1; i < len(names); i++ {
		if names[i-1] > names[i] {
			t.Fatalf("Notations() not sorted: %v", names)
		}
	}

	found := map[string]bool{}
	for _, n := range names {
		found[n] = true
	}
	for _, want := range []string{"aaa", "latex", "zzz"} {
		if !found[want] {
			t.Errorf("Notations() missing %q: %v", want, names)
		}
	}
}
