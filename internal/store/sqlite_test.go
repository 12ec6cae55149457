package store

import (
	"context"
	"errors"
	"path/filepath"
	"testing"
)

func TestSQLiteStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	s, err := OpenSQLiteStore(ctx, filepath.Join(t.TempDir(), "sessions.db"))
	if err != nil {
		t.Fatalf("OpenSQLiteStore: %v", err)
	}
	defer s.Close()

	if _, err := s.Load(ctx, "alpha"); !errors.Is(err, ErrNoSession) {
		t.Fatalf("Load of unknown key = %v, want ErrNoSession", err)
	}

	if err := s.Save(ctx, "alpha", []byte("one")); err != nil {
		t.Fatalf("Save: %v", err)
	}
	if err := s.Save(ctx, "alpha", []byte("two")); err != nil {
		t.Fatalf("upsert Save: %v", err)
	}
	if err := s.Save(ctx, "beta", []byte("other")); err != nil {
		t.Fatalf("Save second key: %v", err)
	}

	data, err := s.Load(ctx, "alpha")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "two" {
		t.Fatalf(`Load("alpha") = %q, want %q`, data, "two")
	}

	data, err = s.Load(ctx, "beta")
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if string(data) != "other" {
		t.Fatalf(`Load("beta") = %q, want %q`, data, "other")
	}
}
