package store

import (
	"path/filepath"
	"testing"
)

func TestSQLite_SetGetAcrossReopen(t *testing.T) {
	dsn := filepath.Join(t.TempDir(), "kv.db")

	s, err := OpenSQLite(dsn)
	if err != nil {
		t.Fatal(err)
	}
	if _, ok, err := s.Get(KeyVersion); ok || err != nil {
		t.Fatalf("fresh db: ok=%v err=%v", ok, err)
	}
	if err := s.Set(KeyVersion, []byte("3.0")); err != nil {
		t.Fatal(err)
	}
	if err := s.Set(KeyVersion, []byte("3.1")); err != nil {
		t.Fatal(err)
	}
	if err := s.Close(); err != nil {
		t.Fatal(err)
	}

	s, err = OpenSQLite(dsn)
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()
	got, ok, err := s.Get(KeyVersion)
	if err != nil || !ok {
		t.Fatalf("after reopen: ok=%v err=%v", ok, err)
	}
	if string(got) != "3.1" {
		t.Errorf("value %q, want last write", got)
	}
}

func TestSQLite_BinaryValuesSurvive(t *testing.T) {
	s, err := OpenSQLite(filepath.Join(t.TempDir(), "kv.db"))
	if err != nil {
		t.Fatal(err)
	}
	defer s.Close()

	value := []byte{0x00, 0xff, 0x10, 0x00, 'x'}
	if err := s.Set("blob", value); err != nil {
		t.Fatal(err)
	}
	got, ok, err := s.Get("blob")
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if len(got) != len(value) {
		t.Fatalf("value %v, want %v", got, value)
	}
	for i := range value {
		if got[i] != value[i] {
			t.Fatalf("value %v, want %v", got, value)
		}
	}
}
