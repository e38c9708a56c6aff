package store

import (
	"bytes"
	"testing"
)

func TestMemory_GetAbsentKey(t *testing.T) {
	m := NewMemory()
	if _, ok, err := m.Get("nope"); ok || err != nil {
		t.Fatalf("ok=%v err=%v, want absent", ok, err)
	}
}

func TestMemory_SetThenGet(t *testing.T) {
	m := NewMemory()
	if err := m.Set(KeyChannels, []byte("one")); err != nil {
		t.Fatal(err)
	}
	if err := m.Set(KeyChannels, []byte("two")); err != nil {
		t.Fatal(err)
	}
	got, ok, err := m.Get(KeyChannels)
	if err != nil || !ok {
		t.Fatalf("ok=%v err=%v", ok, err)
	}
	if string(got) != "two" {
		t.Errorf("value %q, want %q", got, "two")
	}
}

func TestMemory_CopiesOnBothSides(t *testing.T) {
	m := NewMemory()
	in := []byte("original")
	m.Set("k", in)
	in[0] = 'X'

	out, _, _ := m.Get("k")
	if !bytes.Equal(out, []byte("original")) {
		t.Fatalf("stored value aliases the caller's slice: %q", out)
	}
	out[0] = 'Y'
	again, _, _ := m.Get("k")
	if !bytes.Equal(again, []byte("original")) {
		t.Fatalf("returned value aliases the stored slice: %q", again)
	}
}
