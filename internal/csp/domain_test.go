package csp

import "testing"

func TestFullDomain(t *testing.T) {
	d := FullDomain(9)
	if d.Count() != 9 {
		t.Fatalf("Count = %d, want 9", d.Count())
	}
	for v := 1; v <= 9; v++ {
		if !d.Has(v) {
			t.Errorf("full domain missing %d", v)
		}
	}
	if d.Has(10) || d.Has(0) || d.Has(-3) {
		t.Error("Has accepted out-of-range value")
	}

	if FullDomain(64).Count() != 64 {
		t.Errorf("FullDomain(64).Count = %d, want 64", FullDomain(64).Count())
	}
}

func TestSingletonDomain(t *testing.T) {
	d := SingletonDomain(7)
	if d.Count() != 1 || !d.Has(7) {
		t.Fatalf("SingletonDomain(7) = %v", d.Values())
	}
	v, ok := d.Single()
	if !ok || v != 7 {
		t.Errorf("Single = (%d, %t), want (7, true)", v, ok)
	}
}

func TestRemove(t *testing.T) {
	d := FullDomain(4)
	d = d.Remove(2)
	if d.Has(2) || d.Count() != 3 {
		t.Fatalf("after Remove(2): %v", d.Values())
	}
	// Removing an absent value changes nothing.
	if d.Remove(2) != d {
		t.Error("Remove of absent value altered the domain")
	}

	d = d.Remove(1).Remove(3).Remove(4)
	if d.Count() != 0 {
		t.Fatalf("domain should be empty, got %v", d.Values())
	}
	if _, ok := d.Single(); ok {
		t.Error("empty domain reported a single value")
	}
}

func TestSingleNeedsExactlyOne(t *testing.T) {
	d := SingletonDomain(3) | SingletonDomain(5)
	if _, ok := d.Single(); ok {
		t.Error("two-value domain reported a single value")
	}
}

func TestValuesAscending(t *testing.T) {
	d := SingletonDomain(9) | SingletonDomain(1) | SingletonDomain(4)
	got := d.Values()
	want := []int{1, 4, 9}
	if len(got) != len(want) {
		t.Fatalf("Values = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("Values = %v, want %v", got, want)
		}
	}
}
