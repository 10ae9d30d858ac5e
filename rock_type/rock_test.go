package rock_type

import (
	"math"
	"testing"
)

func TestDefault(t *testing.T) {
	r := Default()
	if r.ThermalConductivity != 2.5 || r.ThermalDiffusivity != 1e-6 || r.InitialTemperature != 80 {
		t.Fatalf("Default() = %+v", r)
	}
	if r.Density != 2500 || r.SpecificHeat != 800 {
		t.Fatalf("Default() = %+v", r)
	}
}

func TestWithConductivity(t *testing.T) {
	base := Default()
	r := WithConductivity(base, 3.1)
	if r.ThermalConductivity != 3.1 || r.ThermalDiffusivity != base.ThermalDiffusivity {
		t.Fatalf("WithConductivity = %+v", r)
	}
	if base.ThermalConductivity != 2.5 {
		t.Fatal("base was modified")
	}
}

func TestLookup(t *testing.T) {
	r, err := Lookup("Granite")
	if err != nil {
		t.Fatal(err)
	}
	want := 3.0 / (2650 * 790)
	if math.Abs(r.ThermalDiffusivity-want) > 1e-18 {
		t.Fatalf("granite diffusivity = %v, want %v", r.ThermalDiffusivity, want)
	}
	if _, err := Lookup("basalt"); err == nil {
		t.Fatal("expected error for unknown rock")
	}
	if len(Names()) != 4 || Names()[0] != "granite" {
		t.Fatalf("Names() = %v", Names())
	}
}

func TestDiffusivity_Unset(t *testing.T) {
	r := Default()
	r.Density = 0
	if Diffusivity(r) != 0 {
		t.Fatal("expected 0 with unset density")
	}
}
