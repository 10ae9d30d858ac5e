package scenario

import (
	"context"
	"errors"
	"testing"

	"lz/calculator"
)

const year = calculator.SecondsPerYear

func TestConfig_Parameters(t *testing.T) {
	p := Aggressive.Parameters(2 * year)
	if len(p.Wellbore.Laterals) != 5 || p.Wellbore.Depth != 3000 {
		t.Fatalf("wellbore = %+v", p.Wellbore)
	}
	if p.Wellbore.Laterals[0].Length != 700 || p.Wellbore.Laterals[0].End.X != 700 {
		t.Fatalf("lateral = %+v", p.Wellbore.Laterals[0])
	}
	if p.HeatExtractionRate != 100000 || p.SimulationTime != 2*year {
		t.Fatalf("params = %+v", p)
	}
	if p.Rock.ThermalConductivity != 2.5 || p.Rock.InitialTemperature != 80 {
		t.Fatalf("rock = %+v", p.Rock)
	}
}

func TestStore(t *testing.T) {
	s := NewStore()
	if got := s.List(); len(got) != 2 || got[0].ID != "default-1" || got[1].ID != "default-2" {
		t.Fatalf("List() = %+v", got)
	}

	saved := s.Save(Config{Name: "deep", WellboreDepth: 4000, LateralCount: 4, LateralLength: 600, ThermalConductivity: 3, HeatExtractionRate: 80000})
	if saved.ID == "" {
		t.Fatal("Save did not assign an id")
	}
	got, err := s.Get(saved.ID)
	if err != nil || got.Name != "deep" {
		t.Fatalf("Get = %+v, %v", got, err)
	}

	saved.Name = "deeper"
	s.Save(saved)
	if list := s.List(); len(list) != 3 || list[2].Name != "deeper" {
		t.Fatalf("upsert failed: %+v", list)
	}

	if err := s.Delete("default-1"); err != nil {
		t.Fatal(err)
	}
	if _, err := s.Get("default-1"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Get after delete = %v", err)
	}
	if err := s.Delete("nope"); !errors.Is(err, ErrNotFound) {
		t.Fatalf("Delete(nope) = %v", err)
	}
}

func TestCompare(t *testing.T) {
	sampler := calculator.NewSampler(2, nil)
	cmp, err := Compare(context.Background(), sampler, Conservative, Aggressive, 10*year, 6)
	if err != nil {
		t.Fatal(err)
	}
	if cmp.A.Scenario.ID != "default-1" || cmp.B.Scenario.ID != "default-2" {
		t.Fatalf("scenarios = %s, %s", cmp.A.Scenario.ID, cmp.B.Scenario.ID)
	}
	if cmp.A.AverageDrawdown <= 0 || cmp.B.AverageDrawdown <= 0 {
		t.Fatalf("drawdowns = %v, %v", cmp.A.AverageDrawdown, cmp.B.AverageDrawdown)
	}
	if cmp.A.Field == nil || len(cmp.A.Field.Values) != 216 {
		t.Fatal("missing field for scenario A")
	}
	if cmp.A.MaxTemperature > 80 || cmp.A.MinTemperature > cmp.A.MaxTemperature {
		t.Fatalf("range = [%v, %v]", cmp.A.MinTemperature, cmp.A.MaxTemperature)
	}

	direct, err := Evaluate(sampler, Aggressive, 10*year, 0)
	if err != nil {
		t.Fatal(err)
	}
	if direct.AverageDrawdown != cmp.B.AverageDrawdown || direct.Field != nil {
		t.Fatalf("Evaluate = %+v", direct)
	}
}

func TestCompare_InvalidScenario(t *testing.T) {
	bad := Conservative
	bad.ThermalConductivity = -1
	_, err := Compare(context.Background(), calculator.NewSampler(1, nil), Conservative, bad, year, 0)
	if !errors.Is(err, calculator.ErrInvalidParameter) {
		t.Fatalf("err = %v", err)
	}
}

func TestCompare_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Compare(ctx, calculator.NewSampler(1, nil), Conservative, Aggressive, year, 0); !errors.Is(err, context.Canceled) {
		t.Fatalf("err = %v", err)
	}
}
