package services

import (
	"flight-price-service/internal/domain"
	"testing"
	"time"
)

func blockOnes(v domain.FeatureVector, from, to int) int {
	n := 0
	for i := from; i < to; i++ {
		if v[i] == 1 {
			n++
		} else if v[i] != 0 {
			return -1
		}
	}
	return n
}

func TestEncodeFeaturesScalars(t *testing.T) {
	tr := domain.TripRequest{
		Date:           time.Date(2019, 6, 9, 0, 0, 0, 0, time.UTC),
		Departure:      domain.ClockTime{Hour: 8, Minute: 5},
		Arrival:        domain.ClockTime{Hour: 11, Minute: 35},
		Source:         domain.SourceMumbai,
		Destination:    domain.DestinationKolkata,
		TotalStops:     2,
		Airline:        domain.JetAirways,
		AdditionalInfo: domain.NewInfoSet(domain.OneLongLayover),
	}

	v := EncodeFeatures(tr)

	want := []float64{2, 9, 6, 2019, 8, 5, 11, 35, 3.5, 0}
	for i, w := range want {
		if v[i] != w {
			t.Fatalf("column %d = %v, want %v (vector %v)", i, v[i], w, v[:10])
		}
	}
	if len(v.Slice()) != domain.FeatureCount || domain.FeatureCount != 43 {
		t.Fatalf("len = %d, want 43", len(v.Slice()))
	}
}

func TestEncodeFeaturesOneHotBlocks(t *testing.T) {
	// Exhaust airline x source x destination and check each block has exactly one 1.
	for _, a := range domain.Airlines {
		for _, s := range domain.SourceCities {
			for _, d := range domain.DestinationCities {
				v := EncodeFeatures(domain.TripRequest{Airline: a, Source: s, Destination: d})

				if n := blockOnes(v, domain.AirlineOffset, domain.SourceOffset); n != 1 {
					t.Fatalf("%s/%s/%s: airline block has %d ones", a, s, d, n)
				}
				if n := blockOnes(v, domain.SourceOffset, domain.DestinationOffset); n != 1 {
					t.Fatalf("%s/%s/%s: source block has %d ones", a, s, d, n)
				}
				if n := blockOnes(v, domain.DestinationOffset, domain.InfoTagOffset); n != 1 {
					t.Fatalf("%s/%s/%s: destination block has %d ones", a, s, d, n)
				}
				if n := blockOnes(v, domain.InfoTagOffset, domain.FeatureCount); n != 0 {
					t.Fatalf("%s/%s/%s: info block has %d ones", a, s, d, n)
				}
			}
		}
	}
}

func TestEncodeFeaturesColumnOrder(t *testing.T) {
	v := EncodeFeatures(domain.TripRequest{
		Airline:     domain.AirAsia,
		Source:      domain.SourceBangalore,
		Destination: domain.DestinationNewDelhi,
	})
	// first column of each block
	for _, col := range []int{10, 22, 27} {
		if v[col] != 1 {
			t.Fatalf("column %d = %v, want 1", col, v[col])
		}
	}

	v = EncodeFeatures(domain.TripRequest{
		Airline:        domain.VistaraPremiumEconomy,
		Source:         domain.SourceMumbai,
		Destination:    domain.DestinationHyderabad,
		AdditionalInfo: domain.NewInfoSet(domain.RedEyeFlight),
	})
	// last column of each block
	for _, col := range []int{21, 26, 32, 42} {
		if v[col] != 1 {
			t.Fatalf("column %d = %v, want 1", col, v[col])
		}
	}
}

func TestEncodeFeaturesNoInfoPair(t *testing.T) {
	info := domain.NewInfoSet(domain.BusinessClass, domain.ChangeAirports, domain.NoInfo2)
	v := EncodeFeatures(domain.TripRequest{
		Airline:        domain.IndiGo,
		Source:         domain.SourceDelhi,
		Destination:    domain.DestinationCochin,
		AdditionalInfo: info,
	})

	if n := blockOnes(v, domain.InfoTagOffset, domain.FeatureCount); n != 2 {
		t.Fatalf("info block has %d ones, want 2", n)
	}
	c1, _ := domain.InfoTagColumn(domain.NoInfo1)
	c2, _ := domain.InfoTagColumn(domain.NoInfo2)
	if v[c1] != 1 || v[c2] != 1 {
		t.Fatalf("no-info columns = %v/%v, want 1/1", v[c1], v[c2])
	}
}

func TestFeatureNamesMatchWidth(t *testing.T) {
	names := domain.FeatureNames()
	if len(names) != domain.FeatureCount {
		t.Fatalf("names = %d, want %d", len(names), domain.FeatureCount)
	}
	if names[domain.AirlineOffset] != "Airline_Air Asia" || names[domain.FeatureCount-1] != "Additional_Info_Red-eye flight" {
		t.Fatalf("unexpected names at block edges: %q, %q", names[domain.AirlineOffset], names[domain.FeatureCount-1])
	}
}

func TestFormatPrice(t *testing.T) {
	tests := map[float64]string{
		5423.1749: "₹5,423.17",
		1234567.5: "₹1,234,567.50",
		999:       "₹999.00",
	}
	for in, want := range tests {
		if got := FormatPrice(in); got != want {
			t.Errorf("FormatPrice(%v) = %q, want %q", in, got, want)
		}
	}
}
