package models

import "testing"

func TestCartItemIDWithColor(t *testing.T) {
	if got := CartItemID("p1", "red"); got != "p1-red" {
		t.Errorf("expected p1-red, got %s", got)
	}
}

func TestCartItemIDWithoutColor(t *testing.T) {
	if got := CartItemID("p1", ""); got != "p1" {
		t.Errorf("expected p1, got %s", got)
	}
}

func TestIdentityValid(t *testing.T) {
	tests := []struct {
		name     string
		identity *Identity
		want     bool
	}{
		{"nil", nil, false},
		{"zero id", &Identity{FullName: "A"}, false},
		{"negative id", &Identity{ID: -1}, false},
		{"valid", &Identity{ID: 5, FullName: "A"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.identity.Valid(); got != tt.want {
				t.Errorf("Valid() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestAverageRatingZeroReviews(t *testing.T) {
	p := &Product{Rating: 0, NumberOfUserRating: 0}
	if got := p.AverageRating(); got != 0 {
		t.Errorf("expected 0 for zero reviews, got %f", got)
	}
}

func TestAverageRating(t *testing.T) {
	p := &Product{Rating: 9, NumberOfUserRating: 2}
	if got := p.AverageRating(); got != 4.5 {
		t.Errorf("expected 4.5, got %f", got)
	}
}

func TestImageForColorMapped(t *testing.T) {
	p := &Product{
		ImageURL:    "default.jpg",
		ColorImages: map[string]string{"red": "red.jpg"},
	}
	if got := p.ImageForColor("red"); got != "red.jpg" {
		t.Errorf("expected red.jpg, got %s", got)
	}
}

func TestImageForColorFallback(t *testing.T) {
	p := &Product{
		ImageURL:    "default.jpg",
		ColorImages: map[string]string{"red": "red.jpg"},
	}
	if got := p.ImageForColor("blue"); got != "default.jpg" {
		t.Errorf("expected default.jpg, got %s", got)
	}
	if got := p.ImageForColor(""); got != "default.jpg" {
		t.Errorf("expected default.jpg for no color, got %s", got)
	}
}

func TestDiscountedPrice(t *testing.T) {
	p := &Product{Price: 100, Discount: 25}
	if got := p.DiscountedPrice(); got != 75 {
		t.Errorf("expected 75, got %f", got)
	}

	full := &Product{Price: 100}
	if got := full.DiscountedPrice(); got != 100 {
		t.Errorf("expected 100, got %f", got)
	}
}
