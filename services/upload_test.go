package services

import "testing"

func TestOptimizedImageURL(t *testing.T) {
	tests := []struct {
		in    string
		width int
		want  string
	}{
		{
			in:    "https://res.cloudinary.com/demo/image/upload/v1700000000/tours/doi.jpg",
			width: 800,
			want:  "https://res.cloudinary.com/demo/image/upload/f_auto,q_auto,w_800,c_limit/v1700000000/tours/doi.jpg",
		},
		{
			in:   "https://res.cloudinary.com/demo/image/upload/tours/doi.jpg",
			want: "https://res.cloudinary.com/demo/image/upload/f_auto,q_auto/tours/doi.jpg",
		},
		{
			in:    "https://res.cloudinary.com/demo/image/upload/f_auto,w_400/v1/doi.jpg",
			width: 800,
			want:  "https://res.cloudinary.com/demo/image/upload/f_auto,w_400/v1/doi.jpg",
		},
		{
			in:    "https://images.example.com/doi.jpg",
			width: 800,
			want:  "https://images.example.com/doi.jpg",
		},
		{in: "", width: 800, want: ""},
	}
	for _, tt := range tests {
		if got := OptimizedImageURL(tt.in, tt.width); got != tt.want {
			t.Errorf("OptimizedImageURL(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestNewCloudinaryUploaderNil(t *testing.T) {
	if NewCloudinaryUploader(nil) != nil {
		t.Error("expected nil uploader without client")
	}
}
