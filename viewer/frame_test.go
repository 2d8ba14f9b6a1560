package main

import (
	"image"
	"testing"
)

func TestFitFrame(t *testing.T) {
	canvas := image.Pt(800, 600)
	tests := []struct {
		window image.Point
		want   image.Rectangle
	}{
		{image.Pt(800, 600), image.Rect(0, 0, 800, 600)},
		{image.Pt(1000, 700), image.Rect(100, 50, 900, 650)},
		{image.Pt(400, 600), image.Rect(0, 150, 400, 450)},
		{image.Pt(1600, 300), image.Rect(600, 0, 1000, 300)},
		{image.Pt(0, 0), image.Rectangle{}},
	}
	for _, tt := range tests {
		if got := fitFrame(canvas, tt.window); got != tt.want {
			t.Errorf("fitFrame(%v, %v) = %v, want %v", canvas, tt.window, got, tt.want)
		}
	}
}

func TestToCanvas(t *testing.T) {
	canvas := image.Pt(800, 600)
	tests := []struct {
		frame      image.Rectangle
		x, y       float32
		wantX, wantY int
	}{
		{image.Rect(0, 0, 800, 600), 400, 300, 400, 300},
		{image.Rect(100, 50, 900, 650), 100, 50, 0, 0},
		{image.Rect(0, 150, 400, 450), 200, 300, 400, 300},
		{image.Rect(100, 50, 900, 650), 5, 1000, 0, 599},
	}
	for _, tt := range tests {
		x, y := toCanvas(tt.frame, canvas, tt.x, tt.y)
		if x != tt.wantX || y != tt.wantY {
			t.Errorf("toCanvas(%v, %v, %v) = (%d, %d), want (%d, %d)", tt.frame, tt.x, tt.y, x, y, tt.wantX, tt.wantY)
		}
	}
}
