package layout

import (
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func TestHUDSlots(t *testing.T) {
	tests := []struct {
		i        int
		expected float64
	}{
		{0, 10},
		{1, 40},
		{4, 130},
	}
	for _, tt := range tests {
		s := StoneSlot(tt.i)
		if s.X != tt.expected || s.Y != HUDY || s.W != SlotSize || s.H != SlotSize {
			t.Errorf("StoneSlot(%d) = %+v, expected x=%v", tt.i, s, tt.expected)
		}
	}

	leg := LegSlot()
	if leg.X != 175 || leg.W != LegSlotW || leg.H != SlotSize {
		t.Errorf("LegSlot() = %+v, expected x=175 w=40", leg)
	}
	if last := StoneSlot(4); leg.X-last.Right() != SlotPad+LegSlotGap {
		t.Errorf("leg slot gap = %v", leg.X-last.Right())
	}
}

func TestBackgroundTiles(t *testing.T) {
	tests := []struct {
		name     string
		distance float64
		rx, ry   float64
	}{
		{"start", 0, 0, 0},
		{"small", 100, 20, 50},
		{"wraps", 3000, 120, 220},
		{"negative", -100, 460, 590},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tiles := BackgroundTiles(tt.distance, 480, 640)
			expected := [4][2]float64{
				{tt.rx - 480, tt.ry - 640},
				{tt.rx, tt.ry - 640},
				{tt.rx - 480, tt.ry},
				{tt.rx, tt.ry},
			}
			if tiles != expected {
				t.Errorf("BackgroundTiles(%v) = %v, expected %v", tt.distance, tiles, expected)
			}
		})
	}

	if tiles := BackgroundTiles(50, 0, 0); tiles[3] != [2]float64{0, 0} {
		t.Errorf("zero-sized background = %v", tiles)
	}
}

func TestHomePanel(t *testing.T) {
	p := HomePanel(480, 640)
	if p.X != 20 || p.Y != 40 || p.W != 440 || p.H != 560 {
		t.Errorf("HomePanel = %+v", p)
	}
	x, y, w := LoreOrigin(480)
	if x != 40 || y != 120 || w != 420 {
		t.Errorf("LoreOrigin = %v,%v,%v", x, y, w)
	}
	if got := CenterX(480, 100); got != 190 {
		t.Errorf("CenterX = %v, expected 190", got)
	}
}

func TestAssetFiles(t *testing.T) {
	files := AssetFiles()
	if len(files) != 10 {
		t.Fatalf("got %d asset files, expected 10", len(files))
	}
	if files[5] != "stone_0.png" || files[9] != "stone_4.png" {
		t.Errorf("stone files = %v", files[5:])
	}
}

func writePNG(t *testing.T, path string) {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 4))
	img.Set(1, 1, color.RGBA{255, 0, 0, 255})

	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		t.Fatal(err)
	}
}

func TestReadImagesFallsBackPerAsset(t *testing.T) {
	dir := t.TempDir()
	writePNG(t, filepath.Join(dir, PlayerFile))
	writePNG(t, filepath.Join(dir, StoneFile(2)))
	if err := os.WriteFile(filepath.Join(dir, MeteorFile), []byte("not a png"), 0o600); err != nil {
		t.Fatal(err)
	}

	images, errs := ReadImages(dir)
	if len(images) != 2 {
		t.Errorf("loaded %d images, expected 2", len(images))
	}
	if _, ok := images[PlayerFile]; !ok {
		t.Error("player sprite not loaded")
	}
	if img, ok := images[StoneFile(2)]; !ok || img.Bounds().Dx() != 4 {
		t.Error("stone_2 sprite not loaded")
	}
	if len(errs) != 8 {
		t.Fatalf("got %d errors, expected 8", len(errs))
	}

	missing, corrupt := 0, 0
	for _, err := range errs {
		var ae *AssetError
		if !errors.As(err, &ae) {
			t.Fatalf("error %v is not an AssetError", err)
		}
		switch {
		case errors.Is(err, fs.ErrNotExist):
			missing++
		case ae.File == MeteorFile:
			corrupt++
		}
	}
	if missing != 7 || corrupt != 1 {
		t.Errorf("missing=%d corrupt=%d, expected 7 and 1", missing, corrupt)
	}
}

func TestReadImagesNoDir(t *testing.T) {
	images, errs := ReadImages("")
	if len(images) != 0 || errs != nil {
		t.Errorf("ReadImages(\"\") = %d images, %v", len(images), errs)
	}
}
