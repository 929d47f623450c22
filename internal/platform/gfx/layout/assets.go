package layout

import (
	"fmt"
	"image"
	_ "image/png" // register the PNG decoder
	"os"
	"path/filepath"
)

// Asset file names looked up in the assets directory.
const (
	PlayerFile     = "nuwa.png"
	PlatformFile   = "platform.png"
	BackgroundFile = "bg.png"
	MeteorFile     = "meteor.png"
	LegFile        = "ao_leg.png"
)

// StoneFile returns the file name of stone i's sprite.
func StoneFile(i int) string {
	return fmt.Sprintf("stone_%d.png", i)
}

// AssetFiles lists every optional sprite.
func AssetFiles() []string {
	files := []string{PlayerFile, PlatformFile, BackgroundFile, MeteorFile, LegFile}
	for i := range StoneColors {
		files = append(files, StoneFile(i))
	}
	return files
}

// AssetError reports one sprite that could not be used.
type AssetError struct {
	File string
	Err  error
}

func (e *AssetError) Error() string {
	return fmt.Sprintf("asset %s: %v", e.File, e.Err)
}

func (e *AssetError) Unwrap() error {
	return e.Err
}

// ReadImages decodes every file of AssetFiles found in dir. Each missing
// or undecodable file yields an *AssetError and is left out of the map;
// the caller draws a flat rectangle in its place. An empty dir reads
// nothing and reports nothing.
func ReadImages(dir string) (map[string]image.Image, []error) {
	images := make(map[string]image.Image)
	if dir == "" {
		return images, nil
	}

	var errs []error
	for _, name := range AssetFiles() {
		img, err := decodeFile(filepath.Join(dir, name))
		if err != nil {
			errs = append(errs, &AssetError{File: name, Err: err})
			continue
		}
		images[name] = img
	}
	return images, errs
}

func decodeFile(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	img, _, err := image.Decode(f)
	if err != nil {
		return nil, err
	}
	return img, nil
}
