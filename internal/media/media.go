// Package media holds the bitmaps compiled into the firmware. Each image lives under media/<type>/<name>.bmp
// and must match the size of its Type exactly: a splash covers the whole panel, an icon is a 16x16 tile.
package media

import (
	"bytes"
	"embed"
	"errors"
	"image"
	"path"

	"golang.org/x/image/bmp"
)

//go:embed media/*/*.bmp
var imgs embed.FS

// LoadImage decodes the named bitmap of type typ. The header is checked against the type's size before the
// pixel data is decoded, so a wrong asset costs no image allocation.
func LoadImage(typ Type, name string) (image.Image, error) {
	w, h := typ.Size()
	if w == 0 || h == 0 {
		return nil, errors.New("media: unknown type " + string(typ))
	}

	data, err := imgs.ReadFile(path.Join("media", string(typ), name+".bmp"))
	if err != nil {
		return nil, errors.New("media: " + string(typ) + " " + name + ": " + err.Error())
	}

	cfg, err := bmp.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, errors.New("media: " + name + ": " + err.Error())
	}
	if cfg.Width != int(w) || cfg.Height != int(h) {
		return nil, errors.New("media: " + name + " is not " + string(typ) + " sized")
	}

	return bmp.Decode(bytes.NewReader(data))
}
