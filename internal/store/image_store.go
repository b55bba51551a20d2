package store

import (
	"bytes"
	"fmt"
	"image"
	"image/png"

	"golang.org/x/image/draw"

	"stegcrypt/internal/domain"
)

const channels = 3 // R, G, B; alpha lives in Carrier.Alpha

// ImageFileStore reads and writes PNG carriers on disk.
type ImageFileStore struct{}

func NewImageFileStore() *ImageFileStore { return &ImageFileStore{} }

var _ domain.ImageStore = (*ImageFileStore)(nil)

// LoadCarrier decodes the PNG at path.
func (s *ImageFileStore) LoadCarrier(path string) (domain.Carrier, error) {
	b, err := readFile(path)
	if err != nil {
		return domain.Carrier{}, err
	}
	img, err := png.Decode(bytes.NewReader(b))
	if err != nil {
		return domain.Carrier{}, fmt.Errorf("decoding PNG %s: %w", path, err)
	}
	return CarrierFromImage(img), nil
}

// SaveCarrier encodes c as PNG at path, replacing any existing file.
func (s *ImageFileStore) SaveCarrier(path string, c domain.Carrier) error {
	img, err := ImageFromCarrier(c)
	if err != nil {
		return err
	}
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("encoding PNG %s: %w", path, err)
	}
	return writeFile(path, buf.Bytes(), 0o644)
}

// CarrierFromImage splits img into an RGB channel buffer and an alpha plane.
// Colour models other than NRGBA are converted first; 16-bit channels are
// reduced to 8 bits.
func CarrierFromImage(img image.Image) domain.Carrier {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()

	src, ok := img.(*image.NRGBA)
	if !ok {
		src = image.NewNRGBA(b)
		draw.Draw(src, b, img, b.Min, draw.Src)
	}

	c := domain.Carrier{
		Width:  w,
		Height: h,
		Pix:    make(domain.PixelBuffer, w*h*channels),
		Alpha:  make([]byte, w*h),
	}
	for y := 0; y < h; y++ {
		off := src.PixOffset(b.Min.X, b.Min.Y+y)
		row := src.Pix[off : off+4*w]
		for x := 0; x < w; x++ {
			i := y*w + x
			copy(c.Pix[i*channels:(i+1)*channels], row[4*x:4*x+channels])
			c.Alpha[i] = row[4*x+3]
		}
	}
	return c
}

// ImageFromCarrier recombines c into an NRGBA image.
func ImageFromCarrier(c domain.Carrier) (*image.NRGBA, error) {
	n := c.Width * c.Height
	if c.Width < 0 || c.Height < 0 || len(c.Pix) != n*channels || len(c.Alpha) != n {
		return nil, fmt.Errorf("carrier %dx%d has %d channel bytes and %d alpha bytes",
			c.Width, c.Height, len(c.Pix), len(c.Alpha))
	}
	img := image.NewNRGBA(image.Rect(0, 0, c.Width, c.Height))
	for i := 0; i < n; i++ {
		o := 4 * i
		copy(img.Pix[o:o+channels], c.Pix[i*channels:(i+1)*channels])
		img.Pix[o+3] = c.Alpha[i]
	}
	return img, nil
}
