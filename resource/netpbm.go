package resource

import (
	"bufio"
	"errors"
	"fmt"
	"image"
	"image/color"
	"io"
	"strconv"

	"github.com/32bitkid/bitreader"
)

// Netpbm support covers the binary bitmap (P4) and graymap (P5)
// variants, the two a greyscale pipeline is likely to be fed.

// ErrMalformedNetpbm reports a header that cannot describe a usable raster.
var ErrMalformedNetpbm = errors.New("resource: malformed netpbm header")

// maxNetpbmPixels bounds the raster a header may claim.
const maxNetpbmPixels = 1 << 28

func init() {
	image.RegisterFormat("pbm", "P4", decodeNetpbm, decodeNetpbmConfig)
	image.RegisterFormat("pgm", "P5", decodeNetpbm, decodeNetpbmConfig)
}

type netpbmHeader struct {
	magic         string
	width, height int
	maxval        int
}

func readNetpbmHeader(r *bufio.Reader) (netpbmHeader, error) {
	var h netpbmHeader

	magic := make([]byte, 2)
	if _, err := io.ReadFull(r, magic); err != nil {
		return h, err
	}
	h.magic = string(magic)
	if h.magic != "P4" && h.magic != "P5" {
		return h, fmt.Errorf("%w: magic %q", ErrMalformedNetpbm, h.magic)
	}

	fields := []*int{&h.width, &h.height}
	if h.magic == "P5" {
		fields = append(fields, &h.maxval)
	} else {
		h.maxval = 1
	}
	for _, f := range fields {
		v, err := readNetpbmInt(r)
		if err != nil {
			return h, err
		}
		*f = v
	}

	if h.width <= 0 || h.height <= 0 {
		return h, fmt.Errorf("%w: size %dx%d", ErrMalformedNetpbm, h.width, h.height)
	}
	if h.width > maxNetpbmPixels/h.height {
		return h, fmt.Errorf("%w: size %dx%d too large", ErrMalformedNetpbm, h.width, h.height)
	}
	if h.maxval <= 0 || h.maxval > 0xffff {
		return h, fmt.Errorf("%w: maxval %d", ErrMalformedNetpbm, h.maxval)
	}
	return h, nil
}

// readNetpbmInt reads one decimal header field, skipping whitespace and
// comments, and consumes the single whitespace byte that ends it.
func readNetpbmInt(r *bufio.Reader) (int, error) {
	var digits []byte
	for {
		c, err := r.ReadByte()
		if err != nil {
			if err == io.EOF && len(digits) > 0 {
				break
			}
			return 0, err
		}
		switch {
		case c == '#' && len(digits) == 0:
			if _, err := r.ReadString('\n'); err != nil {
				return 0, err
			}
			continue
		case isNetpbmSpace(c):
			if len(digits) == 0 {
				continue
			}
		case c >= '0' && c <= '9':
			digits = append(digits, c)
			continue
		default:
			return 0, fmt.Errorf("%w: unexpected byte %q", ErrMalformedNetpbm, c)
		}
		break
	}
	return strconv.Atoi(string(digits))
}

func isNetpbmSpace(c byte) bool {
	return c == ' ' || c == '\t' || c == '\n' || c == '\r' || c == '\v' || c == '\f'
}

func decodeNetpbmConfig(r io.Reader) (image.Config, error) {
	h, err := readNetpbmHeader(bufio.NewReader(r))
	if err != nil {
		return image.Config{}, err
	}
	return image.Config{ColorModel: color.GrayModel, Width: h.width, Height: h.height}, nil
}

func decodeNetpbm(r io.Reader) (image.Image, error) {
	src := bufio.NewReader(r)
	h, err := readNetpbmHeader(src)
	if err != nil {
		return nil, err
	}

	img := image.NewGray(image.Rect(0, 0, h.width, h.height))
	if h.magic == "P4" {
		err = readBitmap(bitreader.NewReader(src), img)
	} else {
		err = readGraymap(src, img, h.maxval)
	}
	if err != nil {
		return nil, err
	}
	return img, nil
}

// readBitmap unpacks one bit per pixel, 1 being black. Rows are padded
// to a whole byte.
func readBitmap(br bitreader.BitReader, img *image.Gray) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	pad := uint((8 - w%8) % 8)
	for y := 0; y < h; y++ {
		offset := y * img.Stride
		for x := 0; x < w; x++ {
			black, err := br.Read1()
			if err != nil {
				return err
			}
			if black {
				img.Pix[offset+x] = 0x00
			} else {
				img.Pix[offset+x] = 0xff
			}
		}
		if pad > 0 && y < h-1 {
			if _, err := br.Read8(pad); err != nil {
				return err
			}
		}
	}
	return nil
}

func readGraymap(r io.Reader, img *image.Gray, maxval int) error {
	w, h := img.Rect.Dx(), img.Rect.Dy()
	depth := 1
	if maxval > 0xff {
		depth = 2
	}

	row := make([]byte, w*depth)
	for y := 0; y < h; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return err
		}
		offset := y * img.Stride
		for x := 0; x < w; x++ {
			v := int(row[x*depth])
			if depth == 2 {
				v = v<<8 | int(row[x*depth+1])
			}
			if v > maxval {
				v = maxval
			}
			img.Pix[offset+x] = uint8(v * 0xff / maxval)
		}
	}
	return nil
}
