package modify

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"

	"pixview/imgio"
	"pixview/ops"
	"pixview/parallel"
	"pixview/pix"

	"github.com/alecthomas/kong"
)

type CLICmd struct {
	Scan       string `help:"Source folder to scan" default:"."`
	Dest       string `help:"Destination folder for processed pictures. Relative to scan dir if not absolute. If same as scan dir, will overwrite source files." default:"modified"`
	Crop       bool   `help:"Crop image to a rectangle" default:"false" group:"crop"`
	CropX      int    `help:"Left edge of the crop rectangle" group:"crop"`
	CropY      int    `help:"Top edge of the crop rectangle" group:"crop"`
	CropWidth  int    `help:"Width of the crop rectangle" group:"crop"`
	CropHeight int    `help:"Height of the crop rectangle" group:"crop"`
	Scale      bool   `help:"Scale image with nearest neighbor sampling" default:"false" group:"scale"`
	Width      int    `help:"Scale target width" group:"scale"`
	Height     int    `help:"Scale target height" group:"scale"`
	Gray       bool   `help:"Reduce image to a single gray channel" default:"false"`
	Fill       string `help:"Fill the image (or the rectangle given by the fill-* flags) with this color" group:"fill"`
	FillX      int    `help:"Left edge of the fill rectangle" group:"fill"`
	FillY      int    `help:"Top edge of the fill rectangle" group:"fill"`
	FillWidth  int    `help:"Width of the fill rectangle (0 means through the right edge)" group:"fill"`
	FillHeight int    `help:"Height of the fill rectangle (0 means through the bottom edge)" group:"fill"`
	Format     string `help:"Output format of processed image. If prefixed with 'unsup:' will convert only unsupported formats" enum:"same,gif,unsup:gif,jpeg,unsup:jpeg,png,unsup:png,bmp,unsup:bmp,tiff,unsup:tiff" default:"unsup:png"`

	fillColor pix.Color
	hasFill   bool
}

func (c *CLICmd) Validate(kctx *kong.Context) error {
	scanDir, err := filepath.Abs(c.Scan)
	var info os.FileInfo
	if err == nil {
		if info, err = os.Stat(scanDir); err == nil && !info.IsDir() {
			err = fmt.Errorf("not a directory")
		}
	}
	if err != nil {
		return fmt.Errorf("invalid scan path %q: %w", c.Scan, err)
	}
	c.Scan = scanDir

	if !filepath.IsAbs(c.Dest) {
		c.Dest = filepath.Join(scanDir, c.Dest)
	}

	if c.Crop {
		switch {
		case c.CropX < 0 || c.CropY < 0:
			return fmt.Errorf("invalid crop origin: (%d, %d)", c.CropX, c.CropY)
		case c.CropWidth <= 0 || c.CropHeight <= 0:
			return fmt.Errorf("invalid crop dimensions: %dx%d", c.CropWidth, c.CropHeight)
		}
	}

	if c.Scale {
		switch {
		case c.Width < 0:
			return fmt.Errorf("invalid scale width: %d", c.Width)
		case c.Height < 0:
			return fmt.Errorf("invalid scale height: %d", c.Height)
		case (c.Width == 0) && (c.Height == 0):
			return fmt.Errorf("no scale dimensions given")
		}
	}

	if c.Fill != "" {
		if c.fillColor, err = parseHexToColor(c.Fill); err != nil {
			return err
		}
		c.hasFill = true
		if c.FillX < 0 || c.FillY < 0 || c.FillWidth < 0 || c.FillHeight < 0 {
			return fmt.Errorf("invalid fill rectangle: %dx%d at (%d, %d)",
				c.FillWidth, c.FillHeight, c.FillX, c.FillY)
		}
	}

	return nil
}

func (c *CLICmd) Run(worker parallel.WorkerFunc, wait parallel.WaitFunc) error {
	if err := os.MkdirAll(c.Dest, os.ModeDir); err != nil {
		return fmt.Errorf("unable to create destination folder %q: %w", c.Dest, err)
	}

	files, err := os.ReadDir(c.Scan)
	if err != nil {
		return fmt.Errorf("unable to read folder %q: %w", c.Scan, err)
	}

	var processedCount, errCount atomic.Uint64
	for _, file := range files {
		if file.IsDir() {
			continue
		}

		worker(func(fileName string) func() {
			return func() {
				filePath := filepath.Join(c.Scan, fileName)
				logger := slog.Default().With("file", filePath)

				img, imgType, err := imgio.Load(filePath)
				if err != nil {
					errCount.Add(1)
					logger.Error("could not load image", "error", err)
					return
				}

				if img, err = c.process(logger, img); err != nil {
					errCount.Add(1)
					logger.Error("could not process image", "error", err)
					return
				}

				if err = imgio.Save(img, imgType, c.Format, c.Dest, fileName); err != nil {
					errCount.Add(1)
					logger.Error("could not save image", "dir", c.Dest, "error", err)
					return
				}
				processedCount.Add(1)
			}
		}(file.Name()))
	}

	wait(true)

	processed := processedCount.Load()
	errors := errCount.Load()
	slog.Info("stats", "processed", processed, "errors", errors,
		"total", processed+errors)

	if errors > 0 {
		return fmt.Errorf("error processing %d files", errors)
	}
	return nil
}

func (c *CLICmd) process(logger *slog.Logger, img *pix.Image) (*pix.Image, error) {
	var err error

	if c.Crop {
		logger.Info("cropping", "width", c.CropWidth, "height", c.CropHeight, "x", c.CropX, "y", c.CropY)
		if img, err = ops.Crop(img, c.CropX, c.CropY, c.CropWidth, c.CropHeight); err != nil {
			return nil, err
		}
	}

	if c.Scale {
		width, height := c.Width, c.Height
		if width == 0 {
			width = img.Width() * height / img.Height()
		}
		if height == 0 {
			height = img.Height() * width / img.Width()
		}
		logger.Info("scaling", "width", width, "height", height)
		if img, err = ops.ScaleNearest(img, width, height); err != nil {
			return nil, err
		}
	}

	if c.Gray {
		logger.Info("converting to gray", "from", img.Format())
		img = ops.ToR8(img)
	}

	if c.hasFill {
		x, y := c.FillX, c.FillY
		w, h := c.FillWidth, c.FillHeight
		if w == 0 {
			w = img.Width() - x
		}
		if h == 0 {
			h = img.Height() - y
		}
		if w <= 0 || h <= 0 || x+w > img.Width() || y+h > img.Height() {
			return nil, fmt.Errorf("fill rectangle %dx%d at (%d, %d) outside %dx%d image",
				w, h, x, y, img.Width(), img.Height())
		}
		logger.Info("filling", "width", w, "height", h, "x", x, "y", y)
		fillRect(img, x, y, w, h, c.fillColor)
	}

	return img, nil
}

func fillRect(img *pix.Image, x, y, w, h int, c pix.Color) {
	if x == 0 && y == 0 && w == img.Width() && h == img.Height() {
		img.Fill(c)
		return
	}
	switch {
	case img.IsRGBA8():
		v, _ := img.AsRGBA8()
		ops.FillRect(v, x, y, w, h, pix.RGBA8FromColor(c))
	case img.IsRGB8():
		v, _ := img.AsRGB8()
		ops.FillRect(v, x, y, w, h, pix.RGB8FromColor(c))
	case img.IsR8():
		v, _ := img.AsR8()
		ops.FillRect(v, x, y, w, h, pix.R8FromColor(c))
	}
}

func parseHexToColor(s string) (pix.Color, error) {
	var r, g, b, a uint8
	a = 0xFF
	switch len(s) {
	case 4:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x", &r, &g, &b)
		if err != nil {
			return 0, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return 0, fmt.Errorf("insufficient fill color fields: %d", n)
		}

		r |= r << 4
		g |= g << 4
		b |= b << 4
	case 5:
		n, err := fmt.Sscanf(s, "#%1x%1x%1x%x", &r, &g, &b, &a)
		if err != nil {
			return 0, fmt.Errorf("could not read color: %w", err)
		} else if n < 4 {
			return 0, fmt.Errorf("insufficient fill color fields: %d", n)
		}

		r |= r << 4
		g |= g << 4
		b |= b << 4
		a |= a << 4
	case 7:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x", &r, &g, &b)
		if err != nil {
			return 0, fmt.Errorf("could not read color: %w", err)
		} else if n < 3 {
			return 0, fmt.Errorf("insufficient fill color fields: %d", n)
		}
	case 9:
		n, err := fmt.Sscanf(s, "#%2x%2x%2x%2x", &r, &g, &b, &a)
		if err != nil {
			return 0, fmt.Errorf("could not read color: %w", err)
		} else if n < 4 {
			return 0, fmt.Errorf("insufficient fill color fields: %d", n)
		}
	default:
		return 0, fmt.Errorf("invalid fill color, should be #RGB, #RGBA, #RRGGBB or #RRGGBBAA")
	}

	return pix.NewColor(a, r, g, b), nil
}
