package utils

import "io/fs"

// OverlayFS serves regular files from overlay and everything else from base.
// Custom asset directories only need to carry the files they replace.
type OverlayFS struct {
	base    fs.FS
	overlay fs.FS
}

// NewOverlayFS returns base with overlay on top. A nil overlay serves base only.
func NewOverlayFS(base, overlay fs.FS) *OverlayFS {
	return &OverlayFS{base: base, overlay: overlay}
}

func (o *OverlayFS) Open(name string) (fs.File, error) {
	if o.overlay != nil {
		if file, err := o.overlay.Open(name); err == nil {
			if info, err := file.Stat(); err == nil && !info.IsDir() {
				return file, nil
			}

			_ = file.Close()
		}
	}

	return o.base.Open(name) //nolint:wrapcheck
}
