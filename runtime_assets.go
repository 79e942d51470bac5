package lsaui

import (
	"io/fs"

	"github.com/cloudprivacylabs/lsa-ui/pkg/renderers/vanilla"
)

// RuntimeAssetsFS exposes the form stylesheet and the browser runtime that
// keeps inputs bound and prevents submissions from navigating.
//
// Typical mount:
//
//	mux.Handle("/assets/",
//	  http.StripPrefix("/assets/",
//	    http.FileServerFS(lsaui.RuntimeAssetsFS()),
//	  ),
//	)
func RuntimeAssetsFS() fs.FS {
	return vanilla.AssetsFS()
}
