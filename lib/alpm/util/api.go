package util

import (
	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/list"
	"github.com/pamac-go/alpmutil/lib/log"
)

// Loader loads package files. The *alpm.Handle type satisfies this interface.
type Loader interface {
	LoadPackage(filename string, full bool, level alpm.SigLevel) (
		*alpm.Package, error)
}

// LoadFile will load the package in filename. If the package could not be
// loaded the error is logged and nil is returned.
func LoadFile(loader Loader, filename string, full bool, level alpm.SigLevel,
	logger log.DebugLogger) *alpm.Package {
	return loadFile(loader, filename, full, level, logger)
}

// GetFilesList returns a list referring to the file entries of pkg. The
// entries remain owned by pkg, so the list must be torn down with Free, never
// FreeAll. A nil package yields an empty list.
func GetFilesList(pkg *alpm.Package) *list.List[*alpm.File] {
	return getFilesList(pkg)
}
