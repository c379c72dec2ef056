package util

import (
	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/list"
	"github.com/pamac-go/alpmutil/lib/log"
)

func loadFile(loader Loader, filename string, full bool, level alpm.SigLevel,
	logger log.DebugLogger) *alpm.Package {
	pkg, err := loader.LoadPackage(filename, full, level)
	if err != nil {
		logger.Debugf(1, "error loading: %s: %s\n", filename, err)
		return nil
	}
	return pkg
}

func getFilesList(pkg *alpm.Package) *list.List[*alpm.File] {
	files := list.New[*alpm.File]()
	if pkg == nil {
		return files
	}
	for index := range pkg.Files.Files {
		files = files.Add(&pkg.Files.Files[index])
	}
	return files
}
