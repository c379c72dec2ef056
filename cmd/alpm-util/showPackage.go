package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/alpm/util"
	"github.com/pamac-go/alpmutil/lib/log"
)

type packageInfo struct {
	alpm.Package `yaml:",inline"`
	NumFiles     uint `json:",omitempty" yaml:",omitempty"`
}

func showPackageSubcommand(args []string, logger log.DebugLogger) error {
	h, err := getHandle(logger)
	if err != nil {
		return err
	}
	pkg := util.LoadFile(h, args[0], *full, alpm.SigUseDefault, logger)
	if pkg == nil {
		return fmt.Errorf("unable to load: %s", args[0])
	}
	return showPackage(os.Stdout, *outputFormat, pkg)
}

func showPackage(writer io.Writer, format string, pkg *alpm.Package) error {
	info := packageInfo{Package: *pkg}
	files := util.GetFilesList(pkg)
	info.NumFiles = files.Count()
	files.Free()
	return writeValue(writer, format, info)
}
