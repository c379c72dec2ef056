package main

import (
	"fmt"
	"io"
	"os"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/alpm/util"
	"github.com/pamac-go/alpmutil/lib/format"
	"github.com/pamac-go/alpmutil/lib/log"
	"github.com/pamac-go/alpmutil/lib/verstr"
)

func listFilesSubcommand(args []string, logger log.DebugLogger) error {
	h, err := getHandle(logger)
	if err != nil {
		return err
	}
	pkg := util.LoadFile(h, args[0], true, alpm.SigUseDefault, logger)
	if pkg == nil {
		return fmt.Errorf("unable to load: %s", args[0])
	}
	listFiles(os.Stdout, pkg, *naturalSort)
	return nil
}

func listFiles(writer io.Writer, pkg *alpm.Package, naturalSort bool) {
	files := util.GetFilesList(pkg)
	if naturalSort {
		files = files.Sort(func(a, b *alpm.File) int {
			return verstr.Compare(a.Name, b.Name)
		})
	}
	defer files.Free()
	files.IterateValues(func(file *alpm.File) bool {
		size := ""
		if !file.Mode.IsDir() {
			size = format.FormatBytes(uint64(file.Size))
		}
		fmt.Fprintf(writer, "%s %10s %s\n", file.Mode, size, file.Name)
		return true
	})
}
