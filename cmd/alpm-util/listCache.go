package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/alpm/util"
	"github.com/pamac-go/alpmutil/lib/list"
	"github.com/pamac-go/alpmutil/lib/log"
)

func listCacheSubcommand(args []string, logger log.DebugLogger) error {
	h, err := getHandle(logger)
	if err != nil {
		return err
	}
	packages, err := loadCache(h, h.Params().CacheDirs, logger)
	if err != nil {
		return err
	}
	defer packages.Free()
	packages = sortPackages(packages)
	iterator := packages.Iterator()
	for pkg, ok := iterator.Next(); ok; pkg, ok = iterator.Next() {
		fmt.Printf("%s %s %s\n", pkg.Name, pkg.Version, pkg.Filename)
	}
	return nil
}

func isPackageFile(name string) bool {
	return strings.Contains(name, ".pkg.tar") && !strings.HasSuffix(name, ".sig")
}

// loadCache loads the metadata of every package in dirnames. Packages which
// cannot be loaded are skipped.
func loadCache(loader util.Loader, dirnames []string,
	logger log.DebugLogger) (*list.List[*alpm.Package], error) {
	packages := list.New[*alpm.Package]()
	for _, dirname := range dirnames {
		entries, err := os.ReadDir(dirname)
		if err != nil {
			if os.IsNotExist(err) {
				logger.Debugf(0, "skipping missing cache: %s\n", dirname)
				continue
			}
			return nil, err
		}
		for _, entry := range entries {
			if !entry.Type().IsRegular() || !isPackageFile(entry.Name()) {
				continue
			}
			pkg := util.LoadFile(loader, filepath.Join(dirname, entry.Name()),
				false, alpm.SigUseDefault, logger)
			if pkg != nil {
				packages = packages.Add(pkg)
			}
		}
	}
	return packages, nil
}

// sortPackages orders by name and then by version. Both passes are stable, so
// sorting by version first leaves versions ordered within each name.
func sortPackages(
	packages *list.List[*alpm.Package]) *list.List[*alpm.Package] {
	packages = packages.Sort(func(a, b *alpm.Package) int {
		return alpm.VerCmp(a.Version, b.Version)
	})
	return packages.Sort(func(a, b *alpm.Package) int {
		return strings.Compare(a.Name, b.Name)
	})
}
