package alpm

import (
	"fmt"
	"strings"

	"github.com/pamac-go/alpmutil/lib/errors"
)

var sigLevelNames = []struct {
	level SigLevel
	name  string
}{
	{SigPackage, "Package"},
	{SigPackageOptional, "PackageOptional"},
	{SigPackageMarginalOk, "PackageMarginalOk"},
	{SigPackageUnknownOk, "PackageUnknownOk"},
	{SigDatabase, "Database"},
	{SigDatabaseOptional, "DatabaseOptional"},
	{SigDatabaseMarginalOk, "DatabaseMarginalOk"},
	{SigDatabaseUnknownOk, "DatabaseUnknownOk"},
	{SigPackageSet, "PackageSet"},
	{SigPackageTrustSet, "PackageTrustSet"},
	{SigUseDefault, "UseDefault"},
}

func mergeSigLevel(base, over SigLevel) SigLevel {
	if over&SigPackageSet == 0 {
		over |= base & (SigPackage | SigPackageOptional)
	}
	if over&SigPackageTrustSet == 0 {
		over |= base & (SigPackageMarginalOk | SigPackageUnknownOk)
	}
	return over
}

func parseSigLevel(level SigLevel, directives string) (SigLevel, error) {
	for _, directive := range strings.Fields(directives) {
		option := directive
		affectPackage := true
		affectDatabase := true
		if strings.HasPrefix(option, "Package") {
			option = option[len("Package"):]
			affectDatabase = false
		} else if strings.HasPrefix(option, "Database") {
			option = option[len("Database"):]
			affectPackage = false
		}
		switch option {
		case "Never":
			if affectPackage {
				level &^= SigPackage
				level |= SigPackageSet
			}
			if affectDatabase {
				level &^= SigDatabase
			}
		case "Optional":
			if affectPackage {
				level |= SigPackage | SigPackageOptional | SigPackageSet
			}
			if affectDatabase {
				level |= SigDatabase | SigDatabaseOptional
			}
		case "Required":
			if affectPackage {
				level |= SigPackage | SigPackageSet
				level &^= SigPackageOptional
			}
			if affectDatabase {
				level |= SigDatabase
				level &^= SigDatabaseOptional
			}
		case "TrustedOnly":
			if affectPackage {
				level &^= SigPackageMarginalOk | SigPackageUnknownOk
				level |= SigPackageTrustSet
			}
			if affectDatabase {
				level &^= SigDatabaseMarginalOk | SigDatabaseUnknownOk
			}
		case "TrustAll":
			if affectPackage {
				level |= SigPackageMarginalOk | SigPackageUnknownOk |
					SigPackageTrustSet
			}
			if affectDatabase {
				level |= SigDatabaseMarginalOk | SigDatabaseUnknownOk
			}
		default:
			return 0, errors.NewInvalidArgumentError("SigLevel",
				fmt.Sprintf("unrecognized directive: %s", directive))
		}
	}
	return level, nil
}

func (level SigLevel) string() string {
	if level == 0 {
		return "Never"
	}
	var names []string
	for _, entry := range sigLevelNames {
		if level&entry.level != 0 {
			names = append(names, entry.name)
			level &^= entry.level
		}
	}
	if level != 0 {
		names = append(names, fmt.Sprintf("0x%x", uint32(level)))
	}
	return strings.Join(names, "|")
}
