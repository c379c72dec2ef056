package alpm

import (
	"github.com/Cloud-Foundations/tricorder/go/tricorder"
	"github.com/Cloud-Foundations/tricorder/go/tricorder/units"
)

var (
	latencyBucketer        = tricorder.NewGeometricBucketer(0.1, 100e3)
	loadTimeDistribution   *tricorder.CumulativeDistribution
	numPackageLoadFailures uint64
	numPackagesLoaded      uint64
)

func init() {
	loadTimeDistribution = latencyBucketer.NewCumulativeDistribution()
	if err := tricorder.RegisterMetric("/alpm/package-load-time",
		loadTimeDistribution, units.Millisecond,
		"package load durations"); err != nil {
		panic(err)
	}
	if err := tricorder.RegisterMetric("/alpm/packages-loaded",
		&numPackagesLoaded, units.None,
		"number of packages loaded"); err != nil {
		panic(err)
	}
	if err := tricorder.RegisterMetric("/alpm/package-load-failures",
		&numPackageLoadFailures, units.None,
		"number of package load failures"); err != nil {
		panic(err)
	}
}
