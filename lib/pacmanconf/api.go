/*
Package pacmanconf reads pacman.conf files and creates alpm Handles from them.
*/
package pacmanconf

import (
	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/log"
)

const (
	DefaultConfigFile = "/etc/pacman.conf"

	defaultCacheDir = "/var/cache/pacman/pkg/"
	defaultDBPath   = "/var/lib/pacman/"
	defaultGPGDir   = "/etc/pacman.d/gnupg/"
	defaultLogFile  = "/var/log/pacman.log"
	defaultRootDir  = "/"
)

type Options struct {
	RootDir            string
	DBPath             string
	GPGDir             string
	LogFile            string
	Architecture       string
	UseDelta           string   `json:",omitempty" yaml:",omitempty"`
	XferCommand        string   `json:",omitempty" yaml:",omitempty"`
	CleanMethod        string   `json:",omitempty" yaml:",omitempty"`
	SigLevel           string   `json:",omitempty" yaml:",omitempty"`
	LocalFileSigLevel  string   `json:",omitempty" yaml:",omitempty"`
	RemoteFileSigLevel string   `json:",omitempty" yaml:",omitempty"`
	CacheDirs          []string
	HoldPkgs           []string `json:",omitempty" yaml:",omitempty"`
	SyncFirst          []string `json:",omitempty" yaml:",omitempty"`
	IgnoreGroups       []string `json:",omitempty" yaml:",omitempty"`
	IgnorePkgs         []string `json:",omitempty" yaml:",omitempty"`
	NoExtract          []string `json:",omitempty" yaml:",omitempty"`
	NoUpgrade          []string `json:",omitempty" yaml:",omitempty"`
	UseSyslog          bool     `json:",omitempty" yaml:",omitempty"`
	TotalDownload      bool     `json:",omitempty" yaml:",omitempty"`
	CheckSpace         bool     `json:",omitempty" yaml:",omitempty"`
	VerbosePkgLists    bool     `json:",omitempty" yaml:",omitempty"`
	ILoveCandy         bool     `json:",omitempty" yaml:",omitempty"`
	Color              bool     `json:",omitempty" yaml:",omitempty"`
}

type Repository struct {
	Name     string
	Servers  []string `json:",omitempty" yaml:",omitempty"`
	SigLevel alpm.SigLevel
}

type Config struct {
	Options            Options
	Repositories       []*Repository // In order of first appearance.
	DefaultSigLevel    alpm.SigLevel
	LocalFileSigLevel  alpm.SigLevel
	RemoteFileSigLevel alpm.SigLevel
}

// Load reads the pacman.conf file in filename, following Include directives.
// Unrecognised options in the [options] section are logged and ignored. Other
// syntax errors are returned.
func Load(filename string, logger log.DebugLogger) (*Config, error) {
	return load(filename, logger)
}

// NewHandle creates an alpm Handle from the configuration and registers the
// repositories as sync databases, with $repo and $arch substituted in the
// server URLs.
func (c *Config) NewHandle(logger log.DebugLogger) (*alpm.Handle, error) {
	return c.newHandle(logger)
}

// GetMachine returns the machine hardware name, as reported by uname -m. It is
// the value substituted for "Architecture = auto".
func GetMachine() string {
	return getMachine()
}
