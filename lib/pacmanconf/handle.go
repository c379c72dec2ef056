package pacmanconf

import (
	"strings"

	"github.com/pamac-go/alpmutil/lib/alpm"
	"github.com/pamac-go/alpmutil/lib/log"
)

func (c *Config) newHandle(logger log.DebugLogger) (*alpm.Handle, error) {
	h, err := alpm.NewHandle(alpm.Params{
		RootDir:            c.Options.RootDir,
		DBPath:             c.Options.DBPath,
		GPGDir:             c.Options.GPGDir,
		Architecture:       c.Options.Architecture,
		CacheDirs:          c.Options.CacheDirs,
		SigLevel:           c.DefaultSigLevel,
		LocalFileSigLevel:  c.LocalFileSigLevel,
		RemoteFileSigLevel: c.RemoteFileSigLevel,
		Logger:             logger,
	})
	if err != nil {
		return nil, err
	}
	for _, repo := range c.Repositories {
		db := h.RegisterSyncDB(repo.Name, repo.SigLevel)
		replacer := strings.NewReplacer("$repo", repo.Name,
			"$arch", c.Options.Architecture)
		for _, server := range repo.Servers {
			db.Servers = append(db.Servers, replacer.Replace(server))
		}
	}
	return h, nil
}
