package classify

import (
	"testing/fstest"

	"git.home.luguber.info/inful/readmegen/internal/signals"
	"git.home.luguber.info/inful/readmegen/internal/source"
)

func project(files map[string]string) (*source.Source, *signals.Signals) {
	fsys := fstest.MapFS{}
	for name, content := range files {
		fsys[name] = &fstest.MapFile{Data: []byte(content)}
	}
	src := source.New(fsys, "/work/demo")
	return src, signals.Collect(src)
}
