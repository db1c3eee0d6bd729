package sink_test

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/m-mizutani/gt"

	"github.com/osscat-dev/osscat/pkg/domain/model"
	"github.com/osscat-dev/osscat/pkg/infra/sink"
)

func TestLocalPrepareClearsDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "output")
	gt.NoError(t, os.MkdirAll(dir, 0o755))
	gt.NoError(t, os.WriteFile(filepath.Join(dir, "stale.json"), []byte("{}"), 0o644))

	s := sink.NewLocal(dir)
	gt.NoError(t, s.Prepare(context.Background()))

	entries := gt.R1(os.ReadDir(dir)).NoError(t)
	gt.A(t, entries).Length(0)
}

func TestLocalWrite(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "output")
	s := sink.NewLocal(dir)
	gt.NoError(t, s.Prepare(ctx))

	catalog := model.NewCatalog()
	section := model.NewAccountSection(&model.Account{
		Login:     "acme",
		AvatarURL: "https://avatars.example/acme",
		HTMLURL:   "https://github.com/acme",
	})
	section.Repos = append(section.Repos, model.NewCatalogEntry(&model.Repository{
		Name:     "widget",
		CloneURL: "https://github.com/acme/widget.git",
	}))
	catalog.Organizations = append(catalog.Organizations, section)

	gt.NoError(t, s.Write(ctx, catalog))

	path := filepath.Join(dir, "index.json")
	first := gt.R1(os.ReadFile(path)).NoError(t)

	var decoded model.Catalog
	gt.NoError(t, json.Unmarshal(first, &decoded))
	gt.A(t, decoded.Organizations).Length(1)
	gt.V(t, decoded.Organizations[0].Name).Equal("acme")

	t.Run("repeated runs produce identical bytes", func(t *testing.T) {
		gt.NoError(t, s.Prepare(ctx))
		gt.NoError(t, s.Write(ctx, catalog))
		second := gt.R1(os.ReadFile(path)).NoError(t)
		gt.V(t, string(second)).Equal(string(first))
	})
}

func TestLocalWriteEmptyCatalog(t *testing.T) {
	ctx := context.Background()
	dir := filepath.Join(t.TempDir(), "output")
	s := sink.NewLocal(dir)
	gt.NoError(t, s.Prepare(ctx))
	gt.NoError(t, s.Write(ctx, model.NewCatalog()))

	raw := gt.R1(os.ReadFile(filepath.Join(dir, "index.json"))).NoError(t)
	gt.V(t, string(raw)).Equal("{\n  \"organizations\": []\n}")
}
