package adapter

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "mutar.dev/pkg/mutar/internal/model"
)

// ManifestFileName is the name of the run index inside the output directory.
const ManifestFileName = "manifest.yaml"

// ReportStore persists the manifest of a mutation run.
type ReportStore interface {
	SaveManifest(ctx context.Context, dir m.Path, manifest m.Manifest) error
	LoadManifest(ctx context.Context, dir m.Path) (m.Manifest, error)
}

// LocalReportStore keeps the manifest as YAML on the local filesystem.
type LocalReportStore struct{}

// NewReportStore constructs a LocalReportStore.
func NewReportStore() *LocalReportStore {
	return &LocalReportStore{}
}

// SaveManifest writes dir/manifest.yaml, replacing any previous manifest in
// one rename.
func (rs *LocalReportStore) SaveManifest(ctx context.Context, dir m.Path, manifest m.Manifest) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	if err := os.MkdirAll(string(dir), 0o750); err != nil {
		return fmt.Errorf("create report dir: %w", err)
	}

	data, err := yaml.Marshal(manifest)
	if err != nil {
		return fmt.Errorf("marshal manifest: %w", err)
	}

	tmp, err := os.CreateTemp(string(dir), ".manifest-*.yaml")
	if err != nil {
		return fmt.Errorf("create manifest: %w", err)
	}

	tmpName := tmp.Name()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)

		return fmt.Errorf("write manifest: %w", err)
	}

	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("close manifest: %w", err)
	}

	if err := os.Rename(tmpName, filepath.Join(string(dir), ManifestFileName)); err != nil {
		_ = os.Remove(tmpName)
		return fmt.Errorf("rename manifest: %w", err)
	}

	return nil
}

// LoadManifest reads dir/manifest.yaml.
func (rs *LocalReportStore) LoadManifest(ctx context.Context, dir m.Path) (m.Manifest, error) {
	if err := ctx.Err(); err != nil {
		return m.Manifest{}, err
	}

	data, err := os.ReadFile(filepath.Join(string(dir), ManifestFileName))
	if err != nil {
		return m.Manifest{}, fmt.Errorf("read manifest: %w", err)
	}

	var manifest m.Manifest
	if err := yaml.Unmarshal(data, &manifest); err != nil {
		return m.Manifest{}, fmt.Errorf("unmarshal manifest: %w", err)
	}

	return manifest, nil
}
