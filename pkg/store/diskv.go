package store

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"sync"

	"github.com/peterbourgon/diskv/v3"
)

// Namespaces used in durable client storage.
const (
	NamespaceEntries   = "mood-tracker-data"
	NamespaceIdentity  = "mt_user"
	NamespaceAccounts  = "mt_users"
	NamespaceLastMood  = "mascot.lastRating"
	NamespaceIntroSeen = "mascot.introShown"
)

// KV is durable client storage addressed by namespace.
type KV interface {
	Get(namespace string) (string, bool)
	Set(namespace, value string) error
	Delete(namespace string) error
}

// Load opens diskv backed storage using cfg, or the loaded config when cfg
// is nil.
func Load(cfg Config) (*DiskKV, error) {
	if cfg == nil {
		var err error
		cfg, err = LoadConfig()
		if err != nil {
			return nil, err
		}
	}

	basePath := cfg.BasePath()
	if basePath == "" {
		return nil, errors.New("store: base path unknown")
	}
	if err := os.MkdirAll(basePath, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure base path: %w", err)
	}
	// Writes land in tempDir and are renamed into place, so a watcher never
	// reads a half written namespace. It sits next to the base path to stay
	// on the same filesystem and out of the watched directory.
	tempDir := TempDir(basePath)
	if err := os.MkdirAll(tempDir, 0o755); err != nil {
		return nil, fmt.Errorf("store: ensure temp dir: %w", err)
	}
	return &DiskKV{d: diskv.New(diskv.Options{
		BasePath:          basePath,
		TempDir:           tempDir,
		AdvancedTransform: namespaceToPath,
		InverseTransform:  pathToNamespace,
		CacheSizeMax:      1024 * 1024, // 1MB
	}), basePath: basePath}, nil
}

// TempDir is where DiskKV stages writes for basePath.
func TempDir(basePath string) string {
	return filepath.Clean(basePath) + ".tmp"
}

// DiskKV stores one file per namespace under a base directory.
type DiskKV struct {
	d        *diskv.Diskv
	basePath string
}

// BasePath is the directory holding the namespace files.
func (p *DiskKV) BasePath() string {
	return p.basePath
}

func (p *DiskKV) Get(namespace string) (string, bool) {
	if !p.d.Has(namespace) {
		return "", false
	}
	// Read around the cache so writes from another process are visible.
	rc, err := p.d.ReadStream(namespace, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", namespace, err)
		return "", false
	}
	defer rc.Close()
	b, err := io.ReadAll(rc)
	if err != nil {
		fmt.Fprintf(os.Stderr, "store: read %s: %v\n", namespace, err)
		return "", false
	}
	return string(b), true
}

func (p *DiskKV) Set(namespace, value string) error {
	if err := p.d.Write(namespace, []byte(value)); err != nil {
		return fmt.Errorf("store: write %s: %w", namespace, err)
	}
	return nil
}

func (p *DiskKV) Delete(namespace string) error {
	if !p.d.Has(namespace) {
		return nil
	}
	if err := p.d.Erase(namespace); err != nil {
		return fmt.Errorf("store: erase %s: %w", namespace, err)
	}
	return nil
}

// Namespaces lists every stored namespace.
func (p *DiskKV) Namespaces() []string {
	var out []string
	for key := range p.d.Keys(nil) {
		out = append(out, key)
	}
	sort.Strings(out)
	return out
}

func namespaceToPath(s string) *diskv.PathKey {
	return &diskv.PathKey{
		Path:     []string{},
		FileName: s,
	}
}

func pathToNamespace(pathKey *diskv.PathKey) string {
	return pathKey.FileName
}

// Memory is an in-process KV, used for tests and dry runs.
type Memory struct {
	mu   sync.Mutex
	data map[string]string
	// FailWrites makes Set return an error, for exercising rollback paths.
	FailWrites bool
}

// NewMemory returns an empty Memory, optionally seeded with namespace/value
// pairs.
func NewMemory(seed map[string]string) *Memory {
	m := &Memory{data: make(map[string]string, len(seed))}
	for k, v := range seed {
		m.data[k] = v
	}
	return m
}

func (m *Memory) Get(namespace string) (string, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.data[namespace]
	return v, ok
}

func (m *Memory) Set(namespace, value string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.FailWrites {
		return fmt.Errorf("store: write %s: simulated failure", namespace)
	}
	m.data[namespace] = value
	return nil
}

func (m *Memory) Delete(namespace string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.data, namespace)
	return nil
}
