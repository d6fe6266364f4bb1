package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/founderlink/backend/internal/model"
	"github.com/founderlink/backend/internal/sanitize"
)

// FileStore implements RecordStore on the local file system, one JSON
// file per record under <baseDir>/startups and <baseDir>/investors.
// Records are cached in memory after the initial load; writes go to disk
// first and then update the cache.
type FileStore struct {
	baseDir   string
	mu        sync.RWMutex
	startups  map[string]*model.Startup
	investors map[string]*model.Investor
}

// NewFileStore creates the directory layout and loads any existing records.
func NewFileStore(baseDir string) (*FileStore, error) {
	for _, sub := range []string{"startups", "investors"} {
		if err := os.MkdirAll(filepath.Join(baseDir, sub), 0755); err != nil {
			return nil, fmt.Errorf("failed to create store directory: %w", err)
		}
	}

	fs := &FileStore{
		baseDir:   baseDir,
		startups:  make(map[string]*model.Startup),
		investors: make(map[string]*model.Investor),
	}
	if err := fs.loadAll(); err != nil {
		return nil, err
	}
	return fs, nil
}

func (fs *FileStore) loadAll() error {
	startupFiles, err := os.ReadDir(filepath.Join(fs.baseDir, "startups"))
	if err != nil {
		return fmt.Errorf("failed to read startups directory: %w", err)
	}
	for _, file := range startupFiles {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(fs.baseDir, "startups", file.Name()))
		if err != nil {
			continue
		}
		var s model.Startup
		if err := json.Unmarshal(data, &s); err == nil && s.ID != "" {
			s.Description = sanitize.StripHTML(s.Description)
			s.Tagline = sanitize.StripHTML(s.Tagline)
			fs.startups[s.ID] = &s
		}
	}

	investorFiles, err := os.ReadDir(filepath.Join(fs.baseDir, "investors"))
	if err != nil {
		return fmt.Errorf("failed to read investors directory: %w", err)
	}
	for _, file := range investorFiles {
		if filepath.Ext(file.Name()) != ".json" {
			continue
		}
		data, err := os.ReadFile(filepath.Join(fs.baseDir, "investors", file.Name()))
		if err != nil {
			continue
		}
		var inv model.Investor
		if err := json.Unmarshal(data, &inv); err == nil && inv.ID != "" {
			inv.Bio = sanitize.StripHTML(inv.Bio)
			fs.investors[inv.ID] = &inv
		}
	}
	return nil
}

// ListStartups returns all known startups.
func (fs *FileStore) ListStartups() ([]*model.Startup, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	result := make([]*model.Startup, 0, len(fs.startups))
	for _, s := range fs.startups {
		result = append(result, s)
	}
	return result, nil
}

// FilterStartupsByCategory returns startups whose category matches,
// case-insensitively.
func (fs *FileStore) FilterStartupsByCategory(category string) ([]*model.Startup, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	var result []*model.Startup
	for _, s := range fs.startups {
		if strings.EqualFold(s.Category, category) {
			result = append(result, s)
		}
	}
	return result, nil
}

// ListInvestors returns all known investors, approved or not.
func (fs *FileStore) ListInvestors() ([]*model.Investor, error) {
	fs.mu.RLock()
	defer fs.mu.RUnlock()

	result := make([]*model.Investor, 0, len(fs.investors))
	for _, inv := range fs.investors {
		result = append(result, inv)
	}
	return result, nil
}

// SaveStartup writes the startup to disk and updates the cache.
func (fs *FileStore) SaveStartup(startup *model.Startup) error {
	if startup.ID == "" {
		return fmt.Errorf("startup is missing an id")
	}
	startup.Description = sanitize.StripHTML(startup.Description)
	startup.Tagline = sanitize.StripHTML(startup.Tagline)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.writeRecord("startups", startup.ID, startup); err != nil {
		return err
	}
	fs.startups[startup.ID] = startup
	return nil
}

// SaveInvestor writes the investor to disk and updates the cache.
func (fs *FileStore) SaveInvestor(investor *model.Investor) error {
	if investor.ID == "" {
		return fmt.Errorf("investor is missing an id")
	}
	investor.Bio = sanitize.StripHTML(investor.Bio)

	fs.mu.Lock()
	defer fs.mu.Unlock()

	if err := fs.writeRecord("investors", investor.ID, investor); err != nil {
		return err
	}
	fs.investors[investor.ID] = investor
	return nil
}

func (fs *FileStore) writeRecord(sub, id string, record interface{}) error {
	data, err := json.MarshalIndent(record, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal record: %w", err)
	}
	path := filepath.Join(fs.baseDir, sub, safeFilename(id))
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}
	return nil
}

// Close is a no-op for file storage
func (fs *FileStore) Close() error {
	return nil
}

// safeFilename converts a record ID to a safe filename
func safeFilename(id string) string {
	safe := ""
	for _, r := range id {
		if (r >= 'a' && r <= 'z') || (r >= 'A' && r <= 'Z') || (r >= '0' && r <= '9') {
			safe += string(r)
		} else {
			safe += "_"
		}
	}
	if len(safe) > 100 {
		safe = safe[:100]
	}
	return safe + ".json"
}
