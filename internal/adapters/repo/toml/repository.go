package toml

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
)

const (
	DraftsPathKey    = "drafts.path"
	draftsFileMode   = 0o600
	draftsDirMode    = 0o700
	draftsConfigDir  = ".coursecupid"
	draftsConfigFile = "profiles.toml"
	tempFilePattern  = ".profiles-*.toml.tmp"
)

// ProfileDraftRepository keeps one profile draft per course in a single TOML
// file. Instances pointing at the same file share a lock.
type ProfileDraftRepository struct {
	draftsPath string
	mu         *sync.RWMutex
}

var (
	lockRegistryMu sync.Mutex
	pathLockMap    = map[string]*sync.RWMutex{}
)

var _ ports.ProfileDraftRepository = (*ProfileDraftRepository)(nil)

func NewProfileDraftRepository(cfg *viper.Viper) (*ProfileDraftRepository, error) {
	if cfg == nil {
		cfg = viper.New()
	}

	homeDir, err := os.UserHomeDir()
	if err != nil {
		return nil, fmt.Errorf("resolve home directory: %w", err)
	}
	cfg.SetDefault(DraftsPathKey, filepath.Join(homeDir, draftsConfigDir, draftsConfigFile))

	draftsPath := cfg.GetString(DraftsPathKey)
	if draftsPath == "" {
		return nil, errors.New("drafts path is empty")
	}
	draftsPath, err = normalizeDraftsPath(draftsPath)
	if err != nil {
		return nil, err
	}

	return &ProfileDraftRepository{draftsPath: draftsPath, mu: lockForPath(draftsPath)}, nil
}

func (r *ProfileDraftRepository) Path() string {
	return r.draftsPath
}

// Save replaces the draft stored for the draft's course, if any.
func (r *ProfileDraftRepository) Save(ctx context.Context, draft domain.ProfileDraft) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	courseCode := domain.NormalizeCourseCode(draft.Profile.CourseCode)
	if courseCode == "" {
		return domain.ErrCourseCodeRequired
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	encoded := toSchema(draft)
	updated := false
	for i := range file.Drafts {
		if file.Drafts[i].CourseCode == courseCode {
			file.Drafts[i] = encoded
			updated = true
			break
		}
	}
	if !updated {
		file.Drafts = append(file.Drafts, encoded)
	}

	if err := ctx.Err(); err != nil {
		return err
	}

	return r.writeSchema(file)
}

func (r *ProfileDraftRepository) Get(ctx context.Context, courseCode string) (domain.ProfileDraft, error) {
	if err := ctx.Err(); err != nil {
		return domain.ProfileDraft{}, err
	}

	courseCode = domain.NormalizeCourseCode(courseCode)

	r.mu.RLock()
	defer r.mu.RUnlock()

	file, err := r.readSchema()
	if err != nil {
		return domain.ProfileDraft{}, err
	}

	for _, entry := range file.Drafts {
		if entry.CourseCode == courseCode {
			return fromSchema(entry), nil
		}
	}

	return domain.ProfileDraft{}, domain.ErrDraftNotFound
}

// Delete is a no-op when no draft exists for the course.
func (r *ProfileDraftRepository) Delete(ctx context.Context, courseCode string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	courseCode = domain.NormalizeCourseCode(courseCode)

	r.mu.Lock()
	defer r.mu.Unlock()

	file, err := r.readSchema()
	if err != nil {
		return err
	}

	kept := file.Drafts[:0]
	for _, entry := range file.Drafts {
		if entry.CourseCode != courseCode {
			kept = append(kept, entry)
		}
	}
	if len(kept) == len(file.Drafts) {
		return nil
	}
	file.Drafts = kept

	return r.writeSchema(file)
}

func (r *ProfileDraftRepository) readSchema() (fileSchema, error) {
	data, err := os.ReadFile(r.draftsPath)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return fileSchema{}, nil
		}
		return fileSchema{}, fmt.Errorf("read drafts file: %w", err)
	}

	var file fileSchema
	if err := toml.Unmarshal(data, &file); err != nil {
		return fileSchema{}, fmt.Errorf("decode drafts file: %w", err)
	}
	if err := file.validateVersion(); err != nil {
		return fileSchema{}, err
	}
	file.applyDefaults()

	return file, nil
}

func normalizeDraftsPath(path string) (string, error) {
	absPath, err := filepath.Abs(path)
	if err != nil {
		return "", fmt.Errorf("resolve drafts path: %w", err)
	}

	return filepath.Clean(absPath), nil
}

func lockForPath(path string) *sync.RWMutex {
	lockRegistryMu.Lock()
	defer lockRegistryMu.Unlock()

	if mu, ok := pathLockMap[path]; ok {
		return mu
	}

	mu := &sync.RWMutex{}
	pathLockMap[path] = mu
	return mu
}

func (r *ProfileDraftRepository) writeSchema(file fileSchema) error {
	file.applyDefaults()

	dir := filepath.Dir(r.draftsPath)
	if err := os.MkdirAll(dir, draftsDirMode); err != nil {
		return fmt.Errorf("create drafts directory: %w", err)
	}

	data, err := toml.Marshal(file)
	if err != nil {
		return fmt.Errorf("encode drafts file: %w", err)
	}

	tempFile, err := os.CreateTemp(dir, tempFilePattern)
	if err != nil {
		return fmt.Errorf("create temp drafts file: %w", err)
	}

	tempName := tempFile.Name()
	cleanup := true
	defer func() {
		if cleanup {
			_ = os.Remove(tempName)
		}
	}()

	if _, err := tempFile.Write(data); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("write temp drafts file: %w", err)
	}

	if err := tempFile.Chmod(draftsFileMode); err != nil {
		_ = tempFile.Close()
		return fmt.Errorf("chmod temp drafts file: %w", err)
	}

	if err := tempFile.Close(); err != nil {
		return fmt.Errorf("close temp drafts file: %w", err)
	}

	if err := os.Rename(tempName, r.draftsPath); err != nil {
		return fmt.Errorf("replace drafts file: %w", err)
	}

	cleanup = false
	return nil
}

func toSchema(draft domain.ProfileDraft) draftSchema {
	profile := draft.Profile
	return draftSchema{
		CourseCode:   domain.NormalizeCourseCode(profile.CourseCode),
		UserID:       string(draft.UserID),
		DisplayName:  profile.DisplayName,
		Roles:        profile.RolePreferences,
		Skills:       profile.Skills,
		Availability: profile.Availability,
		Goals:        profile.Goals,
		SavedAt:      formatTime(draft.SavedAt),
		Contact: contactSchema{
			Discord:  profile.Contact.Discord,
			LinkedIn: profile.Contact.LinkedIn,
			Email:    profile.Contact.Email,
		},
	}
}

func fromSchema(entry draftSchema) domain.ProfileDraft {
	return domain.ProfileDraft{
		UserID: domain.Token(entry.UserID),
		Profile: domain.Profile{
			CourseCode:      entry.CourseCode,
			DisplayName:     entry.DisplayName,
			RolePreferences: entry.Roles,
			Skills:          entry.Skills,
			Availability:    entry.Availability,
			Goals:           entry.Goals,
			Contact: domain.ContactInfo{
				Discord:  entry.Contact.Discord,
				LinkedIn: entry.Contact.LinkedIn,
				Email:    entry.Contact.Email,
			},
		},
		SavedAt: parseTime(entry.SavedAt),
	}
}

func parseTime(raw string) time.Time {
	if raw == "" {
		return time.Time{}
	}

	parsed, err := time.Parse(time.RFC3339, raw)
	if err != nil {
		return time.Time{}
	}

	return parsed
}

func formatTime(value time.Time) string {
	if value.IsZero() {
		return ""
	}

	return value.UTC().Format(time.RFC3339)
}
