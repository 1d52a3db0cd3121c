package toml

import "fmt"

const currentSchemaVersion = 1

type fileSchema struct {
	Version int           `toml:"version"`
	Drafts  []draftSchema `toml:"drafts"`
}

func (s *fileSchema) applyDefaults() {
	if s.Version == 0 {
		s.Version = currentSchemaVersion
	}
}

func (s fileSchema) validateVersion() error {
	if s.Version > currentSchemaVersion {
		return fmt.Errorf("unsupported drafts schema version %d (current %d)", s.Version, currentSchemaVersion)
	}

	return nil
}

type draftSchema struct {
	CourseCode   string        `toml:"course_code"`
	UserID       string        `toml:"user_id"`
	DisplayName  string        `toml:"display_name"`
	Roles        []string      `toml:"roles"`
	Skills       []string      `toml:"skills,omitempty"`
	Availability []string      `toml:"availability,omitempty"`
	Goals        string        `toml:"goals,omitempty"`
	SavedAt      string        `toml:"saved_at"`
	Contact      contactSchema `toml:"contact,omitempty"`
}

type contactSchema struct {
	Discord  string `toml:"discord,omitempty"`
	LinkedIn string `toml:"linkedin,omitempty"`
	Email    string `toml:"email,omitempty"`
}
