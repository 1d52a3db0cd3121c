package file

import (
	"context"
	"errors"
	"fmt"

	"github.com/bnema/coursecupid-cli/internal/domain"
	"github.com/bnema/coursecupid-cli/internal/ports"
)

const identityKey = "identity"

type identityEntry struct {
	UserID      string `json:"userId"`
	CourseCode  string `json:"courseCode"`
	DisplayName string `json:"displayName,omitempty"`
}

type IdentityStore struct {
	store *Store
}

var _ ports.IdentityStore = (*IdentityStore)(nil)

func NewIdentityStore(store *Store) *IdentityStore {
	return &IdentityStore{store: store}
}

// Get returns the stored identity as written, without validating it. An entry
// that cannot be decoded yields domain.ErrCorruptIdentity.
func (s *IdentityStore) Get(ctx context.Context) (domain.Identity, bool, error) {
	var entry identityEntry
	ok, err := s.store.Get(ctx, identityKey, &entry)
	if err != nil {
		if errors.Is(err, ErrCorruptEntry) {
			return domain.Identity{}, true, fmt.Errorf("%w: %v", domain.ErrCorruptIdentity, err)
		}
		return domain.Identity{}, false, err
	}
	if !ok {
		return domain.Identity{}, false, nil
	}

	identity := domain.Identity{
		UserID:      domain.Token(domain.CleanToken(entry.UserID)),
		CourseCode:  entry.CourseCode,
		DisplayName: entry.DisplayName,
	}
	if identity.Empty() {
		return domain.Identity{}, false, nil
	}

	return identity, true, nil
}

func (s *IdentityStore) Set(ctx context.Context, identity domain.Identity) error {
	return s.store.Put(ctx, identityKey, identityEntry{
		UserID:      string(identity.UserID),
		CourseCode:  identity.CourseCode,
		DisplayName: identity.DisplayName,
	})
}

func (s *IdentityStore) Clear(ctx context.Context) error {
	return s.store.Delete(ctx, identityKey)
}
