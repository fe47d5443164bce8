package command

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/jbeshir/article-board/internal/datasources"
)

// ProvisionExternalUser maps an identity provider subject to a local user,
// creating one on first sight.
type ProvisionExternalUser struct {
	Ensurer datasources.ExternalUserEnsurer
	Prefix  string
}

func NewProvisionExternalUser(ensurer datasources.ExternalUserEnsurer, prefix string) *ProvisionExternalUser {
	return &ProvisionExternalUser{
		Ensurer: ensurer,
		Prefix:  prefix,
	}
}

func (c *ProvisionExternalUser) Execute(ctx context.Context, subject string) (int64, error) {
	if subject == "" {
		return 0, errors.New("provisioning external user: empty subject")
	}

	id, err := c.Ensurer.EnsureExternalUser(ctx, subject, ExternalUsername(c.Prefix, subject))
	if err != nil {
		return 0, fmt.Errorf("provisioning external user: %w", err)
	}
	return id, nil
}

// ExternalUsername derives a stable username from a subject. Subjects can
// contain characters usernames may not, so the subject is hashed.
func ExternalUsername(prefix, subject string) string {
	sum := sha256.Sum256([]byte(subject))
	return prefix + "-" + hex.EncodeToString(sum[:])[:16]
}
