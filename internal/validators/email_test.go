package validators

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmailDomainValid_RejectsMalformed(t *testing.T) {
	for _, email := range []string{"", "ana", "ana@", "@example.com", "ana@@"} {
		assert.False(t, IsEmailDomainValid(email), email)
	}
}

func TestIsEmailDomainValid_LocalhostResolves(t *testing.T) {
	assert.True(t, IsEmailDomainValid("admin@localhost"))
}
