package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDisplayNameOr(t *testing.T) {
	assert.Equal(t, "Rex", (&Profile{Nome: "Rex", DisplayName: "rex_old"}).DisplayNameOr("x"))
	assert.Equal(t, "rex_old", (&Profile{DisplayName: "rex_old"}).DisplayNameOr("x"))
	assert.Equal(t, "x", (&Profile{}).DisplayNameOr("x"))

	// Whitespace-only legacy fields count as absent.
	assert.Equal(t, "x", (&Profile{Nome: "   "}).DisplayNameOr("x"))
	assert.Equal(t, "rex_old", (&Profile{Nome: " ", DisplayName: "rex_old"}).DisplayNameOr("x"))

	var missing *Profile
	assert.Equal(t, "x", missing.DisplayNameOr("x"))
}

func TestAvatarOr(t *testing.T) {
	assert.Equal(t, "https://cdn.example/a.png", (&Profile{AvatarURL: "https://cdn.example/a.png"}).AvatarOr("d"))
	assert.Equal(t, "d", (&Profile{}).AvatarOr("d"))

	var missing *Profile
	assert.Equal(t, "d", missing.AvatarOr("d"))
}
