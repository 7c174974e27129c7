package models

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParsePlatform(t *testing.T) {
	for _, name := range []string{
		"Playstation1", "Playstation2", "Playstation3", "Playstation4", "Playstation5",
		"NES", "SNES", "N64", "GameCube", "Wii", "WiiU",
		"Switch", "Switch2", "NintendoDS", "Nintendo3DS", "Computer",
	} {
		platform, err := ParsePlatform(name)
		require.NoError(t, err)
		require.Equal(t, name, string(platform))
	}

	_, err := ParsePlatform("Dreamcast")
	require.Error(t, err)

	// case-sensitive: no normalization at the boundary
	_, err = ParsePlatform("switch")
	require.Error(t, err)
}

func TestParseESRBRating(t *testing.T) {
	for _, name := range []string{"Everyone", "Everyone10", "Teen", "Mature", "AdultOnly"} {
		rating, err := ParseESRBRating(name)
		require.NoError(t, err)
		require.Equal(t, name, string(rating))
	}

	_, err := ParseESRBRating("PEGI18")
	require.Error(t, err)
}

func TestParseMPAARating(t *testing.T) {
	for _, name := range []string{
		"GeneralAudiences", "ParentalGuidance", "ParentsStronglyCautioned", "Restricted", "AdultsOnly",
	} {
		rating, err := ParseMPAARating(name)
		require.NoError(t, err)
		require.Equal(t, name, string(rating))
	}

	_, err := ParseMPAARating("PG-13")
	require.Error(t, err)
}

func TestParseMovieFormat(t *testing.T) {
	for _, name := range []string{"BluRay", "UltraHD", "DVD", "VHS"} {
		format, err := ParseMovieFormat(name)
		require.NoError(t, err)
		require.Equal(t, name, string(format))
	}

	_, err := ParseMovieFormat("LaserDisc")
	require.Error(t, err)
}
