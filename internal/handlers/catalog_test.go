package handlers

import (
	"testing"

	"github.com/stretchr/testify/require"

	"kellum/api/internal/models"
)

func TestGameRequestToModel(t *testing.T) {
	req := gameRequest{Title: "Doom", Platform: "Computer", Rating: "Mature", Players: 4}

	game, err := req.toModel("g1")
	require.NoError(t, err)
	require.Equal(t, "g1", game.ID)
	require.Equal(t, models.PlatformComputer, game.Platform)
	require.Equal(t, models.ESRBMature, game.Rating)
	require.Equal(t, 4, game.Players)
}

func TestGameRequestRejectsUnknownEnums(t *testing.T) {
	_, err := gameRequest{Title: "Doom", Platform: "Amiga", Rating: "Mature", Players: 1}.toModel("g1")
	require.Error(t, err)

	_, err = gameRequest{Title: "Doom", Platform: "Computer", Rating: "Gory", Players: 1}.toModel("g1")
	require.Error(t, err)
}

func TestMovieRequestToModel(t *testing.T) {
	req := movieRequest{Title: "Alien", Format: "BluRay", Rating: "Restricted"}

	movie, err := req.toModel("m1")
	require.NoError(t, err)
	require.Equal(t, "m1", movie.ID)
	require.Equal(t, models.FormatBluRay, movie.Format)
	require.Equal(t, models.MPAARestricted, movie.Rating)
}

func TestMovieRequestRejectsUnknownEnums(t *testing.T) {
	_, err := movieRequest{Title: "Alien", Format: "Betamax", Rating: "Restricted"}.toModel("m1")
	require.Error(t, err)

	_, err = movieRequest{Title: "Alien", Format: "DVD", Rating: "X"}.toModel("m1")
	require.Error(t, err)
}
