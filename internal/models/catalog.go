package models

import (
	"fmt"
	"time"
)

type Platform string

const (
	PlatformPlaystation1 Platform = "Playstation1"
	PlatformPlaystation2 Platform = "Playstation2"
	PlatformPlaystation3 Platform = "Playstation3"
	PlatformPlaystation4 Platform = "Playstation4"
	PlatformPlaystation5 Platform = "Playstation5"
	PlatformNES          Platform = "NES"
	PlatformSNES         Platform = "SNES"
	PlatformN64          Platform = "N64"
	PlatformGameCube     Platform = "GameCube"
	PlatformWii          Platform = "Wii"
	PlatformWiiU         Platform = "WiiU"
	PlatformSwitch       Platform = "Switch"
	PlatformSwitch2      Platform = "Switch2"
	PlatformNintendoDS   Platform = "NintendoDS"
	PlatformNintendo3DS  Platform = "Nintendo3DS"
	PlatformComputer     Platform = "Computer"
)

var platforms = map[string]Platform{
	string(PlatformPlaystation1): PlatformPlaystation1,
	string(PlatformPlaystation2): PlatformPlaystation2,
	string(PlatformPlaystation3): PlatformPlaystation3,
	string(PlatformPlaystation4): PlatformPlaystation4,
	string(PlatformPlaystation5): PlatformPlaystation5,
	string(PlatformNES):          PlatformNES,
	string(PlatformSNES):         PlatformSNES,
	string(PlatformN64):          PlatformN64,
	string(PlatformGameCube):     PlatformGameCube,
	string(PlatformWii):          PlatformWii,
	string(PlatformWiiU):         PlatformWiiU,
	string(PlatformSwitch):       PlatformSwitch,
	string(PlatformSwitch2):      PlatformSwitch2,
	string(PlatformNintendoDS):   PlatformNintendoDS,
	string(PlatformNintendo3DS):  PlatformNintendo3DS,
	string(PlatformComputer):     PlatformComputer,
}

// ParsePlatform validates an inbound platform string. Unknown values are
// rejected at the boundary rather than stored.
func ParsePlatform(s string) (Platform, error) {
	if p, ok := platforms[s]; ok {
		return p, nil
	}
	return "", fmt.Errorf("unknown platform %q", s)
}

type ESRBRating string

const (
	ESRBEveryone   ESRBRating = "Everyone"
	ESRBEveryone10 ESRBRating = "Everyone10"
	ESRBTeen       ESRBRating = "Teen"
	ESRBMature     ESRBRating = "Mature"
	ESRBAdultOnly  ESRBRating = "AdultOnly"
)

var esrbRatings = map[string]ESRBRating{
	string(ESRBEveryone):   ESRBEveryone,
	string(ESRBEveryone10): ESRBEveryone10,
	string(ESRBTeen):       ESRBTeen,
	string(ESRBMature):     ESRBMature,
	string(ESRBAdultOnly):  ESRBAdultOnly,
}

func ParseESRBRating(s string) (ESRBRating, error) {
	if r, ok := esrbRatings[s]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown ESRB rating %q", s)
}

type MPAARating string

const (
	MPAAGeneralAudiences         MPAARating = "GeneralAudiences"
	MPAAParentalGuidance         MPAARating = "ParentalGuidance"
	MPAAParentsStronglyCautioned MPAARating = "ParentsStronglyCautioned"
	MPAARestricted               MPAARating = "Restricted"
	MPAAAdultsOnly               MPAARating = "AdultsOnly"
)

var mpaaRatings = map[string]MPAARating{
	string(MPAAGeneralAudiences):         MPAAGeneralAudiences,
	string(MPAAParentalGuidance):         MPAAParentalGuidance,
	string(MPAAParentsStronglyCautioned): MPAAParentsStronglyCautioned,
	string(MPAARestricted):               MPAARestricted,
	string(MPAAAdultsOnly):               MPAAAdultsOnly,
}

func ParseMPAARating(s string) (MPAARating, error) {
	if r, ok := mpaaRatings[s]; ok {
		return r, nil
	}
	return "", fmt.Errorf("unknown MPAA rating %q", s)
}

type MovieFormat string

const (
	FormatBluRay  MovieFormat = "BluRay"
	FormatUltraHD MovieFormat = "UltraHD"
	FormatDVD     MovieFormat = "DVD"
	FormatVHS     MovieFormat = "VHS"
)

var movieFormats = map[string]MovieFormat{
	string(FormatBluRay):  FormatBluRay,
	string(FormatUltraHD): FormatUltraHD,
	string(FormatDVD):     FormatDVD,
	string(FormatVHS):     FormatVHS,
}

func ParseMovieFormat(s string) (MovieFormat, error) {
	if f, ok := movieFormats[s]; ok {
		return f, nil
	}
	return "", fmt.Errorf("unknown movie format %q", s)
}

type Game struct {
	ID        string
	Title     string
	Platform  Platform
	Rating    ESRBRating
	Players   int
	CoverKey  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}

type Movie struct {
	ID        string
	Title     string
	Format    MovieFormat
	Rating    MPAARating
	CoverKey  *string
	CreatedAt time.Time
	UpdatedAt time.Time
}
