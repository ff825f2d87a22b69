package schema

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type Venue struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name    string `gorm:"size:120;not null"`
	City    string `gorm:"size:120;not null"`
	State   string `gorm:"size:120;not null"`
	Address string `gorm:"size:120;not null"`
	Phone   string `gorm:"size:120;not null"`

	// Comma joined tag list, use EncodeGenres/DecodeGenres at the api boundary.
	Genres string `gorm:"size:120"`

	Website            string `gorm:"size:120"`
	SeekingTalent      bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`

	Shows []Show `gorm:"foreignKey:VenueId;constraint:OnDelete:CASCADE"`
}

type Artist struct {
	Id uuid.UUID `gorm:"type:uuid;primaryKey"`

	Name  string `gorm:"size:120;not null"`
	City  string `gorm:"size:120;not null"`
	State string `gorm:"size:120;not null"`
	Phone string `gorm:"size:120;not null"`

	Genres string `gorm:"size:120"`

	Website            string `gorm:"size:120"`
	SeekingVenue       bool   `gorm:"not null;default:false"`
	SeekingDescription string `gorm:"size:120"`
	ImageLink          string `gorm:"size:500"`
	FacebookLink       string `gorm:"size:120"`

	Shows []Show `gorm:"foreignKey:ArtistId;constraint:OnDelete:CASCADE"`
}

// A show is uniquely the (artist, venue, start time) triple, so the same
// artist and venue may be linked more than once only at different times.
type Show struct {
	ArtistId  uuid.UUID `gorm:"type:uuid;primaryKey"`
	VenueId   uuid.UUID `gorm:"type:uuid;primaryKey"`
	StartTime time.Time `gorm:"primaryKey"`

	Artist *Artist `gorm:"foreignKey:ArtistId"`
	Venue  *Venue  `gorm:"foreignKey:VenueId"`
}

// Genres are persisted as a single comma joined string. Embedded commas in
// tags are not escaped, this is a limitation of the stored format.
func EncodeGenres(genres []string) string {
	return strings.Join(genres, ",")
}

func DecodeGenres(genres string) []string {
	if genres == "" {
		return []string{}
	}
	return strings.Split(genres, ",")
}
