package domain

// States lists the state codes accepted on venue and artist forms.
var States = []string{
	"AL", "AK", "AZ", "AR", "CA", "CO", "CT", "DE", "DC", "FL",
	"GA", "HI", "ID", "IL", "IN", "IA", "KS", "KY", "LA", "ME",
	"MT", "NE", "NV", "NH", "NJ", "NM", "NY", "NC", "ND", "OH",
	"OK", "OR", "MD", "MA", "MI", "MN", "MS", "MO", "PA", "RI",
	"SC", "SD", "TN", "TX", "UT", "VT", "VA", "WA", "WV", "WI",
	"WY",
}

// Genres lists the genres accepted on venue and artist forms.
var Genres = []string{
	"Alternative", "Blues", "Classical", "Country", "Electronic",
	"Folk", "Funk", "Hip-Hop", "Heavy Metal", "Instrumental",
	"Jazz", "Musical Theatre", "Pop", "Punk", "R&B",
	"Reggae", "Rock n Roll", "Soul", "Other",
}

// IsState reports whether code is one of States.
func IsState(code string) bool {
	return contains(States, code)
}

// IsGenre reports whether name is one of Genres.
func IsGenre(name string) bool {
	return contains(Genres, name)
}

func contains(list []string, s string) bool {
	for _, v := range list {
		if v == s {
			return true
		}
	}
	return false
}
