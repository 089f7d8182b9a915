// Package catalogimport loads a JSON seed of the catalog through the
// services, so seeded data passes the same checks as API writes.
package catalogimport

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
)

// Seed records refer to each other by Key, a name local to the file. The
// store assigns the real ids during import.
type Seed struct {
	Users         []SeedUser         `json:"users"`
	Films         []SeedFilm         `json:"films"`
	Reviews       []SeedReview       `json:"reviews"`
	FavoriteLists []SeedFavoriteList `json:"favorite_lists"`
}

type SeedUser struct {
	Key   string `json:"key"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type SeedFilm struct {
	Key         string  `json:"key"`
	Title       string  `json:"title"`
	Director    string  `json:"director"`
	ReleaseYear int     `json:"release_year"`
	Synopsis    string  `json:"synopsis"`
	Duration    int     `json:"duration"`
	Genre       *string `json:"genre,omitempty"`
}

type SeedReview struct {
	User    string `json:"user"`
	Film    string `json:"film"`
	Rating  int    `json:"rating"`
	Comment string `json:"comment"`
}

type SeedFavoriteList struct {
	User  string   `json:"user"`
	Name  string   `json:"name"`
	Films []string `json:"films"`
}

func ReadSeed(r io.Reader) (*Seed, error) {
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	var s Seed
	if err := dec.Decode(&s); err != nil {
		return nil, fmt.Errorf("decode seed: %w", err)
	}
	return &s, nil
}

func ReadSeedFile(path string) (*Seed, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open seed: %w", err)
	}
	defer f.Close()
	return ReadSeed(f)
}

// Check verifies that keys are unique and that every cross reference names
// a record defined in the same seed.
func (s *Seed) Check() error {
	users := make(map[string]bool, len(s.Users))
	for i, u := range s.Users {
		if u.Key == "" {
			return fmt.Errorf("users[%d]: key is required", i)
		}
		if users[u.Key] {
			return fmt.Errorf("users[%d]: duplicate key %q", i, u.Key)
		}
		users[u.Key] = true
	}
	films := make(map[string]bool, len(s.Films))
	for i, f := range s.Films {
		if f.Key == "" {
			return fmt.Errorf("films[%d]: key is required", i)
		}
		if films[f.Key] {
			return fmt.Errorf("films[%d]: duplicate key %q", i, f.Key)
		}
		films[f.Key] = true
	}
	for i, r := range s.Reviews {
		if !users[r.User] {
			return fmt.Errorf("reviews[%d]: unknown user %q", i, r.User)
		}
		if !films[r.Film] {
			return fmt.Errorf("reviews[%d]: unknown film %q", i, r.Film)
		}
	}
	for i, l := range s.FavoriteLists {
		if !users[l.User] {
			return fmt.Errorf("favorite_lists[%d]: unknown user %q", i, l.User)
		}
		for _, key := range l.Films {
			if !films[key] {
				return fmt.Errorf("favorite_lists[%d]: unknown film %q", i, key)
			}
		}
	}
	return nil
}
