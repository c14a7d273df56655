package usecase_movie

import (
	"fmt"

	"github.com/humanbelnik/moviehub/internal/model"
)

// Validate is a pure check run before any store call.
// It returns one problem string per violated rule, empty when the movie is valid.
func Validate(m model.Movie) []string {
	var problems []string

	if m.Title == "" {
		problems = append(problems, "title is required")
	}

	if m.ReleaseDate < model.MinReleaseDate || m.ReleaseDate > model.MaxReleaseDate {
		problems = append(problems, fmt.Sprintf("releaseDate must be between %d and %d", model.MinReleaseDate, model.MaxReleaseDate))
	}

	if m.Genre == "" {
		problems = append(problems, "genre is required")
	} else if !model.IsKnownGenre(m.Genre) {
		problems = append(problems, fmt.Sprintf("unknown genre %q", m.Genre))
	}

	if len(m.Actors) < model.MinActors {
		problems = append(problems, fmt.Sprintf("at least %d actors are required", model.MinActors))
	}
	for i, a := range m.Actors {
		if a.ActorName == "" || a.CharacterName == "" {
			problems = append(problems, fmt.Sprintf("actor %d must have actorName and characterName", i))
		}
	}

	return problems
}
