package domain

import "time"

type MuscleGroup struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

type Exercise struct {
	ID             string
	Name           string
	Description    string
	MuscleGroupIDs []string
	CreatedAt      time.Time
}
