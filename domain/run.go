package domain

import "time"

// Run is the record of a finished run.
type Run struct {
	ID            string    `bson:"_id" json:"id"`
	Score         int       `bson:"score" json:"score"`
	Duration      float64   `bson:"duration" json:"duration"` // Simulated seconds played.
	ClonesSpawned int       `bson:"clonesSpawned" json:"clonesSpawned"`
	EndedAt       time.Time `bson:"endedAt" json:"endedAt"`
}
