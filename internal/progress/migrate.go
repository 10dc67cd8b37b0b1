package progress

import "github.com/example/kanastudy/pkg/models"

// upgradeProgress lifts persisted character records into the current schema.
// Records written before SRS scheduling existed carry no srs block; they get
// the default state so the scheduler can pick them up. Pure, so the upgrade
// is testable without a storage backend.
func upgradeProgress(progress map[string]*models.CharacterProgress) map[string]*models.CharacterProgress {
	if progress == nil {
		return map[string]*models.CharacterProgress{}
	}
	for _, record := range progress {
		if record == nil {
			continue
		}
		if record.SRS == nil {
			record.SRS = models.DefaultSRS()
		}
		if record.History == nil {
			record.History = []models.AttemptRecord{}
		}
	}
	return progress
}

// upgradeWordProgress does the same for word records; only the breakdown map
// needs backfilling.
func upgradeWordProgress(words map[string]*models.WordProgress) map[string]*models.WordProgress {
	if words == nil {
		return map[string]*models.WordProgress{}
	}
	for _, record := range words {
		if record == nil {
			continue
		}
		if record.CharacterBreakdown == nil {
			record.CharacterBreakdown = map[string]*models.CharacterTally{}
		}
	}
	return words
}
