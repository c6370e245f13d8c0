package questionnaires

import (
	"vitalab-service/internal/app/models"
	"vitalab-service/internal/pkg/constvars"
)

// tagEngine accumulates the tag names activated by selected answers and
// decides per-question and per-option visibility. At most one record exists
// per real question id; tags from previously completed sessions live under
// the pseudo id constvars.SubmittedTagsQuestionID.
type tagEngine struct {
	records []*models.TagRecord
}

func newTagEngine(submittedTags []string) *tagEngine {
	engine := &tagEngine{}
	if len(submittedTags) > 0 {
		engine.records = append(engine.records, &models.TagRecord{
			QuestionID: constvars.SubmittedTagsQuestionID,
			Tags:       dedupeTags(submittedTags),
		})
	}
	return engine
}

func (te *tagEngine) recordFor(questionID string) *models.TagRecord {
	for _, record := range te.records {
		if record.QuestionID == questionID {
			return record
		}
	}
	return nil
}

// Activate merges the answer's tags into the question's record, creating it
// on first use. Checkbox questions call this repeatedly and the record is
// mutated in place rather than replaced.
func (te *tagEngine) Activate(questionID string, tags []string) {
	if len(tags) == 0 {
		return
	}
	record := te.recordFor(questionID)
	if record == nil {
		record = &models.TagRecord{QuestionID: questionID}
		te.records = append(te.records, record)
	}
	record.Tags = dedupeTags(append(record.Tags, tags...))
}

// Deactivate removes the tag names from the question's record and from the
// submitted-tags record, so a tag earned in a prior completed session is
// retracted when the user changes the answer that produced it.
func (te *tagEngine) Deactivate(questionID string, tags []string) {
	if len(tags) == 0 {
		return
	}
	te.removeFromRecord(questionID, tags)
	te.removeFromRecord(constvars.SubmittedTagsQuestionID, tags)
}

func (te *tagEngine) removeFromRecord(questionID string, tags []string) {
	record := te.recordFor(questionID)
	if record == nil {
		return
	}
	remove := make(map[string]bool, len(tags))
	for _, tag := range tags {
		remove[tag] = true
	}
	kept := record.Tags[:0]
	for _, tag := range record.Tags {
		if !remove[tag] {
			kept = append(kept, tag)
		}
	}
	record.Tags = kept

	if len(record.Tags) == 0 {
		for i, r := range te.records {
			if r == record {
				te.records = append(te.records[:i], te.records[i+1:]...)
				break
			}
		}
	}
}

func (te *tagEngine) activeTags() map[string]bool {
	active := make(map[string]bool)
	for _, record := range te.records {
		for _, tag := range record.Tags {
			active[tag] = true
		}
	}
	return active
}

// ActiveTagNames returns every active tag name, de-duplicated, for
// persisting as submitted tags on completion.
func (te *tagEngine) ActiveTagNames() []string {
	var names []string
	for _, record := range te.records {
		names = append(names, record.Tags...)
	}
	return dedupeTags(names)
}

// IsQuestionReachable reports whether the question's tag gate is satisfied.
// A question without tags is always reachable, so malformed or absent tag
// data degrades to "shown".
func (te *tagEngine) IsQuestionReachable(question *models.Question) bool {
	if question == nil {
		return false
	}
	if len(question.Tag) == 0 {
		return true
	}
	active := te.activeTags()
	for _, tag := range question.Tag {
		if active[tag] {
			return true
		}
	}
	return false
}

// AnnotateOptions recomputes ShowOption on every answer of the question.
// Options are only flagged, never removed, so a later deselection elsewhere
// restores their visibility.
func (te *tagEngine) AnnotateOptions(question *models.Question) {
	active := te.activeTags()
	for _, answer := range question.Answers {
		answer.ShowOption = true
		if len(answer.TagRender) == 0 {
			continue
		}
		answer.ShowOption = false
		for _, tag := range answer.TagRender {
			if active[tag] {
				answer.ShowOption = true
				break
			}
		}
	}
}

func dedupeTags(tags []string) []string {
	seen := make(map[string]bool, len(tags))
	result := make([]string, 0, len(tags))
	for _, tag := range tags {
		if tag == "" || seen[tag] {
			continue
		}
		seen[tag] = true
		result = append(result, tag)
	}
	return result
}
