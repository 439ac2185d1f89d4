package session

import (
	"context"
	"errors"
	"slices"
	"strings"
	"sync"

	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/profile"
	"github.com/poiesic/hirank/storage"
)

// Session is the per-job aggregate of questionnaire, ideal candidate,
// candidate scores and fitness rows. All state is cached in memory, but
// every mutation persists before the cache changes, so the cache can be
// discarded at any point without losing writes.
type Session struct {
	manager *Manager
	job     *core.Job

	mu            sync.Mutex
	questionnaire *core.Questionnaire
	ideal         *core.IdealCandidate
	scores        []*core.CandidateScore
	fitness       []*core.CandidateFitness
}

// ItemSelector picks one questionnaire item, by criterion text or by index.
// Exactly one of the two must be set.
type ItemSelector struct {
	Criterion *string
	Index     *int
}

// ByCriterion selects an item by its exact criterion text.
func ByCriterion(text string) ItemSelector {
	return ItemSelector{Criterion: &text}
}

// ByIndex selects an item by its position in the questionnaire.
func ByIndex(index int) ItemSelector {
	return ItemSelector{Index: &index}
}

// Job returns the job this session is bound to.
func (s *Session) Job() *core.Job {
	return s.job
}

// Questionnaire returns the cached questionnaire.
func (s *Session) Questionnaire() *core.Questionnaire {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.questionnaire
}

// SetQuestionnaire replaces the job's questionnaire. The questionnaire's job
// id must match the session's job.
func (s *Session) SetQuestionnaire(ctx context.Context, questionnaire *core.Questionnaire) error {
	if questionnaire == nil || questionnaire.JobId != s.job.Id {
		return ErrJobMismatch
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if questionnaire.Id == 0 {
		questionnaire.Id = s.questionnaire.Id
	}

	stored, err := s.manager.stores.Profiles.UpsertQuestionnaire(ctx, questionnaire)
	if err != nil {
		return err
	}
	s.questionnaire = stored
	return nil
}

// ClearQuestionnaire empties the item list. The row itself stays; a job's
// questionnaire row always exists once the session has been initialized.
func (s *Session) ClearQuestionnaire(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	cleared := &core.Questionnaire{
		Id:    s.questionnaire.Id,
		JobId: s.job.Id,
	}
	stored, err := s.manager.stores.Profiles.UpsertQuestionnaire(ctx, cleared)
	if err != nil {
		return err
	}
	s.questionnaire = stored
	return nil
}

// AddQuestionnaireItem appends one item. The criterion text must be unique
// within the questionnaire.
func (s *Session) AddQuestionnaireItem(ctx context.Context, item core.QuestionnaireItem) error {
	if err := core.ValidateQuestionnaireItem(&item); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.questionnaire.HasCriterion(item.Criterion) {
		return ErrDuplicateCriterion
	}

	updated := &core.Questionnaire{
		Id:    s.questionnaire.Id,
		JobId: s.job.Id,
		Items: append(slices.Clone(s.questionnaire.Items), item),
	}
	stored, err := s.manager.stores.Profiles.UpsertQuestionnaire(ctx, updated)
	if err != nil {
		return err
	}
	s.questionnaire = stored
	return nil
}

// RemoveQuestionnaireItem removes the item picked by selector.
func (s *Session) RemoveQuestionnaireItem(ctx context.Context, selector ItemSelector) error {
	if (selector.Criterion == nil) == (selector.Index == nil) {
		return ErrAmbiguousSelector
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	index := -1
	if selector.Index != nil {
		if *selector.Index < 0 || *selector.Index >= len(s.questionnaire.Items) {
			return ErrIndexOutOfRange
		}
		index = *selector.Index
	} else {
		for i, item := range s.questionnaire.Items {
			if item.Criterion == *selector.Criterion {
				index = i
				break
			}
		}
		if index < 0 {
			return ErrItemNotFound
		}
	}

	items := slices.Clone(s.questionnaire.Items)
	items = append(items[:index], items[index+1:]...)

	updated := &core.Questionnaire{
		Id:    s.questionnaire.Id,
		JobId: s.job.Id,
		Items: items,
	}
	stored, err := s.manager.stores.Profiles.UpsertQuestionnaire(ctx, updated)
	if err != nil {
		return err
	}
	s.questionnaire = stored
	return nil
}

// GenerateQuestionnaire derives a questionnaire from the job description and
// merges it with the cached one when useExisting is set. See the profile
// package for the merge and exact-count contracts.
func (s *Session) GenerateQuestionnaire(ctx context.Context, targetCount int, exact, useExisting bool) (*core.Questionnaire, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	existing := s.questionnaire
	if !useExisting {
		existing = &core.Questionnaire{Id: s.questionnaire.Id, JobId: s.job.Id}
	}

	generated, err := s.manager.generator.GenerateQuestionnaire(ctx, s.job, existing, targetCount, exact)
	if err != nil {
		return nil, err
	}
	s.questionnaire = generated
	return generated, nil
}

// IdealCandidate returns the cached ideal-candidate row. An empty resume
// means none has been generated yet.
func (s *Session) IdealCandidate() *core.IdealCandidate {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.ideal
}

// SetIdealCandidate replaces the job's ideal resume text. Blank text is
// rejected; use DeleteIdealCandidate to reset.
func (s *Session) SetIdealCandidate(ctx context.Context, resume string) error {
	if strings.TrimSpace(resume) == "" {
		return profile.ErrEmptyResume
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.manager.stores.Profiles.UpsertIdealCandidate(ctx, &core.IdealCandidate{
		JobId:  s.job.Id,
		Resume: resume,
	})
	if err != nil {
		return err
	}
	s.ideal = stored
	return nil
}

// DeleteIdealCandidate resets the ideal resume to "not generated". The row
// stays, mirroring ClearQuestionnaire.
func (s *Session) DeleteIdealCandidate(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	stored, err := s.manager.stores.Profiles.UpsertIdealCandidate(ctx, &core.IdealCandidate{JobId: s.job.Id})
	if err != nil {
		return err
	}
	s.ideal = stored
	return nil
}

// GenerateIdealCandidate derives a fresh ideal resume from the job
// description, overwriting any existing one.
func (s *Session) GenerateIdealCandidate(ctx context.Context) (*core.IdealCandidate, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	generated, err := s.manager.generator.GenerateIdealResume(ctx, s.job)
	if err != nil {
		return nil, err
	}
	s.ideal = generated
	return generated, nil
}

// RankCandidates ranks every candidate with an embedded CV against the job
// description and replaces the job's stored scores wholesale. Ranking is
// never incremental: the new set reflects the full current corpus.
func (s *Session) RankCandidates(ctx context.Context, topK int) ([]*core.CandidateScore, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	ranked, err := s.manager.ranker.RankCandidates(ctx, s.job.Description, topK)
	if err != nil {
		return nil, err
	}
	for _, score := range ranked {
		score.JobId = s.job.Id
	}

	if err := s.manager.stores.Scores.ReplaceScores(ctx, s.job.Id, ranked); err != nil {
		return nil, err
	}
	s.scores = ranked
	return ranked, nil
}

// CandidateScores returns the cached score rows, best first.
func (s *Session) CandidateScores() []*core.CandidateScore {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.scores
}

// UpdateCandidateScores replaces the job's score rows with the given list.
func (s *Session) UpdateCandidateScores(ctx context.Context, scores []*core.CandidateScore) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, score := range scores {
		score.JobId = s.job.Id
	}
	if err := s.manager.stores.Scores.ReplaceScores(ctx, s.job.Id, scores); err != nil {
		return err
	}
	s.scores = slices.Clone(scores)
	s.sortScoresLocked()
	return nil
}

// AddCandidateScore upserts one candidate's score and re-sorts the cache so
// it stays best first.
func (s *Session) AddCandidateScore(ctx context.Context, candidateID core.ID, score float64) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertScoreLocked(ctx, candidateID, score)
}

// DeleteCandidateScore removes one candidate's score row.
func (s *Session) DeleteCandidateScore(ctx context.Context, candidateID core.ID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.manager.stores.Scores.DeleteScore(ctx, s.job.Id, candidateID); err != nil {
		return err
	}
	s.scores = slices.DeleteFunc(s.scores, func(score *core.CandidateScore) bool {
		return score.CandidateId == candidateID
	})
	return nil
}

// FitnessRows returns the cached fitness rows.
func (s *Session) FitnessRows() []*core.CandidateFitness {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.fitness
}

// GenerateScores judges candidates against the questionnaire and persists a
// fitness row per candidate. With no explicit ids, every candidate currently
// holding a score row is scored. The weighted fitness aggregate also
// replaces the candidate's coarse score, so the ranking reflects the finer
// judgment afterwards. Candidates without an extracted CV are skipped.
func (s *Session) GenerateScores(ctx context.Context, candidateIDs ...core.ID) ([]*core.CandidateFitness, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.questionnaire.Items) == 0 {
		return nil, ErrEmptyQuestionnaire
	}

	if len(candidateIDs) == 0 {
		for _, score := range s.scores {
			candidateIDs = append(candidateIDs, score.CandidateId)
		}
	}

	var generated []*core.CandidateFitness
	for _, candidateID := range candidateIDs {
		candidate, err := s.manager.stores.Candidates.GetCandidate(ctx, candidateID)
		if err != nil {
			return generated, err
		}
		if candidate.CVDocumentId == 0 {
			s.manager.logger.Warn("candidate has no CV document, skipping", "candidate", candidateID)
			continue
		}

		doc, err := s.manager.stores.Documents.GetDocument(ctx, candidate.CVDocumentId)
		if err != nil {
			if errors.Is(err, storage.ErrNotFound) {
				s.manager.logger.Warn("CV document missing, skipping candidate", "candidate", candidateID)
				continue
			}
			return generated, err
		}

		values, aggregate, err := s.manager.scorer.Score(ctx, doc.Contents, s.questionnaire)
		if err != nil {
			return generated, err
		}

		fitness := &core.CandidateFitness{
			CandidateId:     candidateID,
			JobId:           s.job.Id,
			QuestionnaireId: s.questionnaire.Id,
			Scores:          values,
			Fitness:         aggregate,
		}
		if err := s.manager.stores.Scores.UpsertFitness(ctx, fitness); err != nil {
			return generated, err
		}
		s.cacheFitnessLocked(fitness)
		generated = append(generated, fitness)

		// Reconcile the coarse ranking with the finer judgment.
		if err := s.upsertScoreLocked(ctx, candidateID, aggregate); err != nil {
			return generated, err
		}
	}

	return generated, nil
}

// upsertScoreLocked writes one score row through to storage and patches the
// cache, keeping it sorted descending. Caller must hold s.mu.
func (s *Session) upsertScoreLocked(ctx context.Context, candidateID core.ID, score float64) error {
	row := &core.CandidateScore{
		JobId:       s.job.Id,
		CandidateId: candidateID,
		Score:       score,
	}
	if err := s.manager.stores.Scores.UpsertScore(ctx, row); err != nil {
		return err
	}

	replaced := false
	for i, cached := range s.scores {
		if cached.CandidateId == candidateID {
			s.scores[i] = row
			replaced = true
			break
		}
	}
	if !replaced {
		s.scores = append(s.scores, row)
	}
	s.sortScoresLocked()
	return nil
}

// cacheFitnessLocked replaces or appends one fitness row in the cache.
// Caller must hold s.mu.
func (s *Session) cacheFitnessLocked(fitness *core.CandidateFitness) {
	for i, cached := range s.fitness {
		if cached.CandidateId == fitness.CandidateId && cached.QuestionnaireId == fitness.QuestionnaireId {
			s.fitness[i] = fitness
			return
		}
	}
	s.fitness = append(s.fitness, fitness)
}

// sortScoresLocked orders the score cache best first with a deterministic
// tie-break. Caller must hold s.mu.
func (s *Session) sortScoresLocked() {
	slices.SortStableFunc(s.scores, func(a, b *core.CandidateScore) int {
		if a.Score > b.Score {
			return -1
		}
		if a.Score < b.Score {
			return 1
		}
		if a.CandidateId < b.CandidateId {
			return -1
		}
		if a.CandidateId > b.CandidateId {
			return 1
		}
		return 0
	})
}
