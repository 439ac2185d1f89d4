// Copyright 2026 Poiesic Systems
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package storage

import (
	"fmt"

	"github.com/poiesic/hirank/core"
)

// decodeErr tags decode failures so callers can test with errors.Is.
func decodeErr(err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%w: %w", ErrSerializationFailed, err)
}

// MarshalID serializes an ID to bytes.
func MarshalID(id core.ID) []byte {
	buf := make([]byte, core.IDMUS.Size(id))
	core.IDMUS.Marshal(id, buf)
	return buf
}

// UnmarshalID deserializes an ID from bytes.
func UnmarshalID(data []byte) (core.ID, error) {
	var id core.ID
	id, _, err := core.IDMUS.Unmarshal(data)
	return id, decodeErr(err)
}

// MarshalJob serializes a Job to bytes.
func MarshalJob(job *core.Job) []byte {
	buf := make([]byte, core.JobMUS.Size(*job))
	core.JobMUS.Marshal(*job, buf)
	return buf
}

// UnmarshalJob deserializes a Job from bytes.
func UnmarshalJob(data []byte) (*core.Job, error) {
	job, _, err := core.JobMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &job, nil
}

// MarshalCandidate serializes a Candidate to bytes.
func MarshalCandidate(candidate *core.Candidate) []byte {
	buf := make([]byte, core.CandidateMUS.Size(*candidate))
	core.CandidateMUS.Marshal(*candidate, buf)
	return buf
}

// UnmarshalCandidate deserializes a Candidate from bytes.
func UnmarshalCandidate(data []byte) (*core.Candidate, error) {
	candidate, _, err := core.CandidateMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &candidate, nil
}

// MarshalDocument serializes a Document to bytes.
func MarshalDocument(doc *core.Document) []byte {
	buf := make([]byte, core.DocumentMUS.Size(*doc))
	core.DocumentMUS.Marshal(*doc, buf)
	return buf
}

// UnmarshalDocument deserializes a Document from bytes.
func UnmarshalDocument(data []byte) (*core.Document, error) {
	doc, _, err := core.DocumentMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &doc, nil
}

// MarshalQuestionnaire serializes a Questionnaire to bytes.
func MarshalQuestionnaire(questionnaire *core.Questionnaire) []byte {
	buf := make([]byte, core.QuestionnaireMUS.Size(*questionnaire))
	core.QuestionnaireMUS.Marshal(*questionnaire, buf)
	return buf
}

// UnmarshalQuestionnaire deserializes a Questionnaire from bytes.
func UnmarshalQuestionnaire(data []byte) (*core.Questionnaire, error) {
	questionnaire, _, err := core.QuestionnaireMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &questionnaire, nil
}

// MarshalIdealCandidate serializes an IdealCandidate to bytes.
func MarshalIdealCandidate(ideal *core.IdealCandidate) []byte {
	buf := make([]byte, core.IdealCandidateMUS.Size(*ideal))
	core.IdealCandidateMUS.Marshal(*ideal, buf)
	return buf
}

// UnmarshalIdealCandidate deserializes an IdealCandidate from bytes.
func UnmarshalIdealCandidate(data []byte) (*core.IdealCandidate, error) {
	ideal, _, err := core.IdealCandidateMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &ideal, nil
}

// MarshalCandidateScore serializes a CandidateScore to bytes.
func MarshalCandidateScore(score *core.CandidateScore) []byte {
	buf := make([]byte, core.CandidateScoreMUS.Size(*score))
	core.CandidateScoreMUS.Marshal(*score, buf)
	return buf
}

// UnmarshalCandidateScore deserializes a CandidateScore from bytes.
func UnmarshalCandidateScore(data []byte) (*core.CandidateScore, error) {
	score, _, err := core.CandidateScoreMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &score, nil
}

// MarshalCandidateFitness serializes a CandidateFitness to bytes.
func MarshalCandidateFitness(fitness *core.CandidateFitness) []byte {
	buf := make([]byte, core.CandidateFitnessMUS.Size(*fitness))
	core.CandidateFitnessMUS.Marshal(*fitness, buf)
	return buf
}

// UnmarshalCandidateFitness deserializes a CandidateFitness from bytes.
func UnmarshalCandidateFitness(data []byte) (*core.CandidateFitness, error) {
	fitness, _, err := core.CandidateFitnessMUS.Unmarshal(data)
	if err != nil {
		return nil, decodeErr(err)
	}
	return &fitness, nil
}
