package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/poiesic/hirank/core"
)

// Key prefixes for different data types
const (
	jobPrefix           = "jobrec"
	jobIDSeq            = "jobseq"
	candidatePrefix     = "candrec"
	candidateIDSeq      = "candseq"
	documentPrefix      = "docrec"
	questionnairePrefix = "qnnrec"
	questionnaireIDSeq  = "qnnseq"
	idealPrefix         = "idealrec"
	scorePrefix         = "scorerec"
	fitnessPrefix       = "fitrec"
)

// makeJobKey generates a key for a job by ID.
func makeJobKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", jobPrefix, id))
}

// makeCandidateKey generates a key for a candidate by ID.
func makeCandidateKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", candidatePrefix, id))
}

// makeDocumentKey generates a key for a document by ID.
func makeDocumentKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", documentPrefix, id))
}

// makeQuestionnaireKey generates a key for a job's questionnaire.
// Questionnaires are keyed by job ID so at most one exists per job.
func makeQuestionnaireKey(jobID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", questionnairePrefix, jobID))
}

// makeIdealKey generates a key for a job's ideal candidate row.
func makeIdealKey(jobID core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", idealPrefix, jobID))
}

// makeScoreKey generates a composite key for a candidate score.
// Format: prefix:jobID:candidateID
func makeScoreKey(jobID, candidateID core.ID) []byte {
	prefix := scorePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 16 // 8 bytes for jobID + 8 bytes for candidateID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(jobID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(candidateID))
	return buf
}

// makePartialScoreKey generates a partial key for scanning a job's scores.
// Format: prefix:jobID
func makePartialScoreKey(jobID core.ID) []byte {
	prefix := scorePrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for jobID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(jobID))
	return buf
}

// makeFitnessKey generates a composite key for a candidate fitness row.
// Format: prefix:jobID:candidateID:questionnaireID
func makeFitnessKey(jobID, candidateID, questionnaireID core.ID) []byte {
	prefix := fitnessPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 24 // 8 bytes each for jobID, candidateID and questionnaireID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(jobID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(candidateID))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(questionnaireID))
	return buf
}

// makePartialFitnessKey generates a partial key for scanning a job's fitness rows.
// Format: prefix:jobID
func makePartialFitnessKey(jobID core.ID) []byte {
	prefix := fitnessPrefix + ":"
	prefixBytes := []byte(prefix)
	prefixSize := len(prefixBytes)
	totalSize := prefixSize + 8 // 8 bytes for jobID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(jobID))
	return buf
}
