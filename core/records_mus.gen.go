// Code generated by musgen-go. DO NOT EDIT.

package core

import (
	"github.com/mus-format/mus-go/ord"
	"github.com/mus-format/mus-go/raw"
	"github.com/mus-format/mus-go/varint"
)

var (
	slice1er5O89cYzTtVag6uT2ciQΞΞ = ord.NewSliceSer[float32](varint.Float32)
	sliceLKJq6x7sT0bmiajLHGn7jQΞΞ = ord.NewSliceSer[QuestionnaireItem](QuestionnaireItemMUS)
	sliceM4QHgΔTeKd6RBJbvu6DUgwΞΞ = ord.NewSliceSer[float64](varint.Float64)
	sliceho5WNyq8H0bpTExDOfP4ogΞΞ = ord.NewSliceSer[DocumentChunk](DocumentChunkMUS)
)

var IDMUS = iDMUS{}

type iDMUS struct{}

func (s iDMUS) Marshal(v ID, bs []byte) (n int) {
	return varint.Uint64.Marshal(uint64(v), bs)
}

func (s iDMUS) Unmarshal(bs []byte) (v ID, n int, err error) {
	tmp, n, err := varint.Uint64.Unmarshal(bs)
	if err != nil {
		return
	}
	v = ID(tmp)
	return
}

func (s iDMUS) Size(v ID) (size int) {
	return varint.Uint64.Size(uint64(v))
}

func (s iDMUS) Skip(bs []byte) (n int, err error) {
	return varint.Uint64.Skip(bs)
}

var ImportanceMUS = importanceMUS{}

type importanceMUS struct{}

func (s importanceMUS) Marshal(v Importance, bs []byte) (n int) {
	return varint.Int.Marshal(int(v), bs)
}

func (s importanceMUS) Unmarshal(bs []byte) (v Importance, n int, err error) {
	tmp, n, err := varint.Int.Unmarshal(bs)
	if err != nil {
		return
	}
	v = Importance(tmp)
	return
}

func (s importanceMUS) Size(v Importance) (size int) {
	return varint.Int.Size(int(v))
}

func (s importanceMUS) Skip(bs []byte) (n int, err error) {
	return varint.Int.Skip(bs)
}

var JobMUS = jobMUS{}

type jobMUS struct{}

func (s jobMUS) Marshal(v Job, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Title, bs[n:])
	n += ord.String.Marshal(v.Company, bs[n:])
	n += ord.String.Marshal(v.Description, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s jobMUS) Unmarshal(bs []byte) (v Job, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Title, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Company, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Description, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s jobMUS) Size(v Job) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Title)
	size += ord.String.Size(v.Company)
	size += ord.String.Size(v.Description)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s jobMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CandidateMUS = candidateMUS{}

type candidateMUS struct{}

func (s candidateMUS) Marshal(v Candidate, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Name, bs[n:])
	n += IDMUS.Marshal(v.CVDocumentId, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateMUS) Unmarshal(bs []byte) (v Candidate, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Name, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.CVDocumentId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateMUS) Size(v Candidate) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Name)
	size += IDMUS.Size(v.CVDocumentId)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var DocumentChunkMUS = documentChunkMUS{}

type documentChunkMUS struct{}

func (s documentChunkMUS) Marshal(v DocumentChunk, bs []byte) (n int) {
	n = ord.String.Marshal(v.Text, bs)
	return n + slice1er5O89cYzTtVag6uT2ciQΞΞ.Marshal(v.Vector, bs[n:])
}

func (s documentChunkMUS) Unmarshal(bs []byte) (v DocumentChunk, n int, err error) {
	v.Text, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Vector, n1, err = slice1er5O89cYzTtVag6uT2ciQΞΞ.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentChunkMUS) Size(v DocumentChunk) (size int) {
	size = ord.String.Size(v.Text)
	return size + slice1er5O89cYzTtVag6uT2ciQΞΞ.Size(v.Vector)
}

func (s documentChunkMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = slice1er5O89cYzTtVag6uT2ciQΞΞ.Skip(bs[n:])
	n += n1
	return
}

var DocumentMUS = documentMUS{}

type documentMUS struct{}

func (s documentMUS) Marshal(v Document, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += ord.String.Marshal(v.Contents, bs[n:])
	n += sliceho5WNyq8H0bpTExDOfP4ogΞΞ.Marshal(v.Chunks, bs[n:])
	n += slice1er5O89cYzTtVag6uT2ciQΞΞ.Marshal(v.Vector, bs[n:])
	n += raw.TimeUnixMicro.Marshal(v.InsertedAt, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s documentMUS) Unmarshal(bs []byte) (v Document, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Contents, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Chunks, n1, err = sliceho5WNyq8H0bpTExDOfP4ogΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Vector, n1, err = slice1er5O89cYzTtVag6uT2ciQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.InsertedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s documentMUS) Size(v Document) (size int) {
	size = IDMUS.Size(v.Id)
	size += ord.String.Size(v.Contents)
	size += sliceho5WNyq8H0bpTExDOfP4ogΞΞ.Size(v.Chunks)
	size += slice1er5O89cYzTtVag6uT2ciQΞΞ.Size(v.Vector)
	size += raw.TimeUnixMicro.Size(v.InsertedAt)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s documentMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceho5WNyq8H0bpTExDOfP4ogΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = slice1er5O89cYzTtVag6uT2ciQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var QuestionnaireItemMUS = questionnaireItemMUS{}

type questionnaireItemMUS struct{}

func (s questionnaireItemMUS) Marshal(v QuestionnaireItem, bs []byte) (n int) {
	n = ord.String.Marshal(v.Criterion, bs)
	return n + ImportanceMUS.Marshal(v.Importance, bs[n:])
}

func (s questionnaireItemMUS) Unmarshal(bs []byte) (v QuestionnaireItem, n int, err error) {
	v.Criterion, n, err = ord.String.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Importance, n1, err = ImportanceMUS.Unmarshal(bs[n:])
	n += n1
	return
}

func (s questionnaireItemMUS) Size(v QuestionnaireItem) (size int) {
	size = ord.String.Size(v.Criterion)
	return size + ImportanceMUS.Size(v.Importance)
}

func (s questionnaireItemMUS) Skip(bs []byte) (n int, err error) {
	n, err = ord.String.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ImportanceMUS.Skip(bs[n:])
	n += n1
	return
}

var QuestionnaireMUS = questionnaireMUS{}

type questionnaireMUS struct{}

func (s questionnaireMUS) Marshal(v Questionnaire, bs []byte) (n int) {
	n = IDMUS.Marshal(v.Id, bs)
	n += IDMUS.Marshal(v.JobId, bs[n:])
	n += sliceLKJq6x7sT0bmiajLHGn7jQΞΞ.Marshal(v.Items, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s questionnaireMUS) Unmarshal(bs []byte) (v Questionnaire, n int, err error) {
	v.Id, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.JobId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Items, n1, err = sliceLKJq6x7sT0bmiajLHGn7jQΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s questionnaireMUS) Size(v Questionnaire) (size int) {
	size = IDMUS.Size(v.Id)
	size += IDMUS.Size(v.JobId)
	size += sliceLKJq6x7sT0bmiajLHGn7jQΞΞ.Size(v.Items)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s questionnaireMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceLKJq6x7sT0bmiajLHGn7jQΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var IdealCandidateMUS = idealCandidateMUS{}

type idealCandidateMUS struct{}

func (s idealCandidateMUS) Marshal(v IdealCandidate, bs []byte) (n int) {
	n = IDMUS.Marshal(v.JobId, bs)
	n += ord.String.Marshal(v.Resume, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s idealCandidateMUS) Unmarshal(bs []byte) (v IdealCandidate, n int, err error) {
	v.JobId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.Resume, n1, err = ord.String.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s idealCandidateMUS) Size(v IdealCandidate) (size int) {
	size = IDMUS.Size(v.JobId)
	size += ord.String.Size(v.Resume)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s idealCandidateMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = ord.String.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CandidateScoreMUS = candidateScoreMUS{}

type candidateScoreMUS struct{}

func (s candidateScoreMUS) Marshal(v CandidateScore, bs []byte) (n int) {
	n = IDMUS.Marshal(v.JobId, bs)
	n += IDMUS.Marshal(v.CandidateId, bs[n:])
	n += varint.Float64.Marshal(v.Score, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateScoreMUS) Unmarshal(bs []byte) (v CandidateScore, n int, err error) {
	v.JobId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.CandidateId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Score, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateScoreMUS) Size(v CandidateScore) (size int) {
	size = IDMUS.Size(v.JobId)
	size += IDMUS.Size(v.CandidateId)
	size += varint.Float64.Size(v.Score)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateScoreMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}

var CandidateFitnessMUS = candidateFitnessMUS{}

type candidateFitnessMUS struct{}

func (s candidateFitnessMUS) Marshal(v CandidateFitness, bs []byte) (n int) {
	n = IDMUS.Marshal(v.CandidateId, bs)
	n += IDMUS.Marshal(v.JobId, bs[n:])
	n += IDMUS.Marshal(v.QuestionnaireId, bs[n:])
	n += sliceM4QHgΔTeKd6RBJbvu6DUgwΞΞ.Marshal(v.Scores, bs[n:])
	n += varint.Float64.Marshal(v.Fitness, bs[n:])
	return n + raw.TimeUnixMicro.Marshal(v.UpdatedAt, bs[n:])
}

func (s candidateFitnessMUS) Unmarshal(bs []byte) (v CandidateFitness, n int, err error) {
	v.CandidateId, n, err = IDMUS.Unmarshal(bs)
	if err != nil {
		return
	}
	var n1 int
	v.JobId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.QuestionnaireId, n1, err = IDMUS.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Scores, n1, err = sliceM4QHgΔTeKd6RBJbvu6DUgwΞΞ.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.Fitness, n1, err = varint.Float64.Unmarshal(bs[n:])
	n += n1
	if err != nil {
		return
	}
	v.UpdatedAt, n1, err = raw.TimeUnixMicro.Unmarshal(bs[n:])
	n += n1
	return
}

func (s candidateFitnessMUS) Size(v CandidateFitness) (size int) {
	size = IDMUS.Size(v.CandidateId)
	size += IDMUS.Size(v.JobId)
	size += IDMUS.Size(v.QuestionnaireId)
	size += sliceM4QHgΔTeKd6RBJbvu6DUgwΞΞ.Size(v.Scores)
	size += varint.Float64.Size(v.Fitness)
	return size + raw.TimeUnixMicro.Size(v.UpdatedAt)
}

func (s candidateFitnessMUS) Skip(bs []byte) (n int, err error) {
	n, err = IDMUS.Skip(bs)
	if err != nil {
		return
	}
	var n1 int
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = IDMUS.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = sliceM4QHgΔTeKd6RBJbvu6DUgwΞΞ.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = varint.Float64.Skip(bs[n:])
	n += n1
	if err != nil {
		return
	}
	n1, err = raw.TimeUnixMicro.Skip(bs[n:])
	n += n1
	return
}
