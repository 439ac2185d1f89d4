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


// Package rank provides the two-stage candidate retrieval pipeline.
//
// The Ranker type implements the coarse stage: embed a query, compare it
// against every stored document embedding and return the closest matches.
// The Reranker type implements the fine stage: apply an expensive scoring
// function (an LLM judgment in practice) to a shortlist and re-order it.
// QuestionnaireScorer folds per-criterion LLM judgments into a single
// weighted fitness value.
package rank
