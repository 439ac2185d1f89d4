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

import "errors"

var (
	// ErrNotFound indicates that the requested record does not exist.
	// Get and Delete operations on missing jobs, candidates, documents,
	// questionnaires and scores return this.
	ErrNotFound = errors.New("record not found")

	// ErrStorageClosed indicates an operation on a closed backend.
	ErrStorageClosed = errors.New("storage is closed")

	// ErrInvalidQuery indicates invalid list or search parameters.
	ErrInvalidQuery = errors.New("invalid query parameters")

	// ErrSerializationFailed wraps a record encode or decode failure.
	ErrSerializationFailed = errors.New("serialization failed")
)
