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


package main

import (
	"context"
	"fmt"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/poiesic/hirank"
	"github.com/poiesic/hirank/ai"
	"github.com/poiesic/hirank/core"
	"github.com/poiesic/hirank/ingest"
	"github.com/urfave/cli/v2"
)

func main() {
	app := &cli.App{
		Name:  "hirank",
		Usage: "Candidate ranking and scoring for job openings",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:    "log-level",
				Aliases: []string{"l"},
				Usage:   "Set logging level (debug, info, warn, error)",
				Value:   "info",
			},
		},
		Before: setupLogger,
		Commands: []*cli.Command{
			{
				Name:   "questionnaire",
				Usage:  "Generate a scoring questionnaire for a job",
				Action: questionnaireCommand,
				Flags: joinFlags(databaseFlags(), assistantFlags(), []cli.Flag{
					&cli.IntFlag{
						Name:  "count",
						Usage: "Target number of criteria",
						Value: 10,
					},
					&cli.BoolFlag{
						Name:  "exact",
						Usage: "Require exactly count criteria",
					},
					&cli.BoolFlag{
						Name:  "fresh",
						Usage: "Ignore any existing questionnaire items",
					},
				}),
			},
			{
				Name:   "ideal",
				Usage:  "Generate the ideal candidate resume for a job",
				Action: idealCommand,
				Flags:  joinFlags(databaseFlags(), assistantFlags()),
			},
			{
				Name:   "rank",
				Usage:  "Rank candidates against a job by CV similarity",
				Action: rankCommand,
				Flags: joinFlags(databaseFlags(), embeddingFlags(), []cli.Flag{
					&cli.IntFlag{
						Name:  "top",
						Usage: "Number of candidates to keep (0 = all)",
						Value: 10,
					},
				}),
			},
			{
				Name:   "score",
				Usage:  "Score ranked candidates against the job questionnaire",
				Action: scoreCommand,
				Flags: joinFlags(databaseFlags(), assistantFlags(), []cli.Flag{
					&cli.Uint64SliceFlag{
						Name:  "candidate",
						Usage: "Candidate IDs to score (default: current score rows)",
					},
				}),
			},
			{
				Name:   "seed",
				Usage:  "Populate the database with sample jobs, candidates and CVs",
				Action: seedCommand,
				Flags:  joinFlags(databaseFlags(), embeddingFlags()),
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

func joinFlags(groups ...[]cli.Flag) []cli.Flag {
	var flags []cli.Flag
	for _, group := range groups {
		flags = append(flags, group...)
	}
	return flags
}

func databaseFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "db",
			Aliases:  []string{"d"},
			Usage:    "Path to BadgerDB database directory",
			Required: true,
		},
		&cli.Uint64Flag{
			Name:    "job",
			Aliases: []string{"j"},
			Usage:   "Job ID to operate on",
		},
	}
}

func embeddingFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:  "embedding-host",
			Usage: "Embedding service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "embedding-model",
			Usage: "Embedding model name",
			Value: "embeddinggemma",
		},
	}
}

func assistantFlags() []cli.Flag {
	return append(embeddingFlags(),
		&cli.StringFlag{
			Name:  "assistant-host",
			Usage: "Assistant service host URL",
			Value: "http://localhost:11434/v1",
		},
		&cli.StringFlag{
			Name:  "assistant-model",
			Usage: "Assistant model name",
			Value: "qwen2.5:7b",
		},
	)
}

func openDatabase(c *cli.Context) (*hirank.Database, error) {
	opts := []ai.ConfigOption{
		ai.WithEmbeddingHost(c.String("embedding-host")),
		ai.WithEmbeddingModel(c.String("embedding-model")),
	}
	if c.IsSet("assistant-host") || c.String("assistant-host") != "" {
		opts = append(opts,
			ai.WithAssistantHost(c.String("assistant-host")),
			ai.WithAssistantModel(c.String("assistant-model")),
		)
	}

	aiConfig := ai.NewConfig(opts...)
	if err := aiConfig.Validate(); err != nil {
		return nil, fmt.Errorf("invalid AI configuration: %w", err)
	}

	db, err := hirank.NewDatabase(c.String("db"), hirank.WithAIConfig(aiConfig))
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	return db, nil
}

func requireJob(c *cli.Context) (core.ID, error) {
	jobID := core.ID(c.Uint64("job"))
	if jobID == 0 {
		return 0, fmt.Errorf("job is required")
	}
	return jobID, nil
}

func questionnaireCommand(c *cli.Context) error {
	ctx := context.Background()

	jobID, err := requireJob(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := db.NewSessionManager()
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	sess, err := manager.Session(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	questionnaire, err := sess.GenerateQuestionnaire(ctx, c.Int("count"), c.Bool("exact"), !c.Bool("fresh"))
	if err != nil {
		return fmt.Errorf("questionnaire generation failed: %w", err)
	}

	fmt.Printf("Questionnaire %d for job %d (%d criteria)\n",
		questionnaire.Id, jobID, len(questionnaire.Items))
	for i, item := range questionnaire.Items {
		fmt.Printf("%2d. [%s] %s\n", i+1, item.Importance, item.Criterion)
	}
	return nil
}

func idealCommand(c *cli.Context) error {
	ctx := context.Background()

	jobID, err := requireJob(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := db.NewSessionManager()
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	sess, err := manager.Session(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	ideal, err := sess.GenerateIdealCandidate(ctx)
	if err != nil {
		return fmt.Errorf("ideal resume generation failed: %w", err)
	}

	fmt.Printf("Ideal candidate resume for job %d:\n\n%s\n", jobID, ideal.Resume)
	return nil
}

func rankCommand(c *cli.Context) error {
	ctx := context.Background()

	jobID, err := requireJob(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := db.NewSessionManager()
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	sess, err := manager.Session(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	scores, err := sess.RankCandidates(ctx, c.Int("top"))
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	fmt.Printf("Ranked %d candidates for job %d\n", len(scores), jobID)
	for i, score := range scores {
		name := candidateName(ctx, db, score.CandidateId)
		fmt.Printf("%2d. %s (%d) [%0.3f]\n", i+1, name, score.CandidateId, score.Score)
	}
	return nil
}

func scoreCommand(c *cli.Context) error {
	ctx := context.Background()

	jobID, err := requireJob(c)
	if err != nil {
		return err
	}

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	manager, err := db.NewSessionManager()
	if err != nil {
		return fmt.Errorf("failed to create session manager: %w", err)
	}

	sess, err := manager.Session(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to open session: %w", err)
	}

	var candidateIDs []core.ID
	for _, raw := range c.Uint64Slice("candidate") {
		candidateIDs = append(candidateIDs, core.ID(raw))
	}

	rows, err := sess.GenerateScores(ctx, candidateIDs...)
	if err != nil {
		return fmt.Errorf("scoring failed: %w", err)
	}

	fmt.Printf("Scored %d candidates for job %d\n", len(rows), jobID)
	for _, row := range rows {
		name := candidateName(ctx, db, row.CandidateId)
		fmt.Printf("  %s (%d): fitness %0.3f, criteria %s\n",
			name, row.CandidateId, row.Fitness, formatScores(row.Scores))
	}
	return nil
}

func candidateName(ctx context.Context, db *hirank.Database, id core.ID) string {
	candidate, err := db.CandidateRepository().GetCandidate(ctx, id)
	if err != nil {
		return "unknown"
	}
	return candidate.Name
}

func formatScores(scores []float64) string {
	parts := make([]string, len(scores))
	for i, s := range scores {
		parts[i] = fmt.Sprintf("%0.2f", s)
	}
	return "[" + strings.Join(parts, " ") + "]"
}

type seedCandidate struct {
	name string
	cv   string
}

var seedJob = &core.Job{
	Title:   "Senior Backend Engineer",
	Company: "Poiesic Systems",
	Description: "Design and operate distributed storage services in Go. " +
		"Strong grounding in data structures, concurrency and observability. " +
		"Experience with embedded key-value stores and vector search a plus.",
}

var seedCandidates = []seedCandidate{
	{
		name: "Ada Marsh",
		cv: "Ten years building storage engines in Go and C++. Led the " +
			"migration of a petabyte-scale object store to an LSM-tree " +
			"backend. Maintainer of an open source write-ahead log library.\n\n" +
			"Previously: distributed systems at a CDN, on-call lead.",
	},
	{
		name: "Ben Okafor",
		cv: "Backend engineer, five years, mostly Go microservices over " +
			"PostgreSQL. Built an internal search service with embedding " +
			"models and approximate nearest neighbour indexes.\n\n" +
			"Comfortable with Kubernetes, Prometheus, tracing.",
	},
	{
		name: "Carla Reyes",
		cv: "Frontend developer transitioning to full stack. Three years " +
			"of React and TypeScript, one year of Node services.\n\n" +
			"Recent side project: a Go CLI for photo deduplication.",
	},
	{
		name: "Dmitri Volkov",
		cv: "Principal engineer, twelve years. Designed the replication " +
			"protocol for a commercial time-series database. Deep Go " +
			"expertise including runtime internals and race debugging.\n\n" +
			"Speaker at systems conferences, mentors senior engineers.",
	},
	{
		name: "Elif Kaya",
		cv: "Machine learning engineer, four years. Production feature " +
			"stores, embedding pipelines and model serving in Python and " +
			"Go. Wrote the vector similarity layer for a recommender.\n\n" +
			"MSc in computer science, thesis on metric learning.",
	},
}

func seedCommand(c *cli.Context) error {
	ctx := context.Background()

	db, err := openDatabase(c)
	if err != nil {
		return err
	}
	defer db.Close()

	jobs, err := db.JobRepository().AddJobs(ctx, seedJob)
	if err != nil {
		return fmt.Errorf("failed to seed job: %w", err)
	}
	job := jobs[0]

	candidates := make([]*core.Candidate, len(seedCandidates))
	for i, seed := range seedCandidates {
		candidates[i] = &core.Candidate{Name: seed.name}
	}
	stored, err := db.CandidateRepository().AddCandidates(ctx, candidates...)
	if err != nil {
		return fmt.Errorf("failed to seed candidates: %w", err)
	}

	pipeline, err := db.NewIngestPipeline()
	if err != nil {
		return fmt.Errorf("failed to create ingest pipeline: %w", err)
	}
	defer pipeline.Release()

	uploads := make([]ingest.CVUpload, len(stored))
	for i, candidate := range stored {
		uploads[i] = ingest.CVUpload{
			CandidateId: candidate.Id,
			Filename:    fmt.Sprintf("%s.txt", strings.ReplaceAll(strings.ToLower(candidate.Name), " ", "_")),
			Raw:         []byte(seedCandidates[i].cv),
		}
	}
	if _, err := pipeline.IngestCVs(ctx, uploads); err != nil {
		return fmt.Errorf("failed to ingest seed CVs: %w", err)
	}

	fmt.Printf("Seeded job %d (%s) with %d candidates\n", job.Id, job.Title, len(stored))
	for _, candidate := range stored {
		fmt.Printf("  %d: %s\n", candidate.Id, candidate.Name)
	}
	return nil
}

func setupLogger(c *cli.Context) error {
	// Get log level from flag and normalize to lowercase
	levelStr := strings.ToLower(c.String("log-level"))

	// Map string to slog.Level
	var level slog.Level
	switch levelStr {
	case "debug":
		level = slog.LevelDebug
	case "info":
		level = slog.LevelInfo
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	default:
		return fmt.Errorf("invalid log level %q: must be one of debug, info, warn, error", levelStr)
	}

	// Configure slog with the specified level
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	return nil
}
