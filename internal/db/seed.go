package db

import (
	"context"
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"campaign-ledger/internal/core/domain"
	"campaign-ledger/internal/core/port"
)

//go:embed fixtures/campaigns.yaml
var defaultFixtures []byte

type fixtureFile struct {
	Campaigns []domain.Candidate `yaml:"campaigns"`
}

// LoadFixtures reads seed campaigns from the YAML file at path, or the
// embedded demo campaigns when path is empty.
func LoadFixtures(path string) ([]domain.Candidate, error) {
	data := defaultFixtures
	if path != "" {
		var err error
		if data, err = os.ReadFile(path); err != nil {
			return nil, fmt.Errorf("read fixtures: %w", err)
		}
	}
	var f fixtureFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("decode fixtures: %w", err)
	}
	return f.Campaigns, nil
}

// Seed adds the candidates to the ledger in order. Candidates go through
// the regular Add path so they are validated and coerced like user input.
// The first rejected candidate aborts seeding.
func Seed(ctx context.Context, ledger port.LedgerUseCase, candidates []domain.Candidate) error {
	for i, c := range candidates {
		if _, err := ledger.Add(ctx, c); err != nil {
			return fmt.Errorf("seed campaign %d (%q): %w", i, c.Name, err)
		}
	}
	return nil
}
