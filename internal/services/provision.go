package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jjudge-oj/accountseed/types"
	"go.uber.org/zap"
)

// AccountRepository defines persistence operations for account files.
type AccountRepository interface {
	Load(ctx context.Context, path string) ([]types.Account, error)
	Save(ctx context.Context, path string, accounts []types.Account) error
}

// Summary describes a finished provisioning run.
type Summary struct {
	RunID   string
	Path    string
	Records int
	DryRun  bool
}

// ProvisionService fills in defaults for every account of a file and
// writes the result back to the same path.
type ProvisionService struct {
	repo      AccountRepository
	passwords PasswordSource
	logger    *zap.Logger
}

func NewProvisionService(repo AccountRepository, passwords PasswordSource, logger *zap.Logger) *ProvisionService {
	return &ProvisionService{
		repo:      repo,
		passwords: passwords,
		logger:    logger,
	}
}

// Run loads every account at path, fills defaults and saves the accounts
// back over path. With dryRun set the file is not written. A failed load
// leaves the file untouched.
func (s *ProvisionService) Run(ctx context.Context, path string, dryRun bool) (Summary, error) {
	summary := Summary{
		RunID:  uuid.NewString(),
		Path:   path,
		DryRun: dryRun,
	}
	log := s.logger.With(zap.String("run_id", summary.RunID), zap.String("path", path))

	log.Debug("Loading accounts")
	accounts, err := s.repo.Load(ctx, path)
	if err != nil {
		return summary, fmt.Errorf("load accounts: %w", err)
	}
	summary.Records = len(accounts)
	log.Debug("Loaded accounts", zap.Int("records", summary.Records))

	FillDefaults(accounts, s.passwords)

	if dryRun {
		log.Info("Dry run, file left unchanged", zap.Int("records", summary.Records))
		return summary, nil
	}

	if err := s.repo.Save(ctx, path, accounts); err != nil {
		return summary, fmt.Errorf("save accounts: %w", err)
	}
	log.Info("Accounts provisioned",
		zap.Int("records", summary.Records),
		zap.Stringer("role", types.DefaultRole),
	)
	return summary, nil
}
