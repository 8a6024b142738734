// Package backendcheck verifies that the Supabase project behind the PWA is
// reachable and has the tables the mobile app needs
package backendcheck

import (
	"context"
	"fmt"

	"labelsmobile/domain/supabaseconfig"
	"labelsmobile/internal/supabase"
)

const (
	ProductsTable       = "productos"
	MobileListsTable    = "listas_temporales"
	MobileTablesSQLHint = "mobile_web_app/setup_mobile_tables.sql"
)

type Operations interface {
	CountRecords(ctx context.Context, table string) (int, error)
	TableExists(ctx context.Context, table string) (bool, error)
}

type Report struct {
	Products     int
	MobileTables bool
}

type Service interface {
	Check(ctx context.Context) (*Report, error)
}

type backendCheckService struct {
	client Operations
}

// New builds a service for the project described by cfg. It fails when the
// config is not usable, e.g. the URL is empty.
func New(cfg *supabaseconfig.Config) (*backendCheckService, error) {
	client, err := supabase.NewClient(supabase.ClientConfig{
		URL:     cfg.URL,
		AnonKey: cfg.AnonKey,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create supabase client: %w", err)
	}
	return NewWithDependencies(client), nil
}

func NewWithDependencies(client Operations) *backendCheckService {
	return &backendCheckService{client: client}
}

// Check counts the products and looks for the mobile tables. A failed
// product query is an error; missing mobile tables are only reported.
func (s *backendCheckService) Check(ctx context.Context) (*Report, error) {
	count, err := s.client.CountRecords(ctx, ProductsTable)
	if err != nil {
		return nil, fmt.Errorf("failed to query %s: %w", ProductsTable, err)
	}

	report := &Report{Products: count}

	exists, err := s.client.TableExists(ctx, MobileListsTable)
	if err != nil {
		return report, fmt.Errorf("failed to query %s: %w", MobileListsTable, err)
	}
	report.MobileTables = exists

	return report, nil
}
