// Package candidates joins the remote catalog with the local installation
// tree. It is the single entry point the CLI and TUI layers use: fetch the
// catalog, fetch one candidate's versions, and reconcile both against what
// is installed locally.
package candidates

import (
	"context"
	"net/http"
	"sync"

	"sdkui/pkg/catalog"
	"sdkui/pkg/config"
	"sdkui/pkg/local"
	"sdkui/pkg/reconcile"
	"sdkui/pkg/remote"
	"sdkui/pkg/verbose"
)

// CatalogClient is the remote surface the service needs. *remote.Client
// satisfies it; tests substitute a canned implementation.
type CatalogClient interface {
	FetchCatalog(ctx context.Context) ([]catalog.Candidate, error)
	FetchVersions(ctx context.Context, binaryID string) ([]catalog.CandidateVersion, error)
}

// Service orchestrates catalog fetches and local scans.
type Service struct {
	client        CatalogClient
	candidatesDir string
}

// View is a loaded catalog snapshot: the remote candidates plus the local
// installation state they reconcile against.
//
// Fields:
//   - Remote: parsed remote candidates in catalog order
//   - Local: scanned local state keyed by binary id, empty when the
//     local tree could not be read
//   - ScanErrors: non-fatal local scan failures, one per failed subtree
type View struct {
	// Remote holds the parsed remote candidates in catalog order.
	Remote []catalog.Candidate

	// Local holds the scanned local state keyed by binary id.
	Local map[string]local.Candidate

	// ScanErrors collects non-fatal local scan failures.
	ScanErrors []error
}

// NewService creates a Service from an already-constructed client.
//
// Parameters:
//   - client: the remote catalog client
//   - candidatesDir: root of the local installation tree
//
// Returns:
//   - *Service: New service
func NewService(client CatalogClient, candidatesDir string) *Service {
	return &Service{client: client, candidatesDir: candidatesDir}
}

// FromConfig creates a Service wired to a real HTTP client.
//
// Parameters:
//   - cfg: resolved configuration; must pass ValidateRemote
//
// Returns:
//   - *Service: New service
//   - error: a ConfigError when required settings are missing
func FromConfig(cfg *config.Config) (*Service, error) {
	if err := cfg.ValidateRemote(); err != nil {
		return nil, err
	}
	client := remote.NewClient(cfg.CandidatesAPI, cfg.Platform, &http.Client{Timeout: cfg.Timeout()})
	return NewService(client, cfg.CandidatesDir), nil
}

// Catalog fetches the remote candidate listing and scans the local
// installation tree concurrently, then joins the two into a View.
//
// A remote failure is fatal. A local scan failure is not: browsing the
// catalog still works without local state, so the error is logged, the
// Local map stays empty, and per-subtree failures surface in ScanErrors.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//
// Returns:
//   - *View: The joined snapshot
//   - error: The remote fetch error, nil otherwise
func (s *Service) Catalog(ctx context.Context) (*View, error) {
	var (
		remoteCandidates []catalog.Candidate
		remoteErr        error
		scanned          local.Result
		scanErr          error
	)

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		remoteCandidates, remoteErr = s.client.FetchCatalog(ctx)
	}()
	go func() {
		defer wg.Done()
		scanned, scanErr = local.Scan(s.candidatesDir)
	}()
	wg.Wait()

	if remoteErr != nil {
		return nil, remoteErr
	}

	view := &View{
		Remote: remoteCandidates,
		Local:  map[string]local.Candidate{},
	}
	if scanErr != nil {
		verbose.Warnf("local scan unavailable: %v", scanErr)
		view.ScanErrors = append(view.ScanErrors, scanErr)
		return view, nil
	}
	view.Local = scanned.ByBinaryID()
	view.ScanErrors = scanned.Failed
	return view, nil
}

// Versions fetches one candidate's version listing and reconciles it
// against the view's local state.
//
// Parameters:
//   - ctx: Context for cancellation and deadlines
//   - c: The candidate whose versions to fetch
//   - view: The loaded snapshot; nil means no local state
//
// Returns:
//   - catalog.Unified: The candidate with flagged versions in listing order
//   - error: The remote fetch error, nil otherwise
func (s *Service) Versions(ctx context.Context, c catalog.Candidate, view *View) (catalog.Unified, error) {
	versions, err := s.client.FetchVersions(ctx, c.BinaryID)
	if err != nil {
		return catalog.Unified{}, err
	}

	var state *local.Candidate
	if view != nil {
		if lc, ok := view.Local[c.BinaryID]; ok {
			state = &lc
		}
	}
	return reconcile.Merge(c, versions, state), nil
}

// ScanLocal scans the local installation tree on its own, without
// touching the network.
//
// Returns:
//   - local.Result: Scanned candidates plus per-subtree failures
//   - error: Root-level scan failure
func (s *Service) ScanLocal() (local.Result, error) {
	return local.Scan(s.candidatesDir)
}
