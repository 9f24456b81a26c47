package leads

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

const fileFormatVersion = "1.0"

// fileDocument is the on-disk shape: every lead plus bookkeeping metadata,
// in one JSON document.
type fileDocument struct {
	Leads    []*Lead      `json:"leads"`
	Metadata fileMetadata `json:"metadata"`
}

type fileMetadata struct {
	TotalLeads  int       `json:"total_leads"`
	LastUpdated time.Time `json:"last_updated"`
	Version     string    `json:"version"`
}

// FileStore persists leads to a single JSON file. Every mutation rewrites
// the whole document through a temp file and rename, so a crash mid-write
// never leaves a torn file behind. Lead volume is tens per week; a full
// rewrite is well inside that budget.
type FileStore struct {
	mu    sync.RWMutex
	path  string
	leads []*Lead
	now   func() time.Time
}

// NewFileStore opens or creates the lead file.
func NewFileStore(path string) (*FileStore, error) {
	s := &FileStore{path: path, now: time.Now}

	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
				return nil, fmt.Errorf("leads: failed to create data directory: %w", err)
			}
			if err := s.flushLocked(); err != nil {
				return nil, err
			}
			return s, nil
		}
		return nil, fmt.Errorf("leads: failed to read lead file: %w", err)
	}

	var doc fileDocument
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("leads: lead file %s is corrupt: %w", path, err)
	}
	s.leads = doc.Leads
	return s, nil
}

// Create validates, prepends, and persists the new lead. This is the one
// write whose failure must surface loudly: a lost lead is lost business.
func (s *FileStore) Create(_ context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now().UTC()
	lead := newLead(req, now)
	s.leads = append([]*Lead{lead}, s.leads...)
	if err := s.flushLocked(); err != nil {
		// Roll back so memory and disk stay in agreement.
		s.leads = s.leads[1:]
		return nil, err
	}
	cp := *lead
	return &cp, nil
}

// GetByID retrieves a lead by ID.
func (s *FileStore) GetByID(_ context.Context, id string) (*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	lead := findLead(s.leads, id)
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	cp := *lead
	return &cp, nil
}

// List returns matching leads, newest first.
func (s *FileStore) List(_ context.Context, filter Filter) ([]*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterLeads(s.leads, filter), nil
}

// UpdateStatus moves a lead through the pipeline and persists.
func (s *FileStore) UpdateStatus(_ context.Context, id string, status Status) (*Lead, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead := findLead(s.leads, id)
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	prevStatus, prevUpdated := lead.Status, lead.UpdatedAt
	lead.Status = status
	lead.UpdatedAt = s.now().UTC()
	if err := s.flushLocked(); err != nil {
		lead.Status, lead.UpdatedAt = prevStatus, prevUpdated
		return nil, err
	}
	cp := *lead
	return &cp, nil
}

// AppendNote adds an annotation and persists.
func (s *FileStore) AppendNote(_ context.Context, id string, note Note) (*Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := findLead(s.leads, id)
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	if note.Timestamp.IsZero() {
		note.Timestamp = s.now().UTC()
	}
	if note.Kind == "" {
		note.Kind = NoteKindNote
	}
	lead.Notes = append(lead.Notes, note)
	lead.UpdatedAt = s.now().UTC()
	if err := s.flushLocked(); err != nil {
		lead.Notes = lead.Notes[:len(lead.Notes)-1]
		return nil, err
	}
	cp := *lead
	return &cp, nil
}

// MarkForwarded records a successful advisor handoff and persists.
func (s *FileStore) MarkForwarded(_ context.Context, id, advisorName, advisorNumber string) (*Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := findLead(s.leads, id)
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	prev := *lead
	now := s.now().UTC()
	lead.Status = StatusForwarded
	lead.RegionalAdvisor = advisorName
	lead.AdvisorNumber = advisorNumber
	lead.ForwardedAt = &now
	lead.UpdatedAt = now
	if err := s.flushLocked(); err != nil {
		*lead = prev
		return nil, err
	}
	cp := *lead
	return &cp, nil
}

// Summary aggregates the pipeline for the dashboard.
func (s *FileStore) Summary(_ context.Context) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return summarize(s.leads, s.now()), nil
}

// flushLocked writes the whole document atomically. Caller holds the write
// lock.
func (s *FileStore) flushLocked() error {
	doc := fileDocument{
		Leads: s.leads,
		Metadata: fileMetadata{
			TotalLeads:  len(s.leads),
			LastUpdated: s.now().UTC(),
			Version:     fileFormatVersion,
		},
	}
	if doc.Leads == nil {
		doc.Leads = []*Lead{}
	}

	data, err := json.MarshalIndent(&doc, "", "  ")
	if err != nil {
		return fmt.Errorf("leads: failed to marshal lead file: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, 0o644); err != nil {
		return fmt.Errorf("leads: failed to write lead file: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		os.Remove(tmp)
		return fmt.Errorf("leads: failed to replace lead file: %w", err)
	}
	return nil
}
