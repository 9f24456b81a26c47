package leads

import (
	"context"
	"strings"
	"sync"
	"time"
)

// Filter narrows a List call. Zero values match everything.
type Filter struct {
	Status Status
	Phone  string
}

// Summary is the dashboard's aggregate view of the pipeline.
type Summary struct {
	Total         int            `json:"total"`
	ByStatus      map[Status]int `json:"by_status"`
	ByLocation    map[string]int `json:"by_location"`
	ByEnquiryType map[string]int `json:"by_enquiry_type"`
	Today         int            `json:"today"`
	Last7Days     int            `json:"last_7_days"`
	Last30Days    int            `json:"last_30_days"`
}

// Store defines lead persistence. List returns leads newest first. Mutating
// calls return the updated lead.
type Store interface {
	Create(ctx context.Context, req *CreateLeadRequest) (*Lead, error)
	GetByID(ctx context.Context, id string) (*Lead, error)
	List(ctx context.Context, filter Filter) ([]*Lead, error)
	UpdateStatus(ctx context.Context, id string, status Status) (*Lead, error)
	AppendNote(ctx context.Context, id string, note Note) (*Lead, error)
	MarkForwarded(ctx context.Context, id, advisorName, advisorNumber string) (*Lead, error)
	Summary(ctx context.Context) (Summary, error)
}

// MemoryStore is an in-memory Store for tests and local development.
type MemoryStore struct {
	mu    sync.RWMutex
	leads []*Lead
	now   func() time.Time
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{now: time.Now}
}

// Create validates and stores a new lead at the head of the list.
func (s *MemoryStore) Create(_ context.Context, req *CreateLeadRequest) (*Lead, error) {
	if err := req.Validate(); err != nil {
		return nil, err
	}

	now := s.now().UTC()
	lead := newLead(req, now)

	s.mu.Lock()
	s.leads = append([]*Lead{lead}, s.leads...)
	s.mu.Unlock()

	cp := *lead
	return &cp, nil
}

// GetByID retrieves a lead by ID.
func (s *MemoryStore) GetByID(_ context.Context, id string) (*Lead, error) {
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
func (s *MemoryStore) List(_ context.Context, filter Filter) ([]*Lead, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return filterLeads(s.leads, filter), nil
}

// UpdateStatus moves a lead through the pipeline.
func (s *MemoryStore) UpdateStatus(_ context.Context, id string, status Status) (*Lead, error) {
	if !ValidStatus(status) {
		return nil, ErrInvalidStatus
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	lead := findLead(s.leads, id)
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	lead.Status = status
	lead.UpdatedAt = s.now().UTC()
	cp := *lead
	return &cp, nil
}

// AppendNote adds an annotation. Notes are append-only.
func (s *MemoryStore) AppendNote(_ context.Context, id string, note Note) (*Lead, error) {
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
	cp := *lead
	return &cp, nil
}

// MarkForwarded records a successful advisor handoff.
func (s *MemoryStore) MarkForwarded(_ context.Context, id, advisorName, advisorNumber string) (*Lead, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	lead := findLead(s.leads, id)
	if lead == nil {
		return nil, ErrLeadNotFound
	}
	now := s.now().UTC()
	lead.Status = StatusForwarded
	lead.RegionalAdvisor = advisorName
	lead.AdvisorNumber = advisorNumber
	lead.ForwardedAt = &now
	lead.UpdatedAt = now
	cp := *lead
	return &cp, nil
}

// Summary aggregates the pipeline for the dashboard.
func (s *MemoryStore) Summary(_ context.Context) (Summary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return summarize(s.leads, s.now()), nil
}

// newLead builds a Lead from a validated request.
func newLead(req *CreateLeadRequest, now time.Time) *Lead {
	email := strings.TrimSpace(req.Email)
	if email == "" {
		email = "Not provided"
	}
	enquiry := req.EnquiryType
	if enquiry == "" {
		enquiry = "general"
	}
	return &Lead{
		ID:          NewLeadID(now),
		Phone:       req.Phone,
		ProfileName: req.ProfileName,
		Name:        strings.TrimSpace(req.Name),
		Location:    strings.TrimSpace(req.Location),
		Email:       email,
		Details:     strings.TrimSpace(req.Details),
		EnquiryType: enquiry,
		Status:      StatusNew,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
}

func findLead(leads []*Lead, id string) *Lead {
	for _, lead := range leads {
		if lead.ID == id {
			return lead
		}
	}
	return nil
}

func filterLeads(leads []*Lead, filter Filter) []*Lead {
	out := make([]*Lead, 0, len(leads))
	for _, lead := range leads {
		if filter.Status != "" && lead.Status != filter.Status {
			continue
		}
		if filter.Phone != "" && !strings.Contains(lead.Phone, filter.Phone) {
			continue
		}
		cp := *lead
		out = append(out, &cp)
	}
	return out
}

func summarize(leads []*Lead, now time.Time) Summary {
	sum := Summary{
		Total:         len(leads),
		ByStatus:      make(map[Status]int),
		ByLocation:    make(map[string]int),
		ByEnquiryType: make(map[string]int),
	}
	now = now.UTC()
	dayStart := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)
	weekAgo := now.Add(-7 * 24 * time.Hour)
	monthAgo := now.Add(-30 * 24 * time.Hour)
	for _, lead := range leads {
		sum.ByStatus[lead.Status]++
		if lead.Location != "" {
			sum.ByLocation[lead.Location]++
		}
		sum.ByEnquiryType[lead.EnquiryType]++
		if !lead.CreatedAt.Before(dayStart) {
			sum.Today++
		}
		if lead.CreatedAt.After(weekAgo) {
			sum.Last7Days++
		}
		if lead.CreatedAt.After(monthAgo) {
			sum.Last30Days++
		}
	}
	return sum
}
