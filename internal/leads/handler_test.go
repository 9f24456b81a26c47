package leads

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/mckingstown/salon-bot/pkg/logging"
)

func newTestServer(t *testing.T, store Store) *httptest.Server {
	t.Helper()
	r := chi.NewRouter()
	NewHandler(store, logging.New("error")).Routes(r)
	srv := httptest.NewServer(r)
	t.Cleanup(srv.Close)
	return srv
}

func seedLead(t *testing.T, store Store, name, location string) *Lead {
	t.Helper()
	lead, err := store.Create(context.Background(), &CreateLeadRequest{
		Phone:    "+919876543210",
		Name:     name,
		Location: location,
	})
	if err != nil {
		t.Fatal(err)
	}
	return lead
}

func TestListLeads(t *testing.T) {
	store := NewMemoryStore()
	seedLead(t, store, "Asha", "Chennai")
	seedLead(t, store, "Ravi", "Salem")
	srv := newTestServer(t, store)

	resp, err := http.Get(srv.URL + "/leads")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var list ListLeadsResponse
	if err := json.NewDecoder(resp.Body).Decode(&list); err != nil {
		t.Fatal(err)
	}
	if list.Count != 2 || list.Leads[0].Name != "Ravi" {
		t.Fatalf("unexpected list %+v", list)
	}
}

func TestListLeadsRejectsUnknownStatus(t *testing.T) {
	srv := newTestServer(t, NewMemoryStore())

	resp, err := http.Get(srv.URL + "/leads?status=bogus")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.StatusCode)
	}
}

func TestGetLead(t *testing.T) {
	store := NewMemoryStore()
	lead := seedLead(t, store, "Asha", "Chennai")
	srv := newTestServer(t, store)

	resp, err := http.Get(srv.URL + "/leads/" + lead.ID)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	resp2, err := http.Get(srv.URL + "/leads/LEAD-0-missing")
	if err != nil {
		t.Fatal(err)
	}
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", resp2.StatusCode)
	}
}

func TestUpdateStatusEndpoint(t *testing.T) {
	store := NewMemoryStore()
	lead := seedLead(t, store, "Asha", "Chennai")
	srv := newTestServer(t, store)

	body, _ := json.Marshal(UpdateStatusRequest{Status: StatusContacted})
	req, _ := http.NewRequest(http.MethodPatch, srv.URL+"/leads/"+lead.ID+"/status", bytes.NewReader(body))
	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var updated Lead
	if err := json.NewDecoder(resp.Body).Decode(&updated); err != nil {
		t.Fatal(err)
	}
	if updated.Status != StatusContacted {
		t.Fatalf("status not updated: %+v", updated)
	}
}

func TestAddNoteEndpoint(t *testing.T) {
	store := NewMemoryStore()
	lead := seedLead(t, store, "Asha", "Chennai")
	srv := newTestServer(t, store)

	resp, err := http.Post(srv.URL+"/leads/"+lead.ID+"/notes", "application/json",
		strings.NewReader(`{"text":"called twice, no answer"}`))
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusCreated {
		t.Fatalf("expected 201, got %d", resp.StatusCode)
	}

	var noted Lead
	if err := json.NewDecoder(resp.Body).Decode(&noted); err != nil {
		t.Fatal(err)
	}
	if len(noted.Notes) != 1 || noted.Notes[0].Text != "called twice, no answer" {
		t.Fatalf("note not recorded: %+v", noted.Notes)
	}

	resp2, _ := http.Post(srv.URL+"/leads/"+lead.ID+"/notes", "application/json",
		strings.NewReader(`{"text":""}`))
	resp2.Body.Close()
	if resp2.StatusCode != http.StatusBadRequest {
		t.Fatalf("expected 400 for empty note, got %d", resp2.StatusCode)
	}
}

func TestSummaryEndpoint(t *testing.T) {
	store := NewMemoryStore()
	seedLead(t, store, "Asha", "Chennai")
	srv := newTestServer(t, store)

	resp, err := http.Get(srv.URL + "/leads/summary")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	var sum Summary
	if err := json.NewDecoder(resp.Body).Decode(&sum); err != nil {
		t.Fatal(err)
	}
	if sum.Total != 1 || sum.ByStatus[StatusNew] != 1 {
		t.Fatalf("unexpected summary %+v", sum)
	}
	if sum.ByLocation["Chennai"] != 1 || sum.Today != 1 {
		t.Fatalf("location and today counts not surfaced: %+v", sum)
	}
}

func TestExportCSV(t *testing.T) {
	store := NewMemoryStore()
	seedLead(t, store, "Asha", "Chennai")
	seedLead(t, store, "Ravi", "Salem")
	srv := newTestServer(t, store)

	resp, err := http.Get(srv.URL + "/leads/export")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	if ct := resp.Header.Get("Content-Type"); ct != "text/csv" {
		t.Fatalf("expected text/csv, got %s", ct)
	}

	rows, err := csv.NewReader(resp.Body).ReadAll()
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 3 {
		t.Fatalf("expected header plus two rows, got %d", len(rows))
	}
	wantHeader := []string{
		"ID", "Phone", "Name", "Location", "Enquiry Type",
		"Status", "Regional Advisor", "Created At", "Forwarded At",
	}
	for i, col := range wantHeader {
		if rows[0][i] != col {
			t.Fatalf("unexpected header %v", rows[0])
		}
	}
	if rows[1][2] != "Ravi" {
		t.Fatalf("expected newest lead first in export, got %v", rows[1])
	}
}
