//go:build integration

// Package integration exercises the client against an in-process double of
// the CRM endpoint: one handler multiplexing every operation through the
// method query parameter, the way the real server does.
package integration

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strings"
	"sync"
)

// fakeCRM is an in-memory CRM behind a single endpoint. Records live in
// per-module maps; relationships in a per-record field map.
type fakeCRM struct {
	mu        sync.Mutex
	token     string
	nextID    int
	records   map[string]map[string]map[string]interface{}
	relations map[string]map[string][]string
}

func newFakeCRM() *fakeCRM {
	return &fakeCRM{
		token:     "integration-token",
		records:   make(map[string]map[string]map[string]interface{}),
		relations: make(map[string]map[string][]string),
	}
}

// Server starts an httptest server around the fake.
func (f *fakeCRM) Server() *httptest.Server {
	return httptest.NewServer(http.HandlerFunc(f.handle))
}

func (f *fakeCRM) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	operation := r.URL.Query().Get("method")

	if operation != "Login" && r.Header.Get("Authorization") != "Bearer "+f.token {
		writeEnvelope(w, http.StatusUnauthorized, nil, "invalid session")

		return
	}

	switch operation {
	case "Login":
		f.handleLogin(w, r)
	case "Save":
		f.handleSave(w, r)
	case "Retrieve":
		f.handleRetrieve(w, r)
	case "GetModuleFields":
		writeEnvelope(w, http.StatusOK, map[string]interface{}{
			"name":  map[string]interface{}{"type": "varchar", "label": "Name", "required": true},
			"phone": map[string]interface{}{"type": "phone", "label": "Phone", "required": false},
		}, "")
	case "GetRelationship":
		f.handleGetRelationship(w, r)
	case "SaveRelationships":
		f.handleSaveRelationships(w, r)
	case "SearchByNumber":
		f.handleSearchByNumber(w, r)
	default:
		writeEnvelope(w, http.StatusNotFound, nil, "unknown operation "+operation)
	}
}

func (f *fakeCRM) handleLogin(w http.ResponseWriter, r *http.Request) {
	var body map[string]string
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body["password"] == "" {
		writeEnvelope(w, http.StatusBadRequest, nil, "missing credentials")

		return
	}

	writeEnvelope(w, http.StatusOK, map[string]string{"token": f.token}, "")
}

func (f *fakeCRM) handleSave(w http.ResponseWriter, r *http.Request) {
	module := r.URL.Query().Get("module")
	id := r.URL.Query().Get("id")

	switch r.Method {
	case http.MethodPost:
		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writeEnvelope(w, http.StatusBadRequest, nil, "malformed body")

			return
		}

		f.nextID++
		id = fmt.Sprintf("rec-%d", f.nextID)
		fields["id"] = id
		f.moduleRecords(module)[id] = fields

		writeEnvelope(w, http.StatusCreated, map[string]string{"id": id}, "")

	case http.MethodPut:
		record, ok := f.moduleRecords(module)[id]
		if !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "record not found")

			return
		}

		var fields map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&fields); err != nil {
			writeEnvelope(w, http.StatusBadRequest, nil, "malformed body")

			return
		}

		for key, value := range fields {
			record[key] = value
		}

		writeEnvelope(w, http.StatusOK, map[string]string{"id": id}, "")

	case http.MethodDelete:
		if _, ok := f.moduleRecords(module)[id]; !ok {
			writeEnvelope(w, http.StatusNotFound, nil, "record not found")

			return
		}

		delete(f.moduleRecords(module), id)
		writeEnvelope(w, http.StatusOK, map[string]string{"id": id}, "")

	default:
		writeEnvelope(w, http.StatusMethodNotAllowed, nil, "unsupported verb")
	}
}

func (f *fakeCRM) handleRetrieve(w http.ResponseWriter, r *http.Request) {
	module := r.URL.Query().Get("module")

	if id := r.URL.Query().Get("id"); id != "" {
		if record, ok := f.moduleRecords(module)[id]; ok {
			writeEnvelope(w, http.StatusOK, []interface{}{record}, "")
		} else {
			writeEnvelope(w, http.StatusOK, []interface{}{}, "")
		}

		return
	}

	var opts struct {
		Limit  int `json:"limit"`
		Offset int `json:"offset"`
	}
	_ = json.NewDecoder(r.Body).Decode(&opts)

	records := f.sortedRecords(module)

	if opts.Offset > 0 {
		if opts.Offset >= len(records) {
			records = nil
		} else {
			records = records[opts.Offset:]
		}
	}

	if opts.Limit > 0 && opts.Limit < len(records) {
		records = records[:opts.Limit]
	}

	writeEnvelope(w, http.StatusOK, records, "")
}

func (f *fakeCRM) handleGetRelationship(w http.ResponseWriter, r *http.Request) {
	relatedField := r.URL.Query().Get("related_field")

	// The filter body is accepted but the double links everything.
	var related []interface{}

	for id := range f.relations {
		for _, relatedID := range f.relations[id][relatedField] {
			related = append(related, map[string]interface{}{"id": relatedID})
		}
	}

	sort.Slice(related, func(i, j int) bool {
		left, _ := related[i].(map[string]interface{})["id"].(string)
		right, _ := related[j].(map[string]interface{})["id"].(string)

		return left < right
	})

	writeEnvelope(w, http.StatusOK, related, "")
}

func (f *fakeCRM) handleSaveRelationships(w http.ResponseWriter, r *http.Request) {
	id := r.URL.Query().Get("id")

	var body struct {
		FieldName      string   `json:"field_name"`
		RelatedRecords []string `json:"related_records"`
	}

	if err := json.NewDecoder(r.Body).Decode(&body); err != nil || body.FieldName == "" {
		writeEnvelope(w, http.StatusBadRequest, nil, "malformed relationship body")

		return
	}

	if f.relations[id] == nil {
		f.relations[id] = make(map[string][]string)
	}

	f.relations[id][body.FieldName] = body.RelatedRecords

	rows := make([]interface{}, 0, len(body.RelatedRecords))
	for _, relatedID := range body.RelatedRecords {
		rows = append(rows, map[string]interface{}{"id": relatedID})
	}

	writeEnvelope(w, http.StatusOK, rows, "")
}

func (f *fakeCRM) handleSearchByNumber(w http.ResponseWriter, r *http.Request) {
	number := r.URL.Query().Get("number")
	module := r.URL.Query().Get("module")

	var matches []interface{}

	for moduleName, records := range f.records {
		if module != "" && module != moduleName {
			continue
		}

		for _, record := range records {
			if phone, _ := record["phone"].(string); strings.Contains(phone, number) {
				matches = append(matches, record)
			}
		}
	}

	writeEnvelope(w, http.StatusOK, map[string]interface{}{"records": matches}, "")
}

func (f *fakeCRM) moduleRecords(module string) map[string]map[string]interface{} {
	if f.records[module] == nil {
		f.records[module] = make(map[string]map[string]interface{})
	}

	return f.records[module]
}

// sortedRecords returns a module's records ordered by id so pagination is
// deterministic.
func (f *fakeCRM) sortedRecords(module string) []interface{} {
	ids := make([]string, 0, len(f.records[module]))
	for id := range f.records[module] {
		ids = append(ids, id)
	}

	sort.Strings(ids)

	records := make([]interface{}, 0, len(ids))
	for _, id := range ids {
		records = append(records, f.records[module][id])
	}

	return records
}

func writeEnvelope(w http.ResponseWriter, status int, data interface{}, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	envelope := make(map[string]interface{})
	if data != nil {
		envelope["data"] = data
	}

	if message != "" {
		envelope["message"] = message
	}

	_ = json.NewEncoder(w).Encode(envelope)
}
