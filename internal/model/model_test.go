package model_test

import (
	"encoding/json"
	"testing"

	"github.com/nikbrunner/vscroll/internal/model"
)

func TestUser_JSONFieldNames(t *testing.T) {
	u := model.User{ID: "u1", Username: "ada", Email: "ada@example.com", Avatar: "a.png", Password: "pw"}

	data, err := json.Marshal(u)
	if err != nil {
		t.Fatalf("failed to marshal: %v", err)
	}

	var raw map[string]string
	if err := json.Unmarshal(data, &raw); err != nil {
		t.Fatalf("failed to unmarshal: %v", err)
	}
	for _, key := range []string{"userId", "username", "email", "avatar", "password"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("expected JSON key %q in %s", key, data)
		}
	}
}

func TestGenerateUsers_NonPositiveCount(t *testing.T) {
	for _, count := range []int{0, -3} {
		if users := model.GenerateUsers(count, 1); len(users) != 0 {
			t.Errorf("GenerateUsers(%d) returned %d users, want 0", count, len(users))
		}
	}
}

func TestGenerateUsers_Deterministic(t *testing.T) {
	first := model.GenerateUsers(50, 42)
	second := model.GenerateUsers(50, 42)

	if len(first) != 50 {
		t.Fatalf("expected 50 users, got %d", len(first))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Fatalf("user %d differs between runs: %+v vs %+v", i, first[i], second[i])
		}
	}

	other := model.GenerateUsers(50, 43)
	if other[0].ID == first[0].ID {
		t.Error("expected different seeds to produce different IDs")
	}
}

func TestGenerateUsers_UniqueIDs(t *testing.T) {
	users := model.GenerateUsers(5000, 1)
	seen := make(map[string]bool, len(users))
	for _, u := range users {
		if seen[u.ID] {
			t.Fatalf("duplicate ID %q", u.ID)
		}
		seen[u.ID] = true
		if u.Username == "" || u.Email == "" || u.Password == "" {
			t.Fatalf("incomplete user %+v", u)
		}
	}
}

func TestDataset_ImportMerge(t *testing.T) {
	d := &model.Dataset{Users: []model.User{{ID: "u1", Username: "ada"}}}

	added, skipped := d.ImportMerge([]model.User{
		{ID: "u1", Username: "dup"},
		{ID: "u2", Username: "alan"},
		{ID: "", Username: "no id"},
		{ID: "u2", Username: "dup in batch"},
	})

	if added != 1 || skipped != 3 {
		t.Errorf("ImportMerge() = (%d, %d), want (1, 3)", added, skipped)
	}
	if d.Len() != 2 {
		t.Fatalf("expected 2 users, got %d", d.Len())
	}
	if d.At(1).Username != "alan" {
		t.Errorf("expected appended user 'alan', got %q", d.At(1).Username)
	}
	if d.IndexOf("u2") != 1 || d.IndexOf("missing") != -1 {
		t.Errorf("IndexOf mismatch: %d %d", d.IndexOf("u2"), d.IndexOf("missing"))
	}
}
