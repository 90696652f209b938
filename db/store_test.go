package db

import (
	"testing"

	"slogforge/models"
)

func strPtr(s string) *string {
	return &s
}

func TestExampleCRUD(t *testing.T) {
	created, err := CreateExample(models.CreateExampleRequest{
		Name:        "bsd sample",
		Description: "classic su failure",
		RFCVersion:  "3164",
		RawMessage:  "<34>Oct 11 22:14:15 mymachine su: 'su root' failed for lonvick on /dev/pts/8",
	})
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if created.ID == 0 {
		t.Error("created example should have an id")
	}
	if created.CreatedAt.IsZero() || created.UpdatedAt.IsZero() {
		t.Error("timestamps should be set")
	}

	fetched, err := GetExample(created.ID)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched == nil {
		t.Fatal("example not found after create")
	}
	if fetched.Name != "bsd sample" || fetched.RFCVersion != "3164" {
		t.Errorf("unexpected example: %+v", fetched)
	}

	updated, err := UpdateExample(created.ID, models.UpdateExampleRequest{
		Name: strPtr("renamed sample"),
	})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated == nil {
		t.Fatal("example not found during update")
	}
	if updated.Name != "renamed sample" {
		t.Errorf("name not updated: %q", updated.Name)
	}
	if updated.RawMessage != created.RawMessage {
		t.Error("untouched fields must survive a partial update")
	}
	if updated.UpdatedAt.Before(updated.CreatedAt) {
		t.Error("updated_at should not precede created_at")
	}

	deleted, err := DeleteExample(created.ID)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if !deleted {
		t.Error("delete should report an existing row")
	}

	gone, err := GetExample(created.ID)
	if err != nil {
		t.Fatalf("get after delete failed: %v", err)
	}
	if gone != nil {
		t.Error("example still present after delete")
	}
}

func TestGetExamplesFilter(t *testing.T) {
	mk := func(name, version string) {
		t.Helper()
		if _, err := CreateExample(models.CreateExampleRequest{
			Name:       name,
			RFCVersion: version,
			RawMessage: "<34>Oct 11 22:14:15 host app: " + name,
		}); err != nil {
			t.Fatalf("create %s failed: %v", name, err)
		}
	}

	mk("f-old", "3164")
	mk("f-structured", "5424")
	mk("f-new", "3164")

	all, err := GetExamples("")
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(all) < 3 {
		t.Fatalf("expected at least 3 examples, got %d", len(all))
	}

	only5424, err := GetExamples("5424")
	if err != nil {
		t.Fatalf("filtered list failed: %v", err)
	}
	for _, e := range only5424 {
		if e.RFCVersion != "5424" {
			t.Errorf("filter leaked %q example %q", e.RFCVersion, e.Name)
		}
	}

	found := false
	for _, e := range only5424 {
		if e.Name == "f-structured" {
			found = true
		}
	}
	if !found {
		t.Error("filtered list missing the 5424 example")
	}
}

func TestMissingExample(t *testing.T) {
	fetched, err := GetExample(999999)
	if err != nil {
		t.Fatalf("get failed: %v", err)
	}
	if fetched != nil {
		t.Error("expected no example")
	}

	updated, err := UpdateExample(999999, models.UpdateExampleRequest{Name: strPtr("x")})
	if err != nil {
		t.Fatalf("update failed: %v", err)
	}
	if updated != nil {
		t.Error("expected no example to update")
	}

	deleted, err := DeleteExample(999999)
	if err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if deleted {
		t.Error("expected nothing to delete")
	}
}
