package services

import (
	"testing"

	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"github.com/abdullah-briah/neuralinker-sub000/pkg/response"
)

func TestProjectService_Create_EnrollsOwnerAsAdmin(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner", "", nil)

	project, err := svc.Create(&CreateProjectRequest{
		Title:       "Inventory Dashboard",
		Description: "Track stock in realtime",
		Skills:      []string{"React", "TypeScript"},
		Category:    "web",
	}, owner.ID)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if project.Version != 1 {
		t.Errorf("Version = %d, want 1", project.Version)
	}

	var member models.ProjectMember
	if err := db.Where("project_id = ? AND user_id = ?", project.ID, owner.ID).First(&member).Error; err != nil {
		t.Fatalf("owner membership missing: %v", err)
	}
	if member.Role != models.MemberRoleAdmin {
		t.Errorf("owner role = %q, want admin", member.Role)
	}
}

func TestProjectService_Update_SnapshotsPreviousRevision(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner", "", nil)
	project := createTestProject(t, db, owner.ID, "Billing Service", []string{"Go"})

	updated, err := svc.Update(project.ID, &UpdateProjectRequest{
		Title:  "Billing Platform",
		Skills: []string{"Go", "PostgreSQL"},
	}, owner.ID)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}

	if updated.Version != 2 {
		t.Errorf("Version = %d, want 2", updated.Version)
	}
	if updated.Title != "Billing Platform" {
		t.Errorf("Title = %q, want updated title", updated.Title)
	}

	versions, err := svc.ListVersions(project.ID)
	if err != nil {
		t.Fatalf("ListVersions failed: %v", err)
	}
	if len(versions) != 1 {
		t.Fatalf("version count = %d, want 1", len(versions))
	}
	if versions[0].Version != 1 || versions[0].Title != "Billing Service" {
		t.Errorf("snapshot = v%d %q, want v1 \"Billing Service\"", versions[0].Version, versions[0].Title)
	}
}

func TestProjectService_Update_OnlyOwner(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner", "", nil)
	other := createTestUser(t, db, "dana", "", nil)
	project := createTestProject(t, db, owner.ID, "Billing Service", []string{"Go"})

	_, err := svc.Update(project.ID, &UpdateProjectRequest{Title: "Hijacked"}, other.ID)
	var appErr *response.AppError
	if !asAppError(err, &appErr) || appErr.HTTPStatus != 403 {
		t.Errorf("want 403 AppError, got %v", err)
	}
}

func TestProjectService_Update_NoChangesSkipsSnapshot(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner", "", nil)
	project := createTestProject(t, db, owner.ID, "Billing Service", []string{"Go"})

	updated, err := svc.Update(project.ID, &UpdateProjectRequest{}, owner.ID)
	if err != nil {
		t.Fatalf("Update failed: %v", err)
	}
	if updated.Version != 1 {
		t.Errorf("Version = %d, want 1 for no-op update", updated.Version)
	}

	versions, _ := svc.ListVersions(project.ID)
	if len(versions) != 0 {
		t.Errorf("version count = %d, want 0", len(versions))
	}
}

func TestProjectService_Delete(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner", "", nil)
	other := createTestUser(t, db, "dana", "", nil)
	project := createTestProject(t, db, owner.ID, "Billing Service", []string{"Go"})

	if err := svc.Delete(project.ID, other.ID); err == nil {
		t.Error("non-owner delete should fail")
	}

	if err := svc.Delete(project.ID, owner.ID); err != nil {
		t.Fatalf("Delete failed: %v", err)
	}

	if _, err := svc.GetByID(project.ID); err == nil {
		t.Error("deleted project should not be retrievable")
	}
}

func TestProjectService_List_Filters(t *testing.T) {
	db := newTestDB(t)
	svc := NewProjectService(db)
	owner := createTestUser(t, db, "owner", "", nil)

	svc.Create(&CreateProjectRequest{
		Title: "Inventory Dashboard", Description: "stock", Skills: []string{"React"}, Category: "web",
	}, owner.ID)
	svc.Create(&CreateProjectRequest{
		Title: "Billing Service", Description: "invoices", Skills: []string{"Go"}, Category: "backend",
	}, owner.ID)

	resp, err := svc.List(&ProjectListRequest{Category: "backend"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 || len(resp.Items) != 1 {
		t.Fatalf("filtered total = %d, want 1", resp.Total)
	}
	if resp.Items[0].Title != "Billing Service" {
		t.Errorf("unexpected item %q", resp.Items[0].Title)
	}

	resp, err = svc.List(&ProjectListRequest{Search: "invoice"})
	if err != nil {
		t.Fatalf("List failed: %v", err)
	}
	if resp.Total != 1 {
		t.Errorf("search total = %d, want 1", resp.Total)
	}
}
