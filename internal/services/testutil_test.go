package services

import (
	"testing"
	"time"

	"github.com/abdullah-briah/neuralinker-sub000/internal/models"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

// newTestDB opens an isolated in-memory database with the full schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	err = db.AutoMigrate(
		&models.User{},
		&models.RefreshToken{},
		&models.Project{},
		&models.ProjectVersion{},
		&models.ProjectMember{},
		&models.JoinRequest{},
		&models.AIInsight{},
		&models.Notification{},
		&models.ScorerConfig{},
	)
	if err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func timeDaysAgo(days int) time.Time {
	return time.Now().AddDate(0, 0, -days)
}

// createTestUser inserts a user with the given username and skills.
func createTestUser(t *testing.T, db *gorm.DB, username, title string, skills []string) *models.User {
	t.Helper()

	user := models.User{
		Username: username,
		Password: "x",
		Email:    username + "@example.com",
		Name:     username,
		Title:    title,
		Skills:   skills,
		Role:     "user",
		IsActive: true,
	}
	if err := db.Create(&user).Error; err != nil {
		t.Fatalf("failed to create user %s: %v", username, err)
	}
	return &user
}

// createTestProject inserts a project owned by ownerID, with the owner
// enrolled as admin member.
func createTestProject(t *testing.T, db *gorm.DB, ownerID uint, title string, skills []string) *models.Project {
	t.Helper()

	project := models.Project{
		Title:       title,
		Description: "test project",
		Skills:      skills,
		OwnerID:     ownerID,
		Version:     1,
	}
	if err := db.Create(&project).Error; err != nil {
		t.Fatalf("failed to create project %s: %v", title, err)
	}
	member := models.ProjectMember{ProjectID: project.ID, UserID: ownerID, Role: models.MemberRoleAdmin}
	if err := db.Create(&member).Error; err != nil {
		t.Fatalf("failed to enroll owner: %v", err)
	}
	return &project
}
